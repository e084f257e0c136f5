package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/MKhiriev/go-user-service/internal/logger"
	"github.com/MKhiriev/go-user-service/models"
	"github.com/go-resty/resty/v2"
)

type httpUserAPI struct {
	client *resty.Client
	token  string

	logger *logger.Logger
}

// NewHTTPUserAPI constructs an HTTP/REST implementation of [UserAPI].
// address may omit the scheme ("localhost:8080"); token is sent as
// "Authorization: Bearer <token>" on every /users request.
//
// Returns an error if address is empty or cannot be parsed as a valid URL.
func NewHTTPUserAPI(address, token string, timeout time.Duration, logger *logger.Logger) (UserAPI, error) {
	baseURL, err := normalizeBaseURL(address)
	if err != nil {
		return nil, fmt.Errorf("invalid users API address: %w", err)
	}

	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout)

	return &httpUserAPI{client: client, token: strings.TrimSpace(token), logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", ErrEmptyAddress
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func (h *httpUserAPI) Version(ctx context.Context) (string, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		Get("/version")
	if err != nil {
		return "", fmt.Errorf("version request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	return resp.String(), nil
}

func (h *httpUserAPI) ListUsers(ctx context.Context) ([]models.User, error) {
	var users []models.User

	resp, err := h.authedRequest(ctx).
		SetResult(&users).
		Get("/users")
	if err != nil {
		return nil, fmt.Errorf("list users request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return users, nil
}

func (h *httpUserAPI) GetUser(ctx context.Context, id int64) (models.User, error) {
	var user models.User

	resp, err := h.authedRequest(ctx).
		SetResult(&user).
		Get(userPath(id))
	if err != nil {
		return models.User{}, fmt.Errorf("get user request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.User{}, err
	}

	return user, nil
}

func (h *httpUserAPI) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	var created models.User

	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(user).
		SetResult(&created).
		Post("/users")
	if err != nil {
		return models.User{}, fmt.Errorf("create user request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.User{}, err
	}

	h.logger.Debug().
		Int64("id", created.ID).
		Str("location", resp.Header().Get("Location")).
		Msg("user created")

	return created, nil
}

func (h *httpUserAPI) UpdateUser(ctx context.Context, id int64, user models.User) (models.User, error) {
	var updated models.User

	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(user).
		SetResult(&updated).
		Put(userPath(id))
	if err != nil {
		return models.User{}, fmt.Errorf("update user request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.User{}, err
	}

	return updated, nil
}

func (h *httpUserAPI) DeleteUser(ctx context.Context, id int64) (string, error) {
	resp, err := h.authedRequest(ctx).
		Delete(userPath(id))
	if err != nil {
		return "", fmt.Errorf("delete user request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	var message string
	if err = json.Unmarshal(resp.Body(), &message); err != nil {
		return "", fmt.Errorf("decode delete response: %w", err)
	}

	return message, nil
}

func (h *httpUserAPI) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if h.token != "" {
		req.SetAuthToken(h.token)
	}
	return req
}

func userPath(id int64) string {
	return "/users/" + strconv.FormatInt(id, 10)
}
