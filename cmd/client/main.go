package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/MKhiriev/go-user-service/internal/adapter"
	"github.com/MKhiriev/go-user-service/internal/config"
	"github.com/MKhiriev/go-user-service/internal/logger"
	"github.com/MKhiriev/go-user-service/models"
)

var errUsage = errors.New("usage: client [-a address] [-t token] version|list|get ID|create NAME EMAIL|update ID NAME EMAIL|delete ID")

func main() {
	address := flag.String("a", config.DefaultHTTPAddress, "users API address")
	token := flag.String("t", config.DefaultAuthToken, "bearer token")
	timeout := flag.Duration("timeout", 10*time.Second, "request timeout")
	flag.Parse()

	log := logger.NewLogger("user-client")
	if err := logger.SetLevel("info"); err != nil {
		log.Fatal().Err(err).Msg("error setting log level")
	}

	api, err := adapter.NewHTTPUserAPI(*address, *token, *timeout, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating users API client")
	}

	out, err := run(context.Background(), api, flag.Args())
	if err != nil {
		log.Error().Err(err).Msg("request failed")
		os.Exit(1)
	}

	fmt.Println(out)
}

func run(ctx context.Context, api adapter.UserAPI, args []string) (string, error) {
	if len(args) == 0 {
		return "", errUsage
	}

	switch cmd, rest := args[0], args[1:]; {
	case cmd == "version" && len(rest) == 0:
		return api.Version(ctx)
	case cmd == "list" && len(rest) == 0:
		users, err := api.ListUsers(ctx)
		return render(users, err)
	case cmd == "get" && len(rest) == 1:
		id, err := strconv.ParseInt(rest[0], 10, 64)
		if err != nil {
			return "", fmt.Errorf("invalid id %q: %w", rest[0], err)
		}
		return render(api.GetUser(ctx, id))
	case cmd == "create" && len(rest) == 2:
		return render(api.CreateUser(ctx, models.User{Name: rest[0], Email: rest[1]}))
	case cmd == "update" && len(rest) == 3:
		id, err := strconv.ParseInt(rest[0], 10, 64)
		if err != nil {
			return "", fmt.Errorf("invalid id %q: %w", rest[0], err)
		}
		return render(api.UpdateUser(ctx, id, models.User{Name: rest[1], Email: rest[2]}))
	case cmd == "delete" && len(rest) == 1:
		id, err := strconv.ParseInt(rest[0], 10, 64)
		if err != nil {
			return "", fmt.Errorf("invalid id %q: %w", rest[0], err)
		}
		return api.DeleteUser(ctx, id)
	default:
		return "", errUsage
	}
}

func render(v any, err error) (string, error) {
	if err != nil {
		return "", err
	}

	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return "", fmt.Errorf("error rendering response: %w", err)
	}

	return string(out), nil
}
