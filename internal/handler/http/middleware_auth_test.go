package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWithAuth_TableTest(t *testing.T) {
	tests := []struct {
		name           string
		path           string
		authHeader     string
		wantNextCalled bool
		wantStatus     int
	}{
		{
			name:           "valid token on /users",
			path:           "/users",
			authHeader:     "Bearer " + testToken,
			wantNextCalled: true,
			wantStatus:     http.StatusOK,
		},
		{
			name:           "valid token on /users/{id}",
			path:           "/users/42",
			authHeader:     "Bearer " + testToken,
			wantNextCalled: true,
			wantStatus:     http.StatusOK,
		},
		{
			name:       "missing header",
			path:       "/users",
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "wrong token",
			path:       "/users",
			authHeader: "Bearer wrong",
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "token without scheme",
			path:       "/users",
			authHeader: testToken,
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "lowercase scheme is not accepted",
			path:       "/users/1",
			authHeader: "bearer " + testToken,
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "trailing space is not accepted",
			path:       "/users/1",
			authHeader: "Bearer " + testToken + " ",
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "prefix match covers /users-like paths",
			path:       "/usersettings",
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:           "other paths are not guarded",
			path:           "/version",
			wantNextCalled: true,
			wantStatus:     http.StatusOK,
		},
		{
			name:           "root is not guarded",
			path:           "/",
			wantNextCalled: true,
			wantStatus:     http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newTestHandler()
			nextCalled := false
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				nextCalled = true
				w.WriteHeader(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			if tt.authHeader != "" {
				req.Header.Set("Authorization", tt.authHeader)
			}
			rr := httptest.NewRecorder()

			h.withAuth(next).ServeHTTP(rr, req)

			assert.Equal(t, tt.wantNextCalled, nextCalled)
			assert.Equal(t, tt.wantStatus, rr.Code)
			if tt.wantStatus == http.StatusUnauthorized {
				assert.JSONEq(t, `{"error":"Unauthorized"}`, rr.Body.String())
			}
		})
	}
}

func TestWithAuth_UsesConfiguredToken(t *testing.T) {
	h := newTestHandler()
	h.authToken = "another-secret"
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	req := httptest.NewRequest(http.MethodGet, "/users", nil)
	req.Header.Set("Authorization", "Bearer another-secret")
	rr := httptest.NewRecorder()
	h.withAuth(next).ServeHTTP(rr, req)
	assert.Equal(t, http.StatusNoContent, rr.Code)

	req = httptest.NewRequest(http.MethodGet, "/users", nil)
	req.Header.Set("Authorization", "Bearer "+testToken)
	rr = httptest.NewRecorder()
	h.withAuth(next).ServeHTTP(rr, req)
	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}
