// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
)

func TestCheckHTTPMethod_TableTest(t *testing.T) {
	router, _, _ := newMockedRouter(t)

	notFound := httptest.NewRecorder()
	http.NotFound(notFound, httptest.NewRequest(http.MethodGet, "/", nil))

	tests := []struct {
		name   string
		method string
		path   string
	}{
		{name: "PATCH /users", method: http.MethodPatch, path: "/users"},
		{name: "PUT /users", method: http.MethodPut, path: "/users"},
		{name: "DELETE /users", method: http.MethodDelete, path: "/users"},
		{name: "POST /users/{id}", method: http.MethodPost, path: "/users/1"},
		{name: "PATCH /users/{id}", method: http.MethodPatch, path: "/users/1"},
		{name: "POST /version", method: http.MethodPost, path: "/version"},
		{name: "DELETE /version", method: http.MethodDelete, path: "/version"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := doRequest(router, tt.method, tt.path, "", true)

			assert.Equal(t, http.StatusNotFound, rr.Code, "wrong method must look like an unknown path")
			assert.NotEqual(t, http.StatusMethodNotAllowed, rr.Code)
			assert.Equal(t, notFound.Body.String(), rr.Body.String())
		})
	}
}

func TestCheckHTTPMethod_WrongMethodStillRequiresAuth(t *testing.T) {
	router, _, _ := newMockedRouter(t)

	rr := doRequest(router, http.MethodPatch, "/users/1", "", false)

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}

func TestCheckHTTPMethod_StandaloneRouter(t *testing.T) {
	router := chi.NewRouter()
	router.Get("/only-get", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	router.MethodNotAllowed(CheckHTTPMethod(router))

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/only-get", nil))
	assert.Equal(t, http.StatusOK, rr.Code)

	for _, method := range []string{http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete} {
		t.Run("wrong: "+method, func(t *testing.T) {
			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, httptest.NewRequest(method, "/only-get", nil))
			assert.Equal(t, http.StatusNotFound, rr.Code)
		})
	}
}

func TestAllowedMethods(t *testing.T) {
	router := newTestHandler().Init()

	tests := []struct {
		path string
		want []string
	}{
		{path: "/users", want: []string{http.MethodGet, http.MethodPost}},
		{path: "/users/5", want: []string{http.MethodGet, http.MethodPut, http.MethodDelete}},
		{path: "/version", want: []string{http.MethodGet}},
		{path: "/users/-1", want: []string{http.MethodGet, http.MethodPut, http.MethodDelete}},
		{path: "/users/abc", want: nil},
		{path: "/users/1-2", want: nil},
		{path: "/unknown", want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			assert.Equal(t, tt.want, allowedMethods(router, tt.path))
		})
	}
}
