// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-user-service/internal/logger"
	"github.com/go-chi/chi/v5"
)

// routedMethods are the methods tried when a request path is known to the
// router but its method is not.
var routedMethods = []string{
	http.MethodGet,
	http.MethodPost,
	http.MethodPut,
	http.MethodPatch,
	http.MethodDelete,
}

// CheckHTTPMethod returns the handler registered as the router's
// MethodNotAllowed handler via [chi.Mux.MethodNotAllowed].
//
// Chi answers 405 when a path matches a route but the method is not handled.
// CheckHTTPMethod replaces that with the router's regular 404, so a wrong
// method on /users or /users/{id} is indistinguishable from an unknown path.
//
// Usage:
//
//	router := chi.NewRouter()
//	// ... register routes ...
//	router.MethodNotAllowed(CheckHTTPMethod(router))
func CheckHTTPMethod(router *chi.Mux) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger.FromRequest(r).Debug().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Strs("allowed", allowedMethods(router, r.URL.Path)).
			Msg("method is not routed for path")

		router.NotFoundHandler().ServeHTTP(w, r)
	}
}

// allowedMethods lists the methods routes has a handler for on path.
func allowedMethods(routes chi.Routes, path string) []string {
	var methods []string
	for _, method := range routedMethods {
		if routes.Match(chi.NewRouteContext(), method, path) {
			methods = append(methods, method)
		}
	}
	return methods
}
