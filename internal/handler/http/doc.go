// Package http implements the HTTP transport layer of the user service.
//
// It exposes route wiring, the user CRUD handlers and the interceptor chain
// (trace id, panic recovery, bearer token check and access logging) applied
// to every request before it is delegated to the service layer.
package http
