package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

const (
	usersPath = "/users"
	userPath  = "/users/{" + userIDParam + ":-?[0-9]+}"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(h.interceptors()...)

	// routes without authorization
	router.Get("/version", h.getServerVersion)

	// routes guarded by withAuth
	router.Get(usersPath, h.listUsers)
	router.Post(usersPath, h.createUser)
	router.Get(userPath, h.getUser)
	router.Put(userPath, h.updateUser)
	router.Delete(userPath, h.deleteUser)

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}

// interceptors lists the request wrappers in the order they run, outermost
// first. Each one either calls the next or answers the request itself.
func (h *Handler) interceptors() []func(http.Handler) http.Handler {
	return []func(http.Handler) http.Handler{
		h.withTraceID,
		h.withRecovery,
		h.withAuth,
		h.withLogging,
		middleware.StripSlashes,
	}
}
