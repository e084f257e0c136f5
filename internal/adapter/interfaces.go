// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides a typed client for the users API.
//
// The primary abstraction is [UserAPI], which hides the REST details of the
// server: bearer token header, JSON encoding and the /users routes.
// [NewHTTPUserAPI] is the HTTP/REST implementation built on go-resty.
//
// Non-2xx responses are mapped to the sentinel errors defined in errors.go by
// mapHTTPError so that callers can use [errors.Is] (e.g. [ErrNotFound] for
// 404, [ErrUnauthorized] for 401). The server's message is kept in the
// wrapped error text.
package adapter

import (
	"context"

	"github.com/MKhiriev/go-user-service/models"
)

// UserAPI defines the operations of the users API as seen by a client.
type UserAPI interface {
	// Version returns the plain-text server version from GET /version.
	// It does not need a token.
	Version(ctx context.Context) (string, error)

	// ListUsers returns all users in insertion order.
	ListUsers(ctx context.Context) ([]models.User, error)

	// GetUser returns the user with id, or [ErrNotFound].
	GetUser(ctx context.Context, id int64) (models.User, error)

	// CreateUser creates a user from name and email and returns it with the
	// id assigned by the server. Validation failures and duplicate emails
	// come back as [ErrBadRequest].
	CreateUser(ctx context.Context, user models.User) (models.User, error)

	// UpdateUser replaces name and email of the user with id.
	// Any id carried by user is ignored by the server.
	UpdateUser(ctx context.Context, id int64, user models.User) (models.User, error)

	// DeleteUser removes the user with id and returns the server's
	// confirmation message.
	DeleteUser(ctx context.Context, id int64) (string, error)
}
