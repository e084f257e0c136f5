// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors logged by the auth interceptor when a request to a
// protected route is rejected.
var (
	// ErrEmptyAuthorizationHeader is logged when the request carries no
	// "Authorization" header at all.
	ErrEmptyAuthorizationHeader = errors.New("empty `Authorization` header")

	// ErrInvalidToken is logged when the "Authorization" header does not
	// match "Bearer <token>" exactly.
	ErrInvalidToken = errors.New("invalid token in `Authorization` header")
)

// errTrailingData is logged when a request body holds more than one JSON value.
var errTrailingData = errors.New("unexpected data after JSON value")

// Messages written to API clients.
const (
	unauthorizedMessage        = "Unauthorized"
	internalServerErrorMessage = "Internal server error."
	invalidJSONMessage         = "Invalid JSON was passed."
	unexpectedErrorPrefix      = "Unexpected error: "

	emailAlreadyExistsMessage      = "Email already exists."
	emailTakenByAnotherUserMessage = "Another user with this email already exists."

	userNotFoundFormat = "User with ID %d not found."
	userDeletedFormat  = "User with ID %d deleted."
)
