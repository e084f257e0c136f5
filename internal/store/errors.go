// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "errors"

// Sentinel errors returned by [UserStore] methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrUserNotFound is returned when the requested id does not belong to any
	// stored user.
	ErrUserNotFound = errors.New("user not found")

	// ErrEmailAlreadyExists is returned by Insert and Update when another user
	// already holds the email. The check runs under the store's write lock, so
	// two concurrent writers can never both store the same address.
	ErrEmailAlreadyExists = errors.New("email already exists")
)
