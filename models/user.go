// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// User represents a person record managed by the users API.
type User struct {
	// ID is the unique identifier of the user.
	// It is assigned by the store on creation and never changes afterwards.
	ID int64 `json:"id"`

	// Name is the display name of the user.
	// Required, at least 2 characters long. Characters are Unicode code
	// points, so a single emoji counts as one.
	Name string `json:"name" validate:"notblank,min=2"`

	// Email is the contact address of the user.
	// Required, must contain exactly one "@" that is neither the first nor
	// the last character, and unique across all users.
	Email string `json:"email" validate:"notblank,emailaddress"`
}
