// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators enforces field-level rules on incoming payloads before
// they reach the service core or the store.
//
// Validators never look at stored data: rules that need the store (such as
// email uniqueness) belong to the service layer.
package validators

import "context"

// Validator validates arbitrary input values.
type Validator interface {
	// Validate validates the provided input and optionally
	// restricts validation to specific named fields.
	// It returns [ValidationErrors] when the value breaks any rule.
	Validate(context.Context, any, ...string) error
}
