// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks request payloads of the development backend
// before they reach the service layer.
//
// A Validator accepts a value and an optional list of field names; with no
// fields every rule for the value's type is applied.
package validators

import "context"

// Validator validates the provided input and optionally restricts
// validation to specific named fields.
type Validator interface {
	Validate(context.Context, any, ...string) error
}
