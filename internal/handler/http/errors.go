// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

var (
	// ErrInvalidJSON is returned when a request body cannot be decoded.
	ErrInvalidJSON = errors.New("invalid JSON body")

	// ErrInvalidQueryParam is returned when a numeric query parameter is
	// not an integer.
	ErrInvalidQueryParam = errors.New("invalid query parameter")
)
