// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import "errors"

// ErrNoServices is returned by New when the client services are missing.
var ErrNoServices = errors.New("tui: client services are not configured")
