// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import "errors"

// errNoHTTPHandler is returned by NewServer when there is no router to serve
// or no address to listen on.
var errNoHTTPHandler = errors.New("no http handler or listen address")
