// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"strings"

	"github.com/MKhiriev/go-agent-chat/models"
)

const appName = "Agent Chat"

func renderBuildInfoWindow(info models.AppBuildInfo) string {
	lines := append([]string{"Application: " + appName}, info.Lines()...)
	return renderPage("ABOUT", strings.Join(lines, "\n"), "esc: back")
}
