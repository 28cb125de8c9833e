// SPDX-License-Identifier: Apache-2.0

package tui

import (
	"strings"

	"github.com/owenmerry/skyscanner-flight-search-sub002/models"
)

func renderBuildInfoWindow(info models.AppBuildInfo) string {
	var b strings.Builder

	b.WriteString("Application: flight search\n")
	b.WriteString("Version: ")
	b.WriteString(info.BuildVersion())
	b.WriteString("\nDate: ")
	b.WriteString(info.BuildDate())
	b.WriteString("\nCommit: ")
	b.WriteString(info.BuildCommit())

	return renderPage("ABOUT", b.String(), "esc: back")
}
