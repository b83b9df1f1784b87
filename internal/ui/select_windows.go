//go:build windows
// +build windows

package ui

import (
	"io"
)

// Select returns the logger UI only; the terminal UI is not supported on Windows consoles.
func Select(_, _ bool, reportWriter io.Writer) []UI {
	return []UI{NewLoggerUI(reportWriter)}
}
