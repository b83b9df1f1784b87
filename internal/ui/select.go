//go:build !windows
// +build !windows

package ui

import (
	"io"
	"os"

	"golang.org/x/term"
)

// Select returns the UIs to try in order. The terminal UI is only offered when stderr is a terminal and neither
// verbose logging nor quiet mode was requested; the logger UI always follows as the fallback. The final report is
// written to reportWriter.
func Select(verbose, quiet bool, reportWriter io.Writer) []UI {
	loggerUI := NewLoggerUI(reportWriter)
	if verbose || quiet || !term.IsTerminal(int(os.Stderr.Fd())) {
		return []UI{loggerUI}
	}
	return []UI{NewEphemeralTerminalUI(reportWriter), loggerUI}
}
