//go:build !windows
// +build !windows

package ui

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/gookit/color"
	"github.com/wagoodman/go-partybus"
	"github.com/wagoodman/jotframe/pkg/frame"

	"github.com/anchore/osident/internal/log"
	"github.com/anchore/osident/osident/event"
	"github.com/anchore/osident/osident/event/parsers"
)

// logRedirector is a logger whose output can be swapped while the screen is owned by the UI.
type logRedirector interface {
	Out() io.Writer
	SetOutput(io.Writer)
}

// ephemeralTerminalUI shows a live tally of the labels being resolved on stderr. The terminal cursor is moved
// around by the jotframe lib, so anything else writing to the screen (logs included) is buffered until the screen closes.
type ephemeralTerminalUI struct {
	unsubscribe  func() error
	frame        *frame.Frame
	status       *frame.Line
	resolved     int
	unresolved   int
	logBuffer    *bytes.Buffer
	logOutput    io.Writer
	uiOutput     *os.File
	reportOutput io.Writer
}

// NewEphemeralTerminalUI writes all events to a TUI and writes the final report to the given writer.
func NewEphemeralTerminalUI(reportWriter io.Writer) UI {
	return &ephemeralTerminalUI{
		uiOutput:     os.Stderr,
		reportOutput: reportWriter,
	}
}

func (h *ephemeralTerminalUI) Setup(unsubscribe func() error) error {
	h.unsubscribe = unsubscribe
	hideCursor(h.uiOutput)

	// prep the logger to not clobber the screen from now on
	h.logBuffer = &bytes.Buffer{}
	if l, ok := log.Log.(logRedirector); ok {
		h.logOutput = l.Out()
		l.SetOutput(h.logBuffer)
	}

	return h.openScreen()
}

func (h *ephemeralTerminalUI) Handle(e partybus.Event) error {
	switch e.Type {
	case event.LabelResolved:
		h.resolved++
		h.showProgress()

	case event.LabelUnresolved:
		h.unresolved++
		if input, cause, err := parsers.ParseLabelUnresolved(e); err == nil {
			log.Warnf("unable to resolve %q: %+v", input, cause)
		}
		h.showProgress()

	case event.BatchFinished:
		summary, err := parsers.ParseBatchFinished(e)
		if err != nil {
			log.Errorf("unable to show %s event: %+v", e.Type, err)
			return nil
		}
		h.writeStatus(color.Bold.Sprint("✔ ") + summaryMessage(*summary, true))

	case event.AppUpdateAvailable:
		msg, err := updateAvailableMessage(e)
		if err != nil {
			log.Errorf("unable to show %s event: %+v", e.Type, err)
			return nil
		}
		line, err := h.frame.Prepend()
		if err != nil {
			return err
		}
		_, _ = io.WriteString(line, color.Magenta.Sprint(msg))

	case event.ReportReady:
		// the report goes to stdout, so the terminal state must be reset first
		h.closeScreen()

		if err := handleReportReady(e, h.reportOutput); err != nil {
			log.Errorf("unable to show %s event: %+v", e.Type, err)
		}

		// this is the last expected event, stop listening to events
		return h.unsubscribe()

	case event.NonRootCommandFinished:
		h.closeScreen()

		if err := handleNonRootCommandFinished(e, h.reportOutput); err != nil {
			log.Errorf("unable to show %s event: %+v", e.Type, err)
		}

		return h.unsubscribe()
	}
	return nil
}

func (h *ephemeralTerminalUI) showProgress() {
	h.writeStatus(fmt.Sprintf("%s Resolving labels  [%d resolved, %d unrecognized]", color.Cyan.Sprint("•"), h.resolved, h.unresolved))
}

func (h *ephemeralTerminalUI) writeStatus(s string) {
	if h.status == nil {
		line, err := h.frame.Append()
		if err != nil {
			log.Errorf("unable to add status line: %+v", err)
			return
		}
		h.status = line
	}
	_, _ = io.WriteString(h.status, s)
}

func (h *ephemeralTerminalUI) openScreen() error {
	config := frame.Config{
		PositionPolicy: frame.PolicyFloatForward,
		// only report output to stderr, reserve report output for stdout
		Output: h.uiOutput,
	}

	fr, err := frame.New(config)
	if err != nil {
		return fmt.Errorf("failed to create the screen object: %w", err)
	}
	h.frame = fr

	return nil
}

func (h *ephemeralTerminalUI) closeScreen() {
	if h.frame == nil || h.frame.IsClosed() {
		return
	}
	h.frame.Close()
	frame.Close()

	h.flushLog()
}

func (h *ephemeralTerminalUI) flushLog() {
	// flush any warnings to the screen before the report
	if l, ok := log.Log.(logRedirector); ok && h.logOutput != nil {
		l.SetOutput(h.logOutput)
		_, _ = io.Copy(h.logOutput, h.logBuffer)
		return
	}
	_, _ = io.Copy(h.uiOutput, h.logBuffer)
}

func (h *ephemeralTerminalUI) Teardown(_ bool) error {
	h.closeScreen()
	showCursor(h.uiOutput)
	return nil
}

func hideCursor(output io.Writer) {
	fmt.Fprint(output, "\x1b[?25l")
}

func showCursor(output io.Writer) {
	fmt.Fprint(output, "\x1b[?25h")
}
