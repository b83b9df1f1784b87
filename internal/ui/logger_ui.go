package ui

import (
	"io"

	"github.com/wagoodman/go-partybus"

	"github.com/anchore/osident/internal/log"
	"github.com/anchore/osident/osident/event"
	"github.com/anchore/osident/osident/event/parsers"
)

type loggerUI struct {
	unsubscribe  func() error
	reportOutput io.Writer
}

// NewLoggerUI writes all events to the common application logger and writes the final report to the given writer.
func NewLoggerUI(reportWriter io.Writer) UI {
	return &loggerUI{
		reportOutput: reportWriter,
	}
}

func (l *loggerUI) Setup(unsubscribe func() error) error {
	l.unsubscribe = unsubscribe
	return nil
}

func (l loggerUI) Handle(e partybus.Event) error {
	switch e.Type {
	case event.LabelResolved:
		if id, err := parsers.ParseLabelResolved(e); err == nil {
			log.Debugf("resolved %q as %s", id.Input, id.Family)
		}
		return nil
	case event.LabelUnresolved:
		if input, cause, err := parsers.ParseLabelUnresolved(e); err == nil {
			log.Warnf("unable to resolve %q: %+v", input, cause)
		}
		return nil
	case event.BatchFinished:
		if summary, err := parsers.ParseBatchFinished(e); err == nil {
			log.Info(summaryMessage(*summary, false))
		}
		return nil
	case event.AppUpdateAvailable:
		if msg, err := updateAvailableMessage(e); err == nil {
			log.Warn(msg)
		}
		return nil
	case event.ReportReady:
		if err := handleReportReady(e, l.reportOutput); err != nil {
			log.Warnf("unable to show report ready event: %+v", err)
		}
	case event.NonRootCommandFinished:
		if err := handleNonRootCommandFinished(e, l.reportOutput); err != nil {
			log.Warnf("unable to show command finished event: %+v", err)
		}
	// ignore all other events
	default:
		return nil
	}

	// this is the last expected event, stop listening to events
	return l.unsubscribe()
}

func (l loggerUI) Teardown(_ bool) error {
	return nil
}
