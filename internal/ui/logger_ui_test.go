package ui

import (
	"bytes"
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wagoodman/go-partybus"

	"github.com/anchore/osident/osident/event"
)

type presenterStub struct {
	output string
	err    error
}

func (p presenterStub) Present(w io.Writer) error {
	if p.err != nil {
		return p.err
	}
	_, err := io.WriteString(w, p.output)
	return err
}

func TestLoggerUI_Handle(t *testing.T) {
	tests := []struct {
		name         string
		event        partybus.Event
		output       string
		unsubscribed bool
	}{
		{
			name:         "report ready",
			event:        partybus.Event{Type: event.ReportReady, Value: presenterStub{output: "Microsoft Windows 7 SP1\n"}},
			output:       "Microsoft Windows 7 SP1\n",
			unsubscribed: true,
		},
		{
			name:         "report fails to render",
			event:        partybus.Event{Type: event.ReportReady, Value: presenterStub{err: errors.New("broken")}},
			unsubscribed: true,
		},
		{
			name:         "non root command finished",
			event:        partybus.Event{Type: event.NonRootCommandFinished, Value: "windows-11\n"},
			output:       "windows-11\n",
			unsubscribed: true,
		},
		{
			name:  "batch finished",
			event: partybus.Event{Type: event.BatchFinished, Value: event.Summary{Total: 1, Resolved: 1, Distinct: 1}},
		},
		{
			name:  "label unresolved",
			event: partybus.Event{Type: event.LabelUnresolved, Source: "eol-1", Value: errors.New("unrecognized")},
		},
		{
			name:  "app update available",
			event: partybus.Event{Type: event.AppUpdateAvailable, Value: "v1.0.0"},
		},
		{
			name:  "unknown event",
			event: partybus.Event{Type: "something-else"},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			buf := &bytes.Buffer{}
			unsubscribed := false

			u := NewLoggerUI(buf)
			require.NoError(t, u.Setup(func() error {
				unsubscribed = true
				return nil
			}))

			require.NoError(t, u.Handle(test.event))
			assert.Equal(t, test.output, buf.String())
			assert.Equal(t, test.unsubscribed, unsubscribed)
			assert.NoError(t, u.Teardown(false))
		})
	}
}

func TestLoggerUI_UnsubscribeError(t *testing.T) {
	u := NewLoggerUI(io.Discard)
	require.NoError(t, u.Setup(func() error {
		return partybus.ErrUnsubscribe
	}))

	err := u.Handle(partybus.Event{Type: event.NonRootCommandFinished, Value: "done"})
	assert.True(t, errors.Is(err, partybus.ErrUnsubscribe))
}

func TestSummaryMessage(t *testing.T) {
	tests := []struct {
		name     string
		summary  event.Summary
		expected string
	}{
		{
			name:     "single label",
			summary:  event.Summary{Total: 1, Resolved: 1, Distinct: 1},
			expected: "1 label: 1 resolved, 0 unrecognized (1 distinct)",
		},
		{
			name:     "large batch",
			summary:  event.Summary{Total: 12000, Resolved: 11500, Unresolved: 500, Distinct: 42},
			expected: "12,000 labels: 11,500 resolved, 500 unrecognized (42 distinct)",
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			assert.Equal(t, test.expected, summaryMessage(test.summary, false))
		})
	}
}
