package parsers

import (
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wagoodman/go-partybus"

	"github.com/anchore/osident/osident/event"
	"github.com/anchore/osident/osident/windows"
)

type presenterMock struct{}

func (presenterMock) Present(io.Writer) error { return nil }

func TestParseLabelResolved(t *testing.T) {
	id := windows.Identification{Input: "11-24h2-e", Family: windows.Windows11}

	actual, err := ParseLabelResolved(partybus.Event{Type: event.LabelResolved, Value: id})
	require.NoError(t, err)
	assert.Equal(t, id, *actual)

	_, err = ParseLabelResolved(partybus.Event{Type: event.LabelResolved, Value: "nope"})
	var bad *ErrBadPayload
	require.True(t, errors.As(err, &bad))
	assert.Equal(t, "Value", bad.Field)
}

func TestParseLabelUnresolved(t *testing.T) {
	cause := errors.New("unrecognized")

	input, actual, err := ParseLabelUnresolved(partybus.Event{Type: event.LabelUnresolved, Source: "eol-1", Value: cause})
	require.NoError(t, err)
	assert.Equal(t, "eol-1", input)
	assert.Equal(t, cause, actual)

	_, _, err = ParseLabelUnresolved(partybus.Event{Type: event.LabelUnresolved, Value: cause})
	assert.Error(t, err)
}

func TestParsers_WrongEventType(t *testing.T) {
	e := partybus.Event{Type: event.BatchFinished, Value: event.Summary{}}

	_, err := ParseLabelResolved(e)
	assert.Error(t, err)
	_, err = ParseReportReady(e)
	assert.Error(t, err)
	_, err = ParseNonRootCommandFinished(e)
	assert.Error(t, err)

	summary, err := ParseBatchFinished(e)
	require.NoError(t, err)
	assert.Equal(t, event.Summary{}, *summary)
}

func TestParseReportReady(t *testing.T) {
	pres, err := ParseReportReady(partybus.Event{Type: event.ReportReady, Value: presenterMock{}})
	require.NoError(t, err)
	assert.NotNil(t, pres)
}

func TestParseNonRootCommandFinished(t *testing.T) {
	result, err := ParseNonRootCommandFinished(partybus.Event{Type: event.NonRootCommandFinished, Value: "done\n"})
	require.NoError(t, err)
	assert.Equal(t, "done\n", *result)
}

func TestParseAppUpdateAvailable(t *testing.T) {
	v, err := ParseAppUpdateAvailable(partybus.Event{Type: event.AppUpdateAvailable, Value: "v0.2.0"})
	require.NoError(t, err)
	assert.Equal(t, "v0.2.0", v)

	_, err = ParseAppUpdateAvailable(partybus.Event{Type: event.ReportReady, Value: "v0.2.0"})
	assert.Error(t, err)
}
