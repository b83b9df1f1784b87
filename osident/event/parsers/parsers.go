/*
Package parsers contains parser functions to assist in extracting typed payloads from the osident events.
*/
package parsers

import (
	"fmt"

	"github.com/wagoodman/go-partybus"

	"github.com/anchore/osident/osident/event"
	"github.com/anchore/osident/osident/presenter"
	"github.com/anchore/osident/osident/windows"
)

type ErrBadPayload struct {
	Type  partybus.EventType
	Field string
	Value interface{}
}

func (e *ErrBadPayload) Error() string {
	return fmt.Sprintf("event='%s' has bad event payload field='%v': '%+v'", string(e.Type), e.Field, e.Value)
}

func newPayloadErr(t partybus.EventType, field string, value interface{}) error {
	return &ErrBadPayload{
		Type:  t,
		Field: field,
		Value: value,
	}
}

func checkEventType(actual, expected partybus.EventType) error {
	if actual != expected {
		return newPayloadErr(expected, "Type", actual)
	}
	return nil
}

func ParseLabelResolved(e partybus.Event) (*windows.Identification, error) {
	if err := checkEventType(e.Type, event.LabelResolved); err != nil {
		return nil, err
	}

	id, ok := e.Value.(windows.Identification)
	if !ok {
		return nil, newPayloadErr(e.Type, "Value", e.Value)
	}

	return &id, nil
}

// ParseLabelUnresolved returns the label that failed and the reason.
func ParseLabelUnresolved(e partybus.Event) (string, error, error) {
	if err := checkEventType(e.Type, event.LabelUnresolved); err != nil {
		return "", nil, err
	}

	input, ok := e.Source.(string)
	if !ok {
		return "", nil, newPayloadErr(e.Type, "Source", e.Source)
	}

	cause, ok := e.Value.(error)
	if !ok {
		return "", nil, newPayloadErr(e.Type, "Value", e.Value)
	}

	return input, cause, nil
}

func ParseBatchFinished(e partybus.Event) (*event.Summary, error) {
	if err := checkEventType(e.Type, event.BatchFinished); err != nil {
		return nil, err
	}

	summary, ok := e.Value.(event.Summary)
	if !ok {
		return nil, newPayloadErr(e.Type, "Value", e.Value)
	}

	return &summary, nil
}

func ParseReportReady(e partybus.Event) (presenter.Presenter, error) {
	if err := checkEventType(e.Type, event.ReportReady); err != nil {
		return nil, err
	}

	pres, ok := e.Value.(presenter.Presenter)
	if !ok {
		return nil, newPayloadErr(e.Type, "Value", e.Value)
	}

	return pres, nil
}

func ParseNonRootCommandFinished(e partybus.Event) (*string, error) {
	if err := checkEventType(e.Type, event.NonRootCommandFinished); err != nil {
		return nil, err
	}

	result, ok := e.Value.(string)
	if !ok {
		return nil, newPayloadErr(e.Type, "Value", e.Value)
	}

	return &result, nil
}

func ParseAppUpdateAvailable(e partybus.Event) (string, error) {
	if err := checkEventType(e.Type, event.AppUpdateAvailable); err != nil {
		return "", err
	}

	newVersion, ok := e.Value.(string)
	if !ok {
		return "", newPayloadErr(e.Type, "Value", e.Value)
	}

	return newVersion, nil
}
