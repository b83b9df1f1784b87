/*
Package event provides event types for all events that the osident library published onto the event bus. By convention, for each event
defined here there should be a corresponding event parser defined in the parsers/ child package.
*/
package event

import "github.com/wagoodman/go-partybus"

const (
	// LabelResolved is a partybus event that occurs when a single label resolves to a canonical name
	LabelResolved partybus.EventType = "osident-label-resolved"

	// LabelUnresolved is a partybus event that occurs when no product family accepts a label
	LabelUnresolved partybus.EventType = "osident-label-unresolved"

	// BatchFinished is a partybus event that occurs when every label of a batch has been tried
	BatchFinished partybus.EventType = "osident-batch-finished"

	// ReportReady is a partybus event that occurs when the final report can be shown to the user
	ReportReady partybus.EventType = "osident-report-ready"

	// AppUpdateAvailable is a partybus event that occurs when a newer osident release has been published
	AppUpdateAvailable partybus.EventType = "osident-app-update-available"

	// NonRootCommandFinished is a partybus event that occurs when a subcommand has output to show
	NonRootCommandFinished partybus.EventType = "osident-non-root-command-finished"
)
