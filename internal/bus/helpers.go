package bus

import (
	"github.com/wagoodman/go-partybus"

	"github.com/anchore/osident/osident/event"
)

// NonRootCommandFinished hands the output of a subcommand to the UI.
func NonRootCommandFinished(result string) {
	Publish(partybus.Event{
		Type:  event.NonRootCommandFinished,
		Value: result,
	})
}
