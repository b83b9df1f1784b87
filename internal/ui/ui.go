package ui

import (
	"github.com/wagoodman/go-partybus"
)

// UI reacts to events on the bus until the final report has been shown.
type UI interface {
	// Setup prepares the output device; unsubscribe ends the event stream once the report is shown.
	Setup(unsubscribe func() error) error
	partybus.Handler
	// Teardown releases the output device. When forced, pending output is dropped.
	Teardown(force bool) error
}
