/*
Package bus provides access to a singleton instance of an event bus (provided by the calling application). The event
bus is intended to allow for the library to publish events which library consumers can subscribe to. These events can
provide static information, but also have an object as a payload for which the consumer can poll for updates. This is
akin to a logger, except instead of only allowing strings to be logged, rich objects that can be interacted with.

Note: this is set to a singleton since it is a "global" and cross-cutting concern.
*/
package bus

import "github.com/wagoodman/go-partybus"

var publisher partybus.Publisher

// SetPublisher sets the singleton event bus publisher. This is optional; if no bus is provided, the library will
// behave no differently than if a bus had been provided.
func SetPublisher(p partybus.Publisher) {
	publisher = p
}

// Publish an event onto the bus. If there is no bus set by the calling application, this does nothing.
func Publish(e partybus.Event) {
	if publisher != nil {
		publisher.Publish(e)
	}
}
