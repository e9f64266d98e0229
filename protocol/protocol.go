// Package protocol defines the contract between the simulation kernel and
// the decision logic driving a repeater setup, plus a reusable base for
// protocols operating on two elementary links.
package protocol

import (
	"github.com/jwallnoefer/requsim/sim"
)

// A Protocol decides, based on the current status of the world and its
// event queue, which events to schedule next. Setup runs once after the
// world has been populated; Check runs whenever the protocol should
// reconsider, typically from event callbacks or after each resolution.
type Protocol interface {
	Setup() error
	Check()
}

// A MessageReadingProtocol additionally reacts to the resolution result of
// a specific event, so callbacks can hand it the event-specific details.
type MessageReadingProtocol interface {
	Protocol
	CheckMessage(result sim.Result)
}
