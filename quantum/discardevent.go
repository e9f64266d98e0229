package quantum

import (
	"github.com/jwallnoefer/requsim/sim"
)

// A DiscardQubitEvent discards a qubit, e.g. because it sat in memory past
// the station's cutoff time. If the qubit belongs to a Pair, the whole
// pair is torn down and its resource costs are left with the stations.
//
// Discard events default to the lowest priority so that same-time events
// using the qubit go first, and they act on blocked objects.
type DiscardQubitEvent struct {
	*sim.EventBase

	qubit *Qubit
}

// NewDiscardQubitEvent creates a DiscardQubitEvent resolving at time t.
func NewDiscardQubitEvent(t sim.VTimeInSec, qubit *Qubit) *DiscardQubitEvent {
	e := &DiscardQubitEvent{
		EventBase: sim.NewEventBase(t, []sim.WorldObject{qubit}),
		qubit:     qubit,
	}
	e.SetPriority(sim.PriorityDiscard)
	e.SetIgnoreBlocked(true)
	return e
}

// Qubit returns the qubit to be discarded.
func (e *DiscardQubitEvent) Qubit() *Qubit {
	return e.qubit
}

// EventType returns "DiscardQubitEvent".
func (e *DiscardQubitEvent) EventType() string {
	return "DiscardQubitEvent"
}

// Effect discards the qubit, and the pair it belongs to if there is one.
func (e *DiscardQubitEvent) Effect() sim.Details {
	destroyed := []sim.WorldObject{}
	if pair, ok := e.qubit.HigherOrderObject().(*Pair); ok && pair != nil {
		qubits := pair.Qubits()
		pair.DestroyAndTrackResources()
		for _, q := range qubits {
			q.Destroy()
			destroyed = append(destroyed, q)
		}
		destroyed = append(destroyed, pair)
	} else {
		e.qubit.Destroy()
		destroyed = append(destroyed, e.qubit)
	}
	return sim.Details{DetailDestroyedObjects: destroyed}
}
