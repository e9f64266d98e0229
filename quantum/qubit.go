// Package quantum provides the simulated physical entities of a quantum
// repeater network (qubits, entangled pairs, stations and sources) and
// the events that act on them.
package quantum

import (
	"github.com/jwallnoefer/requsim/noise"
	"github.com/jwallnoefer/requsim/sim"
)

// A NoiseHandler is registered by whichever higher-order object currently
// owns a qubit's joint state. It returns true if it consumed the channel.
type NoiseHandler func(channel *noise.Channel, params ...float64) bool

type registeredHandler struct {
	id int
	fn NoiseHandler
}

// A Qubit represents one physical qubit slot. It does not hold a state of
// its own; noise applied to it is delegated to the registered noise
// handlers (usually a Pair owning the joint state) or, if no handler can
// take it yet, queued as unresolved until one can.
type Qubit struct {
	sim.WorldObjectBase

	station           *Station
	higherOrderObject sim.WorldObject
	handlers          []registeredHandler
	nextHandlerID     int
	unresolved        []*noise.Channel
	timeDependent     []*noise.Channel
}

// NewQubit creates a free-floating qubit that is not located at any
// station. Stations create their qubits through CreateQubit.
func NewQubit(world *sim.World) *Qubit {
	q := new(Qubit)
	q.InitWorldObject(world, q, "Qubit", "")
	return q
}

// Station returns the station the qubit is located at, or nil.
func (q *Qubit) Station() *Station {
	return q.station
}

// HigherOrderObject returns the object owning this qubit's joint state
// (e.g. the Pair it belongs to), or nil.
func (q *Qubit) HigherOrderObject() sim.WorldObject {
	return q.higherOrderObject
}

func (q *Qubit) setHigherOrderObject(obj sim.WorldObject) {
	q.higherOrderObject = obj
}

// AddNoiseHandler registers a handler and returns an id for later removal.
// Every currently unresolved noise item is retroactively offered to the
// new handler; items it consumes are removed. This models a Pair taking
// ownership of the qubit's state and absorbing noise that arrived while
// the qubit was free-floating.
func (q *Qubit) AddNoiseHandler(handler NoiseHandler) int {
	q.nextHandlerID++
	id := q.nextHandlerID
	q.handlers = append(q.handlers, registeredHandler{id: id, fn: handler})

	// Two-phase pass: collect what the handler resolves, then remove, so
	// the unresolved list is never mutated while iterating.
	var resolved []int
	for i, frozen := range q.unresolved {
		if handler(frozen) {
			resolved = append(resolved, i)
		}
	}
	if len(resolved) > 0 {
		kept := q.unresolved[:0]
		next := 0
		for i, frozen := range q.unresolved {
			if next < len(resolved) && resolved[next] == i {
				next++
				continue
			}
			kept = append(kept, frozen)
		}
		q.unresolved = kept
	}

	return id
}

// RemoveNoiseHandler removes a handler by id. Removing an id that is not
// registered is a no-op.
func (q *Qubit) RemoveNoiseHandler(id int) {
	for i, h := range q.handlers {
		if h.id == id {
			q.handlers = append(q.handlers[:i], q.handlers[i+1:]...)
			return
		}
	}
}

// ApplyNoise delegates a noise channel to the registered handlers in
// registration order. The first handler reporting success consumes it; if
// none succeeds, the channel is frozen with its parameters and queued as
// unresolved.
func (q *Qubit) ApplyNoise(channel *noise.Channel, params ...float64) {
	for _, h := range q.handlers {
		if h.fn(channel, params...) {
			return
		}
	}
	q.unresolved = append(q.unresolved, channel.Freeze(params...))
}

// AddTimeDependentNoise registers a channel that is applied automatically
// with the elapsed interval whenever the qubit's time advances.
func (q *Qubit) AddTimeDependentNoise(channel *noise.Channel) {
	q.timeDependent = append(q.timeDependent, channel)
}

// UnresolvedNoiseCount returns the number of queued unresolved noise items.
func (q *Qubit) UnresolvedNoiseCount() int {
	return len(q.unresolved)
}

// UpdateTime applies every time-dependent noise channel for the interval
// since the last update, then advances the qubit's timestamp.
func (q *Qubit) UpdateTime() {
	elapsed := q.World().EventQueue().CurrentTime() - q.LastUpdated()
	if elapsed > 0 {
		for _, channel := range q.timeDependent {
			q.ApplyNoise(channel, float64(elapsed))
		}
	}
	q.WorldObjectBase.UpdateTime()
}

// Destroy removes the qubit from its station and from the world.
func (q *Qubit) Destroy() {
	if !q.InWorld() {
		return
	}
	if q.station != nil {
		q.station.removeQubit(q)
	}
	q.WorldObjectBase.Destroy()
}
