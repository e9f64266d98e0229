package quantum

import (
	"gonum.org/v1/gonum/mat"

	"github.com/jwallnoefer/requsim/sim"
)

// Detail keys for the event-specific entries of resolution results.
const (
	DetailSource           = "source"
	DetailOutputPair       = "output_pair"
	DetailSwappingStation  = "swapping_station"
	DetailIsSuccessful     = "is_successful"
	DetailDestroyedObjects = "destroyed_objects"
)

// A SourceEvent generates an entangled pair at the target stations of its
// source.
//
// Resolution details: DetailSource (*Source), DetailOutputPair (*Pair).
type SourceEvent struct {
	*sim.EventBase

	source       *Source
	initialState *mat.CDense
	pairOptions  []PairOption
}

// NewSourceEvent creates a SourceEvent resolving at time t. The event
// requires the source and both its target stations to exist.
func NewSourceEvent(
	t sim.VTimeInSec,
	source *Source,
	initialState *mat.CDense,
	pairOptions ...PairOption,
) *SourceEvent {
	required := []sim.WorldObject{
		source,
		source.targetStations[0],
		source.targetStations[1],
	}
	return &SourceEvent{
		EventBase:    sim.NewEventBase(t, required),
		source:       source,
		initialState: initialState,
		pairOptions:  pairOptions,
	}
}

// Source returns the source that will generate the pair.
func (e *SourceEvent) Source() *Source {
	return e.source
}

// EventType returns "SourceEvent".
func (e *SourceEvent) EventType() string {
	return "SourceEvent"
}

// Effect generates the pair.
func (e *SourceEvent) Effect() sim.Details {
	pair := e.source.GeneratePair(e.initialState, e.pairOptions...)
	return sim.Details{
		DetailSource:     e.source,
		DetailOutputPair: pair,
	}
}
