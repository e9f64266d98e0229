package protocol

import (
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/mat"

	"github.com/jwallnoefer/requsim/quantum"
	"github.com/jwallnoefer/requsim/sim"
)

// A PairSample is one long-range pair accepted by a protocol, recorded at
// the time the necessary classical communication has arrived.
type PairSample struct {
	Time  sim.VTimeInSec
	State *mat.CDense
}

// TwoLink collects the world-inspection helpers shared by protocols that
// operate on two elementary links A-central and central-B. It is not a
// complete Protocol; embed it and supply Setup validation hooks and the
// Check method with the actual decision logic.
type TwoLink struct {
	world              *sim.World
	communicationSpeed float64

	stationA       *quantum.Station
	stationCentral *quantum.Station
	stationB       *quantum.Station
	sourceA        *quantum.SchedulingSource
	sourceB        *quantum.SchedulingSource

	samples []PairSample
}

// NewTwoLink creates the helper base for a two-link setup in the given
// world. communicationSpeed is the speed of the classical channel between
// the stations, in meters per second.
func NewTwoLink(world *sim.World, communicationSpeed float64) *TwoLink {
	return &TwoLink{
		world:              world,
		communicationSpeed: communicationSpeed,
	}
}

// World returns the world the protocol operates on.
func (t *TwoLink) World() *sim.World {
	return t.world
}

// Setup identifies the three stations and two scheduling sources of the
// setup. It must run after the world has been populated.
func (t *TwoLink) Setup() error {
	stations := make([]*quantum.Station, 0, 3)
	for _, obj := range t.world.ObjectsByType("Station") {
		station, ok := obj.(*quantum.Station)
		if !ok {
			return fmt.Errorf("object %s registered as Station has type %T",
				obj.Label(), obj)
		}
		stations = append(stations, station)
	}
	if len(stations) != 3 {
		return fmt.Errorf("two-link setup needs exactly 3 stations, found %d",
			len(stations))
	}
	sort.Slice(stations, func(i, j int) bool {
		return stations[i].Position() < stations[j].Position()
	})
	t.stationA, t.stationCentral, t.stationB = stations[0], stations[1], stations[2]

	sources := t.world.ObjectsByType("Source")
	if len(sources) != 2 {
		return fmt.Errorf("two-link setup needs exactly 2 sources, found %d",
			len(sources))
	}
	for _, obj := range sources {
		source, ok := obj.(*quantum.SchedulingSource)
		if !ok {
			return fmt.Errorf(
				"source %s cannot schedule its own generation events",
				obj.Label())
		}
		switch {
		case t.servesLink(source, t.stationA, t.stationCentral):
			t.sourceA = source
		case t.servesLink(source, t.stationCentral, t.stationB):
			t.sourceB = source
		default:
			return fmt.Errorf("source %s serves neither link", source.Label())
		}
	}
	if t.sourceA == nil || t.sourceB == nil {
		return fmt.Errorf("could not find a source for each link")
	}
	return nil
}

func (t *TwoLink) servesLink(
	source *quantum.SchedulingSource,
	station1, station2 *quantum.Station,
) bool {
	targets := source.TargetStations()
	return (targets[0] == station1 && targets[1] == station2) ||
		(targets[0] == station2 && targets[1] == station1)
}

// StationA returns the leftmost station.
func (t *TwoLink) StationA() *quantum.Station {
	return t.stationA
}

// StationCentral returns the middle station.
func (t *TwoLink) StationCentral() *quantum.Station {
	return t.stationCentral
}

// StationB returns the rightmost station.
func (t *TwoLink) StationB() *quantum.Station {
	return t.stationB
}

// SourceA returns the source of the A-central link.
func (t *TwoLink) SourceA() *quantum.SchedulingSource {
	return t.sourceA
}

// SourceB returns the source of the central-B link.
func (t *TwoLink) SourceB() *quantum.SchedulingSource {
	return t.sourceB
}

func (t *TwoLink) pairsBetween(station1, station2 *quantum.Station) []*quantum.Pair {
	var out []*quantum.Pair
	for _, obj := range t.world.ObjectsByType("Pair") {
		pair, ok := obj.(*quantum.Pair)
		if !ok {
			continue
		}
		if pair.IsBetweenStations(station1, station2) {
			out = append(out, pair)
		}
	}
	return out
}

// LeftPairs returns the live pairs of the A-central link.
func (t *TwoLink) LeftPairs() []*quantum.Pair {
	return t.pairsBetween(t.stationA, t.stationCentral)
}

// RightPairs returns the live pairs of the central-B link.
func (t *TwoLink) RightPairs() []*quantum.Pair {
	return t.pairsBetween(t.stationCentral, t.stationB)
}

// LongRangePairs returns the live pairs spanning A-B.
func (t *TwoLink) LongRangePairs() []*quantum.Pair {
	return t.pairsBetween(t.stationA, t.stationB)
}

func (t *TwoLink) sourceEventsScheduled(
	station1, station2 *quantum.Station,
) []*quantum.SourceEvent {
	var out []*quantum.SourceEvent
	for _, event := range t.world.EventQueue().PendingEvents() {
		sourceEvent, ok := event.(*quantum.SourceEvent)
		if !ok {
			continue
		}
		targets := sourceEvent.Source().TargetStations()
		if (targets[0] == station1 && targets[1] == station2) ||
			(targets[0] == station2 && targets[1] == station1) {
			out = append(out, sourceEvent)
		}
	}
	return out
}

// LeftPairsScheduled returns the pending source events of the A-central
// link, so Check can avoid scheduling a link generation twice.
func (t *TwoLink) LeftPairsScheduled() []*quantum.SourceEvent {
	return t.sourceEventsScheduled(t.stationA, t.stationCentral)
}

// RightPairsScheduled returns the pending source events of the central-B
// link.
func (t *TwoLink) RightPairsScheduled() []*quantum.SourceEvent {
	return t.sourceEventsScheduled(t.stationCentral, t.stationB)
}

// EvalPair records a finished long-range pair. The recorded time includes
// the classical communication delay from the central station to the
// farther end station.
func (t *TwoLink) EvalPair(longRangePair *quantum.Pair) {
	commDistance := math.Max(
		quantum.Distance(t.stationCentral, t.stationA),
		quantum.Distance(t.stationB, t.stationCentral),
	)
	commTime := sim.VTimeInSec(commDistance / t.communicationSpeed)

	t.samples = append(t.samples, PairSample{
		Time:  t.world.EventQueue().CurrentTime() + commTime,
		State: longRangePair.State(),
	})
}

// Samples returns the recorded long-range pair samples.
func (t *TwoLink) Samples() []PairSample {
	return t.samples
}
