package quantum

import (
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/jwallnoefer/requsim/sim"
)

// Positioned is anything with a scalar position on the repeater line.
type Positioned interface {
	Position() float64
}

// Distance returns the distance between two positioned objects.
func Distance(a, b Positioned) float64 {
	return math.Abs(a.Position() - b.Position())
}

// A Source produces entangled pairs between its two target stations,
// usually the neighboring repeater stations.
type Source struct {
	sim.WorldObjectBase

	position       float64
	targetStations [2]*Station
}

// NewSource creates a Source at the given position that sends entangled
// pairs to the two target stations.
func NewSource(
	world *sim.World,
	position float64,
	station1, station2 *Station,
) *Source {
	s := new(Source)
	s.position = position
	s.targetStations = [2]*Station{station1, station2}
	s.InitWorldObject(world, s, "Source", "")
	return s
}

// Position returns the source's position on the repeater line.
func (s *Source) Position() float64 {
	return s.position
}

// TargetStations returns the two stations the source sends pairs to.
func (s *Source) TargetStations() [2]*Station {
	return s.targetStations
}

// GeneratePair creates one qubit at each target station and bundles them
// into a new Pair in the given initial state. Usually called from a
// SourceEvent.
func (s *Source) GeneratePair(
	initialState *mat.CDense,
	opts ...PairOption,
) *Pair {
	qubit1 := s.targetStations[0].CreateQubit()
	qubit2 := s.targetStations[1].CreateQubit()
	return NewPair(s.World(), qubit1, qubit2, initialState, opts...)
}

// A TimeDistribution returns the amount of time until the next generation
// attempt succeeds (possibly probabilistic), together with the number of
// channel uses that took.
type TimeDistribution func(source *SchedulingSource) (delay sim.VTimeInSec, trials float64)

// A StateGeneration returns (possibly probabilistically) the density
// matrix of the pair generated by the source, accurate for the scheduled
// generation time.
type StateGeneration func(source *SchedulingSource) *mat.CDense

// A SchedulingSource is a Source that schedules its own next generation
// event according to a time distribution.
type SchedulingSource struct {
	Source

	timeDistribution TimeDistribution
	stateGeneration  StateGeneration
}

// NewSchedulingSource creates a SchedulingSource. Both function arguments
// are required.
func NewSchedulingSource(
	world *sim.World,
	position float64,
	station1, station2 *Station,
	timeDistribution TimeDistribution,
	stateGeneration StateGeneration,
) *SchedulingSource {
	s := new(SchedulingSource)
	s.position = position
	s.targetStations = [2]*Station{station1, station2}
	s.timeDistribution = timeDistribution
	s.stateGeneration = stateGeneration
	s.InitWorldObject(world, s, "Source", "")
	return s
}

// ScheduleEvent samples the time distribution and state generation
// function and schedules the corresponding SourceEvent. The sampled trial
// count seeds the resource-cost tracking of the generated pair.
func (s *SchedulingSource) ScheduleEvent() *SourceEvent {
	queue := s.World().EventQueue()
	delay, trials := s.timeDistribution(s)
	initialState := s.stateGeneration(s)

	event := NewSourceEvent(
		queue.CurrentTime()+delay,
		&s.Source,
		initialState,
		WithInitialCostAdd(trials),
		WithInitialCostMax(trials),
	)
	queue.AddEvent(event)
	return event
}
