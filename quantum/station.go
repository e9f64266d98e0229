package quantum

import (
	"github.com/sirupsen/logrus"

	"github.com/jwallnoefer/requsim/noise"
	"github.com/jwallnoefer/requsim/sim"
)

type resourceCount struct {
	add float64
	max float64
}

// A Station is a repeater station: a position on the line, the qubits
// currently located there, and the noise characteristics of its hardware.
type Station struct {
	sim.WorldObjectBase

	position float64
	qubits   []*Qubit

	memoryNoise          noise.MapFunc
	memoryCutoffTime     *sim.VTimeInSec
	bsmNoiseModel        noise.Model
	creationNoiseChannel *noise.Channel
	darkCountProbability float64

	resourceTracking map[*Station]*resourceCount
	labelOverride    string
}

// A StationOption configures a Station at construction.
type StationOption func(s *Station)

// WithMemoryNoise sets the time-dependent decoherence map applied to
// qubits created at this station. The map takes the elapsed time as its
// parameter.
func WithMemoryNoise(fn noise.MapFunc) StationOption {
	return func(s *Station) {
		s.memoryNoise = fn
	}
}

// WithMemoryCutoffTime discards qubits automatically after they sat in
// memory for the given amount of time.
func WithMemoryCutoffTime(t sim.VTimeInSec) StationOption {
	return func(s *Station) {
		cutoff := t
		s.memoryCutoffTime = &cutoff
	}
}

// WithBSMNoiseModel sets the noise model used for Bell state measurements
// performed at this station, especially for entanglement swapping.
func WithBSMNoiseModel(m noise.Model) StationOption {
	return func(s *Station) {
		s.bsmNoiseModel = m
	}
}

// WithCreationNoiseChannel sets a noise channel that affects every qubit
// created at this station (e.g. misalignment).
func WithCreationNoiseChannel(c *noise.Channel) StationOption {
	return func(s *Station) {
		s.creationNoiseChannel = c
	}
}

// WithDarkCountProbability sets the probability that a detector clicks
// without a state arriving. The station does not use this itself, but
// state-generation functions may.
func WithDarkCountProbability(p float64) StationOption {
	return func(s *Station) {
		s.darkCountProbability = p
	}
}

// WithStationLabel overrides the default registry label.
func WithStationLabel(label string) StationOption {
	return func(s *Station) {
		s.labelOverride = label
	}
}

// NewStation creates a Station at the given position.
func NewStation(world *sim.World, position float64, opts ...StationOption) *Station {
	s := new(Station)
	s.position = position
	s.resourceTracking = make(map[*Station]*resourceCount)
	for _, opt := range opts {
		opt(s)
	}
	s.InitWorldObject(world, s, "Station", s.labelOverride)
	return s
}

// Position returns the station's position in meters on the repeater line.
func (s *Station) Position() float64 {
	return s.position
}

// Qubits returns the qubits currently located at this station.
func (s *Station) Qubits() []*Qubit {
	out := make([]*Qubit, len(s.qubits))
	copy(out, s.qubits)
	return out
}

// HasQubit reports whether the qubit is currently located at this station.
func (s *Station) HasQubit(q *Qubit) bool {
	for _, resident := range s.qubits {
		if resident == q {
			return true
		}
	}
	return false
}

// BSMNoiseModel returns the Bell-state-measurement noise model.
func (s *Station) BSMNoiseModel() noise.Model {
	return s.bsmNoiseModel
}

// DarkCountProbability returns the dark count probability of the
// station's detectors.
func (s *Station) DarkCountProbability() float64 {
	return s.darkCountProbability
}

// CreateQubit creates a new qubit at this station. The station's memory
// noise is installed as a time-dependent channel on the qubit, its
// creation noise is applied (or queued as unresolved), and, if a memory
// cutoff is configured, a DiscardQubitEvent is scheduled.
func (s *Station) CreateQubit() *Qubit {
	q := NewQubit(s.World())
	q.station = s
	s.qubits = append(s.qubits, q)

	if s.memoryNoise != nil {
		q.AddTimeDependentNoise(noise.NewChannel(1, s.memoryNoise))
	}
	if s.creationNoiseChannel != nil {
		q.ApplyNoise(s.creationNoiseChannel)
	}
	if s.memoryCutoffTime != nil {
		queue := s.World().EventQueue()
		discard := NewDiscardQubitEvent(
			queue.CurrentTime()+*s.memoryCutoffTime, q)
		queue.AddEvent(discard)
	}

	return q
}

func (s *Station) removeQubit(q *Qubit) {
	for i, resident := range s.qubits {
		if resident == q {
			s.qubits = append(s.qubits[:i], s.qubits[i+1:]...)
			return
		}
	}
	logrus.WithFields(logrus.Fields{
		"qubit":   q.Label(),
		"station": s.Label(),
	}).Warn("tried to remove a qubit the station was not tracking")
}

func (s *Station) resourceTrackingFor(other *Station) *resourceCount {
	count, ok := s.resourceTracking[other]
	if !ok {
		count = &resourceCount{}
		s.resourceTracking[other] = count
	}
	return count
}
