package quantum

import (
	"gonum.org/v1/gonum/mat"

	"github.com/jwallnoefer/requsim/noise"
	"github.com/jwallnoefer/requsim/sim"
)

// A Pair is an entangled pair of two qubits owning the associated two-qubit
// density matrix. The pair registers itself as noise handler and destroy
// listener on both qubits; noise that reached a qubit before the pair
// existed is absorbed into the state at construction.
type Pair struct {
	sim.WorldObjectBase

	qubits     [2]*Qubit
	state      *mat.CDense
	handlerIDs [2]int

	resourceCostAdd *float64
	resourceCostMax *float64
}

// A PairOption configures a Pair at construction.
type PairOption func(p *Pair)

// WithInitialCostAdd turns on cumulative resource-cost tracking with the
// given initial value (in cumulative channel uses).
func WithInitialCostAdd(cost float64) PairOption {
	return func(p *Pair) {
		c := cost
		p.resourceCostAdd = &c
	}
}

// WithInitialCostMax turns on max resource-cost tracking with the given
// initial value (in max channel uses).
func WithInitialCostMax(cost float64) PairOption {
	return func(p *Pair) {
		c := cost
		p.resourceCostMax = &c
	}
}

// NewPair creates a Pair of two qubits in the given initial state. Any
// unresolved noise queued on the qubits is applied to the state at the
// qubit's index, in qubit order.
func NewPair(
	world *sim.World,
	qubit1, qubit2 *Qubit,
	initialState *mat.CDense,
	opts ...PairOption,
) *Pair {
	p := new(Pair)
	p.qubits = [2]*Qubit{qubit1, qubit2}
	p.state = initialState
	for _, opt := range opts {
		opt(p)
	}

	p.collectLingeringCosts()

	for i, q := range p.qubits {
		q.setHigherOrderObject(p)
		q.AddDestroyCallback(p.onQubitDestroy)
		// Registering the handler retroactively drains the qubit's
		// unresolved noise into the pair state.
		p.handlerIDs[i] = q.AddNoiseHandler(p.noiseHandlerFor(i))
	}

	p.InitWorldObject(world, p, "Pair", "")
	return p
}

// noiseHandlerFor returns the handler that applies a channel to this
// pair's state at the given qubit index.
func (p *Pair) noiseHandlerFor(index int) NoiseHandler {
	return func(channel *noise.Channel, params ...float64) bool {
		p.state = channel.ApplyTo(p.state, []int{index}, params...)
		return true
	}
}

// collectLingeringCosts picks up resource counts carried over from pairs
// between the same stations that were discarded earlier.
func (p *Pair) collectLingeringCosts() {
	if p.resourceCostAdd == nil && p.resourceCostMax == nil {
		return
	}
	station1 := p.qubits[0].Station()
	station2 := p.qubits[1].Station()
	if station1 == nil || station2 == nil {
		return
	}
	carried := station1.resourceTrackingFor(station2)
	if p.resourceCostAdd != nil {
		*p.resourceCostAdd += carried.add
	}
	if p.resourceCostMax != nil {
		*p.resourceCostMax += carried.max
	}
	carried.add = 0
	carried.max = 0
	station2.resourceTrackingFor(station1).add = 0
	station2.resourceTrackingFor(station1).max = 0
}

// Qubits returns the two qubits of the pair.
func (p *Pair) Qubits() [2]*Qubit {
	return p.qubits
}

// Qubit1 returns the first qubit of the pair.
func (p *Pair) Qubit1() *Qubit {
	return p.qubits[0]
}

// Qubit2 returns the second qubit of the pair.
func (p *Pair) Qubit2() *Qubit {
	return p.qubits[1]
}

// State returns the current two-qubit density matrix.
func (p *Pair) State() *mat.CDense {
	return p.state
}

// SetState overwrites the two-qubit density matrix, e.g. after an
// entanglement purification step.
func (p *Pair) SetState(state *mat.CDense) {
	p.state = state
}

// ResourceCostAdd returns the cumulative channel uses consumed to create
// this pair, or nil if resources are not tracked.
func (p *Pair) ResourceCostAdd() *float64 {
	return p.resourceCostAdd
}

// ResourceCostMax returns the max channel uses consumed to create this
// pair, or nil if resources are not tracked.
func (p *Pair) ResourceCostMax() *float64 {
	return p.resourceCostMax
}

// IsBetweenStations checks whether the pair's qubits sit at the two given
// stations, in either order.
func (p *Pair) IsBetweenStations(station1, station2 *Station) bool {
	return (p.qubits[0].Station() == station1 && p.qubits[1].Station() == station2) ||
		(p.qubits[0].Station() == station2 && p.qubits[1].Station() == station1)
}

// UpdateTime advances both qubits, which applies their time-dependent
// memory noise to the pair state, then advances the pair's timestamp.
func (p *Pair) UpdateTime() {
	p.qubits[0].UpdateTime()
	p.qubits[1].UpdateTime()
	p.WorldObjectBase.UpdateTime()
}

func (p *Pair) onQubitDestroy(obj sim.WorldObject) {
	for _, q := range p.qubits {
		if sim.WorldObject(q) == obj {
			p.Destroy()
			return
		}
	}
}

// Destroy tears down the noise-handler registrations on the qubits that
// are still alive, then removes the pair from the world.
func (p *Pair) Destroy() {
	if !p.InWorld() {
		return
	}
	for i, q := range p.qubits {
		if q.InWorld() {
			q.RemoveNoiseHandler(p.handlerIDs[i])
		}
		if q.higherOrderObject == sim.WorldObject(p) {
			q.setHigherOrderObject(nil)
		}
	}
	p.WorldObjectBase.Destroy()
}

// DestroyAndTrackResources destroys the pair and leaves its resource
// counts with the stations, so the next pair between the same stations
// picks them up.
func (p *Pair) DestroyAndTrackResources() {
	station1 := p.qubits[0].Station()
	station2 := p.qubits[1].Station()
	if station1 != nil && station2 != nil {
		if p.resourceCostAdd != nil {
			station1.resourceTrackingFor(station2).add += *p.resourceCostAdd
			station2.resourceTrackingFor(station1).add += *p.resourceCostAdd
		}
		if p.resourceCostMax != nil {
			station1.resourceTrackingFor(station2).max += *p.resourceCostMax
			station2.resourceTrackingFor(station1).max += *p.resourceCostMax
		}
	}
	p.Destroy()
}
