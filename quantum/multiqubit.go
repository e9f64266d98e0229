package quantum

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/jwallnoefer/requsim/noise"
	"github.com/jwallnoefer/requsim/sim"
)

// A MultiQubit owns the joint density matrix of an arbitrary number of
// qubits. It generalizes Pair beyond two parties: it registers itself as
// noise handler and destroy listener on every qubit, and noise that
// reached a qubit before the collection existed is absorbed into the
// state at construction.
type MultiQubit struct {
	sim.WorldObjectBase

	qubits     []*Qubit
	state      *mat.CDense
	handlerIDs []int
}

// NewMultiQubit creates a MultiQubit over the given qubits in the given
// initial state. The state dimension must fit the number of qubits. Any
// unresolved noise queued on the qubits is applied to the state at the
// qubit's index, in qubit order.
func NewMultiQubit(
	world *sim.World,
	qubits []*Qubit,
	initialState *mat.CDense,
) *MultiQubit {
	m := new(MultiQubit)
	m.qubits = append([]*Qubit(nil), qubits...)
	m.state = initialState
	m.handlerIDs = make([]int, len(m.qubits))

	for i, q := range m.qubits {
		q.setHigherOrderObject(m)
		q.AddDestroyCallback(m.onQubitDestroy)
		// Registering the handler retroactively drains the qubit's
		// unresolved noise into the joint state.
		m.handlerIDs[i] = q.AddNoiseHandler(m.noiseHandlerFor(i))
	}

	typeName := fmt.Sprintf("%d-qubit MultiQubit", len(m.qubits))
	m.InitWorldObject(world, m, typeName, "")
	return m
}

// noiseHandlerFor returns the handler that applies a channel to this
// collection's state at the given qubit index.
func (m *MultiQubit) noiseHandlerFor(index int) NoiseHandler {
	return func(channel *noise.Channel, params ...float64) bool {
		m.state = channel.ApplyTo(m.state, []int{index}, params...)
		return true
	}
}

// NumQubits returns the number of qubits in the collection.
func (m *MultiQubit) NumQubits() int {
	return len(m.qubits)
}

// Qubits returns the qubits of the collection, in index order.
func (m *MultiQubit) Qubits() []*Qubit {
	return m.qubits
}

// State returns the current joint density matrix.
func (m *MultiQubit) State() *mat.CDense {
	return m.state
}

// SetState overwrites the joint density matrix.
func (m *MultiQubit) SetState(state *mat.CDense) {
	m.state = state
}

// UpdateTime advances every qubit, which applies their time-dependent
// memory noise to the joint state, then advances the collection's
// timestamp.
func (m *MultiQubit) UpdateTime() {
	for _, q := range m.qubits {
		q.UpdateTime()
	}
	m.WorldObjectBase.UpdateTime()
}

func (m *MultiQubit) onQubitDestroy(obj sim.WorldObject) {
	for _, q := range m.qubits {
		if sim.WorldObject(q) == obj {
			m.Destroy()
			return
		}
	}
}

// Destroy tears down the noise-handler registrations on the qubits that
// are still alive, then removes the collection from the world.
func (m *MultiQubit) Destroy() {
	if !m.InWorld() {
		return
	}
	for i, q := range m.qubits {
		if q.InWorld() {
			q.RemoveNoiseHandler(m.handlerIDs[i])
		}
		if q.higherOrderObject == sim.WorldObject(m) {
			q.setHigherOrderObject(nil)
		}
	}
	m.WorldObjectBase.Destroy()
}
