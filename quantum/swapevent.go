package quantum

import (
	"math"

	"github.com/sirupsen/logrus"
	"gonum.org/v1/gonum/mat"

	"github.com/jwallnoefer/requsim/internal/matops"
	"github.com/jwallnoefer/requsim/sim"
)

// An EntanglementSwappingEvent performs entanglement swapping of two pairs
// that share a station: a Bell state measurement on the two qubits at the
// swapping station connects the two leftover qubits into one long-distance
// pair.
//
// Resolution details: DetailOutputPair (*Pair), DetailSwappingStation
// (*Station).
type EntanglementSwappingEvent struct {
	*sim.EventBase

	pairs   [2]*Pair
	station *Station
}

// NewEntanglementSwappingEvent creates an EntanglementSwappingEvent
// resolving at time t. Each pair must have exactly one qubit at the
// swapping station. The event requires both pairs and all four qubits.
func NewEntanglementSwappingEvent(
	t sim.VTimeInSec,
	pair1, pair2 *Pair,
	station *Station,
) *EntanglementSwappingEvent {
	required := []sim.WorldObject{
		pair1, pair2,
		pair1.Qubit1(), pair1.Qubit2(),
		pair2.Qubit1(), pair2.Qubit2(),
	}
	return &EntanglementSwappingEvent{
		EventBase: sim.NewEventBase(t, required),
		pairs:     [2]*Pair{pair1, pair2},
		station:   station,
	}
}

// Pairs returns the two pairs to be connected.
func (e *EntanglementSwappingEvent) Pairs() [2]*Pair {
	return e.pairs
}

// Station returns the station performing the Bell state measurement.
func (e *EntanglementSwappingEvent) Station() *Station {
	return e.station
}

// EventType returns "EntanglementSwappingEvent".
func (e *EntanglementSwappingEvent) EventType() string {
	return "EntanglementSwappingEvent"
}

// Effect performs the entanglement swapping and creates the Pair for the
// long-distance pair.
func (e *EntanglementSwappingEvent) Effect() sim.Details {
	pair1, pair2 := e.pairs[0], e.pairs[1]

	var swapQubits, leftoverQubits []*Qubit
	var swapIndices, leftoverIndices []int
	for offset, pair := range e.pairs {
		for idx, qubit := range pair.Qubits() {
			if e.station.HasQubit(qubit) {
				swapQubits = append(swapQubits, qubit)
				swapIndices = append(swapIndices, 2*offset+idx)
			} else {
				leftoverQubits = append(leftoverQubits, qubit)
				leftoverIndices = append(leftoverIndices, 2*offset+idx)
			}
		}
		if len(swapQubits) != offset+1 {
			logrus.Panicf(
				"entanglement swapping: pair %s does not have exactly one qubit at station %s",
				pair.Label(), e.station.Label(),
			)
		}
	}

	pair1.UpdateTime()
	pair2.UpdateTime()

	fourQubitState := matops.Tensor(pair1.State(), pair2.State())
	fourQubitState = matops.Reorder(fourQubitState, []int{
		leftoverIndices[0],
		swapIndices[0],
		swapIndices[1],
		leftoverIndices[1],
	})

	noiseModel := e.station.BSMNoiseModel()
	if noiseModel.Before != nil {
		switch noiseModel.Before.NQubits() {
		case 4:
			fourQubitState = noiseModel.Before.Apply(fourQubitState)
		case 2:
			fourQubitState = noiseModel.Before.ApplyTo(fourQubitState, []int{1, 2})
		default:
			logrus.Panicf(
				"entanglement swapping: %d-qubit channel not supported for a Bell state measurement, expects 2 or 4 qubits",
				noiseModel.Before.NQubits(),
			)
		}
	}

	var twoQubitState *mat.CDense
	if noiseModel.Replace != nil {
		twoQubitState = noiseModel.Replace(fourQubitState)
	} else {
		proj := matops.Tensor(matops.Eye(2), matops.PhiPlusVec(), matops.Eye(2))
		twoQubitState = matops.Mul(matops.Mul(matops.Dag(proj), fourQubitState), proj)
		twoQubitState = matops.Scale(1/matops.Trace(twoQubitState), twoQubitState)
	}

	if noiseModel.After != nil {
		if noiseModel.After.NQubits() != 2 {
			logrus.Panicf(
				"entanglement swapping: output channel must act on 2 qubits, got %d",
				noiseModel.After.NQubits(),
			)
		}
		twoQubitState = noiseModel.After.Apply(twoQubitState)
	}

	var pairOptions []PairOption
	if pair1.ResourceCostAdd() != nil && pair2.ResourceCostAdd() != nil {
		pairOptions = append(pairOptions,
			WithInitialCostAdd(*pair1.ResourceCostAdd()+*pair2.ResourceCostAdd()))
	}
	if pair1.ResourceCostMax() != nil && pair2.ResourceCostMax() != nil {
		pairOptions = append(pairOptions,
			WithInitialCostMax(math.Max(*pair1.ResourceCostMax(), *pair2.ResourceCostMax())))
	}

	newPair := NewPair(
		pair1.World(),
		leftoverQubits[0], leftoverQubits[1],
		twoQubitState,
		pairOptions...,
	)

	for _, qubit := range swapQubits {
		qubit.Destroy()
	}
	pair1.Destroy()
	pair2.Destroy()

	return sim.Details{
		DetailOutputPair:      newPair,
		DetailSwappingStation: e.station,
	}
}
