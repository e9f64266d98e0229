package quantum

import (
	"github.com/sirupsen/logrus"
	"gonum.org/v1/gonum/mat"

	"github.com/jwallnoefer/requsim/internal/matops"
	"github.com/jwallnoefer/requsim/sim"
)

// A ProtocolFunc implements one step of an n-to-1 entanglement
// purification protocol. It takes the tensor product of the input pair
// states and returns the success probability of the step together with
// the post-selection output state of the surviving pair.
type ProtocolFunc func(rho *mat.CDense) (pSuc float64, state *mat.CDense)

// An EntanglementPurificationEvent performs one step of an entanglement
// purification protocol on two or more pairs between the same stations.
// The first pair survives with the protocol's output state and stays
// blocked until the measurement outcomes have been communicated; the
// other pairs are consumed. A follow-up event at resolution time plus the
// communication time either unblocks the surviving pair or, if the step
// failed, destroys it as well.
//
// Resolution details: DetailOutputPair (*Pair), DetailIsSuccessful (bool).
type EntanglementPurificationEvent struct {
	*sim.EventBase

	pairs             []*Pair
	communicationTime sim.VTimeInSec
	protocol          ProtocolFunc
}

// NewEntanglementPurificationEvent creates an
// EntanglementPurificationEvent resolving at time t. At least two pairs
// and a protocol function are required; the event requires all pairs and
// their qubits to exist.
func NewEntanglementPurificationEvent(
	t sim.VTimeInSec,
	pairs []*Pair,
	communicationTime sim.VTimeInSec,
	protocol ProtocolFunc,
) *EntanglementPurificationEvent {
	if protocol == nil {
		logrus.Panic("entanglement purification needs a protocol function")
	}
	if len(pairs) < 2 {
		logrus.Panicf(
			"entanglement purification needs at least 2 pairs, got %d",
			len(pairs),
		)
	}
	required := make([]sim.WorldObject, 0, 3*len(pairs))
	for _, pair := range pairs {
		required = append(required, pair, pair.Qubit1(), pair.Qubit2())
	}
	return &EntanglementPurificationEvent{
		EventBase:         sim.NewEventBase(t, required),
		pairs:             append([]*Pair(nil), pairs...),
		communicationTime: communicationTime,
		protocol:          protocol,
	}
}

// Pairs returns the pairs consumed by the purification step.
func (e *EntanglementPurificationEvent) Pairs() []*Pair {
	return e.pairs
}

// EventType returns "EntanglementPurificationEvent".
func (e *EntanglementPurificationEvent) EventType() string {
	return "EntanglementPurificationEvent"
}

// Effect probabilistically performs the purification step.
func (e *EntanglementPurificationEvent) Effect() sim.Details {
	for _, pair := range e.pairs {
		pair.UpdateTime()
	}

	states := make([]*mat.CDense, len(e.pairs))
	for i, pair := range e.pairs {
		states[i] = pair.State()
	}
	rho := matops.Tensor(states...)
	pSuc, state := e.protocol(rho)

	outputPair := e.pairs[0]
	outputPair.SetState(state)
	outputPair.SetBlocked(true)
	outputPair.Qubit1().SetBlocked(true)
	outputPair.Qubit2().SetBlocked(true)

	for _, pair := range e.pairs[1:] {
		pair.Qubit1().Destroy()
		pair.Qubit2().Destroy()
		pair.Destroy()
	}

	queue := e.Queue()
	world := outputPair.World()
	if world.Rand().Float64() <= pSuc {
		unblock := sim.NewUnblockEvent(
			e.Time()+e.communicationTime,
			[]sim.WorldObject{outputPair, outputPair.Qubit1(), outputPair.Qubit2()},
		)
		queue.AddEvent(unblock)
		return sim.Details{
			DetailOutputPair:   outputPair,
			DetailIsSuccessful: true,
		}
	}

	destroyFunc := func() sim.Details {
		qubit1, qubit2 := outputPair.Qubit1(), outputPair.Qubit2()
		outputPair.Destroy()
		qubit1.Destroy()
		qubit2.Destroy()
		return sim.Details{
			DetailDestroyedObjects: []sim.WorldObject{outputPair, qubit1, qubit2},
		}
	}
	destroyEvent := sim.NewGenericEvent(
		e.Time()+e.communicationTime,
		destroyFunc,
		[]sim.WorldObject{outputPair},
	)
	destroyEvent.SetPriority(sim.PriorityUnblock)
	destroyEvent.SetIgnoreBlocked(true)
	queue.AddEvent(destroyEvent)
	return sim.Details{
		DetailOutputPair:   outputPair,
		DetailIsSuccessful: false,
	}
}
