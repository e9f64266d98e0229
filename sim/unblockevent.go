package sim

// DetailUnblockedObjects keys the objects an UnblockEvent cleared in the
// resolution details.
const DetailUnblockedObjects = "unblocked_objects"

// An UnblockEvent clears the blocked flag on a set of objects. It marks the
// moment the necessary classical information has arrived and the objects
// may be used by the protocol again, e.g. after entanglement purification.
//
// It defaults to PriorityUnblock so that unblocking happens before other
// same-time events, and it always acts on blocked objects.
type UnblockEvent struct {
	*EventBase

	objects []WorldObject
}

// NewUnblockEvent creates an UnblockEvent for the given objects.
func NewUnblockEvent(t VTimeInSec, objects []WorldObject) *UnblockEvent {
	e := &UnblockEvent{
		EventBase: NewEventBase(t, objects),
		objects:   objects,
	}
	e.SetPriority(PriorityUnblock)
	e.SetIgnoreBlocked(true)
	return e
}

// EventType returns "UnblockEvent".
func (e *UnblockEvent) EventType() string {
	return "UnblockEvent"
}

// Effect unblocks every listed object.
func (e *UnblockEvent) Effect() Details {
	for _, obj := range e.objects {
		obj.SetBlocked(false)
	}
	return Details{DetailUnblockedObjects: e.objects}
}
