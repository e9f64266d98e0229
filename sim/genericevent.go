package sim

// A GenericEvent wraps an arbitrary function as the effect of a scheduled
// event, for ad hoc actions such as delayed destruction.
type GenericEvent struct {
	*EventBase

	resolveFunc func() Details
}

// NewGenericEvent creates a GenericEvent that calls resolveFunc at time t.
// The details returned by resolveFunc become part of the resolution result.
func NewGenericEvent(
	t VTimeInSec,
	resolveFunc func() Details,
	required []WorldObject,
) *GenericEvent {
	return &GenericEvent{
		EventBase:   NewEventBase(t, required),
		resolveFunc: resolveFunc,
	}
}

// EventType returns "GenericEvent".
func (e *GenericEvent) EventType() string {
	return "GenericEvent"
}

// Effect calls the wrapped function.
func (e *GenericEvent) Effect() Details {
	return e.resolveFunc()
}
