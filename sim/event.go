package sim

// VTimeInSec defines the time in the simulated space in the unit of second.
type VTimeInSec float64

// Priorities order events that are scheduled for the same time. Lower
// priorities resolve first.
const (
	PriorityUnblock = 0
	PriorityDefault = 20
	PriorityDiscard = 39
)

// Details carries event-specific information from an event's effect to the
// callbacks and protocol logic observing the resolution.
type Details map[string]any

// A Result describes the outcome of resolving one event.
//
// Successful reports whether the event could be resolved according to the
// event system rules (all required objects alive and, unless exempt, not
// blocked). It does not report the success of an inherently probabilistic
// effect such as entanglement purification; that lives in Details.
type Result struct {
	Event      Event
	EventType  string
	Successful bool
	Details    Details
}

// A Callback is invoked with the resolution result after an event resolves.
type Callback func(result Result)

// An Event is a discrete action scheduled to happen at a point in simulated
// time. Events are created, added to an EventQueue, resolved exactly once,
// and never re-enter the queue.
type Event interface {
	// Time returns the time at which the event will be resolved.
	Time() VTimeInSec

	// Priority breaks ties between events scheduled for the same time.
	Priority() int

	// EventType is a fixed name per concrete event kind, used for
	// statistics and result reporting.
	EventType() string

	// RequiredObjects lists the world objects that must still exist when
	// the event comes due. If any of them is gone, the event resolves
	// unsuccessfully and its effect is skipped.
	RequiredObjects() []WorldObject

	// IgnoreBlocked reports whether the event may act on blocked objects.
	IgnoreBlocked() bool

	// Effect carries out the action of the event. It runs only if the
	// validity check passed. The returned details are merged into the
	// resolution result.
	Effect() Details

	// AddCallback registers a function to be called with the resolution
	// result. Callbacks run in the order they were added.
	AddCallback(cb Callback)

	callbackList() []Callback
	bindQueue(q *EventQueue)
}

// EventBase provides the bookkeeping shared by all events. Concrete events
// embed it and supply EventType and Effect.
type EventBase struct {
	ID            string
	time          VTimeInSec
	priority      int
	ignoreBlocked bool
	required      []WorldObject
	callbacks     []Callback
	eventQueue    *EventQueue
}

// NewEventBase creates a new EventBase with the default priority. The
// required objects must still exist in their world when the event is added
// to a queue.
func NewEventBase(t VTimeInSec, required []WorldObject) *EventBase {
	b := new(EventBase)
	b.ID = GetIDGenerator().Generate()
	b.time = t
	b.priority = PriorityDefault
	b.required = required
	return b
}

// Time returns the time at which the event will be resolved.
func (b *EventBase) Time() VTimeInSec {
	return b.time
}

// Priority returns the tie-break priority of the event.
func (b *EventBase) Priority() int {
	return b.priority
}

// SetPriority overrides the default priority. Must be called before the
// event is added to a queue.
func (b *EventBase) SetPriority(priority int) {
	b.priority = priority
}

// RequiredObjects returns the objects the event needs to exist.
func (b *EventBase) RequiredObjects() []WorldObject {
	return b.required
}

// IgnoreBlocked reports whether the event may act on blocked objects.
func (b *EventBase) IgnoreBlocked() bool {
	return b.ignoreBlocked
}

// SetIgnoreBlocked marks the event as exempt from the blocked-object check.
func (b *EventBase) SetIgnoreBlocked(ignore bool) {
	b.ignoreBlocked = ignore
}

// AddCallback registers a callback. Callbacks run in registration order
// after the event resolves, whether or not the resolution was successful.
func (b *EventBase) AddCallback(cb Callback) {
	b.callbacks = append(b.callbacks, cb)
}

// Queue returns the queue the event has been added to, or nil if the event
// is not scheduled. During Effect it is always non-nil, so effects can
// schedule follow-up events.
func (b *EventBase) Queue() *EventQueue {
	return b.eventQueue
}

func (b *EventBase) callbackList() []Callback {
	return b.callbacks
}

func (b *EventBase) bindQueue(q *EventQueue) {
	b.eventQueue = q
}
