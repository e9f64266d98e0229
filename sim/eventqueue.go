package sim

import (
	"sort"

	"github.com/sirupsen/logrus"
)

// EventStats counts how the events of one type have fared so far.
type EventStats struct {
	Scheduled            int
	Resolved             int
	ResolvedSuccessfully int
}

// An EventQueue holds the pending events of a simulation, ordered by
// (time, priority), and the current simulated time. Events are resolved
// strictly in ascending order; ties are broken by insertion order.
type EventQueue struct {
	HookableBase

	queue       []Event
	currentTime VTimeInSec
	stats       map[string]*EventStats
}

// NewEventQueue creates an empty EventQueue at time 0.
func NewEventQueue() *EventQueue {
	return &EventQueue{
		stats: make(map[string]*EventStats),
	}
}

// Len returns the number of pending events.
func (q *EventQueue) Len() int {
	return len(q.queue)
}

// CurrentTime returns the current simulated time. It never decreases.
func (q *EventQueue) CurrentTime() VTimeInSec {
	return q.currentTime
}

// NextEvent returns the next scheduled event without removing it, or nil if
// the queue is empty.
func (q *EventQueue) NextEvent() Event {
	if len(q.queue) == 0 {
		return nil
	}
	return q.queue[0]
}

// PendingEvents returns a copy of the pending events in resolution order.
func (q *EventQueue) PendingEvents() []Event {
	out := make([]Event, len(q.queue))
	copy(out, q.queue)
	return out
}

// AddEvent schedules an event. Panics when trying to schedule into the
// past, or when a required object of the event is not in its world.
func (q *EventQueue) AddEvent(e Event) {
	if e.Time() < q.currentTime {
		logrus.Panicf(
			"cannot schedule event %s at %.6f: current time is %.6f",
			e.EventType(), e.Time(), q.currentTime,
		)
	}
	for _, obj := range e.RequiredObjects() {
		if !obj.World().Contains(obj) {
			logrus.Panicf(
				"event %s requires %s, which is not in the world",
				e.EventType(), obj.Label(),
			)
		}
		obj.addRequiredBy(e)
	}
	e.bindQueue(q)
	q.insert(e)
	q.statsFor(e.EventType()).Scheduled++
}

// insert places the event to the right of all events with the same
// (time, priority) key, so that equal-key events resolve in FIFO order.
func (q *EventQueue) insert(e Event) {
	pos := sort.Search(len(q.queue), func(i int) bool {
		other := q.queue[i]
		if other.Time() != e.Time() {
			return other.Time() > e.Time()
		}
		return other.Priority() > e.Priority()
	})
	q.queue = append(q.queue, nil)
	copy(q.queue[pos+1:], q.queue[pos:])
	q.queue[pos] = e
}

// ResolveNextEvent removes the head of the queue, advances the current time
// to its scheduled time and resolves it. Panics if the queue is empty.
func (q *EventQueue) ResolveNextEvent() Result {
	if len(q.queue) == 0 {
		logrus.Panic("no pending events to resolve")
	}

	e := q.queue[0]
	q.queue = q.queue[1:]
	q.currentTime = e.Time()

	hookCtx := HookCtx{
		Domain: q,
		Pos:    HookPosBeforeEvent,
		Item:   e,
	}
	q.InvokeHook(hookCtx)

	result := q.resolve(e)

	stats := q.statsFor(e.EventType())
	stats.Resolved++
	if result.Successful {
		stats.ResolvedSuccessfully++
	}

	hookCtx.Pos = HookPosAfterEvent
	hookCtx.Detail = result
	q.InvokeHook(hookCtx)

	return result
}

// ResolveUntil resolves events in order while their time is not after
// targetTime, then sets the current time to exactly targetTime. Panics if
// targetTime lies in the past.
func (q *EventQueue) ResolveUntil(targetTime VTimeInSec) {
	if targetTime < q.currentTime {
		logrus.Panicf(
			"cannot resolve until %.6f: current time is %.6f",
			targetTime, q.currentTime,
		)
	}
	for len(q.queue) > 0 && q.queue[0].Time() <= targetTime {
		q.ResolveNextEvent()
	}
	q.currentTime = targetTime
}

// AdvanceTime manually moves the current time forward by interval. Panics
// if that would move past a pending event without resolving it.
func (q *EventQueue) AdvanceTime(interval VTimeInSec) {
	q.currentTime += interval
	if len(q.queue) > 0 && q.queue[0].Time() < q.currentTime {
		logrus.Panicf(
			"advancing time by %.6f skipped event %s at %.6f",
			interval, q.queue[0].EventType(), q.queue[0].Time(),
		)
	}
}

// RemoveByCondition removes all pending events matching the predicate and
// returns them. The removed events are deregistered from their required
// objects and will never resolve.
func (q *EventQueue) RemoveByCondition(pred func(Event) bool) []Event {
	var removed []Event
	var kept []Event
	for _, e := range q.queue {
		if pred(e) {
			removed = append(removed, e)
			for _, obj := range e.RequiredObjects() {
				obj.removeRequiredBy(e)
			}
		} else {
			kept = append(kept, e)
		}
	}
	q.queue = kept
	return removed
}

// Stats returns a snapshot of the per-event-type counters.
func (q *EventQueue) Stats() map[string]EventStats {
	out := make(map[string]EventStats, len(q.stats))
	for eventType, stats := range q.stats {
		out[eventType] = *stats
	}
	return out
}

// resolve runs the resolution template: validity check, effect,
// deregistration from required objects, then callbacks.
func (q *EventQueue) resolve(e Event) Result {
	valid := q.checkEventIsValid(e)

	result := Result{
		Event:      e,
		EventType:  e.EventType(),
		Successful: valid,
	}
	if valid {
		result.Details = e.Effect()
	}

	for _, obj := range e.RequiredObjects() {
		obj.removeRequiredBy(e)
	}

	for _, cb := range e.callbackList() {
		cb(result)
	}

	return result
}

func (q *EventQueue) checkEventIsValid(e Event) bool {
	for _, obj := range e.RequiredObjects() {
		if !obj.World().Contains(obj) {
			return false
		}
	}
	if e.IgnoreBlocked() {
		return true
	}
	for _, obj := range e.RequiredObjects() {
		if obj.IsBlocked() {
			logrus.WithFields(logrus.Fields{
				"event_type": e.EventType(),
				"time":       e.Time(),
				"object":     obj.Label(),
			}).Warn("event tried to access a blocked object; " +
				"check whether ignore_blocked needs to be set")
			return false
		}
	}
	return true
}

func (q *EventQueue) statsFor(eventType string) *EventStats {
	stats, ok := q.stats[eventType]
	if !ok {
		stats = &EventStats{}
		q.stats[eventType] = stats
	}
	return stats
}
