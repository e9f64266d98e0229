package sim

import (
	"math/rand"
	"sort"
	"strconv"
	"time"
)

// A World is the central object describing one simulation run. It tracks
// every WorldObject, grouped by type, and owns the EventQueue that advances
// the simulation.
type World struct {
	eventQueue    *EventQueue
	objects       map[string][]WorldObject
	liveObjects   map[uint64]struct{}
	labelCounters map[string]int
	objectCounter uint64
	rng           *rand.Rand
}

// NewWorld creates an empty World with a fresh EventQueue.
func NewWorld() *World {
	w := &World{
		eventQueue:    NewEventQueue(),
		objects:       make(map[string][]WorldObject),
		liveObjects:   make(map[uint64]struct{}),
		labelCounters: make(map[string]int),
		rng:           rand.New(rand.NewSource(time.Now().UnixNano())),
	}
	return w
}

// EventQueue returns the event queue of this world.
func (w *World) EventQueue() *EventQueue {
	return w.eventQueue
}

// SetRandSeed re-seeds the random number generator shared by probabilistic
// event effects, making a run reproducible.
func (w *World) SetRandSeed(seed int64) {
	w.rng = rand.New(rand.NewSource(seed))
}

// Rand returns the random number generator of this world.
func (w *World) Rand() *rand.Rand {
	return w.rng
}

// Contains reports whether the object is currently tracked by this world.
func (w *World) Contains(obj WorldObject) bool {
	_, ok := w.liveObjects[obj.objectID()]
	return ok
}

// ObjectsByType returns the live objects of the given type, in registration
// order.
func (w *World) ObjectsByType(typeName string) []WorldObject {
	bucket := w.objects[typeName]
	out := make([]WorldObject, len(bucket))
	copy(out, bucket)
	return out
}

// ObjectTypes returns the sorted type names that have live objects.
func (w *World) ObjectTypes() []string {
	types := make([]string, 0, len(w.objects))
	for typeName, bucket := range w.objects {
		if len(bucket) > 0 {
			types = append(types, typeName)
		}
	}
	sort.Strings(types)
	return types
}

// register adds an object to this world and returns the default label for
// it, which is the object type plus a counter that ticks up every time an
// object of that type is created.
func (w *World) register(obj WorldObject) string {
	typeName := obj.Type()
	w.objects[typeName] = append(w.objects[typeName], obj)
	w.liveObjects[obj.objectID()] = struct{}{}
	w.labelCounters[typeName]++
	return typeName + " " + strconv.Itoa(w.labelCounters[typeName])
}

// deregister removes an object from this world. Deregistering an object
// that has already been removed is a no-op.
func (w *World) deregister(obj WorldObject) {
	if _, ok := w.liveObjects[obj.objectID()]; !ok {
		return
	}
	delete(w.liveObjects, obj.objectID())
	typeName := obj.Type()
	bucket := w.objects[typeName]
	for i, o := range bucket {
		if o.objectID() == obj.objectID() {
			w.objects[typeName] = append(bucket[:i], bucket[i+1:]...)
			return
		}
	}
}

func (w *World) nextObjectID() uint64 {
	w.objectCounter++
	return w.objectCounter
}
