package sim

// A DestroyCallback is invoked when the object it is registered on is
// destroyed.
type DestroyCallback func(obj WorldObject)

// A WorldObject is any entity tracked by a World: it has a world-unique
// label, a connection to the shared clock, and a lifecycle that ends with
// Destroy.
type WorldObject interface {
	// Label identifies the object in a human-readable way. Unless a custom
	// label is supplied at construction, it is the type name plus a
	// per-type counter, e.g. "Qubit 3".
	Label() string

	// Type groups objects in the world registry, e.g. "Pair" or "Station".
	Type() string

	// World returns the world the object lives in.
	World() *World

	// LastUpdated is the simulated time at which UpdateTime last ran.
	LastUpdated() VTimeInSec

	// UpdateTime advances the object's internal clock to the current
	// simulated time, applying any time-dependent effects for the elapsed
	// interval first.
	UpdateTime()

	// IsBlocked reports whether the object is temporarily off-limits to
	// normal events, e.g. while awaiting classical communication.
	IsBlocked() bool

	// SetBlocked sets or clears the blocked flag.
	SetBlocked(blocked bool)

	// RequiredByEvents lists the scheduled events that require this object
	// to exist.
	RequiredByEvents() []Event

	// AddDestroyCallback registers a function to run when the object is
	// destroyed.
	AddDestroyCallback(cb DestroyCallback)

	// InWorld reports whether the object is still tracked by its world.
	InWorld() bool

	// Destroy removes the object from its world. Destroying an already
	// destroyed object is a no-op.
	Destroy()

	addRequiredBy(e Event)
	removeRequiredBy(e Event)
	objectID() uint64
}

// WorldObjectBase implements the common part of WorldObject. Concrete
// entities embed it and call InitWorldObject from their constructors.
type WorldObjectBase struct {
	world            *World
	self             WorldObject
	typeName         string
	label            string
	id               uint64
	lastUpdated      VTimeInSec
	blocked          bool
	requiredBy       []Event
	destroyCallbacks []DestroyCallback
}

// InitWorldObject registers the object with the world and assigns its
// label. The self argument must be the embedding object, so that destroy
// callbacks and the registry see the concrete type rather than the base.
// If label is empty, a default "{Type} {counter}" label is assigned.
func (b *WorldObjectBase) InitWorldObject(
	world *World,
	self WorldObject,
	typeName string,
	label string,
) {
	b.world = world
	b.self = self
	b.typeName = typeName
	b.id = world.nextObjectID()
	defaultLabel := world.register(self)
	if label == "" {
		label = defaultLabel
	}
	b.label = label
	b.lastUpdated = world.EventQueue().CurrentTime()
}

// Label returns the label of the object.
func (b *WorldObjectBase) Label() string {
	return b.label
}

// Type returns the registry type name of the object.
func (b *WorldObjectBase) Type() string {
	return b.typeName
}

// World returns the world the object lives in.
func (b *WorldObjectBase) World() *World {
	return b.world
}

// LastUpdated returns the time at which UpdateTime last ran.
func (b *WorldObjectBase) LastUpdated() VTimeInSec {
	return b.lastUpdated
}

// UpdateTime moves the internal timestamp to the current simulated time.
// Entities with time-dependent state override this and call it last.
func (b *WorldObjectBase) UpdateTime() {
	b.lastUpdated = b.world.EventQueue().CurrentTime()
}

// IsBlocked reports whether the object is blocked.
func (b *WorldObjectBase) IsBlocked() bool {
	return b.blocked
}

// SetBlocked sets or clears the blocked flag.
func (b *WorldObjectBase) SetBlocked(blocked bool) {
	b.blocked = blocked
}

// RequiredByEvents lists the scheduled events that require this object.
func (b *WorldObjectBase) RequiredByEvents() []Event {
	return b.requiredBy
}

// AddDestroyCallback registers a function to run on destruction.
func (b *WorldObjectBase) AddDestroyCallback(cb DestroyCallback) {
	b.destroyCallbacks = append(b.destroyCallbacks, cb)
}

// InWorld reports whether the object is still tracked by its world.
func (b *WorldObjectBase) InWorld() bool {
	return b.world.Contains(b.self)
}

// Destroy removes the object from the world, invoking the destroy
// callbacks first. A second Destroy is a no-op.
func (b *WorldObjectBase) Destroy() {
	if !b.world.Contains(b.self) {
		return
	}
	callbacks := b.destroyCallbacks
	b.destroyCallbacks = nil
	for _, cb := range callbacks {
		cb(b.self)
	}
	b.world.deregister(b.self)
}

func (b *WorldObjectBase) addRequiredBy(e Event) {
	b.requiredBy = append(b.requiredBy, e)
}

func (b *WorldObjectBase) removeRequiredBy(e Event) {
	for i, evt := range b.requiredBy {
		if evt == e {
			b.requiredBy = append(b.requiredBy[:i], b.requiredBy[i+1:]...)
			return
		}
	}
}

func (b *WorldObjectBase) objectID() uint64 {
	return b.id
}
