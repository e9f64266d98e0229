package sim

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/sirupsen/logrus"
	logrustest "github.com/sirupsen/logrus/hooks/test"
)

var _ = Describe("Event resolution", func() {
	var (
		world *World
		queue *EventQueue
	)

	BeforeEach(func() {
		world = NewWorld()
		queue = world.EventQueue()
	})

	It("should skip the effect when a required object is gone", func() {
		obj := newTestObject(world)
		effectRan := false
		event := NewGenericEvent(1.0, func() Details {
			effectRan = true
			return nil
		}, []WorldObject{obj})
		queue.AddEvent(event)

		obj.Destroy()
		result := queue.ResolveNextEvent()

		Expect(result.Successful).To(BeFalse())
		Expect(result.Details).To(BeNil())
		Expect(effectRan).To(BeFalse())
	})

	It("should skip the effect when a required object is blocked", func() {
		obj := newTestObject(world)
		obj.SetBlocked(true)

		effectRan := false
		event := NewGenericEvent(1.0, func() Details {
			effectRan = true
			return nil
		}, []WorldObject{obj})
		queue.AddEvent(event)

		result := queue.ResolveNextEvent()

		Expect(result.Successful).To(BeFalse())
		Expect(effectRan).To(BeFalse())
	})

	It("should warn when an event hits a blocked object", func() {
		logHook := logrustest.NewLocal(logrus.StandardLogger())
		defer logHook.Reset()

		obj := newTestObject(world)
		obj.SetBlocked(true)
		queue.AddEvent(NewGenericEvent(1.0,
			func() Details { return nil }, []WorldObject{obj}))

		queue.ResolveNextEvent()

		entry := logHook.LastEntry()
		Expect(entry).NotTo(BeNil())
		Expect(entry.Level).To(Equal(logrus.WarnLevel))
		Expect(entry.Message).To(ContainSubstring("blocked"))
		Expect(entry.Data).To(HaveKeyWithValue("event_type", "GenericEvent"))
		Expect(entry.Data).To(HaveKeyWithValue("object", obj.Label()))
	})

	It("should act on blocked objects when exempt", func() {
		obj := newTestObject(world)
		obj.SetBlocked(true)

		event := NewGenericEvent(1.0, func() Details {
			return Details{"ran": true}
		}, []WorldObject{obj})
		event.SetIgnoreBlocked(true)
		queue.AddEvent(event)

		result := queue.ResolveNextEvent()

		Expect(result.Successful).To(BeTrue())
		Expect(result.Details).To(HaveKeyWithValue("ran", true))
	})

	It("should run callbacks in registration order, even on failure", func() {
		obj := newTestObject(world)
		event := NewGenericEvent(1.0,
			func() Details { return nil },
			[]WorldObject{obj})

		var order []string
		var received Result
		event.AddCallback(func(r Result) {
			order = append(order, "first")
			received = r
		})
		event.AddCallback(func(Result) {
			order = append(order, "second")
		})
		queue.AddEvent(event)

		obj.Destroy()
		queue.ResolveNextEvent()

		Expect(order).To(Equal([]string{"first", "second"}))
		Expect(received.Successful).To(BeFalse())
		Expect(received.EventType).To(Equal("GenericEvent"))
		Expect(received.Event).To(BeIdenticalTo(Event(event)))
	})

	It("should let effects schedule follow-up events", func() {
		followUpRan := false
		var event *GenericEvent
		event = NewGenericEvent(1.0, func() Details {
			event.Queue().AddEvent(NewGenericEvent(2.0, func() Details {
				followUpRan = true
				return nil
			}, nil))
			return nil
		}, nil)
		queue.AddEvent(event)

		queue.ResolveNextEvent()
		Expect(queue.Len()).To(Equal(1))

		queue.ResolveNextEvent()
		Expect(followUpRan).To(BeTrue())
	})
})

var _ = Describe("UnblockEvent", func() {
	It("should unblock all listed objects", func() {
		world := NewWorld()
		queue := world.EventQueue()

		obj1 := newTestObject(world)
		obj2 := newTestObject(world)
		obj1.SetBlocked(true)
		obj2.SetBlocked(true)

		event := NewUnblockEvent(1.0, []WorldObject{obj1, obj2})
		Expect(event.Priority()).To(Equal(PriorityUnblock))
		queue.AddEvent(event)

		result := queue.ResolveNextEvent()

		Expect(result.Successful).To(BeTrue())
		Expect(obj1.IsBlocked()).To(BeFalse())
		Expect(obj2.IsBlocked()).To(BeFalse())
		Expect(result.Details).To(HaveKey(DetailUnblockedObjects))
	})
})
