package sim

import (
	"math/rand"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	gomock "go.uber.org/mock/gomock"
)

var _ = Describe("EventQueue", func() {
	var (
		mockCtrl *gomock.Controller
		world    *World
		queue    *EventQueue
	)

	BeforeEach(func() {
		mockCtrl = gomock.NewController(GinkgoT())
		world = NewWorld()
		queue = world.EventQueue()
	})

	AfterEach(func() {
		mockCtrl.Finish()
	})

	newMockEvent := func(t VTimeInSec, priority int) *MockEvent {
		e := NewMockEvent(mockCtrl)
		e.EXPECT().Time().Return(t).AnyTimes()
		e.EXPECT().Priority().Return(priority).AnyTimes()
		e.EXPECT().EventType().Return("MockEvent").AnyTimes()
		e.EXPECT().RequiredObjects().Return(nil).AnyTimes()
		e.EXPECT().IgnoreBlocked().Return(false).AnyTimes()
		e.EXPECT().bindQueue(gomock.Any()).AnyTimes()
		e.EXPECT().callbackList().Return(nil).AnyTimes()
		e.EXPECT().Effect().Return(nil).AnyTimes()
		return e
	}

	It("should resolve events in time order", func() {
		numEvents := 100
		for i := 0; i < numEvents; i++ {
			event := newMockEvent(VTimeInSec(rand.Float64()), PriorityDefault)
			queue.AddEvent(event)
		}

		now := VTimeInSec(-1)
		for i := 0; i < numEvents; i++ {
			result := queue.ResolveNextEvent()
			Expect(result.Successful).To(BeTrue())
			Expect(result.Event.Time() >= now).To(BeTrue())
			now = result.Event.Time()
			Expect(queue.CurrentTime()).To(Equal(now))
		}
		Expect(queue.Len()).To(Equal(0))
	})

	It("should resolve same-time events in priority order", func() {
		var order []string
		record := func(name string) func() Details {
			return func() Details {
				order = append(order, name)
				return nil
			}
		}

		normal := NewGenericEvent(1.0, record("normal"), nil)
		discard := NewGenericEvent(1.0, record("discard"), nil)
		discard.SetPriority(PriorityDiscard)
		unblock := NewGenericEvent(1.0, record("unblock"), nil)
		unblock.SetPriority(PriorityUnblock)

		queue.AddEvent(normal)
		queue.AddEvent(discard)
		queue.AddEvent(unblock)

		for queue.Len() > 0 {
			queue.ResolveNextEvent()
		}
		Expect(order).To(Equal([]string{"unblock", "normal", "discard"}))
	})

	It("should break full ties in insertion order", func() {
		var order []string
		record := func(name string) func() Details {
			return func() Details {
				order = append(order, name)
				return nil
			}
		}

		for _, name := range []string{"first", "second", "third"} {
			queue.AddEvent(NewGenericEvent(2.0, record(name), nil))
		}

		for queue.Len() > 0 {
			queue.ResolveNextEvent()
		}
		Expect(order).To(Equal([]string{"first", "second", "third"}))
	})

	It("should panic when scheduling into the past", func() {
		queue.AddEvent(newMockEvent(10.0, PriorityDefault))
		queue.ResolveNextEvent()

		Expect(func() {
			queue.AddEvent(newMockEvent(5.0, PriorityDefault))
		}).To(Panic())
	})

	It("should panic when a required object is not in the world", func() {
		obj := newTestObject(world)
		obj.Destroy()

		event := NewGenericEvent(1.0,
			func() Details { return nil },
			[]WorldObject{obj})

		Expect(func() {
			queue.AddEvent(event)
		}).To(Panic())
	})

	It("should register events with their required objects", func() {
		obj := newTestObject(world)
		event := NewGenericEvent(1.0,
			func() Details { return nil },
			[]WorldObject{obj})

		queue.AddEvent(event)
		Expect(obj.RequiredByEvents()).To(HaveLen(1))

		queue.ResolveNextEvent()
		Expect(obj.RequiredByEvents()).To(BeEmpty())
	})

	Context("ResolveUntil", func() {
		It("should only resolve events up to the target time", func() {
			resolved := 0
			count := func() Details {
				resolved++
				return nil
			}
			for _, t := range []VTimeInSec{1.0, 2.0, 3.0} {
				queue.AddEvent(NewGenericEvent(t, count, nil))
			}

			queue.ResolveUntil(2.5)

			Expect(resolved).To(Equal(2))
			Expect(queue.CurrentTime()).To(Equal(VTimeInSec(2.5)))
			Expect(queue.Len()).To(Equal(1))
		})

		It("should resolve events scheduled exactly at the target time", func() {
			resolved := 0
			queue.AddEvent(NewGenericEvent(2.0, func() Details {
				resolved++
				return nil
			}, nil))

			queue.ResolveUntil(2.0)

			Expect(resolved).To(Equal(1))
			Expect(queue.CurrentTime()).To(Equal(VTimeInSec(2.0)))
		})

		It("should panic when the target time lies in the past", func() {
			queue.ResolveUntil(5.0)

			Expect(func() {
				queue.ResolveUntil(4.0)
			}).To(Panic())
		})
	})

	Context("AdvanceTime", func() {
		It("should move the current time forward", func() {
			queue.AdvanceTime(1.5)
			Expect(queue.CurrentTime()).To(Equal(VTimeInSec(1.5)))
		})

		It("should panic when it would skip a pending event", func() {
			queue.AddEvent(newMockEvent(1.0, PriorityDefault))

			Expect(func() {
				queue.AdvanceTime(2.0)
			}).To(Panic())
		})
	})

	It("should remove events by condition", func() {
		obj := newTestObject(world)
		keep := NewGenericEvent(1.0, func() Details { return nil }, nil)
		drop := NewGenericEvent(2.0,
			func() Details { return nil },
			[]WorldObject{obj})

		queue.AddEvent(keep)
		queue.AddEvent(drop)

		removed := queue.RemoveByCondition(func(e Event) bool {
			return len(e.RequiredObjects()) > 0
		})

		Expect(removed).To(HaveLen(1))
		Expect(removed[0]).To(BeIdenticalTo(Event(drop)))
		Expect(queue.Len()).To(Equal(1))
		Expect(obj.RequiredByEvents()).To(BeEmpty())
	})

	It("should count scheduled and resolved events per type", func() {
		obj := newTestObject(world)

		queue.AddEvent(NewGenericEvent(1.0, func() Details { return nil }, nil))
		failing := NewGenericEvent(2.0,
			func() Details { return nil },
			[]WorldObject{obj})
		queue.AddEvent(failing)
		obj.Destroy()

		queue.ResolveNextEvent()
		queue.ResolveNextEvent()

		stats := queue.Stats()["GenericEvent"]
		Expect(stats.Scheduled).To(Equal(2))
		Expect(stats.Resolved).To(Equal(2))
		Expect(stats.ResolvedSuccessfully).To(Equal(1))
	})

	It("should invoke hooks around event resolution", func() {
		hook := &recordingHook{}
		queue.AcceptHook(hook)

		queue.AddEvent(NewGenericEvent(1.0, func() Details { return nil }, nil))
		queue.ResolveNextEvent()

		Expect(hook.positions).To(Equal([]*HookPos{
			HookPosBeforeEvent,
			HookPosAfterEvent,
		}))
		Expect(hook.lastResult.Successful).To(BeTrue())
		Expect(hook.lastResult.EventType).To(Equal("GenericEvent"))
	})
})

type recordingHook struct {
	positions  []*HookPos
	lastResult Result
}

func (h *recordingHook) Func(ctx HookCtx) {
	h.positions = append(h.positions, ctx.Pos)
	if result, ok := ctx.Detail.(Result); ok {
		h.lastResult = result
	}
}
