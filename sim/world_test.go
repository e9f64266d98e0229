package sim

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

type testObject struct {
	WorldObjectBase
}

func newTestObject(w *World) *testObject {
	o := new(testObject)
	o.InitWorldObject(w, o, "TestObject", "")
	return o
}

func newLabeledTestObject(w *World, label string) *testObject {
	o := new(testObject)
	o.InitWorldObject(w, o, "TestObject", label)
	return o
}

var _ = Describe("World", func() {
	var world *World

	BeforeEach(func() {
		world = NewWorld()
	})

	It("should assign default labels with a per-type counter", func() {
		obj1 := newTestObject(world)
		obj2 := newTestObject(world)

		Expect(obj1.Label()).To(Equal("TestObject 1"))
		Expect(obj2.Label()).To(Equal("TestObject 2"))
	})

	It("should keep counting up after objects are destroyed", func() {
		obj1 := newTestObject(world)
		obj1.Destroy()

		obj2 := newTestObject(world)
		Expect(obj2.Label()).To(Equal("TestObject 2"))
	})

	It("should respect custom labels", func() {
		obj := newLabeledTestObject(world, "Alice")
		Expect(obj.Label()).To(Equal("Alice"))
	})

	It("should track objects by type", func() {
		obj1 := newTestObject(world)
		obj2 := newTestObject(world)

		objects := world.ObjectsByType("TestObject")
		Expect(objects).To(HaveLen(2))
		Expect(objects[0]).To(BeIdenticalTo(WorldObject(obj1)))
		Expect(objects[1]).To(BeIdenticalTo(WorldObject(obj2)))
		Expect(world.ObjectTypes()).To(Equal([]string{"TestObject"}))
	})

	It("should report containment", func() {
		obj := newTestObject(world)
		Expect(world.Contains(obj)).To(BeTrue())
		Expect(obj.InWorld()).To(BeTrue())

		obj.Destroy()
		Expect(world.Contains(obj)).To(BeFalse())
		Expect(obj.InWorld()).To(BeFalse())
		Expect(world.ObjectsByType("TestObject")).To(BeEmpty())
	})

	It("should produce the same numbers for the same seed", func() {
		world.SetRandSeed(42)
		first := world.Rand().Float64()

		world.SetRandSeed(42)
		Expect(world.Rand().Float64()).To(Equal(first))
	})
})

var _ = Describe("WorldObject", func() {
	var world *World

	BeforeEach(func() {
		world = NewWorld()
	})

	It("should run destroy callbacks with the concrete object", func() {
		obj := newTestObject(world)

		var seen []WorldObject
		obj.AddDestroyCallback(func(o WorldObject) {
			seen = append(seen, o)
		})

		obj.Destroy()
		Expect(seen).To(HaveLen(1))
		Expect(seen[0]).To(BeIdenticalTo(WorldObject(obj)))
	})

	It("should ignore a second Destroy", func() {
		obj := newTestObject(world)

		calls := 0
		obj.AddDestroyCallback(func(WorldObject) { calls++ })

		obj.Destroy()
		obj.Destroy()
		Expect(calls).To(Equal(1))
	})

	It("should advance its timestamp with UpdateTime", func() {
		obj := newTestObject(world)
		Expect(obj.LastUpdated()).To(Equal(VTimeInSec(0)))

		world.EventQueue().AdvanceTime(3.0)
		obj.UpdateTime()
		Expect(obj.LastUpdated()).To(Equal(VTimeInSec(3.0)))
	})

	It("should start unblocked", func() {
		obj := newTestObject(world)
		Expect(obj.IsBlocked()).To(BeFalse())

		obj.SetBlocked(true)
		Expect(obj.IsBlocked()).To(BeTrue())
	})
})
