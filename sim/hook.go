package sim

// HookPos defines the enum of possible hooking positions.
type HookPos struct {
	Name string
}

// HookPosBeforeEvent is a hook position that triggers before an event
// resolves.
var HookPosBeforeEvent = &HookPos{Name: "BeforeEvent"}

// HookPosAfterEvent is a hook position that triggers after an event
// resolved. The hook context Detail carries the resolution Result.
var HookPosAfterEvent = &HookPos{Name: "AfterEvent"}

// HookCtx is the context that holds all the information about the site that
// a hook is triggered.
type HookCtx struct {
	Domain Hookable
	Pos    *HookPos
	Item   any
	Detail any
}

// Hookable defines an object that accepts Hooks.
type Hookable interface {
	// AcceptHook registers a hook.
	AcceptHook(hook Hook)
}

// Hook is a short piece of program that can be invoked by a hookable object.
type Hook interface {
	// Func determines what to do if the hook is invoked.
	Func(ctx HookCtx)
}

// A HookableBase provides some utility functions for types that implement
// the Hookable interface.
type HookableBase struct {
	Hooks []Hook
}

// AcceptHook registers a hook.
func (h *HookableBase) AcceptHook(hook Hook) {
	h.Hooks = append(h.Hooks, hook)
}

// InvokeHook triggers the registered Hooks.
func (h *HookableBase) InvokeHook(ctx HookCtx) {
	for _, hook := range h.Hooks {
		hook.Func(ctx)
	}
}
