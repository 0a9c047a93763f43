package ecs

// System represents a behavior that operates on entities or singletons.
// User-defined systems implement this interface as structs; Query and
// Singleton fields are initialized by the Scheduler on registration, and any
// other fields persist between frames as system-local state.
type System interface {
	Execute(frame *UpdateFrame)
}
