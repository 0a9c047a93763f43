package control

import "github.com/go-gl/mathgl/mgl32"

// KeyState is the persistent key-state record, written only by the
// InputSystem and read by the CameraSystem. Movement fields are
// level-triggered; CursorGrab is a toggle flipped on press edges. MouseDX
// and MouseDY accumulate raw mouse deltas for the current tick and are
// consumed (or discarded) by the CameraSystem.
type KeyState struct {
	Forward bool
	Back    bool
	Left    bool
	Right   bool

	CursorGrab bool

	MouseDX float64
	MouseDY float64
}

// Camera is the externally visible camera pose, overwritten every tick from
// the rig's final transform.
type Camera struct {
	Position mgl32.Vec3
	Rotation mgl32.Quat
}

// WindowChanges is a write-only outbox of deferred window requests. Fields
// are set only on a grab-toggle edge; the hosting window layer applies and
// clears them once per tick.
type WindowChanges struct {
	CursorGrab    *bool
	CursorVisible *bool
}

// Clear resets both requests; called by the consumer after applying them.
func (w *WindowChanges) Clear() {
	w.CursorGrab = nil
	w.CursorVisible = nil
}

// PlayerState is the avatar's current locomotion state component.
type PlayerState struct {
	State LocomotionState
}

// AnimationState drives the external animation player: Index is always the
// canonical ordinal of the avatar's locomotion state, Time the clip cursor.
type AnimationState struct {
	Time  float32
	Index int
}

// Instance places a model instance in the world.
type Instance struct {
	Position mgl32.Vec3
	Scale    float32
	Rotation mgl32.Quat
}

// Spinning tags instances that the SpinSystem rotates each tick.
type Spinning struct{}
