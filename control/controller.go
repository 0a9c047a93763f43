// Package control implements the per-frame control loop for a single
// controllable avatar: input aggregation, camera rig integration, the
// locomotion state machine, and animation index synchronization. It consumes
// an ordered event queue and produces a camera pose, an animation index, and
// deferred window-change requests; rendering, windowing and asset loading
// are external collaborators.
package control

import (
	"context"
	"time"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/plus3/puppet/ecs"
	"github.com/plus3/puppet/rig"
)

const (
	// TickStep is the fixed integration timestep. The camera integrates
	// with this constant regardless of measured frame time.
	TickStep = 1.0 / 60.0

	// TickInterval is the wall-clock pacing of the headless run loop.
	TickInterval = time.Second / 60

	// MoveSpeed is the camera translation speed in units per second.
	MoveSpeed = 3.0

	// MouseSensitivity scales raw mouse deltas into look degrees.
	MouseSensitivity = 0.1

	// DefaultEyeHeight is the rig's initial height above the ground plane.
	DefaultEyeHeight = 1.75

	// SpinStep is the per-tick yaw increment of spinning instances, in
	// radians.
	SpinStep = 0.01

	// DefaultQueueCapacity bounds the event queue; oldest events drop on
	// overflow.
	DefaultQueueCapacity = 256
)

// Options tunes a Controller. Zero fields fall back to the defaults above.
type Options struct {
	Speed         float32
	Sensitivity   float32
	EyeHeight     float32
	QueueCapacity int
	Bindings      Bindings
}

// DefaultOptions returns the standard tuning.
func DefaultOptions() Options {
	return Options{
		Speed:         MoveSpeed,
		Sensitivity:   MouseSensitivity,
		EyeHeight:     DefaultEyeHeight,
		QueueCapacity: DefaultQueueCapacity,
		Bindings:      DefaultBindings(),
	}
}

func (o Options) withDefaults() Options {
	def := DefaultOptions()
	if o.Speed == 0 {
		o.Speed = def.Speed
	}
	if o.Sensitivity == 0 {
		o.Sensitivity = def.Sensitivity
	}
	if o.EyeHeight == 0 {
		o.EyeHeight = def.EyeHeight
	}
	if o.QueueCapacity == 0 {
		o.QueueCapacity = def.QueueCapacity
	}
	if o.Bindings.Keys() == nil {
		o.Bindings = def.Bindings
	}
	return o
}

// Controller owns the ECS world and scheduler for one avatar control loop.
// Systems execute in a deterministic order every tick: SpinSystem,
// InputSystem, CameraSystem, AnimationSystem. Each singleton has exactly one
// writer per tick and is read only after that writer ran.
type Controller struct {
	Registry  *ecs.ComponentRegistry
	Storage   *ecs.Storage
	Scheduler *ecs.Scheduler
	Rig       *rig.CameraRig
	Avatar    ecs.EntityId
}

// NewController builds the world: registers components, creates the
// singletons with their fixed initial values, assembles the camera rig at
// eye height, spawns the avatar in the Idle state, and registers the
// systems in tick order.
func NewController(opts Options) *Controller {
	opts = opts.withDefaults()

	registry := ecs.NewComponentRegistry()
	ecs.RegisterComponent[PlayerState](registry)
	ecs.RegisterComponent[AnimationState](registry)
	ecs.RegisterComponent[Instance](registry)
	ecs.RegisterComponent[Spinning](registry)

	storage := ecs.NewStorage(registry)

	ecs.NewSingleton[KeyState](storage)
	ecs.NewSingleton[WindowChanges](storage)
	ecs.NewSingleton[EventQueue](storage, NewEventQueue(opts.QueueCapacity))

	cameraRig := rig.New().
		With(rig.NewPosition(mgl32.Vec3{0, opts.EyeHeight, 0})).
		With(rig.NewYawPitch()).
		Build()

	// The pose is valid before the first tick: Build already composed the
	// rig, so the singleton starts as its mirror.
	ecs.NewSingleton[Camera](storage, Camera{
		Position: cameraRig.Final.Position,
		Rotation: cameraRig.Final.Rotation,
	})

	avatar := storage.Spawn(
		Instance{
			Position: mgl32.Vec3{0, 1, -3},
			Scale:    1,
			Rotation: mgl32.QuatIdent(),
		},
		PlayerState{State: Idle},
		AnimationState{Index: Idle.Ordinal()},
	)

	scheduler := ecs.NewScheduler(storage)
	scheduler.Register(&SpinSystem{})
	scheduler.Register(NewInputSystem(opts.Bindings))
	scheduler.Register(NewCameraSystem(cameraRig, opts.Speed, opts.Sensitivity))
	scheduler.Register(NewAnimationSystem())

	return &Controller{
		Registry:  registry,
		Storage:   storage,
		Scheduler: scheduler,
		Rig:       cameraRig,
		Avatar:    avatar,
	}
}

// Push enqueues a raw input event for the next tick.
func (c *Controller) Push(ev Event) {
	var queue *EventQueue
	if c.Storage.ReadSingleton(&queue) {
		queue.Push(ev)
	}
}

// Tick runs one fixed-order pass over all systems.
func (c *Controller) Tick() {
	c.Scheduler.Once(TickStep)
}

// Run ticks the controller at the fixed interval until ctx is cancelled.
func (c *Controller) Run(ctx context.Context) {
	c.Scheduler.RunFixed(ctx, TickInterval, TickStep)
}

// Camera returns the externally visible camera pose singleton.
func (c *Controller) Camera() *Camera {
	var camera *Camera
	c.Storage.ReadSingleton(&camera)
	return camera
}

// KeyState returns the persistent key-state record.
func (c *Controller) KeyState() *KeyState {
	var keys *KeyState
	c.Storage.ReadSingleton(&keys)
	return keys
}

// WindowChanges returns the deferred window-change outbox. The hosting
// window layer applies pending requests and calls Clear once per tick.
func (c *Controller) WindowChanges() *WindowChanges {
	var window *WindowChanges
	c.Storage.ReadSingleton(&window)
	return window
}

// PlayerState returns the avatar's locomotion state component.
func (c *Controller) PlayerState() *PlayerState {
	return ecs.ReadComponent[PlayerState](c.Storage, c.Avatar)
}

// AnimationState returns the avatar's animation state component.
func (c *Controller) AnimationState() *AnimationState {
	return ecs.ReadComponent[AnimationState](c.Storage, c.Avatar)
}

// SpawnSpinning places a decorative spinning instance in the world.
func (c *Controller) SpawnSpinning(position mgl32.Vec3, scale float32) ecs.EntityId {
	return c.Storage.Spawn(
		Instance{Position: position, Scale: scale, Rotation: mgl32.QuatIdent()},
		Spinning{},
	)
}
