package control_test

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"

	"github.com/plus3/puppet/control"
	"github.com/plus3/puppet/ecs"
	"github.com/plus3/puppet/rig"
)

type cameraWorld struct {
	storage   *ecs.Storage
	scheduler *ecs.Scheduler
	rig       *rig.CameraRig
}

func newCameraWorld(t *testing.T) *cameraWorld {
	t.Helper()

	storage := ecs.NewStorage(ecs.NewComponentRegistry())
	ecs.NewSingleton[control.KeyState](storage)
	ecs.NewSingleton[control.Camera](storage, control.Camera{Rotation: mgl32.QuatIdent()})

	r := rig.New().
		With(rig.NewPosition(mgl32.Vec3{0, control.DefaultEyeHeight, 0})).
		With(rig.NewYawPitch()).
		Build()

	scheduler := ecs.NewScheduler(storage)
	scheduler.Register(control.NewCameraSystem(r, control.MoveSpeed, control.MouseSensitivity))

	return &cameraWorld{storage: storage, scheduler: scheduler, rig: r}
}

func (w *cameraWorld) tick() {
	w.scheduler.Once(control.TickStep)
}

func (w *cameraWorld) keys() *control.KeyState {
	var keys *control.KeyState
	w.storage.ReadSingleton(&keys)
	return keys
}

func (w *cameraWorld) camera() *control.Camera {
	var camera *control.Camera
	w.storage.ReadSingleton(&camera)
	return camera
}

// One tick of full-speed movement covers speed * step units.
const tickDistance = control.MoveSpeed * control.TickStep

func TestForwardMovesAlongNegativeZ(t *testing.T) {
	w := newCameraWorld(t)
	w.keys().Forward = true

	w.tick()

	camera := w.camera()
	assert.InDelta(t, 0, camera.Position.X(), 1e-6)
	assert.InDelta(t, control.DefaultEyeHeight, camera.Position.Y(), 1e-6)
	assert.InDelta(t, -tickDistance, camera.Position.Z(), 1e-6)
}

func TestOpposedKeysCancel(t *testing.T) {
	w := newCameraWorld(t)
	keys := w.keys()
	keys.Forward = true
	keys.Back = true

	w.tick()

	assert.InDelta(t, 0, w.camera().Position.Z(), 1e-6)
}

func TestDiagonalIsNotFaster(t *testing.T) {
	w := newCameraWorld(t)
	keys := w.keys()
	keys.Forward = true
	keys.Right = true

	w.tick()

	moved := w.camera().Position.Sub(mgl32.Vec3{0, control.DefaultEyeHeight, 0})
	assert.InDelta(t, tickDistance, moved.Len(), 1e-6)
	assert.InDelta(t, tickDistance/float32(math.Sqrt2), moved.X(), 1e-6)
	assert.InDelta(t, -tickDistance/float32(math.Sqrt2), moved.Z(), 1e-6)
}

func TestMovementFollowsYaw(t *testing.T) {
	w := newCameraWorld(t)
	rig.Find[*rig.YawPitch](w.rig).RotateYawPitch(90, 0)
	w.keys().Forward = true

	w.tick()

	// Forward at yaw +90 heads along -X.
	camera := w.camera()
	assert.InDelta(t, -tickDistance, camera.Position.X(), 1e-5)
	assert.InDelta(t, 0, camera.Position.Z(), 1e-5)
}

func TestPitchDoesNotChangeGroundSpeed(t *testing.T) {
	w := newCameraWorld(t)
	rig.Find[*rig.YawPitch](w.rig).RotateYawPitch(0, -89)
	w.keys().Forward = true

	w.tick()

	camera := w.camera()
	assert.InDelta(t, control.DefaultEyeHeight, camera.Position.Y(), 1e-6)
	assert.InDelta(t, -tickDistance, camera.Position.Z(), 1e-5)
}

func TestMouseDeltasApplyOnlyWhenGrabbed(t *testing.T) {
	w := newCameraWorld(t)
	keys := w.keys()
	keys.MouseDX = 10
	keys.MouseDY = 5

	w.tick()

	yawPitch := rig.Find[*rig.YawPitch](w.rig)
	assert.Equal(t, float32(0), yawPitch.YawDegrees)
	assert.Equal(t, float32(0), yawPitch.PitchDegrees)

	// Discarded, not queued for a later grab.
	assert.Equal(t, float64(0), keys.MouseDX)
	assert.Equal(t, float64(0), keys.MouseDY)
}

func TestGrabbedMouseDeltasRotateNegated(t *testing.T) {
	w := newCameraWorld(t)
	keys := w.keys()
	keys.CursorGrab = true
	keys.MouseDX = 10
	keys.MouseDY = 5

	w.tick()

	yawPitch := rig.Find[*rig.YawPitch](w.rig)
	assert.InDelta(t, -1.0, yawPitch.YawDegrees, 1e-6)
	assert.InDelta(t, -0.5, yawPitch.PitchDegrees, 1e-6)
	assert.Equal(t, float64(0), keys.MouseDX)
	assert.Equal(t, float64(0), keys.MouseDY)
}

func TestMovementUsesYawFromBeforeThisTicksDeltas(t *testing.T) {
	w := newCameraWorld(t)
	keys := w.keys()
	keys.CursorGrab = true
	keys.Forward = true
	keys.MouseDX = 900 // -90 degrees of yaw, applied after movement

	w.tick()

	// The step's translation still follows the pre-delta yaw of 0.
	camera := w.camera()
	assert.InDelta(t, 0, camera.Position.X(), 1e-5)
	assert.InDelta(t, -tickDistance, camera.Position.Z(), 1e-5)

	assert.InDelta(t, -90, rig.Find[*rig.YawPitch](w.rig).YawDegrees, 1e-4)
}

func TestCameraSingletonMirrorsRigPose(t *testing.T) {
	w := newCameraWorld(t)
	w.keys().Forward = true

	w.tick()

	camera := w.camera()
	assert.Equal(t, w.rig.Final.Position, camera.Position)
	assert.Equal(t, w.rig.Final.Rotation, camera.Rotation)
}
