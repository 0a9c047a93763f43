package control

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/plus3/puppet/ecs"
	"github.com/plus3/puppet/rig"
)

// CameraSystem integrates movement intent and look deltas into the camera
// rig and publishes the composed pose. It always integrates with TickStep,
// never the measured frame duration; at frame rates other than 1/TickStep
// the camera drifts relative to wall time.
type CameraSystem struct {
	Keys   ecs.Singleton[KeyState]
	Camera ecs.Singleton[Camera]

	rig         *rig.CameraRig
	speed       float32
	sensitivity float32
}

// NewCameraSystem creates the camera integrator over the given rig.
func NewCameraSystem(r *rig.CameraRig, speed, sensitivity float32) *CameraSystem {
	return &CameraSystem{
		rig:         r,
		speed:       speed,
		sensitivity: sensitivity,
	}
}

// Execute advances the rig by one fixed step.
func (s *CameraSystem) Execute(frame *ecs.UpdateFrame) {
	keys := s.Keys.Get()

	forward := boolToAxis(keys.Forward) - boolToAxis(keys.Back)
	right := boolToAxis(keys.Right) - boolToAxis(keys.Left)

	// Clamped to unit length so diagonal input is not faster than
	// axis-aligned input.
	intent := mgl32.Vec3{right, 0, -forward}
	if intent.Len() > 1 {
		intent = intent.Normalize()
	}

	yawPitch := rig.Find[*rig.YawPitch](s.rig)
	position := rig.Find[*rig.Position](s.rig)

	// Rotate intent into world space using the rig's current yaw, before
	// this tick's look deltas are applied.
	moveVec := yawPitch.YawRotation().Rotate(intent)

	dt := float32(TickStep)
	position.Translate(moveVec.Mul(s.speed * dt))

	if keys.CursorGrab {
		yawPitch.RotateYawPitch(
			-s.sensitivity*float32(keys.MouseDX),
			-s.sensitivity*float32(keys.MouseDY),
		)
	}
	// Pending deltas never carry across ticks; without the grab they are
	// discarded, not queued.
	keys.MouseDX = 0
	keys.MouseDY = 0

	s.rig.Update(dt)

	camera := s.Camera.Get()
	camera.Position = s.rig.Final.Position
	camera.Rotation = s.rig.Final.Rotation
}

func boolToAxis(b bool) float32 {
	if b {
		return 1
	}
	return 0
}
