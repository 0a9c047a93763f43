package rig

import "github.com/go-gl/mathgl/mgl32"

const (
	minPitchDegrees = -90
	maxPitchDegrees = 90
)

// YawPitch is a driver holding two euler angles in degrees, mutated
// additively by scaled mouse deltas. Pitch is clamped to keep the camera
// from flipping over the vertical.
type YawPitch struct {
	YawDegrees   float32
	PitchDegrees float32
}

// NewYawPitch creates a yaw/pitch driver at yaw 0, pitch 0.
func NewYawPitch() *YawPitch {
	return &YawPitch{}
}

// WithPitch returns the driver with its pitch set, for builder chains.
func (y *YawPitch) WithPitch(degrees float32) *YawPitch {
	y.PitchDegrees = clampPitch(degrees)
	return y
}

// RotateYawPitch adds the given angle deltas, in degrees.
func (y *YawPitch) RotateYawPitch(yawDelta, pitchDelta float32) {
	y.YawDegrees += yawDelta
	y.PitchDegrees = clampPitch(y.PitchDegrees + pitchDelta)
}

// YawRotation returns the rotation around the vertical axis only, ignoring
// pitch. Movement intent is rotated by this so looking up or down does not
// change ground speed.
func (y *YawPitch) YawRotation() mgl32.Quat {
	return mgl32.QuatRotate(mgl32.DegToRad(y.YawDegrees), mgl32.Vec3{0, 1, 0})
}

// Update contributes the driver's orientation to the accumulated transform.
func (y *YawPitch) Update(dt float32, tr Transform) Transform {
	yaw := mgl32.QuatRotate(mgl32.DegToRad(y.YawDegrees), mgl32.Vec3{0, 1, 0})
	pitch := mgl32.QuatRotate(mgl32.DegToRad(y.PitchDegrees), mgl32.Vec3{1, 0, 0})
	tr.Rotation = tr.Rotation.Mul(yaw).Mul(pitch)
	return tr
}

func clampPitch(degrees float32) float32 {
	if degrees < minPitchDegrees {
		return minPitchDegrees
	}
	if degrees > maxPitchDegrees {
		return maxPitchDegrees
	}
	return degrees
}
