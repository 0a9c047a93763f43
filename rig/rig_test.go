package rig_test

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"

	"github.com/plus3/puppet/rig"
)

func TestBuildComposesInitialPose(t *testing.T) {
	r := rig.New().
		With(rig.NewPosition(mgl32.Vec3{0, 1.75, 0})).
		With(rig.NewYawPitch()).
		Build()

	assert.Equal(t, mgl32.Vec3{0, 1.75, 0}, r.Final.Position)
	assert.InDelta(t, 1, r.Final.Rotation.W, 1e-6)
}

func TestUpdateComposesDriversInChainOrder(t *testing.T) {
	r := rig.New().
		With(rig.NewPosition(mgl32.Vec3{1, 2, 3})).
		With(rig.NewPosition(mgl32.Vec3{10, 0, 0})).
		Build()

	tr := r.Update(1.0 / 60.0)
	assert.Equal(t, mgl32.Vec3{11, 2, 3}, tr.Position)
	assert.Equal(t, tr, r.Final)
}

func TestTranslateMovesThePose(t *testing.T) {
	r := rig.New().With(rig.NewPosition(mgl32.Vec3{})).Build()

	rig.Find[*rig.Position](r).Translate(mgl32.Vec3{0, 0, -0.05})
	r.Update(1.0 / 60.0)

	assert.InDelta(t, -0.05, r.Final.Position.Z(), 1e-6)
}

func TestFindReturnsDriverByType(t *testing.T) {
	position := rig.NewPosition(mgl32.Vec3{5, 0, 0})
	yawPitch := rig.NewYawPitch()
	r := rig.New().With(position).With(yawPitch).Build()

	assert.Same(t, position, rig.Find[*rig.Position](r))
	assert.Same(t, yawPitch, rig.Find[*rig.YawPitch](r))
}

func TestFindPanicsWhenDriverMissing(t *testing.T) {
	r := rig.New().With(rig.NewPosition(mgl32.Vec3{})).Build()

	assert.Panics(t, func() {
		rig.Find[*rig.YawPitch](r)
	})
}

func TestPitchClamp(t *testing.T) {
	yawPitch := rig.NewYawPitch()

	yawPitch.RotateYawPitch(0, 500)
	assert.Equal(t, float32(90), yawPitch.PitchDegrees)

	yawPitch.RotateYawPitch(0, -500)
	assert.Equal(t, float32(-90), yawPitch.PitchDegrees)

	yawPitch.RotateYawPitch(0, 45)
	assert.Equal(t, float32(-45), yawPitch.PitchDegrees)
}

func TestYawIsNotClamped(t *testing.T) {
	yawPitch := rig.NewYawPitch()

	yawPitch.RotateYawPitch(720, 0)
	assert.Equal(t, float32(720), yawPitch.YawDegrees)
}

func TestYawRotationIgnoresPitch(t *testing.T) {
	yawPitch := rig.NewYawPitch().WithPitch(-60)
	yawPitch.RotateYawPitch(90, 0)

	// Rotating the forward vector by yaw alone keeps it on the ground plane.
	forward := yawPitch.YawRotation().Rotate(mgl32.Vec3{0, 0, -1})
	assert.InDelta(t, -1, forward.X(), 1e-5)
	assert.InDelta(t, 0, forward.Y(), 1e-5)
	assert.InDelta(t, 0, forward.Z(), 1e-5)
}

func TestYawPitchRotatesPose(t *testing.T) {
	yawPitch := rig.NewYawPitch()
	r := rig.New().
		With(rig.NewPosition(mgl32.Vec3{0, 1.75, 0})).
		With(yawPitch).
		Build()

	yawPitch.RotateYawPitch(90, 0)
	r.Update(1.0 / 60.0)

	// Yaw rotates the view, not the eye point.
	assert.Equal(t, mgl32.Vec3{0, 1.75, 0}, r.Final.Position)

	forward := r.Final.Rotation.Rotate(mgl32.Vec3{0, 0, -1})
	assert.InDelta(t, -1, forward.X(), 1e-5)
	assert.InDelta(t, 0, forward.Z(), 1e-5)
}
