// Package rig implements a decoupled camera as an ordered chain of
// composable drivers. Each driver owns one aspect of the final pose
// (translation, orientation) and contributes it during Update; the rig
// composes the chain into a final transform every tick.
package rig

import "github.com/go-gl/mathgl/mgl32"

// Transform is a camera pose: a world-space position and an orientation.
type Transform struct {
	Position mgl32.Vec3
	Rotation mgl32.Quat
}

// IdentityTransform returns a zero-position, identity-rotation transform.
func IdentityTransform() Transform {
	return Transform{Rotation: mgl32.QuatIdent()}
}

// Driver is a stateful transform contributor. Update receives the transform
// accumulated by the drivers earlier in the chain and returns the new
// accumulated transform. Drivers must be pure arithmetic: no driver may
// fail.
type Driver interface {
	Update(dt float32, tr Transform) Transform
}
