package control

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/plus3/puppet/ecs"
)

// SpinSystem applies a fixed yaw increment to every instance tagged
// Spinning. It has no interaction with input, camera, or animation state and
// runs first in the tick order.
type SpinSystem struct {
	Entities ecs.Query[struct {
		*Instance
		*Spinning
	}]
}

// Execute rotates all spinning instances by SpinStep radians.
func (s *SpinSystem) Execute(frame *ecs.UpdateFrame) {
	step := mgl32.QuatRotate(SpinStep, mgl32.Vec3{0, 1, 0})
	for entity := range s.Entities.Values() {
		entity.Instance.Rotation = entity.Instance.Rotation.Mul(step)
	}
}
