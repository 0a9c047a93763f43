package rig

import "github.com/go-gl/mathgl/mgl32"

// Position is a driver holding an absolute translation, mutated additively
// by movement intent.
type Position struct {
	Translation mgl32.Vec3
}

// NewPosition creates a position driver at the given translation.
func NewPosition(translation mgl32.Vec3) *Position {
	return &Position{Translation: translation}
}

// Translate adds delta to the driver's absolute translation.
func (p *Position) Translate(delta mgl32.Vec3) {
	p.Translation = p.Translation.Add(delta)
}

// Update contributes the driver's translation to the accumulated transform.
func (p *Position) Update(dt float32, tr Transform) Transform {
	tr.Position = tr.Position.Add(p.Translation)
	return tr
}
