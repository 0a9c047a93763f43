package rig

// CameraRig is an ordered list of drivers plus the composition rule that
// produces the final pose. New drivers compose without touching the update
// logic: each one folds its contribution into the accumulated transform.
type CameraRig struct {
	drivers []Driver

	// Final is the composed pose as of the last Update call.
	Final Transform
}

// Builder assembles a CameraRig from drivers in chain order.
type Builder struct {
	drivers []Driver
}

// New starts a rig builder.
func New() *Builder {
	return &Builder{}
}

// With appends a driver to the chain.
func (b *Builder) With(driver Driver) *Builder {
	b.drivers = append(b.drivers, driver)
	return b
}

// Build finalizes the rig and composes the initial pose with dt 0.
func (b *Builder) Build() *CameraRig {
	r := &CameraRig{drivers: b.drivers}
	r.Update(0)
	return r
}

// Update recomposes all drivers, in chain order, into the final transform.
func (r *CameraRig) Update(dt float32) Transform {
	tr := IdentityTransform()
	for _, driver := range r.drivers {
		tr = driver.Update(dt, tr)
	}
	r.Final = tr
	return tr
}

// Find returns the first driver in the chain of the requested concrete
// type. It panics if the rig has no such driver: asking for a driver that
// was never added is a wiring bug, not a runtime condition.
func Find[T Driver](r *CameraRig) T {
	for _, driver := range r.drivers {
		if typed, ok := driver.(T); ok {
			return typed
		}
	}
	panic("rig: no driver of requested type in chain")
}
