package ecs

// UpdateFrame carries per-tick context into each system's Execute call.
type UpdateFrame struct {
	DeltaTime float64
	Commands  *Commands
	Storage   *Storage
}

func newUpdateFrame(dt float64, storage *Storage) *UpdateFrame {
	return &UpdateFrame{
		DeltaTime: dt,
		Commands:  NewCommands(),
		Storage:   storage,
	}
}
