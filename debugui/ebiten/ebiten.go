// Package ebiten bridges the Dear ImGui Ebiten backend into the ECS so the
// overlay can be stored and reached as a singleton.
package ebiten

import (
	ebitenbackend "github.com/AllenDang/cimgui-go/backend/ebiten-backend"
)

// ImguiBackend wraps the Ebiten-specific Dear ImGui backend. Call BeginFrame
// before the scheduler runs, EndFrame after, and Draw from the host's Draw.
type ImguiBackend struct {
	*ebitenbackend.EbitenBackend
}

// New creates a backend and its window.
func New(title string, width, height int) ImguiBackend {
	backend := ebitenbackend.NewEbitenBackend()
	backend.CreateWindow(title, width, height)
	return ImguiBackend{EbitenBackend: backend}
}
