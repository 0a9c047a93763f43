// Package debugui provides an immediate-mode debug overlay for the control
// loop using Dear ImGui. Render functions live in ECS components and are
// deferred through the command buffer, so all widget code runs after the
// game systems finished the tick.
package debugui

import (
	"github.com/AllenDang/cimgui-go/imgui"

	"github.com/plus3/puppet/ecs"
)

// ImguiItem is a component holding a Dear ImGui render function. Attach it
// to entities that should draw widgets each frame.
type ImguiItem struct {
	Render func()
}

// ImguiInputState tracks Dear ImGui's input capture state as a singleton.
// Game input handling should yield when ImGui wants the mouse or keyboard.
type ImguiInputState struct {
	WantCaptureMouse    bool
	WantCaptureKeyboard bool
}

// ImguiSystem updates the input capture singleton and defers every
// ImguiItem render function to the end of the tick.
type ImguiSystem struct {
	Items      ecs.Query[struct{ *ImguiItem }]
	InputState ecs.Singleton[ImguiInputState]
}

func (s *ImguiSystem) Execute(frame *ecs.UpdateFrame) {
	state := s.InputState.Get()
	state.WantCaptureMouse = imgui.CurrentIO().WantCaptureMouse()
	state.WantCaptureKeyboard = imgui.CurrentIO().WantCaptureKeyboard()

	for item := range s.Items.Values() {
		frame.Commands.Defer(item.ImguiItem.Render)
	}
}
