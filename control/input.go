package control

import "github.com/plus3/puppet/ecs"

// InputSystem folds the event queue into the persistent key state. Movement
// keys are level-triggered; grab, jump and run act on press edges only, with
// the system tracking held keys so platform key repeats cannot re-trigger
// them. Jump and run edges drive the locomotion transition table directly;
// mouse deltas accumulate for the CameraSystem. Unrecognized keys have no
// effect.
type InputSystem struct {
	Events  ecs.Singleton[EventQueue]
	Keys    ecs.Singleton[KeyState]
	Window  ecs.Singleton[WindowChanges]
	Players ecs.Query[struct {
		*PlayerState
	}]

	bindings Bindings
	held     map[Key]bool
}

// NewInputSystem creates the input aggregator with the given bindings.
func NewInputSystem(bindings Bindings) *InputSystem {
	return &InputSystem{
		bindings: bindings,
		held:     make(map[Key]bool),
	}
}

// Execute drains the entire event queue in arrival order.
func (s *InputSystem) Execute(frame *ecs.UpdateFrame) {
	keys := s.Keys.Get()
	window := s.Window.Get()

	for ev := range s.Events.Get().Drain() {
		switch ev.Kind {
		case EventKey:
			s.handleKey(ev, keys, window)
		case EventMouseMotion:
			keys.MouseDX += ev.DX
			keys.MouseDY += ev.DY
		}
	}
}

func (s *InputSystem) handleKey(ev Event, keys *KeyState, window *WindowChanges) {
	b := s.bindings

	switch {
	case bound(b.Forward, ev.Key):
		keys.Forward = ev.Pressed
	case bound(b.Back, ev.Key):
		keys.Back = ev.Pressed
	case bound(b.Left, ev.Key):
		keys.Left = ev.Pressed
	case bound(b.Right, ev.Key):
		keys.Right = ev.Pressed
	case bound(b.ToggleGrab, ev.Key):
		if s.pressEdge(ev) {
			keys.CursorGrab = !keys.CursorGrab
			grab := keys.CursorGrab
			visible := !keys.CursorGrab
			window.CursorGrab = &grab
			window.CursorVisible = &visible
		}
	case bound(b.Jump, ev.Key):
		if s.pressEdge(ev) {
			s.fire(TriggerJump)
		}
	case bound(b.Run, ev.Key):
		if s.pressEdge(ev) {
			s.fire(TriggerRun)
		}
	}
}

// pressEdge reports whether ev is an unpressed-to-pressed transition and
// updates the held record for edge-triggered keys.
func (s *InputSystem) pressEdge(ev Event) bool {
	wasHeld := s.held[ev.Key]
	s.held[ev.Key] = ev.Pressed
	return ev.Pressed && !wasHeld
}

func (s *InputSystem) fire(trigger Trigger) {
	for player := range s.Players.Values() {
		player.PlayerState.State = player.PlayerState.State.Next(trigger)
	}
}
