package control

import "github.com/plus3/puppet/ecs"

// AnimationSystem keeps each avatar's animation index in sync with its
// locomotion state. The index is rewritten only on the tick the state value
// differs from the previous tick; that is an optimization through change
// detection, the invariant is simply index == state ordinal.
type AnimationSystem struct {
	Players ecs.Query[struct {
		ecs.EntityId
		*PlayerState
		*AnimationState
	}]

	previous map[ecs.EntityId]LocomotionState
}

// NewAnimationSystem creates the animation synchronizer.
func NewAnimationSystem() *AnimationSystem {
	return &AnimationSystem{
		previous: make(map[ecs.EntityId]LocomotionState),
	}
}

// Execute recomputes the animation index for entities whose locomotion
// state changed since the last tick. Entities seen for the first time are
// synced unconditionally.
func (s *AnimationSystem) Execute(frame *ecs.UpdateFrame) {
	for player := range s.Players.Values() {
		state := player.PlayerState.State

		prev, seen := s.previous[player.EntityId]
		if seen && prev == state {
			continue
		}

		player.AnimationState.Index = state.Ordinal()
		s.previous[player.EntityId] = state
	}
}
