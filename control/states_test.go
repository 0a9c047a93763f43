package control_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/plus3/puppet/control"
)

// canonicalOrder pins every state to its animation index. Reordering the
// enum breaks clip selection, so this table is spelled out in full.
var canonicalOrder = []control.LocomotionState{
	control.Falling,
	control.FallingToLanding,
	control.Idle,
	control.LeftTurnFeet,
	control.RightTurnFeet,
	control.Running,
	control.RunningJump,
	control.SittingIdle,
	control.SprintToRoll,
	control.Standing,
	control.Jump,
	control.StandingPose,
	control.StartWalking,
	control.Walking,
}

func TestOrdinalsMatchCanonicalOrder(t *testing.T) {
	assert.Equal(t, control.LocomotionStateCount, len(canonicalOrder))

	seen := make(map[int]bool)
	for i, state := range canonicalOrder {
		assert.True(t, state.Valid())
		assert.Equal(t, i, state.Ordinal(), "state %s", state)
		seen[state.Ordinal()] = true
	}

	// Ordinals form a bijection onto [0, count).
	assert.Equal(t, control.LocomotionStateCount, len(seen))
}

func TestAnimationIndicesOfInterest(t *testing.T) {
	assert.Equal(t, 2, control.Idle.Ordinal())
	assert.Equal(t, 5, control.Running.Ordinal())
	assert.Equal(t, 10, control.Jump.Ordinal())
	assert.Equal(t, 13, control.Walking.Ordinal())
}

func TestStateNames(t *testing.T) {
	assert.Equal(t, "Idle", control.Idle.String())
	assert.Equal(t, "FallingToLanding", control.FallingToLanding.String())
	assert.Equal(t, "LocomotionState(200)", control.LocomotionState(200).String())
}

func TestNextIsTotal(t *testing.T) {
	for _, state := range canonicalOrder {
		assert.Equal(t, control.Jump, state.Next(control.TriggerJump), "from %s", state)
		assert.Equal(t, control.Running, state.Next(control.TriggerRun), "from %s", state)
	}
}

func TestSelfTransitionsAreLegal(t *testing.T) {
	assert.Equal(t, control.Jump, control.Jump.Next(control.TriggerJump))
	assert.Equal(t, control.Running, control.Running.Next(control.TriggerRun))
}

func TestOrdinalPanicsOutsideEnumeration(t *testing.T) {
	invalid := control.LocomotionState(control.LocomotionStateCount)
	assert.False(t, invalid.Valid())
	assert.Panics(t, func() {
		invalid.Ordinal()
	})
}
