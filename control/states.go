package control

import "fmt"

// LocomotionState is one of the avatar's discrete locomotion states. The
// declaration order is canonical: a state's ordinal doubles as its animation
// index, so reordering the constants changes which clips play.
type LocomotionState uint8

const (
	Falling LocomotionState = iota
	FallingToLanding
	Idle
	LeftTurnFeet
	RightTurnFeet
	Running
	RunningJump
	SittingIdle
	SprintToRoll
	Standing
	Jump
	StandingPose
	StartWalking
	Walking

	locomotionStateCount
)

// LocomotionStateCount is the size of the closed state enumeration.
const LocomotionStateCount = int(locomotionStateCount)

var locomotionStateNames = [locomotionStateCount]string{
	Falling:          "Falling",
	FallingToLanding: "FallingToLanding",
	Idle:             "Idle",
	LeftTurnFeet:     "LeftTurnFeet",
	RightTurnFeet:    "RightTurnFeet",
	Running:          "Running",
	RunningJump:      "RunningJump",
	SittingIdle:      "SittingIdle",
	SprintToRoll:     "SprintToRoll",
	Standing:         "Standing",
	Jump:             "Jump",
	StandingPose:     "StandingPose",
	StartWalking:     "StartWalking",
	Walking:          "Walking",
}

// Valid reports whether s is a member of the canonical enumeration.
func (s LocomotionState) Valid() bool {
	return s < locomotionStateCount
}

// Ordinal returns the state's canonical index in [0, 13]. A value outside
// the enumeration means the closed-enum guarantee is broken somewhere, which
// is not a recoverable condition.
func (s LocomotionState) Ordinal() int {
	if !s.Valid() {
		panic(fmt.Sprintf("invalid locomotion state %d", uint8(s)))
	}
	return int(s)
}

func (s LocomotionState) String() string {
	if !s.Valid() {
		return fmt.Sprintf("LocomotionState(%d)", uint8(s))
	}
	return locomotionStateNames[s]
}

// Trigger is an input edge that drives a locomotion transition.
type Trigger uint8

const (
	// TriggerJump fires on a jump-key press edge.
	TriggerJump Trigger = iota
	// TriggerRun fires on a run-key press edge.
	TriggerRun
)

// transitions is the total transition table, keyed by (current state,
// trigger). Every pair is defined, making the machine auditable: currently
// every state maps to Jump or Running respectively, preserving the
// last-writer-wins behavior, and self-transitions are legal no-ops for
// change detection. Nothing transitions back to Idle; no return-to-idle
// policy has been specified.
var transitions = [locomotionStateCount]struct{ OnJump, OnRun LocomotionState }{
	Falling:          {Jump, Running},
	FallingToLanding: {Jump, Running},
	Idle:             {Jump, Running},
	LeftTurnFeet:     {Jump, Running},
	RightTurnFeet:    {Jump, Running},
	Running:          {Jump, Running},
	RunningJump:      {Jump, Running},
	SittingIdle:      {Jump, Running},
	SprintToRoll:     {Jump, Running},
	Standing:         {Jump, Running},
	Jump:             {Jump, Running},
	StandingPose:     {Jump, Running},
	StartWalking:     {Jump, Running},
	Walking:          {Jump, Running},
}

// Next returns the state reached from s by the given trigger.
func (s LocomotionState) Next(trigger Trigger) LocomotionState {
	row := transitions[s.Ordinal()]
	switch trigger {
	case TriggerJump:
		return row.OnJump
	case TriggerRun:
		return row.OnRun
	default:
		panic(fmt.Sprintf("unknown locomotion trigger %d", uint8(trigger)))
	}
}
