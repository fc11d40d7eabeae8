package signal

import (
	"context"

	"github.com/looplab/fsm"
)

// ControlMode mirrors the current state of a ControlAuthority's mode FSM
// (§3). It is cached on the component so hot-path reads never need to
// string-compare fsm.FSM.Current().
type ControlMode int

const (
	ControlManual ControlMode = iota
	ControlAssisted
	ControlAutopilot
)

const (
	stateManual    = "manual"
	stateAssisted  = "assisted"
	stateAutopilot = "autopilot"
)

func modeToState(m ControlMode) string {
	switch m {
	case ControlAssisted:
		return stateAssisted
	case ControlAutopilot:
		return stateAutopilot
	default:
		return stateManual
	}
}

func stateToMode(s string) ControlMode {
	switch s {
	case stateAssisted:
		return ControlAssisted
	case stateAutopilot:
		return ControlAutopilot
	default:
		return ControlManual
	}
}

const (
	eventToManual    = "to_manual"
	eventToAssisted  = "to_assisted"
	eventToAutopilot = "to_autopilot"
)

// newModeFSM builds the MANUAL/ASSISTED/AUTOPILOT state machine (§3). Any
// mode may transition to any other mode directly — the flight-assist
// literature this engine is grounded on (the sibling rocketry package's
// motor ignition FSM) uses the same flat any-to-any shape for modes that
// have no forbidden transitions, just validated ones.
func newModeFSM(mode *ControlMode) *fsm.FSM {
	all := []string{stateManual, stateAssisted, stateAutopilot}
	return fsm.NewFSM(
		modeToState(*mode),
		fsm.Events{
			{Name: eventToManual, Src: all, Dst: stateManual},
			{Name: eventToAssisted, Src: all, Dst: stateAssisted},
			{Name: eventToAutopilot, Src: all, Dst: stateAutopilot},
		},
		fsm.Callbacks{
			"enter_state": func(_ context.Context, e *fsm.Event) {
				*mode = stateToMode(e.Dst)
			},
		},
	)
}

// ControlAuthority maps input intent to thrust command (§3, C5). It never
// writes to Physics directly — ThrusterSystem is the only consumer of
// LinearCmd/AngularCmd.
type ControlAuthority struct {
	ControlledBy    EntityID
	Sensitivity     float32
	StabilityAssist float32 // [0,1]: 0 disables assist, 1 is full lock
	Boost           float32 // [0,1]
	Brake           bool

	LinearCmd  Vec3 // local frame, each axis in [-1,1]
	AngularCmd Vec3 // local frame, each axis in [-1,1]

	mode    ControlMode
	modeFSM *fsm.FSM
}

// Mode returns the component's current control mode.
func (c *ControlAuthority) Mode() ControlMode {
	return c.mode
}

// SetMode transitions the control mode via the underlying FSM. It is the
// only supported way to change mode — direct field assignment would
// bypass the validated transition and the cached-field sync in
// newModeFSM's enter_state callback.
func (c *ControlAuthority) SetMode(mode ControlMode) error {
	if c.modeFSM == nil {
		c.mode = ControlManual
		c.modeFSM = newModeFSM(&c.mode)
	}
	var event string
	switch mode {
	case ControlAssisted:
		event = eventToAssisted
	case ControlAutopilot:
		event = eventToAutopilot
	default:
		event = eventToManual
	}
	return c.modeFSM.Event(context.Background(), event)
}

// AutoLevelStrength scales the auto-leveling correction applied in
// AUTOPILOT mode (§4.5 step 4).
const AutoLevelStrength = 2.0

// MaxBoostMultiplier is the ceiling applied to the thrust axis when boost
// is engaged (§4.5 step 5).
const MaxBoostMultiplier = 3.0

// ControlSystem implements §4.5: for every entity with
// ComponentControlAuthority, translate input (or, in AUTOPILOT mode, an
// AIGoal) into LinearCmd/AngularCmd, apply flight-assist or auto-leveling,
// then boost and brake. It never mutates Physics or ThrusterSystem.
func ControlSystem(w *World, input *InputState) {
	w.ForEachSlot(ComponentControlAuthority, func(slot uint32, id EntityID) {
		ca := w.control.get(slot)
		if ca == nil {
			return
		}
		if ca.modeFSM == nil {
			ca.mode = ControlManual
			ca.modeFSM = newModeFSM(&ca.mode)
		}

		var linear, angular Vec3
		if ca.Mode() == ControlAutopilot {
			goal := w.AIGoal(id)
			if goal != nil && goal.Valid {
				angular = autopilotAngularCommand(w, id, goal.Goal)
			}
		} else if ca.ControlledBy != InvalidEntityID && input != nil {
			linear, angular = mapInputToCommand(*input)
		}

		switch ca.Mode() {
		case ControlAssisted:
			linear = applyStabilityAssist(linear, ca.StabilityAssist)
			angular = applyStabilityAssist(angular, ca.StabilityAssist)
		case ControlAutopilot:
			angular = applyAutoLevel(w, id, angular)
		}

		boost := clampFloat32(ca.Boost, 0, 1)
		if boost > 0 {
			boostMul := 1 + boost*(MaxBoostMultiplier-1)
			linear[2] *= boostMul
		}

		if ca.Brake {
			linear = ZeroVec3()
			angular = angular.Mul(1 - ca.StabilityAssist)
		}

		ca.LinearCmd = ClampVec3(linear, -1, 1)
		ca.AngularCmd = ClampVec3(angular, -1, 1)
	})
}

// mapInputToCommand is the default axis mapping from §4.5 step 2:
// thrust→+Z linear, strafe→+X linear, vertical→+Y linear,
// pitch→+X angular, yaw→+Y angular, roll→+Z angular.
func mapInputToCommand(in InputState) (linear, angular Vec3) {
	linear = Vec3{in.Strafe, in.Vertical, in.Thrust}
	angular = Vec3{in.Pitch, in.Yaw, in.Roll}
	return
}

// applyStabilityAssist implements §4.5 step 3: for axes near zero input,
// subtract a fraction stability*(1-|input|) of the command, damping
// residual drift. assist<=0 disables the effect; assist==1 is a full
// lock, never exceeded because assist is clamped to [0,1] here.
func applyStabilityAssist(cmd Vec3, assist float32) Vec3 {
	if assist <= 0 {
		return cmd
	}
	assist = clampFloat32(assist, 0, 1)
	damp := func(v float32) float32 {
		factor := 1 - assist*(1-absFloat32(v))
		if factor < 0 {
			factor = 0
		}
		return v * factor
	}
	return Vec3{damp(cmd[0]), damp(cmd[1]), damp(cmd[2])}
}

// applyAutoLevel implements §4.5 step 4: corrective angular command
// proportional to the angle between the entity's current world-up and
// {0,1,0}, scaled by AutoLevelStrength and added to any goal-derived
// angular command.
func applyAutoLevel(w *World, id EntityID, angular Vec3) Vec3 {
	tr := w.Transform(id)
	if tr == nil {
		return angular
	}
	worldUp := RotateVec3(tr.Rotation, Vec3{0, 1, 0})
	targetUp := Vec3{0, 1, 0}
	// Small-angle correction: cross product direction gives the rotation
	// axis toward alignment, magnitude approximates sin(angle).
	correction := worldUp.Cross(targetUp).Mul(AutoLevelStrength)
	return angular.Add(correction)
}

// autopilotAngularCommand computes a corrective angular command toward
// facing the goal direction, used when AUTOPILOT has no player input
// (§4.5 step 1's "upstream AI component").
func autopilotAngularCommand(w *World, id EntityID, goal Vec3) Vec3 {
	tr := w.Transform(id)
	if tr == nil {
		return ZeroVec3()
	}
	forward := RotateVec3(tr.Rotation, Vec3{0, 0, -1})
	toGoal := goal.Sub(tr.Position)
	if toGoal.LenSqr() == 0 {
		return ZeroVec3()
	}
	toGoal = NormalizeVec3(toGoal)
	return forward.Cross(toGoal)
}

func absFloat32(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}
