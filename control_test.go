package signal

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestControlAuthority_ModeTransitions(t *testing.T) {
	ca := &ControlAuthority{}
	assert.Equal(t, ControlManual, ca.Mode())

	require.NoError(t, ca.SetMode(ControlAssisted))
	assert.Equal(t, ControlAssisted, ca.Mode())

	require.NoError(t, ca.SetMode(ControlAutopilot))
	assert.Equal(t, ControlAutopilot, ca.Mode())

	require.NoError(t, ca.SetMode(ControlManual))
	assert.Equal(t, ControlManual, ca.Mode())
}

func TestControlSystem_PlayerInputMapsToCommands(t *testing.T) {
	w := NewWorld()
	controller, err := w.CreateEntity()
	require.NoError(t, err)

	id, err := w.CreateEntity()
	require.NoError(t, err)
	require.NoError(t, w.AddComponents(id, ComponentControlAuthority))
	ca := w.ControlAuthority(id)
	ca.ControlledBy = controller

	in := InputState{Thrust: 1}
	ControlSystem(w, &in)

	assert.InDelta(t, 1.0, float64(ca.LinearCmd.Z()), 1e-4)
}

func TestControlSystem_NoControllerProducesZeroCommand(t *testing.T) {
	w := NewWorld()
	id, err := w.CreateEntity()
	require.NoError(t, err)
	require.NoError(t, w.AddComponents(id, ComponentControlAuthority))

	in := InputState{Thrust: 1}
	ControlSystem(w, &in)

	assert.Equal(t, ZeroVec3(), w.ControlAuthority(id).LinearCmd)
}

func TestControlSystem_StabilityAssistDampsOffCenterInput(t *testing.T) {
	w := NewWorld()
	controller, err := w.CreateEntity()
	require.NoError(t, err)
	id, err := w.CreateEntity()
	require.NoError(t, err)
	require.NoError(t, w.AddComponents(id, ComponentControlAuthority))
	ca := w.ControlAuthority(id)
	ca.ControlledBy = controller
	ca.StabilityAssist = 1.0
	require.NoError(t, ca.SetMode(ControlAssisted))

	in := InputState{Pitch: 0.5}
	ControlSystem(w, &in)

	assert.Less(t, float64(absFloat32(ca.AngularCmd.X())), 0.5)
}

func TestControlSystem_BrakeZeroesLinearCommand(t *testing.T) {
	w := NewWorld()
	controller, err := w.CreateEntity()
	require.NoError(t, err)
	id, err := w.CreateEntity()
	require.NoError(t, err)
	require.NoError(t, w.AddComponents(id, ComponentControlAuthority))
	ca := w.ControlAuthority(id)
	ca.ControlledBy = controller
	ca.Brake = true

	in := InputState{Thrust: 1}
	ControlSystem(w, &in)

	assert.Equal(t, ZeroVec3(), ca.LinearCmd)
}

func TestControlSystem_BoostMultipliesForwardThrust(t *testing.T) {
	w := NewWorld()
	controller, err := w.CreateEntity()
	require.NoError(t, err)
	id, err := w.CreateEntity()
	require.NoError(t, err)
	require.NoError(t, w.AddComponents(id, ComponentControlAuthority))
	ca := w.ControlAuthority(id)
	ca.ControlledBy = controller
	ca.Boost = 1.0

	in := InputState{Thrust: 0.5}
	ControlSystem(w, &in)

	assert.InDelta(t, 1.0, float64(ca.LinearCmd.Z()), 1e-4)
}

func TestControlSystem_AutopilotUsesAIGoalNotInput(t *testing.T) {
	w := NewWorld()
	controller, err := w.CreateEntity()
	require.NoError(t, err)
	id, err := w.CreateEntity()
	require.NoError(t, err)
	require.NoError(t, w.AddComponents(id, ComponentControlAuthority|ComponentAI|ComponentTransform))
	ca := w.ControlAuthority(id)
	ca.ControlledBy = controller
	require.NoError(t, ca.SetMode(ControlAutopilot))

	goal := w.AIGoal(id)
	goal.Valid = true
	goal.Goal = Vec3{10, 0, 0}

	in := InputState{Thrust: 1}
	ControlSystem(w, &in)

	// Autopilot never consults InputState for its linear command.
	assert.Equal(t, float32(0), ca.LinearCmd.Z())
}
