package signal

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateEntity_WorldFullBoundary(t *testing.T) {
	w := NewWorld()
	for i := 0; i < MaxEntities; i++ {
		_, err := w.CreateEntity()
		require.NoError(t, err)
	}
	_, err := w.CreateEntity()
	assert.ErrorIs(t, err, ErrWorldFull)
	assert.Equal(t, MaxEntities, w.EntityCount())
}

func TestDestroyEntity_Idempotent(t *testing.T) {
	w := NewWorld()
	id, err := w.CreateEntity()
	require.NoError(t, err)
	require.NoError(t, w.AddComponents(id, ComponentTransform))

	w.DestroyEntity(id)
	assert.False(t, w.EntityAlive(id))
	assert.Nil(t, w.Transform(id))

	// A second destroy on the same stale handle must not panic or
	// double-decrement the live count.
	w.DestroyEntity(id)
	assert.Equal(t, 0, w.EntityCount())
}

func TestEntityID_GenerationRejectsStaleHandle(t *testing.T) {
	w := NewWorld()
	id, err := w.CreateEntity()
	require.NoError(t, err)
	w.DestroyEntity(id)

	id2, err := w.CreateEntity()
	require.NoError(t, err)
	assert.Equal(t, id.slot(), id2.slot())
	assert.NotEqual(t, id, id2, "reused slot must mint a new generation")
	assert.False(t, w.EntityAlive(id))
	assert.True(t, w.EntityAlive(id2))
}

func TestAddComponents_AlreadyPresentIsNoOp(t *testing.T) {
	w := NewWorld()
	id, err := w.CreateEntity()
	require.NoError(t, err)

	require.NoError(t, w.AddComponents(id, ComponentTransform))
	tr := w.Transform(id)
	require.NotNil(t, tr)
	tr.SetPosition(Vec3{1, 2, 3})

	// Re-adding the same bit must not reset the existing component data.
	require.NoError(t, w.AddComponents(id, ComponentTransform))
	assert.Equal(t, Vec3{1, 2, 3}, w.Transform(id).Position)
}

func TestAddComponents_InvalidEntity(t *testing.T) {
	w := NewWorld()
	err := w.AddComponents(InvalidEntityID, ComponentTransform)
	assert.True(t, errors.Is(err, ErrInvalidEntity))
}

func TestValidComponentsIncludesThrusterAndControl(t *testing.T) {
	// Regression guard for the §9 open-question-4 bug: ThrusterSystem and
	// ControlAuthority were once excluded from the valid-components mask,
	// silently discarding AddComponents calls that named them.
	assert.True(t, ValidComponents.HasAny(ComponentThrusterSystem))
	assert.True(t, ValidComponents.HasAny(ComponentControlAuthority))
}

func TestInvariant1_HoldsUnderChurn(t *testing.T) {
	w := NewWorld()
	all := ComponentTransform | ComponentPhysics | ComponentControlAuthority | ComponentThrusterSystem

	var ids []EntityID
	for i := 0; i < 100; i++ {
		id, err := w.CreateEntity()
		require.NoError(t, err)
		ids = append(ids, id)

		subset := ComponentBits(i) & all
		require.NoError(t, w.AddComponents(id, subset))
		require.NoError(t, w.CheckInvariants())
	}

	for i, id := range ids {
		removeSubset := ComponentBits(i*7) & all
		require.NoError(t, w.RemoveComponents(id, removeSubset))
		require.NoError(t, w.CheckInvariants())
	}

	for i, id := range ids {
		if i%2 == 0 {
			w.DestroyEntity(id)
		}
	}
	require.NoError(t, w.CheckInvariants())
}

func TestDestroyEntity_ReleasesComponentPools(t *testing.T) {
	w := NewWorld()
	id, err := w.CreateEntity()
	require.NoError(t, err)
	require.NoError(t, w.AddComponents(id, ComponentTransform|ComponentPhysics))

	w.DestroyEntity(id)
	assert.False(t, w.transforms.occupied[id.slot()])
	assert.False(t, w.physics.occupied[id.slot()])
}
