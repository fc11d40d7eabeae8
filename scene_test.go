package signal

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuilder_ChainsComponentAttachment(t *testing.T) {
	w := NewWorld()
	id, err := signalBuild(w)
	require.NoError(t, err)

	assert.True(t, w.ComponentMask(id).Has(ComponentTransform|ComponentPhysics|ComponentThrusterSystem|ComponentRenderable))
	assert.Equal(t, Vec3{1, 2, 3}, w.Transform(id).Position)
	assert.Equal(t, float32(80), w.Physics(id).Mass)
	assert.True(t, w.ThrusterSystem(id).Enabled)
}

func signalBuild(w *World) (EntityID, error) {
	return NewBuilder(w).
		WithTransform(Vec3{1, 2, 3}, IdentityQuat()).
		WithPhysics(80, Vec3{10, 10, 10}, true).
		WithThrusters(Vec3{1, 1, 1}, Vec3{1, 1, 1}, 0.1).
		WithRenderable(uuid.New(), uuid.New()).
		Build()
}

func TestBuilder_PropagatesWorldFullError(t *testing.T) {
	w := NewWorld()
	for i := 0; i < MaxEntities; i++ {
		_, err := w.CreateEntity()
		require.NoError(t, err)
	}

	_, err := NewBuilder(w).WithTransform(ZeroVec3(), IdentityQuat()).Build()
	assert.ErrorIs(t, err, ErrWorldFull)
}
