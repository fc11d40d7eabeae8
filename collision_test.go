package signal

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newColliderEntity(t *testing.T, w *World, pos Vec3, halfExtents Vec3) EntityID {
	t.Helper()
	id, err := w.CreateEntity()
	require.NoError(t, err)
	require.NoError(t, w.AddComponents(id, ComponentCollision|ComponentTransform))
	w.Transform(id).SetPosition(pos)
	w.Collider(id).HalfExtents = halfExtents
	return id
}

func TestCollisionSystem_DetectsOverlap(t *testing.T) {
	w := NewWorld()
	a := newColliderEntity(t, w, Vec3{0, 0, 0}, Vec3{1, 1, 1})
	b := newColliderEntity(t, w, Vec3{1, 0, 0}, Vec3{1, 1, 1})

	contacts := CollisionSystem(w)
	require.Len(t, contacts, 1)
	assert.Equal(t, a, contacts[0].A)
	assert.Equal(t, b, contacts[0].B)
}

func TestCollisionSystem_NoOverlapProducesNoContacts(t *testing.T) {
	w := NewWorld()
	newColliderEntity(t, w, Vec3{0, 0, 0}, Vec3{1, 1, 1})
	newColliderEntity(t, w, Vec3{100, 0, 0}, Vec3{1, 1, 1})

	assert.Empty(t, CollisionSystem(w))
}

func TestCollisionSystem_NeverMutatesEntities(t *testing.T) {
	w := NewWorld()
	a := newColliderEntity(t, w, Vec3{0, 0, 0}, Vec3{1, 1, 1})
	b := newColliderEntity(t, w, Vec3{0.5, 0, 0}, Vec3{1, 1, 1})

	before := w.Transform(a).Position
	CollisionSystem(w)
	assert.Equal(t, before, w.Transform(a).Position)
	assert.True(t, w.EntityAlive(b))
}
