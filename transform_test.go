package signal

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransformRefreshSystem_ClearsDirtyAndComputesWorldMatrix(t *testing.T) {
	w := NewWorld()
	id, err := w.CreateEntity()
	require.NoError(t, err)
	require.NoError(t, w.AddComponents(id, ComponentTransform))

	tr := w.Transform(id)
	tr.SetPosition(Vec3{1, 2, 3})
	assert.True(t, tr.Dirty())

	TransformRefreshSystem(w)

	assert.False(t, tr.Dirty())
	// AddComponents seeds a fresh Transform via NewTransform (identity
	// rotation, unit scale); SetPosition only changed Position.
	expected := ComposeTRS(Vec3{1, 2, 3}, IdentityQuat(), Vec3{1, 1, 1})
	assert.Equal(t, expected, tr.WorldMatrix())
}

func TestTransformRefreshSystem_ParentChildPropagation(t *testing.T) {
	w := NewWorld()
	parent, err := w.CreateEntity()
	require.NoError(t, err)
	require.NoError(t, w.AddComponents(parent, ComponentTransform))
	w.Transform(parent).SetScale(Vec3{1, 1, 1})
	w.Transform(parent).SetPosition(Vec3{10, 0, 0})

	child, err := w.CreateEntity()
	require.NoError(t, err)
	require.NoError(t, w.AddComponents(child, ComponentTransform))
	childTr := w.Transform(child)
	childTr.SetScale(Vec3{1, 1, 1})
	childTr.SetPosition(Vec3{1, 0, 0})
	childTr.Parent = parent

	TransformRefreshSystem(w)

	childWorld := childTr.WorldMatrix()
	gotPos := childWorld.Mul4x1(Vec3{0, 0, 0}.Vec4(1)).Vec3()
	assert.InDelta(t, 11.0, float64(gotPos.X()), epsilon)
}

func TestTransformRefreshSystem_DanglingParentDetaches(t *testing.T) {
	w := NewWorld()
	parent, err := w.CreateEntity()
	require.NoError(t, err)
	require.NoError(t, w.AddComponents(parent, ComponentTransform))

	child, err := w.CreateEntity()
	require.NoError(t, err)
	require.NoError(t, w.AddComponents(child, ComponentTransform))
	childTr := w.Transform(child)
	childTr.SetScale(Vec3{1, 1, 1})
	childTr.Parent = parent

	w.DestroyEntity(parent)
	TransformRefreshSystem(w)

	assert.Equal(t, InvalidEntityID, childTr.Parent)
}
