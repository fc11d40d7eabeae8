package signal

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCameraSystem_FollowsTarget(t *testing.T) {
	w := NewWorld()
	target, err := w.CreateEntity()
	require.NoError(t, err)
	require.NoError(t, w.AddComponents(target, ComponentTransform))
	w.Transform(target).SetPosition(Vec3{5, 0, 0})

	cam, err := w.CreateEntity()
	require.NoError(t, err)
	require.NoError(t, w.AddComponents(cam, ComponentCamera))
	c := w.Camera(cam)
	c.FollowTarget = target
	c.Position = Vec3{0, 0, 10}
	c.LookAt = Vec3{0, 0, 0}

	CameraSystem(w)

	assert.Equal(t, Vec3{5, 0, 0}, c.LookAt)
	assert.Equal(t, Vec3{5, 0, 10}, c.Position)
}

func TestCameraSystem_InvalidTargetDetaches(t *testing.T) {
	w := NewWorld()
	target, err := w.CreateEntity()
	require.NoError(t, err)

	cam, err := w.CreateEntity()
	require.NoError(t, err)
	require.NoError(t, w.AddComponents(cam, ComponentCamera))
	c := w.Camera(cam)
	c.FollowTarget = target
	c.Position = Vec3{1, 2, 3}

	CameraSystem(w) // target has no Transform: falls back, detaches
	assert.Equal(t, InvalidEntityID, c.FollowTarget)
	assert.Equal(t, Vec3{1, 2, 3}, c.Position)
}
