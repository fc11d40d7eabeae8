package signal

// Camera is a minimal, schedule-compatible shape for the CAMERA
// component bit (§3). The renderer that would actually consume a camera
// matrix is out of scope (§1); this component exists so the scheduler's
// declared Camera slot (§4.8) has something concrete to run, and so
// FollowTarget resolution exercises the cyclic-entity-reference design
// note in §9.
type Camera struct {
	FollowTarget EntityID // InvalidEntityID to use Position/LookAt as-is
	FOVDegrees   float32
	NearPlane    float32
	FarPlane     float32

	Position Vec3
	LookAt   Vec3
	Up       Vec3
}

// ViewMatrix returns the camera's look-at view matrix.
func (c *Camera) ViewMatrix() Mat4 {
	up := c.Up
	if up.LenSqr() == 0 {
		up = Vec3{0, 1, 0}
	}
	return LookAtMatrix(c.Position, c.LookAt, up)
}

// ProjectionMatrix returns the camera's perspective projection matrix for
// the given viewport aspect ratio.
func (c *Camera) ProjectionMatrix(aspect float32) Mat4 {
	near, far := c.NearPlane, c.FarPlane
	if near <= 0 {
		near = 0.1
	}
	if far <= near {
		far = near + 1000
	}
	fov := c.FOVDegrees
	if fov <= 0 {
		fov = 60
	}
	return PerspectiveMatrix(degToRad(fov), aspect, near, far)
}

func degToRad(deg float32) float32 {
	const piOver180 = 3.14159265 / 180
	return deg * piOver180
}

// CameraSystem implements §4.12: when FollowTarget names a live entity
// with a Transform, the camera moves its LookAt point to that entity's
// Transform.Position and moves its own Position by the same amount, keeping
// the prior Position-minus-LookAt offset; an invalid target
// (destroyed or never set) is handled locally by falling back to the
// camera's last fixed Position, per the §9 cyclic-reference design note.
func CameraSystem(w *World) {
	w.ForEachSlot(ComponentCamera, func(slot uint32, id EntityID) {
		cam := w.cameras.get(slot)
		if cam == nil || cam.FollowTarget == InvalidEntityID {
			return
		}
		targetTransform := w.Transform(cam.FollowTarget)
		if targetTransform == nil {
			// ErrInvalidEntity case: fall back to fixed position, don't
			// keep retrying a dead handle every tick.
			cam.FollowTarget = InvalidEntityID
			return
		}
		offset := cam.Position.Sub(cam.LookAt)
		cam.LookAt = targetTransform.Position
		cam.Position = targetTransform.Position.Add(offset)
	})
}
