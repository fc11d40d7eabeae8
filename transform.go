package signal

import "github.com/go-gl/mathgl/mgl32"

// Transform is the position/rotation/scale component and its cached
// local/world matrices (§3, C3). dirty==false implies the matrices are
// consistent with position/rotation/scale; every mutator in this file
// sets dirty=true and leaves the recompute to TransformRefreshSystem.
type Transform struct {
	Position Vec3
	Rotation Quat
	Scale    Vec3

	Parent EntityID // InvalidEntityID for a root transform

	dirty       bool
	localMatrix Mat4
	worldMatrix Mat4
}

// NewTransform returns a Transform at the origin with identity rotation
// and unit scale, matrices already valid.
func NewTransform() Transform {
	t := Transform{
		Position: ZeroVec3(),
		Rotation: IdentityQuat(),
		Scale:    Vec3{1, 1, 1},
	}
	t.refresh(mat4Ident())
	t.dirty = false
	return t
}

// SetPosition mutates Position and marks the transform dirty.
func (t *Transform) SetPosition(p Vec3) {
	t.Position = p
	t.dirty = true
}

// SetRotation mutates Rotation and marks the transform dirty.
func (t *Transform) SetRotation(q Quat) {
	t.Rotation = q
	t.dirty = true
}

// SetScale mutates Scale and marks the transform dirty.
func (t *Transform) SetScale(s Vec3) {
	t.Scale = s
	t.dirty = true
}

// WorldMatrix returns the last-refreshed world matrix. Callers that need
// a matrix consistent with the latest mutation must run after the
// Transform-refresh pass within the tick (§4.3).
func (t *Transform) WorldMatrix() Mat4 {
	return t.worldMatrix
}

// LocalMatrix returns the last-refreshed local matrix.
func (t *Transform) LocalMatrix() Mat4 {
	return t.localMatrix
}

// Dirty reports whether this transform has pending matrix recomputation.
func (t *Transform) Dirty() bool {
	return t.dirty
}

func (t *Transform) refresh(parentWorld Mat4) {
	t.localMatrix = ComposeTRS(t.Position, t.Rotation, t.Scale)
	t.worldMatrix = parentWorld.Mul4(t.localMatrix)
}

// TransformRefreshSystem recomputes local_matrix/world_matrix for every
// transform, dirty or not, and clears the flag (§4.3). It must run after Physics
// and before anything reading world_matrix (the renderer, Camera) within
// the same tick, per the declared scheduler order (§4.8).
//
// Dirty propagation: a child's world_matrix depends on its parent's, so
// children are always re-derived once their parent has been refreshed,
// whether or not the child itself was marked dirty — this is the
// "children inherit dirty propagation" rule in §4.3. Parents are
// resolved to a bounded depth to avoid an unbounded walk on a cyclic
// Parent chain, which AddComponents never constructs but a misbehaving
// external scene loader writing Transform.Parent could.
func TransformRefreshSystem(w *World) {
	const maxDepth = 64

	var resolve func(slot uint32, depth int) Mat4
	resolve = func(slot uint32, depth int) Mat4 {
		tr := w.transforms.get(slot)
		if tr == nil {
			return mat4Ident()
		}
		parentWorld := mat4Ident()
		if tr.Parent != InvalidEntityID && depth < maxDepth {
			if w.resolve(tr.Parent) == nil {
				tr.Parent = InvalidEntityID
			} else {
				parentWorld = resolve(tr.Parent.slot(), depth+1)
			}
		}
		tr.refresh(parentWorld)
		tr.dirty = false
		return tr.worldMatrix
	}

	w.ForEachSlot(ComponentTransform, func(slot uint32, id EntityID) {
		resolve(slot, 0)
	})
}

func mat4Ident() Mat4 {
	return mgl32.Ident4()
}
