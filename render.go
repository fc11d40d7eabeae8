package signal

import "github.com/google/uuid"

// Renderable names the GPU-side assets an entity should be drawn with
// (§3, §4.11). The GPU resources themselves (buffers, pipelines,
// bind groups — see the asset/material modules this engine is grounded
// on) are out of scope; this component only carries the handles a
// renderer would resolve them from.
type Renderable struct {
	MeshHandle     uuid.UUID
	MaterialHandle uuid.UUID
	Visible        bool
	CastsShadow    bool
}

// Player tags the single entity a local human is driving this session
// (§3). It carries no behaviour of its own; ControlAuthority.ControlledBy
// is what systems actually consult.
type Player struct {
	Name string
}

// Light is a minimal point/directional light component (§3). Like
// Renderable, the shading model that consumes it is out of scope; this
// exists so scenes built by Builder can describe a full lighting rig.
type Light struct {
	Color     Vec3
	Intensity float32
	Directional bool
}

// RenderableSnapshot is the read-only, per-frame row a renderer consumes
// for one RENDERABLE&TRANSFORM entity (§6). It is a value type deliberately
// decoupled from World's internal pools: a renderer holds a slice of these
// across a frame boundary without risk of a later World mutation aliasing
// into it.
type RenderableSnapshot struct {
	Entity         EntityID
	WorldMatrix    Mat4
	MeshHandle     uuid.UUID
	MaterialHandle uuid.UUID
	Visible        bool
}

// RenderSnapshot builds the current frame's renderable list (§4.11, §6).
// It must run after TransformRefreshSystem so WorldMatrix is current; it
// performs no mutation of World state.
func (w *World) RenderSnapshot() []RenderableSnapshot {
	var out []RenderableSnapshot
	required := ComponentRenderable | ComponentTransform
	w.ForEachSlot(required, func(slot uint32, id EntityID) {
		r := w.renderable.get(slot)
		tr := w.transforms.get(slot)
		if r == nil || tr == nil {
			return
		}
		out = append(out, RenderableSnapshot{
			Entity:         id,
			WorldMatrix:    tr.WorldMatrix(),
			MeshHandle:     r.MeshHandle,
			MaterialHandle: r.MaterialHandle,
			Visible:        r.Visible,
		})
	})
	return out
}
