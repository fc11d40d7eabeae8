package signal

// pool is the dense, fixed-arena component store described in §3: a
// contiguous array of MaxEntities slots plus a parallel occupied bitset.
// Slot i of every pool corresponds to entity slot i of the World's
// entity table, giving O(1) add/remove without hashmap indirection and
// cache-linear iteration for systems that walk a required mask.
type pool[T any] struct {
	data     [MaxEntities]T
	occupied [MaxEntities]bool
}

// add zero-initialises slot and marks it occupied, overwriting any data
// already there. World.AddComponents only invokes add for bits not already
// present, which is what makes re-adding a component a no-op.
func (p *pool[T]) add(slot uint32) {
	var zero T
	p.data[slot] = zero
	p.occupied[slot] = true
}

// remove clears slot's data and its occupied bit. Its callers
// (World.RemoveComponents, World.DestroyEntity) clear the corresponding
// World mask bit right after it, within the same call, so no mask bit
// outlives its component data (§4.2).
func (p *pool[T]) remove(slot uint32) {
	var zero T
	p.data[slot] = zero
	p.occupied[slot] = false
}

// get returns a mutable pointer into slot's data, or nil if unoccupied.
func (p *pool[T]) get(slot uint32) *T {
	if !p.occupied[slot] {
		return nil
	}
	return &p.data[slot]
}

type (
	TransformPool        = pool[Transform]
	PhysicsPool          = pool[Physics]
	CameraPool           = pool[Camera]
	RenderablePool       = pool[Renderable]
	PlayerPool           = pool[Player]
	ControlAuthorityPool = pool[ControlAuthority]
	ThrusterPool         = pool[ThrusterSystem]
	AIPool               = pool[AIGoal]
	ColliderPool         = pool[Collider]
	LightPool            = pool[Light]
)

// Transform returns a mutable pointer to id's Transform component, or
// nil if the entity has none (§4.2 entity_get_<kind> contract).
func (w *World) Transform(id EntityID) *Transform {
	rec := w.resolve(id)
	if rec == nil || !rec.mask.HasAny(ComponentTransform) {
		return nil
	}
	return w.transforms.get(id.slot())
}

// Physics returns a mutable pointer to id's Physics component, or nil.
func (w *World) Physics(id EntityID) *Physics {
	rec := w.resolve(id)
	if rec == nil || !rec.mask.HasAny(ComponentPhysics) {
		return nil
	}
	return w.physics.get(id.slot())
}

// Camera returns a mutable pointer to id's Camera component, or nil.
func (w *World) Camera(id EntityID) *Camera {
	rec := w.resolve(id)
	if rec == nil || !rec.mask.HasAny(ComponentCamera) {
		return nil
	}
	return w.cameras.get(id.slot())
}

// Renderable returns a mutable pointer to id's Renderable component, or nil.
func (w *World) Renderable(id EntityID) *Renderable {
	rec := w.resolve(id)
	if rec == nil || !rec.mask.HasAny(ComponentRenderable) {
		return nil
	}
	return w.renderable.get(id.slot())
}

// Player returns a mutable pointer to id's Player component, or nil.
func (w *World) Player(id EntityID) *Player {
	rec := w.resolve(id)
	if rec == nil || !rec.mask.HasAny(ComponentPlayer) {
		return nil
	}
	return w.player.get(id.slot())
}

// ControlAuthority returns a mutable pointer to id's ControlAuthority
// component, or nil.
func (w *World) ControlAuthority(id EntityID) *ControlAuthority {
	rec := w.resolve(id)
	if rec == nil || !rec.mask.HasAny(ComponentControlAuthority) {
		return nil
	}
	return w.control.get(id.slot())
}

// ThrusterSystem returns a mutable pointer to id's ThrusterSystem
// component, or nil.
func (w *World) ThrusterSystem(id EntityID) *ThrusterSystem {
	rec := w.resolve(id)
	if rec == nil || !rec.mask.HasAny(ComponentThrusterSystem) {
		return nil
	}
	return w.thrusters.get(id.slot())
}

// AIGoal returns a mutable pointer to id's AIGoal component, or nil.
func (w *World) AIGoal(id EntityID) *AIGoal {
	rec := w.resolve(id)
	if rec == nil || !rec.mask.HasAny(ComponentAI) {
		return nil
	}
	return w.ai.get(id.slot())
}

// Collider returns a mutable pointer to id's Collider component, or nil.
func (w *World) Collider(id EntityID) *Collider {
	rec := w.resolve(id)
	if rec == nil || !rec.mask.HasAny(ComponentCollision) {
		return nil
	}
	return w.colliders.get(id.slot())
}

// Light returns a mutable pointer to id's Light component, or nil.
func (w *World) Light(id EntityID) *Light {
	rec := w.resolve(id)
	if rec == nil || !rec.mask.HasAny(ComponentLight) {
		return nil
	}
	return w.lights.get(id.slot())
}

// ForEachSlot invokes fn(slot, id) in slot-ascending order for every live
// entity whose mask has every bit of required (§4.2 iteration-order
// invariant, §5 ordering guarantee). fn receives the raw slot for direct
// pool access and the entity's current EntityID.
func (w *World) ForEachSlot(required ComponentBits, fn func(slot uint32, id EntityID)) {
	for slot := uint32(0); slot < MaxEntities; slot++ {
		rec := &w.entities[slot]
		if !rec.alive || !rec.mask.Has(required) {
			continue
		}
		fn(slot, makeEntityID(slot, rec.generation))
	}
}

// entityIDAt reconstructs the current EntityID of a live slot.
func (w *World) entityIDAt(slot uint32) EntityID {
	rec := &w.entities[slot]
	if !rec.alive {
		return InvalidEntityID
	}
	return makeEntityID(slot, rec.generation)
}
