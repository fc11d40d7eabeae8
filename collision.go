package signal

// Collider is the broad-phase-only collision component (§3, §4.13): an
// axis-aligned bounding box half-extent around the owning entity's
// Transform position, and whether overlaps against it should be treated
// as a trigger (recorded, never resolved) rather than a physical contact.
type Collider struct {
	HalfExtents Vec3
	Trigger     bool
}

// ContactEvent records one broad-phase AABB overlap between two entities
// for this tick. CollisionSystem never resolves contacts (no impulse
// response, no penetration correction) — it only detects and reports
// them (§4.13); narrow-phase and response are out of scope (§1
// Non-goals).
type ContactEvent struct {
	A, B EntityID
}

// CollisionSystem implements §4.13: O(n^2) broad-phase AABB overlap over
// every entity with both ComponentCollision and ComponentTransform,
// appending a ContactEvent for each overlapping pair found. The n^2 scan
// is deliberate — a spatial partition is listed as a Non-goal, and the
// entity cap (MaxEntities) bounds the worst case.
func CollisionSystem(w *World) []ContactEvent {
	required := ComponentCollision | ComponentTransform
	var ids []EntityID
	var boxes []aabb

	w.ForEachSlot(required, func(slot uint32, id EntityID) {
		col := w.colliders.get(slot)
		tr := w.transforms.get(slot)
		if col == nil || tr == nil {
			return
		}
		ids = append(ids, id)
		boxes = append(boxes, aabb{
			min: tr.Position.Sub(col.HalfExtents),
			max: tr.Position.Add(col.HalfExtents),
		})
	})

	var contacts []ContactEvent
	for i := 0; i < len(ids); i++ {
		for j := i + 1; j < len(ids); j++ {
			if boxes[i].overlaps(boxes[j]) {
				contacts = append(contacts, ContactEvent{A: ids[i], B: ids[j]})
			}
		}
	}
	return contacts
}

type aabb struct {
	min, max Vec3
}

func (a aabb) overlaps(b aabb) bool {
	return a.min[0] <= b.max[0] && a.max[0] >= b.min[0] &&
		a.min[1] <= b.max[1] && a.max[1] >= b.min[1] &&
		a.min[2] <= b.max[2] && a.max[2] >= b.min[2]
}
