package signal

// AIGoal is the minimal upstream-AI component §4.5 step 1 refers to: a
// world-space point the owning entity should face/approach, plus a
// Valid flag so ControlSystem can distinguish "no goal yet" from "goal
// at the origin".
type AIGoal struct {
	Goal  Vec3
	Valid bool
}

// AISystem is a stub (§4.12): it never mutates Goal on its own. A real
// pathing/behaviour-tree implementation sits upstream of this engine and
// writes AIGoal.Goal directly; this system exists only so the scheduler
// has a named slot to run at its declared Hz, and so AIGoal participates
// in the same mask/pool lifecycle as every other component.
func AISystem(w *World) {
	w.ForEachSlot(ComponentAI, func(slot uint32, id EntityID) {
		_ = slot
		_ = id
	})
}
