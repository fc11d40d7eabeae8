package signal

// Physics is the 6-DOF rigid body component (§3, C7). ForceAccumulator
// and TorqueAccumulator are per-tick scratch storage: contributing
// systems (ThrusterSystem) deposit into them during a tick, and
// PhysicsSystem consumes and zeroes them at the very end of its own
// update for that entity — never at the start. Clearing early is the
// regression this engine is built to never reproduce (§4.7, §9 Sprint-21
// bug, §8 property 3).
type Physics struct {
	Mass             float32 // > 0; otherwise treated as kinematic
	MomentOfInertia  Vec3    // each axis > 0 when Has6DOF; otherwise a 6-DOF body is treated as kinematic

	Velocity        Vec3
	AngularVelocity Vec3

	ForceAccumulator  Vec3
	TorqueAccumulator Vec3

	LinearDrag  float32 // >= 0
	AngularDrag float32 // >= 0

	Kinematic bool
	Has6DOF   bool

	Environment Environment

	MaxSpeed        float32 // <= 0 means unclamped
	MaxAngularSpeed float32 // <= 0 means unclamped
}

// isIntegrable reports whether this body should be integrated this tick:
// it must not be flagged Kinematic and its mass must be strictly positive
// (§4.7 edge case). Moment of inertia is only checked for Has6DOF bodies,
// where every axis must be strictly positive; a body without 6-DOF is
// integrated linearly whatever its MomentOfInertia holds.
func (p *Physics) isIntegrable() bool {
	if p.Kinematic || p.Mass <= 0 {
		return false
	}
	if p.Has6DOF {
		if p.MomentOfInertia[0] <= 0 || p.MomentOfInertia[1] <= 0 || p.MomentOfInertia[2] <= 0 {
			return false
		}
	}
	return true
}

// PhysicsSystem implements §4.7 for every entity with ComponentPhysics:
// semi-implicit Euler linear integration, optional 6-DOF angular
// integration via full axis-angle quaternion update (§9 open question 2),
// linear drag model (§9 open question 1: linear, clamped so drag*dt never
// exceeds 1), velocity clamping, NaN/Inf detection, and the critical
// post-integration accumulator reset.
func PhysicsSystem(w *World, dt float32, logger Logger) {
	if logger == nil {
		logger = NewNopLogger()
	}
	w.ForEachSlot(ComponentPhysics, func(slot uint32, id EntityID) {
		phys := w.physics.get(slot)
		if phys == nil {
			return
		}

		if hasNaNOrInf(phys.ForceAccumulator) || hasNaNOrInf(phys.TorqueAccumulator) {
			logger.Warnf("physics: NaN/Inf accumulator on entity %d, resetting and skipping integration", id)
			phys.ForceAccumulator = ZeroVec3()
			phys.TorqueAccumulator = ZeroVec3()
			return
		}

		if !phys.isIntegrable() {
			// Kinematic/degenerate bodies still clear their accumulators
			// (§4.7 step 9 applies regardless of whether integration ran).
			phys.ForceAccumulator = ZeroVec3()
			phys.TorqueAccumulator = ZeroVec3()
			return
		}

		// 1-4: linear integration (semi-implicit Euler).
		acceleration := phys.ForceAccumulator.Mul(1 / phys.Mass)
		phys.Velocity = phys.Velocity.Add(acceleration.Mul(dt))
		phys.Velocity = phys.Velocity.Mul(linearDragFactor(phys.LinearDrag, dt))
		if phys.MaxSpeed > 0 {
			phys.Velocity = clampVecLength(phys.Velocity, phys.MaxSpeed)
		}

		var tr *Transform
		if w.ComponentMask(id).HasAny(ComponentTransform) {
			tr = w.transforms.get(slot)
		}
		if tr != nil {
			tr.Position = tr.Position.Add(phys.Velocity.Mul(dt))
			tr.dirty = true
		}

		// 5-8: angular integration, only for 6-DOF bodies.
		if phys.Has6DOF {
			angularAccel := Vec3{
				phys.TorqueAccumulator[0] / phys.MomentOfInertia[0],
				phys.TorqueAccumulator[1] / phys.MomentOfInertia[1],
				phys.TorqueAccumulator[2] / phys.MomentOfInertia[2],
			}
			phys.AngularVelocity = phys.AngularVelocity.Add(angularAccel.Mul(dt))
			phys.AngularVelocity = phys.AngularVelocity.Mul(linearDragFactor(phys.AngularDrag, dt))
			if phys.MaxAngularSpeed > 0 {
				phys.AngularVelocity = clampVecLength(phys.AngularVelocity, phys.MaxAngularSpeed)
			}

			if tr != nil {
				speed := phys.AngularVelocity.Len()
				if speed > 0 {
					dq := QuatFromAxisAngle(phys.AngularVelocity, speed*dt)
					tr.Rotation = dq.Mul(tr.Rotation).Normalize()
					tr.dirty = true
				}
			}
		}

		// 9: accumulators are cleared only now, after integration.
		phys.ForceAccumulator = ZeroVec3()
		phys.TorqueAccumulator = ZeroVec3()
	})
}

// linearDragFactor implements the linear drag model chosen for open
// question 1: velocity *= (1 - drag*dt), with drag*dt clamped to [0,1]
// so large dt/drag combinations can never flip the velocity's sign.
func linearDragFactor(drag, dt float32) float32 {
	factor := drag * dt
	if factor < 0 {
		factor = 0
	}
	if factor > 1 {
		factor = 1
	}
	return 1 - factor
}

func clampVecLength(v Vec3, max float32) Vec3 {
	length := v.Len()
	if length <= max || length == 0 {
		return v
	}
	return v.Mul(max / length)
}

func hasNaNOrInf(v Vec3) bool {
	return !finiteVec3(v)
}
