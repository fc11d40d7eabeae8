package signal

// Environment selects which ThrusterSystem efficiency applies (§3).
type Environment int

const (
	EnvironmentSpace Environment = iota
	EnvironmentAtmosphere
)

// ThrusterSystem converts ControlAuthority commands into world-space
// forces/torques on a Physics body (§3, C6).
type ThrusterSystem struct {
	MaxLinearForce  Vec3 // component-wise >= 0
	MaxAngularTorque Vec3 // component-wise >= 0

	CurrentLinear  Vec3
	CurrentAngular Vec3

	ResponseTimeSeconds float32 // > 0; <= 0 treated as instant (§4.6)

	AtmosphereEfficiency float32
	VacuumEfficiency     float32

	Enabled bool
}

// ThrusterSystemUpdate implements §4.6 for every entity with both
// ComponentThrusterSystem and ComponentPhysics: first-order response
// toward the commanded target, environment efficiency, rotation into
// world space, and accumulation into the Physics force/torque
// accumulators.
func ThrusterSystemUpdate(w *World, env Environment, dt float32) {
	required := ComponentThrusterSystem | ComponentPhysics
	w.ForEachSlot(required, func(slot uint32, id EntityID) {
		th := w.thrusters.get(slot)
		phys := w.physics.get(slot)
		if th == nil || phys == nil {
			return
		}

		linearCmd := ZeroVec3()
		angularCmd := ZeroVec3()
		if ca := w.control.get(slot); ca != nil {
			linearCmd = ca.LinearCmd
			angularCmd = ca.AngularCmd
		}

		targetLinear := componentMul(ClampVec3(linearCmd, -1, 1), th.MaxLinearForce)
		targetAngular := componentMul(ClampVec3(angularCmd, -1, 1), th.MaxAngularTorque)

		if !th.Enabled {
			th.CurrentLinear = ZeroVec3()
			th.CurrentAngular = ZeroVec3()
		} else {
			alpha := responseAlpha(th.ResponseTimeSeconds, dt)
			th.CurrentLinear = lerpVec3(th.CurrentLinear, targetLinear, alpha)
			th.CurrentAngular = lerpVec3(th.CurrentAngular, targetAngular, alpha)
		}

		efficiency := th.AtmosphereEfficiency
		if env == EnvironmentSpace {
			efficiency = th.VacuumEfficiency
		}

		linear := th.CurrentLinear.Mul(efficiency)
		angular := th.CurrentAngular.Mul(efficiency)

		rotation := IdentityQuat()
		if tr := w.transforms.get(slot); tr != nil {
			rotation = tr.Rotation
		}

		phys.ForceAccumulator = phys.ForceAccumulator.Add(RotateVec3(rotation, linear))
		phys.TorqueAccumulator = phys.TorqueAccumulator.Add(RotateVec3(rotation, angular))
	})
}

// responseAlpha implements the first-order response step of §4.6: a
// response_time_s of zero or less collapses to an instant step
// (current = target), otherwise the blend factor is dt/response_time_s
// capped at 1 so a single tick never overshoots the target.
func responseAlpha(responseTimeSeconds, dt float32) float32 {
	if responseTimeSeconds <= 0 {
		return 1
	}
	alpha := dt / responseTimeSeconds
	if alpha > 1 {
		alpha = 1
	}
	if alpha < 0 {
		alpha = 0
	}
	return alpha
}

func lerpVec3(from, to Vec3, alpha float32) Vec3 {
	return from.Add(to.Sub(from).Mul(alpha))
}

func componentMul(a, b Vec3) Vec3 {
	return Vec3{a[0] * b[0], a[1] * b[1], a[2] * b[2]}
}
