package signal

// CurveKind selects the sensitivity curve applied to a raw input axis
// after deadzone rejection (§4.4).
type CurveKind int

const (
	CurveLinear CurveKind = iota
	CurveQuadratic
	CurveCubic
	CurveExponential
)

// InputState is the single process-wide, per-tick input snapshot (§3,
// C4). It is read-only to every downstream system for the remainder of
// the tick once materialised.
type InputState struct {
	Thrust, Strafe, Vertical float32 // [-1,1]
	Pitch, Yaw, Roll         float32 // [-1,1]
	Boost                    float32 // [0,1]
	Brake                    bool
	Action                   bool
	Menu                     bool
}

// RawAxisSample is what the (external, out of scope) input driver hands
// the core once per tick: an unprocessed axis sample plus the curve and
// deadzone to apply to it. The driver owns device enumeration, hotplug,
// and raw-sample calibration (§6); this core only applies the documented
// deadzone/curve/clamp pipeline.
type RawAxisSample struct {
	Value    float32
	Deadzone float32
	Curve    CurveKind
}

// ApplyAxisCurve implements §4.4's per-axis pipeline: deadzone, then
// sensitivity curve, then clamp to [-1,1]. The result is always finite.
func ApplyAxisCurve(s RawAxisSample) float32 {
	v := s.Value
	if !isFinite32(v) {
		return 0
	}
	v = clampFloat32(v, -1, 1)

	dz := clampFloat32(s.Deadzone, 0, 0.99)
	mag := v
	sign := float32(1)
	if mag < 0 {
		sign = -1
		mag = -mag
	}
	if mag <= dz {
		return 0
	}
	// Rescale the post-deadzone range back to [0,1] before curving.
	mag = (mag - dz) / (1 - dz)

	switch s.Curve {
	case CurveQuadratic:
		mag = mag * mag
	case CurveCubic:
		mag = mag * mag * mag
	case CurveExponential:
		// (e^mag - 1) / (e - 1) keeps the curve anchored at (0,0),(1,1).
		mag = (expApprox(mag) - 1) / (expApprox(1) - 1)
	case CurveLinear:
		// no-op
	}

	return clampFloat32(sign*mag, -1, 1)
}

// expApprox is a small fixed-term Taylor expansion of e^x, sufficient for
// x in [0,1] and avoiding a math.Exp round-trip through float64 on a
// float32 hot path. Error grows with x and is about 1e-2 at x=1 (2.70833
// against e = 2.71828); the exponential curve divides by expApprox(1), so
// its endpoints still land exactly on (0,0) and (1,1).
func expApprox(x float32) float32 {
	return 1 + x + x*x/2 + x*x*x/6 + x*x*x*x/24
}

// MaterializeInput applies ApplyAxisCurve to a full six-axis sample set
// and clamps boost to [0,1], producing the InputState snapshot for this
// tick (§4.4). All fields are guaranteed finite.
func MaterializeInput(thrust, strafe, vertical, pitch, yaw, roll RawAxisSample, boost float32, brake, action, menu bool) InputState {
	if !isFinite32(boost) {
		boost = 0
	}
	return InputState{
		Thrust:   ApplyAxisCurve(thrust),
		Strafe:   ApplyAxisCurve(strafe),
		Vertical: ApplyAxisCurve(vertical),
		Pitch:    ApplyAxisCurve(pitch),
		Yaw:      ApplyAxisCurve(yaw),
		Roll:     ApplyAxisCurve(roll),
		Boost:    clampFloat32(boost, 0, 1),
		Brake:    brake,
		Action:   action,
		Menu:     menu,
	}
}
