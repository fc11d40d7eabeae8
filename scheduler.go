package signal

import "time"

// SystemFunc is one scheduled system's per-tick update (§4.8). dt is the
// fixed timestep for that system's configured rate, never the wall-clock
// frame delta.
type SystemFunc func(dt float32)

// ScheduledSystem is one named entry on the scheduler's fixed roster
// (§4.8). Hz is the target update rate; an accumulator of wall-clock time
// is drained in 1/Hz-second steps every frame, so a system configured at
// 30Hz runs once for every two ticks of one running at 60Hz, independent of
// how often Scheduler.Tick itself is called.
type ScheduledSystem struct {
	Name    string
	Hz      float64
	Enabled bool
	Update  SystemFunc

	accumulator float64
}

// DefaultSystemOrder is the declared execution order from §4.8: Input,
// Control, Thrusters, Physics, Collision, Transform-refresh, Camera, LOD,
// AI, Performance, Memory. Within a Scheduler the roster is always walked
// in registration order, so callers are expected to register systems in
// this order (Engine.NewEngine does).
var DefaultSystemOrder = []string{
	"Input", "Control", "Thrusters", "Physics", "Collision",
	"TransformRefresh", "Camera", "LOD", "AI", "Performance", "Memory",
}

// Scheduler runs a fixed roster of named, independently-rated systems
// against wall-clock frame deltas (§4.8). It owns no world state itself;
// every ScheduledSystem closes over whatever state it needs.
type Scheduler struct {
	systems     []*ScheduledSystem
	byName      map[string]*ScheduledSystem
	frameBudget time.Duration
	running     bool
	monitor     *PerformanceMonitor
	logger      Logger

	throttleNext bool
}

// lowPrioritySystems are the candidates skipped for one frame after a
// budget overrun (§4.8 budget enforcement: "may skip lower-priority
// systems (AI, LOD, Memory) on the next frame").
var lowPrioritySystems = map[string]bool{
	"AI":     true,
	"LOD":    true,
	"Memory": true,
}

// NewScheduler builds an empty Scheduler. frameBudget is the default
// per-frame time budget (§4.8); zero or negative disables budget
// enforcement.
func NewScheduler(frameBudget time.Duration, monitor *PerformanceMonitor, logger Logger) *Scheduler {
	if logger == nil {
		logger = NewNopLogger()
	}
	return &Scheduler{
		byName:      make(map[string]*ScheduledSystem),
		frameBudget: frameBudget,
		monitor:     monitor,
		logger:      logger,
	}
}

// Register appends a system to the roster. Registration order is
// execution order within a single Tick call.
func (s *Scheduler) Register(name string, hz float64, update SystemFunc) {
	sys := &ScheduledSystem{Name: name, Hz: hz, Enabled: true, Update: update}
	s.systems = append(s.systems, sys)
	s.byName[name] = sys
}

// SetEnabled toggles a registered system by name. Disabling a system
// leaves its accumulator untouched, so re-enabling it resumes from where
// it left off rather than bursting catch-up steps.
func (s *Scheduler) SetEnabled(name string, enabled bool) {
	if sys, ok := s.byName[name]; ok {
		sys.Enabled = enabled
	}
}

// Start marks the scheduler as running. Tick is a no-op once Stop has
// been called, giving callers a clean-shutdown flag per §4.8.
func (s *Scheduler) Start() {
	s.running = true
}

// Stop marks the scheduler as stopped.
func (s *Scheduler) Stop() {
	s.running = false
}

// Running reports whether the scheduler will process the next Tick.
func (s *Scheduler) Running() bool {
	return s.running
}

// Tick advances every enabled system's accumulator by frameDelta seconds
// and drains it in Hz-sized fixed steps, recording timing with the
// attached PerformanceMonitor and warning when the whole frame exceeds
// the configured budget (§4.8, §9 "low-priority systems throttle before
// high-priority ones miss a frame" design note: systems later in
// DefaultSystemOrder are the first candidates a caller should disable
// under sustained budget pressure).
func (s *Scheduler) Tick(frameDelta float64) {
	if !s.running {
		return
	}
	frameStart := time.Now()
	throttle := s.throttleNext
	s.throttleNext = false

	for _, sys := range s.systems {
		if !sys.Enabled || sys.Hz <= 0 {
			continue
		}
		if throttle && lowPrioritySystems[sys.Name] {
			// Skip invocation entirely this frame, but keep accruing the
			// accumulator so the system catches up once unthrottled
			// instead of silently losing steps.
			sys.accumulator += frameDelta
			continue
		}
		step := 1.0 / sys.Hz
		sys.accumulator += frameDelta
		for sys.accumulator >= step {
			stepStart := time.Now()
			sys.Update(float32(step))
			if s.monitor != nil {
				s.monitor.Record(sys.Name, time.Since(stepStart))
			}
			sys.accumulator -= step
		}
	}

	if s.frameBudget > 0 {
		elapsed := time.Since(frameStart)
		if elapsed > s.frameBudget {
			s.logger.Warnf("scheduler: frame took %s, over budget %s", elapsed, s.frameBudget)
			s.throttleNext = true
		}
	}
}
