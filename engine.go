package signal

// Engine is the explicit, non-singleton context this codebase uses in
// place of the teacher's global mutable App resource table (§9 design
// note "global mutable singletons → explicit context"): every piece of
// engine state a caller might need — the World, the system roster, the
// performance monitor, the logger, and the resolved configuration — is a
// field here, constructed once and passed around rather than reached for
// through package-level state.
type Engine struct {
	World     *World
	Scheduler *Scheduler
	Monitor   *PerformanceMonitor
	Logger    Logger
	Config    EngineConfig

	environment  Environment
	lastContacts []ContactEvent
	setInput     func(*InputState)
}

// NewEngine wires a fresh World, PerformanceMonitor, and Scheduler
// together from cfg, registering the full DefaultSystemOrder roster
// (§4.8). The returned Engine is not started; call Start to begin
// ticking.
func NewEngine(cfg EngineConfig, logger Logger) *Engine {
	if logger == nil {
		logger = NewNopLogger()
	}
	world := NewWorld()
	monitor := NewPerformanceMonitor(cfg.PerSystemBudget, logger)
	scheduler := NewScheduler(cfg.FrameBudget, monitor, logger)

	e := &Engine{
		World:       world,
		Scheduler:   scheduler,
		Monitor:     monitor,
		Logger:      logger,
		Config:      cfg,
		environment: cfg.DefaultEnvironment,
	}

	e.registerSystems(cfg)
	return e
}

// registerSystems wires every SystemFunc in DefaultSystemOrder against
// e's World, closing over a shared *InputState cell that SetInput
// replaces once per frame (§3, C4: InputState is a single process-wide
// snapshot materialised once per tick).
func (e *Engine) registerSystems(cfg EngineConfig) {
	var current *InputState
	e.setInput = func(in *InputState) { current = in }

	rateOf := func(name string, fallback float64) float64 {
		for _, r := range cfg.SystemRates {
			if r.Name == name {
				if !r.Enabled {
					return 0
				}
				return r.Hz
			}
		}
		return fallback
	}

	e.Scheduler.Register("Input", rateOf("Input", 60), func(dt float32) {
		// Input materialisation itself happens in SetInput, called by the
		// host driver; this slot exists so Input has a scheduled place in
		// DefaultSystemOrder and a timing sample.
		_ = dt
	})
	e.Scheduler.Register("Control", rateOf("Control", 60), func(dt float32) {
		_ = dt
		ControlSystem(e.World, current)
	})
	e.Scheduler.Register("Thrusters", rateOf("Thrusters", 60), func(dt float32) {
		ThrusterSystemUpdate(e.World, e.environment, dt)
	})
	e.Scheduler.Register("Physics", rateOf("Physics", 60), func(dt float32) {
		PhysicsSystem(e.World, dt, e.Logger)
	})
	e.Scheduler.Register("Collision", rateOf("Collision", 60), func(dt float32) {
		_ = dt
		e.lastContacts = CollisionSystem(e.World)
	})
	e.Scheduler.Register("TransformRefresh", rateOf("TransformRefresh", 60), func(dt float32) {
		_ = dt
		TransformRefreshSystem(e.World)
	})
	e.Scheduler.Register("Camera", rateOf("Camera", 60), func(dt float32) {
		_ = dt
		CameraSystem(e.World)
	})
	e.Scheduler.Register("LOD", rateOf("LOD", 30), func(dt float32) {
		_ = dt
		// Level-of-detail selection is a renderer concern; no core state
		// to update without a concrete mesh LOD chain.
	})
	e.Scheduler.Register("AI", rateOf("AI", 5), func(dt float32) {
		_ = dt
		AISystem(e.World)
	})
	e.Scheduler.Register("Performance", rateOf("Performance", 1), func(dt float32) {
		_ = dt
	})
	e.Scheduler.Register("Memory", rateOf("Memory", 1), func(dt float32) {
		_ = dt
		e.World.compact()
	})
}

// SetEnvironment changes which ThrusterSystem efficiency column applies
// on the next Thrusters tick.
func (e *Engine) SetEnvironment(env Environment) {
	e.environment = env
}

// SetInput materialises the per-tick InputState the Control system reads
// (§3, C4). Call once per frame before Scheduler.Tick.
func (e *Engine) SetInput(in InputState) {
	if e.setInput != nil {
		e.setInput(&in)
	}
}

// LastContacts returns the ContactEvents recorded by the most recent
// Collision tick.
func (e *Engine) LastContacts() []ContactEvent {
	return e.lastContacts
}

// Start begins ticking the engine's scheduler.
func (e *Engine) Start() {
	e.Scheduler.Start()
}

// Stop halts the engine's scheduler cleanly (§4.8).
func (e *Engine) Stop() {
	e.Scheduler.Stop()
}

// Tick advances the engine by frameDelta seconds of wall-clock time.
func (e *Engine) Tick(frameDelta float64) {
	e.Scheduler.Tick(frameDelta)
}
