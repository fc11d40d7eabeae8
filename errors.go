package signal

import "errors"

// Error taxonomy (§7). Sentinels are returned as-is or wrapped with
// fmt.Errorf("...: %w", ...) when the caller needs to attach context;
// callers recover with errors.Is. ErrOutOfMemory, ErrNumericInstability
// and ErrBudgetExceeded are not returned by any function in this package:
// the physics system and the scheduler log those conditions instead.
var (
	// ErrInvalidEntity is returned by accessors given a stale or
	// never-existent EntityID. Non-fatal: callers skip the entity.
	ErrInvalidEntity = errors.New("signal: invalid entity")

	// ErrWorldFull is returned by World.CreateEntity once entity_count
	// has reached MaxEntities. Non-fatal: propagates to the caller.
	ErrWorldFull = errors.New("signal: world is full")

	// ErrOutOfMemory names a component pool allocation failure. NewWorld
	// allocates its pools as fixed-size arrays and never returns it.
	ErrOutOfMemory = errors.New("signal: out of memory")

	// ErrInvariantViolation marks a detected pool/mask disagreement, as
	// returned by World.CheckInvariants. In signal_debug builds the same
	// disagreement panics inside AddComponents/RemoveComponents (see
	// debugAssert); release builds do not check it there.
	ErrInvariantViolation = errors.New("signal: invariant violation")

	// ErrNumericInstability marks NaN/Inf discovered in a physics
	// accumulator. The tick's integration is skipped for that entity
	// after its accumulators are reset.
	ErrNumericInstability = errors.New("signal: numeric instability")

	// ErrBudgetExceeded marks a frame whose wall-clock time exceeded the
	// scheduler's configured frame budget.
	ErrBudgetExceeded = errors.New("signal: frame budget exceeded")
)
