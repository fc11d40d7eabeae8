//go:build !signal_debug

package signal

// debugAssertEnabled reports whether this binary was built with the
// signal_debug tag, i.e. whether invariant violations are fast-fail.
const debugAssertEnabled = false

// debugAssert is a no-op in release builds: a mask/pool disagreement is
// neither logged nor acted on by AddComponents/RemoveComponents. It is
// reported only when World.CheckInvariants is called explicitly.
func debugAssert(cond bool, format string, args ...any) {}
