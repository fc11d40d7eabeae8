//go:build signal_debug

package signal

import "fmt"

// debugAssertEnabled reports whether this binary was built with the
// signal_debug tag, i.e. whether invariant violations are fast-fail.
const debugAssertEnabled = true

// debugAssert implements the release-vs-debug split from §7: in a
// signal_debug build an invariant violation panics immediately; see
// debug_assert_release.go for the release-build counterpart.
func debugAssert(cond bool, format string, args ...any) {
	if !cond {
		panic(fmt.Sprintf("signal: invariant violation: "+format, args...))
	}
}
