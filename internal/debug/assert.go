//go:build gtexdebug

// Package debug provides build-tag gated assertions for programmer
// errors in trusted internal code paths.
//
// With the gtexdebug tag, Assert panics on violation. Without it, Assert
// compiles to a no-op and misuse falls back to best-effort zero values.
package debug

// Enabled reports whether assertions are compiled in.
const Enabled = true

// Assert panics with msg when cond is false.
func Assert(cond bool, msg string) {
	if !cond {
		panic("gtex: assertion failed: " + msg)
	}
}
