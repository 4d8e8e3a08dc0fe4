//go:build !gtexdebug

package debug

// Enabled reports whether assertions are compiled in.
const Enabled = false

// Assert is a no-op without the gtexdebug build tag.
func Assert(bool, string) {}
