//go:build !spancheck

package assert

// Enabled reports whether contract assertions are compiled in.
const Enabled = false
