//go:build spancheck

package assert

const Enabled = true
