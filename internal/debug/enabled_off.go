//go:build !coltdebug

package debug

// Enabled reports whether contract checking is compiled in.
const Enabled = false
