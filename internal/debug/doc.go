// Package debug implements the two-tier checking regime of the compiler
// data stores. Contract violations (wrong lexeme queried, cross-buffer
// handle use, malformed ranges) are programming errors: with the
// `coltdebug` build tag they abort with a descriptive panic, without it
// every check is a constant-false branch the compiler removes.
//
// The package also owns the process-wide buffer identity generator used
// to stamp token and type buffers so that debug builds can detect a
// handle used against the wrong buffer. The generator is atomic, so
// buffers may be constructed from different goroutines; mutating a
// single buffer concurrently is not supported.
package debug
