// Package diagfmt renders token streams and diagnostics for the CLI:
// human-readable text, JSON, and a msgpack token dump for tooling.
package diagfmt

// PrettyOpts control the human-readable formatters.
type PrettyOpts struct {
	// Color enables ANSI colors in the output.
	Color bool
}
