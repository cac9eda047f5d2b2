package version

import "github.com/fatih/color"

// Build metadata of the coltc binary. The variables are plain strings so
// -ldflags "-X" can override them at link time.
var (
	// Number is the bare semantic version.
	Number = "0.1.0"

	// Channel marks pre-release builds; empty on tagged releases.
	Channel = "dev"

	// GitCommit is the hash the binary was built from, when known.
	GitCommit = ""

	// BuildDate is an ISO-8601 build timestamp, when known.
	BuildDate = ""
)

// Plain renders the version without styling, for machine-readable output.
func Plain() string {
	if Channel == "" {
		return Number
	}
	return Number + "-" + Channel
}

// String renders the version for terminal display: the number highlighted,
// the channel as a faint suffix. fatih/color drops the escapes itself when
// the output is not a terminal.
func String() string {
	s := color.New(color.FgCyan, color.Bold).Sprint(Number)
	if Channel != "" {
		s += color.New(color.Faint).Sprint("-" + Channel)
	}
	return s
}
