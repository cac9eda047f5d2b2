package version

import (
	"testing"

	"github.com/fatih/color"
)

func TestPlain(t *testing.T) {
	origNumber, origChannel := Number, Channel
	defer func() { Number, Channel = origNumber, origChannel }()

	Number, Channel = "1.2.3", "rc1"
	if got := Plain(); got != "1.2.3-rc1" {
		t.Fatalf("Plain() = %q, want %q", got, "1.2.3-rc1")
	}
	// Tagged releases carry no channel suffix.
	Channel = ""
	if got := Plain(); got != "1.2.3" {
		t.Fatalf("Plain() = %q, want %q", got, "1.2.3")
	}
}

func TestStringMatchesPlainWithoutColor(t *testing.T) {
	orig := color.NoColor
	color.NoColor = true
	defer func() { color.NoColor = orig }()

	if got, want := String(), Plain(); got != want {
		t.Fatalf("String() = %q, want %q", got, want)
	}
}

func TestNumberCanBeOverridden(t *testing.T) {
	orig := Number
	defer func() { Number = orig }()

	// Simulates a build-time ldflags override.
	Number = "9.9.9"
	if got := Plain(); got != "9.9.9-"+Channel {
		t.Fatalf("Plain() = %q after override", got)
	}
}
