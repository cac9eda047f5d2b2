// Package diag defines the reporter interface the scanner emits into.
// The token and type buffers never report: their failure modes are
// contract violations, not data errors.
package diag

import "fmt"

// Severity defines the importance of a diagnostic.
type Severity uint8

const (
	SevInfo Severity = iota
	SevWarning
	SevError
)

func (s Severity) String() string {
	switch s {
	case SevInfo:
		return "INFO"
	case SevWarning:
		return "WARNING"
	case SevError:
		return "ERROR"
	}
	return "UNKNOWN"
}

// Code identifies a diagnostic kind. Lexical codes live in the 1000 range.
type Code uint16

const (
	UnknownCode Code = 0

	LexUnknownChar              Code = 1001
	LexUnterminatedString       Code = 1002
	LexUnterminatedChar         Code = 1003
	LexUnterminatedBlockComment Code = 1004
	LexBadNumber                Code = 1005
	LexBadEscape                Code = 1006
)

// Diagnostic is one reported message with its 1-based position.
type Diagnostic struct {
	Code     Code
	Severity Severity
	Line     uint32
	Column   uint32
	Message  string
}

func (d Diagnostic) String() string {
	return fmt.Sprintf("%s[%d] %d:%d: %s", d.Severity, d.Code, d.Line, d.Column, d.Message)
}

// Reporter receives diagnostics from the scanner. Implementations:
// Bag (collects), Nop (discards).
type Reporter interface {
	Report(code Code, sev Severity, line, column uint32, msg string)
}

// Errorf reports a SevError diagnostic with a formatted message.
func Errorf(r Reporter, code Code, line, column uint32, format string, args ...any) {
	r.Report(code, SevError, line, column, fmt.Sprintf(format, args...))
}
