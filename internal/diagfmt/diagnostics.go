package diagfmt

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"coltc/internal/diag"
)

var (
	sevErrorColor   = color.New(color.FgRed, color.Bold)
	sevWarningColor = color.New(color.FgYellow, color.Bold)
	sevInfoColor    = color.New(color.FgBlue)
)

func severityLabel(sev diag.Severity, useColor bool) string {
	label := sev.String()
	if !useColor {
		return label
	}
	switch sev {
	case diag.SevError:
		return sevErrorColor.Sprint(label)
	case diag.SevWarning:
		return sevWarningColor.Sprint(label)
	default:
		return sevInfoColor.Sprint(label)
	}
}

// Diagnostics writes collected diagnostics in the form
//
//	<path>:<line>:<col>: <SEV>[<code>]: <message>
//	    <source line>
//	    ^
//
// The context line is shown when lines covers the diagnostic's line.
func Diagnostics(w io.Writer, path string, items []diag.Diagnostic, lines []string, opts PrettyOpts) error {
	for _, d := range items {
		_, err := fmt.Fprintf(w, "%s:%d:%d: %s[%d]: %s\n",
			path, d.Line, d.Column, severityLabel(d.Severity, opts.Color), d.Code, d.Message)
		if err != nil {
			return err
		}
		if d.Line == 0 || int(d.Line) > len(lines) {
			continue
		}
		text := lines[d.Line-1]
		if _, err := fmt.Fprintf(w, "    %s\n", text); err != nil {
			return err
		}
		col := int(d.Column)
		if col < 1 {
			col = 1
		}
		if col > len(text)+1 {
			col = len(text) + 1
		}
		caret := "^"
		if opts.Color {
			caret = sevErrorColor.Sprint(caret)
		}
		if _, err := fmt.Fprintf(w, "    %s%s\n", strings.Repeat(" ", col-1), caret); err != nil {
			return err
		}
	}
	return nil
}

// DiagnosticJSON is one diagnostic in serialized form.
type DiagnosticJSON struct {
	Severity string `json:"severity"`
	Code     uint16 `json:"code"`
	Line     uint32 `json:"line"`
	Column   uint32 `json:"column"`
	Message  string `json:"message"`
}

// DiagnosticsOutput is the root of the JSON diagnostics output.
type DiagnosticsOutput struct {
	Path        string           `json:"path"`
	Diagnostics []DiagnosticJSON `json:"diagnostics"`
	Count       int              `json:"count"`
}

// DiagnosticsJSON writes collected diagnostics as indented JSON.
func DiagnosticsJSON(w io.Writer, path string, items []diag.Diagnostic) error {
	out := DiagnosticsOutput{
		Path:        path,
		Diagnostics: make([]DiagnosticJSON, 0, len(items)),
		Count:       len(items),
	}
	for _, d := range items {
		out.Diagnostics = append(out.Diagnostics, DiagnosticJSON{
			Severity: d.Severity.String(),
			Code:     uint16(d.Code),
			Line:     d.Line,
			Column:   d.Column,
			Message:  d.Message,
		})
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
