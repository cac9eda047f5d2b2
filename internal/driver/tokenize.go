// Package driver runs the front-end pipeline: load a file, split it
// into lines, scan it into a token buffer. Multi-file runs fan out with
// one buffer per file, which keeps buffer construction lock-free.
package driver

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"coltc/internal/diag"
	"coltc/internal/lexer"
	"coltc/internal/source"
	"coltc/internal/token"
)

// Options configure a tokenize run.
type Options struct {
	// MaxDiagnostics caps the collected diagnostics per file.
	MaxDiagnostics int
	// KeepComments forwards to the scanner.
	KeepComments bool
	// Log receives per-phase progress at debug level; nil disables it.
	Log *logrus.Logger
	// Timings enables phase timing.
	Timings bool
}

// DefaultMaxDiagnostics bounds a bag when Options.MaxDiagnostics is zero.
const DefaultMaxDiagnostics = 64

// TokenizeResult is the outcome for one file.
type TokenizeResult struct {
	Path   string
	File   *source.File
	Buffer *token.Buffer
	Bag    *diag.Bag
	Timing TimingReport
}

// Tokenize loads path from disk and scans it.
func Tokenize(path string, opts Options) (*TokenizeResult, error) {
	file, err := source.Load(path)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	return TokenizeFile(file, opts), nil
}

// TokenizeFile scans an already loaded file into a fresh buffer.
func TokenizeFile(file *source.File, opts Options) *TokenizeResult {
	maxDiagnostics := opts.MaxDiagnostics
	if maxDiagnostics <= 0 {
		maxDiagnostics = DefaultMaxDiagnostics
	}
	bag := diag.NewBag(maxDiagnostics)
	buf := token.NewBuffer()

	var timer *Timer
	if opts.Timings {
		timer = NewTimer()
	}

	phase := -1
	if timer != nil {
		phase = timer.Begin("lex")
	}
	lexer.Scan(file, buf, bag, lexer.Options{KeepComments: opts.KeepComments})
	if timer != nil {
		timer.End(phase, fmt.Sprintf("%d tokens", buf.Len()))
	}

	if opts.Log != nil {
		opts.Log.WithFields(logrus.Fields{
			"path":        file.Path,
			"tokens":      buf.Len(),
			"identifiers": buf.IdentifierCount(),
			"diagnostics": bag.Len(),
		}).Debug("tokenized")
	}

	result := &TokenizeResult{
		Path:   file.Path,
		File:   file,
		Buffer: buf,
		Bag:    bag,
	}
	if timer != nil {
		result.Timing = timer.Report()
	}
	return result
}
