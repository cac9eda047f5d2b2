// Package lexer scans normalized source text into a token.Buffer. The
// scanner is a plain byte-level loop; errors go to a diag.Reporter and
// produce an Error token, so the stream stays well formed for the
// parser. The stream is always terminated by one EOF token.
package lexer

import (
	"fmt"

	"fortio.org/safecast"

	"coltc/internal/diag"
	"coltc/internal/source"
	"coltc/internal/token"
)

// Options control scanning behavior.
type Options struct {
	// KeepComments emits Comment tokens instead of skipping comment text.
	KeepComments bool
}

// Lexer is the scanning state for one file. Create one per scan with
// Scan; the zero value is not usable.
type Lexer struct {
	buf  *token.Buffer
	rep  diag.Reporter
	opts Options

	src string
	off int

	// line is the 0-based line the cursor is on; lineStart is the byte
	// offset of that line in src. Column arithmetic is off - lineStart.
	line      uint32
	lineStart int
}

// Scan splits f into lines, scans its content into buf and reports
// lexical errors to rep. The buffer is reset by the line split, so a
// buffer can be reused across files.
func Scan(f *source.File, buf *token.Buffer, rep diag.Reporter, opts Options) {
	source.SplitLines(f, buf)
	lx := &Lexer{buf: buf, rep: rep, opts: opts, src: f.Content}
	lx.run()
}

func (lx *Lexer) run() {
	for lx.off < len(lx.src) {
		ch := lx.src[lx.off]
		switch {
		case ch == '\n':
			lx.off++
			lx.line++
			lx.lineStart = lx.off
		case ch == ' ' || ch == '\t' || ch == '\r':
			lx.off++
		case isIdentStart(ch):
			lx.scanIdentOrKeyword()
		case isDec(ch):
			lx.scanNumber()
		case ch == '"':
			lx.scanString()
		case ch == '\'':
			lx.scanChar()
		default:
			lx.scanOperatorOrPunct()
		}
	}
	lx.buf.AddToken(token.EOF, lx.line, lx.column(), 0)
}

// column returns the current 0-based column.
func (lx *Lexer) column() uint32 {
	col, err := safecast.Conv[uint32](lx.off - lx.lineStart)
	if err != nil {
		panic(fmt.Errorf("column overflow: %w", err))
	}
	return col
}

func (lx *Lexer) peek() byte {
	if lx.off >= len(lx.src) {
		return 0
	}
	return lx.src[lx.off]
}

func (lx *Lexer) peekAt(n int) byte {
	if lx.off+n >= len(lx.src) {
		return 0
	}
	return lx.src[lx.off+n]
}

func (lx *Lexer) bump() byte {
	if lx.off >= len(lx.src) {
		return 0
	}
	b := lx.src[lx.off]
	lx.off++
	if b == '\n' {
		lx.line++
		lx.lineStart = lx.off
	}
	return b
}

// eat consumes the next byte if it equals b.
func (lx *Lexer) eat(b byte) bool {
	if lx.peek() == b {
		lx.off++
		return true
	}
	return false
}

func (lx *Lexer) eof() bool {
	return lx.off >= len(lx.src)
}

// errorToken emits an Error token for the range [start, lx.off) on the
// line the token started on.
func (lx *Lexer) errorToken(line, column uint32, start int) {
	lx.buf.AddToken(token.Error, line, column, sizeOf(start, lx.off))
}

func sizeOf(start, end int) uint32 {
	size, err := safecast.Conv[uint32](end - start)
	if err != nil {
		panic(fmt.Errorf("token size overflow: %w", err))
	}
	return size
}
