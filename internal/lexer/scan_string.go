package lexer

import (
	"strings"

	"coltc/internal/diag"
	"coltc/internal/token"
)

// scanString consumes a "..." literal, decodes escapes and stores the
// decoded value in the buffer. Newlines are not allowed inside string
// literals.
func (lx *Lexer) scanString() {
	line, column := lx.line, lx.column()
	start := lx.off
	lx.off++ // opening quote

	var sb strings.Builder
	for {
		if lx.eof() || lx.peek() == '\n' {
			diag.Errorf(lx.rep, diag.LexUnterminatedString, line+1, column+1,
				"unterminated string literal")
			lx.errorToken(line, column, start)
			return
		}
		b := lx.bump()
		if b == '"' {
			lx.buf.AddString(sb.String(), line, column, sizeOf(start, lx.off))
			return
		}
		if b != '\\' {
			sb.WriteByte(b)
			continue
		}
		decoded, ok := lx.escape()
		if !ok {
			lx.skipStringTail()
			lx.errorToken(line, column, start)
			return
		}
		sb.WriteRune(decoded)
	}
}

// scanChar consumes a '.' literal. The payload is the decoded rune.
func (lx *Lexer) scanChar() {
	line, column := lx.line, lx.column()
	start := lx.off
	lx.off++ // opening quote

	if lx.eof() || lx.peek() == '\n' || lx.peek() == '\'' {
		if lx.peek() == '\'' {
			lx.off++
		}
		diag.Errorf(lx.rep, diag.LexUnterminatedChar, line+1, column+1,
			"empty or unterminated char literal")
		lx.errorToken(line, column, start)
		return
	}

	var value rune
	if b := lx.bump(); b == '\\' {
		decoded, ok := lx.escape()
		if !ok {
			lx.eat('\'')
			lx.errorToken(line, column, start)
			return
		}
		value = decoded
	} else {
		value = rune(b)
	}

	if !lx.eat('\'') {
		diag.Errorf(lx.rep, diag.LexUnterminatedChar, line+1, column+1,
			"unterminated char literal")
		lx.errorToken(line, column, start)
		return
	}
	lx.buf.AddLiteral(uint64(value), token.CharLit, line, column, sizeOf(start, lx.off))
}

// escape decodes one escape sequence after the backslash was consumed.
// Bad escapes are reported here; the caller emits the Error token.
func (lx *Lexer) escape() (rune, bool) {
	line, column := lx.line, lx.column()
	b := lx.bump()
	switch b {
	case '\'':
		return '\'', true
	case '"':
		return '"', true
	case '\\':
		return '\\', true
	case 'n':
		return '\n', true
	case 't':
		return '\t', true
	case 'r':
		return '\r', true
	case '0':
		return 0, true
	case 'a':
		return '\a', true
	case 'b':
		return '\b', true
	case 'f':
		return '\f', true
	case 'v':
		return '\v', true
	case 'x':
		hi, lo := lx.peek(), lx.peekAt(1)
		if !isHex(hi) || !isHex(lo) {
			diag.Errorf(lx.rep, diag.LexBadEscape, line+1, column+1,
				"expected two hex digits after \\x")
			return 0, false
		}
		lx.off += 2
		return rune(hexValue(hi)<<4 | hexValue(lo)), true
	}
	diag.Errorf(lx.rep, diag.LexBadEscape, line+1, column+1,
		"unknown escape sequence \\%c", b)
	return 0, false
}

// skipStringTail consumes the remainder of a broken string literal up
// to its closing quote or the end of the line.
func (lx *Lexer) skipStringTail() {
	for !lx.eof() && lx.peek() != '\n' {
		if lx.bump() == '"' {
			return
		}
	}
}

func hexValue(b byte) byte {
	switch {
	case b >= 'a':
		return b - 'a' + 10
	case b >= 'A':
		return b - 'A' + 10
	default:
		return b - '0'
	}
}
