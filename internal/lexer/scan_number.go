package lexer

import (
	"math"
	"strconv"

	"coltc/internal/diag"
	"coltc/internal/token"
)

// Integer suffix spellings and the range each one admits. A literal's
// digits are always an unsigned magnitude; signed kinds only shrink the
// admissible range (a leading '-' is a separate unary token).
var intSuffixes = map[string]struct {
	lexeme token.Lexeme
	max    uint64
}{
	"u8":  {token.U8Lit, math.MaxUint8},
	"u16": {token.U16Lit, math.MaxUint16},
	"u32": {token.U32Lit, math.MaxUint32},
	"u64": {token.U64Lit, math.MaxUint64},
	"i8":  {token.I8Lit, math.MaxInt8},
	"i16": {token.I16Lit, math.MaxInt16},
	"i32": {token.I32Lit, math.MaxInt32},
	"i64": {token.I64Lit, math.MaxInt64},
}

// scanNumber handles 0x/0b/0o radix integers and decimal integers and
// floats. Integer suffixes pick the literal kind (default i64); 'f'
// and 'd' force f32/f64 (default f64 for anything with a fraction or
// exponent). Malformed or out-of-range numbers are reported and emit
// one Error token covering the whole run.
func (lx *Lexer) scanNumber() {
	line, column := lx.line, lx.column()
	start := lx.off

	if lx.peek() == '0' {
		switch lx.peekAt(1) {
		case 'x', 'X':
			lx.off += 2
			lx.scanRadixInt(isHex, 16, line, column, start)
			return
		case 'b', 'B':
			lx.off += 2
			lx.scanRadixInt(isBin, 2, line, column, start)
			return
		case 'o', 'O':
			lx.off += 2
			lx.scanRadixInt(isOct, 8, line, column, start)
			return
		}
	}

	for isDec(lx.peek()) {
		lx.off++
	}
	isFloat := false
	if lx.peek() == '.' && isDec(lx.peekAt(1)) {
		lx.off++
		for isDec(lx.peek()) {
			lx.off++
		}
		isFloat = true
	}
	if lx.peek() == 'e' || lx.peek() == 'E' {
		mark := lx.off
		lx.off++
		if lx.peek() == '+' || lx.peek() == '-' {
			lx.off++
		}
		if !isDec(lx.peek()) {
			// "1e" is an integer 1 followed by identifier "e"; back out.
			lx.off = mark
		} else {
			for isDec(lx.peek()) {
				lx.off++
			}
			isFloat = true
		}
	}
	digits := lx.src[start:lx.off]

	switch {
	case lx.peek() == 'f':
		lx.off++
		lx.emitFloat(digits, token.F32Lit, line, column, start)
	case lx.peek() == 'd':
		lx.off++
		lx.emitFloat(digits, token.F64Lit, line, column, start)
	case isFloat:
		lx.emitFloat(digits, token.F64Lit, line, column, start)
	default:
		lx.emitInt(digits, 10, line, column, start)
	}
}

// scanRadixInt consumes the digit run after a 0x/0b/0o prefix.
func (lx *Lexer) scanRadixInt(valid func(byte) bool, base int, line, column uint32, start int) {
	digitStart := lx.off
	for valid(lx.peek()) {
		lx.off++
	}
	if lx.off == digitStart {
		lx.badNumber(line, column, start, "missing digits after base prefix")
		return
	}
	lx.emitInt(lx.src[digitStart:lx.off], base, line, column, start)
}

func (lx *Lexer) emitInt(digits string, base int, line, column uint32, start int) {
	suffix := intSuffixes["i64"]
	if lx.peek() == 'u' || lx.peek() == 'i' {
		suffixStart := lx.off
		lx.off++
		for isDec(lx.peek()) {
			lx.off++
		}
		s, ok := intSuffixes[lx.src[suffixStart:lx.off]]
		if !ok {
			lx.badNumber(line, column, start, "unknown integer suffix %q", lx.src[suffixStart:lx.off])
			return
		}
		suffix = s
	}
	if isIdentContinue(lx.peek()) {
		lx.badNumber(line, column, start, "malformed number literal")
		return
	}
	value, err := strconv.ParseUint(digits, base, 64)
	if err != nil || value > suffix.max {
		lx.badNumber(line, column, start, "%s out of range", suffix.lexeme)
		return
	}
	lx.buf.AddLiteral(value, suffix.lexeme, line, column, sizeOf(start, lx.off))
}

func (lx *Lexer) emitFloat(digits string, l token.Lexeme, line, column uint32, start int) {
	if isIdentContinue(lx.peek()) {
		lx.badNumber(line, column, start, "malformed number literal")
		return
	}
	value, err := strconv.ParseFloat(digits, 64)
	if err != nil {
		lx.badNumber(line, column, start, "%s out of range", l)
		return
	}
	var bits uint64
	if l == token.F32Lit {
		bits = uint64(math.Float32bits(float32(value)))
	} else {
		bits = math.Float64bits(value)
	}
	lx.buf.AddLiteral(bits, l, line, column, sizeOf(start, lx.off))
}

// badNumber consumes the rest of the offending run, reports and emits
// an Error token.
func (lx *Lexer) badNumber(line, column uint32, start int, format string, args ...any) {
	for isIdentContinue(lx.peek()) || lx.peek() == '.' {
		lx.off++
	}
	diag.Errorf(lx.rep, diag.LexBadNumber, line+1, column+1, format, args...)
	lx.errorToken(line, column, start)
}
