package lexer

import "coltc/internal/token"

// scanIdentOrKeyword consumes [A-Za-z_][A-Za-z0-9_]* and classifies it.
// "true" and "false" are not keywords; they become BoolLit tokens with
// a payload, so readers never touch the spelling again.
func (lx *Lexer) scanIdentOrKeyword() {
	line, column := lx.line, lx.column()
	start := lx.off
	for !lx.eof() && isIdentContinue(lx.src[lx.off]) {
		lx.off++
	}
	word := lx.src[start:lx.off]
	size := sizeOf(start, lx.off)

	switch word {
	case "true":
		lx.buf.AddLiteral(1, token.BoolLit, line, column, size)
		return
	case "false":
		lx.buf.AddLiteral(0, token.BoolLit, line, column, size)
		return
	}
	if kw, ok := token.LookupKeyword(word); ok {
		lx.buf.AddToken(kw, line, column, size)
		return
	}
	lx.buf.AddIdentifier(word, line, column, size)
}
