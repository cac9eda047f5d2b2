package lexer

import (
	"coltc/internal/diag"
	"coltc/internal/token"
)

// scanOperatorOrPunct consumes one operator or punctuation token using
// longest match. '/' dispatches to the comment scanners.
func (lx *Lexer) scanOperatorOrPunct() {
	line, column := lx.line, lx.column()
	start := lx.off
	b := lx.bump()

	var l token.Lexeme
	switch b {
	case '+':
		switch {
		case lx.eat('+'):
			l = token.PlusPlus
		case lx.eat('='):
			l = token.PlusAssign
		default:
			l = token.Plus
		}
	case '-':
		switch {
		case lx.eat('-'):
			l = token.MinusMinus
		case lx.eat('='):
			l = token.MinusAssign
		case lx.eat('>'):
			l = token.Arrow
		default:
			l = token.Minus
		}
	case '*':
		if lx.eat('=') {
			l = token.StarAssign
		} else {
			l = token.Star
		}
	case '/':
		switch {
		case lx.peek() == '/':
			lx.scanLineComment(line, column, start)
			return
		case lx.peek() == '*':
			lx.scanBlockComment(line, column, start)
			return
		case lx.eat('='):
			l = token.SlashAssign
		default:
			l = token.Slash
		}
	case '%':
		if lx.eat('=') {
			l = token.PercentAssign
		} else {
			l = token.Percent
		}
	case '&':
		switch {
		case lx.eat('&'):
			l = token.AndAnd
		case lx.eat('='):
			l = token.AmpAssign
		default:
			l = token.Amp
		}
	case '|':
		switch {
		case lx.eat('|'):
			l = token.OrOr
		case lx.eat('='):
			l = token.PipeAssign
		default:
			l = token.Pipe
		}
	case '^':
		if lx.eat('=') {
			l = token.CaretAssign
		} else {
			l = token.Caret
		}
	case '<':
		switch {
		case lx.eat('='):
			l = token.LtEq
		case lx.eat('<'):
			if lx.eat('=') {
				l = token.ShlAssign
			} else {
				l = token.Shl
			}
		default:
			l = token.Lt
		}
	case '>':
		switch {
		case lx.eat('='):
			l = token.GtEq
		case lx.eat('>'):
			if lx.eat('=') {
				l = token.ShrAssign
			} else {
				l = token.Shr
			}
		default:
			l = token.Gt
		}
	case '=':
		switch {
		case lx.eat('='):
			l = token.EqEq
		case lx.eat('>'):
			l = token.FatArrow
		default:
			l = token.Assign
		}
	case '!':
		if lx.eat('=') {
			l = token.BangEq
		} else {
			l = token.Bang
		}
	case ':':
		if lx.eat(':') {
			l = token.ColonColon
		} else {
			l = token.Colon
		}
	case '~':
		l = token.Tilde
	case ',':
		l = token.Comma
	case ';':
		l = token.Semicolon
	case '.':
		l = token.Dot
	case '(':
		l = token.LParen
	case ')':
		l = token.RParen
	case '{':
		l = token.LBrace
	case '}':
		l = token.RBrace
	case '[':
		l = token.LBracket
	case ']':
		l = token.RBracket
	default:
		diag.Errorf(lx.rep, diag.LexUnknownChar, line+1, column+1,
			"unknown character %q", rune(b))
		lx.errorToken(line, column, start)
		return
	}
	lx.buf.AddToken(l, line, column, sizeOf(start, lx.off))
}

// scanLineComment consumes a // comment up to the newline.
func (lx *Lexer) scanLineComment(line, column uint32, start int) {
	for !lx.eof() && lx.peek() != '\n' {
		lx.off++
	}
	if lx.opts.KeepComments {
		lx.buf.AddToken(token.Comment, line, column, sizeOf(start, lx.off))
	}
}

// scanBlockComment consumes a /* ... */ comment, which may span lines.
// Nesting is not supported; the first */ closes the comment.
func (lx *Lexer) scanBlockComment(line, column uint32, start int) {
	lx.off++ // the '*' after '/'
	for !lx.eof() {
		if lx.peek() == '*' && lx.peekAt(1) == '/' {
			lx.off += 2
			if lx.opts.KeepComments {
				lx.buf.AddTokenSpan(token.Comment, line, lx.line, column, sizeOf(start, lx.off))
			}
			return
		}
		lx.bump()
	}
	diag.Errorf(lx.rep, diag.LexUnterminatedBlockComment, line+1, column+1,
		"unterminated block comment")
	lx.buf.AddTokenSpan(token.Error, line, lx.line, column, sizeOf(start, lx.off))
}
