package token

import "coltc/internal/debug"

// Token is a 12-byte handle to one lexical occurrence: a packed
// lexeme+literal word, an info index, and the minting buffer's identity.
// It never owns memory; every index it carries resolves through the
// Buffer that minted it. The literal index means different things per
// lexeme: identifier
// table slot for Ident, payload array slot for payload literals, string
// table slot for StringLit, unused otherwise.
type Token struct {
	// word packs the lexeme in the low 8 bits and the literal index in
	// the high 24.
	word uint32
	// info indexes the parallel TokenInfo array.
	info uint32
	// owner is the minting buffer's identity; only stamped and checked
	// under the coltdebug tag.
	owner uint32
}

const maxLiteralIndex = 1 << 24

func newToken(l Lexeme, info, literal, owner uint32) Token {
	debug.Assert(literal < maxLiteralIndex, "literal index exceeds 24 bits")
	return Token{word: uint32(l) | literal<<8, info: info, owner: owner}
}

// Lexeme returns the token's category.
func (t Token) Lexeme() Lexeme { return Lexeme(t.word & 0xff) }

// InfoIndex returns the index of the token's TokenInfo record.
func (t Token) InfoIndex() uint32 { return t.info }

func (t Token) literalIndex() uint32 { return t.word >> 8 }

// TokenInfo is the position record of one token, stored in its own
// parallel array so the Token handle stays small.
type TokenInfo struct {
	// Column is the 0-based byte column of the lexeme start.
	Column uint32
	// Size is the byte length of the lexeme.
	Size uint32
	// LineStart is the 0-based first line of the lexeme.
	LineStart uint32
	// LineEnd is the 0-based last line; it differs from LineStart only
	// for multi-line literals and comments.
	LineEnd uint32
}

// IsSingleLine reports whether the lexeme spans a single line.
func (i TokenInfo) IsSingleLine() bool { return i.LineStart == i.LineEnd }

// TokenRange is a half-open [Start, End) interval over info indices,
// used to reconstruct the source span of a run of tokens. Construct it
// through Buffer.Range or Buffer.RangeFrom.
type TokenRange struct {
	start uint32
	end   uint32
	owner uint32
}

// Start returns the first info index of the range.
func (r TokenRange) Start() uint32 { return r.start }

// End returns the info index one past the last token of the range.
func (r TokenRange) End() uint32 { return r.end }

// Len returns the number of tokens covered.
func (r TokenRange) Len() uint32 { return r.end - r.start }
