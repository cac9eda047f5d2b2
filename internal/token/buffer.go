package token

import (
	"fmt"
	"math"

	"fortio.org/safecast"

	"coltc/internal/debug"
	"coltc/internal/hashmap"
)

// Buffer is the structure-of-arrays token store filled by one scanning
// pass. All arrays are append-only; Reset is the only removal. The token
// and info arrays grow in lockstep. A Buffer must not be copied once
// tokens have been handed out; move it to later phases instead.
type Buffer struct {
	// src is the contiguous source text the line slices point into.
	src string
	// lines are subslices of src, one per source line, no copies.
	lines []string
	// lineOffsets holds each line's byte offset in src.
	lineOffsets []uint32
	// nextLine is the offset the next AddLine will record.
	nextLine uint32

	// strLiterals owns one string per string literal.
	strLiterals []string
	// numLiterals stores every non-string literal as a raw 64-bit
	// pattern, reinterpreted at read time by the token's lexeme.
	numLiterals []uint64

	infos  []TokenInfo
	tokens []Token

	// idents deduplicates identifier spellings; repeat spellings get the
	// same stable index.
	idents *hashmap.IndexedSet[string]

	owner uint32
}

// NewBuffer returns an empty buffer stamped with a fresh identity.
func NewBuffer() *Buffer {
	return &Buffer{
		idents: hashmap.NewIndexedSet(hashmap.HashString,
			func(a, b string) bool { return a == b }),
		owner: debug.NextOwnerID(),
	}
}

// owns aborts (debug builds only) when tkn was minted by another buffer.
func (b *Buffer) owns(tkn Token) {
	debug.Assert(tkn.owner == b.owner, "token is not owned by this buffer")
}

func (b *Buffer) ownsRange(r TokenRange) {
	debug.Assert(r.owner == b.owner, "token range is not owned by this buffer")
}

// SetSource installs the contiguous source text subsequent AddLine calls
// slice into. It discards previously recorded lines.
func (b *Buffer) SetSource(src string) {
	b.src = src
	b.lines = b.lines[:0]
	b.lineOffsets = b.lineOffsets[:0]
	b.nextLine = 0
}

// AddLine appends the next source line. Lines must be fed in order and
// must be subslices of the text given to SetSource; each line is assumed
// to be terminated by one newline byte in src.
func (b *Buffer) AddLine(line string) {
	debug.Assert(int(b.nextLine)+len(line) <= len(b.src),
		"line does not fit the source text")
	b.lines = append(b.lines, line)
	b.lineOffsets = append(b.lineOffsets, b.nextLine)
	next, err := safecast.Conv[uint32](int(b.nextLine) + len(line) + 1)
	if err != nil {
		panic(fmt.Errorf("line offset overflow: %w", err))
	}
	b.nextLine = next
}

func (b *Buffer) push(l Lexeme, literal uint32, info TokenInfo) {
	infoIndex, err := safecast.Conv[uint32](len(b.infos))
	if err != nil {
		panic(fmt.Errorf("token count overflow: %w", err))
	}
	b.tokens = append(b.tokens, newToken(l, infoIndex, literal, b.owner))
	b.infos = append(b.infos, info)
}

// AddToken appends a plain token (operator, punctuation, keyword, EOF,
// Error) with its position.
func (b *Buffer) AddToken(l Lexeme, line, column, size uint32) {
	b.push(l, 0, TokenInfo{Column: column, Size: size, LineStart: line, LineEnd: line})
}

// AddTokenSpan appends a token covering [lineStart, lineEnd], used for
// multi-line comments.
func (b *Buffer) AddTokenSpan(l Lexeme, lineStart, lineEnd, column, size uint32) {
	debug.Assert(lineStart <= lineEnd, "token span ends before it starts")
	b.push(l, 0, TokenInfo{Column: column, Size: size, LineStart: lineStart, LineEnd: lineEnd})
}

// AddIdentifier appends an identifier token, interning its spelling, and
// returns the spelling's stable index. Appending the same spelling twice
// yields the same index.
func (b *Buffer) AddIdentifier(ident string, line, column, size uint32) uint32 {
	index, _ := b.idents.Insert(ident)
	b.push(Ident, index, TokenInfo{Column: column, Size: size, LineStart: line, LineEnd: line})
	return index
}

// AddLiteral appends a non-string literal token carrying value as a raw
// 64-bit pattern. The lexeme decides how readers reinterpret it.
func (b *Buffer) AddLiteral(value uint64, l Lexeme, line, column, size uint32) {
	debug.Assert(IsPayloadLiteral(l), "lexeme does not carry a 64-bit payload")
	index, err := safecast.Conv[uint32](len(b.numLiterals))
	if err != nil {
		panic(fmt.Errorf("literal count overflow: %w", err))
	}
	b.numLiterals = append(b.numLiterals, value)
	b.push(l, index, TokenInfo{Column: column, Size: size, LineStart: line, LineEnd: line})
}

// AddString appends a string literal token owning a copy of value.
func (b *Buffer) AddString(value string, line, column, size uint32) {
	index, err := safecast.Conv[uint32](len(b.strLiterals))
	if err != nil {
		panic(fmt.Errorf("string literal count overflow: %w", err))
	}
	b.strLiterals = append(b.strLiterals, value)
	b.push(StringLit, index, TokenInfo{Column: column, Size: size, LineStart: line, LineEnd: line})
}

// Reset clears every array for an independent scan, keeping allocations
// and the buffer identity.
func (b *Buffer) Reset() {
	b.src = ""
	b.lines = b.lines[:0]
	b.lineOffsets = b.lineOffsets[:0]
	b.nextLine = 0
	b.strLiterals = b.strLiterals[:0]
	b.numLiterals = b.numLiterals[:0]
	b.infos = b.infos[:0]
	b.tokens = b.tokens[:0]
	b.idents.Reset()
}

// Tokens returns the token stream in append order.
func (b *Buffer) Tokens() []Token { return b.tokens }

// Lines returns the recorded source lines.
func (b *Buffer) Lines() []string { return b.lines }

// Len returns the number of tokens.
func (b *Buffer) Len() int { return len(b.tokens) }

// IdentifierCount returns the number of distinct identifier spellings.
func (b *Buffer) IdentifierCount() int { return b.idents.Len() }

// Info returns the token's position record.
func (b *Buffer) Info(tkn Token) TokenInfo {
	b.owns(tkn)
	return b.infos[tkn.info]
}

// Line returns the 1-based line the token starts on.
func (b *Buffer) Line(tkn Token) uint32 {
	b.owns(tkn)
	return b.infos[tkn.info].LineStart + 1
}

// Column returns the token's 1-based column.
func (b *Buffer) Column(tkn Token) uint32 {
	b.owns(tkn)
	return b.infos[tkn.info].Column + 1
}

// Size returns the token's byte length.
func (b *Buffer) Size(tkn Token) uint32 {
	b.owns(tkn)
	return b.infos[tkn.info].Size
}

// LineText returns the full line the token starts on.
func (b *Buffer) LineText(tkn Token) string {
	b.owns(tkn)
	return b.lines[b.infos[tkn.info].LineStart]
}

// Identifier returns the interned spelling of an identifier token.
func (b *Buffer) Identifier(tkn Token) string {
	b.owns(tkn)
	debug.Assert(tkn.Lexeme() == Ident, "token is not an identifier")
	return *b.idents.At(tkn.literalIndex())
}

// Literal returns the raw 64-bit payload of a non-string literal token.
func (b *Buffer) Literal(tkn Token) uint64 {
	b.owns(tkn)
	debug.Assert(IsPayloadLiteral(tkn.Lexeme()), "token has no 64-bit payload")
	return b.numLiterals[tkn.literalIndex()]
}

// BoolLiteral decodes a BoolLit payload.
func (b *Buffer) BoolLiteral(tkn Token) bool {
	debug.Assert(tkn.Lexeme() == BoolLit, "token is not a bool literal")
	return b.Literal(tkn) != 0
}

// CharLiteral decodes a CharLit payload.
func (b *Buffer) CharLiteral(tkn Token) rune {
	debug.Assert(tkn.Lexeme() == CharLit, "token is not a char literal")
	return rune(b.Literal(tkn))
}

// Float32Literal decodes an F32Lit payload.
func (b *Buffer) Float32Literal(tkn Token) float32 {
	debug.Assert(tkn.Lexeme() == F32Lit, "token is not an f32 literal")
	return math.Float32frombits(uint32(b.Literal(tkn)))
}

// Float64Literal decodes an F64Lit payload.
func (b *Buffer) Float64Literal(tkn Token) float64 {
	debug.Assert(tkn.Lexeme() == F64Lit, "token is not an f64 literal")
	return math.Float64frombits(b.Literal(tkn))
}

// StringLiteral returns the owned value of a string literal token.
func (b *Buffer) StringLiteral(tkn Token) string {
	b.owns(tkn)
	debug.Assert(tkn.Lexeme() == StringLit, "token is not a string literal")
	return b.strLiterals[tkn.literalIndex()]
}
