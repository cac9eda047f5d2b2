package token

import "coltc/internal/debug"

// SourceInfo is a reconstructed source span: the 1-based inclusive line
// range a run of tokens covers, the exact text from the first token's
// start column to the last token's end column, and the full covering
// line(s). Both strings are slices into the buffer's source text.
type SourceInfo struct {
	LineStart uint32
	LineEnd   uint32
	Expr      string
	Line      string
}

// Range builds the half-open range [start.InfoIndex(), end.InfoIndex())
// covering start up to but excluding end. Precondition:
// start.InfoIndex() <= end.InfoIndex(), both minted by this buffer.
func (b *Buffer) Range(start, end Token) TokenRange {
	b.owns(start)
	b.owns(end)
	debug.Assert(start.info <= end.info, "range ends before it starts")
	return TokenRange{start: start.info, end: end.info, owner: b.owner}
}

// RangeFrom builds the trivial range covering a single EOF token, used to
// close a token stream. Precondition: tkn is the EOF token.
func (b *Buffer) RangeFrom(tkn Token) TokenRange {
	b.owns(tkn)
	debug.Assert(tkn.Lexeme() == EOF, "single-token ranges are EOF only")
	return TokenRange{start: tkn.info, end: tkn.info + 1, owner: b.owner}
}

// SourceInfo reconstructs the span of a single token.
func (b *Buffer) SourceInfo(tkn Token) SourceInfo {
	b.owns(tkn)
	return b.makeSourceInfo(b.infos[tkn.info], b.infos[tkn.info])
}

// SourceInfoRange reconstructs the span covered by a non-empty range.
func (b *Buffer) SourceInfoRange(r TokenRange) SourceInfo {
	b.ownsRange(r)
	debug.Assert(r.start < r.end, "cannot reconstruct an empty range")
	return b.makeSourceInfo(b.infos[r.start], b.infos[r.end-1])
}

// makeSourceInfo derives the span by offset arithmetic over the line
// table: lines are subslices of one contiguous source, so slicing across
// line boundaries is well-defined.
func (b *Buffer) makeSourceInfo(first, last TokenInfo) SourceInfo {
	exprStart := b.lineOffsets[first.LineStart] + first.Column
	exprEnd := b.lineOffsets[last.LineStart] + last.Column + last.Size

	lineStart := b.lineOffsets[first.LineStart]
	lineEnd := b.lineOffsets[last.LineEnd] + uint32(len(b.lines[last.LineEnd]))

	return SourceInfo{
		LineStart: first.LineStart + 1,
		LineEnd:   last.LineEnd + 1,
		Expr:      b.src[exprStart:exprEnd],
		Line:      b.src[lineStart:lineEnd],
	}
}
