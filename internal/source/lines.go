package source

import "coltc/internal/token"

// SplitLines installs the file's content as the buffer's backing text and
// appends every line to it. Lines are subslices of Content (never
// copies), which is what makes cross-line span reconstruction in the
// buffer plain offset arithmetic. The trailing line is always appended,
// even when the content ends in a newline and it is empty: the EOF token
// lands on that line, and span reconstruction over it must resolve.
func SplitLines(f *File, buf *token.Buffer) {
	buf.SetSource(f.Content)
	src := f.Content
	start := 0
	for i := 0; i < len(src); i++ {
		if src[i] == '\n' {
			buf.AddLine(src[start:i])
			start = i + 1
		}
	}
	buf.AddLine(src[start:])
}

// LineCount returns the number of lines SplitLines would produce:
// one per newline, plus the trailing line.
func LineCount(f *File) int {
	n := 1
	src := f.Content
	for i := 0; i < len(src); i++ {
		if src[i] == '\n' {
			n++
		}
	}
	return n
}
