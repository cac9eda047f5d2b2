// Package source holds read-only source text and the line-splitting
// facility that feeds the token buffer. Content is normalized on load
// (BOM stripped, CRLF folded to LF) so that every line is terminated by
// a single newline byte and offset arithmetic over lines stays exact.
package source

import (
	"os"
	"path/filepath"
)

// File is one immutable source text.
type File struct {
	// Path is the cleaned, slash-normalized origin of the content;
	// virtual files keep the name they were given.
	Path string
	// Content is the normalized text. Never mutated after construction.
	Content string
	// HadBOM records that a UTF-8 BOM was stripped on load.
	HadBOM bool
	// HadCRLF records that CRLF line endings were folded on load.
	HadCRLF bool
}

// Load reads and normalizes a file from disk.
func Load(path string) (*File, error) {
	// #nosec G304 -- path is provided by the caller
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	content, hadBOM := removeBOM(content)
	content, hadCRLF := normalizeCRLF(content)
	return &File{
		Path:    filepath.ToSlash(filepath.Clean(path)),
		Content: string(content),
		HadBOM:  hadBOM,
		HadCRLF: hadCRLF,
	}, nil
}

// FromString wraps in-memory text (tests, stdin) as a File. The text is
// normalized the same way Load normalizes disk content.
func FromString(name, text string) *File {
	content, hadBOM := removeBOM([]byte(text))
	content, hadCRLF := normalizeCRLF(content)
	return &File{
		Path:    name,
		Content: string(content),
		HadBOM:  hadBOM,
		HadCRLF: hadCRLF,
	}
}

// removeBOM strips a leading UTF-8 byte order mark.
func removeBOM(content []byte) ([]byte, bool) {
	if len(content) >= 3 &&
		content[0] == 0xEF && content[1] == 0xBB && content[2] == 0xBF {
		return content[3:], true
	}
	return content, false
}

// normalizeCRLF folds every \r\n into \n, leaving lone \r untouched.
func normalizeCRLF(content []byte) ([]byte, bool) {
	hasCRLF := false
	for i := 0; i+1 < len(content); i++ {
		if content[i] == '\r' && content[i+1] == '\n' {
			hasCRLF = true
			break
		}
	}
	if !hasCRLF {
		return content, false
	}
	out := make([]byte, 0, len(content))
	for i := 0; i < len(content); i++ {
		if content[i] == '\r' && i+1 < len(content) && content[i+1] == '\n' {
			continue
		}
		out = append(out, content[i])
	}
	return out, true
}
