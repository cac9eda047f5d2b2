package token

import "coltc/internal/hashmap"

// keywords maps spellings to keyword lexemes. Keyword lookup is the
// hottest classifier in the scanner; the 7-bit signature filter rejects
// most non-keywords on the first probe. "true" and "false" are not in
// the table; the lexer turns them into BoolLit payloads.
var keywords = buildKeywordTable()

func buildKeywordTable() *hashmap.Map[string, Lexeme] {
	m := hashmap.NewMap[string, Lexeme](
		hashmap.HashString,
		func(a, b string) bool { return a == b },
	)
	for l := KwIf; l <= KwGoto; l++ {
		m.Insert(lexemeNames[l], l)
	}
	return m
}

// LookupKeyword returns the keyword lexeme for a spelling. Matching is
// exact and case-sensitive; BYTE, WORD, DWORD and QWORD are uppercase.
func LookupKeyword(ident string) (Lexeme, bool) {
	return keywords.Get(ident)
}
