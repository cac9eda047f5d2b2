// Package token defines the lexical token store of the compiler.
// Invariants:
//   - A Token is a 12-byte handle, never an owner: an 8-bit lexeme, a
//     24-bit literal index whose meaning depends on the lexeme, a 32-bit
//     index into the parallel info array, and the 32-bit identity of the
//     minting buffer.
//   - The token and info arrays grow in lockstep; every token's info
//     lives at its info index.
//   - Indices recorded on a token are only valid against the buffer that
//     produced them; `coltdebug` builds abort on cross-buffer use.
//   - Lexeme ordering is significant: literals, keywords, builtin type
//     keywords and assignment operators occupy contiguous ranges so that
//     classification is a pair of comparisons, not a table lookup.
//   - Lines are subslices of one backing source string, so span
//     reconstruction across line boundaries is plain offset arithmetic.
package token
