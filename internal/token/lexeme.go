package token

import "coltc/internal/debug"

// Lexeme is the category of a lexical token. The declaration order is
// load-bearing: classification helpers below are range checks over
// contiguous runs (binary operators, assignments, literals, keywords,
// builtin type keywords). Keep new lexemes out of the middle of a run.
type Lexeme uint8

const (
	// Binary operators. Plus delimits the start of the unary-capable run.
	Plus    Lexeme = iota // +
	Minus                 // -
	Star                  // *
	Slash                 // /
	Percent               // %
	Amp                   // &
	Pipe                  // |
	Caret                 // ^
	Shl                   // <<
	Shr                   // >>
	AndAnd                // &&
	OrOr                  // ||
	Lt                    // <
	LtEq                  // <=
	Gt                    // >
	GtEq                  // >=
	BangEq                // !=
	EqEq                  // ==

	// Assignment operators. Assign must stay first; the compound forms
	// mirror the binary run above at a fixed offset (see
	// DirectAssignToBinary).
	Assign        // =
	PlusAssign    // +=
	MinusAssign   // -=
	StarAssign    // *=
	SlashAssign   // /=
	PercentAssign // %=
	AmpAssign     // &=
	PipeAssign    // |=
	CaretAssign   // ^=
	ShlAssign     // <<=
	ShrAssign     // >>=

	Comma      // ,
	Semicolon  // ;
	EOF        // end of file
	Error      // erroneous lexeme
	RParen     // )
	LParen     // (
	Colon      // :
	ColonColon // ::
	RBrace     // }
	LBrace     // {
	Arrow      // ->
	FatArrow   // =>
	PlusPlus   // ++
	MinusMinus // --
	Tilde      // ~
	Bang       // !
	LBracket   // [
	RBracket   // ]

	// Literal lexemes. All but StringLit carry a 64-bit payload in the
	// buffer's literal array, reinterpreted by the reader.
	BoolLit   // true/false
	CharLit   // '.'
	U8Lit     // NUMu8
	U16Lit    // NUMu16
	U32Lit    // NUMu32
	U64Lit    // NUMu64
	I8Lit     // NUMi8
	I16Lit    // NUMi16
	I32Lit    // NUMi32
	I64Lit    // NUMi64
	F32Lit    // REALf
	F64Lit    // REALd
	StringLit // "..."

	// Keywords.
	KwIf       // if
	KwElif     // elif
	KwElse     // else
	KwFor      // for
	KwWhile    // while
	KwBreak    // break
	KwContinue // continue
	KwVar      // var
	KwMut      // mut
	KwGlobal   // global

	// Builtin type keywords (contiguous; KwPtr and friends are not types).
	KwVoid   // void
	KwBool   // bool
	KwChar   // char
	KwU8     // u8
	KwU16    // u16
	KwU32    // u32
	KwU64    // u64
	KwI8     // i8
	KwI16    // i16
	KwI32    // i32
	KwI64    // i64
	KwF32    // f32
	KwF64    // f64
	KwByte   // BYTE
	KwWord   // WORD
	KwDWord  // DWORD
	KwQWord  // QWORD
	KwPtr    // ptr
	KwMutPtr // mut_ptr
	KwOpaque // opaque

	KwFn      // fn
	KwReturn  // return
	KwExtern  // extern
	KwConst   // const
	KwIn      // in
	KwOut     // out
	KwInout   // inout
	KwMove    // move
	KwCopy    // copy
	KwTypeof  // typeof
	KwSizeof  // sizeof
	KwAlignof // alignof
	KwAlignas // alignas
	KwAs      // as
	KwBitAs   // bit_as
	KwUsing   // using
	KwPublic  // public
	KwPrivate // private
	KwModule  // module
	KwSwitch  // switch
	KwCase    // case
	KwDefault // default
	KwGoto    // goto

	Ident   // any identifier
	Dot     // .
	Comment // // or /* ... */
)

// IsBinaryOp reports whether l can appear as a binary operator (the
// assignment run included, which simplifies Pratt parsing upstream).
func IsBinaryOp(l Lexeme) bool {
	return l <= ShrAssign
}

// IsUnaryOp reports whether l can appear as a unary operator.
func IsUnaryOp(l Lexeme) bool {
	return (Plus <= l && l <= Star) ||
		l == Amp || l == PlusPlus || l == MinusMinus || l == Tilde || l == Bang
}

// IsAssign reports whether l is any assignment operator (=, +=, ...).
func IsAssign(l Lexeme) bool {
	return Assign <= l && l <= ShrAssign
}

// IsDirectAssign reports whether l is a compound assignment (+=, -=, ...).
func IsDirectAssign(l Lexeme) bool {
	return Assign < l && l <= ShrAssign
}

// IsComparison reports whether l is a comparison operator (||, <, ==, ...).
func IsComparison(l Lexeme) bool {
	return AndAnd < l && l <= EqEq
}

// IsLiteral reports whether l is any literal lexeme.
func IsLiteral(l Lexeme) bool {
	return BoolLit <= l && l <= StringLit
}

// IsPayloadLiteral reports whether l is a literal whose value lives in the
// buffer's 64-bit payload array (every literal kind but strings).
func IsPayloadLiteral(l Lexeme) bool {
	return BoolLit <= l && l < StringLit
}

// IsKeyword reports whether l is a language keyword.
func IsKeyword(l Lexeme) bool {
	return KwIf <= l && l <= KwGoto
}

// IsBuiltinType reports whether l is a builtin type keyword (ptr, mut_ptr
// and opaque are pointer syntax, not types).
func IsBuiltinType(l Lexeme) bool {
	return KwVoid <= l && l <= KwQWord
}

// directAssignOffset is the distance between a compound assignment and its
// binary counterpart in the declaration order (PlusAssign - Plus).
const directAssignOffset = uint8(PlusAssign) - uint8(Plus)

// DirectAssignToBinary converts a compound assignment to the operator it
// applies: '+=' to '+'. Precondition: IsDirectAssign(l).
func DirectAssignToBinary(l Lexeme) Lexeme {
	debug.Assert(IsDirectAssign(l), "not a compound assignment lexeme")
	return Lexeme(uint8(l) - directAssignOffset)
}
