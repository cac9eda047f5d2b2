package token

import "fmt"

var lexemeNames = [...]string{
	Plus:          "+",
	Minus:         "-",
	Star:          "*",
	Slash:         "/",
	Percent:       "%",
	Amp:           "&",
	Pipe:          "|",
	Caret:         "^",
	Shl:           "<<",
	Shr:           ">>",
	AndAnd:        "&&",
	OrOr:          "||",
	Lt:            "<",
	LtEq:          "<=",
	Gt:            ">",
	GtEq:          ">=",
	BangEq:        "!=",
	EqEq:          "==",
	Assign:        "=",
	PlusAssign:    "+=",
	MinusAssign:   "-=",
	StarAssign:    "*=",
	SlashAssign:   "/=",
	PercentAssign: "%=",
	AmpAssign:     "&=",
	PipeAssign:    "|=",
	CaretAssign:   "^=",
	ShlAssign:     "<<=",
	ShrAssign:     ">>=",
	Comma:         ",",
	Semicolon:     ";",
	EOF:           "<eof>",
	Error:         "<error>",
	RParen:        ")",
	LParen:        "(",
	Colon:         ":",
	ColonColon:    "::",
	RBrace:        "}",
	LBrace:        "{",
	Arrow:         "->",
	FatArrow:      "=>",
	PlusPlus:      "++",
	MinusMinus:    "--",
	Tilde:         "~",
	Bang:          "!",
	LBracket:      "[",
	RBracket:      "]",
	BoolLit:       "bool literal",
	CharLit:       "char literal",
	U8Lit:         "u8 literal",
	U16Lit:        "u16 literal",
	U32Lit:        "u32 literal",
	U64Lit:        "u64 literal",
	I8Lit:         "i8 literal",
	I16Lit:        "i16 literal",
	I32Lit:        "i32 literal",
	I64Lit:        "i64 literal",
	F32Lit:        "f32 literal",
	F64Lit:        "f64 literal",
	StringLit:     "string literal",
	KwIf:          "if",
	KwElif:        "elif",
	KwElse:        "else",
	KwFor:         "for",
	KwWhile:       "while",
	KwBreak:       "break",
	KwContinue:    "continue",
	KwVar:         "var",
	KwMut:         "mut",
	KwGlobal:      "global",
	KwVoid:        "void",
	KwBool:        "bool",
	KwChar:        "char",
	KwU8:          "u8",
	KwU16:         "u16",
	KwU32:         "u32",
	KwU64:         "u64",
	KwI8:          "i8",
	KwI16:         "i16",
	KwI32:         "i32",
	KwI64:         "i64",
	KwF32:         "f32",
	KwF64:         "f64",
	KwByte:        "BYTE",
	KwWord:        "WORD",
	KwDWord:       "DWORD",
	KwQWord:       "QWORD",
	KwPtr:         "ptr",
	KwMutPtr:      "mut_ptr",
	KwOpaque:      "opaque",
	KwFn:          "fn",
	KwReturn:      "return",
	KwExtern:      "extern",
	KwConst:       "const",
	KwIn:          "in",
	KwOut:         "out",
	KwInout:       "inout",
	KwMove:        "move",
	KwCopy:        "copy",
	KwTypeof:      "typeof",
	KwSizeof:      "sizeof",
	KwAlignof:     "alignof",
	KwAlignas:     "alignas",
	KwAs:          "as",
	KwBitAs:       "bit_as",
	KwUsing:       "using",
	KwPublic:      "public",
	KwPrivate:     "private",
	KwModule:      "module",
	KwSwitch:      "switch",
	KwCase:        "case",
	KwDefault:     "default",
	KwGoto:        "goto",
	Ident:         "identifier",
	Dot:           ".",
	Comment:       "comment",
}

func (l Lexeme) String() string {
	if int(l) < len(lexemeNames) && lexemeNames[l] != "" {
		return lexemeNames[l]
	}
	return fmt.Sprintf("Lexeme(%d)", uint8(l))
}
