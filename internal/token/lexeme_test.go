package token

import "testing"

func TestAssignClassification(t *testing.T) {
	if !IsAssign(Assign) || !IsAssign(PlusAssign) || !IsAssign(ShrAssign) {
		t.Fatalf("assignment run misclassified")
	}
	if IsAssign(EqEq) || IsAssign(Comma) {
		t.Fatalf("non-assignment classified as assignment")
	}
	if IsDirectAssign(Assign) {
		t.Fatalf("plain '=' is not a compound assignment")
	}
	if !IsDirectAssign(PlusAssign) || !IsDirectAssign(ShrAssign) {
		t.Fatalf("compound assignment misclassified")
	}
}

func TestDirectAssignToBinary(t *testing.T) {
	cases := map[Lexeme]Lexeme{
		PlusAssign:    Plus,
		MinusAssign:   Minus,
		StarAssign:    Star,
		SlashAssign:   Slash,
		PercentAssign: Percent,
		AmpAssign:     Amp,
		PipeAssign:    Pipe,
		CaretAssign:   Caret,
		ShlAssign:     Shl,
		ShrAssign:     Shr,
	}
	for compound, binary := range cases {
		if got := DirectAssignToBinary(compound); got != binary {
			t.Fatalf("%v -> %v, want %v", compound, got, binary)
		}
	}
}

func TestLiteralClassification(t *testing.T) {
	for l := BoolLit; l <= StringLit; l++ {
		if !IsLiteral(l) {
			t.Fatalf("%v should be a literal", l)
		}
	}
	if IsLiteral(Ident) || IsLiteral(KwIf) {
		t.Fatalf("non-literal classified as literal")
	}
	if !IsPayloadLiteral(BoolLit) || !IsPayloadLiteral(F64Lit) {
		t.Fatalf("payload literal misclassified")
	}
	if IsPayloadLiteral(StringLit) {
		t.Fatalf("string literals carry no 64-bit payload")
	}
}

func TestBuiltinTypeClassification(t *testing.T) {
	for l := KwVoid; l <= KwQWord; l++ {
		if !IsBuiltinType(l) {
			t.Fatalf("%v should be a builtin type keyword", l)
		}
	}
	// ptr, mut_ptr and opaque are pointer syntax, not types.
	if IsBuiltinType(KwPtr) || IsBuiltinType(KwMutPtr) || IsBuiltinType(KwOpaque) {
		t.Fatalf("pointer keywords are not builtin types")
	}
}

func TestKeywordLookup(t *testing.T) {
	for l := KwIf; l <= KwGoto; l++ {
		got, ok := LookupKeyword(l.String())
		if !ok || got != l {
			t.Fatalf("LookupKeyword(%q) = (%v, %v)", l.String(), got, ok)
		}
	}
	if _, ok := LookupKeyword("notakeyword"); ok {
		t.Fatalf("identifier recognized as keyword")
	}
	if _, ok := LookupKeyword("true"); ok {
		t.Fatalf("'true' must lex as a bool literal, not a keyword")
	}
	if _, ok := LookupKeyword("If"); ok {
		t.Fatalf("keywords are case-sensitive")
	}
}

func TestComparisonClassification(t *testing.T) {
	for _, l := range []Lexeme{OrOr, Lt, LtEq, Gt, GtEq, BangEq, EqEq} {
		if !IsComparison(l) {
			t.Fatalf("%v should be a comparison", l)
		}
	}
	if IsComparison(Assign) || IsComparison(Plus) {
		t.Fatalf("non-comparison classified as comparison")
	}
}
