package types

import "testing"

func TestInternIdempotent(t *testing.T) {
	b := NewBuffer()
	first := b.Intern(MakeBuiltin(BuiltinI32))
	second := b.Intern(MakeBuiltin(BuiltinI32))
	if first != second {
		t.Fatalf("interning the same type twice returned different tokens")
	}
	if got := *b.Resolve(first); got != MakeBuiltin(BuiltinI32) {
		t.Fatalf("resolve did not return the interned variant: %+v", got)
	}
	if b.Len() != 1 {
		t.Fatalf("buffer grew on a repeat intern: %d", b.Len())
	}
}

func TestTokensAreDense(t *testing.T) {
	b := NewBuffer()
	void := b.Void()
	i32 := b.Builtin(BuiltinI32)
	u32 := b.Builtin(BuiltinU32)
	if void.ID() != 0 || i32.ID() != 1 || u32.ID() != 2 {
		t.Fatalf("tokens not dense from zero: %d %d %d",
			void.ID(), i32.ID(), u32.ID())
	}
	if b.Builtin(BuiltinI32).ID() != 1 {
		t.Fatalf("re-intern changed a token")
	}
}

func TestInternManyRoundTrip(t *testing.T) {
	b := NewBuffer()
	var tokens []TypeToken
	var want []Variant

	for id := BuiltinBool; id <= BuiltinQWord; id++ {
		v := MakeBuiltin(id)
		tokens = append(tokens, b.Intern(v))
		want = append(want, v)
	}
	// Pointer chains force the interner past its initial capacity and
	// exercise stable storage across rehashes.
	base := tokens[0]
	for j := 0; j < 30; j++ {
		v := MakePtr(base)
		base = b.Intern(v)
		tokens = append(tokens, base)
		want = append(want, v)
	}

	for i, tkn := range tokens {
		if got := *b.Resolve(tkn); got != want[i] {
			t.Fatalf("token %d resolved to %+v, want %+v", i, got, want[i])
		}
	}
}

func TestPointerInterning(t *testing.T) {
	b := NewBuffer()
	i32 := b.Builtin(BuiltinI32)
	p1 := b.Ptr(i32)
	p2 := b.Ptr(i32)
	if p1 != p2 {
		t.Fatalf("pointer types should hash-cons")
	}
	if b.MutPtr(i32) == p1 {
		t.Fatalf("mut and const pointers must intern separately")
	}
	if got := b.Resolve(p1).Pointee(); got != i32 {
		t.Fatalf("pointee lost through interning")
	}
}

func TestOpaquePointers(t *testing.T) {
	b := NewBuffer()
	if b.OpaquePtr() != b.OpaquePtr() {
		t.Fatalf("opaque ptr should intern to one token")
	}
	if b.OpaquePtr() == b.MutOpaquePtr() {
		t.Fatalf("opaque const and mut pointers must differ")
	}
}

func TestTypeString(t *testing.T) {
	b := NewBuffer()
	i32 := b.Builtin(BuiltinI32)
	ptr := b.MutPtr(b.Ptr(i32))
	if got := b.String(ptr); got != "mut_ptr<ptr<i32>>" {
		t.Fatalf("String = %q", got)
	}
	if got := b.String(b.Error()); got != "<error-type>" {
		t.Fatalf("String(error) = %q", got)
	}
}
