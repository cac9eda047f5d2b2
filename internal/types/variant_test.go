package types

import "testing"

func TestBuiltinDistinctness(t *testing.T) {
	i32 := MakeBuiltin(BuiltinI32)
	u32 := MakeBuiltin(BuiltinU32)
	if i32 == u32 {
		t.Fatalf("i32 and u32 must be distinct")
	}
	if i32 != MakeBuiltin(BuiltinI32) {
		t.Fatalf("equal builtins must compare equal")
	}
	if i32.Hash() == u32.Hash() {
		t.Fatalf("distinct builtins should not collide on the full hash")
	}
}

func TestErrorAbsorption(t *testing.T) {
	err := MakeError()
	others := []Variant{
		MakeError(),
		MakeVoid(),
		MakeBuiltin(BuiltinI32),
		MakeOpaquePtr(),
		MakeMutOpaquePtr(),
	}
	for _, o := range others {
		if !err.IsSameAs(o) || !o.IsSameAs(err) {
			t.Fatalf("error type must absorb %v", o.Kind())
		}
	}
	if MakeBuiltin(BuiltinI32).IsSameAs(MakeBuiltin(BuiltinU32)) {
		t.Fatalf("IsSameAs must fall back to structural equality")
	}
}

func TestClassification(t *testing.T) {
	b := NewBuffer()
	i32 := b.Builtin(BuiltinI32)

	cases := []struct {
		v                            Variant
		isErr, isVoid, isBuiltin     bool
		isAnyPtr, isMut              bool
	}{
		{MakeError(), true, false, false, false, false},
		{MakeVoid(), false, true, false, false, false},
		{MakeBuiltin(BuiltinBool), false, false, true, false, false},
		{MakePtr(i32), false, false, false, true, false},
		{MakeMutPtr(i32), false, false, false, true, true},
		{MakeOpaquePtr(), false, false, false, true, false},
		{MakeMutOpaquePtr(), false, false, false, true, true},
	}
	for _, c := range cases {
		if c.v.IsError() != c.isErr || c.v.IsVoid() != c.isVoid ||
			c.v.IsBuiltin() != c.isBuiltin || c.v.IsAnyPtr() != c.isAnyPtr ||
			c.v.IsMutPtr() != c.isMut {
			t.Fatalf("%v misclassified", c.v.Kind())
		}
	}
}

func TestPointerIdentity(t *testing.T) {
	b := NewBuffer()
	i32 := b.Builtin(BuiltinI32)
	u8 := b.Builtin(BuiltinU8)

	if MakePtr(i32) == MakePtr(u8) {
		t.Fatalf("pointers to different types must differ")
	}
	if MakePtr(i32) == MakeMutPtr(i32) {
		t.Fatalf("const and mut pointers must differ")
	}
	if MakePtr(i32) != MakePtr(i32) {
		t.Fatalf("pointers to the same type must compare equal")
	}
	if got := MakePtr(i32).Pointee(); got != i32 {
		t.Fatalf("pointee did not round-trip")
	}
}

func TestBuiltinIDRanges(t *testing.T) {
	if !IsUint(BuiltinU8) || !IsUint(BuiltinU64) || IsUint(BuiltinI8) {
		t.Fatalf("unsigned range misclassified")
	}
	if !IsSint(BuiltinI8) || !IsSint(BuiltinI64) || IsSint(BuiltinU64) {
		t.Fatalf("signed range misclassified")
	}
	if !IsIntegral(BuiltinU8) || !IsIntegral(BuiltinI64) || IsIntegral(BuiltinF32) {
		t.Fatalf("integral range misclassified")
	}
	if !IsFP(BuiltinF32) || !IsFP(BuiltinF64) || IsFP(BuiltinI32) {
		t.Fatalf("floating range misclassified")
	}
	if !IsBytes(BuiltinByte) || !IsBytes(BuiltinQWord) || IsBytes(BuiltinBool) {
		t.Fatalf("blob range misclassified")
	}
}
