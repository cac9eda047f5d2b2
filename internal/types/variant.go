package types

import (
	"fmt"

	"coltc/internal/debug"
	"coltc/internal/hashmap"
)

// Kind enumerates the closed set of type shapes.
type Kind uint8

const (
	// KindError marks an invalid or unresolvable type. It compares
	// IsSameAs-equal to everything so one bad type does not cascade into
	// a chain of spurious mismatch diagnostics.
	KindError Kind = iota
	KindBuiltin
	KindVoid
	// KindPtr and KindMutPtr carry the pointee's TypeToken.
	KindPtr
	KindMutPtr
	// Opaque pointers point at unknown memory and carry no pointee.
	KindOpaquePtr
	KindMutOpaquePtr
)

func (k Kind) String() string {
	switch k {
	case KindError:
		return "error"
	case KindBuiltin:
		return "builtin"
	case KindVoid:
		return "void"
	case KindPtr:
		return "ptr"
	case KindMutPtr:
		return "mut ptr"
	case KindOpaquePtr:
		return "opaque ptr"
	case KindMutOpaquePtr:
		return "mut opaque ptr"
	default:
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
}

// TypeToken is the stable handle assigned to an interned type: a dense
// index into the owning buffer's storage, stamped with the buffer's
// identity in coltdebug builds. Compare tokens with ==; two types are
// structurally equal exactly when their tokens from the same buffer are.
type TypeToken struct {
	index uint32
	owner uint32
}

// ID returns the dense index of the interned type.
func (t TypeToken) ID() uint32 { return t.index }

// Variant is a fixed-size value holding exactly one type shape. The
// discriminant is stored once, next to the payload fields; constructors
// zero the fields the shape does not use so == stays structural.
type Variant struct {
	kind    Kind
	builtin BuiltinID // valid when kind == KindBuiltin
	pointee TypeToken // valid when kind is KindPtr or KindMutPtr
}

// MakeError constructs the error type.
func MakeError() Variant { return Variant{kind: KindError} }

// MakeVoid constructs the void type.
func MakeVoid() Variant { return Variant{kind: KindVoid} }

// MakeBuiltin constructs a builtin scalar type.
func MakeBuiltin(id BuiltinID) Variant {
	return Variant{kind: KindBuiltin, builtin: id}
}

// MakePtr constructs a pointer to constant memory of the type to.
func MakePtr(to TypeToken) Variant {
	return Variant{kind: KindPtr, pointee: to}
}

// MakeMutPtr constructs a pointer to mutable memory of the type to.
func MakeMutPtr(to TypeToken) Variant {
	return Variant{kind: KindMutPtr, pointee: to}
}

// MakeOpaquePtr constructs the opaque pointer-to-const type.
func MakeOpaquePtr() Variant { return Variant{kind: KindOpaquePtr} }

// MakeMutOpaquePtr constructs the opaque pointer-to-mutable type.
func MakeMutOpaquePtr() Variant { return Variant{kind: KindMutOpaquePtr} }

// Kind returns the shape discriminant.
func (v Variant) Kind() Kind { return v.kind }

// IsError reports whether v is the error type.
func (v Variant) IsError() bool { return v.kind == KindError }

// IsVoid reports whether v is the void type.
func (v Variant) IsVoid() bool { return v.kind == KindVoid }

// IsBuiltin reports whether v is a builtin scalar.
func (v Variant) IsBuiltin() bool { return v.kind == KindBuiltin }

// IsAnyPtr reports whether v is any pointer shape, opaque included.
func (v Variant) IsAnyPtr() bool {
	return v.kind == KindPtr || v.kind == KindMutPtr ||
		v.kind == KindOpaquePtr || v.kind == KindMutOpaquePtr
}

// IsMutPtr reports whether v points to mutable memory.
func (v Variant) IsMutPtr() bool {
	return v.kind == KindMutPtr || v.kind == KindMutOpaquePtr
}

// BuiltinID returns the scalar kind. Precondition: IsBuiltin.
func (v Variant) BuiltinID() BuiltinID {
	debug.Assert(v.kind == KindBuiltin, "type is not a builtin")
	return v.builtin
}

// Pointee returns the pointed-to type. Precondition: KindPtr or
// KindMutPtr (opaque pointers have no pointee).
func (v Variant) Pointee() TypeToken {
	debug.Assert(v.kind == KindPtr || v.kind == KindMutPtr,
		"type has no pointee")
	return v.pointee
}

// Hash returns the structural hash of the variant. The switch is
// exhaustive over Kind; each shape folds the discriminant with the
// payload fields it actually uses.
func (v Variant) Hash() uint64 {
	switch v.kind {
	case KindError, KindVoid, KindOpaquePtr, KindMutOpaquePtr:
		return hashmap.HashUint8(uint8(v.kind))
	case KindBuiltin:
		seed := hashmap.Combine(0, hashmap.HashUint8(uint8(v.kind)))
		return hashmap.Combine(seed, hashmap.HashUint8(uint8(v.builtin)))
	case KindPtr, KindMutPtr:
		seed := hashmap.Combine(0, hashmap.HashUint8(uint8(v.kind)))
		return hashmap.Combine(seed, hashmap.HashUint32(v.pointee.index))
	default:
		panic(fmt.Sprintf("unknown type kind %d", v.kind))
	}
}

// IsSameAs compares with error absorption: the error type is considered
// the same as anything, otherwise structural equality applies.
func (v Variant) IsSameAs(o Variant) bool {
	if v.kind == KindError || o.kind == KindError {
		return true
	}
	return v == o
}
