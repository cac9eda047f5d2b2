package types

import (
	"fmt"

	"coltc/internal/debug"
	"coltc/internal/hashmap"
)

// Buffer hash-conses type variants: structurally equal variants always
// resolve to the same TypeToken, and tokens are assigned densely from
// zero in interning order. Comparing two interned types is a token
// comparison, never a structural walk.
type Buffer struct {
	set   *hashmap.IndexedSet[Variant]
	owner uint32
}

// NewBuffer returns an empty type buffer stamped with a fresh identity.
func NewBuffer() *Buffer {
	return &Buffer{
		set: hashmap.NewIndexedSet(Variant.Hash,
			func(a, b Variant) bool { return a == b }),
		owner: debug.NextOwnerID(),
	}
}

func (b *Buffer) owns(tkn TypeToken) {
	debug.Assert(tkn.owner == b.owner, "type token is not owned by this buffer")
}

// Intern returns the token of the stored variant structurally equal to v,
// storing v first if no such variant exists. Interning is idempotent.
func (b *Buffer) Intern(v Variant) TypeToken {
	index, _ := b.set.Insert(v)
	return TypeToken{index: index, owner: b.owner}
}

// Resolve returns the canonical stored variant for a token previously
// returned by Intern on this buffer. The pointer is valid until the next
// Intern. O(1).
func (b *Buffer) Resolve(tkn TypeToken) *Variant {
	b.owns(tkn)
	debug.Assert(int(tkn.index) < b.set.Len(), "type token out of range")
	return b.set.At(tkn.index)
}

// Len returns the number of distinct interned types.
func (b *Buffer) Len() int { return b.set.Len() }

// Error interns the error type.
func (b *Buffer) Error() TypeToken { return b.Intern(MakeError()) }

// Void interns the void type.
func (b *Buffer) Void() TypeToken { return b.Intern(MakeVoid()) }

// Builtin interns a builtin scalar type.
func (b *Buffer) Builtin(id BuiltinID) TypeToken {
	return b.Intern(MakeBuiltin(id))
}

// Ptr interns a pointer to constant memory of the type to.
func (b *Buffer) Ptr(to TypeToken) TypeToken {
	b.owns(to)
	return b.Intern(MakePtr(to))
}

// MutPtr interns a pointer to mutable memory of the type to.
func (b *Buffer) MutPtr(to TypeToken) TypeToken {
	b.owns(to)
	return b.Intern(MakeMutPtr(to))
}

// OpaquePtr interns the opaque pointer-to-const type.
func (b *Buffer) OpaquePtr() TypeToken { return b.Intern(MakeOpaquePtr()) }

// MutOpaquePtr interns the opaque pointer-to-mutable type.
func (b *Buffer) MutOpaquePtr() TypeToken { return b.Intern(MakeMutOpaquePtr()) }

// String renders an interned type for diagnostics, following pointee
// tokens through the buffer.
func (b *Buffer) String(tkn TypeToken) string {
	v := b.Resolve(tkn)
	switch v.kind {
	case KindError:
		return "<error-type>"
	case KindVoid:
		return "void"
	case KindBuiltin:
		return v.builtin.String()
	case KindPtr:
		return "ptr<" + b.String(v.pointee) + ">"
	case KindMutPtr:
		return "mut_ptr<" + b.String(v.pointee) + ">"
	case KindOpaquePtr:
		return "opaque_ptr"
	case KindMutOpaquePtr:
		return "mut_opaque_ptr"
	default:
		panic(fmt.Sprintf("unknown type kind %d", v.kind))
	}
}
