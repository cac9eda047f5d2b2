package types

import "fmt"

// BuiltinID identifies a builtin scalar type. Declaration order is
// load-bearing: the classification helpers below are range checks.
type BuiltinID uint8

const (
	BuiltinBool BuiltinID = iota
	BuiltinChar
	BuiltinU8
	BuiltinU16
	BuiltinU32
	BuiltinU64
	BuiltinI8
	BuiltinI16
	BuiltinI32
	BuiltinI64
	BuiltinF32
	BuiltinF64
	// Raw byte blobs with no arithmetic meaning.
	BuiltinByte
	BuiltinWord
	BuiltinDWord
	BuiltinQWord
)

// IsUint reports whether id is u8..u64.
func IsUint(id BuiltinID) bool {
	return BuiltinU8 <= id && id <= BuiltinU64
}

// IsSint reports whether id is i8..i64.
func IsSint(id BuiltinID) bool {
	return BuiltinI8 <= id && id <= BuiltinI64
}

// IsIntegral reports whether id is any integer, signed or not.
func IsIntegral(id BuiltinID) bool {
	return BuiltinU8 <= id && id <= BuiltinI64
}

// IsFP reports whether id is f32 or f64.
func IsFP(id BuiltinID) bool {
	return id == BuiltinF32 || id == BuiltinF64
}

// IsBytes reports whether id is one of the raw blob kinds.
func IsBytes(id BuiltinID) bool {
	return BuiltinByte <= id && id <= BuiltinQWord
}

func (id BuiltinID) String() string {
	switch id {
	case BuiltinBool:
		return "bool"
	case BuiltinChar:
		return "char"
	case BuiltinU8:
		return "u8"
	case BuiltinU16:
		return "u16"
	case BuiltinU32:
		return "u32"
	case BuiltinU64:
		return "u64"
	case BuiltinI8:
		return "i8"
	case BuiltinI16:
		return "i16"
	case BuiltinI32:
		return "i32"
	case BuiltinI64:
		return "i64"
	case BuiltinF32:
		return "f32"
	case BuiltinF64:
		return "f64"
	case BuiltinByte:
		return "BYTE"
	case BuiltinWord:
		return "WORD"
	case BuiltinDWord:
		return "DWORD"
	case BuiltinQWord:
		return "QWORD"
	default:
		return fmt.Sprintf("BuiltinID(%d)", uint8(id))
	}
}
