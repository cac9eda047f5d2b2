package hashmap

import "math/bits"

// Scalar mixers used by the engine's callers to build 64-bit hashes.

// HashUint64 finalizes a 64-bit value (splitmix64 finalizer).
func HashUint64(v uint64) uint64 {
	v = (v ^ (v >> 30)) * 0xbf58476d1ce4e5b9
	v = (v ^ (v >> 27)) * 0x94d049bb133111eb
	return v ^ (v >> 31)
}

// HashUint32 mixes a 32-bit value.
func HashUint32(v uint32) uint64 {
	x := uint64(v)
	x = ((x >> 16) ^ x) * 0x45d9f3b
	x = ((x >> 16) ^ x) * 0x45d9f3b
	return (x >> 16) ^ x
}

// HashUint8 mixes a byte-sized discriminant.
func HashUint8(v uint8) uint64 {
	return HashUint64(uint64(v))
}

// HashBool hashes a boolean.
func HashBool(b bool) uint64 {
	if b {
		return 1231
	}
	return 1237
}

// HashString hashes a string with FNV-1a 64.
func HashString(s string) uint64 {
	const (
		offset64 = 14695981039346656037
		prime64  = 1099511628211
	)
	h := uint64(offset64)
	for i := 0; i < len(s); i++ {
		h ^= uint64(s[i])
		h *= prime64
	}
	return h
}

func xorshift(n uint64, i uint) uint64 {
	return n ^ (n >> i)
}

// distribute spreads a value's entropy across all 64 bits.
func distribute(n uint64) uint64 {
	const (
		p = 0x5555555555555555
		c = 17316035218449499591
	)
	return c * xorshift(p*xorshift(n, 32), 32)
}

// Combine folds hash v into seed. Call repeatedly with a zero seed to hash
// composite values field by field.
func Combine(seed, v uint64) uint64 {
	return bits.RotateLeft64(seed, 21) ^ distribute(v)
}
