package hashmap

// sentinel encodes the state of one table slot. Active sentinels keep the
// top bit clear and hold the low 7 bits of the entry's hash as a cheap
// presence filter.
type sentinel uint8

const (
	sentinelEmpty   sentinel = 0b10000000
	sentinelDeleted sentinel = 0b10000001
)

func activeSentinel(hash uint64) sentinel {
	return sentinel(hash & 0b01111111)
}

func (s sentinel) isActive() bool {
	return s&0b10000000 == 0
}

func (s sentinel) isEmpty() bool {
	return s == sentinelEmpty
}

func (s sentinel) isDeleted() bool {
	return s == sentinelDeleted
}

// matches compares the cached signature against the low 7 bits of hash.
// Only meaningful for active sentinels.
func (s sentinel) matches(hash uint64) bool {
	return s == sentinel(hash&0b01111111)
}

// advanceProbe increments a probe position, wrapping to 0 at capacity
// without a modulo.
func advanceProbe(pos, capacity int) int {
	pos++
	if pos == capacity {
		return 0
	}
	return pos
}

func newMetadata(capacity int) []sentinel {
	meta := make([]sentinel, capacity)
	for i := range meta {
		meta[i] = sentinelEmpty
	}
	return meta
}

const (
	initialCapacity = 16
	capacityStep    = 16
	loadFactor      = 0.70
)
