package hashmap

import (
	"fmt"

	"fortio.org/safecast"
)

// IndexedSet is a deduplicating value store handing out dense, stable
// indices. Values live in an append-only backing slice; the hash table
// keeps only {hash, index} pairs, so growing the table never moves a
// value and indices stay valid for the lifetime of the set.
type IndexedSet[T any] struct {
	hash func(T) uint64
	eq   func(T, T) bool

	meta  []sentinel
	slots []setSlot
	items []T
}

type setSlot struct {
	hash  uint64
	index uint32
}

// NewIndexedSet constructs an empty set using the provided hash and
// equality functions.
func NewIndexedSet[T any](hash func(T) uint64, eq func(T, T) bool) *IndexedSet[T] {
	return &IndexedSet[T]{
		hash:  hash,
		eq:    eq,
		meta:  newMetadata(initialCapacity),
		slots: make([]setSlot, initialCapacity),
	}
}

// Len returns the number of unique values inserted.
func (s *IndexedSet[T]) Len() int { return len(s.items) }

// Capacity returns the capacity of the internal hash table.
func (s *IndexedSet[T]) Capacity() int { return len(s.meta) }

// At returns a pointer to the value with the given insertion index.
// The pointer is valid until the next Insert.
func (s *IndexedSet[T]) At(index uint32) *T {
	return &s.items[index]
}

// Items returns the backing slice in insertion order. Callers must not
// mutate it.
func (s *IndexedSet[T]) Items() []T { return s.items }

// Insert adds value if no equal value is present and returns its dense
// index. The second result is false when an equal value already existed;
// the index then names the existing entry.
func (s *IndexedSet[T]) Insert(value T) (uint32, bool) {
	if s.willGrow() {
		s.grow(len(s.meta) + capacityStep)
	}
	h := s.hash(value)
	pos, found := s.findSlot(h, value)
	if found {
		return s.slots[pos].index, false
	}
	index, err := safecast.Conv[uint32](len(s.items))
	if err != nil {
		panic(fmt.Errorf("indexed set overflow: %w", err))
	}
	s.items = append(s.items, value)
	s.slots[pos] = setSlot{hash: h, index: index}
	s.meta[pos] = activeSentinel(h)
	return index, true
}

// Find returns the index of a value equal to value, if present.
func (s *IndexedSet[T]) Find(value T) (uint32, bool) {
	pos, found := s.findSlot(s.hash(value), value)
	if !found {
		return 0, false
	}
	return s.slots[pos].index, true
}

// Reset removes every value while keeping the allocated storage.
func (s *IndexedSet[T]) Reset() {
	s.items = s.items[:0]
	for i := range s.meta {
		s.meta[i] = sentinelEmpty
	}
}

// findSlot probes for value. On found it returns the active slot holding
// it; otherwise the slot an insertion should claim (the first tombstone
// seen, or the empty slot that ended the probe).
func (s *IndexedSet[T]) findSlot(hash uint64, value T) (pos int, found bool) {
	probe := int(hash % uint64(len(s.meta)))
	claim := -1
	for {
		m := s.meta[probe]
		switch {
		case m.isEmpty():
			if claim < 0 {
				claim = probe
			}
			return claim, false
		case m.isDeleted():
			if claim < 0 {
				claim = probe
			}
		case m.matches(hash) && s.eq(s.items[s.slots[probe].index], value):
			return probe, true
		}
		probe = advanceProbe(probe, len(s.meta))
	}
}

func (s *IndexedSet[T]) willGrow() bool {
	return float64(len(s.items)+1) > loadFactor*float64(len(s.meta))
}

// grow rehashes every active slot into a larger table. Only the table
// moves; the backing slice is untouched.
func (s *IndexedSet[T]) grow(capacity int) {
	meta := newMetadata(capacity)
	slots := make([]setSlot, capacity)
	for i, m := range s.meta {
		if !m.isActive() {
			continue
		}
		slot := s.slots[i]
		probe := int(slot.hash % uint64(capacity))
		for !meta[probe].isEmpty() {
			probe = advanceProbe(probe, capacity)
		}
		meta[probe] = activeSentinel(slot.hash)
		slots[probe] = slot
	}
	s.meta = meta
	s.slots = slots
}
