package hashmap

// Map is an open-addressing key to value map with tombstoning deletes.
// Entries are stored inline in the table, so unlike IndexedSet a grow
// moves them; only Get results copied out remain valid across inserts.
type Map[K, V any] struct {
	hash func(K) uint64
	eq   func(K, K) bool

	meta  []sentinel
	slots []mapSlot[K, V]
	count int
	// deleted counts tombstones. They occupy probe positions just like
	// actives, so they count toward the load factor; otherwise
	// insert/delete churn could fill every slot without ever triggering
	// a grow, and probing for an absent key would never hit an empty
	// sentinel.
	deleted int
}

type mapSlot[K, V any] struct {
	hash  uint64
	key   K
	value V
}

// NewMap constructs an empty map using the provided hash and equality
// functions over keys.
func NewMap[K, V any](hash func(K) uint64, eq func(K, K) bool) *Map[K, V] {
	return &Map[K, V]{
		hash:  hash,
		eq:    eq,
		meta:  newMetadata(initialCapacity),
		slots: make([]mapSlot[K, V], initialCapacity),
	}
}

// Len returns the number of live entries.
func (m *Map[K, V]) Len() int { return m.count }

// Capacity returns the capacity of the internal hash table.
func (m *Map[K, V]) Capacity() int { return len(m.meta) }

// Insert adds key with value if absent. The returned flag is false when
// the key already existed; the stored value is then left untouched.
func (m *Map[K, V]) Insert(key K, value V) bool {
	if m.willGrow() {
		m.grow(len(m.meta) + capacityStep)
	}
	h := m.hash(key)
	pos, found := m.findSlot(h, key)
	if found {
		return false
	}
	if m.meta[pos].isDeleted() {
		m.deleted--
	}
	m.slots[pos] = mapSlot[K, V]{hash: h, key: key, value: value}
	m.meta[pos] = activeSentinel(h)
	m.count++
	return true
}

// InsertOrAssign adds key with value, overwriting any existing entry.
// It returns true when the key was newly inserted.
func (m *Map[K, V]) InsertOrAssign(key K, value V) bool {
	if m.willGrow() {
		m.grow(len(m.meta) + capacityStep)
	}
	h := m.hash(key)
	pos, found := m.findSlot(h, key)
	if !found && m.meta[pos].isDeleted() {
		m.deleted--
	}
	m.slots[pos] = mapSlot[K, V]{hash: h, key: key, value: value}
	if !found {
		m.meta[pos] = activeSentinel(h)
		m.count++
	}
	return !found
}

// Get returns the value stored for key, if present.
func (m *Map[K, V]) Get(key K) (V, bool) {
	pos, found := m.findSlot(m.hash(key), key)
	if !found {
		var zero V
		return zero, false
	}
	return m.slots[pos].value, true
}

// Contains reports whether key is present.
func (m *Map[K, V]) Contains(key K) bool {
	_, found := m.findSlot(m.hash(key), key)
	return found
}

// Delete removes key, leaving a tombstone the probe sequence continues
// past. It returns false when the key was absent.
func (m *Map[K, V]) Delete(key K) bool {
	pos, found := m.findSlot(m.hash(key), key)
	if !found {
		return false
	}
	var zero mapSlot[K, V]
	m.slots[pos] = zero
	m.meta[pos] = sentinelDeleted
	m.count--
	m.deleted++
	return true
}

// Reset removes every entry while keeping the allocated storage.
func (m *Map[K, V]) Reset() {
	var zero mapSlot[K, V]
	for i := range m.meta {
		m.meta[i] = sentinelEmpty
		m.slots[i] = zero
	}
	m.count = 0
	m.deleted = 0
}

// findSlot probes for key. On found it returns the active slot holding
// it; otherwise the slot an insertion should claim (the first tombstone
// seen, or the empty slot that ended the probe).
func (m *Map[K, V]) findSlot(hash uint64, key K) (pos int, found bool) {
	probe := int(hash % uint64(len(m.meta)))
	claim := -1
	for {
		s := m.meta[probe]
		switch {
		case s.isEmpty():
			if claim < 0 {
				claim = probe
			}
			return claim, false
		case s.isDeleted():
			if claim < 0 {
				claim = probe
			}
		case s.matches(hash) && m.eq(m.slots[probe].key, key):
			return probe, true
		}
		probe = advanceProbe(probe, len(m.meta))
	}
}

func (m *Map[K, V]) willGrow() bool {
	return float64(m.count+m.deleted+1) > loadFactor*float64(len(m.meta))
}

// grow rehashes every active entry into a larger table, dropping
// accumulated tombstones in the process.
func (m *Map[K, V]) grow(capacity int) {
	meta := newMetadata(capacity)
	slots := make([]mapSlot[K, V], capacity)
	for i, s := range m.meta {
		if !s.isActive() {
			continue
		}
		slot := m.slots[i]
		probe := int(slot.hash % uint64(capacity))
		for !meta[probe].isEmpty() {
			probe = advanceProbe(probe, capacity)
		}
		meta[probe] = activeSentinel(slot.hash)
		slots[probe] = slot
	}
	m.meta = meta
	m.slots = slots
	m.deleted = 0
}
