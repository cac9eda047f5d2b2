package hashmap

import (
	"fmt"
	"testing"
)

func newStringSet() *IndexedSet[string] {
	return NewIndexedSet(HashString, func(a, b string) bool { return a == b })
}

func TestIndexedSetDeduplicates(t *testing.T) {
	s := newStringSet()
	first, inserted := s.Insert("x")
	if !inserted {
		t.Fatalf("first insert should report insertion")
	}
	second, inserted := s.Insert("x")
	if inserted {
		t.Fatalf("second insert of equal value should not insert")
	}
	if first != second {
		t.Fatalf("indices differ: %d vs %d", first, second)
	}
	if s.Len() != 1 {
		t.Fatalf("expected 1 unique value, got %d", s.Len())
	}
}

func TestIndexedSetIndicesAreDenseAndStable(t *testing.T) {
	s := newStringSet()
	const n = 200 // enough to force several grows past the initial 16 slots
	for i := 0; i < n; i++ {
		idx, inserted := s.Insert(fmt.Sprintf("ident%d", i))
		if !inserted {
			t.Fatalf("value %d unexpectedly present", i)
		}
		if idx != uint32(i) {
			t.Fatalf("expected dense index %d, got %d", i, idx)
		}
	}
	if s.Capacity() <= initialCapacity {
		t.Fatalf("expected the table to have grown, capacity=%d", s.Capacity())
	}
	for i := 0; i < n; i++ {
		want := fmt.Sprintf("ident%d", i)
		if got := *s.At(uint32(i)); got != want {
			t.Fatalf("At(%d) = %q, want %q", i, got, want)
		}
		idx, ok := s.Find(want)
		if !ok || idx != uint32(i) {
			t.Fatalf("Find(%q) = (%d, %v), want (%d, true)", want, idx, ok, i)
		}
	}
}

func TestIndexedSetFindAbsent(t *testing.T) {
	s := newStringSet()
	s.Insert("present")
	if _, ok := s.Find("absent"); ok {
		t.Fatalf("found a value that was never inserted")
	}
}

func TestIndexedSetReset(t *testing.T) {
	s := newStringSet()
	s.Insert("a")
	s.Insert("b")
	s.Reset()
	if s.Len() != 0 {
		t.Fatalf("expected empty set after reset, len=%d", s.Len())
	}
	if _, ok := s.Find("a"); ok {
		t.Fatalf("value survived reset")
	}
	idx, inserted := s.Insert("c")
	if !inserted || idx != 0 {
		t.Fatalf("indices should restart at 0 after reset, got %d", idx)
	}
}
