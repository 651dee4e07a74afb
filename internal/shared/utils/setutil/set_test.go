package setutil

import (
	"sort"
	"testing"
)

func TestSetAddHas(t *testing.T) {
	s := NewSet[uint]()

	if s.Has(1) {
		t.Error("empty set should not contain 1")
	}

	s.Add(1)
	s.Add(2)
	s.Add(2)

	if !s.Has(1) || !s.Has(2) {
		t.Error("set should contain added values")
	}
	if s.Has(3) {
		t.Error("set should not contain 3")
	}
	if s.Len() != 2 {
		t.Errorf("Len() = %d, want 2", s.Len())
	}
}

func TestFromSlice(t *testing.T) {
	s := FromSlice([]uint{5, 3, 5, 7})

	if s.Len() != 3 {
		t.Errorf("Len() = %d, want 3 (duplicates collapsed)", s.Len())
	}

	got := s.ToSlice()
	sort.Slice(got, func(i, j int) bool { return got[i] < got[j] })

	want := []uint{3, 5, 7}
	if len(got) != len(want) {
		t.Fatalf("ToSlice() length = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("ToSlice()[%d] = %d, want %d", i, got[i], want[i])
		}
	}
}

func TestFromSliceEmpty(t *testing.T) {
	s := FromSlice([]string{})

	if s.Len() != 0 {
		t.Errorf("Len() = %d, want 0", s.Len())
	}
	if got := s.ToSlice(); len(got) != 0 {
		t.Errorf("ToSlice() = %v, want empty", got)
	}
}
