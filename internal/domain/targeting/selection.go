package targeting

import (
	"sort"

	"github.com/tiffin-hq/tiffin/internal/shared/utils/setutil"
)

// Selection is the set of employee ids the admin has checked. It is never
// mutated by a filter change; the visible/invisible split is a pure view
// derived from the current pipeline result, so tightening a filter cannot
// silently drop someone the admin already selected.
type Selection struct {
	ids map[uint]struct{}
}

// NewSelection builds a selection from employee ids.
func NewSelection(ids []uint) Selection {
	s := Selection{ids: make(map[uint]struct{}, len(ids))}
	for _, id := range ids {
		s.ids[id] = struct{}{}
	}
	return s
}

// Add returns a new selection with the id included.
func (s Selection) Add(id uint) Selection {
	return NewSelection(append(s.IDs(), id))
}

// Remove returns a new selection without the id.
func (s Selection) Remove(id uint) Selection {
	ids := make([]uint, 0, len(s.ids))
	for v := range s.ids {
		if v != id {
			ids = append(ids, v)
		}
	}
	return NewSelection(ids)
}

// Contains reports whether the id is selected.
func (s Selection) Contains(id uint) bool {
	_, ok := s.ids[id]
	return ok
}

// Len returns the number of selected ids.
func (s Selection) Len() int {
	return len(s.ids)
}

// IDs returns the selected ids, sorted ascending.
func (s Selection) IDs() []uint {
	ids := make([]uint, 0, len(s.ids))
	for id := range s.ids {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// Partition splits the selection against the current pipeline result.
// Visible ids still pass every filter and are what a submission uses.
// Invisible ids were selected earlier but are filtered out now; they stay
// selected and must be surfaced for explicit confirmation or clearing.
type Partition struct {
	Visible   []uint `json:"visible"`
	Invisible []uint `json:"invisible"`
}

// VisibleCount is the number that drives the submission.
func (p Partition) VisibleCount() int {
	return len(p.Visible)
}

// Partition derives the visible/invisible view from the filtered candidate
// ids.
func (s Selection) Partition(candidateIDs []uint) Partition {
	candidates := setutil.FromSlice(candidateIDs)

	visible := make([]uint, 0, len(s.ids))
	invisible := make([]uint, 0)
	for _, id := range s.IDs() {
		if candidates.Has(id) {
			visible = append(visible, id)
		} else {
			invisible = append(invisible, id)
		}
	}
	return Partition{Visible: visible, Invisible: invisible}
}
