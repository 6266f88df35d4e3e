package model

import (
	"github.com/zyedidia/generic/mapset"

	"github.com/ingyamilmolinar/hexsum/core/hex"
)

// Selection is the ordered path of cells being dragged. Membership is
// tracked separately so the no-repeat check does not scan the path.
type Selection struct {
	cells   []hex.Offset
	members mapset.Set[hex.Offset]
}

func NewSelection() *Selection {
	return &Selection{members: mapset.New[hex.Offset]()}
}

// Reset empties the selection.
func (s *Selection) Reset() {
	s.cells = s.cells[:0]
	s.members = mapset.New[hex.Offset]()
}

func (s *Selection) Len() int { return len(s.cells) }

func (s *Selection) Empty() bool { return len(s.cells) == 0 }

func (s *Selection) Contains(o hex.Offset) bool { return s.members.Has(o) }

// Last returns the most recently added cell.
func (s *Selection) Last() (hex.Offset, bool) {
	if len(s.cells) == 0 {
		return hex.Offset{}, false
	}
	return s.cells[len(s.cells)-1], true
}

// Push appends o. Cells already present are refused.
func (s *Selection) Push(o hex.Offset) bool {
	if s.members.Has(o) {
		return false
	}
	s.cells = append(s.cells, o)
	s.members.Put(o)
	return true
}

// Cells returns a copy of the path in drag order.
func (s *Selection) Cells() []hex.Offset { return append([]hex.Offset(nil), s.cells...) }
