package engine

import (
	"time"

	"github.com/ingyamilmolinar/hexsum/core/hex"
)

// Snapshot is a read-only copy of everything the renderer needs for one
// frame. Mutating it never touches the engine.
type Snapshot struct {
	Board     [][]int // [row][col]
	Targets   []int   // slot order
	Selection []hex.Offset
	Score     int
	Remaining time.Duration
	GameOver  bool
	Dragging  bool
	RoundID   string
}

func (e *Engine) Snapshot() Snapshot {
	return Snapshot{
		Board:     e.board.Values(),
		Targets:   e.targets.Values(),
		Selection: e.sel.Cells(),
		Score:     e.round.Score,
		Remaining: e.round.Remaining,
		GameOver:  e.round.Over,
		Dragging:  e.state == Dragging,
		RoundID:   e.round.ID,
	}
}

// Last returns the most recently selected cell, drawn with its own colour.
func (s Snapshot) Last() (hex.Offset, bool) {
	if len(s.Selection) == 0 {
		return hex.Offset{}, false
	}
	return s.Selection[len(s.Selection)-1], true
}

// Selected reports whether o is part of the current selection.
func (s Snapshot) Selected(o hex.Offset) bool {
	for _, c := range s.Selection {
		if c == o {
			return true
		}
	}
	return false
}

// SecondsLeft is the countdown shown on screen.
func (s Snapshot) SecondsLeft() int { return int(s.Remaining / time.Second) }
