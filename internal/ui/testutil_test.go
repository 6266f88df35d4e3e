package ui

import (
	"io"
	"testing"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/ingyamilmolinar/hexsum/core/hex"
	game_log "github.com/ingyamilmolinar/hexsum/internal/log"
)

var testLogger = game_log.New(io.Discard, game_log.LevelError)

// constSource makes every random draw the smallest value: cells are all 1
// and targets are all 5.
type constSource int

func (c constSource) IntN(n int) int { return int(c) % n }

type cue struct {
	id  string
	vol float64
}

// harness wires a Game to a fake clock and records played cues.
type harness struct {
	g     *Game
	clock time.Time
	cues  []cue
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	h := &harness{clock: time.Unix(1_700_000_000, 0)}
	oldNow, oldPlay := now, playSound
	now = func() time.Time { return h.clock }
	playSound = func(id string, vol float64) bool {
		h.cues = append(h.cues, cue{id, vol})
		return true
	}
	t.Cleanup(func() { now, playSound = oldNow, oldPlay })
	h.g = New(testLogger, constSource(0))
	return h
}

// frame runs one Update with the mouse at (x,y) and the left button down or up.
func (h *harness) frame(t *testing.T, x, y int, down bool) {
	t.Helper()
	restore := SetInputForTest(
		func() (int, int) { return x, y },
		func(b ebiten.MouseButton) bool { return down && b == ebiten.MouseButtonLeft },
	)
	defer restore()
	if err := h.g.Update(); err != nil {
		t.Fatalf("update: %v", err)
	}
}

func (h *harness) at(o hex.Offset) (int, int) {
	p := h.g.Engine().Layout().CellCenter(o)
	return int(p.X), int(p.Y)
}

// drag presses on the first cell, moves through the rest and releases on the
// last one.
func (h *harness) drag(t *testing.T, cells ...hex.Offset) {
	t.Helper()
	x, y := h.at(cells[0])
	h.frame(t, x, y, true)
	for _, o := range cells[1:] {
		x, y = h.at(o)
		h.frame(t, x, y, true)
	}
	h.frame(t, x, y, false)
}

func (h *harness) cueIDs() []string {
	ids := make([]string, len(h.cues))
	for i, c := range h.cues {
		ids[i] = c.id
	}
	return ids
}
