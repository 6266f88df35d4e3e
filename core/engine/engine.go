package engine

import (
	"time"

	"github.com/ingyamilmolinar/hexsum/core/hex"
	"github.com/ingyamilmolinar/hexsum/core/model"
	"github.com/ingyamilmolinar/hexsum/core/session"
	game_log "github.com/ingyamilmolinar/hexsum/internal/log"
)

// State is the drag state of the engine.
type State int

const (
	Idle State = iota
	Dragging
)

func (s State) String() string {
	if s == Dragging {
		return "dragging"
	}
	return "idle"
}

// Outcome describes what a pointer-up did.
type Outcome struct {
	Matched     bool
	Sum         int
	TargetIndex int // -1 without a match
	Cells       int
}

// Engine owns the whole game state: board, targets, the selection being
// dragged and the running session. It is driven from a single goroutine by
// the host's pointer events and ticks.
type Engine struct {
	layout  hex.Layout
	board   *model.Board
	targets *model.Targets
	sel     *model.Selection
	round   *session.Session
	state   State

	src    model.Source
	now    func() time.Time
	logger *game_log.Logger
	root   *game_log.Logger
}

// New creates an engine on the default layout and starts the first round.
func New(logger *game_log.Logger, src model.Source) *Engine {
	return NewWithClock(logger, src, time.Now)
}

// NewWithClock is New with the clock used to stamp round starts.
func NewWithClock(logger *game_log.Logger, src model.Source, now func() time.Time) *Engine {
	e := &Engine{
		layout: hex.DefaultLayout(),
		sel:    model.NewSelection(),
		src:    src,
		now:    now,
		logger: logger.With("ENGINE"),
		root:   logger,
	}
	e.Start()
	return e
}

// SetNowFunc replaces the clock used to stamp round starts.
func (e *Engine) SetNowFunc(f func() time.Time) { e.now = f }

// Start begins a fresh round: new board and targets, zero score, full timer.
func (e *Engine) Start() {
	e.board = model.NewBoard(e.root, e.layout.Rows, e.layout.Cols, e.src)
	e.targets = model.NewTargets(model.TargetCount, e.src)
	e.sel.Reset()
	e.state = Idle
	e.round = session.New(e.now())
	e.logger.Infof("Round %s started: targets=%v", e.round.ID, e.targets.Values())
}

// Restart is Start; it is accepted in game over.
func (e *Engine) Restart() {
	e.logger.Infof("Restart requested after round %s (score %d)", e.round.ID, e.round.Score)
	e.Start()
}

// Tick advances the countdown. It returns true on the tick that ends the
// round.
func (e *Engine) Tick(now time.Time) bool {
	if !e.round.Tick(now) {
		return false
	}
	e.logger.Infof("Round %s over: score=%d", e.round.ID, e.round.Score)
	return true
}

func (e *Engine) State() State { return e.state }
func (e *Engine) GameOver() bool { return e.round.Over }
func (e *Engine) Score() int { return e.round.Score }
func (e *Engine) Layout() hex.Layout { return e.layout }
func (e *Engine) Selection() []hex.Offset { return e.sel.Cells() }

// PointerDown starts a drag. The cell under the pointer, if any, becomes the
// first cell of the selection.
func (e *Engine) PointerDown(x, y float64) {
	if e.round.Over {
		return
	}
	e.sel.Reset()
	e.state = Dragging
	if o, ok := e.layout.PixelToCell(hex.Point{X: x, Y: y}); ok {
		e.sel.Push(o)
		e.logger.Debugf("Drag start at (%.1f,%.1f) cell=%v value=%d", x, y, o, e.board.ValueAt(o))
		return
	}
	e.logger.Debugf("Drag start at (%.1f,%.1f) off the board", x, y)
}

// PointerMove extends the drag toward the cell under the pointer, filling
// in any cells the pointer skipped. It returns how many cells were added.
func (e *Engine) PointerMove(x, y float64) int {
	if e.round.Over || e.state != Dragging {
		return 0
	}
	last, ok := e.sel.Last()
	if !ok {
		return 0
	}
	cur, ok := e.layout.PixelToCell(hex.Point{X: x, Y: y})
	if !ok || cur == last {
		return 0
	}

	added := 0
	path := e.layout.TraceLine(last, cur)
	for _, o := range path[1:] {
		if e.sel.Contains(o) {
			continue
		}
		if !hex.IsAdjacent(last, o) {
			e.logger.Debugf("Extend stopped at %v: not adjacent to %v", o, last)
			break
		}
		e.sel.Push(o)
		last = o
		added++
	}
	if added > 0 {
		e.logger.Debugf("Extended selection by %d to %v", added, e.sel.Cells())
	}
	return added
}

// PointerUp ends the drag and commits the selection if its sum matches a
// target. The selection is cleared either way.
func (e *Engine) PointerUp(x, y float64) Outcome {
	out := Outcome{TargetIndex: -1}
	if e.round.Over {
		return out
	}
	defer func() {
		e.sel.Reset()
		e.state = Idle
	}()
	if e.state != Dragging || e.sel.Empty() {
		return out
	}

	cells := e.sel.Cells()
	out.Cells = len(cells)
	out.Sum = e.board.Sum(cells)
	idx, ok := e.targets.FindIndex(out.Sum)
	if !ok {
		e.logger.Debugf("Release at (%.1f,%.1f): sum %d matches no target %v", x, y, out.Sum, e.targets.Values())
		return out
	}

	e.round.AddScore(out.Sum)
	for _, o := range cells {
		e.board.ReplaceAt(o, model.RandIn(e.src, model.CellMin, model.CellMax))
	}
	e.targets.ReplaceAt(idx, model.RandIn(e.src, model.TargetMin, model.TargetMax))
	out.Matched = true
	out.TargetIndex = idx
	e.logger.Infof("Matched target %d with sum %d over %d cells, score=%d", idx, out.Sum, len(cells), e.round.Score)
	return out
}
