package ui

import (
	"fmt"
	"image"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/ingyamilmolinar/hexsum/core/engine"
	"github.com/ingyamilmolinar/hexsum/core/hex"
	"github.com/ingyamilmolinar/hexsum/core/model"
	"github.com/ingyamilmolinar/hexsum/internal/audio"
	game_log "github.com/ingyamilmolinar/hexsum/internal/log"
)

// playSound plays a synthesized cue. Overridden in tests.
var playSound = audio.Play

// now is the wall clock the round timer reads. Overridden in tests.
var now = time.Now

// Cue volumes relative to the configured master volume.
const (
	volSelect = 0.4
	volResult = 0.8
)

type Game struct {
	eng     *engine.Engine
	logger  *game_log.Logger
	restart *Button

	frame    int64
	leftPrev bool
}

func New(logger *game_log.Logger, src model.Source) *Game {
	g := &Game{logger: logger.With("GAME")}
	g.eng = engine.NewWithClock(logger, src, func() time.Time { return now() })

	g.restart = NewButton("Restart", ButtonStyle{Fill: colBackground, Border: colButtonBorder}, g.onRestart)
	g.restart.SetRect(restartRect())
	return g
}

// Engine exposes the game state for the entry point and tests.
func (g *Game) Engine() *engine.Engine { return g.eng }

func (g *Game) Layout(w, h int) (int, int) {
	return hex.ScreenWidth, hex.ScreenHeight
}

func (g *Game) onRestart() {
	g.logger.Infof("Restart clicked")
	g.eng.Restart()
}

func (g *Game) Update() error {
	g.frame++
	if g.eng.Tick(now()) {
		g.logger.Infof("Time up at frame %d, final score %d", g.frame, g.eng.Score())
		playSound(audio.CueTimeUp, volResult)
	}

	p := readPointer()
	left := p.down
	defer func() { g.leftPrev = left }()

	if g.eng.GameOver() {
		// Only a press made on the overlay counts; a drag still held when
		// time ran out must not restart the round.
		g.restart.Handle(p.x, p.y, left && !g.leftPrev)
		return nil
	}

	x, y := float64(p.x), float64(p.y)
	switch {
	case left && !g.leftPrev:
		g.eng.PointerDown(x, y)
		if len(g.eng.Selection()) > 0 {
			playSound(audio.CueSelect, volSelect)
		}
	case left && g.leftPrev:
		if n := g.eng.PointerMove(x, y); n > 0 {
			playSound(audio.CueSelect, volSelect)
		}
	case !left && g.leftPrev:
		out := g.eng.PointerUp(x, y)
		switch {
		case out.Matched:
			playSound(audio.CueMatch, volResult)
		case out.Cells > 0:
			playSound(audio.CueMiss, volResult)
		}
	}
	return nil
}

/* ─────────────── Draw ─────────────────────────────────────────────────── */

func (g *Game) Draw(screen *ebiten.Image) {
	s := g.eng.Snapshot()
	drawRect(screen, image.Rect(0, 0, hex.ScreenWidth, hex.ScreenHeight), colBackground, true)
	g.drawHUD(screen, s)
	g.drawTargets(screen, s)
	g.drawBoard(screen, s)
	if s.GameOver {
		g.drawGameOver(screen, s)
	}
}

func (g *Game) drawHUD(screen *ebiten.Image, s engine.Snapshot) {
	drawText(screen, "SCORE: "+humanize.Comma(int64(s.Score)), fontSize, float64(scoreAt.X), float64(scoreAt.Y), colText, false)
	drawText(screen, fmt.Sprintf("TIME: %02ds", s.SecondsLeft()), fontSize, float64(timeAt.X), float64(timeAt.Y), colText, false)
}

func (g *Game) drawTargets(screen *ebiten.Image, s engine.Snapshot) {
	for i, v := range s.Targets {
		r := targetRect(i, len(s.Targets))
		drawRect(screen, r, colGridLine, false)
		c := r.Min.Add(r.Max).Div(2)
		drawText(screen, fmt.Sprint(v), fontSize, float64(c.X), float64(c.Y), colText, true)
	}
}

func (g *Game) drawBoard(screen *ebiten.Image, s engine.Snapshot) {
	l := g.eng.Layout()
	last, hasLast := s.Last()
	for _, o := range l.Cells() {
		c := l.CellCenter(o)
		corners := l.CellCorners(c)
		switch {
		case hasLast && o == last:
			drawHex(screen, corners, colSelectFill, colLastBorder, selectLineWidth)
		case s.Selected(o):
			drawHex(screen, corners, colSelectFill, colSelectBorder, selectLineWidth)
		default:
			drawHex(screen, corners, nil, colGridLine, gridLineWidth)
		}
		drawText(screen, fmt.Sprint(s.Board[o.Row][o.Col]), fontSize, c.X, c.Y, colText, true)
	}
}

func (g *Game) drawGameOver(screen *ebiten.Image, s engine.Snapshot) {
	drawRect(screen, image.Rect(0, 0, hex.ScreenWidth, hex.ScreenHeight), colOverlay, true)
	cx, cy := float64(hex.ScreenWidth)/2, float64(hex.ScreenHeight)/2
	drawText(screen, "TIME UP!", titleFontSize, cx, cy-60, colText, true)
	drawText(screen, "Final Score: "+humanize.Comma(int64(s.Score)), fontSize, cx, cy, colText, true)
	g.restart.Draw(screen)
}
