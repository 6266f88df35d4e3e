package ui

import (
	"image"

	"github.com/ingyamilmolinar/hexsum/core/hex"
)

// Target panel geometry, in logical pixels.
const (
	targetW   = 85
	targetH   = 65
	targetGap = 8
	targetsY  = 40

	restartW = 140
	restartH = 50
)

var (
	scoreAt = image.Pt(30, 20)
	timeAt  = image.Pt(hex.ScreenWidth-150, 20)
)

// targetsX is the left edge of the first target box: the row is centred and
// then nudged right.
func targetsX(n int) int {
	return (hex.ScreenWidth-(n*targetW+(n-1)*targetGap))/2 + 30
}

// targetRect is the box of target slot i out of n.
func targetRect(i, n int) image.Rectangle {
	x := targetsX(n) + i*(targetW+targetGap)
	return image.Rect(x, targetsY, x+targetW, targetsY+targetH)
}

// restartRect is the Restart button on the game-over overlay.
func restartRect() image.Rectangle {
	cx, cy := hex.ScreenWidth/2, hex.ScreenHeight/2+40
	return image.Rect(cx-restartW/2, cy-restartH/2, cx+restartW/2, cy+restartH/2)
}
