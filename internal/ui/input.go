package ui

import "github.com/hajimehoshi/ebiten/v2"

// Raw input sources, swapped out by tests.
var (
	cursorPosition       = ebiten.CursorPosition
	isMouseButtonPressed = ebiten.IsMouseButtonPressed
	appendTouchIDs       = ebiten.AppendTouchIDs
	touchPosition        = ebiten.TouchPosition
)

// pointer is one frame of drag input in logical screen pixels.
type pointer struct {
	x, y int
	down bool
}

// readPointer merges mouse and touch: the first active touch counts as a
// held left button at its position, otherwise the mouse is used.
func readPointer() pointer {
	if ids := appendTouchIDs(nil); len(ids) > 0 {
		x, y := touchPosition(ids[0])
		return pointer{x: x, y: y, down: true}
	}
	x, y := cursorPosition()
	return pointer{x: x, y: y, down: isMouseButtonPressed(ebiten.MouseButtonLeft)}
}

// SetInputForTest replaces the mouse with cursor and mouse and disables touch.
// The returned function restores the real sources.
func SetInputForTest(
	cursor func() (int, int),
	mouse func(ebiten.MouseButton) bool,
) func() {
	oldCursor, oldMouse := cursorPosition, isMouseButtonPressed
	oldTouchIDs, oldTouchPos := appendTouchIDs, touchPosition
	cursorPosition = cursor
	isMouseButtonPressed = mouse
	appendTouchIDs = func(ids []ebiten.TouchID) []ebiten.TouchID { return ids }
	touchPosition = func(ebiten.TouchID) (int, int) { return 0, 0 }
	return func() {
		cursorPosition, isMouseButtonPressed = oldCursor, oldMouse
		appendTouchIDs, touchPosition = oldTouchIDs, oldTouchPos
	}
}

// setTouchForTest reports a single touch at (x,y) while down is true.
func setTouchForTest(x, y int, down bool) {
	appendTouchIDs = func(ids []ebiten.TouchID) []ebiten.TouchID {
		if down {
			return append(ids, 1)
		}
		return ids
	}
	touchPosition = func(ebiten.TouchID) (int, int) { return x, y }
}
