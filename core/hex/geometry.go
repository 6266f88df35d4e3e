// Package hex holds the board geometry: odd-q offset cells, cube coordinates,
// pixel placement of hexagons, hit testing and line tracing. Everything here
// is pure and safe to call from tests without a window.
package hex

import (
	"fmt"
	"math"

	"github.com/ingyamilmolinar/hexsum/internal/utils"
)

const (
	Rows   = 6
	Cols   = 12
	Radius = 35.0

	// Logical screen the default layout is centred in.
	ScreenWidth  = 800
	ScreenHeight = 600

	// Vertical room reserved above the board for the target panel.
	panelOffset = 80
)

// Offset addresses a cell by row and column. Odd columns sit half a hex
// lower than even ones ("odd-q").
type Offset struct {
	Row, Col int
}

func (o Offset) String() string { return fmt.Sprintf("(%d,%d)", o.Row, o.Col) }

// Cube is a cube coordinate; X+Y+Z is always 0.
type Cube struct {
	X, Y, Z int
}

// Point is a position in screen pixels.
type Point struct {
	X, Y float64
}

// Layout places a Rows×Cols board of hexes with the given radius. Origin is
// the pixel centre of cell (0,0).
type Layout struct {
	Radius float64
	Origin Point
	Rows   int
	Cols   int
}

// DefaultLayout centres the 6×12 board on the 800×600 screen, shifted down
// to leave space for the targets.
func DefaultLayout() Layout {
	h := math.Sqrt(3) * Radius
	boardW := Cols*(Radius*1.5) + Radius/2
	boardH := Rows*h + h/2
	return Layout{
		Radius: Radius,
		Origin: Point{
			X: (ScreenWidth-boardW)/2 + Radius,
			Y: (ScreenHeight-boardH)/2 + panelOffset,
		},
		Rows: Rows,
		Cols: Cols,
	}
}

// HexHeight is the flat-to-flat height of one hex.
func (l Layout) HexHeight() float64 { return math.Sqrt(3) * l.Radius }

// InBounds reports whether o addresses a cell of the board.
func (l Layout) InBounds(o Offset) bool {
	return o.Row >= 0 && o.Row < l.Rows && o.Col >= 0 && o.Col < l.Cols
}

// CellCenter returns the pixel centre of cell o.
func (l Layout) CellCenter(o Offset) Point {
	h := l.HexHeight()
	y := l.Origin.Y + float64(o.Row)*h
	if o.Col&1 == 1 {
		y += h / 2
	}
	return Point{X: l.Origin.X + float64(o.Col)*l.Radius*1.5, Y: y}
}

// CellCorners returns the six vertices of the hex centred on c, at 60°
// steps starting from the positive x axis.
func (l Layout) CellCorners(c Point) [6]Point {
	var pts [6]Point
	for i := range pts {
		ang := math.Pi / 180 * float64(60*i)
		pts[i] = Point{X: c.X + l.Radius*math.Cos(ang), Y: c.Y + l.Radius*math.Sin(ang)}
	}
	return pts
}

// Cells lists every cell in row-major order.
func (l Layout) Cells() []Offset {
	out := make([]Offset, 0, l.Rows*l.Cols)
	for r := 0; r < l.Rows; r++ {
		for c := 0; c < l.Cols; c++ {
			out = append(out, Offset{Row: r, Col: c})
		}
	}
	return out
}

// OffsetToCube converts odd-q offset coordinates to cube coordinates.
func OffsetToCube(o Offset) Cube {
	x := o.Col
	z := o.Row - (o.Col-(o.Col&1))/2
	return Cube{X: x, Y: -x - z, Z: z}
}

// ToOffset is the inverse of OffsetToCube.
func (c Cube) ToOffset() Offset {
	return Offset{Row: c.Z + (c.X-(c.X&1))/2, Col: c.X}
}

// CubeRound snaps a fractional cube coordinate to the nearest cell. The
// component that moved most while rounding is rebuilt from the other two so
// the result keeps X+Y+Z == 0.
func CubeRound(fx, fy, fz float64) Cube {
	rx, ry, rz := math.Round(fx), math.Round(fy), math.Round(fz)
	dx, dy, dz := math.Abs(rx-fx), math.Abs(ry-fy), math.Abs(rz-fz)
	switch {
	case dx > dy && dx > dz:
		rx = -ry - rz
	case dy > dz:
		ry = -rx - rz
	default:
		rz = -rx - ry
	}
	return Cube{X: int(rx), Y: int(ry), Z: int(rz)}
}

// CubeDistance is the number of steps between two cells.
func CubeDistance(a, b Cube) int {
	return utils.Max3(utils.Abs(a.X-b.X), utils.Abs(a.Y-b.Y), utils.Abs(a.Z-b.Z))
}

// IsAdjacent reports whether a and b share an edge.
func IsAdjacent(a, b Offset) bool {
	return CubeDistance(OffsetToCube(a), OffsetToCube(b)) == 1
}
