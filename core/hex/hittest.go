package hex

import "math"

// snapFraction bounds the centre-distance fallback used when no polygon
// claims a point.
const snapFraction = 0.9

// PixelToCell finds the cell under p. Candidates come from a ±2 window
// around the estimated column and row; the first hexagon containing p wins.
// Points that slip through the seams between polygons snap to the nearest
// candidate centre if it is within 0.9·R.
func (l Layout) PixelToCell(p Point) (Offset, bool) {
	h := l.HexHeight()
	estC := int(math.Floor((p.X - l.Origin.X) / (l.Radius * 1.5)))

	best := Offset{}
	bestD := math.Inf(1)
	for c := max(0, estC-2); c < min(l.Cols, estC+3); c++ {
		baseY := l.Origin.Y
		if c&1 == 1 {
			baseY += h / 2
		}
		estR := int(math.Floor((p.Y - baseY) / h))
		for r := max(0, estR-2); r < min(l.Rows, estR+3); r++ {
			o := Offset{Row: r, Col: c}
			center := l.CellCenter(o)
			corners := l.CellCorners(center)
			if pointInPolygon(p, corners[:]) {
				return o, true
			}
			if d := math.Hypot(p.X-center.X, p.Y-center.Y); d < bestD {
				best, bestD = o, d
			}
		}
	}
	if bestD <= l.Radius*snapFraction {
		return best, true
	}
	return Offset{}, false
}

// pointInPolygon is the even-odd ray casting test.
func pointInPolygon(p Point, poly []Point) bool {
	inside := false
	for i, j := 0, len(poly)-1; i < len(poly); j, i = i, i+1 {
		a, b := poly[i], poly[j]
		if (a.Y > p.Y) == (b.Y > p.Y) {
			continue
		}
		// a.Y != b.Y here, so the edge is never horizontal.
		if p.X < (b.X-a.X)*(p.Y-a.Y)/(b.Y-a.Y)+a.X {
			inside = !inside
		}
	}
	return inside
}
