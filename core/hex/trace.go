package hex

// nudge breaks ties for samples that land exactly on a hex edge. It sums to
// zero so nudged samples stay on the cube plane.
var nudge = [3]float64{1e-6, 1e-6, -2e-6}

// TraceLine returns the cells on the straight line from one cell to another,
// both included, with no repeats and no gaps. Cells outside the board are
// dropped.
func (l Layout) TraceLine(from, to Offset) []Offset {
	a, b := OffsetToCube(from), OffsetToCube(to)
	n := max(1, CubeDistance(a, b))

	path := make([]Offset, 0, n+1)
	for i := 0; i <= n; i++ {
		t := float64(i) / float64(n)
		fx := lerp(a.X, b.X, t)
		fy := lerp(a.Y, b.Y, t)
		fz := lerp(a.Z, b.Z, t)

		o := CubeRound(fx+nudge[0], fy+nudge[1], fz+nudge[2]).ToOffset()
		if !l.InBounds(o) {
			// On the ragged top and bottom rows an edge sample can have its
			// in-board neighbour on the other side of the tie.
			o = CubeRound(fx-nudge[0], fy-nudge[1], fz-nudge[2]).ToOffset()
		}
		if !l.InBounds(o) {
			continue
		}
		if len(path) > 0 && path[len(path)-1] == o {
			continue
		}
		path = append(path, o)
	}
	return path
}

func lerp(a, b int, t float64) float64 {
	return float64(a) + float64(b-a)*t
}
