package hex

import (
	"reflect"
	"testing"
)

func TestTraceLineSameCell(t *testing.T) {
	l := DefaultLayout()
	for _, o := range l.Cells() {
		if got := l.TraceLine(o, o); !reflect.DeepEqual(got, []Offset{o}) {
			t.Fatalf("TraceLine(%v,%v) = %v", o, o, got)
		}
	}
}

func TestTraceLineNeighbours(t *testing.T) {
	l := DefaultLayout()
	a, b := Offset{2, 2}, Offset{1, 3}
	if got := l.TraceLine(a, b); !reflect.DeepEqual(got, []Offset{a, b}) {
		t.Fatalf("TraceLine = %v", got)
	}
}

func TestTraceLineAlongTopRow(t *testing.T) {
	l := DefaultLayout()
	got := l.TraceLine(Offset{0, 0}, Offset{0, 4})
	want := []Offset{{0, 0}, {0, 1}, {0, 2}, {0, 3}, {0, 4}}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("TraceLine = %v, want %v", got, want)
	}
}

func TestTraceLineAlongBottomRowOddColumns(t *testing.T) {
	l := DefaultLayout()
	got := l.TraceLine(Offset{5, 11}, Offset{5, 9})
	want := []Offset{{5, 11}, {5, 10}, {5, 9}}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("TraceLine = %v, want %v", got, want)
	}
}

func TestTraceLineVertical(t *testing.T) {
	l := DefaultLayout()
	got := l.TraceLine(Offset{0, 6}, Offset{5, 6})
	want := []Offset{{0, 6}, {1, 6}, {2, 6}, {3, 6}, {4, 6}, {5, 6}}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("TraceLine = %v, want %v", got, want)
	}
}

// Every pair of cells on the board must trace to a gap-free path.
func TestTraceLineContinuity(t *testing.T) {
	l := DefaultLayout()
	cells := l.Cells()
	for _, a := range cells {
		for _, b := range cells {
			path := l.TraceLine(a, b)
			if len(path) == 0 || path[0] != a || path[len(path)-1] != b {
				t.Fatalf("TraceLine(%v,%v) = %v: wrong endpoints", a, b, path)
			}
			want := CubeDistance(OffsetToCube(a), OffsetToCube(b)) + 1
			if len(path) != want {
				t.Fatalf("TraceLine(%v,%v) has %d cells, want %d", a, b, len(path), want)
			}
			for i := 1; i < len(path); i++ {
				if !IsAdjacent(path[i-1], path[i]) {
					t.Fatalf("TraceLine(%v,%v) = %v: gap at %d", a, b, path, i)
				}
				if !l.InBounds(path[i]) {
					t.Fatalf("TraceLine(%v,%v) left the board at %v", a, b, path[i])
				}
			}
		}
	}
}
