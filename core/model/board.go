package model

import (
	"github.com/ingyamilmolinar/hexsum/core/hex"
	game_log "github.com/ingyamilmolinar/hexsum/internal/log"
)

const (
	CellMin = 1
	CellMax = 10
)

// Board stores one value per cell in row-major order.
type Board struct {
	rows, cols int
	cells      []int
	logger     *game_log.Logger
}

// NewBoard fills a rows×cols board with values drawn from src.
func NewBoard(logger *game_log.Logger, rows, cols int, src Source) *Board {
	b := &Board{rows: rows, cols: cols, cells: make([]int, rows*cols), logger: logger.With("BOARD")}
	for i := range b.cells {
		b.cells[i] = RandIn(src, CellMin, CellMax)
	}
	b.logger.Debugf("Generated %dx%d board", rows, cols)
	return b
}

func (b *Board) Rows() int { return b.rows }
func (b *Board) Cols() int { return b.cols }

func (b *Board) index(o hex.Offset) int {
	if o.Row < 0 || o.Row >= b.rows || o.Col < 0 || o.Col >= b.cols {
		return -1
	}
	return o.Row*b.cols + o.Col
}

// ValueAt returns the value at o, or 0 outside the board.
func (b *Board) ValueAt(o hex.Offset) int {
	i := b.index(o)
	if i < 0 {
		return 0
	}
	return b.cells[i]
}

// ReplaceAt overwrites the value at o. Writes outside the board are dropped.
func (b *Board) ReplaceAt(o hex.Offset, v int) {
	i := b.index(o)
	if i < 0 {
		b.logger.Warnf("ReplaceAt outside board: %v", o)
		return
	}
	b.logger.Debugf("Refill %v: %d -> %d", o, b.cells[i], v)
	b.cells[i] = v
}

// Sum adds up the values of cells.
func (b *Board) Sum(cells []hex.Offset) int {
	total := 0
	for _, o := range cells {
		total += b.ValueAt(o)
	}
	return total
}

// Values returns a copy of the board as [row][col].
func (b *Board) Values() [][]int {
	out := make([][]int, b.rows)
	for r := range out {
		out[r] = append([]int(nil), b.cells[r*b.cols:(r+1)*b.cols]...)
	}
	return out
}
