package engine

import (
	"fmt"

	"github.com/vovakirdan/blockfall/internal/core"
)

// Cell is one grid position in the well.
type Cell struct {
	Filled bool       // Whether a locked block occupies the cell
	Color  core.Color // Valid only when Filled is true
}

// Empty returns an empty cell.
func Empty() Cell {
	return Cell{}
}

// FilledCell returns an occupied cell with the given colour.
func FilledCell(c core.Color) Cell {
	return Cell{Filled: true, Color: c}
}

// BoardView is the read-only side of a Board handed to renderers.
type BoardView interface {
	Width() int
	Height() int
	Get(x, y int) Cell
}

// Board is the well's occupancy grid.
// Cells are stored in a flat row-major buffer: index = y*w + x.
// Dimensions are fixed at construction.
type Board struct {
	w, h  int
	cells []Cell
}

// NewBoard creates an empty board. Non-positive dimensions are rejected.
func NewBoard(width, height int) (*Board, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("engine: invalid board size %dx%d", width, height)
	}
	return &Board{
		w:     width,
		h:     height,
		cells: make([]Cell, width*height),
	}, nil
}

// Width returns the number of columns.
func (b *Board) Width() int {
	return b.w
}

// Height returns the number of rows.
func (b *Board) Height() int {
	return b.h
}

// Get returns the cell at (x, y), or an empty cell when out of bounds.
func (b *Board) Get(x, y int) Cell {
	if x < 0 || x >= b.w || y < 0 || y >= b.h {
		return Empty()
	}
	return b.cells[y*b.w+x]
}

// set writes a cell; used by Commit and by tests to prepare a board.
func (b *Board) set(x, y int, c Cell) {
	if x < 0 || x >= b.w || y < 0 || y >= b.h {
		return
	}
	b.cells[y*b.w+x] = c
}

// IsValidPosition reports whether the piece fits: every cell must be inside
// the side walls and above the floor, and no cell inside the well may overlap
// a locked block. Cells above the top (y < 0) skip the occupancy check.
func (b *Board) IsValidPosition(p *Piece) bool {
	for _, c := range p.Cells() {
		if c.X < 0 || c.X >= b.w || c.Y >= b.h {
			return false
		}
		if c.Y >= 0 && b.cells[c.Y*b.w+c.X].Filled {
			return false
		}
	}
	return true
}

// Commit writes the piece's colour into every cell it covers inside the well.
// Cells above the top are dropped. The caller must have checked validity.
func (b *Board) Commit(p *Piece) {
	cell := FilledCell(p.Color())
	for _, c := range p.Cells() {
		if c.Y >= 0 {
			b.set(c.X, c.Y, cell)
		}
	}
}

// ClearFullRows removes every row with no empty cell, shifts the remaining
// rows down preserving their order, refills the top with empty rows and
// returns the number of rows removed.
func (b *Board) ClearFullRows() int {
	write := b.h - 1
	for read := b.h - 1; read >= 0; read-- {
		if b.rowFull(read) {
			continue
		}
		if write != read {
			copy(b.row(write), b.row(read))
		}
		write--
	}

	cleared := write + 1
	for y := 0; y <= write; y++ {
		clear(b.row(y))
	}
	return cleared
}

func (b *Board) row(y int) []Cell {
	return b.cells[y*b.w : (y+1)*b.w]
}

func (b *Board) rowFull(y int) bool {
	for _, c := range b.row(y) {
		if !c.Filled {
			return false
		}
	}
	return true
}

// FilledCount returns the number of occupied cells.
func (b *Board) FilledCount() int {
	count := 0
	for _, c := range b.cells {
		if c.Filled {
			count++
		}
	}
	return count
}

// Reset empties every cell.
func (b *Board) Reset() {
	clear(b.cells)
}

// Clone returns a deep copy of the board.
func (b *Board) Clone() *Board {
	cells := make([]Cell, len(b.cells))
	copy(cells, b.cells)
	return &Board{w: b.w, h: b.h, cells: cells}
}

// Equal returns true if two boards have the same dimensions and contents.
func (b *Board) Equal(other *Board) bool {
	if b.w != other.w || b.h != other.h {
		return false
	}
	for i, c := range b.cells {
		if c != other.cells[i] {
			return false
		}
	}
	return true
}

var _ BoardView = (*Board)(nil)
