package engine

import "github.com/vovakirdan/blockfall/internal/core"

// Piece is a positioned instance of a shape.
// Moves and rotations are applied in place; callers test the result against
// a Board and apply the exact inverse when it is invalid.
type Piece struct {
	kind  Kind
	cells [4]Offset
	x, y  int
}

// NewPiece creates a piece of the given kind in spawn orientation at (x, y).
func NewPiece(kind Kind, x, y int) Piece {
	return Piece{
		kind:  kind,
		cells: Shapes[kind].Cells,
		x:     x,
		y:     y,
	}
}

// Kind returns the piece's shape kind.
func (p Piece) Kind() Kind {
	return p.kind
}

// Color returns the display colour derived from the kind.
func (p Piece) Color() core.Color {
	return Shapes[p.kind].Color
}

// Anchor returns the board position the offsets are relative to.
func (p Piece) Anchor() Coord {
	return Coord{X: p.x, Y: p.y}
}

// Offsets returns the current relative cell offsets.
func (p Piece) Offsets() [4]Offset {
	return p.cells
}

// Cells returns the absolute board cells the piece occupies.
func (p Piece) Cells() [4]Coord {
	var out [4]Coord
	for i, c := range p.cells {
		out[i] = Coord{X: p.x + c.DX, Y: p.y + c.DY}
	}
	return out
}

// Move translates the anchor.
func (p *Piece) Move(dx, dy int) {
	p.x += dx
	p.y += dy
}

// Rotate turns the piece 90 degrees about its pivot offset (index 1).
// Shapes with a fixed orientation are left untouched.
func (p *Piece) Rotate() {
	if Shapes[p.kind].FixedOrientation {
		return
	}

	pivot := p.cells[1]
	for i, c := range p.cells {
		rx, ry := c.DX-pivot.DX, c.DY-pivot.DY
		p.cells[i] = Offset{DX: pivot.DX - ry, DY: pivot.DY + rx}
	}
}

// UndoRotate restores the orientation before the last Rotate.
// Four quarter turns are the identity, so three more turns undo one.
func (p *Piece) UndoRotate() {
	for range 3 {
		p.Rotate()
	}
}
