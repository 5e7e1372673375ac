// Package engine implements the falling-block game state: piece geometry and
// rotation, the well's occupancy grid, locking, line clearing and holding.
// It is UI-agnostic and deterministic for a given Randomizer.
package engine

import "github.com/vovakirdan/blockfall/internal/core"

// Kind identifies one of the seven piece shapes.
type Kind int

const (
	KindI Kind = iota
	KindO
	KindT
	KindS
	KindZ
	KindJ
	KindL
)

// KindCount is the number of piece kinds.
const KindCount = 7

// Valid reports whether k names one of the seven shapes.
func (k Kind) Valid() bool {
	return k >= 0 && k < KindCount
}

// String returns the conventional letter for the kind.
func (k Kind) String() string {
	if !k.Valid() {
		return "?"
	}
	return Shapes[k].Name
}

// Offset is a cell position relative to a piece's anchor.
type Offset struct {
	DX, DY int
}

// Coord is an absolute board position. Y grows downwards; row 0 is the top.
type Coord struct {
	X, Y int
}

// Shape is the immutable spawn-orientation definition of a kind.
type Shape struct {
	Kind  Kind
	Name  string
	Cells [4]Offset // Index 1 is the rotation pivot
	Color core.Color
	// FixedOrientation marks shapes whose rotations are all identical.
	// Rotating them about the off-centre pivot would shift them sideways.
	FixedOrientation bool
}

// Shapes is the shared shape table, indexed by Kind.
var Shapes = [KindCount]Shape{
	KindI: {Kind: KindI, Name: "I", Cells: [4]Offset{{0, 1}, {1, 1}, {2, 1}, {3, 1}}, Color: core.ColorCyan},
	KindO: {Kind: KindO, Name: "O", Cells: [4]Offset{{0, 0}, {0, 1}, {1, 1}, {1, 0}}, Color: core.ColorYellow, FixedOrientation: true},
	KindT: {Kind: KindT, Name: "T", Cells: [4]Offset{{0, 1}, {1, 1}, {2, 1}, {1, 0}}, Color: core.ColorPurple},
	KindS: {Kind: KindS, Name: "S", Cells: [4]Offset{{0, 1}, {1, 1}, {1, 0}, {2, 0}}, Color: core.ColorGreen},
	KindZ: {Kind: KindZ, Name: "Z", Cells: [4]Offset{{0, 0}, {1, 0}, {1, 1}, {2, 1}}, Color: core.ColorRed},
	KindJ: {Kind: KindJ, Name: "J", Cells: [4]Offset{{0, 0}, {0, 1}, {1, 1}, {2, 1}}, Color: core.ColorBlue},
	KindL: {Kind: KindL, Name: "L", Cells: [4]Offset{{0, 1}, {1, 1}, {2, 1}, {2, 0}}, Color: core.ColorOrange},
}
