package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/blockfall/internal/core"
)

// seqRandomizer deals a fixed sequence of kinds, repeating it.
type seqRandomizer struct {
	kinds []Kind
	i     int
}

func (r *seqRandomizer) Next() Kind {
	k := r.kinds[r.i%len(r.kinds)]
	r.i++
	return k
}

func newTestEngine(t *testing.T, kinds ...Kind) *Engine {
	t.Helper()
	e, err := NewEngine(DefaultConfig(), &seqRandomizer{kinds: kinds})
	require.NoError(t, err)
	return e
}

func TestNewEngineValidatesConfig(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
	}{
		{"narrow", Config{Width: 4, Height: 20, FallInterval: 200, FallResidual: 100}},
		{"zero width", Config{Width: 0, Height: 20, FallInterval: 200, FallResidual: 100}},
		{"short", Config{Width: 10, Height: 1, FallInterval: 200, FallResidual: 100}},
		{"zero interval", Config{Width: 10, Height: 20, FallInterval: 0, FallResidual: 0}},
		{"negative residual", Config{Width: 10, Height: 20, FallInterval: 200, FallResidual: -1}},
		{"residual equals interval", Config{Width: 10, Height: 20, FallInterval: 200, FallResidual: 200}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewEngine(tt.cfg, &seqRandomizer{kinds: []Kind{KindT}})
			assert.Error(t, err)
		})
	}

	_, err := NewEngine(DefaultConfig(), nil)
	assert.Error(t, err)
}

func TestSpawnAnchor(t *testing.T) {
	e := newTestEngine(t, KindT)
	cur := e.Current()
	assert.Equal(t, Coord{4, 0}, cur.Anchor())
	assert.Equal(t, Shapes[KindT].Cells, cur.Offsets())
	assert.Equal(t, StateFalling, e.State())

	e.SpawnPiece(KindZ)
	cur = e.Current()
	assert.Equal(t, KindZ, cur.Kind())
	assert.Equal(t, Coord{4, 0}, cur.Anchor())
}

func TestCurrentIsACopy(t *testing.T) {
	e := newTestEngine(t, KindT)
	start := e.Current().Anchor()

	cur := e.Current()
	cur.Move(2, 3)
	cur.Rotate()

	assert.Equal(t, start, e.Current().Anchor())
	assert.Equal(t, Shapes[KindT].Cells, e.Current().Offsets())
	assert.Equal(t, KindT, e.Current().Kind())
}

func TestHardDropSquareOnEmptyBoard(t *testing.T) {
	e := newTestEngine(t, KindO)

	rows := e.HardDrop()
	assert.Equal(t, 18, rows)

	board := e.Board()
	for _, c := range []Coord{{4, 18}, {5, 18}, {4, 19}, {5, 19}} {
		assert.Equal(t, FilledCell(core.ColorYellow), board.Get(c.X, c.Y), "cell %v", c)
	}
	assert.Equal(t, 4, e.Snapshot().Filled)
	assert.Equal(t, 0, e.Score())
	assert.Equal(t, 1, e.Stats().Pieces)
	assert.Equal(t, 1, e.Stats().Locked(KindO))
	assert.Equal(t, 0, e.Stats().Locked(KindI))
	assert.Equal(t, StateFalling, e.State())
}

func TestStatsCopyIsIndependent(t *testing.T) {
	e := newTestEngine(t, KindO, KindT)
	e.HardDrop()

	before := e.Stats()
	e.HardDrop()
	e.Reset()

	assert.Equal(t, 1, before.Pieces)
	assert.Equal(t, 1, before.Locked(KindO))
	assert.Equal(t, 0, before.Locked(KindT))
	assert.Equal(t, 0, e.Stats().Locked(KindO))
}

func TestHardDropAddsFourCells(t *testing.T) {
	for k := range Kind(KindCount) {
		t.Run(k.String(), func(t *testing.T) {
			e := newTestEngine(t, k)
			e.HardDrop()
			assert.Equal(t, 4, e.Snapshot().Filled)

			// The lowest cell rests on the floor.
			maxY := 0
			for _, off := range Shapes[k].Cells {
				maxY = max(maxY, off.DY)
			}
			assert.True(t, e.Board().Get(4+Shapes[k].Cells[0].DX, 19-maxY+Shapes[k].Cells[0].DY).Filled)
		})
	}
}

func TestHardDropClearsRow(t *testing.T) {
	e := newTestEngine(t, KindI)
	for x := 0; x < 10; x++ {
		if x < 4 || x > 7 {
			e.board.set(x, 19, FilledCell(core.ColorGray))
		}
	}

	assert.Equal(t, 18, e.HardDrop())
	assert.Equal(t, 1, e.Score())
	assert.Equal(t, 0, e.Snapshot().Filled)
}

func TestGravityStepsAndResidual(t *testing.T) {
	e := newTestEngine(t, KindO)

	e.TickGravity(199)
	assert.Equal(t, Coord{4, 0}, e.Current().Anchor())
	assert.Equal(t, 199, e.FallTimer())

	e.TickGravity(1)
	assert.Equal(t, Coord{4, 1}, e.Current().Anchor())
	assert.Equal(t, 100, e.FallTimer())

	e.TickGravity(99)
	assert.Equal(t, Coord{4, 1}, e.Current().Anchor())
	e.TickGravity(1)
	assert.Equal(t, Coord{4, 2}, e.Current().Anchor())
	assert.Equal(t, 100, e.FallTimer())
}

func TestGravityLocksOnFloor(t *testing.T) {
	e := newTestEngine(t, KindO)
	for range 18 {
		e.TickGravity(200)
	}
	assert.Equal(t, Coord{4, 18}, e.Current().Anchor())
	assert.Equal(t, 0, e.Stats().Pieces)

	e.TickGravity(200)
	assert.Equal(t, 1, e.Stats().Pieces)
	assert.True(t, e.Board().Get(4, 19).Filled)
	assert.True(t, e.Board().Get(5, 18).Filled)
	assert.Equal(t, Coord{4, 0}, e.Current().Anchor())
}

func TestSoftDropResetsFallTimer(t *testing.T) {
	e := newTestEngine(t, KindT)
	e.TickGravity(150)
	require.Equal(t, 150, e.FallTimer())

	assert.True(t, e.SoftDrop())
	assert.Equal(t, 0, e.FallTimer())
	assert.Equal(t, Coord{4, 1}, e.Current().Anchor())
}

func TestSideMovesKeepFallTimer(t *testing.T) {
	e := newTestEngine(t, KindT)
	e.TickGravity(150)
	assert.True(t, e.MoveLeft())
	assert.True(t, e.MoveRight())
	assert.Equal(t, 150, e.FallTimer())
}

func TestSoftDropOnFloorDoesNotLock(t *testing.T) {
	e := newTestEngine(t, KindO)
	for range 18 {
		require.True(t, e.SoftDrop())
	}
	assert.False(t, e.SoftDrop())
	assert.Equal(t, Coord{4, 18}, e.Current().Anchor())
	assert.Equal(t, 0, e.Stats().Pieces)
}

func TestMoveBlockedByWall(t *testing.T) {
	e := newTestEngine(t, KindT)
	for range 4 {
		require.True(t, e.MoveLeft())
	}
	assert.False(t, e.MoveLeft())
	assert.Equal(t, Coord{0, 0}, e.Current().Anchor())

	for range 7 {
		require.True(t, e.MoveRight())
	}
	assert.False(t, e.MoveRight())
	assert.Equal(t, Coord{7, 0}, e.Current().Anchor())
}

func TestRotateBlockedIsReverted(t *testing.T) {
	e := newTestEngine(t, KindI)
	// Vertical I would cover column 5, rows 0..3.
	e.board.set(5, 3, FilledCell(core.ColorGray))
	before := e.Current().Offsets()

	assert.False(t, e.TryRotate())
	assert.Equal(t, before, e.Current().Offsets())

	e.board.Reset()
	assert.True(t, e.TryRotate())
	assert.Equal(t, [4]Offset{{1, 0}, {1, 1}, {1, 2}, {1, 3}}, e.Current().Offsets())
}

func TestRotateSquareReportsNoChange(t *testing.T) {
	e := newTestEngine(t, KindO)
	before := e.Current()
	assert.False(t, e.TryRotate())
	assert.Equal(t, before, e.Current())
}

func TestToggleHoldFirstUse(t *testing.T) {
	e := newTestEngine(t, KindT, KindS, KindZ)

	require.True(t, e.ToggleHold())
	held, ok := e.Held()
	assert.True(t, ok)
	assert.Equal(t, KindT, held)
	assert.Equal(t, KindS, e.Current().Kind())
	assert.False(t, e.CanHold())
	assert.Equal(t, 1, e.Stats().Holds)
}

func TestToggleHoldTwiceIsNoop(t *testing.T) {
	e := newTestEngine(t, KindT, KindS, KindZ)
	require.True(t, e.ToggleHold())
	after := e.Snapshot()

	assert.False(t, e.ToggleHold())
	assert.Equal(t, after, e.Snapshot())
}

func TestToggleHoldSwapsAfterLock(t *testing.T) {
	e := newTestEngine(t, KindT, KindS, KindZ)
	require.True(t, e.ToggleHold()) // hold T, current S
	e.HardDrop()                    // lock S, current Z
	require.True(t, e.CanHold())
	require.Equal(t, KindZ, e.Current().Kind())

	require.True(t, e.ToggleHold())
	held, _ := e.Held()
	assert.Equal(t, KindZ, held)
	cur := e.Current()
	assert.Equal(t, KindT, cur.Kind())
	assert.Equal(t, Coord{4, 0}, cur.Anchor())
	assert.Equal(t, Shapes[KindT].Cells, cur.Offsets())
}

func TestHeldPieceReturnsAtSpawnGeometry(t *testing.T) {
	e := newTestEngine(t, KindL, KindI)
	require.True(t, e.TryRotate())
	require.True(t, e.MoveLeft())
	require.True(t, e.SoftDrop())
	require.True(t, e.ToggleHold())

	e.HardDrop()
	require.True(t, e.ToggleHold())
	cur := e.Current()
	assert.Equal(t, KindL, cur.Kind())
	assert.Equal(t, Coord{4, 0}, cur.Anchor())
	assert.Equal(t, Shapes[KindL].Cells, cur.Offsets())
}

func TestGameOverWhenSpawnBlocked(t *testing.T) {
	e := newTestEngine(t, KindO)
	for range 4 {
		require.True(t, e.MoveLeft())
	}
	e.board.set(4, 1, FilledCell(core.ColorGray))

	e.HardDrop()
	require.Equal(t, StateGameOver, e.State())
	assert.True(t, e.IsGameOver())
	assert.False(t, e.CanHold())

	board := e.board.Clone()
	snap := e.Snapshot()

	e.TickGravity(10000)
	e.TickGravity(10000)
	assert.False(t, e.MoveLeft())
	assert.False(t, e.SoftDrop())
	assert.False(t, e.TryRotate())
	assert.False(t, e.ToggleHold())
	assert.Equal(t, 0, e.HardDrop())
	e.LockPiece()

	assert.True(t, e.board.Equal(board))
	assert.Equal(t, snap, e.Snapshot())
}

func TestStackToTopEndsGame(t *testing.T) {
	e := newTestEngine(t, KindO)
	for i := 0; i < 9; i++ {
		e.HardDrop()
		require.False(t, e.IsGameOver(), "drop %d", i)
	}
	e.HardDrop()
	assert.True(t, e.IsGameOver())
	assert.Equal(t, 40, e.Snapshot().Filled)
	assert.Equal(t, 10, e.Stats().Pieces)
}

func TestResetStartsNewGame(t *testing.T) {
	e := newTestEngine(t, KindO, KindT)
	e.ToggleHold()
	for !e.IsGameOver() {
		e.HardDrop()
	}

	e.Reset()
	snap := e.Snapshot()
	assert.Equal(t, StateFalling, snap.State)
	assert.Equal(t, 0, snap.Filled)
	assert.False(t, snap.HasHeld)
	assert.True(t, snap.CanHold)
	assert.Equal(t, 0, snap.Pieces)
	assert.Equal(t, 0, snap.Holds)
	assert.Equal(t, 0, e.Stats().Locked(KindO))
	assert.Equal(t, 0, e.FallTimer())
}

func TestSameSequenceSameGame(t *testing.T) {
	play := func() Snapshot {
		e := newTestEngine(t, KindI, KindJ, KindS, KindL, KindZ)
		for i := 0; i < 30 && !e.IsGameOver(); i++ {
			switch i % 5 {
			case 0:
				e.TryRotate()
			case 1:
				e.MoveLeft()
			case 2:
				e.TickGravity(250)
			case 3:
				e.ToggleHold()
			case 4:
				e.HardDrop()
			}
		}
		return e.Snapshot()
	}
	assert.Equal(t, play(), play())
}
