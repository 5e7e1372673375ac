package engine

import (
	"fmt"

	"github.com/kamstrup/intmap"
)

// State is the engine's lifecycle state.
type State int

const (
	StateFalling  State = iota // Normal play
	StateGameOver              // Terminal until Reset
)

func (s State) String() string {
	switch s {
	case StateFalling:
		return "Falling"
	case StateGameOver:
		return "GameOver"
	default:
		return "Unknown"
	}
}

// Config holds the engine's construction parameters.
type Config struct {
	Width        int // Well columns
	Height       int // Well rows
	FallInterval int // Accumulated time needed for one gravity step
	FallResidual int // Accumulator value after a gravity step
}

// DefaultConfig returns the canonical 10x20 well with a 200/100 fall timer.
func DefaultConfig() Config {
	return Config{
		Width:        10,
		Height:       20,
		FallInterval: 200,
		FallResidual: 100,
	}
}

// Validate checks the construction preconditions.
func (c Config) Validate() error {
	if c.Width < 5 {
		return fmt.Errorf("engine: board width %d is below 5", c.Width)
	}
	if c.Height < 2 {
		return fmt.Errorf("engine: board height %d is below 2", c.Height)
	}
	if c.FallInterval <= 0 {
		return fmt.Errorf("engine: fall interval must be positive, got %d", c.FallInterval)
	}
	if c.FallResidual < 0 || c.FallResidual >= c.FallInterval {
		return fmt.Errorf("engine: fall residual %d outside [0, %d)", c.FallResidual, c.FallInterval)
	}
	return nil
}

// Stats counts what happened since the last Reset.
type Stats struct {
	Pieces int // Pieces locked
	Lines  int // Rows cleared
	Holds  int // Successful holds
	kinds  *intmap.Map[Kind, int]
}

// Locked returns how many pieces of the given kind were locked.
func (s Stats) Locked(k Kind) int {
	if s.kinds == nil {
		return 0
	}
	n, _ := s.kinds.Get(k)
	return n
}

// clone copies the counters so later locks and resets do not leak into it.
func (s Stats) clone() Stats {
	c := s
	c.kinds = intmap.New[Kind, int](KindCount)
	if s.kinds != nil {
		for k, n := range s.kinds.All() {
			c.kinds.Put(k, n)
		}
	}
	return c
}

// Engine is the game state: it owns the board, the active piece and the
// held kind, and applies every command with speculate-and-revert.
type Engine struct {
	cfg   Config
	rnd   Randomizer
	board *Board

	state   State
	current Piece
	held    Kind
	hasHeld bool
	canHold bool

	fallTimer int
	stats     Stats
}

// NewEngine builds an engine and spawns the first piece.
// It fails fast on an invalid configuration or a nil randomizer.
func NewEngine(cfg Config, rnd Randomizer) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if rnd == nil {
		return nil, fmt.Errorf("engine: nil randomizer")
	}
	board, err := NewBoard(cfg.Width, cfg.Height)
	if err != nil {
		return nil, err
	}

	e := &Engine{
		cfg:   cfg,
		rnd:   rnd,
		board: board,
		stats: Stats{kinds: intmap.New[Kind, int](KindCount)},
	}
	e.Reset()
	return e, nil
}

// Reset starts a new game on the same engine.
func (e *Engine) Reset() {
	e.board.Reset()
	e.state = StateFalling
	e.hasHeld = false
	e.held = 0
	e.canHold = true
	e.fallTimer = 0
	e.stats.Pieces, e.stats.Lines, e.stats.Holds = 0, 0, 0
	e.stats.kinds.Clear()
	e.SpawnRandomPiece()
	e.checkSpawn()
}

// spawnAnchor is where every new piece starts.
func (e *Engine) spawnAnchor() (int, int) {
	return e.cfg.Width/2 - 1, 0
}

// SpawnPiece replaces the current piece with a fresh one of the given kind
// at the spawn anchor. It does not check validity.
func (e *Engine) SpawnPiece(kind Kind) {
	x, y := e.spawnAnchor()
	e.current = NewPiece(kind, x, y)
}

// SpawnRandomPiece spawns a piece of the kind chosen by the randomizer.
func (e *Engine) SpawnRandomPiece() {
	e.SpawnPiece(e.rnd.Next())
}

// checkSpawn ends the game when the freshly spawned piece does not fit.
func (e *Engine) checkSpawn() {
	if !e.board.IsValidPosition(&e.current) {
		e.state = StateGameOver
	}
}

// TickGravity adds elapsed time to the fall accumulator and, once the
// interval is reached, moves the piece down one row or locks it.
func (e *Engine) TickGravity(elapsed int) {
	if e.state == StateGameOver {
		return
	}
	e.fallTimer += elapsed
	if e.fallTimer < e.cfg.FallInterval {
		return
	}

	e.current.Move(0, 1)
	if !e.board.IsValidPosition(&e.current) {
		e.current.Move(0, -1)
		e.LockPiece()
	}
	e.fallTimer = e.cfg.FallResidual
}

// LockPiece commits the current piece, clears full rows, re-arms hold and
// spawns the next piece. The game ends if that piece does not fit.
//
// Gravity and hard drop revert the failing downward step before calling
// this, so the committed position is always the last valid one.
func (e *Engine) LockPiece() {
	if e.state == StateGameOver {
		return
	}
	e.board.Commit(&e.current)

	kind := e.current.Kind()
	n, _ := e.stats.kinds.Get(kind)
	e.stats.kinds.Put(kind, n+1)
	e.stats.Pieces++
	e.stats.Lines += e.board.ClearFullRows()

	e.canHold = true
	e.SpawnRandomPiece()
	e.checkSpawn()
}

// TryMove shifts the current piece and reverts it when the result is
// invalid. A successful downward move resets the fall accumulator.
func (e *Engine) TryMove(dx, dy int) bool {
	if e.state == StateGameOver {
		return false
	}
	e.current.Move(dx, dy)
	if !e.board.IsValidPosition(&e.current) {
		e.current.Move(-dx, -dy)
		return false
	}
	if dy > 0 {
		e.fallTimer = 0
	}
	return true
}

// MoveLeft shifts the current piece one column left.
func (e *Engine) MoveLeft() bool {
	return e.TryMove(-1, 0)
}

// MoveRight shifts the current piece one column right.
func (e *Engine) MoveRight() bool {
	return e.TryMove(1, 0)
}

// SoftDrop moves the current piece one row down without locking it.
func (e *Engine) SoftDrop() bool {
	return e.TryMove(0, 1)
}

// TryRotate rotates the current piece and undoes the rotation when the
// result is invalid.
func (e *Engine) TryRotate() bool {
	if e.state == StateGameOver {
		return false
	}
	before := e.current.Offsets()
	e.current.Rotate()
	if !e.board.IsValidPosition(&e.current) {
		e.current.UndoRotate()
		return false
	}
	return e.current.Offsets() != before
}

// HardDrop moves the current piece down as far as it fits and locks it.
// It returns the number of rows dropped.
func (e *Engine) HardDrop() int {
	if e.state == StateGameOver {
		return 0
	}
	rows := 0
	for {
		e.current.Move(0, 1)
		if !e.board.IsValidPosition(&e.current) {
			e.current.Move(0, -1)
			break
		}
		rows++
	}
	e.LockPiece()
	return rows
}

// ToggleHold stores the current piece's kind, or swaps it with the held
// kind. Both pieces restart at spawn geometry. Holding is allowed once per
// lock; it returns false when the call was a no-op.
func (e *Engine) ToggleHold() bool {
	if e.state == StateGameOver || !e.canHold {
		return false
	}

	kind := e.current.Kind()
	if e.hasHeld {
		e.SpawnPiece(e.held)
	} else {
		e.SpawnRandomPiece()
	}
	e.held = kind
	e.hasHeld = true
	e.canHold = false
	e.stats.Holds++
	e.checkSpawn()
	return true
}

// State returns the lifecycle state.
func (e *Engine) State() State {
	return e.state
}

// IsGameOver reports whether the game has ended.
func (e *Engine) IsGameOver() bool {
	return e.state == StateGameOver
}

// Board returns a read-only view of the well.
func (e *Engine) Board() BoardView {
	return e.board
}

// Current returns a copy of the active piece.
func (e *Engine) Current() Piece {
	return e.current
}

// Held returns the held kind, if any.
func (e *Engine) Held() (Kind, bool) {
	return e.held, e.hasHeld
}

// CanHold reports whether ToggleHold would act.
func (e *Engine) CanHold() bool {
	return e.canHold && e.state == StateFalling
}

// FallTimer returns the gravity accumulator.
func (e *Engine) FallTimer() int {
	return e.fallTimer
}

// Stats returns a copy of the counters since the last Reset.
func (e *Engine) Stats() Stats {
	return e.stats.clone()
}

// Score is the placeholder counter: rows cleared.
func (e *Engine) Score() int {
	return e.stats.Lines
}

// Config returns the construction parameters.
func (e *Engine) Config() Config {
	return e.cfg
}
