package engine

// Snapshot is a value copy of the observable engine state.
type Snapshot struct {
	State     State
	Kind      Kind
	Anchor    Coord
	Offsets   [4]Offset
	Held      Kind
	HasHeld   bool
	CanHold   bool
	FallTimer int
	Pieces    int
	Lines     int
	Holds     int
	Filled    int
}

// Snapshot captures the current state.
func (e *Engine) Snapshot() Snapshot {
	return Snapshot{
		State:     e.state,
		Kind:      e.current.Kind(),
		Anchor:    e.current.Anchor(),
		Offsets:   e.current.Offsets(),
		Held:      e.held,
		HasHeld:   e.hasHeld,
		CanHold:   e.canHold,
		FallTimer: e.fallTimer,
		Pieces:    e.stats.Pieces,
		Lines:     e.stats.Lines,
		Holds:     e.stats.Holds,
		Filled:    e.board.FilledCount(),
	}
}
