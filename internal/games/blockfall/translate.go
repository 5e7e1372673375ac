package blockfall

import (
	"github.com/vovakirdan/blockfall/internal/core"
	"github.com/vovakirdan/blockfall/internal/games/blockfall/engine"
)

// InputTranslator maps platform actions onto engine commands.
// Pause, restart and quit are handled by the caller.
type InputTranslator struct {
	eng *engine.Engine
}

// NewInputTranslator creates a translator driving the given engine.
func NewInputTranslator(eng *engine.Engine) InputTranslator {
	return InputTranslator{eng: eng}
}

// Apply runs every action in the frame in arrival order and returns how
// many of them changed the game.
func (t InputTranslator) Apply(in core.InputFrame) int {
	applied := 0
	for _, a := range in.Actions {
		if t.eng.IsGameOver() {
			break
		}
		if t.Do(a) {
			applied++
		}
	}
	return applied
}

// Do runs a single action.
func (t InputTranslator) Do(a core.Action) bool {
	switch a {
	case core.ActionLeft:
		return t.eng.MoveLeft()
	case core.ActionRight:
		return t.eng.MoveRight()
	case core.ActionRotate:
		return t.eng.TryRotate()
	case core.ActionSoftDrop:
		return t.eng.SoftDrop()
	case core.ActionHardDrop:
		t.eng.HardDrop()
		return true
	case core.ActionHold:
		return t.eng.ToggleHold()
	default:
		return false
	}
}
