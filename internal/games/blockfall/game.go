// Package blockfall adapts the falling-block engine to the platform's
// registry.Game interface: it owns the clock, translates input actions into
// engine commands and renders the well into a core.Screen.
package blockfall

import (
	"math/rand"

	"github.com/vovakirdan/blockfall/internal/config"
	"github.com/vovakirdan/blockfall/internal/core"
	"github.com/vovakirdan/blockfall/internal/games/blockfall/engine"
	"github.com/vovakirdan/blockfall/internal/registry"
)

// Mode selects how the next piece kind is chosen.
type Mode string

const (
	ModeClassic Mode = "classic" // Uniform independent choice
	ModeBag     Mode = "bag"     // Shuffled rounds of all seven kinds
)

// configPath is the custom config file used by Reset; empty means the
// standard search order.
var configPath string

// SetConfigPath sets the config file used by subsequent Reset calls.
func SetConfigPath(path string) {
	configPath = path
}

// Game implements registry.Game for blockfall.
type Game struct {
	mode       Mode
	cfg        config.BlockfallConfig
	eng        *engine.Engine
	translator InputTranslator
	rng        *rand.Rand

	tick       uint64
	tickMillis int

	screenW int
	screenH int

	paused    bool
	tooSmall  bool
	configErr error
}

// New creates a game using the uniform randomizer.
func New() *Game {
	return &Game{mode: ModeClassic}
}

// NewBag creates a game using the 7-bag randomizer.
func NewBag() *Game {
	return &Game{mode: ModeBag}
}

func init() {
	registry.Register("blockfall", func() registry.Game {
		return New()
	})
	registry.Register("blockfall_bag", func() registry.Game {
		return NewBag()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	if g.mode == ModeBag {
		return "blockfall_bag"
	}
	return "blockfall"
}

// Title returns the display name.
func (g *Game) Title() string {
	if g.mode == ModeBag {
		return "Blockfall (7-bag)"
	}
	return "Blockfall"
}

// Reset loads the configuration and starts a new game.
// A configuration error leaves the game in a terminal state that renders
// the error instead of the well.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.tick = 0
	g.tickMillis = cfg.TickMillis()
	g.paused = false
	g.configErr = nil
	g.eng = nil

	gameCfg, err := config.LoadBlockfall(configPath)
	if err != nil {
		g.configErr = err
		return
	}
	g.cfg = gameCfg

	eng, err := engine.NewEngine(engine.Config{
		Width:        gameCfg.Board.Width,
		Height:       gameCfg.Board.Height,
		FallInterval: gameCfg.Timing.FallInterval,
		FallResidual: gameCfg.Timing.FallResidual,
	}, g.newRandomizer())
	if err != nil {
		g.configErr = err
		return
	}
	g.eng = eng
	g.translator = NewInputTranslator(eng)
	g.Resize(cfg.ScreenW, cfg.ScreenH)
}

func (g *Game) newRandomizer() engine.Randomizer {
	if g.mode == ModeBag {
		return engine.NewBagRandomizer(g.rng)
	}
	return engine.NewUniformRandomizer(g.rng)
}

// Resize records the terminal size. The simulation halts while the
// terminal is too small to show the whole well.
func (g *Game) Resize(w, h int) {
	g.screenW = w
	g.screenH = h
	if g.eng == nil {
		g.tooSmall = false
		return
	}
	reqW, reqH := g.requiredSize()
	g.tooSmall = w < reqW || h < reqH
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.eng == nil {
		return core.StepResult{State: g.State()}
	}

	// Handle restart
	if in.Has(core.ActionRestart) && g.eng.IsGameOver() {
		g.eng.Reset()
		g.tick = 0
		g.paused = false
		return core.StepResult{State: g.State()}
	}

	// Handle pause toggle
	if in.Has(core.ActionPause) && !g.eng.IsGameOver() {
		g.paused = !g.paused
	}

	if g.paused || g.tooSmall || g.eng.IsGameOver() {
		return core.StepResult{State: g.State()}
	}

	g.tick++
	g.translator.Apply(in)
	g.eng.TickGravity(g.tickMillis)

	return core.StepResult{State: g.State()}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.eng == nil {
		return core.GameState{GameOver: true}
	}
	return core.GameState{
		Score:    g.eng.Score(),
		GameOver: g.eng.IsGameOver(),
		Paused:   g.paused,
	}
}

// Summary returns the counters for the current session.
func (g *Game) Summary() core.Summary {
	if g.eng == nil {
		return core.Summary{}
	}
	stats := g.eng.Stats()
	return core.Summary{
		Lines:  stats.Lines,
		Pieces: stats.Pieces,
		Holds:  stats.Holds,
		Ticks:  g.tick,
	}
}

// ConfigError returns the error that prevented the game from starting.
func (g *Game) ConfigError() error {
	return g.configErr
}

// Snapshot captures the engine state plus the adapter's own counters.
type Snapshot struct {
	Tick   uint64
	Paused bool
	Engine engine.Snapshot
}

// Snapshot returns a value copy of the current state.
func (g *Game) Snapshot() Snapshot {
	s := Snapshot{Tick: g.tick, Paused: g.paused}
	if g.eng != nil {
		s.Engine = g.eng.Snapshot()
	}
	return s
}
