package tui

import (
	"io"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/blockfall/internal/core"
	"github.com/vovakirdan/blockfall/internal/registry"
	"github.com/vovakirdan/blockfall/internal/storage"
)

// helpHeight is the number of rows reserved under the game for the short key help.
const helpHeight = 1

// resizer is implemented by games that can follow a terminal resize
// without restarting.
type resizer interface {
	Resize(w, h int)
}

// summarizer is implemented by games that report session counters.
type summarizer interface {
	Summary() core.Summary
}

// Model is the Bubble Tea model for running one game.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	store      *storage.Store
	logger     *log.Logger
	config     core.RuntimeConfig
	sessionID  string
	keys       GameKeyMap
	help       help.Model
	inputFrame core.InputFrame
	gameState  core.GameState
	lastPieces int
	quitting   bool
	recorded   bool // Whether the current game has been written to the journal
}

// NewModel creates a new Bubble Tea model for the given game.
// store and logger may be nil. An empty sessionID gets a fresh UUID.
func NewModel(game registry.Game, store *storage.Store, logger *log.Logger, cfg core.RuntimeConfig, sessionID string) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}
	if sessionID == "" {
		sessionID = uuid.NewString()
	}

	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, max(1, cfg.ScreenH-helpHeight)),
		store:      store,
		logger:     logger.With("session", sessionID, "mode", game.ID()),
		config:     cfg,
		sessionID:  sessionID,
		keys:       DefaultGameKeyMap(),
		help:       help.New(),
		inputFrame: core.NewInputFrame(),
	}
}

// gameConfig returns the runtime config with the help rows removed.
func (m Model) gameConfig() core.RuntimeConfig {
	cfg := m.config
	cfg.ScreenH = max(1, cfg.ScreenH-helpHeight)
	return cfg
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.gameConfig())
	m.logger.Info("game started", "seed", m.config.Seed)
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.keys.Action(msg)
	if action == core.ActionQuit {
		m.record(storage.EndQuit)
		m.logger.Info("quit", "lines", m.gameState.Score)
		m.quitting = true
		return m, tea.Quit
	}
	if action == core.ActionRestart && !m.gameState.GameOver {
		return m, nil
	}

	m.inputFrame.Set(action)
	return m, nil
}

// handleResize processes window resize events.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.help.Width = msg.Width

	cfg := m.gameConfig()
	m.screen.Resize(cfg.ScreenW, cfg.ScreenH)

	if r, ok := m.game.(resizer); ok {
		r.Resize(cfg.ScreenW, cfg.ScreenH)
	} else if !m.gameState.GameOver {
		m.game.Reset(cfg)
	}

	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	wasOver := m.gameState.GameOver

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State
	m.inputFrame.Clear()

	if pieces := m.summary().Pieces; pieces != m.lastPieces {
		if pieces > m.lastPieces {
			m.logger.Debug("piece locked", "pieces", pieces, "lines", m.gameState.Score)
		}
		m.lastPieces = pieces
	}

	switch {
	case m.gameState.GameOver && !wasOver:
		m.logger.Info("game over", "lines", m.gameState.Score, "pieces", m.lastPieces)
		m.record(storage.EndGameOver)
	case wasOver && !m.gameState.GameOver:
		m.logger.Info("game restarted")
		m.recorded = false
	}

	return m, tickCmd(m.config.TickRate)
}

// summary returns the game's counters, or zero if it reports none.
func (m Model) summary() core.Summary {
	if s, ok := m.game.(summarizer); ok {
		return s.Summary()
	}
	return core.Summary{Lines: m.gameState.Score}
}

// record writes the current game to the journal once.
// Games that never ticked are not recorded.
func (m *Model) record(reason string) {
	if m.recorded {
		return
	}
	m.recorded = true

	sum := m.summary()
	if m.store == nil || sum.Ticks == 0 {
		return
	}

	id, err := m.store.SaveSession(storage.SessionRecord{
		SessionID: m.sessionID,
		Mode:      m.game.ID(),
		Lines:     sum.Lines,
		Pieces:    sum.Pieces,
		Holds:     sum.Holds,
		Ticks:     int64(sum.Ticks),
		TickRate:  m.config.TickRate,
		EndReason: reason,
	})
	if err != nil {
		m.logger.Error("could not save session", "err", err)
		return
	}
	m.logger.Debug("session saved", "id", id, "reason", reason)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen) + "\n" + helpStyle.Render(m.help.View(m.keys))
}

// Run starts the Bubble Tea program for one local session. Games finished
// during the program are journaled under sessionID.
func Run(game registry.Game, store *storage.Store, logger *log.Logger, cfg core.RuntimeConfig, sessionID string) error {
	model := NewModel(game, store, logger, cfg, sessionID)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
