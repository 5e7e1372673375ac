package main

import (
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/blockfall/internal/config"
	"github.com/vovakirdan/blockfall/internal/core"
	"github.com/vovakirdan/blockfall/internal/games/blockfall"
	"github.com/vovakirdan/blockfall/internal/platform/tui"
	"github.com/vovakirdan/blockfall/internal/registry"
	"github.com/vovakirdan/blockfall/internal/storage"
)

var flagConfig string

var playCmd = &cobra.Command{
	Use:   "play [mode]",
	Short: "Play blockfall",
	Long: `Start playing. The default mode is "blockfall"; "blockfall_bag" deals
the seven pieces in shuffled rounds.

Controls:
  Left/H/A         - Move left
  Right/L/D        - Move right
  Up/K/W/X         - Rotate
  Down/J/S         - Soft drop
  Space            - Hard drop
  C/V              - Hold
  P/Esc            - Pause
  R                - Restart (after game over)
  Q/Ctrl+C         - Quit

Examples:
  blockfall play
  blockfall play blockfall_bag
  blockfall play --config ./my-blockfall.yaml`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
}

func runPlay(cmd *cobra.Command, args []string) error {
	mode := "blockfall"
	if len(args) > 0 {
		mode = args[0]
	}

	if !registry.Exists(mode) {
		return fmt.Errorf("unknown mode %q, run 'blockfall list' to see available modes", mode)
	}

	// Fail before the TUI starts if any config on the search path is unusable.
	if _, err := config.LoadBlockfall(flagConfig); err != nil {
		return err
	}
	blockfall.SetConfigPath(flagConfig)

	logger, closer, err := newLogger(flagLogLevel, flagLogFile)
	if err != nil {
		return err
	}
	defer closer.Close()

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open journal, games will not be recorded", "error", err)
		store = nil
	} else {
		defer store.Close()
	}

	game, err := registry.Create(mode)
	if err != nil {
		return err
	}

	sessionID := uuid.NewString()
	logger.Info("session started", "mode", mode, "session", sessionID, "seed", flagSeed)

	if err := tui.Run(game, store, logger, cfg, sessionID); err != nil {
		logger.Error("tui exited", "error", err)
		return err
	}
	logger.Info("session ended", "session", sessionID)

	if store != nil {
		printSessionSummary(store, sessionID)
	}
	return nil
}

// printSessionSummary prints the games journaled during this session.
func printSessionSummary(store *storage.Store, sessionID string) {
	games, err := store.SessionGames(sessionID)
	if err != nil || len(games) == 0 {
		return
	}

	var lines, pieces int
	for _, g := range games {
		lines += g.Lines
		pieces += g.Pieces
	}
	fmt.Printf("Played %d game(s): %d lines, %d pieces.\n", len(games), lines, pieces)
}
