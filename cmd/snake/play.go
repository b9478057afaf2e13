package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
	"github.com/vovakirdan/tui-snake/internal/platform/tui"
	"github.com/vovakirdan/tui-snake/internal/registry"
	"github.com/vovakirdan/tui-snake/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in this terminal",
	Long: `Start a game in the current terminal.

Controls:
  Arrows/WASD/hjkl - Steer (reversing is ignored)
  P                - Pause
  R                - Restart with a new seed
  Tab              - Toggle the inspector
  Ctrl+S           - Save a screenshot to ~/.snake/screenshots
  Esc/B, Q/Ctrl+C  - Quit

A summary of every run is saved to the session database.

Examples:
  snake play
  snake play --fps 30
  snake play --config ./snake.yaml --seed 7`,
	Args:        cobra.NoArgs,
	Annotations: map[string]string{annotationTUI: "true"},
	RunE:        runPlay,
}

func runPlay(_ *cobra.Command, _ []string) error {
	// Fail before the screen switches if the config is broken
	if _, err := config.LoadSnake(flagConfig); err != nil {
		return err
	}

	game, err := registry.Create(snake.ID)
	if err != nil {
		return err
	}

	store := openStore()
	if store != nil {
		defer store.Close()
	}

	return tui.Run(game, store, terminalConfig(), playerName())
}

// terminalConfig builds the runtime config from the terminal size and
// global flags.
func terminalConfig() core.RuntimeConfig {
	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width, height = w, h
	}
	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}

// openStore opens the session database. The game still runs without it.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open session database: %v\n", err)
		return nil
	}
	return store
}
