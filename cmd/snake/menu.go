package main

import (
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
	"github.com/vovakirdan/tui-snake/internal/platform/tui"
	"github.com/vovakirdan/tui-snake/internal/registry"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start with a menu",
	Long: `Start in interactive menu mode.

Pick Play to start a run, History to browse past sessions.
Leaving a game or the history brings you back to the menu.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select
  Q            - Quit

Examples:
  snake menu
  snake menu --fps 30
  snake menu --db ./sessions.db`,
	Args:        cobra.NoArgs,
	Annotations: map[string]string{annotationTUI: "true"},
	RunE:        runMenu,
}

func runMenu(_ *cobra.Command, _ []string) error {
	if _, err := config.LoadSnake(flagConfig); err != nil {
		return err
	}

	store := openStore()
	if store != nil {
		defer store.Close()
	}

	logger := log.Default().WithPrefix("menu")
	cfg := terminalConfig()

	for {
		res, err := tui.RunMenu(store, cfg)
		if err != nil {
			return err
		}
		cfg = res.Config

		switch res.Choice {
		case tui.ChoicePlay:
			game, err := registry.Create(res.GameID)
			if err != nil {
				logger.Error("create game", "id", res.GameID, "error", err)
				continue
			}
			if flagSeed == 0 {
				cfg.Seed = time.Now().UnixNano()
			}
			if err := tui.Run(game, store, cfg, playerName()); err != nil {
				return err
			}

		case tui.ChoiceHistory:
			goBack, err := tui.RunHistory(store, snake.ID, cfg.ScreenW, cfg.ScreenH)
			if err != nil {
				return err
			}
			if !goBack {
				return nil
			}

		default:
			return nil
		}
	}
}
