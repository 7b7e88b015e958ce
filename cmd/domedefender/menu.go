package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/dome-defender/internal/platform/tui"
	"github.com/vovakirdan/dome-defender/internal/registry"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start with a game picker menu",
	Long: `Start in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to select a game.
After a game ends, you return to the menu to play again.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select game
  Q/Esc        - Quit`,
	RunE: runMenu,
}

func holdWindow() time.Duration {
	return time.Duration(flagHold) * time.Millisecond
}

func runMenu(_ *cobra.Command, _ []string) error {
	cfg := runtimeConfig()

	for {
		result, err := tui.RunMenu(cfg)
		if err != nil {
			return err
		}
		if result.Quit {
			return nil
		}
		// Keep any size change from the menu
		cfg = result.Config

		game, err := registry.Create(result.GameID)
		if err != nil {
			return fmt.Errorf("creating game: %w", err)
		}
		if err := tui.Run(game, cfg, hostOptions()); err != nil {
			return fmt.Errorf("running game: %w", err)
		}
	}
}
