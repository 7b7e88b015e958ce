package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/dome-defender/internal/core"
	"github.com/vovakirdan/dome-defender/internal/games/domedefender"
	"github.com/vovakirdan/dome-defender/internal/platform/tui"
	"github.com/vovakirdan/dome-defender/internal/registry"
)

var flagHold int

var playCmd = &cobra.Command{
	Use:   "play [game]",
	Short: "Play a game",
	Long: `Start playing the specified game, Dome Defender by default.

Controls (default players):
  W/A/S/D      - Player 1
  Arrow keys   - Player 2
  Enter        - New game
  Esc          - End the game
  P            - Pause
  Q/Ctrl+C     - Quit

Terminals do not report key releases, so a key counts as held for a
short window after each press or auto-repeat (see --hold).

Examples:
  domedefender play
  domedefender play sandbox
  domedefender play --seed 42`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func init() {
	playCmd.Flags().IntVar(&flagHold, "hold", int(tui.DefaultHoldWindow.Milliseconds()), "Key hold window in milliseconds")
}

// runtimeConfig builds the runtime config from the flags and terminal size.
func runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed
	return cfg
}

func hostOptions() tui.Options {
	return tui.Options{
		HoldWindow: holdWindow(),
		Logger:     logger,
	}
}

func runPlay(_ *cobra.Command, args []string) error {
	gameID := domedefender.ID
	if len(args) == 1 {
		gameID = args[0]
	}

	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown game %q, run 'domedefender list' to see available games", gameID)
	}

	game, err := registry.Create(gameID)
	if err != nil {
		return fmt.Errorf("creating game: %w", err)
	}

	if err := tui.Run(game, runtimeConfig(), hostOptions()); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}
