// domedefender is a two-player terminal game: the contender tries to reach the
// dome while the defender tries to catch the contender first.
//
// Usage:
//
//	domedefender play [game]   - Play a game (default: domedefender)
//	domedefender list          - List available games
//	domedefender menu          - Start menu to pick games interactively
//	domedefender config        - Print the effective configuration
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible gameplay
//	--config <path>       - Use a custom configuration file
//	--log-file <path>     - Write logs to a file (the terminal is busy with the game)
//	--log-level <level>   - Log level: debug, info, warn, error
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/dome-defender/internal/config"
	"github.com/vovakirdan/dome-defender/internal/games/domedefender"
	// Import games to register them
	_ "github.com/vovakirdan/dome-defender/internal/games/sandbox"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagConfig   string
	flagLogFile  string
	flagLogLevel string
)

var (
	logger  = log.New(io.Discard)
	logSink io.Closer
	gameCfg config.DomeConfig
)

func main() {
	err := rootCmd.Execute()
	if logSink != nil {
		logSink.Close()
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "domedefender",
	Short: "Dome Defender - a two-player chase around a dome",
	Long: `Dome Defender is a two-player terminal game.

The contender scores by touching the dome in the middle of the arena.
The defender scores by catching the contender first. Roles swap every
time the contender reaches the dome. Pick up modifiers to change speed,
size or borders, or to win a free hit.

Available commands:
  play     - Play a game directly
  list     - Show all available games
  menu     - Interactive game picker menu
  config   - Print the effective configuration

Examples:
  domedefender play
  domedefender play --seed 42 --fps 30
  domedefender play --config ./my-dome.yaml
  domedefender config > ~/.dome-defender/config.yaml`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(configCmd)
}

// setup builds the logger and loads the game configuration for every subcommand.
func setup(_ *cobra.Command, _ []string) error {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return fmt.Errorf("invalid --log-level: %w", err)
	}

	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		logSink = f
		logger = log.NewWithOptions(f, log.Options{
			ReportTimestamp: true,
			Prefix:          "domedefender",
			Level:           level,
		})
	}

	gameCfg, err = config.Load(flagConfig)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	logger.Debug("configuration loaded", "path", flagConfig, "reset_counters", gameCfg.Game.ResetCounters)

	domedefender.SetConfig(gameCfg)
	domedefender.SetLogger(logger)
	return nil
}
