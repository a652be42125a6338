// snake is a grid snake game for the terminal.
//
// Usage:
//
//	snake list               - List available variants
//	snake play [variant]     - Play a variant (default: snake)
//	snake menu               - Pick variants interactively
//	snake serve              - Start SSH server for remote play
//	snake scores [variant]   - Show round history for a variant
//
// Global flags:
//
//	--fps <rate>        - Set tick rate (default: from config, 9)
//	--seed <value>      - Set RNG seed for reproducible gameplay
//	--db <path>         - Set database path (default: ~/.snake/rounds.db)
//	--config <path>     - Use a custom snake.yaml
//	--log-level <level> - debug, info, warn or error
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/grid-snake/internal/config"
	"github.com/vovakirdan/grid-snake/internal/core"
	"github.com/vovakirdan/grid-snake/internal/games/snake"
	"github.com/vovakirdan/grid-snake/internal/registry"
)

const defaultVariant = "snake"

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagConfig   string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "snake",
	Short: "Grid snake in your terminal",
	Long: `Steer a snake around a grid, eat fruit to grow, and avoid the walls
and your own tail.

Available commands:
  list     - Show all variants
  play     - Play a variant directly
  menu     - Interactive variant picker
  serve    - Start SSH server for remote play
  scores   - View round history

Examples:
  snake play
  snake play snake_classic --seed 42
  snake menu --fps 12
  snake serve --ssh :2222
  snake scores snake`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", core.DefaultTickRate, "Tick rate in steps per second (overrides config)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.snake/rounds.db", "Path to round history database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom snake.yaml")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "warn", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}

// newLogger builds the stderr logger for the chosen level.
func newLogger(prefix string) *log.Logger {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
	})
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		logger.Warn("unknown log level, using warn", "level", flagLogLevel)
		level = log.WarnLevel
	}
	logger.SetLevel(level)
	return logger
}

// loadRuntime validates the config file and builds the runtime config.
// --fps wins over timing.tick_rate only when given explicitly.
func loadRuntime(cmd *cobra.Command, width, height int) (core.RuntimeConfig, error) {
	cfg, err := config.LoadSnake(flagConfig)
	if err != nil {
		return core.RuntimeConfig{}, err
	}
	snake.SetConfigPath(flagConfig)

	tickRate := cfg.Timing.TickRate
	if cmd.Flags().Changed("fps") {
		tickRate = flagFPS
	}
	if tickRate <= 0 {
		return core.RuntimeConfig{}, fmt.Errorf("--fps must be positive, got %d", tickRate)
	}

	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: tickRate,
		Seed:     flagSeed,
	}, nil
}

// completeVariants offers the registered variant IDs for the first argument.
func completeVariants(_ *cobra.Command, args []string, _ string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	return registry.IDs(), cobra.ShellCompDirectiveNoFileComp
}

// exitIfUnknown prints the standard unknown-variant error and exits.
func exitIfUnknown(id string) {
	if registry.Exists(id) {
		return
	}
	fmt.Fprintf(os.Stderr, "Error: unknown variant %q\n", id)
	fmt.Fprintln(os.Stderr, "Run 'snake list' to see available variants.")
	os.Exit(1)
}
