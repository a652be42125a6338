package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/grid-snake/internal/platform/tui"
	"github.com/vovakirdan/grid-snake/internal/registry"
	"github.com/vovakirdan/grid-snake/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play [variant]",
	Short: "Play a variant",
	Long: `Start playing the given variant, "snake" when omitted.

Controls:
  Arrows/WASD/HJKL - Steer
  P/Space          - Pause
  R                - Restart (after game over)
  Ctrl+S           - Save a text screenshot
  Q/Ctrl+C         - Quit

Examples:
  snake play
  snake play snake_classic
  snake play --fps 15 --seed 7
  snake play --config ./big-board.yaml`,
	Args:              cobra.MaximumNArgs(1),
	ValidArgsFunction: completeVariants,
	Run:               runPlay,
}

// terminalSize returns the size of stdout, or 80x24 when it is not a terminal.
func terminalSize() (int, int) {
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		return w, h
	}
	return 80, 24
}

func runPlay(cmd *cobra.Command, args []string) {
	gameID := defaultVariant
	if len(args) > 0 {
		gameID = args[0]
	}
	exitIfUnknown(gameID)

	width, height := terminalSize()
	cfg, err := loadRuntime(cmd, width, height)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	logger := newLogger("snake")

	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open round history", "error", err)
		// Continue without storage - the game still works
		store = nil
	}

	runErr := tui.Run(game, cfg, tui.Options{Store: store, Logger: logger})

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
