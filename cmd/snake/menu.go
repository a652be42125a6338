package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/grid-snake/internal/platform/tui"
	"github.com/vovakirdan/grid-snake/internal/registry"
	"github.com/vovakirdan/grid-snake/internal/storage"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Pick a variant from a menu",
	Long: `Start in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to play, Tab for round history.
Esc after game over or while paused returns to the menu.

Examples:
  snake menu
  snake menu --fps 12
  snake menu --db ./rounds.db`,
	Args: cobra.NoArgs,
	Run:  runMenu,
}

func runMenu(cmd *cobra.Command, _ []string) {
	width, height := terminalSize()
	cfg, err := loadRuntime(cmd, width, height)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	logger := newLogger("snake")

	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open round history", "error", err)
		store = nil
	}
	if store != nil {
		defer store.Close()
	}

	for {
		menuResult, err := tui.RunMenu(cfg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return
		}
		cfg = menuResult.Config

		switch {
		case menuResult.Quit:
			return

		case menuResult.WantsScoreboard:
			goBack, sbErr := tui.RunScoreboard(store, cfg.ScreenW, cfg.ScreenH)
			if sbErr != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", sbErr)
			}
			if !goBack {
				return
			}
			continue
		}

		game, err := registry.Create(menuResult.GameID)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
			continue
		}

		model, err := tui.RunGame(game, cfg, tui.Options{Store: store, Logger: logger, Menu: true})
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
			return
		}
		if model.IsQuitting() {
			return
		}
	}
}
