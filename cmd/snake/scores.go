package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/grid-snake/internal/registry"
	"github.com/vovakirdan/grid-snake/internal/storage"
)

var (
	flagScoresLimit  int
	flagScoresRecent bool
	flagScoresClear  bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores [variant]",
	Short: "Show round history for a variant",
	Long: `Display the best recorded rounds for a variant, "snake" when omitted.

The in-game high score always starts at zero; this history is only a record
of finished rounds.

Examples:
  snake scores
  snake scores snake_classic --limit 20
  snake scores --recent
  snake scores snake --clear`,
	Args:              cobra.MaximumNArgs(1),
	ValidArgsFunction: completeVariants,
	Run:               runScores,
}

func init() {
	scoresCmd.Flags().IntVarP(&flagScoresLimit, "limit", "n", 10, "Number of rounds to show")
	scoresCmd.Flags().BoolVar(&flagScoresRecent, "recent", false, "Show the latest rounds of every variant")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete the history of the variant")
}

func runScores(_ *cobra.Command, args []string) {
	gameID := defaultVariant
	if len(args) > 0 {
		gameID = args[0]
	}
	exitIfUnknown(gameID)

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening round history: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	switch {
	case flagScoresClear:
		if err := store.ClearRounds(gameID); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Cleared round history for %s.\n", gameID)
		return

	case flagScoresRecent:
		rounds, err := store.RecentRounds(flagScoresLimit)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error retrieving rounds: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("Recent rounds")
		fmt.Println()
		printRounds(rounds, true)
		return
	}

	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	rounds, err := store.TopRounds(gameID, flagScoresLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving rounds: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Best rounds - %s\n", game.Title())
	fmt.Println()

	if len(rounds) == 0 {
		fmt.Println("No rounds recorded yet.")
		fmt.Println()
		fmt.Printf("Run 'snake play %s' to record the first one!\n", gameID)
		return
	}
	printRounds(rounds, false)

	if stats, err := store.Stats(gameID); err == nil {
		fmt.Println()
		fmt.Printf("Rounds: %d  Best: %d  Average: %.1f  Longest: %d\n",
			stats.Rounds, stats.BestScore, stats.AvgScore, stats.LongestLen)
	}
}

func printRounds(rounds []storage.Round, withVariant bool) {
	if len(rounds) == 0 {
		fmt.Println("No rounds recorded yet.")
		return
	}

	header := fmt.Sprintf("  %-4s  %-6s  %-6s  %-7s  %-9s", "Rank", "Score", "Length", "Ticks", "Cause")
	if withVariant {
		header += fmt.Sprintf("  %-14s", "Variant")
	}
	fmt.Println(header + "  Date")

	for i, r := range rounds {
		line := fmt.Sprintf("  %-4d  %-6d  %-6d  %-7d  %-9s", i+1, r.Score, r.Length, r.Ticks, r.Collision)
		if withVariant {
			line += fmt.Sprintf("  %-14s", r.Variant)
		}
		fmt.Println(line + "  " + r.CreatedAt.Format("2006-01-02 15:04"))
	}
}
