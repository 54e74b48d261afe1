package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-1024/internal/stats"
	"github.com/vovakirdan/tui-1024/internal/storage"
)

var (
	flagSortBy string
	flagDesc   bool
	flagLimit  int
	flagClear  bool
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show finished games",
	Long: `List finished games from the statistics database.

Games can be sorted by steps (valid swipes), score (highest tile) or date.

Examples:
  t1024 stats
  t1024 stats --sort score --desc
  t1024 stats --sort date --desc --limit 5
  t1024 stats --clear`,
	Args: cobra.NoArgs,
	Run:  runStats,
}

func init() {
	statsCmd.Flags().StringVar(&flagSortBy, "sort", "steps", "Sort field: steps, score, date")
	statsCmd.Flags().BoolVar(&flagDesc, "desc", false, "Sort descending")
	statsCmd.Flags().IntVar(&flagLimit, "limit", 20, "Maximum games to show (0 = all)")
	statsCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete all recorded games")
}

func runStats(_ *cobra.Command, _ []string) {
	field, err := stats.ParseSortField(flagSortBy)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	order := stats.Ascending
	if flagDesc {
		order = stats.Descending
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening statistics database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagClear {
		if err := store.Clear(); err != nil {
			fmt.Fprintf(os.Stderr, "Error clearing statistics: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("All recorded games deleted.")
		return
	}

	records, err := store.Records(field, order, flagLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving games: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Finished games - sorted by %s, %s\n", field, order)
	fmt.Println()

	if len(records) == 0 {
		fmt.Println("No games recorded yet.")
		fmt.Println()
		fmt.Println("Play 't1024 play' and finish a game to see it here!")
		return
	}

	// Print header
	fmt.Printf("  %-4s  %-6s  %-6s  %-5s  %-11s  %s\n", "#", "Score", "Steps", "Board", "Result", "Date")
	fmt.Printf("  %-4s  %-6s  %-6s  %-5s  %-11s  %s\n", "-", "-----", "-----", "-----", "------", "----")

	for i, r := range records {
		board := fmt.Sprintf("%dx%d", r.BoardSize, r.BoardSize)
		fmt.Printf("  %-4d  %-6d  %-6d  %-5s  %-11s  %s\n",
			i+1, r.Score, r.Steps, board, r.Outcome, r.CreatedAt.Local().Format("2006-01-02 15:04"))
	}

	sum, err := store.Summary()
	if err != nil {
		return
	}
	fmt.Println()
	fmt.Printf("Games: %d  Wins: %d  Best: %d  Avg steps: %.1f\n",
		sum.Games, sum.Wins, sum.BestScore, sum.AvgSteps)
}
