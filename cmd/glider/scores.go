package main

import (
	"fmt"
	"os"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/meteor-glider/internal/registry"
	"github.com/vovakirdan/meteor-glider/internal/storage"
)

var (
	flagRuns  int
	flagRunID string
	flagClear bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores [mode]",
	Short: "Show high scores and recent runs",
	Long: `Display the top 10 high scores for the specified mode (default: glider),
followed by the most recent runs with their accuracy.

Use --run to show a single run by its ID, or --clear to delete every
score and run recorded for the mode.

Examples:
  glider scores
  glider scores glider_classic
  glider scores --runs 0
  glider scores --run 3f2b8c1e-7d4a-4e59-9a51-0c6d2e8f1a77
  glider scores glider_classic --clear`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagRuns, "runs", 5, "Number of recent runs to show (0 to hide)")
	scoresCmd.Flags().StringVar(&flagRunID, "run", "", "Show the run with this ID")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete all scores and runs for the mode")
}

func runScores(cmd *cobra.Command, args []string) {
	gameID := "glider"
	if len(args) > 0 {
		gameID = args[0]
	}

	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown mode %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'glider list' to see available modes.")
		os.Exit(1)
	}

	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}
	title := game.Title()

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagRunID != "" {
		printRun(store, flagRunID)
		return
	}

	if flagClear {
		if err := store.ClearScores(gameID); err != nil {
			fmt.Fprintf(os.Stderr, "Error clearing scores: %v\n", err)
			return
		}
		fmt.Printf("Cleared all scores for %s.\n", title)
		return
	}

	scores, err := store.TopScores(gameID, 10)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		return
	}

	fmt.Printf("High Scores - %s\n", title)
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'glider play %s' to set the first high score!\n", gameID)
		return
	}

	fmt.Printf("  %-4s  %-10s  %s\n", "Rank", "Score", "Date")
	fmt.Printf("  %-4s  %-10s  %s\n", "----", "-----", "----")

	for i, entry := range scores {
		dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-10s  %s\n", i+1, humanize.Comma(int64(entry.Score)), dateStr)
	}

	fmt.Println()
	if stats, err := store.GetGameStats(gameID); err == nil {
		fmt.Printf("Best: %s  Games: %d  Average: %s\n",
			humanize.Comma(int64(stats.HighScore)), stats.GamesCount, humanize.FormatFloat("#,###.#", stats.AvgScore))
	}

	if flagRuns <= 0 {
		return
	}

	runs, err := store.RecentRuns(gameID, flagRuns)
	if err != nil || len(runs) == 0 {
		return
	}

	fmt.Println()
	fmt.Println("Recent Runs")
	fmt.Println()
	fmt.Printf("  %-10s  %-5s  %-8s  %-6s  %s\n", "Score", "Hits", "Accuracy", "Time", "When")
	fmt.Printf("  %-10s  %-5s  %-8s  %-6s  %s\n", "-----", "----", "--------", "----", "----")
	for _, r := range runs {
		fmt.Printf("  %-10s  %-5d  %-8s  %-6s  %s\n",
			humanize.Comma(int64(r.Score)),
			r.MeteorsDestroyed,
			fmt.Sprintf("%.0f%%", r.Accuracy()*100),
			playTime(r.Ticks),
			humanize.Time(r.CreatedAt),
		)
	}
}

func printRun(store *storage.Store, runID string) {
	run, err := store.RunByID(runID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving run: %v\n", err)
		return
	}
	if run == nil {
		fmt.Printf("No run with ID %s.\n", runID)
		return
	}

	fmt.Printf("Run %s\n", run.ID)
	fmt.Println()
	fmt.Printf("  Mode:       %s\n", run.GameID)
	fmt.Printf("  Score:      %s\n", humanize.Comma(int64(run.Score)))
	fmt.Printf("  Time:       %s\n", playTime(run.Ticks))
	fmt.Printf("  Shots:      %d\n", run.ShotsFired)
	fmt.Printf("  Hits:       %d (%.0f%%)\n", run.MeteorsDestroyed, run.Accuracy()*100)
	fmt.Printf("  Hazards:    %d\n", run.HazardsSpawned)
	fmt.Printf("  Played:     %s (%s)\n", run.CreatedAt.Format("2006-01-02 15:04"), humanize.Time(run.CreatedAt))
}

// playTime formats a tick count as m:ss at the --fps rate.
func playTime(ticks int) string {
	played := time.Duration(ticks) * time.Second / time.Duration(max(flagFPS, 1))
	return fmt.Sprintf("%d:%02d", int(played.Minutes()), int(played.Seconds())%60)
}
