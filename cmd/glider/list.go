package main

import (
	"fmt"
	"strconv"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/meteor-glider/internal/registry"
	"github.com/vovakirdan/meteor-glider/internal/storage"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all available modes",
	Long:  `Shows all registered game modes with games played and best score.`,
	Run:   runList,
}

func runList(cmd *cobra.Command, args []string) {
	games := registry.List()

	if len(games) == 0 {
		fmt.Println("No modes available.")
		return
	}

	fmt.Println("Available modes:")
	fmt.Println()

	maxIDLen := 2 // "ID" header
	for _, g := range games {
		maxIDLen = max(maxIDLen, len(g.ID))
	}

	// Play counts are optional; the list works without a database
	var stats map[string]*storage.GameStats
	if store, err := storage.Open(flagDBPath); err == nil {
		stats, _ = store.GetAllGamesStats()
		store.Close()
	}

	fmt.Printf("  %-*s  %-22s  %-6s  %s\n", maxIDLen, "ID", "Title", "Games", "Best")
	fmt.Printf("  %-*s  %-22s  %-6s  %s\n", maxIDLen, "--", "-----", "-----", "----")

	for _, g := range games {
		played, best := "-", "-"
		if st, ok := stats[g.ID]; ok {
			played = strconv.Itoa(st.GamesCount)
			best = humanize.Comma(int64(st.HighScore))
		}
		fmt.Printf("  %-*s  %-22s  %-6s  %s\n", maxIDLen, g.ID, g.Title, played, best)
	}

	fmt.Println()
	fmt.Println("Run 'glider play <id>' to play a mode.")
}
