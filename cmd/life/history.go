package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-life/internal/platform/tui"
	"github.com/vovakirdan/tui-life/internal/storage"
)

var (
	flagLimit       int
	flagLongest     bool
	flagInteractive bool
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show past session records",
	Long: `Display records of past simulation sessions.

Examples:
  life history
  life history --limit 20
  life history --longest
  life history --interactive`,
	Args: cobra.NoArgs,
	Run:  runHistory,
}

func init() {
	historyCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of sessions to show")
	historyCmd.Flags().BoolVar(&flagLongest, "longest", false, "Sort by generations instead of recency")
	historyCmd.Flags().BoolVar(&flagInteractive, "interactive", false, "Browse history in an interactive table")
}

func runHistory(cmd *cobra.Command, args []string) {
	// Open session storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening sessions database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagInteractive {
		width, height := 80, 24 // Defaults
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width = w
			height = h
		}
		if err := tui.RunHistory(store, width, height); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	var sessions []storage.SessionEntry
	if flagLongest {
		sessions, err = store.LongestRuns(flagLimit)
	} else {
		sessions, err = store.RecentSessions(flagLimit)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving sessions: %v\n", err)
		os.Exit(1)
	}

	// Display sessions
	if flagLongest {
		fmt.Println("Session History - Longest Runs")
	} else {
		fmt.Println("Session History - Recent")
	}
	fmt.Println()

	if len(sessions) == 0 {
		fmt.Println("No sessions recorded yet.")
		fmt.Println()
		fmt.Println("Play 'life play' to record the first one.")
		return
	}

	// Print header
	fmt.Printf("  %-16s  %-10s  %-8s  %-8s  %-8s  %s\n", "When", "Pattern", "Gens", "Peak", "Final", "Time")
	fmt.Printf("  %-16s  %-10s  %-8s  %-8s  %-8s  %s\n", "----", "-------", "----", "----", "-----", "----")

	// Print sessions
	for _, e := range sessions {
		pattern := e.Pattern
		if pattern == "" {
			pattern = "-"
		}
		fmt.Printf("  %-16s  %-10s  %-8d  %-8d  %-8d  %s\n",
			e.CreatedAt.Format("2006-01-02 15:04"),
			pattern,
			e.Generations,
			e.PeakPopulation,
			e.FinalPopulation,
			time.Duration(e.DurationSecs)*time.Second,
		)
	}

	// Show aggregate stats
	fmt.Println()
	stats, err := store.Stats()
	if err == nil && stats.Sessions > 0 {
		fmt.Printf("Sessions: %d  Longest run: %d generations  Peak population: %d\n",
			stats.Sessions, stats.MaxGenerations, stats.MaxPeak)
	}
}
