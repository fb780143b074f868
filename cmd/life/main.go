// life is an interactive Conway's Game of Life simulator for the terminal.
//
// Usage:
//
//	life play                - Start an interactive simulation
//	life patterns            - List built-in seed patterns
//	life history             - Show past session records
//
// Global flags:
//
//	--fps <rate>    - Set frame tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible randomize
//	--db <path>     - Set database path (default: ~/.life/sessions.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "life",
	Short: "Conway's Game of Life in your terminal",
	Long: `life is a terminal-based Game of Life simulator with mouse support.

Available commands:
  play      - Start an interactive simulation
  patterns  - Show all built-in seed patterns
  history   - View past session records

Examples:
  life play
  life play --pattern glider --speed fast
  life patterns
  life history --limit 20`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Frame tick rate (ticks per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.life/sessions.db", "Path to sessions database")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(patternsCmd)
	rootCmd.AddCommand(historyCmd)
}
