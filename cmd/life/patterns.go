package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-life/internal/patterns"
)

var patternsCmd = &cobra.Command{
	Use:   "patterns",
	Short: "List all built-in seed patterns",
	Long:  `Shows the seed patterns that can be placed with 'life play --pattern <id>'.`,
	Run:   runPatterns,
}

func runPatterns(cmd *cobra.Command, args []string) {
	list := patterns.List()

	if len(list) == 0 {
		fmt.Println("No patterns available.")
		return
	}

	fmt.Println("Available patterns:")
	fmt.Println()

	// Calculate column widths
	maxIDLen := 2 // "ID" header
	for _, p := range list {
		if len(p.ID) > maxIDLen {
			maxIDLen = len(p.ID)
		}
	}

	// Print header
	fmt.Printf("  %-*s  %-20s  %s\n", maxIDLen, "ID", "Name", "Size")
	fmt.Printf("  %-*s  %-20s  %s\n", maxIDLen, "--", "----", "----")

	// Print patterns
	for _, p := range list {
		fmt.Printf("  %-*s  %-20s  %dx%d\n", maxIDLen, p.ID, p.Name, p.Width(), p.Height())
	}

	fmt.Println()
	fmt.Println("Run 'life play --pattern <id>' to start with a pattern.")
}
