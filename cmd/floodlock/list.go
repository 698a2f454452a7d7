package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/mkravets/floodlock/internal/puzzle"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all available puzzles",
	Long: `Shows the puzzles in the puzzle directory, or the built-in puzzle
when no directory is set. Today's daily puzzle is marked.`,
	Run: runList,
}

func runList(cmd *cobra.Command, args []string) {
	var defs []puzzle.Definition
	if flagPuzzleDir == "" {
		defs = []puzzle.Definition{puzzle.Default()}
	} else {
		var err error
		defs, err = puzzle.NewLoader(flagPuzzleDir).LoadAll()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	}

	if len(defs) == 0 {
		fmt.Println("No puzzles found.")
		return
	}

	today := puzzle.DateKey(time.Now())

	fmt.Println("Available puzzles:")
	fmt.Println()

	// Calculate column widths
	maxIDLen := 2 // "ID" header
	for _, d := range defs {
		if len(d.ID) > maxIDLen {
			maxIDLen = len(d.ID)
		}
	}

	// Print header
	fmt.Printf("  %-*s  %-6s  %-6s  %s\n", maxIDLen, "ID", "Target", "Par", "Name")
	fmt.Printf("  %-*s  %-6s  %-6s  %s\n", maxIDLen, "--", "------", "---", "----")

	for _, d := range defs {
		name := d.Name
		if d.ID == today {
			name += "  (today)"
		}
		fmt.Printf("  %-*s  %-6s  %-6d  %s\n", maxIDLen, d.ID, d.Target, d.Par(), name)
	}

	fmt.Println()
	fmt.Println("Run 'floodlock play <id>' to play a puzzle.")
}
