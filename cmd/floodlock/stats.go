package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/mkravets/floodlock/internal/storage"
	"github.com/mkravets/floodlock/internal/tui"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show recorded results",
	Long: `Display recorded puzzle results and aggregate statistics.

Examples:
  floodlock stats
  floodlock stats --db ./results.db`,
	Run: runStats,
}

func runStats(cmd *cobra.Command, args []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening results database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	// Get terminal size early so the table fits before the first resize
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	if err := tui.RunStats(store, width, height); err != nil {
		fmt.Fprintf(os.Stderr, "Error showing stats: %v\n", err)
		os.Exit(1)
	}
}
