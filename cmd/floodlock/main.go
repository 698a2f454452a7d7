// floodlock is a daily color-unification puzzle for the terminal.
//
// Usage:
//
//	floodlock play [puzzle-id]  - Play today's puzzle (or a specific one)
//	floodlock list              - List available puzzles
//	floodlock solve [puzzle-id] - Auto-play a puzzle with the hint solver
//	floodlock stats             - Show recorded results
//	floodlock serve             - Start SSH server for remote play
//
// Global flags:
//
//	--db <path>       - Set results database path (default: ~/.floodlock/results.db)
//	--puzzles <dir>   - Set puzzle directory (embedded puzzle used when empty)
//	--seed <value>    - Set RNG seed for reproducible hint tie-breaking
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagDBPath    string
	flagPuzzleDir string
	flagSeed      int64
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "floodlock",
	Short: "Floodlock - Daily flood-fill puzzles in your terminal",
	Long: `Floodlock is a terminal puzzle where you recolor regions of a 5x5 board
until the whole board matches the target color. The largest region on the
board is locked; let a wrong-colored region grow too large and the puzzle
is lost.

Available commands:
  play     - Play today's puzzle or a specific one
  list     - Show all available puzzles
  solve    - Watch the hint solver play a puzzle
  stats    - View recorded results
  serve    - Start SSH server for remote play

Examples:
  floodlock play
  floodlock play classic-01 --puzzles ./puzzles
  floodlock solve --seed 7
  floodlock serve --ssh :2222
  floodlock stats`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.floodlock/results.db", "Path to results database")
	rootCmd.PersistentFlags().StringVar(&flagPuzzleDir, "puzzles", "", "Directory with puzzle files (embedded puzzle used when empty)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed for hint tie-breaking (0 = random based on time)")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(solveCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(serveCmd)
}

// effectiveSeed resolves the --seed flag, substituting the clock when unset.
func effectiveSeed() int64 {
	if flagSeed != 0 {
		return flagSeed
	}
	return time.Now().UnixNano()
}
