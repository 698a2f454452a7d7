package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mkravets/floodlock/internal/engine"
)

// maxSolveMoves bounds the auto-play loop for puzzles the solver cannot
// finish. The board has far fewer distinct states worth visiting than this.
const maxSolveMoves = 50

var solveCmd = &cobra.Command{
	Use:   "solve [puzzle-id]",
	Short: "Auto-play a puzzle with the hint solver",
	Long: `Plays a puzzle to the end using the hint engine and prints each move.

While the board still follows the puzzle's recorded solution the recorded
moves are replayed; once off that line the greedy solver takes over.

Examples:
  floodlock solve
  floodlock solve classic-01 --puzzles ./puzzles
  floodlock solve --seed 7`,
	Args: cobra.MaximumNArgs(1),
	Run:  runSolve,
}

func runSolve(cmd *cobra.Command, args []string) {
	def, err := resolvePuzzle(args)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	session := def.NewSession(effectiveSeed())

	fmt.Printf("Solving %s (target %s, par %d)\n\n", def.ID, def.Target, def.Par())

	for session.Status() == engine.StatusInProgress && session.Moves() < maxSolveMoves {
		hint, ok := session.Hint()
		if !ok {
			fmt.Println("No further move available.")
			break
		}

		source := "solver"
		if session.OnTrace() {
			source = "trace"
		}

		res, err := session.Move(hint.Cell, hint.Color)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: suggested move rejected: %v\n", err)
			os.Exit(1)
		}

		fmt.Printf("  %2d. (%d,%d) -> %-6s  %2d cells recolored  [%s]\n",
			res.Moves, hint.Cell.Row, hint.Cell.Col, hint.Color, len(res.Changed), source)
	}

	fmt.Println()
	switch session.Status() {
	case engine.StatusSolved:
		fmt.Printf("Solved in %d moves (par %d).\n", session.Moves(), def.Par())
	case engine.StatusLost:
		fmt.Printf("Lost after %d moves.\n", session.Moves())
		os.Exit(1)
	default:
		fmt.Printf("Gave up after %d moves.\n", session.Moves())
		os.Exit(1)
	}
}
