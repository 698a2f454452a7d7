package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/mkravets/floodlock/internal/config"
	"github.com/mkravets/floodlock/internal/puzzle"
	"github.com/mkravets/floodlock/internal/storage"
	"github.com/mkravets/floodlock/internal/tui"
)

var flagConfig string

var playCmd = &cobra.Command{
	Use:   "play [puzzle-id]",
	Short: "Play a puzzle",
	Long: `Play today's puzzle, or a specific puzzle by id.

Without arguments the puzzle named after today's date (YYYY-MM-DD) is
loaded from the puzzle directory; when no directory is set or the daily
puzzle is missing, the built-in puzzle is used.

Controls:
  Arrows/WASD - Move cursor
  1-6         - Recolor the region under the cursor
  H           - Hint
  R           - Restart
  Q/Ctrl+C    - Quit

Examples:
  floodlock play
  floodlock play classic-01 --puzzles ./puzzles
  floodlock play --config ./my-theme.yaml`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
}

// resolvePuzzle picks the puzzle to play: an explicit id, today's daily
// puzzle, or the embedded fallback.
func resolvePuzzle(args []string) (puzzle.Definition, error) {
	if len(args) > 0 {
		if flagPuzzleDir == "" {
			return puzzle.Definition{}, fmt.Errorf("a puzzle id requires --puzzles to be set")
		}
		return puzzle.NewLoader(flagPuzzleDir).ByID(args[0])
	}

	if flagPuzzleDir != "" {
		if def, err := puzzle.NewLoader(flagPuzzleDir).ForDate(time.Now()); err == nil {
			return def, nil
		}
		fmt.Fprintf(os.Stderr, "No puzzle for %s in %s, using the built-in puzzle.\n",
			puzzle.DateKey(time.Now()), flagPuzzleDir)
	}
	return puzzle.Default(), nil
}

func runPlay(cmd *cobra.Command, args []string) {
	def, err := resolvePuzzle(args)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	cfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not load config: %v\n", err)
		cfg = config.DefaultConfig()
	}

	// Open result storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open results database: %v\n", err)
		// Continue without storage - the game still works
		store = nil
	}

	runErr := tui.RunPlay(def, cfg, store, effectiveSeed())

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running puzzle: %v\n", runErr)
		os.Exit(1)
	}
}
