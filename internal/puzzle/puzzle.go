// Package puzzle provides daily puzzle definitions for Floodlock: the
// starting board, the target color, and the precomputed optimal-solution
// trace. This package depends on engine but engine does not depend on it.
package puzzle

import (
	"fmt"

	"github.com/mkravets/floodlock/internal/engine"
)

// Definition is one puzzle as supplied by the puzzle data provider.
// All fields are immutable for the lifetime of a play session.
type Definition struct {
	ID     string
	Name   string
	Start  engine.Grid
	Target engine.Color

	// Precomputed optimal solution: one board snapshot per move index
	// (index 0 is Start) and one trace-encoded action id per transition.
	Snapshots []engine.Grid
	Actions   []int

	// ColorMap relates the upstream solver's color indexing to this puzzle's
	// canonical palette order. Nil means identity.
	ColorMap []int

	FilePath string
}

// Par returns the optimal move count for the puzzle.
func (d *Definition) Par() int {
	return len(d.Actions)
}

// Trace builds the engine trace view of the solution data.
func (d *Definition) Trace() *engine.Trace {
	return &engine.Trace{
		Snapshots: d.Snapshots,
		Actions:   d.Actions,
		ColorMap:  d.ColorMap,
	}
}

// NewSession starts a play session for this puzzle.
func (d *Definition) NewSession(seed int64) *engine.Session {
	return engine.NewSession(d.Start, d.Target, d.Trace(), seed)
}

// Validate checks the internal consistency of the definition. Definitions
// come from an external provider; everything downstream assumes they are
// well-formed, so malformed files are rejected at load time.
func (d *Definition) Validate() error {
	if d.ID == "" {
		return fmt.Errorf("puzzle: missing id")
	}
	if !d.Target.Valid() {
		return fmt.Errorf("puzzle %s: invalid target color", d.ID)
	}

	if len(d.Snapshots) > 0 {
		if len(d.Snapshots) != len(d.Actions)+1 {
			return fmt.Errorf("puzzle %s: %d snapshots for %d actions, want %d",
				d.ID, len(d.Snapshots), len(d.Actions), len(d.Actions)+1)
		}
		if !d.Snapshots[0].Equal(d.Start) {
			return fmt.Errorf("puzzle %s: first snapshot does not match starting grid", d.ID)
		}
	} else if len(d.Actions) > 0 {
		return fmt.Errorf("puzzle %s: actions without snapshots", d.ID)
	}

	for i, a := range d.Actions {
		if a < 0 || a >= engine.ActionSpace {
			return fmt.Errorf("puzzle %s: action %d out of range: %d", d.ID, i, a)
		}
	}

	if d.ColorMap != nil {
		if len(d.ColorMap) != engine.NumColors {
			return fmt.Errorf("puzzle %s: colormap needs %d entries, got %d",
				d.ID, engine.NumColors, len(d.ColorMap))
		}
		var seen [engine.NumColors]bool
		for _, slot := range d.ColorMap {
			if slot < 0 || slot >= engine.NumColors || seen[slot] {
				return fmt.Errorf("puzzle %s: colormap is not a permutation", d.ID)
			}
			seen[slot] = true
		}
	}

	return nil
}
