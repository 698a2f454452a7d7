package puzzle

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/mkravets/floodlock/internal/engine"
)

// yamlPuzzle is the on-disk YAML structure for a puzzle file. Grids are
// written as rows of color letters (ROYGBP), one string per row.
type yamlPuzzle struct {
	ID        string     `yaml:"id"`
	Name      string     `yaml:"name,omitempty"`
	Target    string     `yaml:"target"`
	Grid      []string   `yaml:"grid"`
	Snapshots [][]string `yaml:"snapshots,omitempty"`
	Actions   []int      `yaml:"actions,omitempty"`
	ColorMap  []int      `yaml:"colormap,omitempty"`
}

// ParseYAML parses and validates a puzzle file.
func ParseYAML(data []byte) (Definition, error) {
	var yp yamlPuzzle
	if err := yaml.Unmarshal(data, &yp); err != nil {
		return Definition{}, fmt.Errorf("puzzle: yaml unmarshal: %w", err)
	}

	target, ok := engine.ParseColor(yp.Target)
	if !ok {
		return Definition{}, fmt.Errorf("puzzle %s: unknown target color %q", yp.ID, yp.Target)
	}

	start, err := engine.GridFromRows(yp.Grid)
	if err != nil {
		return Definition{}, fmt.Errorf("puzzle %s: grid: %w", yp.ID, err)
	}

	snapshots := make([]engine.Grid, 0, len(yp.Snapshots))
	for i, rows := range yp.Snapshots {
		snap, err := engine.GridFromRows(rows)
		if err != nil {
			return Definition{}, fmt.Errorf("puzzle %s: snapshot %d: %w", yp.ID, i, err)
		}
		snapshots = append(snapshots, snap)
	}

	def := Definition{
		ID:        yp.ID,
		Name:      yp.Name,
		Start:     start,
		Target:    target,
		Snapshots: snapshots,
		Actions:   yp.Actions,
		ColorMap:  yp.ColorMap,
	}

	if err := def.Validate(); err != nil {
		return Definition{}, err
	}
	return def, nil
}
