package puzzle

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"
)

//go:embed default.yaml
var defaultYAML []byte

// DateKey returns the puzzle id used for the daily puzzle on the given day.
func DateKey(t time.Time) string {
	return t.Format("2006-01-02")
}

// Default returns the embedded fallback puzzle, used when no puzzle directory
// is available. The embedded file is validated at build of the package's
// tests, so parse failure here is a programming error.
func Default() Definition {
	def, err := ParseYAML(defaultYAML)
	if err != nil {
		panic(fmt.Sprintf("puzzle: embedded default is invalid: %v", err))
	}
	return def
}

// Loader loads puzzle definitions from a directory tree.
type Loader struct {
	Root string
}

// NewLoader creates a loader rooted at the given directory.
func NewLoader(root string) *Loader {
	return &Loader{Root: root}
}

// LoadAll recursively loads every puzzle file under the root.
// Results are sorted by ID for deterministic ordering; unreadable or invalid
// files are skipped.
func (l *Loader) LoadAll() ([]Definition, error) {
	var defs []Definition

	err := filepath.WalkDir(l.Root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}

		ext := strings.ToLower(filepath.Ext(path))
		if ext != ".yaml" && ext != ".yml" {
			return nil
		}

		def, err := l.LoadFile(path)
		if err != nil {
			// Skip invalid files
			return nil
		}

		defs = append(defs, def)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("puzzle: walking directory %s: %w", l.Root, err)
	}

	sort.Slice(defs, func(i, j int) bool {
		return defs[i].ID < defs[j].ID
	})
	return defs, nil
}

// LoadFile loads and validates a single puzzle file.
func (l *Loader) LoadFile(path string) (Definition, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Definition{}, fmt.Errorf("puzzle: reading file %s: %w", path, err)
	}

	def, err := ParseYAML(data)
	if err != nil {
		return Definition{}, fmt.Errorf("puzzle: parsing file %s: %w", path, err)
	}

	def.FilePath = path
	return def, nil
}

// ByID loads the puzzle with the given id.
func (l *Loader) ByID(id string) (Definition, error) {
	defs, err := l.LoadAll()
	if err != nil {
		return Definition{}, err
	}

	for _, def := range defs {
		if def.ID == id {
			return def, nil
		}
	}
	return Definition{}, fmt.Errorf("puzzle: not found: %s", id)
}

// ForDate loads the daily puzzle for the given day, keyed by DateKey.
func (l *Loader) ForDate(t time.Time) (Definition, error) {
	return l.ByID(DateKey(t))
}
