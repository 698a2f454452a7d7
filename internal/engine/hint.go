package engine

import "math/rand"

// rejectScore marks moves the solver must never prefer over a legal
// alternative: malformed candidates and moves that would hand the lock to a
// non-target color.
const rejectScore = -999999

// Hint is a suggested move: recolor the region containing Cell to Color.
type Hint struct {
	Cell  Coord
	Color Color
}

// ValidActions enumerates every legal move as action ids in canonical encode
// order (live convention). Locked cells and no-op recolors are excluded. The
// order is stable so that evaluation, and therefore tie-breaking under a fixed
// seed, is reproducible.
func ValidActions(g *Grid, locked CellSet) []int {
	actions := make([]int, 0, ActionSpace)
	for row := 0; row < Size; row++ {
		for col := 0; col < Size; col++ {
			if locked.Has(At(row, col)) {
				continue
			}
			current := g.Get(At(row, col))
			for colorIdx := 0; colorIdx < NumColors; colorIdx++ {
				if Color(colorIdx) == current {
					continue
				}
				actions = append(actions, EncodeAction(row, col, colorIdx))
			}
		}
	}
	return actions
}

// scoreAction scores a candidate action by simulating it on a scratch copy of
// the grid. The base score is the net growth of the largest region involved in
// the move; merging several distinct same-color blocks earns a small bonus so
// consolidation wins ties against single-block growth.
func scoreAction(g *Grid, locked CellSet, target Color, actionID int) float64 {
	row, col, colorIdx := DecodeAction(actionID)
	at := At(row, col)
	if !at.InBounds() || colorIdx < 0 || colorIdx >= NumColors {
		return rejectScore
	}
	newColor := Color(colorIdx)

	// Enumeration already filters these; checked again so a raw action id
	// can never corrupt a simulation.
	if g.Get(at) == newColor || locked.Has(at) {
		return rejectScore
	}

	scratch := *g
	changed := scratch.Region(at, scratch.Get(at))
	oldRegionSize := len(changed)

	// Find the distinct newColor blocks adjacent to the region being
	// recolored. Each block is measured once; claimed guards against a block
	// touching the region in more than one place.
	claimed := NewCellSet(changed...)
	var blockSizes []int
	for _, c := range changed {
		for _, n := range c.Neighbors() {
			if claimed.Has(n) || scratch.Get(n) != newColor {
				continue
			}
			block := scratch.Region(n, newColor)
			for _, b := range block {
				claimed.Add(b)
			}
			blockSizes = append(blockSizes, len(block))
		}
	}

	largestInvolved := oldRegionSize
	for _, size := range blockSizes {
		if size > largestInvolved {
			largestInvolved = size
		}
	}

	for _, c := range changed {
		scratch.Set(c, newColor)
	}
	afterSize := len(scratch.Region(at, newColor))

	// Never recommend a move that immediately locks a non-target color.
	if afterSize >= LockThreshold && newColor != target {
		return rejectScore
	}

	score := float64(afterSize - largestInvolved)

	if len(blockSizes) >= 2 {
		total := 0
		for _, size := range blockSizes {
			total += size
		}
		avg := float64(total) / float64(len(blockSizes))
		score += float64(len(blockSizes)-1) * (0.1 / avg)
	}
	return score
}

// Solver is the off-trace hint engine: a one-ply greedy search over the full
// action space. The random source only breaks ties among equally scored best
// moves, so a fixed seed pins the suggestion sequence.
type Solver struct {
	rng *rand.Rand
}

// NewSolver creates a solver with the given random source for tie-breaking.
func NewSolver(rng *rand.Rand) *Solver {
	return &Solver{rng: rng}
}

// Suggest evaluates every legal action and returns the best one, breaking
// ties uniformly at random. ok is false when no legal move exists.
func (s *Solver) Suggest(g *Grid, locked CellSet, target Color) (Hint, bool) {
	actions := ValidActions(g, locked)
	if len(actions) == 0 {
		return Hint{}, false
	}

	bestScore := 0.0
	var best []int
	for i, id := range actions {
		score := scoreAction(g, locked, target, id)
		switch {
		case i == 0 || score > bestScore:
			bestScore = score
			best = best[:0]
			best = append(best, id)
		case score == bestScore:
			best = append(best, id)
		}
	}

	chosen := best[s.rng.Intn(len(best))]
	row, col, colorIdx := DecodeAction(chosen)
	return Hint{Cell: At(row, col), Color: Color(colorIdx)}, true
}
