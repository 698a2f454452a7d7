package engine

// Region returns the maximal 4-connected component of cells holding the given
// color that contains start. The result is empty if start does not hold color.
// Traversal is iterative BFS with a visited guard; the grid is never mutated,
// so re-running on the same grid always yields the same component.
func (g *Grid) Region(start Coord, color Color) []Coord {
	if !start.InBounds() || g.Get(start) != color {
		return nil
	}

	var visited [Size][Size]bool
	visited[start.Row][start.Col] = true

	members := []Coord{start}
	queue := []Coord{start}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, n := range cur.Neighbors() {
			if visited[n.Row][n.Col] || g.Get(n) != color {
				continue
			}
			visited[n.Row][n.Col] = true
			members = append(members, n)
			queue = append(queue, n)
		}
	}
	return members
}

// ApplyMove recolors the connected region containing at (in its current
// color) to newColor, in place, and returns the changed coordinates.
// Callers must reject out-of-bounds, no-op, and locked-cell moves before
// calling; this is the only grid-mutating operation in the engine.
func (g *Grid) ApplyMove(at Coord, newColor Color) []Coord {
	changed := g.Region(at, g.Get(at))
	for _, c := range changed {
		g.Set(c, newColor)
	}
	return changed
}
