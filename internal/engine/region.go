package engine

// LargestRegion scans the whole board and returns the single largest
// 4-connected monochromatic region and its size. The scan is row-major,
// top-to-bottom then left-to-right, and ties keep the first region found,
// so the result is fully reproducible. Every cell is visited at most once,
// giving O(Size^2) overall.
func (g *Grid) LargestRegion() ([]Coord, int) {
	var visited [Size][Size]bool
	var best []Coord

	for row := 0; row < Size; row++ {
		for col := 0; col < Size; col++ {
			if visited[row][col] {
				continue
			}
			seed := At(row, col)
			region := g.Region(seed, g.Get(seed))
			for _, c := range region {
				visited[c.Row][c.Col] = true
			}
			if len(region) > len(best) {
				best = region
			}
		}
	}
	return best, len(best)
}
