package engine

// ActionSpace is the number of encodable (row, col, color) moves.
const ActionSpace = Size * Size * NumColors

// EncodeAction encodes a (row, col, colorIndex) move as a single action id
// using the live convention: rows count top-to-bottom. This is the order
// ValidActions enumerates candidates in.
func EncodeAction(row, col, colorIdx int) int {
	return row*(Size*NumColors) + col*NumColors + colorIdx
}

// DecodeAction is the inverse of EncodeAction (live convention, no row flip).
func DecodeAction(id int) (row, col, colorIdx int) {
	row = id / (Size * NumColors)
	rem := id % (Size * NumColors)
	return row, rem / NumColors, rem % NumColors
}

// DecodeTraceAction decodes an action id supplied by the external solution
// trace. The trace encoder counts rows bottom-to-top, so the row is flipped
// relative to the live convention; the two conventions must never be mixed.
// colorMap, when non-nil, is a permutation where colorMap[i] = j means solver
// color slot i is canonical palette slot j; the trace's color index is looked
// up inside it to recover the canonical slot. A nil colorMap means identity.
func DecodeTraceAction(id int, colorMap []int) (Coord, Color, bool) {
	if id < 0 || id >= ActionSpace {
		return Coord{}, 0, false
	}

	row := (Size - 1) - id/(Size*NumColors)
	rem := id % (Size * NumColors)
	col := rem / NumColors
	colorIdx := rem % NumColors

	if colorMap != nil {
		slot := -1
		for i, mapped := range colorMap {
			if mapped == colorIdx {
				slot = i
				break
			}
		}
		if slot < 0 || slot >= NumColors {
			return Coord{}, 0, false
		}
		colorIdx = slot
	}

	return At(row, col), AllColors()[colorIdx], true
}
