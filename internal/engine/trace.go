package engine

// Trace is the externally supplied optimal solution for a puzzle: one board
// snapshot per move index (index 0 is the starting grid) and one action id per
// transition. The engine only ever reads it.
type Trace struct {
	Snapshots []Grid
	Actions   []int

	// ColorMap relates the solver's internal color indexing to the canonical
	// palette order of this puzzle. Nil means identity.
	ColorMap []int
}

// OnTrace reports whether the live grid still matches the snapshot expected
// at the given move index. A move index past the end of the trace degrades to
// false rather than erroring; the hint solver takes over from there.
func (t *Trace) OnTrace(g Grid, moveIndex int) bool {
	if t == nil || moveIndex < 0 || moveIndex >= len(t.Snapshots) {
		return false
	}
	return g.Equal(t.Snapshots[moveIndex])
}

// NextAction decodes the trace action for the given move index using the
// trace codec convention. ok is false when the trace has no action at that
// index or the stored id is malformed.
func (t *Trace) NextAction(moveIndex int) (Coord, Color, bool) {
	if t == nil || moveIndex < 0 || moveIndex >= len(t.Actions) {
		return Coord{}, 0, false
	}
	return DecodeTraceAction(t.Actions[moveIndex], t.ColorMap)
}
