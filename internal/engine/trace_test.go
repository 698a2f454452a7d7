package engine

import "testing"

// testTrace is the two-move solution used across trace and session tests:
// recolor the red corner green, then the green block blue.
func testTrace(t *testing.T) (Grid, *Trace) {
	t.Helper()
	start := mustGrid(t, []string{
		"BBBBB",
		"BBBBB",
		"BBBBB",
		"GGBBB",
		"RGBBB",
	})
	mid := mustGrid(t, []string{
		"BBBBB",
		"BBBBB",
		"BBBBB",
		"GGBBB",
		"GGBBB",
	})
	solved := mustGrid(t, []string{
		"BBBBB",
		"BBBBB",
		"BBBBB",
		"BBBBB",
		"BBBBB",
	})

	return start, &Trace{
		Snapshots: []Grid{start, mid, solved},
		Actions:   []int{3, 34}, // (4,0) green, then (3,0) blue in trace encoding
	}
}

func TestTraceOnTrace(t *testing.T) {
	start, trace := testTrace(t)

	if !trace.OnTrace(start, 0) {
		t.Error("OnTrace() = false for the starting snapshot")
	}
	if !trace.OnTrace(trace.Snapshots[1], 1) {
		t.Error("OnTrace() = false for the mid snapshot")
	}
	if trace.OnTrace(start, 1) {
		t.Error("OnTrace() = true for a mismatched snapshot")
	}
	if trace.OnTrace(start, -1) {
		t.Error("OnTrace() = true for a negative move index")
	}
	if trace.OnTrace(trace.Snapshots[2], 3) {
		t.Error("OnTrace() = true past the end of the trace")
	}

	var nilTrace *Trace
	if nilTrace.OnTrace(start, 0) {
		t.Error("OnTrace() = true on a nil trace")
	}
}

func TestTraceNextAction(t *testing.T) {
	_, trace := testTrace(t)

	cell, color, ok := trace.NextAction(0)
	if !ok || cell != At(4, 0) || color != ColorGreen {
		t.Errorf("NextAction(0) = %v %v %v, want (4,0) green true", cell, color, ok)
	}

	cell, color, ok = trace.NextAction(1)
	if !ok || cell != At(3, 0) || color != ColorBlue {
		t.Errorf("NextAction(1) = %v %v %v, want (3,0) blue true", cell, color, ok)
	}

	if _, _, ok := trace.NextAction(2); ok {
		t.Error("NextAction(2) ok = true past the end of the trace")
	}
	if _, _, ok := trace.NextAction(-1); ok {
		t.Error("NextAction(-1) ok = true")
	}

	var nilTrace *Trace
	if _, _, ok := nilTrace.NextAction(0); ok {
		t.Error("NextAction() ok = true on a nil trace")
	}
}

func TestTraceNextActionMalformedID(t *testing.T) {
	trace := &Trace{Actions: []int{ActionSpace + 5}}
	if _, _, ok := trace.NextAction(0); ok {
		t.Error("NextAction() ok = true for an out-of-range action id")
	}
}
