package engine

import (
	"errors"
	"math/rand"
)

// Status is the game state of a session. Solved and Lost are terminal.
type Status int

const (
	StatusInProgress Status = iota
	StatusSolved
	StatusLost
)

// String returns a human-readable status name.
func (s Status) String() string {
	switch s {
	case StatusInProgress:
		return "in progress"
	case StatusSolved:
		return "solved"
	case StatusLost:
		return "lost"
	default:
		return "unknown"
	}
}

// Move rejection reasons. A rejected move leaves the session untouched: no
// recolor, no move-count increment, no status change.
var (
	ErrOutOfBounds = errors.New("engine: move out of bounds")
	ErrNoOpMove    = errors.New("engine: cell already has that color")
	ErrLockedCell  = errors.New("engine: cell is locked")
	ErrGameOver    = errors.New("engine: game already finished")
)

// Session is a single play-through of one puzzle. It owns the live grid and
// locked-cell set; the trace is a read-only borrow for the session's lifetime.
// All operations are synchronous and complete in bounded time.
type Session struct {
	start  Grid
	target Color
	trace  *Trace

	grid    Grid
	locked  CellSet
	moves   int
	status  Status
	onTrace bool

	rng    *rand.Rand
	solver *Solver
}

// MoveResult describes the outcome of an accepted move.
type MoveResult struct {
	Changed []Coord
	Locked  CellSet
	Moves   int
	Status  Status
}

// NewSession starts a session on the given puzzle. The seed drives hint
// tie-breaking only; game state itself is fully deterministic. The initial
// lock and win/loss state is derived immediately, so a degenerate puzzle that
// starts unified is terminal before the first move.
func NewSession(start Grid, target Color, trace *Trace, seed int64) *Session {
	rng := rand.New(rand.NewSource(seed))
	s := &Session{
		start:  start,
		target: target,
		trace:  trace,
		rng:    rng,
		solver: NewSolver(rng),
	}
	s.reset()
	return s
}

// reset puts the session back at the starting configuration.
func (s *Session) reset() {
	s.grid = s.start
	s.locked = NewCellSet()
	s.moves = 0
	s.status = StatusInProgress
	s.evaluate()
	s.onTrace = s.trace.OnTrace(s.grid, 0)
}

// Restart recreates the session from the starting grid: empty locks, zero
// moves, in-progress status, initial lock region re-derived.
func (s *Session) Restart() {
	s.reset()
}

// Grid returns a snapshot of the live board. Grid is a value type, so the
// caller's copy never aliases session state.
func (s *Session) Grid() Grid { return s.grid }

// Locked returns a copy of the locked-cell set.
func (s *Session) Locked() CellSet { return s.locked.Clone() }

// Moves returns the number of accepted moves so far.
func (s *Session) Moves() int { return s.moves }

// Status returns the current game status.
func (s *Session) Status() Status { return s.status }

// Target returns the color the board must unify into.
func (s *Session) Target() Color { return s.target }

// OnTrace reports whether the board still follows the precomputed solution.
func (s *Session) OnTrace() bool { return s.onTrace }

// Move recolors the region containing at to newColor. Rejected moves return
// a sentinel error and change nothing.
func (s *Session) Move(at Coord, newColor Color) (MoveResult, error) {
	if s.status != StatusInProgress {
		return MoveResult{}, ErrGameOver
	}
	if !at.InBounds() || !newColor.Valid() {
		return MoveResult{}, ErrOutOfBounds
	}
	if s.grid.Get(at) == newColor {
		return MoveResult{}, ErrNoOpMove
	}
	if s.locked.Has(at) {
		return MoveResult{}, ErrLockedCell
	}

	changed := s.grid.ApplyMove(at, newColor)
	s.moves++
	s.evaluate()
	s.onTrace = s.trace.OnTrace(s.grid, s.moves)

	return MoveResult{
		Changed: changed,
		Locked:  s.locked.Clone(),
		Moves:   s.moves,
		Status:  s.status,
	}, nil
}

// evaluate recomputes the lock region and the win/loss state. Runs at session
// start and after every accepted move.
//
// The locked set only ever grows: it is replaced by the freshly computed
// largest region when that region is at least as large as the current lock.
// The majority-lock loss check runs before the full-unification check; a
// wrong-color strict majority ends the game even though the rest of the board
// is technically still mutable.
func (s *Session) evaluate() {
	region, size := s.grid.LargestRegion()

	if size >= s.locked.Len() {
		s.locked = NewCellSet(region...)
	}

	regionColor := s.grid.Get(region[0])

	if size >= LockThreshold && regionColor != s.target {
		s.status = StatusLost
		return
	}

	if size == Size*Size {
		if regionColor == s.target {
			s.status = StatusSolved
			s.locked = NewCellSet()
		} else {
			s.status = StatusLost
		}
	}
}

// Hint suggests the next move. While the player is on the precomputed trace
// the next trace action is decoded directly; once off-trace the heuristic
// solver searches the live board. ok is false when no hint is available.
func (s *Session) Hint() (Hint, bool) {
	if s.status != StatusInProgress {
		return Hint{}, false
	}

	if s.onTrace {
		if cell, color, ok := s.trace.NextAction(s.moves); ok {
			return Hint{Cell: cell, Color: color}, true
		}
		// Trace exhausted or malformed: fall through to the solver.
	}

	return s.solver.Suggest(&s.grid, s.locked, s.target)
}
