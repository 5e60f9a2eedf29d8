package grid

import "math"

// Unreached is the distance assigned to cells the search has not relaxed yet.
const Unreached = math.MaxInt

// NoCell marks an unset cell index (no start, no goal, no predecessor).
const NoCell = -1

// CellState is the display-facing projection of a cell. The search writes
// it at its notification points; the algorithm itself never reads it.
type CellState uint8

const (
	StateDefault CellState = iota
	StateStart
	StateGoal
	StateWall
	StateVisited
	StateFrontier
	StatePath
)

// String returns a human-readable name for the state.
func (s CellState) String() string {
	switch s {
	case StateDefault:
		return "default"
	case StateStart:
		return "start"
	case StateGoal:
		return "goal"
	case StateWall:
		return "wall"
	case StateVisited:
		return "visited"
	case StateFrontier:
		return "frontier"
	case StatePath:
		return "path"
	default:
		return "unknown"
	}
}

// Cell is a single grid position. Coordinates and Seq are fixed at grid
// construction; everything else is mutated over the cell's life.
//
// Seq is a monotonically increasing creation id used as the priority-queue
// tie-break, so equal-distance cells are processed in a stable order
// independent of memory layout.
type Cell struct {
	Row, Col int
	Seq      int
	Wall     bool

	// Search bookkeeping, valid only during/after a run.
	Dist int
	Prev int // index of the predecessor cell, NoCell if none
	Done bool

	State CellState

	neighbors []int // indices of passable cardinal neighbors, see RecomputeAdjacency
}

// resetSearch clears the search bookkeeping without touching Wall or State.
func (c *Cell) resetSearch() {
	c.Dist = Unreached
	c.Prev = NoCell
	c.Done = false
}
