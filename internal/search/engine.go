// Package search runs uniform-cost shortest path over a grid with
// cooperative pause/cancel and incremental progress notifications.
//
// The algorithm is Dijkstra with unit edge weights - equivalent to BFS,
// but kept on a priority queue for deterministic ordering and easy
// extension to non-uniform costs.
package search

import (
	"container/heap"
	"time"

	"github.com/vovakirdan/tui-pathviz/internal/grid"
)

// Outcome is the terminal state of one engine invocation.
type Outcome int

const (
	NoPath Outcome = iota
	PathFound
	Cancelled
)

// String returns a human-readable name for the outcome.
func (o Outcome) String() string {
	switch o {
	case NoPath:
		return "no path"
	case PathFound:
		return "path found"
	case Cancelled:
		return "cancelled"
	default:
		return "unknown"
	}
}

// Control is the polled control surface the engine cooperates with.
// Both methods must be safe to call from the engine's goroutine while
// another goroutine flips the underlying flags.
type Control interface {
	ShouldPause() bool
	ShouldCancel() bool
}

// Sink receives per-cell state-change notifications for rendering.
// Called synchronously from the engine's goroutine; implementations
// must be cheap and must not block.
type Sink interface {
	CellChanged(c *grid.Cell)
}

// NopControl never pauses and never cancels.
type NopControl struct{}

func (NopControl) ShouldPause() bool  { return false }
func (NopControl) ShouldCancel() bool { return false }

// NopSink discards all notifications. Used for headless solves.
type NopSink struct{}

func (NopSink) CellChanged(*grid.Cell) {}

// Result summarizes one search run.
type Result struct {
	Outcome Outcome
	Visited int // finalized cells, including the goal when reached
}

// DefaultPollInterval bounds how long a pause or cancel request can go
// unobserved while the engine idles.
const DefaultPollInterval = 100 * time.Millisecond

// Engine holds the pacing knobs for one invocation. The zero value runs
// at full speed with the default poll interval.
type Engine struct {
	// PollInterval is the idle-wait step while paused. Defaults to
	// DefaultPollInterval when zero.
	PollInterval time.Duration

	// StepDelay is the pacing sleep applied after each BatchSize
	// finalized cells. Zero disables pacing. Purely presentational;
	// it must stay short enough that cancellation is still observed
	// within roughly one poll interval.
	StepDelay time.Duration

	// BatchSize is the number of finalized cells between pacing sleeps.
	// Defaults to 1 when zero or negative.
	BatchSize int
}

func (e *Engine) pollInterval() time.Duration {
	if e.PollInterval <= 0 {
		return DefaultPollInterval
	}
	return e.PollInterval
}

func (e *Engine) batchSize() int {
	if e.BatchSize <= 0 {
		return 1
	}
	return e.BatchSize
}

// idleWhilePaused blocks in bounded sleeps while pause is requested.
// Returns true if a cancel request was observed.
func (e *Engine) idleWhilePaused(ctrl Control) bool {
	for ctrl.ShouldPause() && !ctrl.ShouldCancel() {
		time.Sleep(e.pollInterval())
	}
	return ctrl.ShouldCancel()
}

// Run executes the shortest-path search from the grid's start to its goal.
//
// Preconditions: both endpoints set and distinct. When either is missing
// the engine returns NoPath without mutating anything. Adjacency is
// recomputed defensively, so a caller that just edited walls cannot feed
// the search a stale neighbor list.
//
// Cancellation is checked every loop iteration; once observed the engine
// returns immediately and leaves partial visitation in place - clearing
// it afterwards is the caller's business.
func (e *Engine) Run(g *grid.Grid, sink Sink, ctrl Control) Result {
	if sink == nil {
		sink = NopSink{}
	}
	if ctrl == nil {
		ctrl = NopControl{}
	}

	startIdx, goalIdx := g.StartIndex(), g.GoalIndex()
	if startIdx == grid.NoCell || goalIdx == grid.NoCell || startIdx == goalIdx {
		return Result{Outcome: NoPath}
	}

	g.ResetSearch()
	g.RecomputeAdjacency()

	start := g.CellAt(startIdx)
	start.Dist = 0

	pq := make(queue, 0, g.Len()/4)
	heap.Init(&pq)
	heap.Push(&pq, &item{dist: 0, seq: start.Seq, cell: startIdx})

	// eligible tracks queued cells not yet superseded by a better distance.
	eligible := make([]bool, g.Len())
	eligible[startIdx] = true

	visited := 0
	for pq.Len() > 0 {
		if ctrl.ShouldCancel() {
			return Result{Outcome: Cancelled, Visited: visited}
		}
		if e.idleWhilePaused(ctrl) {
			return Result{Outcome: Cancelled, Visited: visited}
		}

		it := heap.Pop(&pq).(*item)
		if !eligible[it.cell] {
			continue // stale duplicate, superseded by a shorter distance
		}
		eligible[it.cell] = false

		cur := g.CellAt(it.cell)
		cur.Done = true
		visited++

		if it.cell == goalIdx {
			return Result{Outcome: PathFound, Visited: visited}
		}

		if it.cell != startIdx {
			cur.State = grid.StateVisited
			sink.CellChanged(cur)
		}

		for _, ni := range g.Neighbors(it.cell) {
			n := g.CellAt(ni)
			if n.Done {
				continue
			}
			candidate := cur.Dist + 1
			if candidate >= n.Dist {
				continue
			}
			n.Dist = candidate
			n.Prev = it.cell
			if !eligible[ni] {
				eligible[ni] = true
				heap.Push(&pq, &item{dist: candidate, seq: n.Seq, cell: ni})
				if ni != goalIdx {
					n.State = grid.StateFrontier
					sink.CellChanged(n)
				}
			}
		}

		if e.StepDelay > 0 && visited%e.batchSize() == 0 {
			time.Sleep(e.StepDelay)
		}
	}

	return Result{Outcome: NoPath, Visited: visited}
}

// Reconstruct walks the predecessor links back from the goal and emits
// the interior path cells in start-to-goal order so a renderer can
// animate the route from the origin.
//
// Returns the number of interior cells - start and goal excluded - which
// is the step count minus one. The goal cell's Dist field holds the full
// step count. Cancellation mid-walk stops the coloring but the returned
// length is already final.
func (e *Engine) Reconstruct(g *grid.Grid, sink Sink, ctrl Control) int {
	if sink == nil {
		sink = NopSink{}
	}
	if ctrl == nil {
		ctrl = NopControl{}
	}

	goal := g.Goal()
	if goal == nil {
		return 0
	}
	startIdx := g.StartIndex()

	// Collect interior cells goal-to-start.
	var path []int
	for i := goal.Prev; i != grid.NoCell; i = g.CellAt(i).Prev {
		if i == startIdx {
			break
		}
		path = append(path, i)
	}

	for j := len(path) - 1; j >= 0; j-- {
		if ctrl.ShouldCancel() {
			return len(path)
		}
		if e.idleWhilePaused(ctrl) {
			return len(path)
		}

		c := g.CellAt(path[j])
		c.State = grid.StatePath
		sink.CellChanged(c)

		if e.StepDelay > 0 {
			time.Sleep(2 * e.StepDelay) // path animation runs at half pace
		}
	}

	return len(path)
}
