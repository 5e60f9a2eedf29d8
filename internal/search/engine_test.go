package search

import (
	"sync"
	"testing"
	"time"

	"github.com/vovakirdan/tui-pathviz/internal/grid"
)

// recordSink records the order of cell notifications.
type recordSink struct {
	events []int
}

func (s *recordSink) CellChanged(c *grid.Cell) {
	s.events = append(s.events, c.Row*1000+c.Col)
}

// flagControl is a mutex-guarded pause/cancel flag pair for tests.
type flagControl struct {
	mu     sync.Mutex
	pause  bool
	cancel bool
}

func (f *flagControl) ShouldPause() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.pause
}

func (f *flagControl) ShouldCancel() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.cancel
}

func (f *flagControl) set(pause, cancel bool) {
	f.mu.Lock()
	f.pause = pause
	f.cancel = cancel
	f.mu.Unlock()
}

func openGrid(rows, cols int) *grid.Grid {
	g := grid.New(rows, cols)
	g.SetStart(0, 0)
	g.SetGoal(rows-1, cols-1)
	return g
}

func TestMissingEndpoints(t *testing.T) {
	e := &Engine{}

	g := grid.New(5, 5)
	if res := e.Run(g, nil, nil); res.Outcome != NoPath {
		t.Errorf("no endpoints: outcome = %v, expected NoPath", res.Outcome)
	}

	g.SetStart(0, 0)
	if res := e.Run(g, nil, nil); res.Outcome != NoPath {
		t.Errorf("missing goal: outcome = %v, expected NoPath", res.Outcome)
	}
	if g.At(0, 0).Dist != grid.Unreached {
		t.Error("refused run must not mutate cell bookkeeping")
	}
}

func TestEmptyTenByTen(t *testing.T) {
	// 10x10 open grid, corner to corner: 18 steps, 17 interior path cells.
	g := openGrid(10, 10)
	e := &Engine{}

	res := e.Run(g, nil, nil)
	if res.Outcome != PathFound {
		t.Fatalf("outcome = %v, expected PathFound", res.Outcome)
	}
	if g.Goal().Dist != 18 {
		t.Errorf("goal distance = %d, expected 18", g.Goal().Dist)
	}

	length := e.Reconstruct(g, nil, nil)
	if length != 17 {
		t.Errorf("interior path length = %d, expected 17", length)
	}
	if g.Start().State != grid.StateStart {
		t.Error("reconstruction must not overwrite the start marker")
	}
	if g.Goal().State != grid.StateGoal {
		t.Error("reconstruction must not recolor the goal")
	}
}

func TestFullExploration(t *testing.T) {
	// Goal sealed behind walls: the search exhausts every reachable cell.
	g := openGrid(10, 10)
	g.SetWall(8, 9)
	g.SetWall(9, 8)
	g.RecomputeAdjacency()

	e := &Engine{}
	res := e.Run(g, nil, nil)
	if res.Outcome != NoPath {
		t.Fatalf("outcome = %v, expected NoPath", res.Outcome)
	}
	// 100 cells minus 2 walls minus the unreachable goal.
	if res.Visited != 97 {
		t.Errorf("visited = %d, expected 97", res.Visited)
	}
	if e.Reconstruct(g, nil, nil) != 0 {
		t.Error("no-path reconstruction should report length 0")
	}
}

func TestOptimalityAroundGap(t *testing.T) {
	// 5x5 grid with a wall row across row 2, single gap at col 4.
	// Start (0,0), goal (4,0): route goes right to the gap, down, and back.
	g := grid.New(5, 5)
	for col := 0; col < 4; col++ {
		g.SetWall(2, col)
	}
	g.SetStart(0, 0)
	g.SetGoal(4, 0)

	e := &Engine{}
	res := e.Run(g, nil, nil)
	if res.Outcome != PathFound {
		t.Fatalf("outcome = %v, expected PathFound", res.Outcome)
	}
	// 4 right + 4 down + 4 left = 12 steps.
	if g.Goal().Dist != 12 {
		t.Errorf("goal distance = %d, expected 12", g.Goal().Dist)
	}
	if length := e.Reconstruct(g, nil, nil); length != 11 {
		t.Errorf("interior path length = %d, expected 11", length)
	}
}

func TestNoPathEnclosedGoal(t *testing.T) {
	g := grid.New(7, 7)
	g.SetStart(0, 0)
	g.SetGoal(3, 3)
	// Box the goal in completely.
	for _, rc := range [][2]int{{2, 2}, {2, 3}, {2, 4}, {3, 2}, {3, 4}, {4, 2}, {4, 3}, {4, 4}} {
		g.SetWall(rc[0], rc[1])
	}

	e := &Engine{}
	res := e.Run(g, nil, nil)
	if res.Outcome != NoPath {
		t.Errorf("outcome = %v, expected NoPath", res.Outcome)
	}
	if e.Reconstruct(g, nil, nil) != 0 {
		t.Error("path length should be 0 when no path exists")
	}
}

func TestDeterministicVisitOrder(t *testing.T) {
	run := func() ([]int, int) {
		g := grid.New(8, 8)
		g.SetWall(3, 3)
		g.SetWall(3, 4)
		g.SetWall(4, 3)
		g.SetStart(0, 0)
		g.SetGoal(7, 7)

		sink := &recordSink{}
		e := &Engine{}
		if res := e.Run(g, sink, nil); res.Outcome != PathFound {
			t.Fatalf("outcome = %v, expected PathFound", res.Outcome)
		}
		length := e.Reconstruct(g, sink, nil)
		return sink.events, length
	}

	events1, len1 := run()
	events2, len2 := run()

	if len1 != len2 {
		t.Fatalf("path lengths differ: %d vs %d", len1, len2)
	}
	if len(events1) != len(events2) {
		t.Fatalf("event counts differ: %d vs %d", len(events1), len(events2))
	}
	for i := range events1 {
		if events1[i] != events2[i] {
			t.Fatalf("event %d differs: %d vs %d", i, events1[i], events2[i])
		}
	}
}

func TestIdempotentReset(t *testing.T) {
	g := grid.New(6, 6)
	g.SetWall(2, 1)
	g.SetWall(2, 2)
	g.SetStart(0, 0)
	g.SetGoal(5, 5)

	e := &Engine{}
	res1 := e.Run(g, nil, nil)
	dist1 := g.Goal().Dist
	len1 := e.Reconstruct(g, nil, nil)

	g.ResetSearch()

	res2 := e.Run(g, nil, nil)
	dist2 := g.Goal().Dist
	len2 := e.Reconstruct(g, nil, nil)

	if res1.Outcome != res2.Outcome || res1.Visited != res2.Visited {
		t.Errorf("re-run after reset differs: %+v vs %+v", res1, res2)
	}
	if dist1 != dist2 || len1 != len2 {
		t.Errorf("re-run path differs: dist %d/%d, len %d/%d", dist1, dist2, len1, len2)
	}
	if !g.At(2, 1).Wall || !g.At(2, 2).Wall {
		t.Error("walls must survive search resets")
	}
}

func TestStaleAdjacencyIsRecomputed(t *testing.T) {
	// A wall edit without RecomputeAdjacency must still be honored:
	// the engine recomputes defensively before searching.
	g := grid.New(3, 3)
	g.SetStart(0, 0)
	g.SetGoal(0, 2)
	g.RecomputeAdjacency()
	g.SetWall(0, 1) // no recompute here on purpose

	e := &Engine{}
	res := e.Run(g, nil, nil)
	if res.Outcome != PathFound {
		t.Fatalf("outcome = %v, expected PathFound", res.Outcome)
	}
	if g.Goal().Dist != 4 {
		t.Errorf("goal distance = %d, expected 4 (detour around fresh wall)", g.Goal().Dist)
	}
}

func TestCancelStopsPromptly(t *testing.T) {
	g := openGrid(60, 60)
	ctrl := &flagControl{}
	e := &Engine{
		PollInterval: 5 * time.Millisecond,
		StepDelay:    time.Millisecond,
	}

	done := make(chan Result, 1)
	go func() {
		done <- e.Run(g, nil, ctrl)
	}()

	time.Sleep(10 * time.Millisecond)
	ctrl.set(false, true)

	select {
	case res := <-done:
		if res.Outcome != Cancelled {
			t.Errorf("outcome = %v, expected Cancelled", res.Outcome)
		}
	case <-time.After(500 * time.Millisecond):
		t.Fatal("cancel was not observed within the polling bound")
	}
}

func TestPauseHoldsAndResumes(t *testing.T) {
	g := openGrid(30, 30)
	ctrl := &flagControl{}
	ctrl.set(true, false) // paused from the very first iteration
	e := &Engine{PollInterval: 2 * time.Millisecond}

	done := make(chan Result, 1)
	go func() {
		done <- e.Run(g, nil, ctrl)
	}()

	select {
	case <-done:
		t.Fatal("engine finished while paused")
	case <-time.After(30 * time.Millisecond):
		// still held, as expected
	}

	ctrl.set(false, false)
	select {
	case res := <-done:
		if res.Outcome != PathFound {
			t.Errorf("outcome after resume = %v, expected PathFound", res.Outcome)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("engine did not resume after unpause")
	}
	if g.Goal().Dist != 58 {
		t.Errorf("goal distance = %d, expected 58", g.Goal().Dist)
	}
}

func TestCancelWhilePaused(t *testing.T) {
	g := openGrid(30, 30)
	ctrl := &flagControl{}
	ctrl.set(true, false)
	e := &Engine{PollInterval: 2 * time.Millisecond}

	done := make(chan Result, 1)
	go func() {
		done <- e.Run(g, nil, ctrl)
	}()

	time.Sleep(10 * time.Millisecond)
	ctrl.set(true, true) // cancel without ever unpausing

	select {
	case res := <-done:
		if res.Outcome != Cancelled {
			t.Errorf("outcome = %v, expected Cancelled", res.Outcome)
		}
	case <-time.After(500 * time.Millisecond):
		t.Fatal("cancel was not observed while paused")
	}
}

func TestFrontierAndVisitedStates(t *testing.T) {
	g := openGrid(4, 4)
	e := &Engine{}
	if res := e.Run(g, nil, nil); res.Outcome != PathFound {
		t.Fatal("expected PathFound")
	}

	// Neighbors of the start were discovered, so no cell adjacent to the
	// start may still be in the default state.
	if g.At(0, 1).State == grid.StateDefault || g.At(1, 0).State == grid.StateDefault {
		t.Error("discovered cells should be marked frontier or visited")
	}
	if g.Start().State != grid.StateStart {
		t.Error("the start keeps its marker during the search")
	}
}
