package runner

import (
	"io"
	"testing"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-pathviz/internal/grid"
	"github.com/vovakirdan/tui-pathviz/internal/search"
)

func quietRunner() *Runner {
	return New(log.New(io.Discard))
}

func readyGrid(rows, cols int) *grid.Grid {
	g := grid.New(rows, cols)
	g.SetStart(0, 0)
	g.SetGoal(rows-1, cols-1)
	return g
}

func TestCanStart(t *testing.T) {
	r := quietRunner()

	if r.CanStart(nil) {
		t.Error("nil grid should not be startable")
	}
	if r.CanStart(grid.New(0, 0)) {
		t.Error("zero-size grid should not be startable")
	}

	g := grid.New(5, 5)
	if r.CanStart(g) {
		t.Error("grid without endpoints should not be startable")
	}
	g.SetStart(0, 0)
	if r.CanStart(g) {
		t.Error("grid without goal should not be startable")
	}
	g.SetGoal(4, 4)
	if !r.CanStart(g) {
		t.Error("ready grid should be startable")
	}
}

func TestStartRejectsUnreadyGrid(t *testing.T) {
	r := quietRunner()
	if err := r.Start(grid.New(4, 4), nil); err != ErrNotReady {
		t.Errorf("Start on bare grid = %v, expected ErrNotReady", err)
	}
}

func TestRunToCompletion(t *testing.T) {
	r := quietRunner()
	g := readyGrid(10, 10)

	if err := r.Start(g, nil); err != nil {
		t.Fatalf("Start: %v", err)
	}
	r.Wait()

	st := r.Status()
	if st.Active {
		t.Error("active flag must drop after completion")
	}
	if !st.Completed || !st.PathFound {
		t.Errorf("status = %+v, expected completed with a path", st)
	}
	if st.Outcome != search.PathFound {
		t.Errorf("outcome = %v, expected PathFound", st.Outcome)
	}
	if st.Distance != 18 || st.PathLength != 17 {
		t.Errorf("distance/length = %d/%d, expected 18/17", st.Distance, st.PathLength)
	}
	if st.Visited == 0 {
		t.Error("visited count should be recorded")
	}
}

func TestSingleFlight(t *testing.T) {
	r := quietRunner()
	r.SetStepDelay(time.Millisecond)
	g := readyGrid(40, 40)

	if err := r.Start(g, nil); err != nil {
		t.Fatalf("first Start: %v", err)
	}
	if err := r.Start(g, nil); err != ErrBusy {
		t.Errorf("second Start = %v, expected ErrBusy", err)
	}
	if r.CanStart(g) {
		t.Error("CanStart must be false while a run is active")
	}

	r.Cancel()
	r.Wait()

	if err := r.Start(g, nil); err != nil {
		t.Errorf("Start after finished run: %v", err)
	}
	r.Wait()
}

func TestCancelMidRun(t *testing.T) {
	r := quietRunner()
	r.SetStepDelay(time.Millisecond)
	g := readyGrid(50, 50)

	if err := r.Start(g, nil); err != nil {
		t.Fatalf("Start: %v", err)
	}
	time.Sleep(10 * time.Millisecond)
	r.Cancel()
	r.Wait()

	st := r.Status()
	if st.Active {
		t.Error("active flag must drop after cancellation")
	}
	if st.Completed {
		t.Error("a cancelled run is not completed")
	}
	if st.Outcome != search.Cancelled {
		t.Errorf("outcome = %v, expected Cancelled", st.Outcome)
	}
	if st.PathFound {
		t.Error("a cancelled run reports no path")
	}
}

func TestPauseResume(t *testing.T) {
	r := quietRunner()
	r.SetStepDelay(time.Millisecond)
	g := readyGrid(40, 40)

	if err := r.Start(g, nil); err != nil {
		t.Fatalf("Start: %v", err)
	}
	if !r.TogglePause() {
		t.Fatal("TogglePause during a run should report paused")
	}
	if st := r.Status(); !st.Paused || !st.Active {
		t.Errorf("status while paused = %+v", st)
	}
	if r.TogglePause() {
		t.Fatal("second TogglePause should report resumed")
	}
	r.Wait()

	if st := r.Status(); !st.Completed || !st.PathFound {
		t.Errorf("status after resume = %+v, expected a completed run", st)
	}
}

func TestTogglePauseIdleIsNoop(t *testing.T) {
	r := quietRunner()
	if r.TogglePause() {
		t.Error("TogglePause with no active run should stay unpaused")
	}
	if st := r.Status(); st.Paused {
		t.Error("idle runner must not report paused")
	}
}

// panicSink triggers a worker-internal fault partway through the run.
type panicSink struct{ calls int }

func (s *panicSink) CellChanged(*grid.Cell) {
	s.calls++
	if s.calls > 3 {
		panic("sink blew up")
	}
}

func TestWorkerPanicReleasesActiveFlag(t *testing.T) {
	r := quietRunner()
	g := readyGrid(20, 20)

	if err := r.Start(g, &panicSink{}); err != nil {
		t.Fatalf("Start: %v", err)
	}
	r.Wait()

	st := r.Status()
	if st.Active {
		t.Fatal("panic in the worker must still release the active flag")
	}
	if st.PathFound {
		t.Error("a crashed run must not claim a path")
	}
	if !r.CanStart(g) {
		t.Error("runner must accept a new run after a worker fault")
	}
}

func TestStepDelayClamp(t *testing.T) {
	r := quietRunner()
	r.SetStepDelay(-time.Second)
	if d := r.StepDelay(); d != 0 {
		t.Errorf("negative delay should clamp to 0, got %v", d)
	}
	r.SetStepDelay(5 * time.Millisecond)
	if d := r.StepDelay(); d != 5*time.Millisecond {
		t.Errorf("delay = %v, expected 5ms", d)
	}
}
