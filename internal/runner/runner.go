// Package runner owns the background search worker. It launches at most
// one search at a time, relays pause/cancel intents to the engine and
// exposes a read-only status snapshot for the UI.
package runner

import (
	"errors"
	"os"
	"sync"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-pathviz/internal/grid"
	"github.com/vovakirdan/tui-pathviz/internal/search"
)

var (
	// ErrBusy is returned by Start while a previous run is still active.
	ErrBusy = errors.New("runner: a search is already running")
	// ErrNotReady is returned by Start when the grid lacks a start or goal.
	ErrNotReady = errors.New("runner: grid needs both start and goal")
)

// Status is a point-in-time snapshot of the worker state. It is a plain
// value copied out under the runner's lock, safe to keep around.
type Status struct {
	Active     bool
	Paused     bool
	Completed  bool
	PathFound  bool
	Outcome    search.Outcome
	PathLength int
	Distance   int
	Visited    int
	Elapsed    time.Duration
}

// Runner coordinates a single search worker goroutine with the render
// loop. All shared flags live behind one mutex; the worker observes them
// through the search.Control methods.
type Runner struct {
	mu        sync.Mutex
	logger    *log.Logger
	stepDelay time.Duration
	batchSize int

	active     bool
	paused     bool
	cancelled  bool
	completed  bool
	outcome    search.Outcome
	pathFound  bool
	pathLength int
	distance   int
	visited    int
	started    time.Time
	elapsed    time.Duration
	done       chan struct{}
}

// New creates a Runner. A nil logger falls back to stderr.
func New(logger *log.Logger) *Runner {
	if logger == nil {
		logger = log.NewWithOptions(os.Stderr, log.Options{ReportTimestamp: true})
	}
	return &Runner{logger: logger}
}

// SetStepDelay sets the visualization pacing used by subsequent runs.
func (r *Runner) SetStepDelay(d time.Duration) {
	r.mu.Lock()
	if d < 0 {
		d = 0
	}
	r.stepDelay = d
	r.mu.Unlock()
}

// StepDelay reports the pacing that the next run will use.
func (r *Runner) StepDelay() time.Duration {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.stepDelay
}

// SetBatchSize sets how many cells are processed between pacing sleeps.
func (r *Runner) SetBatchSize(n int) {
	r.mu.Lock()
	r.batchSize = n
	r.mu.Unlock()
}

// ShouldPause implements search.Control.
func (r *Runner) ShouldPause() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.paused
}

// ShouldCancel implements search.Control.
func (r *Runner) ShouldCancel() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.cancelled
}

// CanStart reports whether Start would accept the grid right now.
func (r *Runner) CanStart(g *grid.Grid) bool {
	if g == nil || g.Len() == 0 {
		return false
	}
	if g.StartIndex() == grid.NoCell || g.GoalIndex() == grid.NoCell {
		return false
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return !r.active
}

// Start launches the search on a background goroutine. It rejects the
// call synchronously if a run is active or the grid is not ready; it
// never blocks on the search itself.
func (r *Runner) Start(g *grid.Grid, sink search.Sink) error {
	if g == nil || g.Len() == 0 ||
		g.StartIndex() == grid.NoCell || g.GoalIndex() == grid.NoCell {
		return ErrNotReady
	}

	r.mu.Lock()
	if r.active {
		r.mu.Unlock()
		return ErrBusy
	}
	prev := r.done
	r.active = true
	r.paused = false
	r.cancelled = false
	r.completed = false
	r.pathFound = false
	r.pathLength = 0
	r.distance = 0
	r.visited = 0
	r.started = time.Now()
	r.done = make(chan struct{})
	done := r.done
	eng := &search.Engine{StepDelay: r.stepDelay, BatchSize: r.batchSize}
	r.mu.Unlock()

	// The previous worker has already flipped active off, but give it
	// the chance to fully unwind before the new one touches the grid.
	if prev != nil {
		<-prev
	}

	go r.work(eng, g, sink, done)
	return nil
}

func (r *Runner) work(eng *search.Engine, g *grid.Grid, sink search.Sink, done chan struct{}) {
	defer close(done)
	defer func() {
		if rec := recover(); rec != nil {
			r.logger.Error("search worker panicked", "panic", rec)
			r.finish(search.Cancelled, search.Result{}, 0, 0)
		}
	}()

	res := eng.Run(g, sink, r)
	length, dist := 0, 0
	if res.Outcome == search.PathFound {
		length = eng.Reconstruct(g, sink, r)
		if goal := g.Goal(); goal != nil {
			dist = goal.Dist
		}
	}
	r.finish(res.Outcome, res, length, dist)
}

// finish records the run result and releases the active flag. It is a
// no-op if the run was already finalized, so the panic path cannot
// overwrite a normal completion.
func (r *Runner) finish(out search.Outcome, res search.Result, length, dist int) {
	r.mu.Lock()
	if !r.active {
		r.mu.Unlock()
		return
	}
	r.active = false
	r.paused = false
	r.completed = out != search.Cancelled
	r.outcome = out
	r.pathFound = out == search.PathFound
	r.pathLength = length
	r.distance = dist
	r.visited = res.Visited
	r.elapsed = time.Since(r.started)
	elapsed := r.elapsed
	r.mu.Unlock()

	r.logger.Info("search finished",
		"outcome", out.String(),
		"visited", res.Visited,
		"path", length,
		"elapsed", elapsed.Round(time.Millisecond))
}

// TogglePause flips the pause flag of the active run and reports the new
// state. It is a no-op when no run is active.
func (r *Runner) TogglePause() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	if !r.active {
		return false
	}
	r.paused = !r.paused
	return r.paused
}

// Cancel requests a cooperative stop. The worker observes the flag
// within one polling interval; Cancel itself returns immediately.
func (r *Runner) Cancel() {
	r.mu.Lock()
	if r.active {
		r.cancelled = true
	}
	r.mu.Unlock()
}

// Wait blocks until the current worker, if any, has fully unwound.
// Intended for shutdown paths and tests.
func (r *Runner) Wait() {
	r.mu.Lock()
	done := r.done
	r.mu.Unlock()
	if done != nil {
		<-done
	}
}

// Status returns a snapshot of the shared flags.
func (r *Runner) Status() Status {
	r.mu.Lock()
	defer r.mu.Unlock()
	st := Status{
		Active:     r.active,
		Paused:     r.paused,
		Completed:  r.completed,
		PathFound:  r.pathFound,
		Outcome:    r.outcome,
		PathLength: r.pathLength,
		Distance:   r.distance,
		Visited:    r.visited,
		Elapsed:    r.elapsed,
	}
	if r.active {
		st.Elapsed = time.Since(r.started)
	}
	return st
}
