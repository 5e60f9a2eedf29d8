package tui

import (
	"fmt"
	"math/rand"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-pathviz/internal/config"
	"github.com/vovakirdan/tui-pathviz/internal/core"
	"github.com/vovakirdan/tui-pathviz/internal/grid"
	"github.com/vovakirdan/tui-pathviz/internal/maze"
	"github.com/vovakirdan/tui-pathviz/internal/runner"
	"github.com/vovakirdan/tui-pathviz/internal/search"
	"github.com/vovakirdan/tui-pathviz/internal/storage"
)

// boardOriginY leaves room for the title and status lines above the board.
const boardOriginY = 2

// cellEvent carries one cell state change from the search worker to the
// UI loop. The state is copied at emission time so the UI never touches
// live cells while the worker owns them.
type cellEvent struct {
	index int
	state grid.CellState
}

// chanSink forwards engine notifications into a buffered channel drained
// on UI ticks. The buffer is sized for a full run (each cell transitions
// at most a handful of times), so sends never block the worker.
type chanSink struct {
	ch chan cellEvent
}

func (s chanSink) CellChanged(c *grid.Cell) {
	select {
	case s.ch <- cellEvent{index: c.Seq, state: c.State}:
	default:
	}
}

// Model is the Bubble Tea model for the interactive visualizer.
type Model struct {
	cfg    config.Config
	rc     core.RuntimeConfig
	board  *grid.Grid
	worker *runner.Runner
	store  *storage.Store
	screen *core.Screen
	keys   *KeyMapper
	rng    *rand.Rand

	// states mirrors the grid's render states. It is the only cell data
	// the View reads, so the worker and renderer never share cells.
	states  []grid.CellState
	updates chan cellEvent

	preset     config.SpeedPreset
	algorithm  string // generator behind the current layout, "none" if hand-drawn
	runPending bool   // a started run has not been persisted yet
	status     runner.Status
	message    string
	drawing    bool // right-drag is adding walls
	erasing    bool // right-drag is removing walls
	quitting   bool
}

// NewModel creates a new Bubble Tea model for the visualizer.
func NewModel(cfg config.Config, rc core.RuntimeConfig, store *storage.Store, logger *log.Logger) Model {
	// Use time-based seed if not specified
	if rc.Seed == 0 {
		rc.Seed = time.Now().UnixNano()
	}

	board := grid.NewWithCellSize(cfg.Grid.Rows, cfg.Grid.Cols, cfg.Grid.CellWidth, cfg.Grid.CellHeight)
	r := runner.New(logger)
	r.SetStepDelay(config.StepDelayForPreset(cfg.Speed.Preset))
	r.SetBatchSize(cfg.Speed.BatchSize)

	m := Model{
		cfg:       cfg,
		rc:        rc,
		board:     board,
		worker:    r,
		store:     store,
		screen:    core.NewScreen(rc.ScreenW, rc.ScreenH),
		keys:      NewKeyMapper(),
		rng:       rand.New(rand.NewSource(rc.Seed)),
		states:    make([]grid.CellState, board.Len()),
		updates:   make(chan cellEvent, 4*board.Len()+64),
		preset:    cfg.Speed.Preset,
		algorithm: "none",
		message:   "click: set start, then goal · right-click: walls · enter: search",
	}
	m.syncStates()
	return m
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.rc.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		m.rc.ScreenW = msg.Width
		m.rc.ScreenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// canEdit reports whether grid mutation is allowed right now.
func (m *Model) canEdit() bool {
	return !m.status.Active
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action, isQuit := m.keys.MapKey(msg)
	if isQuit {
		m.worker.Cancel()
		m.quitting = true
		return m, tea.Quit
	}

	switch action {
	case core.ActionStart:
		m.startSearch()
	case core.ActionPause:
		if m.worker.TogglePause() {
			m.message = "paused"
		} else if m.status.Active {
			m.message = "searching..."
		}
	case core.ActionCancel:
		m.worker.Cancel()
	case core.ActionGenMaze:
		m.generate("backtracker")
	case core.ActionGenPrim:
		m.generate("prim")
	case core.ActionGenScatter:
		m.generate("scatter")
	case core.ActionClearPath:
		if m.canEdit() {
			m.board.ResetSearch()
			m.syncStates()
			m.message = "search visuals cleared"
		}
	case core.ActionClearAll:
		if m.canEdit() {
			m.board.ResetAll()
			m.algorithm = "none"
			m.syncStates()
			m.message = "board cleared · click to set start"
		}
	case core.ActionSpeedUp:
		m.changeSpeed(true)
	case core.ActionSpeedDown:
		m.changeSpeed(false)
	}

	return m, nil
}

func (m *Model) startSearch() {
	if m.status.Active {
		m.message = "a search is already running"
		return
	}
	if !m.worker.CanStart(m.board) {
		m.message = "set both start and goal first"
		return
	}
	m.board.ResetSearch()
	m.syncStates()
	if err := m.worker.Start(m.board, chanSink{ch: m.updates}); err != nil {
		m.message = err.Error()
		return
	}
	m.runPending = true
	m.status = m.worker.Status()
	m.message = "searching..."
}

func (m *Model) generate(id string) {
	if !m.canEdit() {
		return
	}
	params := maze.Params{
		WallChance:     m.cfg.Maze.WallChance,
		MinOpenings:    m.cfg.Maze.MinOpenings,
		OpeningDivisor: m.cfg.Maze.OpeningDivisor,
	}
	if err := maze.Generate(m.board, id, m.rng, params); err != nil {
		m.message = err.Error()
		return
	}
	m.algorithm = id
	m.syncStates()
	m.message = "generated " + id + " · click to set start"
}

func (m *Model) changeSpeed(faster bool) {
	m.preset = config.NextPreset(m.preset, faster)
	m.worker.SetStepDelay(config.StepDelayForPreset(m.preset))
	m.message = "speed: " + string(m.preset)
}

// handleMouse processes clicks and drags on the board.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if !m.canEdit() {
		return m, nil
	}

	switch msg.Action {
	case tea.MouseActionRelease:
		m.drawing = false
		m.erasing = false
		return m, nil
	case tea.MouseActionMotion:
		if m.drawing || m.erasing {
			m.applyDrag(msg.X, msg.Y-boardOriginY)
		}
		return m, nil
	case tea.MouseActionPress:
	default:
		return m, nil
	}

	row, col, ok := m.board.PixelToCell(msg.X, msg.Y-boardOriginY)
	if !ok {
		return m, nil
	}

	switch msg.Button {
	case tea.MouseButtonLeft:
		m.placeEndpoint(row, col)
	case tea.MouseButtonRight:
		m.toggleWallAt(row, col)
	}

	return m, nil
}

// placeEndpoint sets the start on the first click and the goal on the
// second, mirroring the waiting-start/waiting-goal flow.
func (m *Model) placeEndpoint(row, col int) {
	if m.board.StartIndex() == grid.NoCell {
		if m.board.SetStart(row, col) {
			m.message = "click to set goal"
			m.syncCell(row, col)
		}
		return
	}
	if m.board.GoalIndex() == grid.NoCell {
		if m.board.SetGoal(row, col) {
			m.message = "ready · enter to search"
			m.syncCell(row, col)
		}
		return
	}
}

func (m *Model) toggleWallAt(row, col int) {
	c := m.board.At(row, col)
	if c == nil {
		return
	}
	if c.Wall {
		m.erasing = m.board.ClearWall(row, col)
	} else {
		m.drawing = m.board.SetWall(row, col)
	}
	m.syncCell(row, col)
}

func (m *Model) applyDrag(x, y int) {
	row, col, ok := m.board.PixelToCell(x, y)
	if !ok {
		return
	}
	c := m.board.At(row, col)
	if c == nil {
		return
	}
	if m.drawing && !c.Wall {
		m.board.SetWall(row, col)
	} else if m.erasing && c.Wall {
		m.board.ClearWall(row, col)
	}
	m.syncCell(row, col)
}

// handleTick drains worker updates and refreshes the status snapshot.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	for {
		select {
		case ev := <-m.updates:
			if ev.index >= 0 && ev.index < len(m.states) {
				m.states[ev.index] = ev.state
			}
			continue
		default:
		}
		break
	}

	m.status = m.worker.Status()

	if !m.status.Active && m.runPending {
		m.runPending = false
		m.message = outcomeMessage(m.status)
		if m.store != nil {
			//nolint:errcheck // Best-effort save, the session continues regardless
			m.store.SaveRun(storage.RunEntry{
				Algorithm:  m.algorithm,
				Rows:       m.board.Rows,
				Cols:       m.board.Cols,
				Outcome:    outcomeLabel(m.status.Outcome),
				PathLength: m.status.PathLength,
				Distance:   m.status.Distance,
				Visited:    m.status.Visited,
				DurationMS: m.status.Elapsed.Milliseconds(),
			})
		}
	}

	return m, tickCmd(m.rc.TickRate)
}

func outcomeLabel(o search.Outcome) string {
	switch o {
	case search.PathFound:
		return "path"
	case search.Cancelled:
		return "cancelled"
	default:
		return "no-path"
	}
}

func outcomeMessage(st runner.Status) string {
	switch st.Outcome {
	case search.PathFound:
		return fmt.Sprintf("path found · length %d · visited %d", st.PathLength, st.Visited)
	case search.Cancelled:
		return "search cancelled"
	default:
		return fmt.Sprintf("no path · visited %d", st.Visited)
	}
}

// syncStates rebuilds the render mirror from the grid. Only safe while
// no worker is running.
func (m *Model) syncStates() {
	for i := 0; i < m.board.Len(); i++ {
		m.states[i] = m.board.CellAt(i).State
	}
}

func (m *Model) syncCell(row, col int) {
	if c := m.board.At(row, col); c != nil {
		m.states[m.board.Index(row, col)] = c.State
	}
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.screen.Clear()
	m.screen.DrawTextColored(0, 0, "pathviz", core.ColorBrightCyan)
	m.screen.DrawTextColored(12, 0, statusLine(m.status, m.preset), core.ColorGray)
	DrawBoard(m.screen, m.board.Rows, m.board.Cols, m.board.CellW, m.board.CellH, 0, boardOriginY, m.states)

	helpY := boardOriginY + m.board.Rows*m.board.CellH + 1
	m.screen.DrawTextColored(0, helpY, m.message, core.ColorWhite)
	m.screen.DrawTextColored(0, helpY+1,
		"[enter] search  [p] pause  [x] cancel  [m/f/r] maze  [c] clear path  [a] clear all  [+/-] speed  [q] quit",
		core.ColorGray)

	return RenderScreen(m.screen)
}

func statusLine(st runner.Status, preset config.SpeedPreset) string {
	switch {
	case st.Active && st.Paused:
		return fmt.Sprintf("PAUSED · %s · speed %s", st.Elapsed.Round(100*time.Millisecond), preset)
	case st.Active:
		return fmt.Sprintf("RUNNING · %s · speed %s", st.Elapsed.Round(100*time.Millisecond), preset)
	case st.Completed && st.PathFound:
		return fmt.Sprintf("DONE · path %d · speed %s", st.PathLength, preset)
	case st.Completed:
		return fmt.Sprintf("DONE · no path · speed %s", preset)
	default:
		return fmt.Sprintf("IDLE · speed %s", preset)
	}
}

// Run starts the Bubble Tea program for the interactive visualizer.
func Run(cfg config.Config, rc core.RuntimeConfig, store *storage.Store, logger *log.Logger) error {
	model := NewModel(cfg, rc, store, logger)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),       // Use alternate screen buffer
		tea.WithMouseCellMotion(), // Cell-level clicks and drags on the board
	)

	_, err := p.Run()
	return err
}
