// Package grid implements the mutable 2-D cell arena the search runs
// against: obstacle flags, start/goal designation, adjacency lists and
// the bulk reset operations between runs.
package grid

// Cardinal directions in fixed relaxation order: right, left, down, up.
// The order matters for deterministic visit sequences.
var directions = [4][2]int{{0, 1}, {0, -1}, {1, 0}, {-1, 0}}

// Grid is a rows x cols rectangular arena of cells. Dimensions are fixed
// at construction; obstacle layout and start/goal assignment mutate over
// the grid's life. Cells are stored in row-major order: index = row*cols + col.
type Grid struct {
	Rows, Cols int

	// CellW and CellH are the presentation size of one cell in screen
	// characters. Only PixelToCell depends on them.
	CellW, CellH int

	cells []Cell
	start int // cell index, NoCell when unset
	goal  int // cell index, NoCell when unset
}

// New creates a grid with the given dimensions and a default 2x1
// presentation cell size.
func New(rows, cols int) *Grid {
	return NewWithCellSize(rows, cols, 2, 1)
}

// NewWithCellSize creates a grid with an explicit presentation cell size.
func NewWithCellSize(rows, cols, cellW, cellH int) *Grid {
	if rows < 0 {
		rows = 0
	}
	if cols < 0 {
		cols = 0
	}
	g := &Grid{
		Rows:  rows,
		Cols:  cols,
		CellW: cellW,
		CellH: cellH,
		cells: make([]Cell, rows*cols),
		start: NoCell,
		goal:  NoCell,
	}
	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			i := row*cols + col
			g.cells[i] = Cell{
				Row:  row,
				Col:  col,
				Seq:  i,
				Dist: Unreached,
				Prev: NoCell,
			}
		}
	}
	return g
}

// InBounds returns true if (row, col) lies inside the grid.
func (g *Grid) InBounds(row, col int) bool {
	return row >= 0 && row < g.Rows && col >= 0 && col < g.Cols
}

// Index converts coordinates to a flat cell index. The caller must have
// bounds-checked them.
func (g *Grid) Index(row, col int) int {
	return row*g.Cols + col
}

// At returns the cell at (row, col), or nil if out of range.
// Callers must treat nil as a no-op, never dereference.
func (g *Grid) At(row, col int) *Cell {
	if !g.InBounds(row, col) {
		return nil
	}
	return &g.cells[g.Index(row, col)]
}

// CellAt returns the cell with the given flat index, or nil if out of range.
func (g *Grid) CellAt(i int) *Cell {
	if i < 0 || i >= len(g.cells) {
		return nil
	}
	return &g.cells[i]
}

// Len returns the total number of cells.
func (g *Grid) Len() int {
	return len(g.cells)
}

// StartIndex returns the flat index of the start cell, NoCell if unset.
func (g *Grid) StartIndex() int { return g.start }

// GoalIndex returns the flat index of the goal cell, NoCell if unset.
func (g *Grid) GoalIndex() int { return g.goal }

// Start returns the start cell, or nil if unset.
func (g *Grid) Start() *Cell { return g.CellAt(g.start) }

// Goal returns the goal cell, or nil if unset.
func (g *Grid) Goal() *Cell { return g.CellAt(g.goal) }

// SetStart designates (row, col) as the start cell.
// Refused when out of bounds, on a wall, or on the current goal.
// Moving the start clears the previous start cell's marker.
func (g *Grid) SetStart(row, col int) bool {
	c := g.At(row, col)
	if c == nil || c.Wall {
		return false
	}
	i := g.Index(row, col)
	if i == g.goal {
		return false
	}
	if prev := g.Start(); prev != nil {
		prev.State = StateDefault
	}
	g.start = i
	c.State = StateStart
	return true
}

// SetGoal designates (row, col) as the goal cell.
// Refused when out of bounds, on a wall, or on the current start.
func (g *Grid) SetGoal(row, col int) bool {
	c := g.At(row, col)
	if c == nil || c.Wall {
		return false
	}
	i := g.Index(row, col)
	if i == g.start {
		return false
	}
	if prev := g.Goal(); prev != nil {
		prev.State = StateDefault
	}
	g.goal = i
	c.State = StateGoal
	return true
}

// ClearStart removes the start designation, if any.
func (g *Grid) ClearStart() {
	if c := g.Start(); c != nil {
		c.State = StateDefault
	}
	g.start = NoCell
}

// ClearGoal removes the goal designation, if any.
func (g *Grid) ClearGoal() {
	if c := g.Goal(); c != nil {
		c.State = StateDefault
	}
	g.goal = NoCell
}

// SetWall makes (row, col) an obstacle. Refused on the start or goal cell.
// The caller must RecomputeAdjacency before the next search.
func (g *Grid) SetWall(row, col int) bool {
	c := g.At(row, col)
	if c == nil {
		return false
	}
	i := g.Index(row, col)
	if i == g.start || i == g.goal {
		return false
	}
	c.Wall = true
	c.State = StateWall
	return true
}

// ClearWall removes the obstacle at (row, col), if any.
func (g *Grid) ClearWall(row, col int) bool {
	c := g.At(row, col)
	if c == nil {
		return false
	}
	if c.Wall {
		c.Wall = false
		c.State = StateDefault
	}
	return true
}

// ToggleWall flips the obstacle flag at (row, col).
// Refused on the start or goal cell.
func (g *Grid) ToggleWall(row, col int) bool {
	c := g.At(row, col)
	if c == nil {
		return false
	}
	if c.Wall {
		return g.ClearWall(row, col)
	}
	return g.SetWall(row, col)
}

// RecomputeAdjacency rebuilds every cell's neighbor list as the subset of
// its four cardinal grid-neighbors that exist and are not walls.
// Must be called after any obstacle mutation and before a search: the
// search consumes these precomputed lists and must never see stale ones.
func (g *Grid) RecomputeAdjacency() {
	for i := range g.cells {
		c := &g.cells[i]
		c.neighbors = c.neighbors[:0]
		for _, d := range directions {
			n := g.At(c.Row+d[0], c.Col+d[1])
			if n != nil && !n.Wall {
				c.neighbors = append(c.neighbors, g.Index(n.Row, n.Col))
			}
		}
	}
}

// Neighbors returns the precomputed passable neighbor indices of cell i.
// The returned slice is owned by the grid and valid until the next
// RecomputeAdjacency.
func (g *Grid) Neighbors(i int) []int {
	c := g.CellAt(i)
	if c == nil {
		return nil
	}
	return c.neighbors
}

// ResetSearch restores every non-wall, non-start, non-goal cell to the
// default state and clears its search bookkeeping. Walls, start and goal
// are left untouched, so a re-run on the same layout is possible.
func (g *Grid) ResetSearch() {
	for i := range g.cells {
		c := &g.cells[i]
		c.resetSearch()
		if !c.Wall && i != g.start && i != g.goal {
			c.State = StateDefault
		}
	}
}

// ResetAll restores every cell to the default passable state, including
// clearing obstacle flags, and removes the start/goal designation.
func (g *Grid) ResetAll() {
	for i := range g.cells {
		c := &g.cells[i]
		c.resetSearch()
		c.Wall = false
		c.State = StateDefault
	}
	g.start = NoCell
	g.goal = NoCell
}

// WallCount returns the number of obstacle cells.
func (g *Grid) WallCount() int {
	count := 0
	for i := range g.cells {
		if g.cells[i].Wall {
			count++
		}
	}
	return count
}

// PixelToCell maps a screen coordinate to grid coordinates.
// Returns ok=false when the coordinate falls outside the grid's rendered
// area, e.g. in the side panel. This is the only method that couples to
// presentation geometry; it exists as a service to the input layer.
func (g *Grid) PixelToCell(x, y int) (row, col int, ok bool) {
	if x < 0 || y < 0 || g.CellW <= 0 || g.CellH <= 0 {
		return 0, 0, false
	}
	if x >= g.Cols*g.CellW || y >= g.Rows*g.CellH {
		return 0, 0, false
	}
	return y / g.CellH, x / g.CellW, true
}
