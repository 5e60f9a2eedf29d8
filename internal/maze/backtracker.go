package maze

import (
	"math/rand"

	"github.com/vovakirdan/tui-pathviz/internal/grid"
)

func init() {
	Register(&Backtracker{})
}

// Backtracker carves a spanning maze with depth-first backtracking.
// Passages live on the odd lattice so a wall separates every pair of
// adjacent passage cells by construction; a post-pass punches extra
// openings to introduce loops.
type Backtracker struct{}

// ID returns the generator identifier.
func (b *Backtracker) ID() string { return "backtracker" }

// Title returns the display name.
func (b *Backtracker) Title() string { return "Carved Maze (Backtracker)" }

// Generate fills the grid with walls and carves passages.
func (b *Backtracker) Generate(g *grid.Grid, rng *rand.Rand, p Params) {
	fillWalls(g)
	carveBacktracker(g, rng)
	addOpenings(g, rng, p)
}

type coord struct {
	row, col int
}

// carveBacktracker runs the depth-first carve without the opening pass.
// Separated out so the spanning-tree property is testable on its own.
func carveBacktracker(g *grid.Grid, rng *rand.Rand) {
	if g.Rows < 3 || g.Cols < 3 {
		return
	}

	start := oddCenter(g)
	visited := make(map[coord]bool)
	stack := []coord{start}

	// Candidate cells sit exactly two away; the single wall between is
	// opened when a candidate is chosen.
	steps := [4]coord{{0, 2}, {2, 0}, {0, -2}, {-2, 0}}

	for len(stack) > 0 {
		cur := stack[len(stack)-1]

		if !visited[cur] {
			visited[cur] = true
			g.ClearWall(cur.row, cur.col)
		}

		var candidates []coord
		var walls []coord
		for _, d := range steps {
			next := coord{cur.row + d.row, cur.col + d.col}
			// Keep a 1-cell border of solid wall on all sides.
			if next.row < 1 || next.row >= g.Rows-1 || next.col < 1 || next.col >= g.Cols-1 {
				continue
			}
			if visited[next] {
				continue
			}
			candidates = append(candidates, next)
			walls = append(walls, coord{cur.row + d.row/2, cur.col + d.col/2})
		}

		if len(candidates) == 0 {
			stack = stack[:len(stack)-1] // backtrack
			continue
		}

		pick := rng.Intn(len(candidates))
		g.ClearWall(walls[pick].row, walls[pick].col)
		stack = append(stack, candidates[pick])
	}
}

// oddCenter returns the grid's center snapped to odd row/col parity.
func oddCenter(g *grid.Grid) coord {
	row := g.Rows / 2
	col := g.Cols / 2
	if row%2 == 0 {
		row--
	}
	if col%2 == 0 {
		col--
	}
	if row < 1 {
		row = 1
	}
	if col < 1 {
		col = 1
	}
	return coord{row, col}
}
