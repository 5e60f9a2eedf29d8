package maze

import (
	"math/rand"

	"github.com/vovakirdan/tui-pathviz/internal/grid"
)

func init() {
	Register(&Prim{})
}

// Prim carves a spanning maze by frontier growth: starting from one open
// cell, it repeatedly picks a random frontier wall and opens it if the
// cell beyond is still solid. Like the backtracker it works on the odd
// lattice and gets extra openings afterwards.
type Prim struct{}

// ID returns the generator identifier.
func (p *Prim) ID() string { return "prim" }

// Title returns the display name.
func (p *Prim) Title() string { return "Carved Maze (Frontier Growth)" }

// Generate fills the grid with walls and grows passages from a random seed.
func (p *Prim) Generate(g *grid.Grid, rng *rand.Rand, params Params) {
	fillWalls(g)
	carvePrim(g, rng)
	addOpenings(g, rng, params)
}

// frontierWall links an open cell to a candidate cell through one wall.
type frontierWall struct {
	wall coord
	cell coord
}

func carvePrim(g *grid.Grid, rng *rand.Rand) {
	if g.Rows < 3 || g.Cols < 3 {
		return
	}

	start := randomOdd(g, rng)
	g.ClearWall(start.row, start.col)

	steps := [4]coord{{0, 2}, {2, 0}, {0, -2}, {-2, 0}}
	var walls []frontierWall
	pushWalls := func(from coord) {
		for _, d := range steps {
			cell := coord{from.row + d.row, from.col + d.col}
			if cell.row < 1 || cell.row >= g.Rows-1 || cell.col < 1 || cell.col >= g.Cols-1 {
				continue
			}
			if c := g.At(cell.row, cell.col); c != nil && c.Wall {
				walls = append(walls, frontierWall{
					wall: coord{from.row + d.row/2, from.col + d.col/2},
					cell: cell,
				})
			}
		}
	}
	pushWalls(start)

	for len(walls) > 0 {
		i := rng.Intn(len(walls))
		fw := walls[i]
		walls[i] = walls[len(walls)-1]
		walls = walls[:len(walls)-1]

		c := g.At(fw.cell.row, fw.cell.col)
		if c == nil || !c.Wall {
			continue // cell was reached through another wall meanwhile
		}
		g.ClearWall(fw.wall.row, fw.wall.col)
		g.ClearWall(fw.cell.row, fw.cell.col)
		pushWalls(fw.cell)
	}
}

// randomOdd picks a random odd-parity cell inside the border.
func randomOdd(g *grid.Grid, rng *rand.Rand) coord {
	rows := (g.Rows - 1) / 2
	cols := (g.Cols - 1) / 2
	if rows < 1 {
		rows = 1
	}
	if cols < 1 {
		cols = 1
	}
	return coord{
		row: 1 + 2*rng.Intn(rows),
		col: 1 + 2*rng.Intn(cols),
	}
}
