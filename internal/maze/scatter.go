package maze

import (
	"math/rand"

	"github.com/vovakirdan/tui-pathviz/internal/grid"
)

func init() {
	Register(&Scatter{})
}

// Scatter marks each cell as an obstacle independently with a fixed
// probability. There is no structural guarantee of solvability; callers
// must tolerate a NoPath outcome.
type Scatter struct{}

// ID returns the generator identifier.
func (s *Scatter) ID() string { return "scatter" }

// Title returns the display name.
func (s *Scatter) Title() string { return "Random Walls" }

// Generate rolls every cell against Params.WallChance.
func (s *Scatter) Generate(g *grid.Grid, rng *rand.Rand, p Params) {
	chance := p.WallChance
	if chance <= 0 || chance >= 1 {
		chance = DefaultParams().WallChance
	}
	for row := 0; row < g.Rows; row++ {
		for col := 0; col < g.Cols; col++ {
			if rng.Float64() < chance {
				g.SetWall(row, col)
			}
		}
	}
}
