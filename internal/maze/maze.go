// Package maze generates obstacle layouts over a grid. Algorithms register
// themselves by id, allowing the CLI and the TUI to discover them without
// hardcoded dependencies.
//
// Every generator clears the grid (including start/goal) before writing its
// layout and leaves adjacency stale: callers must reassign the endpoints
// and recompute adjacency before searching.
package maze

import (
	"fmt"
	"math/rand"
	"sort"
	"sync"

	"github.com/vovakirdan/tui-pathviz/internal/grid"
)

// Params holds the generator tunables. The opening count formula is
// deliberately a parameter: enough openings to make a carved maze
// non-perfect is all that matters, not the exact number.
type Params struct {
	WallChance     float64 // scatter: probability a cell becomes a wall
	MinOpenings    int     // carving: floor for extra openings on tiny grids
	OpeningDivisor int     // carving: openings = max(MinOpenings, area/OpeningDivisor)
}

// DefaultParams returns the standard tunables.
func DefaultParams() Params {
	return Params{
		WallChance:     0.30,
		MinOpenings:    20,
		OpeningDivisor: 4,
	}
}

// Generator fills a grid's obstacle flags according to one algorithm.
type Generator interface {
	// ID returns a unique identifier (e.g. "backtracker").
	ID() string

	// Title returns a human-readable name for display.
	Title() string

	// Generate writes the obstacle layout. The grid is reset first by the
	// package-level Generate; rng drives all randomness for reproducibility.
	Generate(g *grid.Grid, rng *rand.Rand, p Params)
}

// Info contains metadata about a registered generator.
type Info struct {
	ID    string
	Title string
}

var (
	generators = make(map[string]Generator)
	mu         sync.RWMutex
)

// Register adds a generator to the registry. Typically called from init().
// Panics if the id is already taken.
func Register(gen Generator) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := generators[gen.ID()]; exists {
		panic(fmt.Sprintf("maze: generator %q already registered", gen.ID()))
	}
	generators[gen.ID()] = gen
}

// List returns information about all registered generators, sorted by ID.
func List() []Info {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]Info, 0, len(generators))
	for _, gen := range generators {
		result = append(result, Info{ID: gen.ID(), Title: gen.Title()})
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})
	return result
}

// Exists checks if a generator with the given id is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := generators[id]
	return ok
}

// Generate resets the grid and runs the generator with the given id.
// Start and goal are always invalidated; the caller must reassign them
// over passage cells and call RecomputeAdjacency before the next search.
func Generate(g *grid.Grid, id string, rng *rand.Rand, p Params) error {
	mu.RLock()
	gen, ok := generators[id]
	mu.RUnlock()

	if !ok {
		return fmt.Errorf("maze: unknown generator %q", id)
	}
	g.ResetAll()
	gen.Generate(g, rng, p)
	return nil
}

// fillWalls primes the grid for carving algorithms: every cell an obstacle.
func fillWalls(g *grid.Grid) {
	for row := 0; row < g.Rows; row++ {
		for col := 0; col < g.Cols; col++ {
			g.SetWall(row, col)
		}
	}
}

// addOpenings punches extra passages at random non-border coordinates,
// breaking the perfect-maze property so multiple routes exist.
func addOpenings(g *grid.Grid, rng *rand.Rand, p Params) {
	if g.Rows < 3 || g.Cols < 3 {
		return
	}
	divisor := p.OpeningDivisor
	if divisor <= 0 {
		divisor = 4
	}
	count := g.Rows * g.Cols / divisor
	if count < p.MinOpenings {
		count = p.MinOpenings
	}
	for i := 0; i < count; i++ {
		row := 1 + rng.Intn(g.Rows-2)
		col := 1 + rng.Intn(g.Cols-2)
		if c := g.At(row, col); c != nil && c.Wall {
			g.ClearWall(row, col)
		}
	}
}
