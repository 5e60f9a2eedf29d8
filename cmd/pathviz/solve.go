package main

import (
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-pathviz/internal/config"
	"github.com/vovakirdan/tui-pathviz/internal/grid"
	"github.com/vovakirdan/tui-pathviz/internal/maze"
	"github.com/vovakirdan/tui-pathviz/internal/search"
	"github.com/vovakirdan/tui-pathviz/internal/storage"
)

var (
	flagSolveAlgo string
	flagSolveRows int
	flagSolveCols int
	flagSolveSave bool
)

var solveCmd = &cobra.Command{
	Use:   "solve",
	Short: "Solve a generated board headlessly",
	Long: `Generate a board, place start and goal in opposite corners, run the
search at full speed and print the result. With --save the run is also
recorded in the history database.

Examples:
  pathviz solve
  pathviz solve --algo prim --rows 31 --cols 31
  pathviz solve --algo scatter --seed 42 --save`,
	Run: runSolve,
}

func init() {
	solveCmd.Flags().StringVar(&flagSolveAlgo, "algo", "backtracker", "Maze generator ID, or 'none' for an empty board")
	solveCmd.Flags().IntVar(&flagSolveRows, "rows", 0, "Board rows (0 = from config)")
	solveCmd.Flags().IntVar(&flagSolveCols, "cols", 0, "Board columns (0 = from config)")
	solveCmd.Flags().BoolVar(&flagSolveSave, "save", false, "Record the run in the history database")
}

func runSolve(cmd *cobra.Command, args []string) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	rows, cols := flagSolveRows, flagSolveCols
	if rows <= 0 {
		rows = cfg.Grid.Rows
	}
	if cols <= 0 {
		cols = cfg.Grid.Cols
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	board, err := buildBoard(cfg, flagSolveAlgo, rows, cols, seed)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if !placeCornerEndpoints(board) {
		fmt.Fprintln(os.Stderr, "Error: board has no passable cells for start/goal")
		os.Exit(1)
	}

	eng := &search.Engine{} // no pacing: headless runs go full speed
	started := time.Now()
	res := eng.Run(board, nil, nil)
	length := 0
	if res.Outcome == search.PathFound {
		length = eng.Reconstruct(board, nil, nil)
	}
	elapsed := time.Since(started)

	fmt.Printf("Board:    %dx%d (%s, seed %d)\n", rows, cols, flagSolveAlgo, seed)
	fmt.Printf("Outcome:  %s\n", res.Outcome)
	if res.Outcome == search.PathFound {
		fmt.Printf("Path:     %d cells (%d steps)\n", length, board.Goal().Dist)
	}
	fmt.Printf("Visited:  %d cells\n", res.Visited)
	fmt.Printf("Elapsed:  %s\n", elapsed.Round(time.Microsecond))

	if !flagSolveSave {
		return
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open run history database: %v\n", err)
		return
	}
	defer store.Close()

	entry := storage.RunEntry{
		Algorithm:  flagSolveAlgo,
		Rows:       rows,
		Cols:       cols,
		Outcome:    "no-path",
		PathLength: length,
		Visited:    res.Visited,
		DurationMS: elapsed.Milliseconds(),
	}
	if res.Outcome == search.PathFound {
		entry.Outcome = "path"
		entry.Distance = board.Goal().Dist
	}
	if _, err := store.SaveRun(entry); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not record run: %v\n", err)
	}
}

// buildBoard creates a grid and applies the requested generator.
func buildBoard(cfg config.Config, algo string, rows, cols int, seed int64) (*grid.Grid, error) {
	board := grid.NewWithCellSize(rows, cols, cfg.Grid.CellWidth, cfg.Grid.CellHeight)
	if algo == "none" {
		return board, nil
	}
	if !maze.Exists(algo) {
		return nil, fmt.Errorf("unknown generator %q, run 'pathviz list' to see available ones", algo)
	}
	rng := rand.New(rand.NewSource(seed))
	params := maze.Params{
		WallChance:     cfg.Maze.WallChance,
		MinOpenings:    cfg.Maze.MinOpenings,
		OpeningDivisor: cfg.Maze.OpeningDivisor,
	}
	if err := maze.Generate(board, algo, rng, params); err != nil {
		return nil, err
	}
	return board, nil
}

// placeCornerEndpoints picks the first and last passable cells as start
// and goal. Returns false when fewer than two passable cells exist.
func placeCornerEndpoints(board *grid.Grid) bool {
	start, goal := -1, -1
	for i := 0; i < board.Len(); i++ {
		if !board.CellAt(i).Wall {
			start = i
			break
		}
	}
	for i := board.Len() - 1; i >= 0; i-- {
		if !board.CellAt(i).Wall {
			goal = i
			break
		}
	}
	if start < 0 || goal < 0 || start == goal {
		return false
	}
	s, g := board.CellAt(start), board.CellAt(goal)
	return board.SetStart(s.Row, s.Col) && board.SetGoal(g.Row, g.Col)
}
