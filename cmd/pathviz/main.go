// pathviz is an interactive shortest-path visualizer for the terminal.
//
// Usage:
//
//	pathviz run               - Interactive visualizer
//	pathviz solve             - Solve a generated board headlessly
//	pathviz generate <algo>   - Print a generated maze as text
//	pathviz list              - List maze generators
//	pathviz history           - Browse past runs
//	pathviz serve             - Start SSH server for remote sessions
//
// Global flags:
//
//	--fps <rate>     - Set UI tick rate (default: 30)
//	--seed <value>   - Set RNG seed for reproducible boards
//	--db <path>      - Set database path (default: ~/.pathviz/runs.db)
//	--config <path>  - Path to custom config YAML
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
	flagConfig string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "pathviz",
	Short: "Pathviz - Watch shortest-path search in your terminal",
	Long: `Pathviz is a terminal-based pathfinding visualizer. Draw walls or
generate a maze, place start and goal, and watch a uniform-cost search
flood the board and trace the shortest path.

Available commands:
  run      - Interactive visualizer
  solve    - Solve a generated board headlessly and record the result
  generate - Print a generated maze as text
  list     - Show available maze generators
  history  - Browse recorded runs
  serve    - Start SSH server for remote sessions

Examples:
  pathviz run
  pathviz run --seed 42
  pathviz solve --algo backtracker --rows 21 --cols 41
  pathviz generate prim
  pathviz history
  pathviz serve --ssh :2222`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 30, "UI tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.pathviz/runs.db", "Path to run history database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")

	// Add subcommands
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(solveCmd)
	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(serveCmd)
}
