package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-pathviz/internal/config"
	"github.com/vovakirdan/tui-pathviz/internal/core"
	"github.com/vovakirdan/tui-pathviz/internal/platform/tui"
	"github.com/vovakirdan/tui-pathviz/internal/storage"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Start the interactive visualizer",
	Long: `Start the interactive pathfinding visualizer.

Controls:
  Left click   - Set start, then goal
  Right click  - Draw/erase walls (drag supported)
  Enter/S      - Start the search
  P/Space      - Pause/resume
  X/Esc        - Cancel
  M / F / R    - Generate maze (backtracker / frontier growth / random)
  C            - Clear search visuals
  A            - Clear everything
  + / -        - Animation speed
  Q/Ctrl+C     - Quit

Examples:
  pathviz run
  pathviz run --seed 42
  pathviz run --config ./my-board.yaml`,
	Run: runRun,
}

func runRun(cmd *cobra.Command, args []string) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	// Get terminal size
	width, height := 120, 36 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	rc := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	// Open run history storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open run history database: %v\n", err)
		// Continue without storage - the visualizer still works
		store = nil
	}

	// Log to a file: stderr belongs to the alt-screen UI while running.
	logger := log.New(io.Discard)
	if home, homeErr := os.UserHomeDir(); homeErr == nil {
		logPath := filepath.Join(home, ".pathviz", "pathviz.log")
		if mkErr := os.MkdirAll(filepath.Dir(logPath), 0o755); mkErr == nil {
			if f, openErr := os.OpenFile(logPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644); openErr == nil {
				defer f.Close()
				logger = log.NewWithOptions(f, log.Options{ReportTimestamp: true})
			}
		}
	}

	runErr := tui.Run(cfg, rc, store, logger)

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running visualizer: %v\n", runErr)
		os.Exit(1)
	}
}
