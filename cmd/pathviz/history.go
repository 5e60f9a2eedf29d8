package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-pathviz/internal/platform/tui"
	"github.com/vovakirdan/tui-pathviz/internal/storage"
)

var flagHistoryPlain bool

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Browse recorded runs",
	Long: `Open the interactive run history browser, or print the latest
runs as plain text with --plain.

Examples:
  pathviz history
  pathviz history --plain`,
	Run: runHistory,
}

func init() {
	historyCmd.Flags().BoolVar(&flagHistoryPlain, "plain", false, "Print runs as plain text instead of the interactive view")
}

func runHistory(cmd *cobra.Command, args []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening run history database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagHistoryPlain {
		printHistory(store)
		return
	}

	width, height := 100, 30 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	if err := tui.RunHistory(store, width, height); err != nil {
		fmt.Fprintf(os.Stderr, "Error showing history: %v\n", err)
		os.Exit(1)
	}
}

func printHistory(store *storage.Store) {
	runs, err := store.RecentRuns(20)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving runs: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Recent runs")
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Run 'pathviz solve --save' or solve a board interactively to fill the history.")
		return
	}

	fmt.Printf("  %-4s  %-12s  %-8s  %-10s  %-7s  %-8s  %s\n", "#", "Generator", "Size", "Outcome", "Length", "Visited", "Date")
	fmt.Printf("  %-4s  %-12s  %-8s  %-10s  %-7s  %-8s  %s\n", "-", "---------", "----", "-------", "------", "-------", "----")

	for i, r := range runs {
		length := "-"
		if r.Outcome == "path" {
			length = fmt.Sprintf("%d", r.PathLength)
		}
		fmt.Printf("  %-4d  %-12s  %-8s  %-10s  %-7s  %-8d  %s\n",
			i+1, r.Algorithm, fmt.Sprintf("%dx%d", r.Rows, r.Cols),
			r.Outcome, length, r.Visited, r.CreatedAt.Format("2006-01-02 15:04"))
	}

	stats, err := store.Stats()
	if err == nil {
		fmt.Println()
		fmt.Printf("Total: %d runs, %d paths found", stats.TotalRuns, stats.PathsFound)
		if stats.BestLength > 0 {
			fmt.Printf(", best length %d", stats.BestLength)
		}
		fmt.Println()
	}
}
