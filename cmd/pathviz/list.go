package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-pathviz/internal/maze"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List available maze generators",
	Long:  `Shows a list of all registered maze generators.`,
	Run:   runList,
}

func runList(cmd *cobra.Command, args []string) {
	gens := maze.List()

	if len(gens) == 0 {
		fmt.Println("No generators available.")
		return
	}

	fmt.Println("Available generators:")
	fmt.Println()

	// Calculate column widths
	maxIDLen := 2 // "ID" header
	for _, g := range gens {
		if len(g.ID) > maxIDLen {
			maxIDLen = len(g.ID)
		}
	}

	// Print header
	fmt.Printf("  %-*s  %s\n", maxIDLen, "ID", "Title")
	fmt.Printf("  %-*s  %s\n", maxIDLen, "--", "-----")

	// Print generators
	for _, g := range gens {
		fmt.Printf("  %-*s  %s\n", maxIDLen, g.ID, g.Title)
	}

	fmt.Println()
	fmt.Println("Run 'pathviz generate <id>' to preview one.")
}
