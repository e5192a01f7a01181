// Command analyze prints quick, human-readable tables about the rule sets in
// the project's configs directory: each color's entry cell, the last ring
// cell before its home stretch, its safe cells and its full path, plus how
// many rolls the fastest token needs to get home.
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/wricardo/ludo-race-game/game/engine"
)

// pathRowWidth is how many path cells are printed per line.
const pathRowWidth = engine.ArcSize

func main() {
	configDir := "configs"
	if len(os.Args) > 1 {
		configDir = os.Args[1]
	}

	files, err := filepath.Glob(filepath.Join(configDir, "*.json"))
	if err != nil {
		fmt.Printf("Error finding config files: %v\n", err)
		os.Exit(1)
	}

	for _, configFile := range files {
		fmt.Printf("\n=== Analyzing %s ===\n", filepath.Base(configFile))
		if err := analyzeConfig(os.Stdout, configFile); err != nil {
			fmt.Printf("Error: %v\n", err)
		}
	}
}

func analyzeConfig(w io.Writer, path string) error {
	config, err := engine.LoadGameConfig(path)
	if err != nil {
		return err
	}

	board, err := engine.NewBoard(config.SafeCellOffset)
	if err != nil {
		return err
	}
	layout := board.Layout()

	fmt.Fprintf(w, "Name: %s\n", config.Name)
	fmt.Fprintf(w, "Description: %s\n", config.Description)
	fmt.Fprintf(w, "Auto move single: %t\n", config.AutoMoveSingle)
	fmt.Fprintf(w, "Safe cells: %s\n", joinCells(layout.SafeCells))
	fmt.Fprintf(w, "Path length: %d (ring %d + home stretch %d)\n", layout.PathLength, engine.RingSize, engine.HomeStretchSize)
	fmt.Fprintf(w, "Fastest token: %d rolls\n", minRollsHome())

	if board.IsSafe(layout.EntryCells[engine.Red]) {
		fmt.Fprintf(w, "✅ Entry cells are safe: tokens cannot be captured on arrival\n")
	} else {
		fmt.Fprintf(w, "⚠️  Entry cells are not safe: a token can be captured the moment it enters\n")
	}

	for _, c := range layout.TurnOrder {
		path := layout.Paths[c]
		fmt.Fprintf(w, "\n%s: entry %s, last ring cell %s, home stretch %s..%s\n",
			engine.DisplayName(c), layout.EntryCells[c], path[engine.RingSize-1],
			path[engine.RingSize], path[len(path)-1])
		for start := 0; start < len(path); start += pathRowWidth {
			end := min(start+pathRowWidth, len(path))
			fmt.Fprintf(w, "  %2d-%2d %s\n", start+1, end, formatPathRow(board, path[start:end]))
		}
	}
	return nil
}

// formatPathRow renders cells padded to a fixed width, marking safe ones with *.
func formatPathRow(board *engine.Board, cells []engine.Cell) string {
	parts := make([]string, len(cells))
	for i, cell := range cells {
		label := string(cell)
		if board.IsSafe(cell) {
			label += "*"
		}
		parts[i] = fmt.Sprintf("%-4s", label)
	}
	return strings.TrimRight(strings.Join(parts, " "), " ")
}

// minRollsHome is the fewest rolls that bring one token from base to home:
// a 6 to enter, then sixes and one exact final roll.
func minRollsHome() int {
	steps := engine.HomePosition - engine.EntryPosition
	return 1 + (steps+engine.MaxDie-1)/engine.MaxDie
}

func joinCells(cells []engine.Cell) string {
	parts := make([]string, len(cells))
	for i, c := range cells {
		parts[i] = string(c)
	}
	return strings.Join(parts, " ")
}
