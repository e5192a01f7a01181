// Command validate provides a small CLI that validates rule set JSON files in
// a configs directory (../configs by default, or the first argument). It checks:
//   - JSON structure, unknown keys and required fields
//   - The safe cell offset builds a board
//   - Every message template takes the arguments the engine passes it
//   - The rule set loads through the engine
package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/wricardo/ludo-race-game/game/engine"
)

// ValidationResult captures the outcome of validating a single file.
// If Valid is true, Errors contains informational messages; otherwise it
// accumulates the validation errors that were found.
type ValidationResult struct {
	File   string
	Valid  bool
	Errors []string
}

func (r *ValidationResult) fail(format string, args ...any) {
	r.Valid = false
	r.Errors = append(r.Errors, fmt.Sprintf(format, args...))
}

// messageVerbs lists the verbs each template receives, in order. The color
// name always comes first.
var messageVerbs = map[string][]byte{
	"welcome":      {'s'},
	"turn_changed": {'s'},
	"rolled":       {'s', 'd'},
	"choose_token": {'s', 'd'},
	"moved":        {'s', 'd', 's'},
	"captured":     {'s', 's', 'd'},
	"extra_turn":   {'s'},
	"forfeit":      {'s', 'd'},
	"victory":      {'s'},
}

// validateConfig loads and validates a single rule set JSON file.
func validateConfig(filePath string) ValidationResult {
	result := ValidationResult{
		File:   filepath.Base(filePath),
		Valid:  true,
		Errors: []string{},
	}

	data, err := os.ReadFile(filePath)
	if err != nil {
		result.fail("Failed to read file: %v", err)
		return result
	}

	var config engine.GameConfig
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&config); err != nil {
		result.fail("Invalid JSON: %v", err)
		return result
	}

	if config.Name == "" {
		result.fail("name is required")
	}
	if config.Description == "" {
		result.fail("description is required")
	}
	if stem := strings.TrimSuffix(result.File, filepath.Ext(result.File)); config.Name != "" && config.Name != stem {
		result.fail("name %q does not match file name %q", config.Name, stem)
	}
	if config.Seed < 0 {
		result.fail("seed must not be negative, got %d", config.Seed)
	}

	board, err := engine.NewBoard(config.SafeCellOffset)
	if err != nil {
		result.fail("%v", err)
	}

	for key, tmpl := range messageTemplates(&config) {
		if tmpl == "" {
			continue
		}
		if err := checkTemplate(tmpl, messageVerbs[key]); err != nil {
			result.fail("messages.%s: %v", key, err)
		}
	}

	if result.Valid {
		if err := engine.ValidateGameConfig(&config); err != nil {
			result.fail("%v", err)
		}
	}

	// Add informational data
	if result.Valid {
		custom := 0
		for _, tmpl := range messageTemplates(&config) {
			if tmpl != "" {
				custom++
			}
		}
		result.Errors = append(result.Errors,
			fmt.Sprintf("✓ Name: %s", config.Name),
			fmt.Sprintf("✓ Safe cells: %s", joinCells(board.SafeCells())),
			fmt.Sprintf("✓ Auto move single: %t", config.AutoMoveSingle),
			fmt.Sprintf("✓ Custom messages: %d/%d", custom, len(messageVerbs)),
		)
		if config.Seed != 0 {
			result.Errors = append(result.Errors, fmt.Sprintf("✓ Fixed seed: %d", config.Seed))
		}
	}

	return result
}

func messageTemplates(config *engine.GameConfig) map[string]string {
	m := config.Messages
	return map[string]string{
		"welcome":      m.Welcome,
		"turn_changed": m.TurnChanged,
		"rolled":       m.Rolled,
		"choose_token": m.ChooseToken,
		"moved":        m.Moved,
		"captured":     m.Captured,
		"extra_turn":   m.ExtraTurn,
		"forfeit":      m.Forfeit,
		"victory":      m.Victory,
	}
}

// checkTemplate verifies that tmpl uses at most the expected verbs, in
// order, and always starts with the color.
func checkTemplate(tmpl string, want []byte) error {
	verbs := templateVerbs(tmpl)
	if len(verbs) == 0 || verbs[0] != 's' {
		return fmt.Errorf("must start with %%s for the color")
	}
	if len(verbs) > len(want) {
		return fmt.Errorf("uses %d verbs, at most %d are supplied", len(verbs), len(want))
	}
	for i, v := range verbs {
		if v != want[i] && v != 'v' {
			return fmt.Errorf("verb %d is %%%c, expected %%%c", i+1, v, want[i])
		}
	}
	return nil
}

// templateVerbs returns the verb letters of a printf template, skipping %%.
func templateVerbs(tmpl string) []byte {
	var verbs []byte
	for i := 0; i < len(tmpl); i++ {
		if tmpl[i] != '%' {
			continue
		}
		i++
		// Skip flags, width and precision.
		for i < len(tmpl) && strings.IndexByte("+-# 0123456789.", tmpl[i]) >= 0 {
			i++
		}
		if i >= len(tmpl) {
			break
		}
		if tmpl[i] != '%' {
			verbs = append(verbs, tmpl[i])
		}
	}
	return verbs
}

func joinCells(cells []engine.Cell) string {
	parts := make([]string, len(cells))
	for i, c := range cells {
		parts[i] = string(c)
	}
	return strings.Join(parts, " ")
}

// main scans the configs directory for *.json files and validates each one,
// printing a concise report and exiting with non-zero status if any are invalid.
func main() {
	configDir := "../configs"
	if len(os.Args) > 1 {
		configDir = os.Args[1]
	}

	files, err := filepath.Glob(filepath.Join(configDir, "*.json"))
	if err != nil {
		fmt.Printf("Error finding config files: %v\n", err)
		os.Exit(1)
	}
	if len(files) == 0 {
		fmt.Printf("No rule sets found in %s\n", configDir)
		os.Exit(1)
	}

	allValid := true
	for _, file := range files {
		result := validateConfig(file)

		fmt.Printf("\n%s %s\n", strings.Repeat("=", 20), result.File)

		if result.Valid {
			fmt.Println("✅ VALID")
			for _, info := range result.Errors {
				fmt.Println("  " + info)
			}
		} else {
			fmt.Println("❌ INVALID")
			allValid = false
			for _, err := range result.Errors {
				fmt.Println("  ❌ " + err)
			}
		}
	}

	fmt.Printf("\n%s\n", strings.Repeat("=", 40))
	if allValid {
		fmt.Println("✅ All rule sets are valid!")
	} else {
		fmt.Println("❌ Some rule sets have errors")
		os.Exit(1)
	}
}
