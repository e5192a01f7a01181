package engine

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
)

// Default status messages. Every template takes the color name as its first
// argument.
const (
	DefaultWelcomeMessage     = "Welcome to Ludo! %s rolls first."
	DefaultTurnChangedMessage = "%s to roll"
	DefaultRolledMessage      = "%s rolled %d"
	DefaultChooseTokenMessage = "%s rolled %d: choose a token to move"
	DefaultMovedMessage       = "%s moved token %d to %s"
	DefaultCapturedMessage    = "%s captured %s token %d"
	DefaultExtraTurnMessage   = "%s rolled a 6 and plays again"
	DefaultForfeitMessage     = "%s cannot move with a %d, turn passes"
	DefaultVictoryMessage     = "%s wins!"
)

// ValidateGameConfig validates a rule set for correctness.
func ValidateGameConfig(config *GameConfig) error {
	if config == nil {
		return fmt.Errorf("config validation: config is required")
	}
	if config.Name == "" {
		return fmt.Errorf("config validation: name is required")
	}
	if config.Description == "" {
		return fmt.Errorf("config validation: description is required")
	}
	if config.SafeCellOffset < 0 || config.SafeCellOffset >= ArcSize {
		return fmt.Errorf("config validation: safe_cell_offset must be between 0 and %d, got %d",
			ArcSize-1, config.SafeCellOffset)
	}
	if config.Seed < 0 {
		return fmt.Errorf("config validation: seed must not be negative, got %d", config.Seed)
	}

	// Every non-empty template must start with the color verb.
	templates := map[string]string{
		"welcome":      config.Messages.Welcome,
		"turn_changed": config.Messages.TurnChanged,
		"rolled":       config.Messages.Rolled,
		"choose_token": config.Messages.ChooseToken,
		"moved":        config.Messages.Moved,
		"captured":     config.Messages.Captured,
		"extra_turn":   config.Messages.ExtraTurn,
		"forfeit":      config.Messages.Forfeit,
		"victory":      config.Messages.Victory,
	}
	for key, tmpl := range templates {
		if tmpl != "" && !strings.Contains(tmpl, "%s") {
			return fmt.Errorf("config validation: messages.%s must contain %%s for the color", key)
		}
	}

	return nil
}

// ApplyMessageDefaults fills every empty message template with its default.
func ApplyMessageDefaults(config *GameConfig) {
	m := &config.Messages
	setDefault(&m.Welcome, DefaultWelcomeMessage)
	setDefault(&m.TurnChanged, DefaultTurnChangedMessage)
	setDefault(&m.Rolled, DefaultRolledMessage)
	setDefault(&m.ChooseToken, DefaultChooseTokenMessage)
	setDefault(&m.Moved, DefaultMovedMessage)
	setDefault(&m.Captured, DefaultCapturedMessage)
	setDefault(&m.ExtraTurn, DefaultExtraTurnMessage)
	setDefault(&m.Forfeit, DefaultForfeitMessage)
	setDefault(&m.Victory, DefaultVictoryMessage)
}

func setDefault(field *string, value string) {
	if *field == "" {
		*field = value
	}
}

// DefaultGameConfig returns the classic rule set: safe cells on the ninth
// square of each arc and automatic play of a single legal move.
func DefaultGameConfig() *GameConfig {
	config := &GameConfig{
		Name:           "classic",
		Description:    "Classic rules: safe ninth square per arc, single legal moves play automatically",
		AutoMoveSingle: true,
		SafeCellOffset: DefaultSafeCellOffset,
	}
	ApplyMessageDefaults(config)
	return config
}

// LoadGameConfig loads and validates a rule set from a JSON file.
func LoadGameConfig(filename string) (*GameConfig, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}

	var config GameConfig
	if err := json.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config file '%s': %w", filename, err)
	}

	if err := ValidateGameConfig(&config); err != nil {
		return nil, err
	}
	ApplyMessageDefaults(&config)

	return &config, nil
}

// InitGameStateFromConfig creates the start-of-game state: every token in
// base and the first color in turn order to roll.
func InitGameStateFromConfig(config *GameConfig) *GameState {
	if config == nil {
		config = DefaultGameConfig()
	}

	tokens := make(map[Color]Tokens, NumColors)
	for _, c := range TurnOrder {
		tokens[c] = Tokens{}
	}

	first := TurnOrder[0]
	return &GameState{
		Tokens:            tokens,
		Active:            first,
		Phase:             PhaseAwaitingRoll,
		Message:           formatMessage(config.Messages.Welcome, DefaultWelcomeMessage, first),
		ConfigName:        config.Name,
		MoveHistory:       []MoveHistoryEntry{},
		CurrentMoves:      []MoveHistoryEntry{},
		CurrentMovesCount: 0,
	}
}

// formatMessage renders tmpl (or fallback when tmpl is empty) with the
// capitalized color name followed by args.
func formatMessage(tmpl, fallback string, c Color, args ...any) string {
	if tmpl == "" {
		tmpl = fallback
	}
	return fmt.Sprintf(tmpl, append([]any{DisplayName(c)}, args...)...)
}

// DisplayName returns the capitalized color name.
func DisplayName(c Color) string {
	if c == "" {
		return ""
	}
	s := string(c)
	return strings.ToUpper(s[:1]) + s[1:]
}
