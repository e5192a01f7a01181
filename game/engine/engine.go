package engine

import (
	"fmt"

	"github.com/wricardo/ludo-race-game/game/dice"
)

// Engine provides the main interface for game operations
type Engine interface {
	// Game state management
	GetState() *GameState
	SetState(state *GameState) error
	Reset() *GameState
	IsWon() bool
	Winner() Color
	ActiveColor() Color

	// Turn operations
	RollDie() int
	Roll(c Color) (*TurnResult, error)
	RollValue(c Color, value int) (*TurnResult, error)
	Move(c Color, token int) (*TurnResult, error)
	LegalMoves(c Color, roll int) ([]int, error)
	CheckWin(c Color) bool

	// Configuration
	GetConfig() *GameConfig
	GetBoard() *Board

	// History
	GetMoveHistory() []MoveHistoryEntry
	GetLastMove() *MoveHistoryEntry
}

// GameEngine implements the Engine interface for a single game. It is not
// safe for concurrent use; callers serialize access.
type GameEngine struct {
	rules  *Rules
	state  *GameState
	roller dice.Roller
}

// NewEngine creates a new game engine with the provided configuration. A nil
// roller selects a die seeded from config.Seed, or from entropy when the
// seed is zero.
func NewEngine(config *GameConfig, roller dice.Roller) (*GameEngine, error) {
	rules, err := NewRules(config)
	if err != nil {
		return nil, err
	}

	if roller == nil {
		if config.Seed != 0 {
			roller = dice.NewRandom(config.Seed)
		} else {
			random, err := dice.NewRandomFromEntropy()
			if err != nil {
				return nil, fmt.Errorf("failed to seed dice: %w", err)
			}
			roller = random
		}
	}

	return &GameEngine{
		rules:  rules,
		state:  rules.NewGame(),
		roller: roller,
	}, nil
}

// NewEngineWithDefaults creates a new game engine with the classic rule set
func NewEngineWithDefaults() *GameEngine {
	engine, err := NewEngine(DefaultGameConfig(), nil)
	if err != nil {
		// The default rule set is always valid.
		panic(err)
	}
	return engine
}

// GetState returns a snapshot of the current game state
func (e *GameEngine) GetState() *GameState {
	return e.state.Clone()
}

// SetState replaces the game state
func (e *GameEngine) SetState(state *GameState) error {
	if state == nil {
		return fmt.Errorf("state cannot be nil")
	}
	if !state.Active.Valid() {
		return fmt.Errorf("%w: active color %q", ErrInvalidColor, state.Active)
	}
	for c, tokens := range state.Tokens {
		if !c.Valid() {
			return fmt.Errorf("%w: %q", ErrInvalidColor, c)
		}
		for i, pos := range tokens {
			if pos < BasePosition || pos > HomePosition {
				return fmt.Errorf("%s token %d position %d out of range", c, i, pos)
			}
		}
	}
	e.state = state.Clone()
	return nil
}

// Reset starts a new game with the same rule set
func (e *GameEngine) Reset() *GameState {
	// Preserve cumulative history and totals across resets
	prevHistory := e.state.MoveHistory
	prevTotal := e.state.TotalMoves

	e.state = e.rules.NewGame()

	e.state.MoveHistory = prevHistory
	e.state.TotalMoves = prevTotal
	e.state.CurrentMoves = []MoveHistoryEntry{}
	e.state.CurrentMovesCount = 0

	return e.GetState()
}

// IsWon returns whether a color has brought every token home
func (e *GameEngine) IsWon() bool {
	return e.state.Finished()
}

// Winner returns the winning color, if any
func (e *GameEngine) Winner() Color {
	return e.state.Winner
}

// ActiveColor returns the color whose turn it is
func (e *GameEngine) ActiveColor() Color {
	return e.state.Active
}

// RollDie returns a face in [1,6] without touching the game state
func (e *GameEngine) RollDie() int {
	return e.roller.Roll()
}

// Roll rolls the die for c and advances the turn controller
func (e *GameEngine) Roll(c Color) (*TurnResult, error) {
	if err := e.precheckRoll(c); err != nil {
		return nil, err
	}
	return e.RollValue(c, e.RollDie())
}

// RollValue feeds an externally rolled value for c
func (e *GameEngine) RollValue(c Color, value int) (*TurnResult, error) {
	result, err := e.rules.Roll(e.state, c, value)
	if err != nil {
		return nil, err
	}
	e.state = result.State
	result.State = e.GetState()
	return result, nil
}

// Move applies the chosen token for the pending roll
func (e *GameEngine) Move(c Color, token int) (*TurnResult, error) {
	result, err := e.rules.Choose(e.state, c, token)
	if err != nil {
		return nil, err
	}
	e.state = result.State
	result.State = e.GetState()
	return result, nil
}

// LegalMoves returns the tokens c could move with roll
func (e *GameEngine) LegalMoves(c Color, roll int) ([]int, error) {
	return e.rules.LegalMoves(e.state, c, roll)
}

// CheckWin reports whether every token of c is home
func (e *GameEngine) CheckWin(c Color) bool {
	return e.rules.CheckWin(e.state, c)
}

// GetConfig returns the rule set
func (e *GameEngine) GetConfig() *GameConfig {
	return e.rules.Config()
}

// GetBoard returns the board geometry
func (e *GameEngine) GetBoard() *Board {
	return e.rules.Board()
}

// GetMoveHistory returns the complete move history
func (e *GameEngine) GetMoveHistory() []MoveHistoryEntry {
	return cloneHistory(e.state.MoveHistory)
}

// GetLastMove returns the last move made, or nil if no moves
func (e *GameEngine) GetLastMove() *MoveHistoryEntry {
	if len(e.state.MoveHistory) == 0 {
		return nil
	}
	last := e.state.MoveHistory[len(e.state.MoveHistory)-1]
	return &last
}

// precheckRoll rejects a roll before the die is consumed, so a refused
// request does not advance a scripted or seeded die.
func (e *GameEngine) precheckRoll(c Color) error {
	if err := checkColor(c); err != nil {
		return err
	}
	if e.state.Finished() {
		return ErrAlreadyWon
	}
	if c != e.state.Active {
		return fmt.Errorf("%w: %s tried to roll during %s's turn", ErrTurnViolation, c, e.state.Active)
	}
	if e.state.Phase == PhaseAwaitingMoveChoice {
		return ErrRollPending
	}
	return nil
}
