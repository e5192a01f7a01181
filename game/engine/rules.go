package engine

import "fmt"

// Rules applies the game rules of one rule set. It holds no game state, so a
// single Rules value can serve any number of independent games.
type Rules struct {
	board  *Board
	config *GameConfig
}

// NewRules validates config and builds the board it describes.
func NewRules(config *GameConfig) (*Rules, error) {
	if err := ValidateGameConfig(config); err != nil {
		return nil, err
	}

	board, err := NewBoard(config.SafeCellOffset)
	if err != nil {
		return nil, err
	}

	cfg := *config
	ApplyMessageDefaults(&cfg)
	return &Rules{board: board, config: &cfg}, nil
}

// Board returns the board geometry.
func (r *Rules) Board() *Board {
	return r.board
}

// Config returns the rule set in use.
func (r *Rules) Config() *GameConfig {
	return r.config
}

// NewGame returns a fresh state with every token in base.
func (r *Rules) NewGame() *GameState {
	return InitGameStateFromConfig(r.config)
}

// CanMove reports whether a token at pos may move with roll: a token in base
// needs an entry roll, a token on its path may not overshoot home.
func CanMove(pos, roll int) bool {
	if pos == BasePosition {
		return roll == EntryRoll
	}
	return pos > BasePosition && pos+roll <= PathLength
}

// MovableTokens returns the indices of the tokens that may move with roll.
func MovableTokens(tokens Tokens, roll int) []int {
	movable := []int{}
	for i, pos := range tokens {
		if CanMove(pos, roll) {
			movable = append(movable, i)
		}
	}
	return movable
}

// LegalMoves returns the token indices color c may move with roll.
func (r *Rules) LegalMoves(s *GameState, c Color, roll int) ([]int, error) {
	if err := checkColor(c); err != nil {
		return nil, err
	}
	if c != s.Active {
		return nil, fmt.Errorf("%w: %s requested moves during %s's turn", ErrTurnViolation, c, s.Active)
	}
	if err := checkRoll(roll); err != nil {
		return nil, err
	}
	return MovableTokens(s.Tokens[c], roll), nil
}

// ApplyMove moves token of color c by roll and resolves captures. s is never
// modified: the returned result carries the new state, with the roll consumed
// and c still active. On error the caller's state is exactly as before.
func (r *Rules) ApplyMove(s *GameState, c Color, token, roll int) (*MoveResult, error) {
	if err := checkColor(c); err != nil {
		return nil, err
	}
	if s.Finished() {
		return nil, ErrAlreadyWon
	}
	if c != s.Active {
		return nil, fmt.Errorf("%w: %s tried to move during %s's turn", ErrTurnViolation, c, s.Active)
	}
	if err := checkRoll(roll); err != nil {
		return nil, err
	}
	if s.Dice != 0 && roll != s.Dice {
		return nil, fmt.Errorf("%w: roll %d does not match pending dice %d", ErrInvalidMove, roll, s.Dice)
	}
	if token < 0 || token >= TokensPerColor {
		return nil, fmt.Errorf("%w: token index %d out of range", ErrInvalidMove, token)
	}

	from := s.Tokens[c][token]
	if !CanMove(from, roll) {
		return nil, fmt.Errorf("%w: %s token %d at %d cannot move %d", ErrInvalidMove, c, token, from, roll)
	}

	to := from + roll
	if from == BasePosition {
		to = EntryPosition
	}

	ns := s.Clone()
	tokens := ns.Tokens[c]
	tokens[token] = to
	ns.Tokens[c] = tokens
	ns.Dice = 0
	ns.Legal = nil
	ns.Phase = PhaseAwaitingRoll

	cell, _ := r.board.CellAt(c, to)
	result := &MoveResult{
		State: ns,
		Color: c,
		Token: token,
		Dice:  roll,
		From:  from,
		To:    to,
		Cell:  cell,
		Moved: true,
	}

	// Captures happen only on the shared ring, never on a safe cell.
	if to <= RingSize && !r.board.IsSafe(cell) {
		result.Captured = r.capture(ns, c, to)
	}

	if r.CheckWin(ns, c) {
		ns.Won = true
		ns.Winner = c
		ns.Phase = PhaseWon
		result.Won = true
	}

	return result, nil
}

// capture sends every opposing token on the same ring cell as attacker's
// token at pos back to base.
func (r *Rules) capture(s *GameState, attacker Color, pos int) []TokenRef {
	target, ok := r.board.RingIndex(attacker, pos)
	if !ok {
		return nil
	}

	var captured []TokenRef
	for _, c := range TurnOrder {
		if c == attacker {
			continue
		}
		tokens := s.Tokens[c]
		for i, p := range tokens {
			if idx, onRing := r.board.RingIndex(c, p); onRing && idx == target {
				tokens[i] = BasePosition
				captured = append(captured, TokenRef{Color: c, Token: i})
			}
		}
		s.Tokens[c] = tokens
	}
	return captured
}

// CheckWin reports whether all of c's tokens are home.
func (r *Rules) CheckWin(s *GameState, c Color) bool {
	return allHome(s.Tokens[c])
}

func allHome(tokens Tokens) bool {
	for _, pos := range tokens {
		if pos != HomePosition {
			return false
		}
	}
	return true
}

func checkColor(c Color) error {
	if !c.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidColor, c)
	}
	return nil
}

func checkRoll(roll int) error {
	if roll < MinDie || roll > MaxDie {
		return fmt.Errorf("%w: got %d", ErrInvalidRoll, roll)
	}
	return nil
}
