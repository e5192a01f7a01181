package engine

import "errors"

var (
	// ErrInvalidMove means the token is not movable with the given roll.
	ErrInvalidMove = errors.New("invalid move")
	// ErrTurnViolation means the request was made for a color that is not active.
	ErrTurnViolation = errors.New("not this color's turn")
	// ErrAlreadyWon means the game is finished and accepts no further actions.
	ErrAlreadyWon = errors.New("game already won")

	ErrInvalidColor  = errors.New("invalid color")
	ErrInvalidRoll   = errors.New("dice value must be between 1 and 6")
	ErrRollPending   = errors.New("a move choice is pending for the current roll")
	ErrNoRollPending = errors.New("no roll is pending, roll the die first")
)

// Phase is the turn controller state.
type Phase string

const (
	PhaseAwaitingRoll       Phase = "awaiting_roll"
	PhaseAwaitingMoveChoice Phase = "awaiting_move_choice"
	PhaseWon                Phase = "won"
)

// Tokens holds the positions of one color's four tokens.
type Tokens [TokensPerColor]int

// GameState is the complete state of one game. Callers treat it as read-only;
// every rule operation returns a new value.
type GameState struct {
	Tokens     map[Color]Tokens `json:"tokens"`
	Active     Color            `json:"active"`
	Dice       int              `json:"dice"`
	Phase      Phase            `json:"phase"`
	Legal      []int            `json:"legal_moves,omitempty"`
	Won        bool             `json:"won"`
	Winner     Color            `json:"winner,omitempty"`
	Message    string           `json:"message"`
	ConfigName string           `json:"config_name"`

	MoveHistory []MoveHistoryEntry `json:"move_history"`
	TotalMoves  int                `json:"total_moves"`

	// CurrentMoves mirrors MoveHistory since the last reset.
	CurrentMoves      []MoveHistoryEntry `json:"current_moves"`
	CurrentMovesCount int                `json:"current_moves_count"`
}

// TokenRef names one token of one color.
type TokenRef struct {
	Color Color `json:"color"`
	Token int   `json:"token"`
}

// MoveResult is the outcome of ApplyMove.
type MoveResult struct {
	State    *GameState `json:"-"`
	Color    Color      `json:"color"`
	Token    int        `json:"token"`
	Dice     int        `json:"dice"`
	From     int        `json:"from"`
	To       int        `json:"to"`
	Cell     Cell       `json:"cell"`
	Captured []TokenRef `json:"captured,omitempty"`
	Moved    bool       `json:"moved"`
	Won      bool       `json:"won"`
}

// EventType classifies turn notifications for the presentation layer.
type EventType string

const (
	EventRolled         EventType = "rolled"
	EventAwaitingChoice EventType = "awaiting_choice"
	EventMoved          EventType = "moved"
	EventCaptured       EventType = "captured"
	EventExtraTurn      EventType = "extra_turn"
	EventForfeited      EventType = "forfeited"
	EventTurnChanged    EventType = "turn_changed"
	EventWon            EventType = "won"
	EventReset          EventType = "reset"
)

// Event is a discrete notification emitted by a roll or a move.
type Event struct {
	Type    EventType `json:"type"`
	Color   Color     `json:"color"`
	Token   int       `json:"token"`
	Dice    int       `json:"dice,omitempty"`
	From    int       `json:"from,omitempty"`
	To      int       `json:"to,omitempty"`
	Cell    Cell      `json:"cell,omitempty"`
	Legal   []int     `json:"legal_moves,omitempty"`
	Message string    `json:"message"`
}

// TurnResult is returned by every turn controller step.
type TurnResult struct {
	State  *GameState  `json:"state"`
	Events []Event     `json:"events"`
	Move   *MoveResult `json:"move,omitempty"`
}

// MoveHistoryEntry records one roll and what came of it.
type MoveHistoryEntry struct {
	Color      Color      `json:"color"`
	Dice       int        `json:"dice"`
	Token      int        `json:"token"`
	From       int        `json:"from"`
	To         int        `json:"to"`
	Cell       Cell       `json:"cell,omitempty"`
	Captured   []TokenRef `json:"captured,omitempty"`
	Forfeited  bool       `json:"forfeited,omitempty"`
	ExtraTurn  bool       `json:"extra_turn,omitempty"`
	Won        bool       `json:"won,omitempty"`
	Timestamp  int64      `json:"timestamp"`
	MoveNumber int        `json:"move_number"`
}

// GameConfig is a rule set loaded from JSON.
type GameConfig struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	// AutoMoveSingle applies the only legal move without waiting for a choice.
	AutoMoveSingle bool `json:"auto_move_single"`
	// SafeCellOffset selects which cell of each color's arc is safe (0 is the entry cell).
	SafeCellOffset int `json:"safe_cell_offset"`
	// Seed fixes the dice sequence of new sessions; 0 means a random seed.
	Seed     int64 `json:"seed,omitempty"`
	Messages struct {
		Welcome     string `json:"welcome"`
		TurnChanged string `json:"turn_changed"`
		Rolled      string `json:"rolled"`
		ChooseToken string `json:"choose_token"`
		Moved       string `json:"moved"`
		Captured    string `json:"captured"`
		ExtraTurn   string `json:"extra_turn"`
		Forfeit     string `json:"forfeit"`
		Victory     string `json:"victory"`
	} `json:"messages"`
}
