package service

import (
	"time"

	"github.com/wricardo/ludo-race-game/game/engine"
)

// SessionInfo provides information about a game session
type SessionInfo struct {
	ID             string             `json:"id"`
	ConfigName     string             `json:"config_name"`
	CreatedAt      time.Time          `json:"created_at"`
	LastAccessedAt time.Time          `json:"last_accessed_at"`
	GameState      *engine.GameState  `json:"game_state"`
	GameConfig     *engine.GameConfig `json:"game_config"`
}

// TurnResult contains the outcome of a roll, move or reset
type TurnResult struct {
	SessionID string             `json:"session_id"`
	Success   bool               `json:"success"`
	GameState *engine.GameState  `json:"game_state"`
	Message   string             `json:"message"`
	Events    []engine.Event     `json:"events"`
	Move      *engine.MoveResult `json:"move,omitempty"`
}

// LegalMove describes where a movable token would land
type LegalMove struct {
	Token int         `json:"token"`
	From  int         `json:"from"`
	To    int         `json:"to"`
	Cell  engine.Cell `json:"cell"`
	Home  bool        `json:"home,omitempty"`
}

// LegalMovesResult lists the tokens a color may move with a roll
type LegalMovesResult struct {
	Color   engine.Color `json:"color"`
	Roll    int          `json:"roll"`
	Pending bool         `json:"pending"` // roll is the die awaiting a choice
	Tokens  []int        `json:"tokens"`
	Moves   []LegalMove  `json:"moves"`
}

// HistoryOptions configures move history retrieval
type HistoryOptions struct {
	Page  int    `json:"page"`
	Limit int    `json:"limit"`
	Order string `json:"order"` // "asc" or "desc"
}

// HistoryResponse contains paginated move history
type HistoryResponse struct {
	Moves       []engine.MoveHistoryEntry `json:"moves"`
	TotalMoves  int                       `json:"total_moves"`
	Page        int                       `json:"page"`
	PageSize    int                       `json:"page_size"`
	TotalPages  int                       `json:"total_pages"`
	HasNext     bool                      `json:"has_next"`
	HasPrevious bool                      `json:"has_previous"`
}

// ConfigInfo provides information about a game configuration
type ConfigInfo struct {
	Filename       string        `json:"filename"`
	ConfigID       string        `json:"config_id"` // The identifier to use for session creation
	Name           string        `json:"name"`      // Display name
	Description    string        `json:"description"`
	AutoMoveSingle bool          `json:"auto_move_single"`
	SafeCellOffset int           `json:"safe_cell_offset"`
	SafeCells      []engine.Cell `json:"safe_cells"`
}

// BoardInfo is the board layout of one rule set
type BoardInfo struct {
	ConfigName string `json:"config_name"`
	*engine.Layout
}
