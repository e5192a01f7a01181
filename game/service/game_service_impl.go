package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	log "github.com/sirupsen/logrus"

	"github.com/wricardo/ludo-race-game/game/engine"
)

// gameServiceImpl implements the GameService interface
type gameServiceImpl struct {
	sessions SessionManager
	configs  ConfigManager
}

// NewGameService creates a new game service instance
func NewGameService(sessions SessionManager, configs ConfigManager) GameService {
	return &gameServiceImpl{
		sessions: sessions,
		configs:  configs,
	}
}

// getConfigID returns the config_id for a given config name, used for consistent API responses
func (s *gameServiceImpl) getConfigID(configName string) string {
	availableConfigs, err := s.configs.ListConfigs()
	if err == nil {
		for _, cfg := range availableConfigs {
			if cfg.Name == configName {
				return cfg.ConfigID
			}
		}
	}
	if configName == "" {
		return "default"
	}
	return configName
}

// CreateSession creates a new game session
func (s *gameServiceImpl) CreateSession(ctx context.Context, configName string) (*SessionInfo, error) {
	var config *engine.GameConfig
	if configName != "" {
		var err error
		config, err = s.configs.LoadConfig(configName)
		if err != nil {
			if errors.Is(err, ErrConfigNotFound) {
				availableConfigs, listErr := s.configs.ListConfigs()
				if listErr == nil && len(availableConfigs) > 0 {
					var configIDs []string
					for _, cfg := range availableConfigs {
						configIDs = append(configIDs, cfg.ConfigID)
					}
					return nil, fmt.Errorf("%w: '%s'. Available configs: %v", ErrConfigNotFound, configName, configIDs)
				}
				return nil, fmt.Errorf("%w: '%s'. Use /api/configs to list available configurations", ErrConfigNotFound, configName)
			}
			return nil, fmt.Errorf("failed to load config %s: %w", configName, err)
		}
	} else {
		config = s.configs.GetDefault()
	}

	// Let session manager generate a proper 4-character ID
	sess, err := s.sessions.Create("", config)
	if err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}

	configID := configName
	if configID == "" {
		configID = s.getConfigID(config.Name)
	}

	log.WithFields(log.Fields{"session": sess.ID, "config": configID}).Info("session created")

	sess.Lock()
	defer sess.Unlock()
	info := s.sessionInfo(sess)
	info.ConfigName = configID
	return info, nil
}

// GetSession retrieves session information
func (s *gameServiceImpl) GetSession(ctx context.Context, sessionID string) (*SessionInfo, error) {
	sess, err := s.touch(sessionID)
	if err != nil {
		return nil, err
	}

	sess.Lock()
	defer sess.Unlock()
	info := s.sessionInfo(sess)
	info.ConfigName = s.getConfigID(sess.Config.Name)
	return info, nil
}

// ListSessions returns all active sessions, oldest first
func (s *gameServiceImpl) ListSessions(ctx context.Context) ([]*SessionInfo, error) {
	sessions := s.sessions.List()
	sort.Slice(sessions, func(i, j int) bool {
		return sessions[i].CreatedAt.Before(sessions[j].CreatedAt)
	})

	result := make([]*SessionInfo, 0, len(sessions))
	for _, sess := range sessions {
		sess.Lock()
		info := s.sessionInfo(sess)
		sess.Unlock()
		info.ConfigName = s.getConfigID(info.GameConfig.Name)
		result = append(result, info)
	}

	return result, nil
}

// DeleteSession removes a session
func (s *gameServiceImpl) DeleteSession(ctx context.Context, sessionID string) error {
	if err := s.sessions.Delete(sessionID); err != nil {
		return err
	}
	log.WithField("session", sessionID).Info("session deleted")
	return nil
}

// Roll rolls the die for a color and runs the turn controller
func (s *gameServiceImpl) Roll(ctx context.Context, sessionID, color string) (*TurnResult, error) {
	sess, err := s.touch(sessionID)
	if err != nil {
		return nil, err
	}

	sess.Lock()
	defer sess.Unlock()

	c, err := resolveColor(sess.Engine, color)
	if err != nil {
		return nil, err
	}

	result, err := sess.Engine.Roll(c)
	if err != nil {
		return nil, err
	}

	log.WithFields(log.Fields{
		"session": sess.ID,
		"color":   c,
		"dice":    result.Events[0].Dice,
		"events":  len(result.Events),
	}).Debug("die rolled")

	return newTurnResult(sess.ID, result), nil
}

// Move applies the chosen token for the pending roll
func (s *gameServiceImpl) Move(ctx context.Context, sessionID, color string, token int) (*TurnResult, error) {
	sess, err := s.touch(sessionID)
	if err != nil {
		return nil, err
	}

	sess.Lock()
	defer sess.Unlock()

	c, err := resolveColor(sess.Engine, color)
	if err != nil {
		return nil, err
	}

	result, err := sess.Engine.Move(c, token)
	if err != nil {
		return nil, err
	}

	log.WithFields(log.Fields{
		"session": sess.ID,
		"color":   c,
		"token":   token,
		"cell":    result.Move.Cell,
	}).Debug("token moved")

	return newTurnResult(sess.ID, result), nil
}

// LegalMoves lists the tokens a color may move. A zero roll selects the
// die awaiting a choice.
func (s *gameServiceImpl) LegalMoves(ctx context.Context, sessionID, color string, roll int) (*LegalMovesResult, error) {
	sess, err := s.touch(sessionID)
	if err != nil {
		return nil, err
	}

	sess.Lock()
	defer sess.Unlock()

	c, err := resolveColor(sess.Engine, color)
	if err != nil {
		return nil, err
	}

	state := sess.Engine.GetState()
	pending := false
	if roll == 0 {
		if state.Phase != engine.PhaseAwaitingMoveChoice {
			return nil, fmt.Errorf("%w: pass a roll to query", engine.ErrNoRollPending)
		}
		roll = state.Dice
		pending = true
	}

	tokens, err := sess.Engine.LegalMoves(c, roll)
	if err != nil {
		return nil, err
	}

	board := sess.Engine.GetBoard()
	moves := make([]LegalMove, 0, len(tokens))
	for _, i := range tokens {
		from := state.Tokens[c][i]
		to := from + roll
		if from == engine.BasePosition {
			to = engine.EntryPosition
		}
		cell, _ := board.CellAt(c, to)
		moves = append(moves, LegalMove{
			Token: i,
			From:  from,
			To:    to,
			Cell:  cell,
			Home:  to == engine.HomePosition,
		})
	}

	return &LegalMovesResult{
		Color:   c,
		Roll:    roll,
		Pending: pending,
		Tokens:  tokens,
		Moves:   moves,
	}, nil
}

// Reset starts a new game in the session
func (s *gameServiceImpl) Reset(ctx context.Context, sessionID string) (*TurnResult, error) {
	sess, err := s.touch(sessionID)
	if err != nil {
		return nil, err
	}

	sess.Lock()
	defer sess.Unlock()

	state := sess.Engine.Reset()
	log.WithField("session", sess.ID).Info("game reset")

	return &TurnResult{
		SessionID: sess.ID,
		Success:   true,
		GameState: state,
		Message:   state.Message,
		Events: []engine.Event{{
			Type:    engine.EventReset,
			Color:   state.Active,
			Message: state.Message,
		}},
	}, nil
}

// GetGameState returns the current game state
func (s *gameServiceImpl) GetGameState(ctx context.Context, sessionID string) (*engine.GameState, error) {
	sess, err := s.touch(sessionID)
	if err != nil {
		return nil, err
	}

	sess.Lock()
	defer sess.Unlock()
	return sess.Engine.GetState(), nil
}

// GetMoveHistory returns paginated move history
func (s *gameServiceImpl) GetMoveHistory(ctx context.Context, sessionID string, opts HistoryOptions) (*HistoryResponse, error) {
	sess, err := s.sessions.Get(sessionID)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrSessionNotFound, sessionID)
	}

	sess.Lock()
	history := sess.Engine.GetMoveHistory()
	sess.Unlock()

	return paginateHistory(history, opts), nil
}

// GetBoard returns the board layout of a rule set, or of the default one
func (s *gameServiceImpl) GetBoard(ctx context.Context, configName string) (*BoardInfo, error) {
	config := s.configs.GetDefault()
	if configName != "" {
		var err error
		config, err = s.configs.LoadConfig(configName)
		if err != nil {
			return nil, err
		}
	}

	board, err := engine.NewBoard(config.SafeCellOffset)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	return &BoardInfo{
		ConfigName: s.getConfigID(config.Name),
		Layout:     board.Layout(),
	}, nil
}

// ListConfigs returns available configurations
func (s *gameServiceImpl) ListConfigs(ctx context.Context) ([]*ConfigInfo, error) {
	return s.configs.ListConfigs()
}

// LoadConfig loads a specific configuration
func (s *gameServiceImpl) LoadConfig(ctx context.Context, configName string) (*engine.GameConfig, error) {
	return s.configs.LoadConfig(configName)
}

// SaveConfig saves a configuration
func (s *gameServiceImpl) SaveConfig(ctx context.Context, configName string, config *engine.GameConfig) error {
	if err := s.configs.SaveConfig(configName, config); err != nil {
		return err
	}
	log.WithField("config", configName).Info("config saved")
	return nil
}

// touch looks a session up and records the access.
func (s *gameServiceImpl) touch(sessionID string) (*Session, error) {
	sess, err := s.sessions.Get(sessionID)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrSessionNotFound, sessionID)
	}
	if err := s.sessions.UpdateLastAccessed(sessionID); err != nil {
		log.WithField("session", sessionID).WithError(err).Warn("failed to update last access")
	}
	return sess, nil
}

// sessionInfo must be called with the session locked.
func (s *gameServiceImpl) sessionInfo(sess *Session) *SessionInfo {
	return &SessionInfo{
		ID:             sess.ID,
		ConfigName:     sess.Config.Name,
		CreatedAt:      sess.CreatedAt,
		LastAccessedAt: sess.LastAccessedAt,
		GameState:      sess.Engine.GetState(),
		GameConfig:     sess.Config,
	}
}

// resolveColor parses color, defaulting to the active one.
func resolveColor(e *engine.GameEngine, color string) (engine.Color, error) {
	color = strings.ToLower(strings.TrimSpace(color))
	if color == "" {
		return e.ActiveColor(), nil
	}
	return engine.ParseColor(color)
}

func newTurnResult(sessionID string, result *engine.TurnResult) *TurnResult {
	events := result.Events
	if events == nil {
		events = []engine.Event{}
	}
	return &TurnResult{
		SessionID: sessionID,
		Success:   true,
		GameState: result.State,
		Message:   result.State.Message,
		Events:    events,
		Move:      result.Move,
	}
}

// paginateHistory slices history into a page. Defaults: page 1, 20 entries
// (at most 100), most recent first.
func paginateHistory(history []engine.MoveHistoryEntry, opts HistoryOptions) *HistoryResponse {
	total := len(history)

	if opts.Page < 1 {
		opts.Page = 1
	}
	if opts.Limit <= 0 {
		opts.Limit = 20
	}
	if opts.Limit > 100 {
		opts.Limit = 100
	}
	if opts.Order != "asc" {
		opts.Order = "desc"
	}

	totalPages := (total + opts.Limit - 1) / opts.Limit
	if totalPages == 0 {
		totalPages = 1
	}

	start := (opts.Page - 1) * opts.Limit
	end := start + opts.Limit
	if end > total {
		end = total
	}

	moves := []engine.MoveHistoryEntry{}
	if start < total {
		if opts.Order == "desc" {
			for i := total - 1 - start; i >= total-end; i-- {
				moves = append(moves, history[i])
			}
		} else {
			moves = append(moves, history[start:end]...)
		}
	}

	return &HistoryResponse{
		Moves:       moves,
		TotalMoves:  total,
		Page:        opts.Page,
		PageSize:    opts.Limit,
		TotalPages:  totalPages,
		HasNext:     opts.Page < totalPages,
		HasPrevious: opts.Page > 1,
	}
}
