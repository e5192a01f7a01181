package engine

import "fmt"

// Roll feeds a die value for color c into the turn controller. With no legal
// move the turn is forfeited; with a single legal move and AutoMoveSingle the
// move is applied at once; otherwise the game waits for Choose.
func (r *Rules) Roll(s *GameState, c Color, value int) (*TurnResult, error) {
	if err := checkColor(c); err != nil {
		return nil, err
	}
	if s.Finished() {
		return nil, ErrAlreadyWon
	}
	if c != s.Active {
		return nil, fmt.Errorf("%w: %s tried to roll during %s's turn", ErrTurnViolation, c, s.Active)
	}
	if s.Phase == PhaseAwaitingMoveChoice {
		return nil, ErrRollPending
	}
	if err := checkRoll(value); err != nil {
		return nil, err
	}

	msgs := r.config.Messages
	ns := s.Clone()
	ns.Dice = value
	legal := MovableTokens(ns.Tokens[c], value)

	events := []Event{{
		Type:    EventRolled,
		Color:   c,
		Dice:    value,
		Legal:   legal,
		Message: formatMessage(msgs.Rolled, DefaultRolledMessage, c, value),
	}}

	switch {
	case len(legal) == 0:
		ns.AddMoveToHistory(MoveHistoryEntry{Color: c, Dice: value, Token: -1, Forfeited: true})
		events = append(events, Event{
			Type:    EventForfeited,
			Color:   c,
			Dice:    value,
			Message: formatMessage(msgs.Forfeit, DefaultForfeitMessage, c, value),
		})
		ns.advanceTurn()
		events = append(events, r.turnChanged(ns))
		ns.Message = events[len(events)-2].Message
		return &TurnResult{State: ns, Events: events}, nil

	case len(legal) == 1 && r.config.AutoMoveSingle:
		ns.Phase = PhaseAwaitingMoveChoice
		ns.Legal = legal
		result, err := r.Choose(ns, c, legal[0])
		if err != nil {
			return nil, err
		}
		result.Events = append(events, result.Events...)
		return result, nil

	default:
		ns.Phase = PhaseAwaitingMoveChoice
		ns.Legal = legal
		ns.Message = formatMessage(msgs.ChooseToken, DefaultChooseTokenMessage, c, value)
		events = append(events, Event{
			Type:    EventAwaitingChoice,
			Color:   c,
			Dice:    value,
			Legal:   legal,
			Message: ns.Message,
		})
		return &TurnResult{State: ns, Events: events}, nil
	}
}

// Choose applies the chosen token for the pending roll and decides who plays
// next: nobody after a win, the same color after a 6, otherwise the next
// color in turn order.
func (r *Rules) Choose(s *GameState, c Color, token int) (*TurnResult, error) {
	if err := checkColor(c); err != nil {
		return nil, err
	}
	if s.Finished() {
		return nil, ErrAlreadyWon
	}
	if c != s.Active {
		return nil, fmt.Errorf("%w: %s tried to move during %s's turn", ErrTurnViolation, c, s.Active)
	}
	if s.Phase != PhaseAwaitingMoveChoice || s.Dice == 0 {
		return nil, ErrNoRollPending
	}
	if !containsInt(s.Legal, token) {
		return nil, fmt.Errorf("%w: token %d is not among the legal moves %v", ErrInvalidMove, token, s.Legal)
	}

	move, err := r.ApplyMove(s, c, token, s.Dice)
	if err != nil {
		return nil, err
	}

	msgs := r.config.Messages
	ns := move.State
	events := []Event{{
		Type:    EventMoved,
		Color:   c,
		Token:   token,
		Dice:    move.Dice,
		From:    move.From,
		To:      move.To,
		Cell:    move.Cell,
		Message: formatMessage(msgs.Moved, DefaultMovedMessage, c, token, move.Cell),
	}}

	for _, ref := range move.Captured {
		events = append(events, Event{
			Type:    EventCaptured,
			Color:   ref.Color,
			Token:   ref.Token,
			Cell:    move.Cell,
			Message: formatMessage(msgs.Captured, DefaultCapturedMessage, c, ref.Color, ref.Token),
		})
	}

	entry := MoveHistoryEntry{
		Color:    c,
		Dice:     move.Dice,
		Token:    token,
		From:     move.From,
		To:       move.To,
		Cell:     move.Cell,
		Captured: move.Captured,
	}

	switch {
	case move.Won:
		entry.Won = true
		events = append(events, Event{
			Type:    EventWon,
			Color:   c,
			Message: formatMessage(msgs.Victory, DefaultVictoryMessage, c),
		})

	case move.Dice == EntryRoll:
		entry.ExtraTurn = true
		events = append(events, Event{
			Type:    EventExtraTurn,
			Color:   c,
			Message: formatMessage(msgs.ExtraTurn, DefaultExtraTurnMessage, c),
		})

	default:
		ns.advanceTurn()
		events = append(events, r.turnChanged(ns))
	}

	ns.Message = events[len(events)-1].Message
	ns.AddMoveToHistory(entry)
	return &TurnResult{State: ns, Events: events, Move: move}, nil
}

func (r *Rules) turnChanged(s *GameState) Event {
	return Event{
		Type:    EventTurnChanged,
		Color:   s.Active,
		Message: formatMessage(r.config.Messages.TurnChanged, DefaultTurnChangedMessage, s.Active),
	}
}
