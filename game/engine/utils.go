package engine

import "time"

// Clone returns a deep copy of the state.
func (gs *GameState) Clone() *GameState {
	if gs == nil {
		return nil
	}
	ns := *gs
	ns.Tokens = make(map[Color]Tokens, len(gs.Tokens))
	for c, tokens := range gs.Tokens {
		ns.Tokens[c] = tokens
	}
	if gs.Legal != nil {
		ns.Legal = append([]int(nil), gs.Legal...)
	}
	ns.MoveHistory = cloneHistory(gs.MoveHistory)
	ns.CurrentMoves = cloneHistory(gs.CurrentMoves)
	return &ns
}

func cloneHistory(entries []MoveHistoryEntry) []MoveHistoryEntry {
	if entries == nil {
		return nil
	}
	out := make([]MoveHistoryEntry, len(entries))
	for i, e := range entries {
		if e.Captured != nil {
			e.Captured = append([]TokenRef(nil), e.Captured...)
		}
		out[i] = e
	}
	return out
}

// Finished reports whether the game has a winner, either recorded or implied
// by a color having every token home.
func (gs *GameState) Finished() bool {
	if gs.Won {
		return true
	}
	for _, tokens := range gs.Tokens {
		if allHome(tokens) {
			return true
		}
	}
	return false
}

// CountHome returns how many of c's tokens reached home.
func (gs *GameState) CountHome(c Color) int {
	count := 0
	for _, pos := range gs.Tokens[c] {
		if pos == HomePosition {
			count++
		}
	}
	return count
}

// CountInBase returns how many of c's tokens have not entered the board.
func (gs *GameState) CountInBase(c Color) int {
	count := 0
	for _, pos := range gs.Tokens[c] {
		if pos == BasePosition {
			count++
		}
	}
	return count
}

// AddMoveToHistory appends entry to both the cumulative and current-segment
// histories, numbering it.
func (gs *GameState) AddMoveToHistory(entry MoveHistoryEntry) {
	entry.Timestamp = time.Now().Unix()
	entry.MoveNumber = gs.TotalMoves + 1

	gs.MoveHistory = append(gs.MoveHistory, entry)
	gs.TotalMoves++

	gs.CurrentMoves = append(gs.CurrentMoves, entry)
	gs.CurrentMovesCount++
}

// advanceTurn hands the die to the next color.
func (gs *GameState) advanceTurn() {
	gs.Active = gs.Active.Next()
	gs.Dice = 0
	gs.Legal = nil
	gs.Phase = PhaseAwaitingRoll
}

func containsInt(values []int, v int) bool {
	for _, x := range values {
		if x == v {
			return true
		}
	}
	return false
}
