package engine

import (
	"errors"
	"testing"

	"github.com/wricardo/ludo-race-game/game/dice"
)

func newScriptedEngine(t *testing.T, faces ...int) *GameEngine {
	t.Helper()
	seq, err := dice.NewSequence(faces...)
	if err != nil {
		t.Fatalf("NewSequence returned error: %v", err)
	}
	e, err := NewEngine(DefaultGameConfig(), seq)
	if err != nil {
		t.Fatalf("NewEngine returned error: %v", err)
	}
	return e
}

func TestNewEngine(t *testing.T) {
	e := NewEngineWithDefaults()

	if e.ActiveColor() != Red {
		t.Errorf("Expected red to start, got %s", e.ActiveColor())
	}
	if e.IsWon() {
		t.Error("Expected game not to be won initially")
	}
	if e.GetConfig().Name != "classic" {
		t.Errorf("Expected classic config, got %s", e.GetConfig().Name)
	}
	if e.GetLastMove() != nil {
		t.Error("Expected no last move")
	}
	for i := 0; i < 50; i++ {
		if v := e.RollDie(); v < MinDie || v > MaxDie {
			t.Fatalf("RollDie out of range: %d", v)
		}
	}
}

func TestNewEngineInvalidConfig(t *testing.T) {
	config := DefaultGameConfig()
	config.SafeCellOffset = 20
	if _, err := NewEngine(config, nil); err == nil {
		t.Error("Expected error for invalid safe cell offset")
	}
}

func TestNewEngineSeededDice(t *testing.T) {
	config := DefaultGameConfig()
	config.Seed = 99

	a, err := NewEngine(config, nil)
	if err != nil {
		t.Fatalf("NewEngine returned error: %v", err)
	}
	b, _ := NewEngine(config, nil)
	for i := 0; i < 20; i++ {
		if x, y := a.RollDie(), b.RollDie(); x != y {
			t.Fatalf("Seeded engines diverged at roll %d: %d vs %d", i, x, y)
		}
	}
}

func TestEngineRollAndMove(t *testing.T) {
	e := newScriptedEngine(t, 6, 4)

	result, err := e.Roll(Red)
	if err != nil {
		t.Fatalf("Roll returned error: %v", err)
	}
	if result.State.Phase != PhaseAwaitingMoveChoice {
		t.Fatalf("Expected to await a choice, got %s", result.State.Phase)
	}

	result, err = e.Move(Red, 1)
	if err != nil {
		t.Fatalf("Move returned error: %v", err)
	}
	if e.ActiveColor() != Red {
		t.Fatalf("Expected extra turn for red, got %s", e.ActiveColor())
	}

	// Single legal move plays automatically.
	result, err = e.Roll(Red)
	if err != nil {
		t.Fatalf("Roll returned error: %v", err)
	}
	state := e.GetState()
	if state.Tokens[Red][1] != 5 {
		t.Errorf("Expected token 1 at 5, got %d", state.Tokens[Red][1])
	}
	if state.Active != Green {
		t.Errorf("Expected green to play, got %s", state.Active)
	}
	if result.Move == nil || result.Move.Token != 1 {
		t.Errorf("Unexpected move %+v", result.Move)
	}

	last := e.GetLastMove()
	if last == nil || last.MoveNumber != 2 || last.Dice != 4 {
		t.Errorf("Unexpected last move %+v", last)
	}
	if len(e.GetMoveHistory()) != 2 {
		t.Errorf("Expected 2 history entries, got %d", len(e.GetMoveHistory()))
	}
}

func TestEngineRejectedRollKeepsDie(t *testing.T) {
	e := newScriptedEngine(t, 6, 2)

	if _, err := e.Roll(Green); !errors.Is(err, ErrTurnViolation) {
		t.Fatalf("Expected ErrTurnViolation, got %v", err)
	}
	result, err := e.Roll(Red)
	if err != nil {
		t.Fatalf("Roll returned error: %v", err)
	}
	if result.State.Dice != 6 {
		t.Errorf("Expected the first scripted face 6, got %d", result.State.Dice)
	}
	if _, err := e.Roll(Red); !errors.Is(err, ErrRollPending) {
		t.Errorf("Expected ErrRollPending, got %v", err)
	}
}

func TestEngineStateIsSnapshot(t *testing.T) {
	e := NewEngineWithDefaults()

	state := e.GetState()
	tokens := state.Tokens[Red]
	tokens[0] = 40
	state.Tokens[Red] = tokens
	state.Active = Blue

	fresh := e.GetState()
	if fresh.Tokens[Red][0] != 0 || fresh.Active != Red {
		t.Error("Mutating a snapshot changed the engine state")
	}
}

func TestEngineSetState(t *testing.T) {
	e := NewEngineWithDefaults()
	state := e.GetState()
	state.Tokens[Green] = Tokens{12, 0, 0, 57}
	state.Active = Green

	if err := e.SetState(state); err != nil {
		t.Fatalf("SetState returned error: %v", err)
	}
	if e.ActiveColor() != Green {
		t.Errorf("Expected green active, got %s", e.ActiveColor())
	}
	legal, err := e.LegalMoves(Green, 3)
	if err != nil {
		t.Fatalf("LegalMoves returned error: %v", err)
	}
	if len(legal) != 1 || legal[0] != 0 {
		t.Errorf("Expected [0], got %v", legal)
	}

	bad := e.GetState()
	bad.Tokens[Red] = Tokens{58, 0, 0, 0}
	if err := e.SetState(bad); err == nil {
		t.Error("Expected error for out-of-range position")
	}
	bad = e.GetState()
	bad.Active = Color("orange")
	if err := e.SetState(bad); !errors.Is(err, ErrInvalidColor) {
		t.Errorf("Expected ErrInvalidColor, got %v", err)
	}
	if err := e.SetState(nil); err == nil {
		t.Error("Expected error for nil state")
	}
}

func TestEngineWinAndReset(t *testing.T) {
	e := newScriptedEngine(t, 2, 5)
	state := e.GetState()
	state.Tokens[Red] = Tokens{57, 57, 55, 57}
	if err := e.SetState(state); err != nil {
		t.Fatalf("SetState returned error: %v", err)
	}

	if _, err := e.Roll(Red); err != nil {
		t.Fatalf("Roll returned error: %v", err)
	}
	if !e.IsWon() || e.Winner() != Red || !e.CheckWin(Red) {
		t.Fatalf("Expected red to win")
	}
	if _, err := e.Roll(Red); !errors.Is(err, ErrAlreadyWon) {
		t.Errorf("Expected ErrAlreadyWon, got %v", err)
	}
	if _, err := e.Move(Red, 0); !errors.Is(err, ErrAlreadyWon) {
		t.Errorf("Expected ErrAlreadyWon, got %v", err)
	}

	reset := e.Reset()
	if reset.Won || reset.Active != Red || reset.Tokens[Red] != (Tokens{}) {
		t.Errorf("Reset did not start a new game: %+v", reset)
	}
	if reset.TotalMoves != 1 || len(reset.MoveHistory) != 1 {
		t.Errorf("Expected cumulative history preserved, got %d", reset.TotalMoves)
	}
	if reset.CurrentMovesCount != 0 || len(reset.CurrentMoves) != 0 {
		t.Errorf("Expected current segment cleared, got %d", reset.CurrentMovesCount)
	}
}

func TestEngineImplementsInterface(t *testing.T) {
	var _ Engine = (*GameEngine)(nil)
}
