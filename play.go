package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	log "github.com/sirupsen/logrus"

	"github.com/wricardo/ludo-race-game/game/dice"
	"github.com/wricardo/ludo-race-game/game/engine"
)

const playHelp = `Commands:
  <enter>, r, roll   roll the die for the active color
  0-3                move that token with the pending roll
  b, board           show every token
  h, help            show this help
  q, quit            leave the game`

// terminalGame runs a hot-seat game on a single engine.
type terminalGame struct {
	engine *engine.GameEngine
}

func newTerminalGame(cfg *engine.GameConfig, seed int64) (*terminalGame, error) {
	var roller dice.Roller
	if seed != 0 {
		roller = dice.NewRandom(seed)
	}
	return newTerminalGameWithRoller(cfg, roller)
}

func newTerminalGameWithRoller(cfg *engine.GameConfig, roller dice.Roller) (*terminalGame, error) {
	if cfg == nil {
		cfg = engine.DefaultGameConfig()
	}
	eng, err := engine.NewEngine(cfg, roller)
	if err != nil {
		return nil, err
	}
	return &terminalGame{engine: eng}, nil
}

// Play reads commands from in until the game is won, the input ends or the
// player quits.
func (g *terminalGame) Play(ctx context.Context, in io.Reader, out io.Writer) error {
	state := g.engine.GetState()
	fmt.Fprintln(out, state.Message)
	fmt.Fprintln(out, playHelp)

	scanner := bufio.NewScanner(in)
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		if g.engine.IsWon() {
			fmt.Fprintf(out, "Game over: %s wins after %d moves\n",
				engine.DisplayName(g.engine.Winner()), g.engine.GetState().TotalMoves)
			return nil
		}

		fmt.Fprint(out, g.prompt())
		if !scanner.Scan() {
			fmt.Fprintln(out)
			return scanner.Err()
		}

		quit := g.handle(strings.TrimSpace(strings.ToLower(scanner.Text())), out)
		if quit {
			return nil
		}
	}
}

func (g *terminalGame) prompt() string {
	state := g.engine.GetState()
	if state.Phase == engine.PhaseAwaitingMoveChoice {
		return fmt.Sprintf("%s [rolled %d, tokens %s]> ", state.Active, state.Dice, joinInts(state.Legal))
	}
	return fmt.Sprintf("%s> ", state.Active)
}

// handle runs one command and reports whether the player quit.
func (g *terminalGame) handle(line string, out io.Writer) bool {
	active := g.engine.ActiveColor()

	switch line {
	case "q", "quit", "exit":
		return true
	case "h", "help", "?":
		fmt.Fprintln(out, playHelp)
		return false
	case "b", "board":
		printTokens(out, g.engine.GetBoard(), g.engine.GetState())
		return false
	case "", "r", "roll":
		result, err := g.engine.Roll(active)
		g.report(out, result, err)
		return false
	}

	token, err := strconv.Atoi(line)
	if err != nil {
		fmt.Fprintf(out, "unknown command %q, type h for help\n", line)
		return false
	}
	result, err := g.engine.Move(active, token)
	g.report(out, result, err)
	return false
}

func (g *terminalGame) report(out io.Writer, result *engine.TurnResult, err error) {
	if err != nil {
		log.WithError(err).Debug("turn rejected")
		fmt.Fprintf(out, "error: %v\n", err)
		return
	}
	for _, ev := range result.Events {
		fmt.Fprintf(out, "  %s\n", ev.Message)
	}
}

func printTokens(out io.Writer, board *engine.Board, state *engine.GameState) {
	for _, c := range engine.TurnOrder {
		labels := make([]string, 0, engine.TokensPerColor)
		for i, pos := range state.Tokens[c] {
			labels = append(labels, fmt.Sprintf("%d:%s", i, positionLabel(board, c, pos)))
		}
		marker := " "
		if c == state.Active {
			marker = ">"
		}
		fmt.Fprintf(out, "%s %-6s home %d/%d  %s\n", marker, c, state.CountHome(c), engine.TokensPerColor, strings.Join(labels, " "))
	}
}

func positionLabel(board *engine.Board, c engine.Color, pos int) string {
	switch pos {
	case engine.BasePosition:
		return "base"
	case engine.HomePosition:
		return "HOME"
	}
	if cell, ok := board.CellAt(c, pos); ok {
		return string(cell)
	}
	return strconv.Itoa(pos)
}

func joinInts(values []int) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = strconv.Itoa(v)
	}
	return strings.Join(parts, ",")
}
