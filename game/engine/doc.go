// Package engine provides the core rules of the Ludo race game.
//
// The engine package implements the game mechanics including:
//   - Path construction over a shared 52-cell ring and private home stretches
//   - Legal move computation for a die roll
//   - Token movement, capture resolution and win detection
//   - Turn sequencing with extra turns on a 6 and forfeits
//   - Rule set loading and validation
//
// Core Types:
//
// Rules applies one rule set to an explicit GameState. Its operations never
// modify the state they are given; every result carries a new state, so
// independent games can share a single Rules value. GameEngine wraps Rules
// with one state and a die for callers that want a stateful game.
//
// Usage:
//
//	config, err := engine.LoadGameConfig("configs/classic.json")
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	game, err := engine.NewEngine(config, nil)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	result, err := game.Roll(engine.Red)
//	if errors.Is(err, engine.ErrTurnViolation) {
//		// not red's turn
//	}
//	for _, ev := range result.Events {
//		fmt.Println(ev.Message)
//	}
//
// Game Rules:
//
// Each color moves four tokens along its own 57-cell path: the shared ring
// rotated to the color's entry cell, then five home cells. A token leaves base
// only on a 6 and must land exactly on the last cell. Landing on an unsafe
// ring cell sends every opposing token there back to base. A 6 grants another
// roll. The first color with all four tokens home wins.
package engine
