// Package service provides the business logic layer for the Ludo race game.
//
// The service package implements:
//   - Multi-session game management
//   - Configuration listing and loading
//   - Roll and move processing for the active color
//   - Legal move queries and board layout
//   - Move history pagination
//
// Core Interfaces:
//
// GameService is the main service interface providing high-level game operations.
// SessionManager handles session creation, retrieval, and lifecycle.
// ConfigManager manages game configuration loading and validation.
//
// Architecture:
//
// The service layer sits between the transport layer (HTTP/WebSocket/MCP) and
// the game engine. Each session owns its own engine, and every operation on a
// session holds that session's lock, so a roll and the move that follows it
// never interleave with another caller's request.
//
// Usage:
//
//	sessionMgr := session.NewManager()
//	configMgr, _ := config.NewManager("configs")
//	gameService := service.NewGameService(sessionMgr, configMgr)
//
//	info, err := gameService.CreateSession(ctx, "classic")
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	// Roll for the active color, then choose a token if asked to
//	result, err := gameService.Roll(ctx, info.ID, "")
//	if result.GameState.Phase == engine.PhaseAwaitingMoveChoice {
//		result, err = gameService.Move(ctx, info.ID, "", result.GameState.Legal[0])
//	}
package service
