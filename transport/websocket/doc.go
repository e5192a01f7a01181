// Package websocket pushes live game updates to spectators of a session.
//
// A central Hub owns all connections. Each connection runs a read pump,
// which only keeps the socket alive, and a write pump that delivers queued
// frames and pings.
//
// Message Protocol:
//
// Frames are JSON Message values, one per WebSocket text frame:
//   - snapshot: the session state, sent once on connect
//   - state_update: the state after a roll, move or reset, with the events
//     (rolled, moved, captured, extra_turn, forfeited, turn_changed, won,
//     reset) that produced it
//
// Clients pick a session with the session query parameter:
//
//	ws://localhost:8080/ws?session=ab12
//
// Usage:
//
//	hub := websocket.NewHub()
//	go hub.Run()
//	defer hub.Stop()
//
//	hub.ServeWS(w, r, sessionID, func() (*engine.GameState, error) {
//		return svc.GetGameState(ctx, sessionID)
//	})
//	hub.BroadcastToSession(sessionID, result.State, result.Events)
package websocket
