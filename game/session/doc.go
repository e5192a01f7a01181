// Package session provides session management for the Ludo race game.
//
// The session package implements:
//   - Thread-safe in-memory session storage and retrieval
//   - Unique session ID generation
//   - Expiry of idle sessions
//
// Core Types:
//
// Manager is the session registry. Each service.Session it creates owns an
// independent engine with its own die, so games never share state.
//
// Session Identifiers:
//
// Sessions use 4-character hex IDs for easy reference. Lookups are
// case-insensitive.
//
// Usage:
//
//	manager := session.NewManager()
//	sess, err := manager.Create("", engine.DefaultGameConfig())
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	// Drop games nobody touched for an hour
//	manager.StartCleanup(ctx, time.Minute, time.Hour)
//
// Sessions are not persisted; restarting the process ends every game.
package session
