// Package mcp exposes the Ludo race game to AI agents over the Model Context
// Protocol.
//
// The Client registers MCP tools and answers each call by proxying to the
// REST API, so agents and browsers see the same sessions.
//
// MCP Tools:
//   - create_session, get_session, list_sessions: session management
//   - game_state: token positions, dice and turn
//   - roll_die: roll for the active color
//   - move_token: move a token with the pending roll
//   - legal_moves: movable tokens for the pending or a hypothetical roll
//   - reset_game: start over
//   - move_history: paginated history
//   - list_configs, board_layout: rule sets and board geometry
//   - game_instructions: the rules in prose
//
// Transport Modes:
//   - Stdio: the mcp command serves GetMCPServer over stdin/stdout
//   - HTTP: the serve command answers JSON-RPC posts on /mcp
//
// Usage:
//
//	client := mcp.NewClient("http://localhost:8080")
//	server.ServeStdio(client.GetMCPServer())
package mcp
