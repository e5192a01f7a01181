// Package api provides the HTTP REST API for the Ludo race game.
//
// Endpoints:
//
// Session Management:
//   - POST /api/sessions - Create a session ({"config_id": "classic"})
//   - GET /api/sessions - List sessions (?sort=created|accessed&order=asc|desc&limit=N)
//   - GET /api/sessions/unified - Several sessions at once (?sessionIds=a,b or ?configName=x)
//   - GET /api/sessions/{id} - Get a session
//   - DELETE /api/sessions/{id} - Delete a session
//
// Turns:
//   - GET /api/sessions/{id}/state - Current game state
//   - POST /api/sessions/{id}/roll - Roll the die ({"color": "red"}, color optional)
//   - POST /api/sessions/{id}/move - Move a token for the pending roll ({"token": 0})
//   - GET /api/sessions/{id}/legal-moves - Movable tokens (?color=&roll=, roll defaults to the pending die)
//   - POST /api/sessions/{id}/reset - Start over
//   - GET /api/sessions/{id}/history - Move history (?page=&limit=&order=)
//
// Board and Rule Sets:
//   - GET /api/board - Paths and safe cells (?config=entry_safe)
//   - GET /api/configs - List rule sets
//   - POST /api/configs - Save a rule set
//   - GET /api/configs/{name} - Get a rule set
//
// Other:
//   - GET /health
//   - GET /ws?session={id} - WebSocket updates for spectators
//
// Roll, move and reset respond with a TurnResult carrying the new state and
// the events the turn produced, and push the same to WebSocket spectators.
//
// Error Handling:
//
// Errors are returned as JSON:
//
//	{"error": "not this color's turn: green tried to roll during red's turn", "code": "conflict"}
//
// Status codes: 400 for malformed input, unknown colors, dice values or
// invalid rule sets; 404 for unknown sessions or rule sets; 409 for turn
// violations, a pending or missing roll, and finished games; 422 for a token
// that cannot move.
package api
