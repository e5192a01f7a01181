package mcp

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/wricardo/ludo-race-game/game/engine"
	"github.com/wricardo/ludo-race-game/game/service"
)

// Version is reported to MCP clients.
const Version = "1.0.0"

// Client is a thin MCP client that proxies to the REST API
type Client struct {
	baseURL    string
	httpClient *http.Client
	mcpServer  *server.MCPServer
}

// NewClient creates a new MCP client that calls the REST API
func NewClient(baseURL string) *Client {
	c := &Client{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}

	c.initMCPServer()
	return c
}

// initMCPServer initializes the MCP server with all tools
func (c *Client) initMCPServer() {
	c.mcpServer = server.NewMCPServer(
		"Ludo Race Game",
		Version,
		server.WithToolCapabilities(true),
		server.WithInstructions(`Ludo Race Game - MCP Interface

This is a thin client that proxies all requests to the REST API server.

GAME OBJECTIVE:
Four colors (red, green, yellow, blue) race four tokens each around a shared
52-cell track and up a private home stretch. The first color with all four
tokens home wins.

TURN FLOW:
1. roll_die for the active color
2. If the roll leaves a choice, move_token with one of the legal tokens
3. A 6 grants another roll; otherwise play passes to the next color

AVAILABLE TOOLS:
- create_session / get_session / list_sessions: manage games
- game_state: current positions, dice and whose turn it is
- roll_die: roll for the active color
- move_token: move a token (0-3) with the pending roll
- legal_moves: list movable tokens, optionally for a hypothetical roll
- reset_game: start the session over
- move_history: past rolls and moves
- list_configs: available rule sets
- board_layout: each color's path and the safe cells
- game_instructions: full rules`),
	)

	c.registerTools()
}

func sessionIDProperty() map[string]interface{} {
	return map[string]interface{}{
		"type":        "string",
		"description": "Session ID",
	}
}

func colorProperty(description string) map[string]interface{} {
	return map[string]interface{}{
		"type":        "string",
		"enum":        []string{"red", "green", "yellow", "blue"},
		"description": description,
	}
}

// registerTools registers all MCP tools
func (c *Client) registerTools() {
	// Session management
	c.mcpServer.AddTool(mcp.Tool{
		Name:        "create_session",
		Description: "Create a new game session with optional rule set selection",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"config_id": map[string]interface{}{
					"type":        "string",
					"description": "Rule set to use, e.g. classic, entry_safe, manual_choice (optional)",
				},
			},
		},
	}, c.handleCreateSession)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "list_sessions",
		Description: "List all active game sessions",
		InputSchema: mcp.ToolInputSchema{
			Type:       "object",
			Properties: map[string]interface{}{},
		},
	}, c.handleListSessions)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "get_session",
		Description: "Get details of a specific session",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"session_id": sessionIDProperty(),
			},
			Required: []string{"session_id"},
		},
	}, c.handleGetSession)

	// Turn operations
	c.mcpServer.AddTool(mcp.Tool{
		Name:        "game_state",
		Description: "Get the current game state",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"session_id": sessionIDProperty(),
			},
			Required: []string{"session_id"},
		},
	}, c.handleGameState)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "roll_die",
		Description: "Roll the die for the active color. A single legal move may be played automatically.",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"session_id": sessionIDProperty(),
				"color":      colorProperty("Color rolling; must be the active color (optional, defaults to it)"),
			},
			Required: []string{"session_id"},
		},
	}, c.handleRoll)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "move_token",
		Description: "Move one of the active color's tokens by the pending roll",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"session_id": sessionIDProperty(),
				"token": map[string]interface{}{
					"type":        "integer",
					"minimum":     0,
					"maximum":     engine.TokensPerColor - 1,
					"description": "Token index (0-3); must be one of the legal moves",
				},
				"color": colorProperty("Color moving (optional, defaults to the active color)"),
			},
			Required: []string{"session_id", "token"},
		},
	}, c.handleMove)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "legal_moves",
		Description: "List the tokens a color can move with the pending roll or a given roll",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"session_id": sessionIDProperty(),
				"color":      colorProperty("Color to check (optional, defaults to the active color)"),
				"roll": map[string]interface{}{
					"type":        "integer",
					"minimum":     engine.MinDie,
					"maximum":     engine.MaxDie,
					"description": "Hypothetical roll (optional, defaults to the pending roll)",
				},
			},
			Required: []string{"session_id"},
		},
	}, c.handleLegalMoves)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "reset_game",
		Description: "Reset the game to initial state",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"session_id": sessionIDProperty(),
			},
			Required: []string{"session_id"},
		},
	}, c.handleReset)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "move_history",
		Description: "Get move history for a session",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"session_id": sessionIDProperty(),
				"page": map[string]interface{}{
					"type":        "integer",
					"description": "Page number",
				},
				"limit": map[string]interface{}{
					"type":        "integer",
					"description": "Items per page",
				},
				"order": map[string]interface{}{
					"type":        "string",
					"enum":        []string{"asc", "desc"},
					"description": "Oldest first (asc) or newest first (desc, default)",
				},
			},
			Required: []string{"session_id"},
		},
	}, c.handleMoveHistory)

	// Rules
	c.mcpServer.AddTool(mcp.Tool{
		Name:        "list_configs",
		Description: "List available rule sets",
		InputSchema: mcp.ToolInputSchema{
			Type:       "object",
			Properties: map[string]interface{}{},
		},
	}, c.handleListConfigs)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "board_layout",
		Description: "Get each color's path and the safe cells of a rule set",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"config_id": map[string]interface{}{
					"type":        "string",
					"description": "Rule set (optional, defaults to the server default)",
				},
			},
		},
	}, c.handleBoardLayout)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "game_instructions",
		Description: "Get comprehensive game instructions and rules",
		InputSchema: mcp.ToolInputSchema{
			Type:       "object",
			Properties: map[string]interface{}{},
		},
	}, c.handleGameInstructions)
}

// GetMCPServer returns the underlying MCP server for serving
func (c *Client) GetMCPServer() *server.MCPServer {
	return c.mcpServer
}

// Helper methods for API calls

func (c *Client) apiCall(ctx context.Context, method, path string, body interface{}, result interface{}) error {
	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reqBody = bytes.NewBuffer(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return err
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		var errResp map[string]string
		json.NewDecoder(resp.Body).Decode(&errResp)
		if msg, ok := errResp["error"]; ok {
			return fmt.Errorf("%s", msg)
		}
		return fmt.Errorf("API error: %d", resp.StatusCode)
	}

	if result != nil {
		return json.NewDecoder(resp.Body).Decode(result)
	}

	return nil
}

func arguments(request mcp.CallToolRequest) map[string]interface{} {
	args, _ := request.Params.Arguments.(map[string]interface{})
	return args
}

func sessionPath(args map[string]interface{}, suffix string) (string, error) {
	sessionID, _ := args["session_id"].(string)
	if sessionID == "" {
		return "", fmt.Errorf("session_id is required")
	}
	return "/api/sessions/" + url.PathEscape(sessionID) + suffix, nil
}

// intArg reads a JSON number argument. ok is false when it is absent.
func intArg(args map[string]interface{}, key string) (value int, ok bool) {
	switch v := args[key].(type) {
	case float64:
		return int(v), true
	case int:
		return v, true
	case json.Number:
		n, err := v.Int64()
		return int(n), err == nil
	}
	return 0, false
}

// Tool handlers

func (c *Client) handleCreateSession(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := arguments(request)
	configID, _ := args["config_id"].(string)

	body := map[string]string{}
	if configID != "" {
		body["config_id"] = configID
	}

	var session service.SessionInfo
	if err := c.apiCall(ctx, "POST", "/api/sessions", body, &session); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result := fmt.Sprintf("Created session: %s\nConfig: %s\n", session.ID, session.ConfigName)
	if session.GameState != nil {
		result += "\n" + formatGameState(session.GameState)
	}
	return mcp.NewToolResultText(result), nil
}

func (c *Client) handleListSessions(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var response struct {
		Count    int                   `json:"count"`
		Sessions []service.SessionInfo `json:"sessions"`
	}

	if err := c.apiCall(ctx, "GET", "/api/sessions", nil, &response); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Active Sessions (%d):\n\n", response.Count)
	for _, s := range response.Sessions {
		status := "in progress"
		if s.GameState != nil {
			if s.GameState.Won {
				status = fmt.Sprintf("won by %s", s.GameState.Winner)
			} else {
				status = fmt.Sprintf("%s to play", s.GameState.Active)
			}
		}
		fmt.Fprintf(&b, "- %s (Config: %s, Created: %s, %s)\n",
			s.ID, s.ConfigName, s.CreatedAt.Format("15:04:05"), status)
	}

	return mcp.NewToolResultText(b.String()), nil
}

func (c *Client) handleGetSession(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	path, err := sessionPath(arguments(request), "")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	var session service.SessionInfo
	if err := c.apiCall(ctx, "GET", path, nil, &session); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	return mcp.NewToolResultText(formatSessionInfo(&session)), nil
}

func (c *Client) handleGameState(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	path, err := sessionPath(arguments(request), "/state")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	var state engine.GameState
	if err := c.apiCall(ctx, "GET", path, nil, &state); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	return mcp.NewToolResultText(formatGameState(&state)), nil
}

func (c *Client) handleRoll(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := arguments(request)
	path, err := sessionPath(args, "/roll")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	body := map[string]interface{}{}
	if color, _ := args["color"].(string); color != "" {
		body["color"] = color
	}

	var result service.TurnResult
	if err := c.apiCall(ctx, "POST", path, body, &result); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	return mcp.NewToolResultText(formatTurnResult(&result)), nil
}

func (c *Client) handleMove(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := arguments(request)
	path, err := sessionPath(args, "/move")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	token, ok := intArg(args, "token")
	if !ok {
		return mcp.NewToolResultError("token is required"), nil
	}

	body := map[string]interface{}{"token": token}
	if color, _ := args["color"].(string); color != "" {
		body["color"] = color
	}

	var result service.TurnResult
	if err := c.apiCall(ctx, "POST", path, body, &result); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	return mcp.NewToolResultText(formatTurnResult(&result)), nil
}

func (c *Client) handleLegalMoves(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := arguments(request)
	path, err := sessionPath(args, "/legal-moves")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	query := url.Values{}
	if color, _ := args["color"].(string); color != "" {
		query.Set("color", color)
	}
	if roll, ok := intArg(args, "roll"); ok {
		query.Set("roll", fmt.Sprint(roll))
	}
	if len(query) > 0 {
		path += "?" + query.Encode()
	}

	var result service.LegalMovesResult
	if err := c.apiCall(ctx, "GET", path, nil, &result); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	return mcp.NewToolResultText(formatLegalMoves(&result)), nil
}

func (c *Client) handleReset(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	path, err := sessionPath(arguments(request), "/reset")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	var result service.TurnResult
	if err := c.apiCall(ctx, "POST", path, nil, &result); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	return mcp.NewToolResultText(fmt.Sprintf("Game reset successfully\n\n%s", formatGameState(result.GameState))), nil
}

func (c *Client) handleMoveHistory(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := arguments(request)
	path, err := sessionPath(args, "/history")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	query := url.Values{}
	if page, ok := intArg(args, "page"); ok {
		query.Set("page", fmt.Sprint(page))
	}
	if limit, ok := intArg(args, "limit"); ok {
		query.Set("limit", fmt.Sprint(limit))
	}
	if order, _ := args["order"].(string); order != "" {
		query.Set("order", order)
	}
	if len(query) > 0 {
		path += "?" + query.Encode()
	}

	var history service.HistoryResponse
	if err := c.apiCall(ctx, "GET", path, nil, &history); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	return mcp.NewToolResultText(formatHistory(&history)), nil
}

func (c *Client) handleListConfigs(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var configs []service.ConfigInfo
	if err := c.apiCall(ctx, "GET", "/api/configs", nil, &configs); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	var b strings.Builder
	b.WriteString("Available Rule Sets:\n\n")
	for _, config := range configs {
		auto := "manual choice"
		if config.AutoMoveSingle {
			auto = "single moves play automatically"
		}
		fmt.Fprintf(&b, "• %s (config_id: %s)\n  %s\n  Safe cells: %s, %s\n\n",
			config.Name, config.ConfigID, config.Description, joinCells(config.SafeCells), auto)
	}

	return mcp.NewToolResultText(b.String()), nil
}

func (c *Client) handleBoardLayout(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	path := "/api/board"
	if configID, _ := arguments(request)["config_id"].(string); configID != "" {
		path += "?config=" + url.QueryEscape(configID)
	}

	var board service.BoardInfo
	if err := c.apiCall(ctx, "GET", path, nil, &board); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	return mcp.NewToolResultText(formatBoard(&board)), nil
}

func (c *Client) handleGameInstructions(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return mcp.NewToolResultText(instructions), nil
}

const instructions = `🎲 Ludo Race Game - Complete Instructions

GAME OBJECTIVE:
Be the first color to bring all four tokens from base to home.

PLAYERS AND TURN ORDER:
• Four colors play in fixed order: red, green, yellow, blue, then red again
• Every color has four tokens, numbered 0 to 3
• All tokens start in base (position 0)

THE BOARD:
• A shared ring of 52 cells, 13 per color: r1-r13, g1-g13, y1-y13, b1-b13
• Each color enters the ring on its own first cell (r1, g1, y1, b1)
• A token travels 52 ring cells from its entry, then 5 private home cells
  (rh1-rh5 for red), so positions run 1 to 57 and 57 is home

MOVING:
• Roll the die (1-6), then move one token by that amount
• A token in base can only leave with a 6, and it lands on the entry cell
• A token must land exactly on home (57); an overshooting roll cannot move it
• Tokens at home never move again
• If no token can move, the turn is forfeited and play passes on
• If exactly one token can move, the rule set may play it automatically

EXTRA TURNS:
• A 6 that moves a token grants the same color another roll

CAPTURES:
• Landing on a ring cell holding opposing tokens sends all of them back to base
• Safe cells (the ninth cell of each arc in the classic rules) never capture
• Your own tokens may share a cell
• Home stretch cells are private and never capture

VICTORY CONDITIONS:
• The first color with all four tokens on position 57 wins
• A finished game accepts no more rolls or moves until it is reset

TOOL FLOW:
1. create_session (optionally with a config_id from list_configs)
2. roll_die for the active color
3. If the result says a choice is pending, call legal_moves, then move_token
4. Repeat until someone wins

Good luck racing home!`

// Formatting helpers

var paths = engine.BuildPaths()

// positionLabel names where a token at pos sits on c's path.
func positionLabel(c engine.Color, pos int) string {
	switch {
	case pos == engine.BasePosition:
		return "base"
	case pos == engine.HomePosition:
		return "HOME"
	case pos > engine.BasePosition && pos < engine.HomePosition:
		if path, ok := paths[c]; ok {
			return fmt.Sprintf("%s (%d)", path[pos-1], pos)
		}
	}
	return fmt.Sprintf("?%d", pos)
}

func joinCells(cells []engine.Cell) string {
	names := make([]string, len(cells))
	for i, cell := range cells {
		names[i] = string(cell)
	}
	return strings.Join(names, ", ")
}

func joinInts(values []int) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = fmt.Sprint(v)
	}
	return strings.Join(parts, ", ")
}

func formatSessionInfo(session *service.SessionInfo) string {
	return fmt.Sprintf("Session: %s\nConfig: %s\nCreated: %s\n\n%s",
		session.ID, session.ConfigName,
		session.CreatedAt.Format("2006-01-02 15:04:05"),
		formatGameState(session.GameState))
}

func formatGameState(state *engine.GameState) string {
	if state == nil {
		return "No game state available"
	}

	var b strings.Builder

	switch {
	case state.Won:
		fmt.Fprintf(&b, "🏆 %s WINS!\n", engine.DisplayName(state.Winner))
	case state.Phase == engine.PhaseAwaitingMoveChoice:
		fmt.Fprintf(&b, "Turn: %s | Rolled: %d | Choose a token: %s\n",
			state.Active, state.Dice, joinInts(state.Legal))
	default:
		fmt.Fprintf(&b, "Turn: %s | Waiting for a roll\n", state.Active)
	}
	fmt.Fprintf(&b, "Moves: %d\n\n", state.TotalMoves)

	for _, c := range engine.TurnOrder {
		tokens, ok := state.Tokens[c]
		if !ok {
			continue
		}
		marker := " "
		if c == state.Active && !state.Won {
			marker = ">"
		}
		labels := make([]string, len(tokens))
		for i, pos := range tokens {
			labels[i] = fmt.Sprintf("%d: %s", i, positionLabel(c, pos))
		}
		fmt.Fprintf(&b, "%s %-6s home %d/4 | %s\n",
			marker, c, state.CountHome(c), strings.Join(labels, ", "))
	}

	if state.Message != "" {
		fmt.Fprintf(&b, "\nMessage: %s", state.Message)
	}

	return b.String()
}

func formatEvent(e engine.Event) string {
	switch e.Type {
	case engine.EventMoved:
		return fmt.Sprintf("%s token %d: %s → %s", e.Color, e.Token,
			positionLabel(e.Color, e.From), positionLabel(e.Color, e.To))
	case engine.EventCaptured:
		return fmt.Sprintf("💥 %s token %d captured on %s", e.Color, e.Token, e.Cell)
	}
	if e.Message != "" {
		return e.Message
	}
	return string(e.Type)
}

func formatTurnResult(result *service.TurnResult) string {
	var b strings.Builder
	for _, e := range result.Events {
		fmt.Fprintf(&b, "• %s\n", formatEvent(e))
	}
	if result.GameState != nil && result.GameState.Phase == engine.PhaseAwaitingMoveChoice {
		b.WriteString("\nA choice is pending: call move_token with one of the legal tokens.\n")
	}
	b.WriteString("\n")
	b.WriteString(formatGameState(result.GameState))
	return b.String()
}

func formatLegalMoves(result *service.LegalMovesResult) string {
	var b strings.Builder
	source := "hypothetical"
	if result.Pending {
		source = "pending"
	}
	fmt.Fprintf(&b, "Legal moves for %s with a %s roll of %d:\n", result.Color, source, result.Roll)
	if len(result.Moves) == 0 {
		b.WriteString("(none, the turn would be forfeited)\n")
		return b.String()
	}
	for _, m := range result.Moves {
		fmt.Fprintf(&b, "- token %d: %s → %s\n", m.Token,
			positionLabel(result.Color, m.From), positionLabel(result.Color, m.To))
	}
	return b.String()
}

func formatHistory(history *service.HistoryResponse) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Move History (Page %d/%d), Total: %d\n\n",
		history.Page, history.TotalPages, history.TotalMoves)

	for _, move := range history.Moves {
		fmt.Fprintf(&b, "%d. %s rolled %d: ", move.MoveNumber, move.Color, move.Dice)
		switch {
		case move.Forfeited:
			b.WriteString("no legal move, turn forfeited")
		default:
			fmt.Fprintf(&b, "token %d %s → %s", move.Token,
				positionLabel(move.Color, move.From), positionLabel(move.Color, move.To))
		}
		for _, ref := range move.Captured {
			fmt.Fprintf(&b, ", captured %s token %d", ref.Color, ref.Token)
		}
		if move.ExtraTurn {
			b.WriteString(", extra turn")
		}
		if move.Won {
			b.WriteString(", WON")
		}
		b.WriteString("\n")
	}

	return b.String()
}

func formatBoard(board *service.BoardInfo) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Board for %s\n\n", board.ConfigName)
	if board.Layout == nil {
		return b.String()
	}
	fmt.Fprintf(&b, "Safe cells: %s\n\n", joinCells(board.SafeCells))
	for _, c := range board.TurnOrder {
		path := board.Paths[c]
		fmt.Fprintf(&b, "%s enters at %s: %s\n", c, board.EntryCells[c], joinCells(path))
	}
	return b.String()
}
