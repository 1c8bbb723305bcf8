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

	"github.com/dustin/go-humanize"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/wricardo/mcp-training/fifteenpuzzle/game/engine"
	"github.com/wricardo/mcp-training/fifteenpuzzle/game/service"
)

// Client is a thin MCP client that proxies to the REST API
type Client struct {
	baseURL    string
	httpClient *http.Client
	mcpServer  *server.MCPServer
}

// NewClient creates a new MCP client that calls the REST API
func NewClient(baseURL string) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
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
		"15 Puzzle",
		"1.0.0",
		server.WithToolCapabilities(true),
		server.WithInstructions(`15 Puzzle - MCP Interface

This is a thin client that proxies all requests to the REST API server.

GAME OBJECTIVE:
Fifteen numbered tiles and one empty cell sit on a 4x4 board. Slide tiles into
the empty cell until the board reads 1..15 row by row with the empty cell last.

AVAILABLE TOOLS:
- create_session: Start a new shuffled puzzle
- list_sessions / get_session: Inspect sessions
- board_state: Show the board, phase and movable tiles
- move: Move the tile at (row, col) into the empty cell - requires intent explanation
- slide: Slide a tile up/down/left/right into the empty cell
- bulk_move: Several moves at once - requires intent explanation
- restart_game: Shuffle a new round once the puzzle is solved
- move_history: View past moves
- list_configs: List puzzle configurations
- list_records: Best and most recent solves
- game_instructions: Full rules and coordinate conventions
- describe_tile: Where a tile belongs and whether it can move

NOTE: The 'intent' parameter on move/bulk_move tools serves as rubber duck debugging - explain your reasoning!`),
	)

	c.registerTools()
}

func sessionIDProperty() map[string]interface{} {
	return map[string]interface{}{
		"type":        "string",
		"description": "Session ID",
	}
}

func coordinateProperty(axis string) map[string]interface{} {
	return map[string]interface{}{
		"type":        "integer",
		"minimum":     0,
		"maximum":     engine.Size - 1,
		"description": fmt.Sprintf("%s of the cell (0-based, 0 is the top/left)", axis),
	}
}

// registerTools registers all MCP tools
func (c *Client) registerTools() {
	// Session management
	c.mcpServer.AddTool(mcp.Tool{
		Name:        "create_session",
		Description: "Create a new shuffled puzzle session with optional config and seed",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"config_id": map[string]interface{}{
					"type":        "string",
					"description": "Config to use (optional, see list_configs)",
				},
				"seed": map[string]interface{}{
					"type":        "string",
					"description": "Shuffle seed (optional); the same seed gives the same board",
				},
			},
		},
	}, c.handleCreateSession)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "list_sessions",
		Description: "List all active puzzle sessions",
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

	// Game operations
	c.mcpServer.AddTool(mcp.Tool{
		Name:        "board_state",
		Description: "Get the current board, phase and movable tiles",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"session_id": sessionIDProperty(),
			},
			Required: []string{"session_id"},
		},
	}, c.handleBoardState)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "move",
		Description: "Move the tile at (row, col) into the empty cell. Only tiles next to the empty cell move.",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"session_id": sessionIDProperty(),
				"row":        coordinateProperty("Row"),
				"col":        coordinateProperty("Column"),
				"intent": map[string]interface{}{
					"type":        "string",
					"description": "Brief explanation of the intent behind this move (serves as a rubber duck to help explain your reasoning)",
				},
			},
			Required: []string{"session_id", "row", "col"},
		},
	}, c.handleMove)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "slide",
		Description: "Slide the tile that can travel in direction into the empty cell. 'up' moves the tile below the empty cell upward.",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"session_id": sessionIDProperty(),
				"direction": map[string]interface{}{
					"type":        "string",
					"enum":        []string{engine.DirectionUp, engine.DirectionDown, engine.DirectionLeft, engine.DirectionRight},
					"description": "Direction the tile travels",
				},
			},
			Required: []string{"session_id", "direction"},
		},
	}, c.handleSlide)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "bulk_move",
		Description: fmt.Sprintf("Execute up to %d moves in sequence; stops when the puzzle is solved", engine.MaxBulkMoves),
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"session_id": sessionIDProperty(),
				"moves": map[string]interface{}{
					"type": "array",
					"items": map[string]interface{}{
						"type": "object",
						"properties": map[string]interface{}{
							"row": coordinateProperty("Row"),
							"col": coordinateProperty("Column"),
						},
						"required": []string{"row", "col"},
					},
					"description": "Cells whose tiles should move, in order",
				},
				"intent": map[string]interface{}{
					"type":        "string",
					"description": "Brief explanation of the intent behind this sequence of moves (serves as a rubber duck to help explain your reasoning)",
				},
			},
			Required: []string{"session_id", "moves"},
		},
	}, c.handleBulkMove)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "restart_game",
		Description: "Shuffle a new round. Only available once the puzzle is solved.",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"session_id": sessionIDProperty(),
			},
			Required: []string{"session_id"},
		},
	}, c.handleRestart)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "move_history",
		Description: "Get paginated move history, most recent first",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"session_id": sessionIDProperty(),
				"page": map[string]interface{}{
					"type":        "integer",
					"description": "Page number (default 1)",
				},
				"limit": map[string]interface{}{
					"type":        "integer",
					"description": "Moves per page (default 20, max 100)",
				},
			},
			Required: []string{"session_id"},
		},
	}, c.handleMoveHistory)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "list_configs",
		Description: "List available puzzle configurations",
		InputSchema: mcp.ToolInputSchema{
			Type:       "object",
			Properties: map[string]interface{}{},
		},
	}, c.handleListConfigs)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "list_records",
		Description: "List solve records",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"session_id": map[string]interface{}{
					"type":        "string",
					"description": "Only records of this session (optional)",
				},
				"order_by": map[string]interface{}{
					"type":        "string",
					"enum":        []string{"recent", "moves", "duration"},
					"description": "recent (default), fewest moves, or fastest",
				},
				"limit": map[string]interface{}{
					"type":        "integer",
					"description": "Maximum records to return",
				},
			},
		},
	}, c.handleListRecords)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "game_instructions",
		Description: "Get the rules, coordinate conventions and strategy hints",
		InputSchema: mcp.ToolInputSchema{
			Type:       "object",
			Properties: map[string]interface{}{},
		},
	}, c.handleGameInstructions)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "describe_tile",
		Description: "Describe the tile at (row, col): its number, home cell, distance from home and whether it can move",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"session_id": sessionIDProperty(),
				"row":        coordinateProperty("Row"),
				"col":        coordinateProperty("Column"),
			},
			Required: []string{"session_id", "row", "col"},
		},
	}, c.handleDescribeTile)
}

// GetMCPServer returns the underlying MCP server for serving
func (c *Client) GetMCPServer() *server.MCPServer {
	return c.mcpServer
}

// Helper methods for API calls

func (c *Client) apiCall(ctx context.Context, method, path string, body interface{}, result interface{}) error {
	url := c.baseURL + path

	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reqBody = bytes.NewBuffer(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, reqBody)
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

// Argument helpers. JSON numbers arrive as float64.

func argsOf(request mcp.CallToolRequest) map[string]interface{} {
	args, _ := request.Params.Arguments.(map[string]interface{})
	if args == nil {
		return map[string]interface{}{}
	}
	return args
}

func intArg(args map[string]interface{}, key string) (int, bool) {
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

func positionArg(args map[string]interface{}) (engine.Position, error) {
	row, okRow := intArg(args, "row")
	col, okCol := intArg(args, "col")
	if !okRow || !okCol {
		return engine.Position{}, fmt.Errorf("row and col are required integers")
	}
	return engine.Position{Row: row, Col: col}, nil
}

func sessionPath(sessionID, suffix string) string {
	return "/api/sessions/" + url.PathEscape(sessionID) + suffix
}

// Tool handlers

func (c *Client) handleCreateSession(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := argsOf(request)
	configID, _ := args["config_id"].(string)
	seed, _ := args["seed"].(string)

	body := map[string]string{}
	if configID != "" {
		body["config_id"] = configID
	}
	if seed != "" {
		body["seed"] = seed
	}

	var session service.SessionInfo
	if err := c.apiCall(ctx, "POST", "/api/sessions", body, &session); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result := fmt.Sprintf("Created session: %s\nConfig: %s\n\n%s", session.ID, session.ConfigName, formatGameState(session.GameState))
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

	var result strings.Builder
	fmt.Fprintf(&result, "Active Sessions (%d):\n\n", response.Count)
	for _, s := range response.Sessions {
		fmt.Fprintf(&result, "- %s (Config: %s, Phase: %s, Created %s, Last used %s)\n",
			s.ID, s.ConfigName, s.Phase, humanize.Time(s.CreatedAt), humanize.Time(s.LastAccessedAt))
	}

	return mcp.NewToolResultText(result.String()), nil
}

func (c *Client) handleGetSession(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	sessionID, _ := argsOf(request)["session_id"].(string)

	var session service.SessionInfo
	if err := c.apiCall(ctx, "GET", sessionPath(sessionID, ""), nil, &session); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	return mcp.NewToolResultText(formatSessionInfo(&session)), nil
}

func (c *Client) handleBoardState(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	sessionID, _ := argsOf(request)["session_id"].(string)

	var state engine.GameState
	if err := c.apiCall(ctx, "GET", sessionPath(sessionID, "/state"), nil, &state); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	return mcp.NewToolResultText(formatGameState(&state)), nil
}

func (c *Client) handleMove(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := argsOf(request)
	sessionID, _ := args["session_id"].(string)

	// Intent parameter serves as rubber duck debugging - we don't need to process it further
	_, _ = args["intent"].(string)

	target, err := positionArg(args)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	var result service.MoveResult
	if err := c.apiCall(ctx, "POST", sessionPath(sessionID, "/move"), target, &result); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	return mcp.NewToolResultText(formatMoveResult(&result)), nil
}

func (c *Client) handleSlide(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := argsOf(request)
	sessionID, _ := args["session_id"].(string)
	direction, _ := args["direction"].(string)

	var result service.MoveResult
	body := map[string]string{"direction": direction}
	if err := c.apiCall(ctx, "POST", sessionPath(sessionID, "/slide"), body, &result); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	return mcp.NewToolResultText(formatMoveResult(&result)), nil
}

func (c *Client) handleBulkMove(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := argsOf(request)
	sessionID, _ := args["session_id"].(string)
	movesRaw, _ := args["moves"].([]interface{})

	// Intent parameter serves as rubber duck debugging - we don't need to process it further
	_, _ = args["intent"].(string)

	moves := make([]engine.Position, 0, len(movesRaw))
	for i, m := range movesRaw {
		obj, ok := m.(map[string]interface{})
		if !ok {
			return mcp.NewToolResultError(fmt.Sprintf("move %d must be an object with row and col", i+1)), nil
		}
		p, err := positionArg(obj)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("move %d: %v", i+1, err)), nil
		}
		moves = append(moves, p)
	}
	if len(moves) == 0 {
		return mcp.NewToolResultError("moves must not be empty"), nil
	}

	var result service.BulkMoveResult
	body := map[string]interface{}{"moves": moves}
	if err := c.apiCall(ctx, "POST", sessionPath(sessionID, "/bulk-move"), body, &result); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	return mcp.NewToolResultText(formatBulkMoveResult(sessionID, &result)), nil
}

func (c *Client) handleRestart(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	sessionID, _ := argsOf(request)["session_id"].(string)

	var response struct {
		Message string            `json:"message"`
		State   *engine.GameState `json:"state"`
	}

	if err := c.apiCall(ctx, "POST", sessionPath(sessionID, "/restart"), nil, &response); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result := fmt.Sprintf("%s\n\n%s", response.Message, formatGameState(response.State))
	return mcp.NewToolResultText(result), nil
}

func (c *Client) handleMoveHistory(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := argsOf(request)
	sessionID, _ := args["session_id"].(string)

	params := url.Values{}
	if page, ok := intArg(args, "page"); ok {
		params.Set("page", fmt.Sprint(page))
	}
	if limit, ok := intArg(args, "limit"); ok {
		params.Set("limit", fmt.Sprint(limit))
	}
	path := sessionPath(sessionID, "/history")
	if len(params) > 0 {
		path += "?" + params.Encode()
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

	var result strings.Builder
	result.WriteString("Available Configurations:\n\n")
	for _, config := range configs {
		fmt.Fprintf(&result, "• %s (%s)\n  %s\n  Shuffle: %s random slides\n\n",
			config.ConfigID, config.Format, config.Description, humanize.Comma(int64(config.ShuffleSteps)))
	}

	return mcp.NewToolResultText(result.String()), nil
}

func (c *Client) handleListRecords(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := argsOf(request)

	params := url.Values{}
	if sessionID, _ := args["session_id"].(string); sessionID != "" {
		params.Set("session", sessionID)
	}
	if orderBy, _ := args["order_by"].(string); orderBy != "" {
		params.Set("order_by", orderBy)
	}
	if limit, ok := intArg(args, "limit"); ok {
		params.Set("limit", fmt.Sprint(limit))
	}
	path := "/api/records"
	if len(params) > 0 {
		path += "?" + params.Encode()
	}

	var response struct {
		Count   int                    `json:"count"`
		Records []*service.SolveRecord `json:"records"`
	}
	if err := c.apiCall(ctx, "GET", path, nil, &response); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	return mcp.NewToolResultText(formatRecords(response.Records)), nil
}

func (c *Client) handleGameInstructions(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return mcp.NewToolResultText(instructions), nil
}

func (c *Client) handleDescribeTile(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := argsOf(request)
	sessionID, _ := args["session_id"].(string)

	target, err := positionArg(args)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	if !target.InBounds() {
		return mcp.NewToolResultError(fmt.Sprintf("Coordinates %s are out of bounds. The board is %dx%d (0-%d for both row and col)",
			target, engine.Size, engine.Size, engine.Size-1)), nil
	}

	var state engine.GameState
	if err := c.apiCall(ctx, "GET", sessionPath(sessionID, "/state"), nil, &state); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	return mcp.NewToolResultText(describeTile(&state, target)), nil
}

const instructions = `15 Puzzle - Complete Instructions

GAME OBJECTIVE:
Put the tiles back in order. The solved board reads:

  1  2  3  4
  5  6  7  8
  9 10 11 12
 13 14 15 __

COORDINATES:
- Cells are addressed (row, col), both 0-based. (0,0) is the top-left cell.
- The empty cell is shown as "__".

MOVEMENT COMMANDS:
- move(row, col): the tile at (row, col) slides into the empty cell. It must
  share an edge with the empty cell; anything else is rejected without
  changing the board.
- slide(direction): names the way the tile travels. "up" moves the tile
  below the empty cell upward, "left" moves the tile to the right of the
  empty cell leftward. At the edge of the board there is no such tile.
- bulk_move(moves): runs several moves in order and stops as soon as the
  puzzle is solved.

REJECTIONS ARE NOT ERRORS:
- not_adjacent: the tile is not next to the empty cell
- blank_cell: you named the empty cell itself
- edge: no tile can slide in that direction
- already_solved: the round is over; call restart_game
Coordinates outside 0-3 are errors and are not recorded.

LIFECYCLE:
- A session is shuffled by a seeded random walk of legal slides, so every
  board is solvable and the same seed always gives the same board.
- Once solved, moves are refused until restart_game shuffles a new round.
  Restart is refused while a round is still being played.

STRATEGY HINTS:
- Solve the top row, then the second row, then finish the last two rows
  column by column.
- board_state lists the movable tiles; describe_tile tells how far a tile is
  from home.

Good luck sliding!`
