package mcp

import (
	"fmt"
	"strings"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/wricardo/mcp-training/fifteenpuzzle/game/engine"
	"github.com/wricardo/mcp-training/fifteenpuzzle/game/service"
)

// Formatting helpers

func formatSessionInfo(session *service.SessionInfo) string {
	return fmt.Sprintf("Session: %s\nConfig: %s\nCreated: %s (%s)\n\n%s",
		session.ID, session.ConfigName,
		session.CreatedAt.Format("2006-01-02 15:04:05"), humanize.Time(session.CreatedAt),
		formatGameState(session.GameState))
}

// formatBoard renders tiles 1-based with the blank as "__"
func formatBoard(tiles [engine.Size][engine.Size]int) string {
	board, err := engine.BoardFromTiles(tiles)
	if err != nil {
		return fmt.Sprintf("(invalid board: %v)\n", err)
	}
	return board.String()
}

func formatGameState(state *engine.GameState) string {
	if state == nil {
		return "No game state available"
	}

	var result strings.Builder

	fmt.Fprintf(&result, "Phase: %s | Round: %d | Moves this round: %d | Total moves: %d | Displacement: %d\n\n",
		state.Phase, state.Round+1, state.CurrentMovesCount, state.TotalMoves, state.Displacement)

	result.WriteString(formatBoard(state.Tiles))

	fmt.Fprintf(&result, "\nEmpty cell: %s\n", state.Blank)
	if len(state.MovableTiles) > 0 {
		cells := make([]string, 0, len(state.MovableTiles))
		for _, p := range state.MovableTiles {
			tile := state.Tiles[p.Row][p.Col]
			cells = append(cells, fmt.Sprintf("%d at %s", tile+1, p))
		}
		fmt.Fprintf(&result, "Movable: %s\n", strings.Join(cells, ", "))
	}

	if state.Solved {
		result.WriteString("\n🎉 SOLVED!")
		if state.SolvedAt != nil {
			fmt.Fprintf(&result, " in %s", humanizeDuration(state.SolvedAt.Sub(state.StartedAt)))
		}
		result.WriteString(" Use restart_game for a new round.")
	}

	if state.Message != "" {
		fmt.Fprintf(&result, "\nMessage: %s", state.Message)
	}

	return result.String()
}

func formatMoveResult(result *service.MoveResult) string {
	var response strings.Builder
	o := result.Outcome
	if result.Success {
		fmt.Fprintf(&response, "✓ Tile %d moved %s→%s\n", o.Tile+1, o.From, o.To)
	} else {
		fmt.Fprintf(&response, "✗ Move rejected (%s)\n", result.Reason)
	}
	if result.Message != "" {
		fmt.Fprintf(&response, "%s\n", result.Message)
	}
	response.WriteString("\n")
	response.WriteString(formatGameState(result.GameState))
	return response.String()
}

func formatBulkMoveResult(sessionID string, result *service.BulkMoveResult) string {
	var response strings.Builder

	fmt.Fprintf(&response, "Session %s: executed %d of %d requested moves (%d attempted)\n",
		sessionID, result.MovesExecuted, result.RequestedMoves, result.Attempted)
	if result.Truncated {
		fmt.Fprintf(&response, "⚠ Request truncated to %d moves\n", result.Limit)
	}
	if result.StopReasonCode != "" {
		fmt.Fprintf(&response, "Stopped on move %d: %s", result.StoppedOnMove, result.StopReasonCode)
		if result.StoppedReason != "" {
			fmt.Fprintf(&response, " (%s)", result.StoppedReason)
		}
		response.WriteString("\n")
	}

	for i, o := range result.Outcomes {
		status := "✓"
		if !o.Moved {
			status = "✗ " + o.Reason
		}
		fmt.Fprintf(&response, "  %d. tile %d at %s %s\n", i+1, o.Tile+1, o.From, status)
	}

	response.WriteString("\n")
	response.WriteString(formatGameState(result.GameState))
	return response.String()
}

func formatHistory(history *service.HistoryResponse) string {
	var result strings.Builder
	fmt.Fprintf(&result, "Move History (page %d of %d, %d total moves):\n\n",
		history.Page, history.TotalPages, history.TotalMoves)

	for _, entry := range history.Moves {
		status := "✓"
		if !entry.Success {
			status = "✗ " + entry.Reason
		}
		fmt.Fprintf(&result, "#%d %s tile %d %s→%s %s (%s)\n",
			entry.MoveNumber, entry.Action, entry.Tile+1, entry.FromPosition, entry.ToPosition,
			status, humanize.Time(time.Unix(entry.Timestamp, 0)))
	}

	if history.HasNext {
		fmt.Fprintf(&result, "\nMore moves on page %d", history.Page+1)
	}
	return result.String()
}

func formatRecords(records []*service.SolveRecord) string {
	if len(records) == 0 {
		return "No solves recorded yet"
	}

	var result strings.Builder
	fmt.Fprintf(&result, "Solve Records (%d):\n\n", len(records))
	for i, r := range records {
		fmt.Fprintf(&result, "%d. session %s, %s round: %s moves in %s (%s attempts, config %s, %s)\n",
			i+1, r.SessionID, humanize.Ordinal(r.Round+1), humanize.Comma(int64(r.Moves)),
			humanizeDuration(r.Duration), humanize.Comma(int64(r.Attempts)), r.ConfigName, humanize.Time(r.SolvedAt))
	}
	return result.String()
}

// humanizeDuration rounds d to whole seconds for display
func humanizeDuration(d time.Duration) string {
	if d < time.Second {
		return d.Round(time.Millisecond).String()
	}
	return d.Round(time.Second).String()
}

// slideDirection returns the direction that moves the tile at target into blank
func slideDirection(blank, target engine.Position) string {
	for _, dir := range []string{engine.DirectionUp, engine.DirectionDown, engine.DirectionLeft, engine.DirectionRight} {
		if p, _ := engine.DirectionTarget(blank, dir); p == target {
			return dir
		}
	}
	return ""
}

func describeTile(state *engine.GameState, target engine.Position) string {
	tile := state.Tiles[target.Row][target.Col]
	if tile == engine.BlankTile {
		return fmt.Sprintf("Cell %s is the empty cell. Its home is %s.\nMovable neighbours: %d",
			target, engine.HomeOf(engine.BlankTile), len(state.MovableTiles))
	}

	home := engine.HomeOf(tile)
	var result strings.Builder
	fmt.Fprintf(&result, "Cell %s holds tile %d\n", target, tile+1)
	if home == target {
		result.WriteString("It is in its home cell\n")
	} else {
		fmt.Fprintf(&result, "Home cell: %s, %d steps away\n", home, engine.ManhattanDistance(target, home))
	}

	if state.Phase == engine.PhasePlaying && engine.IsAdjacent(target, state.Blank) {
		fmt.Fprintf(&result, "Can move: yes (move row=%d col=%d, or slide %s)", target.Row, target.Col, slideDirection(state.Blank, target))
	} else if state.Phase != engine.PhasePlaying {
		fmt.Fprintf(&result, "Can move: no (session is %s)", state.Phase)
	} else {
		fmt.Fprintf(&result, "Can move: no (%d steps from the empty cell at %s)",
			engine.ManhattanDistance(target, state.Blank), state.Blank)
	}
	return result.String()
}
