package engine

import "time"

// AddMoveToHistory adds a move attempt to the game's move history
func (gs *GameState) AddMoveToHistory(action string, outcome MoveOutcome) {
	entry := MoveHistoryEntry{
		Action:       action,
		Tile:         outcome.Tile,
		FromPosition: outcome.From,
		ToPosition:   outcome.To,
		Timestamp:    time.Now().Unix(),
		Success:      outcome.Moved,
		Reason:       outcome.Reason,
		MoveNumber:   gs.TotalMoves + 1,
	}
	// Append to cumulative history (never cleared by restart) and increment total
	gs.MoveHistory = append(gs.MoveHistory, entry)
	gs.TotalMoves++

	// Append to current segment history and increment its counter
	gs.CurrentMoves = append(gs.CurrentMoves, entry)
	gs.CurrentMovesCount++
}

// SuccessfulMoves counts the tiles actually slid in the current round
func (gs *GameState) SuccessfulMoves() int {
	count := 0
	for _, entry := range gs.CurrentMoves {
		if entry.Success {
			count++
		}
	}
	return count
}

// Elapsed returns how long the current round took, or has taken so far
func (gs *GameState) Elapsed(now time.Time) time.Duration {
	if gs.SolvedAt != nil {
		return gs.SolvedAt.Sub(gs.StartedAt)
	}
	return now.Sub(gs.StartedAt)
}

// Clone returns a deep copy that shares nothing with gs
func (gs *GameState) Clone() *GameState {
	if gs == nil {
		return nil
	}
	clone := *gs
	clone.MoveHistory = cloneEntries(gs.MoveHistory)
	clone.CurrentMoves = cloneEntries(gs.CurrentMoves)
	if gs.MovableTiles != nil {
		clone.MovableTiles = make([]Position, len(gs.MovableTiles))
		copy(clone.MovableTiles, gs.MovableTiles)
	}
	if gs.SolvedAt != nil {
		solvedAt := *gs.SolvedAt
		clone.SolvedAt = &solvedAt
	}
	return &clone
}

// cloneEntries keeps nil and empty distinct so JSON output is unchanged
func cloneEntries(entries []MoveHistoryEntry) []MoveHistoryEntry {
	if entries == nil {
		return nil
	}
	out := make([]MoveHistoryEntry, len(entries))
	copy(out, entries)
	return out
}
