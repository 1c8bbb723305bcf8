package service

import (
	"time"

	"github.com/wricardo/mcp-training/fifteenpuzzle/game/engine"
)

// Event types carried by GameEvent
const (
	EventMove     = "move"
	EventRejected = "rejected"
	EventSolved   = "solved"
	EventRestart  = "restart"
)

// Stop codes reported by BulkMoveResult
const (
	StopSolved      = "solved"
	StopNotPlaying  = "not_playing"
	StopInvalidMove = "invalid_coordinate"
)

// SessionInfo provides information about a game session
type SessionInfo struct {
	ID             string             `json:"id"`
	ConfigName     string             `json:"config_name"`
	Phase          string             `json:"phase"`
	CreatedAt      time.Time          `json:"created_at"`
	LastAccessedAt time.Time          `json:"last_accessed_at"`
	GameState      *engine.GameState  `json:"game_state"`
	GameConfig     *engine.GameConfig `json:"game_config"`
}

// MoveResult contains the result of a move operation
type MoveResult struct {
	Success   bool               `json:"success"`
	Reason    string             `json:"reason"`
	Message   string             `json:"message"`
	Outcome   engine.MoveOutcome `json:"outcome"`
	GameState *engine.GameState  `json:"game_state"`
	Events    []GameEvent        `json:"events,omitempty"`
}

// BulkMoveResult contains the result of multiple moves
type BulkMoveResult struct {
	RequestedMoves int  `json:"requested_moves"`
	Attempted      int  `json:"attempted"`
	MovesExecuted  int  `json:"moves_executed"`
	Success        bool `json:"success"` // every attempted target slid a tile
	Solved         bool `json:"solved"`
	Truncated      bool `json:"truncated,omitempty"`
	Limit          int  `json:"limit,omitempty"`

	StoppedReason  string `json:"stopped_reason,omitempty"`
	StopReasonCode string `json:"stop_reason_code,omitempty"` // solved|not_playing|invalid_coordinate
	StoppedOnMove  int    `json:"stopped_on_move,omitempty"`  // 1-based index of the target that caused the stop

	Outcomes  []engine.MoveOutcome `json:"outcomes"`
	Events    []GameEvent          `json:"events"`
	GameState *engine.GameState    `json:"game_state"`
	Message   string               `json:"message,omitempty"`
}

// GameEvent represents an event that occurred during gameplay
type GameEvent struct {
	Type      string           `json:"type"` // "move", "rejected", "solved", "restart"
	Message   string           `json:"message"`
	Timestamp time.Time        `json:"timestamp"`
	Tile      int              `json:"tile,omitempty"`
	Position  *engine.Position `json:"position,omitempty"`
}

// HistoryOptions configures move history retrieval
type HistoryOptions struct {
	Page        int    `json:"page"`
	Limit       int    `json:"limit"`
	Order       string `json:"order"` // "asc" or "desc"
	CurrentOnly bool   `json:"current_only"`
}

// HistoryResponse contains paginated move history
type HistoryResponse struct {
	Moves       []engine.MoveHistoryEntry `json:"moves"`
	TotalMoves  int                       `json:"total_moves"`
	Page        int                       `json:"page"`
	PageSize    int                       `json:"page_size"`
	TotalPages  int                       `json:"total_pages"`
	HasNext     bool                      `json:"has_next"`
	HasPrevious bool                      `json:"has_previous"`
}

// ConfigInfo provides information about a puzzle configuration
type ConfigInfo struct {
	Filename     string `json:"filename"`
	ConfigID     string `json:"config_id"` // The identifier to use for session creation
	Name         string `json:"name"`      // Display name
	Description  string `json:"description"`
	ShuffleSteps int    `json:"shuffle_steps"`
	Format       string `json:"format"` // json, yaml or memory
}

// SolveRecord describes one solved round
type SolveRecord struct {
	ID         string        `json:"id"`
	SessionID  string        `json:"session_id"`
	ConfigName string        `json:"config_name"`
	Seed       string        `json:"seed"`
	Round      int           `json:"round"`
	Moves      int           `json:"moves"`    // tiles slid
	Attempts   int           `json:"attempts"` // every recorded attempt, rejected ones included
	Duration   time.Duration `json:"duration_ns"`
	SolvedAt   time.Time     `json:"solved_at"`
}

// RecordQuery filters and orders solve records
type RecordQuery struct {
	SessionID  string `json:"session_id,omitempty"`
	ConfigName string `json:"config_name,omitempty"`
	OrderBy    string `json:"order_by,omitempty"` // "recent" (default), "moves" or "duration"
	Limit      int    `json:"limit,omitempty"`
}
