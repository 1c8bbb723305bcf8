package engine

import (
	"fmt"
	"time"
)

const (
	// Size is the edge length of the board
	Size = 4
	// BlankTile is the identifier of the empty cell
	BlankTile = Size*Size - 1

	// Validation constants
	DefaultShuffleSteps = 1000
	MinShuffleSteps     = 0
	MaxShuffleSteps     = 100000
	MaxBulkMoves        = 50
	WebSocketBufferSize = 256

	maxShuffleAttempts = 8
)

// Directions accepted by Slide. A direction names the way the tile travels.
const (
	DirectionUp    = "up"
	DirectionDown  = "down"
	DirectionLeft  = "left"
	DirectionRight = "right"
)

// Reason codes attached to move outcomes
const (
	ReasonMoved         = "moved"
	ReasonNotAdjacent   = "not_adjacent"
	ReasonBlankCell     = "blank_cell"
	ReasonEdge          = "edge"
	ReasonAlreadySolved = "already_solved"
)

// Position is a cell coordinate, row and col in [0, Size)
type Position struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// InBounds reports whether p lies on the board
func (p Position) InBounds() bool {
	return p.Row >= 0 && p.Row < Size && p.Col >= 0 && p.Col < Size
}

func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
}

// Messages holds the texts shown by shells and returned in game state
type Messages struct {
	Title         string `json:"title" yaml:"title"`
	Start         string `json:"start" yaml:"start"`
	Welcome       string `json:"welcome" yaml:"welcome"`
	Moved         string `json:"moved,omitempty" yaml:"moved,omitempty"`
	NotAdjacent   string `json:"not_adjacent,omitempty" yaml:"not_adjacent,omitempty"`
	Solved        string `json:"solved" yaml:"solved"`
	Restart       string `json:"restart" yaml:"restart"`
	AlreadySolved string `json:"already_solved,omitempty" yaml:"already_solved,omitempty"`
}

// GameConfig describes a puzzle variant loaded from JSON or YAML
type GameConfig struct {
	Name         string   `json:"name" yaml:"name"`
	Description  string   `json:"description" yaml:"description"`
	ShuffleSteps int      `json:"shuffle_steps" yaml:"shuffle_steps"`
	Messages     Messages `json:"messages" yaml:"messages"`
}

// GameState represents the complete game state of one session
type GameState struct {
	Tiles      [Size][Size]int `json:"tiles"`
	Blank      Position        `json:"blank"`
	Phase      Phase           `json:"phase"`
	Solved     bool            `json:"solved"`
	Message    string          `json:"message"`
	ConfigName string          `json:"config_name"`

	// Seed and Round identify the shuffle; ShuffledBoard(Seed, Round, ShuffleSteps)
	// reproduces the starting tiles.
	Seed         string `json:"seed"`
	Round        int    `json:"round"`
	ShuffleSteps int    `json:"shuffle_steps"`

	MoveHistory []MoveHistoryEntry `json:"move_history"`
	TotalMoves  int                `json:"total_moves"`

	// CurrentMoves tracks only the moves since the last restart. It mirrors MoveHistory entries
	// but gets cleared on restart while MoveHistory remains cumulative.
	CurrentMoves      []MoveHistoryEntry `json:"current_moves"`
	CurrentMovesCount int                `json:"current_moves_count"`

	StartedAt time.Time  `json:"started_at"`
	SolvedAt  *time.Time `json:"solved_at,omitempty"`

	// Computed helper views (not required for core game logic)
	MovableTiles []Position `json:"movable_tiles,omitempty"`
	Displacement int        `json:"displacement"`
}

// MoveHistoryEntry represents a single move attempt in the game history
type MoveHistoryEntry struct {
	Action       string   `json:"action"`
	Tile         int      `json:"tile"`
	FromPosition Position `json:"from_position"`
	ToPosition   Position `json:"to_position"`
	Timestamp    int64    `json:"timestamp"`
	Success      bool     `json:"success"`
	Reason       string   `json:"reason"`
	MoveNumber   int      `json:"move_number"`
}

// MoveOutcome reports what a single Move or Slide did
type MoveOutcome struct {
	Moved  bool     `json:"moved"`
	Tile   int      `json:"tile"`
	From   Position `json:"from"`
	To     Position `json:"to"`
	Reason string   `json:"reason"`
	// Message is the game message the attempt produced
	Message string `json:"message,omitempty"`
	// Solved is set on the move that completed the puzzle
	Solved bool `json:"solved"`
}
