package engine

import (
	"fmt"
	"strings"
)

// ValidateGameConfig validates a game configuration for correctness and playability
func ValidateGameConfig(config *GameConfig) error {
	if config == nil {
		return fmt.Errorf("config validation: config is nil")
	}

	// Validate required fields
	if config.Name == "" {
		return fmt.Errorf("config validation: name is required")
	}
	if config.Description == "" {
		return fmt.Errorf("config validation: description is required")
	}

	if config.ShuffleSteps < MinShuffleSteps || config.ShuffleSteps > MaxShuffleSteps {
		return fmt.Errorf("config validation: shuffle_steps must be between %d and %d, got %d",
			MinShuffleSteps, MaxShuffleSteps, config.ShuffleSteps)
	}

	// Validate messages
	if config.Messages.Title == "" {
		return fmt.Errorf("config validation: messages.title is required")
	}
	if config.Messages.Start == "" {
		return fmt.Errorf("config validation: messages.start is required")
	}
	if config.Messages.Welcome == "" {
		return fmt.Errorf("config validation: messages.welcome is required")
	}
	if config.Messages.Solved == "" {
		return fmt.Errorf("config validation: messages.solved is required")
	}
	if config.Messages.Restart == "" {
		return fmt.Errorf("config validation: messages.restart is required")
	}

	// Validate format strings
	// %d is the only verb allowed in messages.moved
	if moved := config.Messages.Moved; moved != "" &&
		(strings.Count(moved, "%d") != 1 || strings.Count(moved, "%") != 1) {
		return fmt.Errorf("config validation: messages.moved must contain exactly one %%d for the move count and no other %%")
	}
	for name, msg := range map[string]string{
		"solved":         config.Messages.Solved,
		"not_adjacent":   config.Messages.NotAdjacent,
		"already_solved": config.Messages.AlreadySolved,
	} {
		if strings.Contains(msg, "%") {
			return fmt.Errorf("config validation: messages.%s must not contain format verbs", name)
		}
	}

	return nil
}

// DefaultConfig returns the built-in classic puzzle: 1000 shuffle steps and the
// Japanese texts of the arcade version
func DefaultConfig() *GameConfig {
	return &GameConfig{
		Name:         "classic",
		Description:  "Classic 15 puzzle shuffled by 1000 random slides",
		ShuffleSteps: DefaultShuffleSteps,
		Messages: Messages{
			Title:         "15パズル",
			Start:         "スタート",
			Welcome:       "Slide the tiles back into order",
			Moved:         "Moves: %d",
			NotAdjacent:   "That tile is not next to the empty cell",
			Solved:        "クリア!!!",
			Restart:       "リセット",
			AlreadySolved: "Puzzle already solved. Restart to play again",
		},
	}
}

// InitGameStateFromConfig creates an empty game state for config. The engine
// fills in the tiles when it shuffles.
func InitGameStateFromConfig(config *GameConfig) *GameState {
	if config == nil {
		config = DefaultConfig()
	}

	return &GameState{
		Tiles:             NewBoard().Tiles(),
		Blank:             NewBoard().Blank(),
		Phase:             PhaseShuffling,
		Message:           config.Messages.Welcome,
		ConfigName:        config.Name,
		ShuffleSteps:      config.ShuffleSteps,
		MoveHistory:       []MoveHistoryEntry{},
		TotalMoves:        0,
		CurrentMoves:      []MoveHistoryEntry{},
		CurrentMovesCount: 0,
	}
}
