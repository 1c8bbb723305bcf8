package engine

import (
	"fmt"
	"strings"
	"testing"
)

func createValidConfig() *GameConfig {
	return &GameConfig{
		Name:         "Test Config",
		Description:  "Test description",
		ShuffleSteps: 100,
		Messages: Messages{
			Title:   "15 Puzzle",
			Start:   "Start",
			Welcome: "Welcome!",
			Moved:   "Moves: %d",
			Solved:  "Solved!",
			Restart: "Reset",
		},
	}
}

func TestValidateGameConfig_ValidConfig(t *testing.T) {
	if err := ValidateGameConfig(createValidConfig()); err != nil {
		t.Errorf("Expected valid config, got %v", err)
	}
	if err := ValidateGameConfig(DefaultConfig()); err != nil {
		t.Errorf("Expected default config to be valid, got %v", err)
	}
}

func TestValidateGameConfig_Errors(t *testing.T) {
	tests := []struct {
		name     string
		mutate   func(*GameConfig)
		contains string
	}{
		{"missing name", func(c *GameConfig) { c.Name = "" }, "name is required"},
		{"missing description", func(c *GameConfig) { c.Description = "" }, "description is required"},
		{"negative steps", func(c *GameConfig) { c.ShuffleSteps = -1 }, "shuffle_steps"},
		{"too many steps", func(c *GameConfig) { c.ShuffleSteps = MaxShuffleSteps + 1 }, "shuffle_steps"},
		{"missing title", func(c *GameConfig) { c.Messages.Title = "" }, "messages.title"},
		{"missing start", func(c *GameConfig) { c.Messages.Start = "" }, "messages.start"},
		{"missing welcome", func(c *GameConfig) { c.Messages.Welcome = "" }, "messages.welcome"},
		{"missing solved", func(c *GameConfig) { c.Messages.Solved = "" }, "messages.solved"},
		{"missing restart", func(c *GameConfig) { c.Messages.Restart = "" }, "messages.restart"},
		{"moved without verb", func(c *GameConfig) { c.Messages.Moved = "Moved" }, "messages.moved"},
		{"moved with two verbs", func(c *GameConfig) { c.Messages.Moved = "%d/%d" }, "messages.moved"},
		{"moved with a string verb", func(c *GameConfig) { c.Messages.Moved = "Moves %d %s" }, "messages.moved"},
		{"moved with an escaped percent", func(c *GameConfig) { c.Messages.Moved = "%%d" }, "messages.moved"},
		{"moved with a width", func(c *GameConfig) { c.Messages.Moved = "Moves %3d" }, "messages.moved"},
		{"solved with verb", func(c *GameConfig) { c.Messages.Solved = "Solved in %d" }, "messages.solved"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := createValidConfig()
			tt.mutate(config)

			err := ValidateGameConfig(config)
			if err == nil {
				t.Fatal("Expected validation error")
			}
			if !strings.Contains(err.Error(), tt.contains) {
				t.Errorf("Expected error containing %q, got %v", tt.contains, err)
			}
		})
	}

	if err := ValidateGameConfig(nil); err == nil {
		t.Error("Expected error for nil config")
	}
}

func TestValidateGameConfig_Bounds(t *testing.T) {
	config := createValidConfig()

	config.ShuffleSteps = MinShuffleSteps
	if err := ValidateGameConfig(config); err != nil {
		t.Errorf("Expected %d steps to be valid, got %v", MinShuffleSteps, err)
	}

	config.ShuffleSteps = MaxShuffleSteps
	if err := ValidateGameConfig(config); err != nil {
		t.Errorf("Expected %d steps to be valid, got %v", MaxShuffleSteps, err)
	}
}

func TestInitGameStateFromConfig(t *testing.T) {
	config := createValidConfig()
	state := InitGameStateFromConfig(config)

	if state.Phase != PhaseShuffling {
		t.Errorf("Expected shuffling phase, got %s", state.Phase)
	}
	if state.ConfigName != config.Name {
		t.Errorf("Expected config name %q, got %q", config.Name, state.ConfigName)
	}
	if state.Tiles != NewBoard().Tiles() {
		t.Error("Expected identity tiles before the shuffle")
	}
	if state.MoveHistory == nil || state.CurrentMoves == nil {
		t.Error("Expected empty, non-nil histories")
	}

	if InitGameStateFromConfig(nil).ConfigName != "classic" {
		t.Error("Expected nil config to fall back to classic")
	}
}

func TestValidateGameConfig_MovedRenders(t *testing.T) {
	for _, moved := range []string{"Moves: %d", "%d", "手数: %d"} {
		config := createValidConfig()
		config.Messages.Moved = moved
		if err := ValidateGameConfig(config); err != nil {
			t.Errorf("Expected %q to be accepted, got %v", moved, err)
			continue
		}
		if out := fmt.Sprintf(moved, 7); strings.Contains(out, "%!") {
			t.Errorf("Accepted %q renders badly: %q", moved, out)
		}
	}
}
