package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const validJSON = `{
	"name": "test",
	"description": "Test configuration",
	"shuffle_steps": 40,
	"messages": {
		"title": "15 Puzzle",
		"start": "Start",
		"welcome": "Welcome!",
		"moved": "Moves: %d",
		"solved": "Solved!",
		"restart": "Reset"
	}
}`

const validYAML = `name: test
description: Test configuration
shuffle_steps: 0
messages:
  title: 15 Puzzle
  start: Start
  welcome: Welcome!
  solved: Solved!
  restart: Reset
`

func writeConfig(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}
	return path
}

func hasMessage(result ValidationResult, substr string) bool {
	for _, msg := range result.Errors {
		if strings.Contains(msg, substr) {
			return true
		}
	}
	return false
}

func TestValidateConfig_ValidJSON(t *testing.T) {
	result := validateConfig(writeConfig(t, "test.json", validJSON))
	if !result.Valid {
		t.Fatalf("Expected valid config, but got errors: %v", result.Errors)
	}
	if result.File != "test.json" {
		t.Errorf("Expected file name test.json, got %s", result.File)
	}
	if !hasMessage(result, "Playability: sample board") {
		t.Errorf("Expected playability info, got %v", result.Errors)
	}
}

func TestValidateConfig_ValidYAMLZeroSteps(t *testing.T) {
	result := validateConfig(writeConfig(t, "test.yaml", validYAML))
	if !result.Valid {
		t.Fatalf("Expected valid config, but got errors: %v", result.Errors)
	}
	if !hasMessage(result, "sessions start solved") {
		t.Errorf("Expected zero-step note, got %v", result.Errors)
	}
}

func TestValidateConfig_Invalid(t *testing.T) {
	tests := []struct {
		name     string
		file     string
		body     string
		expected []string
	}{
		{
			name:     "broken JSON",
			file:     "bad.json",
			body:     `{"name": "test",`,
			expected: []string{"Invalid JSON"},
		},
		{
			name:     "broken YAML",
			file:     "bad.yaml",
			body:     "name: [unterminated",
			expected: []string{"Invalid YAML"},
		},
		{
			name: "missing fields",
			file: "empty.json",
			body: `{"shuffle_steps": 10}`,
			expected: []string{
				"name is required",
				"description is required",
				"Missing required message: title",
				"Missing required message: restart",
			},
		},
		{
			name:     "too many steps",
			file:     "steps.json",
			body:     strings.Replace(validJSON, `"shuffle_steps": 40`, `"shuffle_steps": 100001`, 1),
			expected: []string{"shuffle_steps must be between 0 and 100000"},
		},
		{
			name:     "negative steps",
			file:     "negative.json",
			body:     strings.Replace(validJSON, `"shuffle_steps": 40`, `"shuffle_steps": -1`, 1),
			expected: []string{"shuffle_steps must be between"},
		},
		{
			name:     "bad moved format",
			file:     "format.json",
			body:     strings.Replace(validJSON, `"Moves: %d"`, `"Moves"`, 1),
			expected: []string{"messages.moved must contain exactly one %d"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := validateConfig(writeConfig(t, tt.file, tt.body))
			if result.Valid {
				t.Fatal("Expected invalid config")
			}
			for _, want := range tt.expected {
				if !hasMessage(result, want) {
					t.Errorf("Expected error containing %q, got %v", want, result.Errors)
				}
			}
		})
	}
}

func TestValidateConfig_MissingFile(t *testing.T) {
	result := validateConfig(filepath.Join(t.TempDir(), "missing.json"))
	if result.Valid {
		t.Error("Expected invalid result for missing file")
	}
	if !hasMessage(result, "Failed to read file") {
		t.Errorf("Expected read error, got %v", result.Errors)
	}
}

func TestConfigFiles(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"a.json", "b.yaml", "c.yml", "notes.txt"} {
		os.WriteFile(filepath.Join(dir, name), []byte("{}"), 0644)
	}

	files, err := configFiles(dir)
	if err != nil {
		t.Fatalf("configFiles failed: %v", err)
	}
	if len(files) != 3 {
		t.Errorf("Expected 3 config files, got %v", files)
	}
}

func TestBundledConfigsAreValid(t *testing.T) {
	files, err := configFiles("../configs")
	if err != nil || len(files) == 0 {
		t.Skip("Skipping test - configs directory not found")
	}
	for _, file := range files {
		if result := validateConfig(file); !result.Valid {
			t.Errorf("%s: %v", result.File, result.Errors)
		}
	}
}
