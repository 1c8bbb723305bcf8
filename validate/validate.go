// Command validate checks the puzzle configuration files in a directory
// (../configs by default, or the first argument). It checks:
//   - JSON or YAML structure and required fields
//   - shuffle_steps within the accepted range
//   - Required message keys and their format verbs
//   - Playability: a sample shuffle keeps the board a solvable permutation and
//     does not start solved unless shuffle_steps is zero
package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/wricardo/mcp-training/fifteenpuzzle/game/engine"
)

// sampleSeed drives the playability shuffle so reports are reproducible
const sampleSeed = "validate"

// ValidationResult captures the outcome of validating a single file.
// If Valid is true, Errors contains informational messages; otherwise it
// accumulates the validation errors that were found.
type ValidationResult struct {
	File   string
	Valid  bool
	Errors []string
}

func (r *ValidationResult) fail(format string, args ...interface{}) {
	r.Valid = false
	r.Errors = append(r.Errors, fmt.Sprintf(format, args...))
}

func (r *ValidationResult) info(format string, args ...interface{}) {
	r.Errors = append(r.Errors, "✓ "+fmt.Sprintf(format, args...))
}

// decode parses data as YAML for .yaml/.yml files and JSON otherwise
func decode(filePath string, data []byte, config *engine.GameConfig) error {
	switch strings.ToLower(filepath.Ext(filePath)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, config); err != nil {
			return fmt.Errorf("Invalid YAML: %v", err)
		}
	default:
		if err := json.Unmarshal(data, config); err != nil {
			return fmt.Errorf("Invalid JSON: %v", err)
		}
	}
	return nil
}

// validateConfig loads and validates a single configuration file, reporting
// every problem rather than stopping at the first
func validateConfig(filePath string) ValidationResult {
	result := ValidationResult{
		File:   filepath.Base(filePath),
		Valid:  true,
		Errors: []string{},
	}

	data, err := os.ReadFile(filePath)
	if err != nil {
		result.fail("Failed to read file: %v", err)
		return result
	}

	var config engine.GameConfig
	if err := decode(filePath, data, &config); err != nil {
		result.fail("%v", err)
		return result
	}

	if config.Name == "" {
		result.fail("name is required")
	}
	if config.Description == "" {
		result.fail("description is required")
	}
	if config.ShuffleSteps < engine.MinShuffleSteps || config.ShuffleSteps > engine.MaxShuffleSteps {
		result.fail("shuffle_steps must be between %d and %d, got %d",
			engine.MinShuffleSteps, engine.MaxShuffleSteps, config.ShuffleSteps)
	}

	// Validate messages
	required := map[string]string{
		"title":   config.Messages.Title,
		"start":   config.Messages.Start,
		"welcome": config.Messages.Welcome,
		"solved":  config.Messages.Solved,
		"restart": config.Messages.Restart,
	}
	for _, key := range []string{"title", "start", "welcome", "solved", "restart"} {
		if required[key] == "" {
			result.fail("Missing required message: %s", key)
		}
	}

	// Anything the engine rejects that the checks above did not name
	if result.Valid {
		if err := engine.ValidateGameConfig(&config); err != nil {
			result.fail("%s", strings.TrimPrefix(err.Error(), "config validation: "))
		}
	}

	if result.Valid {
		checkPlayability(&config, &result)
	}

	if result.Valid {
		result.info("Name: %s", config.Name)
		result.info("Shuffle steps: %d", config.ShuffleSteps)
		result.info("Title: %s", config.Messages.Title)
	}

	return result
}

// checkPlayability shuffles one sample board and confirms it can still be solved
func checkPlayability(config *engine.GameConfig, result *ValidationResult) {
	board := engine.ShuffledBoard(sampleSeed, 0, config.ShuffleSteps)

	if err := board.Validate(); err != nil {
		result.fail("Sample shuffle produced an invalid board: %v", err)
		return
	}
	if engine.Parity(board) != 0 {
		result.fail("Sample shuffle produced an unsolvable board")
		return
	}

	switch {
	case config.ShuffleSteps == 0:
		result.info("Playability: shuffle_steps is 0, sessions start solved")
	case board.IsSolved():
		result.fail("Sample shuffle of %d steps left the board solved", config.ShuffleSteps)
	default:
		result.info("Playability: sample board has %d tiles misplaced, displacement %d",
			engine.MisplacedTiles(board), engine.Displacement(board))
	}
}

// configFiles lists the JSON and YAML files in dir
func configFiles(dir string) ([]string, error) {
	var files []string
	for _, pattern := range []string{"*.json", "*.yaml", "*.yml"} {
		matches, err := filepath.Glob(filepath.Join(dir, pattern))
		if err != nil {
			return nil, err
		}
		files = append(files, matches...)
	}
	return files, nil
}

// main validates every config in the directory, printing a concise report and
// exiting with non-zero status if any are invalid.
func main() {
	configDir := "../configs"
	if len(os.Args) > 1 {
		configDir = os.Args[1]
	}

	files, err := configFiles(configDir)
	if err != nil {
		fmt.Printf("Error finding config files: %v\n", err)
		os.Exit(1)
	}
	if len(files) == 0 {
		fmt.Printf("No config files found in %s\n", configDir)
		os.Exit(1)
	}

	allValid := true
	for _, file := range files {
		result := validateConfig(file)

		fmt.Printf("\n%s %s\n", strings.Repeat("=", 20), result.File)

		if result.Valid {
			fmt.Println("✅ VALID")
			for _, info := range result.Errors {
				fmt.Println("  " + info)
			}
		} else {
			fmt.Println("❌ INVALID")
			allValid = false
			for _, err := range result.Errors {
				if !strings.HasPrefix(err, "✓") {
					fmt.Println("  ❌ " + err)
				}
			}
		}
	}

	fmt.Printf("\n%s\n", strings.Repeat("=", 40))
	if allValid {
		fmt.Println("✅ All configurations are valid!")
	} else {
		fmt.Println("❌ Some configurations have errors")
		os.Exit(1)
	}
}
