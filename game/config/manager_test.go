package config

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"gopkg.in/yaml.v3"

	"github.com/wricardo/mcp-training/fifteenpuzzle/game/engine"
)

func createValidConfig() *engine.GameConfig {
	return &engine.GameConfig{
		Name:         "Test Config",
		Description:  "Test configuration",
		ShuffleSteps: 40,
		Messages: engine.Messages{
			Title:   "15 Puzzle",
			Start:   "Start",
			Welcome: "Welcome!",
			Solved:  "Solved!",
			Restart: "Reset",
		},
	}
}

func writeConfigFile(t *testing.T, dir, name string, config *engine.GameConfig) {
	t.Helper()

	filename := name
	if filepath.Ext(filename) == "" {
		filename = name + ".json"
	}

	var (
		data []byte
		err  error
	)
	switch filepath.Ext(filename) {
	case ".yaml", ".yml":
		data, err = yaml.Marshal(config)
	default:
		data, err = json.MarshalIndent(config, "", "  ")
	}
	if err != nil {
		t.Fatalf("Failed to marshal config: %v", err)
	}

	if err := os.WriteFile(filepath.Join(dir, filename), data, 0644); err != nil {
		t.Fatalf("Failed to write config file: %v", err)
	}
}

func TestNewManager(t *testing.T) {
	t.Run("valid directory", func(t *testing.T) {
		dir := t.TempDir()
		classic := createValidConfig()
		classic.Name = "Classic"
		writeConfigFile(t, dir, "classic", classic)

		manager, err := NewManager(dir)
		if err != nil {
			t.Fatalf("Failed to create manager: %v", err)
		}
		if manager.GetDefault().Name != "Classic" {
			t.Errorf("Expected classic as default, got %q", manager.GetDefault().Name)
		}
	})

	t.Run("non-existent directory", func(t *testing.T) {
		if _, err := NewManager("/non/existent/path"); err == nil {
			t.Error("Expected error for non-existent directory")
		}
	})

	t.Run("first available config", func(t *testing.T) {
		dir := t.TempDir()
		other := createValidConfig()
		other.Name = "Beta"
		writeConfigFile(t, dir, "beta", other)
		first := createValidConfig()
		first.Name = "Alpha"
		writeConfigFile(t, dir, "alpha.yaml", first)

		manager, err := NewManager(dir)
		if err != nil {
			t.Fatalf("Failed to create manager: %v", err)
		}
		if manager.GetDefault().Name != "Alpha" {
			t.Errorf("Expected alphabetically first config as default, got %q", manager.GetDefault().Name)
		}
	})

	t.Run("empty directory", func(t *testing.T) {
		manager, err := NewManager(t.TempDir())
		if err != nil {
			t.Fatalf("NewManager should succeed without config files, got %v", err)
		}
		if manager.GetDefault().Name != engine.DefaultConfig().Name {
			t.Errorf("Expected built-in default, got %q", manager.GetDefault().Name)
		}
	})
}

func TestManager_LoadConfig(t *testing.T) {
	dir := t.TempDir()

	jsonConfig := createValidConfig()
	jsonConfig.Name = "From JSON"
	writeConfigFile(t, dir, "json-variant", jsonConfig)

	yamlConfig := createValidConfig()
	yamlConfig.Name = "From YAML"
	yamlConfig.ShuffleSteps = 77
	writeConfigFile(t, dir, "yaml-variant.yaml", yamlConfig)

	ymlConfig := createValidConfig()
	ymlConfig.Name = "From YML"
	writeConfigFile(t, dir, "yml-variant.yml", ymlConfig)

	invalid := createValidConfig()
	invalid.Messages.Solved = ""
	writeConfigFile(t, dir, "invalid", invalid)

	os.WriteFile(filepath.Join(dir, "broken.yaml"), []byte("name: [unterminated"), 0644)

	manager, err := NewManager(dir)
	if err != nil {
		t.Fatalf("Failed to create manager: %v", err)
	}

	tests := []struct {
		name         string
		configName   string
		expectedName string
		expectedErr  error
	}{
		{"json without extension", "json-variant", "From JSON", nil},
		{"json with extension", "json-variant.json", "From JSON", nil},
		{"yaml without extension", "yaml-variant", "From YAML", nil},
		{"yaml with extension", "yaml-variant.yaml", "From YAML", nil},
		{"yml", "yml-variant", "From YML", nil},
		{"missing", "nope", "", ErrConfigNotFound},
		{"path traversal", "../etc/passwd", "", ErrConfigNotFound},
		{"invalid", "invalid", "", ErrInvalidConfig},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config, err := manager.LoadConfig(tt.configName)
			if tt.expectedErr != nil {
				if !errors.Is(err, tt.expectedErr) {
					t.Errorf("Expected %v, got %v", tt.expectedErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if config.Name != tt.expectedName {
				t.Errorf("Expected %q, got %q", tt.expectedName, config.Name)
			}
		})
	}

	if _, err := manager.LoadConfig("broken"); err == nil {
		t.Error("Expected parse error for broken YAML")
	}

	config, _ := manager.LoadConfig("yaml-variant")
	if config.ShuffleSteps != 77 {
		t.Errorf("Expected YAML shuffle_steps 77, got %d", config.ShuffleSteps)
	}
}

func TestManager_ListConfigs(t *testing.T) {
	dir := t.TempDir()
	writeConfigFile(t, dir, "zeta", createValidConfig())
	writeConfigFile(t, dir, "alpha.yaml", createValidConfig())
	invalid := createValidConfig()
	invalid.Name = ""
	writeConfigFile(t, dir, "invalid", invalid)
	os.WriteFile(filepath.Join(dir, "README.md"), []byte("not a config"), 0644)
	os.Mkdir(filepath.Join(dir, "nested.json"), 0755)

	manager, err := NewManager(dir)
	if err != nil {
		t.Fatalf("Failed to create manager: %v", err)
	}

	configs, err := manager.ListConfigs()
	if err != nil {
		t.Fatalf("Failed to list configs: %v", err)
	}
	if len(configs) != 2 {
		t.Fatalf("Expected 2 configs, got %d", len(configs))
	}
	if configs[0].ConfigID != "alpha" || configs[0].Format != "yaml" {
		t.Errorf("Unexpected first config %+v", configs[0])
	}
	if configs[1].ConfigID != "zeta" || configs[1].Format != "json" || configs[1].Filename != "zeta.json" {
		t.Errorf("Unexpected second config %+v", configs[1])
	}
	if configs[1].ShuffleSteps != 40 {
		t.Errorf("Expected shuffle steps 40, got %d", configs[1].ShuffleSteps)
	}
}

func TestManager_SaveConfig(t *testing.T) {
	dir := t.TempDir()
	manager, err := NewManager(dir)
	if err != nil {
		t.Fatalf("Failed to create manager: %v", err)
	}

	config := createValidConfig()
	config.Name = "Saved"
	if err := manager.SaveConfig("saved.yaml", config); err != nil {
		t.Fatalf("SaveConfig failed: %v", err)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("ReadDir failed: %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("Expected nothing written to %s, found %d entries", dir, len(entries))
	}

	manager.RefreshCache()
	loaded, err := manager.LoadConfig("saved")
	if err != nil {
		t.Fatalf("Failed to load saved config: %v", err)
	}
	if loaded.Name != "Saved" || loaded.Messages.Solved != "Solved!" {
		t.Errorf("Unexpected loaded config %+v", loaded)
	}

	configs, err := manager.ListConfigs()
	if err != nil {
		t.Fatalf("ListConfigs failed: %v", err)
	}
	if len(configs) != 1 || configs[0].ConfigID != "saved" || configs[0].Format != FormatMemory {
		t.Errorf("Expected the saved config listed from memory, got %+v", configs)
	}

	fresh, err := NewManager(dir)
	if err != nil {
		t.Fatalf("Failed to create second manager: %v", err)
	}
	if _, err := fresh.LoadConfig("saved"); !errors.Is(err, ErrConfigNotFound) {
		t.Errorf("Expected a fresh manager not to see the saved config, got %v", err)
	}

	bad := createValidConfig()
	bad.ShuffleSteps = -3
	if err := manager.SaveConfig("bad", bad); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("Expected ErrInvalidConfig, got %v", err)
	}
	if err := manager.SaveConfig("../escape", createValidConfig()); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("Expected ErrInvalidConfig for a bad name, got %v", err)
	}
}

func TestManager_SaveConfigShadowsFile(t *testing.T) {
	dir := t.TempDir()
	writeConfigFile(t, dir, "classic", createValidConfig())
	onDisk, err := os.ReadFile(filepath.Join(dir, "classic.json"))
	if err != nil {
		t.Fatalf("ReadFile failed: %v", err)
	}

	manager, err := NewManager(dir)
	if err != nil {
		t.Fatalf("Failed to create manager: %v", err)
	}

	override := createValidConfig()
	override.Name = "Classic Override"
	if err := manager.SaveConfig("classic.yaml", override); err != nil {
		t.Fatalf("SaveConfig failed: %v", err)
	}

	if manager.GetDefault().Name != "Classic Override" {
		t.Errorf("Expected the default to follow the saved classic, got %q", manager.GetDefault().Name)
	}

	after, err := os.ReadFile(filepath.Join(dir, "classic.json"))
	if err != nil {
		t.Fatalf("Expected classic.json to survive: %v", err)
	}
	if string(after) != string(onDisk) {
		t.Error("Expected classic.json to be untouched")
	}

	fresh, err := NewManager(dir)
	if err != nil {
		t.Fatalf("Failed to create second manager: %v", err)
	}
	if fresh.GetDefault().Name == "Classic Override" {
		t.Error("Expected a fresh manager to read classic from disk")
	}
}

func TestManager_SetDefault(t *testing.T) {
	dir := t.TempDir()
	writeConfigFile(t, dir, "classic", createValidConfig())
	other := createValidConfig()
	other.Name = "Other"
	writeConfigFile(t, dir, "other", other)

	manager, err := NewManager(dir)
	if err != nil {
		t.Fatalf("Failed to create manager: %v", err)
	}

	if err := manager.SetDefault("other"); err != nil {
		t.Fatalf("SetDefault failed: %v", err)
	}
	if manager.GetDefault().Name != "Other" {
		t.Errorf("Expected Other as default, got %q", manager.GetDefault().Name)
	}
	if err := manager.SetDefault("missing"); !errors.Is(err, ErrConfigNotFound) {
		t.Errorf("Expected ErrConfigNotFound, got %v", err)
	}

	other.Name = "Other v2"
	writeConfigFile(t, dir, "other", other)

	cached, _ := manager.LoadConfig("other")
	if cached.Name != "Other" {
		t.Errorf("Expected cached config before refresh, got %q", cached.Name)
	}

	manager.RefreshCache()
	if manager.GetDefault().Name != "Other v2" {
		t.Errorf("Expected the chosen default reread after refresh, got %q", manager.GetDefault().Name)
	}
}

func TestManager_ConcurrentAccess(t *testing.T) {
	dir := t.TempDir()
	for i := 1; i <= 5; i++ {
		config := createValidConfig()
		config.Name = "Config" + string(rune('0'+i))
		writeConfigFile(t, dir, "config"+string(rune('0'+i)), config)
	}

	manager, err := NewManager(dir)
	if err != nil {
		t.Fatalf("Failed to create manager: %v", err)
	}

	var wg sync.WaitGroup
	errs := make(chan error, 50)

	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			configName := "config" + string(rune('0'+((id%5)+1)))
			if _, err := manager.LoadConfig(configName); err != nil {
				errs <- err
			}
			if id%10 == 0 {
				manager.RefreshCache()
			}
		}(i)
	}

	wg.Wait()
	close(errs)

	for err := range errs {
		t.Errorf("Unexpected error during concurrent access: %v", err)
	}
}

func TestManager_CachingBehavior(t *testing.T) {
	dir := t.TempDir()
	writeConfigFile(t, dir, "classic", createValidConfig())
	testConfig := createValidConfig()
	testConfig.Name = "Test"
	writeConfigFile(t, dir, "test", testConfig)

	manager, err := NewManager(dir)
	if err != nil {
		t.Fatalf("Failed to create manager: %v", err)
	}

	for i := 0; i < 10; i++ {
		config, err := manager.LoadConfig("test")
		if err != nil {
			t.Fatalf("Failed to load config on iteration %d: %v", i, err)
		}
		if config.Name != "Test" {
			t.Errorf("Unexpected config name on iteration %d", i)
		}
	}

	// classic (the default) and test are cached
	if manager.Count() != 2 {
		t.Errorf("Expected 2 configs in cache, got %d", manager.Count())
	}
}
