package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/wricardo/mcp-training/fifteenpuzzle/game/engine"
	"github.com/wricardo/mcp-training/fifteenpuzzle/game/service"
)

var (
	ErrConfigNotFound = service.ErrConfigNotFound
	ErrInvalidConfig  = service.ErrInvalidConfig
)

// DefaultConfigName is tried first when picking the default configuration
const DefaultConfigName = "classic"

// FormatMemory marks configs saved at runtime in ListConfigs
const FormatMemory = "memory"

// Supported file extensions in lookup order
var extensions = []string{".json", ".yaml", ".yml"}

// Manager handles puzzle configuration loading and caching. Configs saved
// through SaveConfig live in memory only and shadow files of the same id.
type Manager struct {
	configDir     string
	defaultName   string
	defaultConfig *engine.GameConfig
	configs       map[string]*engine.GameConfig
	saved         map[string]*engine.GameConfig
	mu            sync.RWMutex
}

// NewManager creates a new configuration manager
func NewManager(configDir string) (*Manager, error) {
	// Ensure config directory exists
	if _, err := os.Stat(configDir); os.IsNotExist(err) {
		return nil, fmt.Errorf("config directory does not exist: %s", configDir)
	}

	m := &Manager{
		configDir:   configDir,
		defaultName: DefaultConfigName,
		configs:     make(map[string]*engine.GameConfig),
		saved:       make(map[string]*engine.GameConfig),
	}

	m.loadDefaultConfig()

	return m, nil
}

// splitName returns the config id and an explicit extension, if any
func splitName(name string) (string, string) {
	ext := strings.ToLower(filepath.Ext(name))
	for _, known := range extensions {
		if ext == known {
			return strings.TrimSuffix(name, filepath.Ext(name)), ext
		}
	}
	return name, ""
}

// LoadConfig loads a configuration by name. Saved configs win over files. The
// name may carry a .json, .yaml or .yml extension; without one the extensions
// are tried in that order.
func (m *Manager) LoadConfig(name string) (*engine.GameConfig, error) {
	id, ext := splitName(name)
	if id == "" || strings.ContainsAny(id, `/\`) {
		return nil, fmt.Errorf("%w: %q", ErrConfigNotFound, name)
	}

	m.mu.RLock()
	if config, exists := m.saved[id]; exists {
		m.mu.RUnlock()
		return config, nil
	}
	// Check cache first
	if config, exists := m.configs[id]; exists {
		m.mu.RUnlock()
		return config, nil
	}
	m.mu.RUnlock()

	// Load from file
	m.mu.Lock()
	defer m.mu.Unlock()

	// Double-check after acquiring write lock
	if config, exists := m.saved[id]; exists {
		return config, nil
	}
	if config, exists := m.configs[id]; exists {
		return config, nil
	}

	candidates := extensions
	if ext != "" {
		candidates = []string{ext}
	}

	for _, candidate := range candidates {
		path := filepath.Join(m.configDir, id+candidate)
		data, err := os.ReadFile(path)
		if err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}

		config, err := decodeConfig(data, candidate)
		if err != nil {
			return nil, err
		}

		m.configs[id] = config
		return config, nil
	}

	return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, id)
}

// decodeConfig parses and validates a config body in the format named by ext
func decodeConfig(data []byte, ext string) (*engine.GameConfig, error) {
	var config engine.GameConfig
	switch ext {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &config); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	default:
		if err := json.Unmarshal(data, &config); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	if err := engine.ValidateGameConfig(&config); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	return &config, nil
}

// ListConfigs returns information about all valid configurations, sorted by id.
// Saved configs are listed with format "memory" in place of any file they shadow.
func (m *Manager) ListConfigs() ([]*service.ConfigInfo, error) {
	entries, err := os.ReadDir(m.configDir)
	if err != nil {
		return nil, fmt.Errorf("failed to read config directory: %w", err)
	}

	var configs []*service.ConfigInfo
	seen := make(map[string]bool)

	m.mu.RLock()
	for id, config := range m.saved {
		seen[id] = true
		configs = append(configs, &service.ConfigInfo{
			ConfigID:     id,
			Name:         config.Name,
			Description:  config.Description,
			ShuffleSteps: config.ShuffleSteps,
			Format:       FormatMemory,
		})
	}
	m.mu.RUnlock()

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		id, ext := splitName(entry.Name())
		if ext == "" || seen[id] {
			continue
		}

		// Try to load the config to get details
		config, err := m.LoadConfig(id)
		if err != nil {
			// Skip invalid configs
			continue
		}
		seen[id] = true

		configs = append(configs, &service.ConfigInfo{
			Filename:     entry.Name(),
			ConfigID:     id, // This is the identifier to use for session creation
			Name:         config.Name,
			Description:  config.Description,
			ShuffleSteps: config.ShuffleSteps,
			Format:       strings.TrimPrefix(ext, "."),
		})
	}

	sort.Slice(configs, func(i, j int) bool { return configs[i].ConfigID < configs[j].ConfigID })
	return configs, nil
}

// GetDefault returns the default configuration
func (m *Manager) GetDefault() *engine.GameConfig {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.defaultConfig
}

// SetDefault sets the default configuration by name. The choice survives RefreshCache.
func (m *Manager) SetDefault(name string) error {
	config, err := m.LoadConfig(name)
	if err != nil {
		return err
	}

	id, _ := splitName(name)
	m.mu.Lock()
	defer m.mu.Unlock()
	m.defaultName = id
	m.defaultConfig = config
	return nil
}

// RefreshCache drops every cached file configuration and resolves the default again
func (m *Manager) RefreshCache() {
	m.mu.Lock()
	m.configs = make(map[string]*engine.GameConfig)
	m.mu.Unlock()

	m.loadDefaultConfig()
}

// Count returns the number of cached configurations, saved ones included
func (m *Manager) Count() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.configs) + len(m.saved)
}

// loadDefaultConfig picks the chosen default (classic unless SetDefault said
// otherwise), then the first valid config, then the built-in
func (m *Manager) loadDefaultConfig() {
	m.mu.RLock()
	name := m.defaultName
	m.mu.RUnlock()

	config, err := m.LoadConfig(name)
	if err != nil {
		configs, listErr := m.ListConfigs()
		if listErr != nil || len(configs) == 0 {
			config = engine.DefaultConfig()
		} else if config, err = m.LoadConfig(configs[0].ConfigID); err != nil {
			config = engine.DefaultConfig()
		}
	}

	m.mu.Lock()
	m.defaultConfig = config
	m.mu.Unlock()
}

// SaveConfig validates a configuration and keeps it in memory for the life of
// the process. Files on disk are never written; a saved config shadows a file
// with the same id until the process exits.
func (m *Manager) SaveConfig(name string, config *engine.GameConfig) error {
	if err := engine.ValidateGameConfig(config); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	id, _ := splitName(name)
	if id == "" || strings.ContainsAny(id, `/\`) || strings.HasPrefix(id, ".") {
		return fmt.Errorf("%w: bad config name %q", ErrInvalidConfig, name)
	}

	saved := *config
	m.mu.Lock()
	m.saved[id] = &saved
	m.mu.Unlock()

	// The default may be the id just shadowed
	m.RefreshCache()
	return nil
}
