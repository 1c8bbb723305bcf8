// Package config provides puzzle configuration management.
//
// Configurations live as JSON or YAML files in a directory. Each one names a
// puzzle variant and carries:
//   - the number of random slides used to shuffle a new round
//   - the texts shown by the title and game views (title, start button,
//     solved banner, restart button) and the per-move messages
//
// Variants differ in wording and shuffle length only; every variant plays the
// same 4x4 board.
//
// Usage:
//
//	manager, err := config.NewManager("configs")
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	gameConfig, err := manager.LoadConfig("classic")
//	defaultConfig := manager.GetDefault()
//	configs, err := manager.ListConfigs()
//
// SaveConfig keeps a configuration in memory only. It shadows a file with the
// same id for the rest of the process and is gone on the next start.
//
// The default is classic (or the id given to SetDefault) when present,
// otherwise the first valid file in the directory, otherwise the built-in
// engine.DefaultConfig.
package config
