// Package engine provides the core logic of the fifteen puzzle.
//
// The engine package implements:
//   - The 4x4 Board value with Shuffle, Move, IsSolved and TileAt
//   - A seeded HMAC-SHA256 random stream so every shuffle can be replayed
//   - The session lifecycle (shuffling, playing, solved) with restarts
//   - Move history and configuration validation
//
// Core Types:
//
// Board holds the tile arrangement and caches the blank position. Tiles are
// identified 0..15 row-major in the solved order; 15 is the blank. The Board
// knows nothing about rendering, input or time and can be driven directly by
// tests.
//
// The Engine interface wraps a Board with the session state machine,
// implemented by GameEngine. GameState is the JSON view handed to transports,
// while GameConfig carries the shuffle length and the texts shown by shells.
// A GameEngine is not safe for concurrent use, and GetState returns the live
// state; callers sharing an engine serialize access and hand out Clone copies.
//
// Usage:
//
//	gameEngine, err := engine.NewEngine(engine.DefaultConfig())
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	outcome, err := gameEngine.Move(engine.Position{Row: 3, Col: 2})
//	if err != nil {
//		log.Fatal(err) // only for coordinates off the board
//	}
//	state := gameEngine.GetState()
//
// Move Rules:
//
// A move names the cell whose tile should slide into the blank. Only cells
// sharing an edge with the blank move; anything else on the board, the blank
// itself included, is a no-op reported through MoveOutcome.Reason. Once the
// tiles are back in order the session is solved and refuses moves until it
// is restarted.
package engine
