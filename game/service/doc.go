// Package service provides the business logic layer for the fifteen puzzle server.
//
// The service package implements:
//   - Multi-session game management
//   - Configuration listing, loading and saving
//   - Move, slide and bulk move processing
//   - Restarts and paginated move history
//   - Solve records
//
// Core Interfaces:
//
// GameService is the main service interface providing high-level game operations.
// SessionManager handles session creation, retrieval, and lifecycle.
// ConfigManager manages puzzle configuration loading and validation.
// RecordStore keeps one SolveRecord per solved round.
//
// Architecture:
//
// The service layer sits between the transports (HTTP, WebSocket, MCP and the
// terminal shell) and the game engine. Each session owns its own engine, and
// every operation runs under a single service lock so a session never sees
// two moves at once.
//
// Usage:
//
//	sessionMgr := session.NewManager()
//	configMgr, _ := config.NewManager("configs")
//	store, _ := records.NewSQLiteStore(":memory:")
//	gameService := service.NewGameService(sessionMgr, configMgr, store)
//
//	sessionInfo, err := gameService.CreateSession(ctx, "classic", "")
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	result, err := gameService.Move(ctx, sessionInfo.ID, engine.Position{Row: 3, Col: 2})
//
// Solve records are written when a move completes the puzzle. A failing
// record store is logged and never fails the move.
package service
