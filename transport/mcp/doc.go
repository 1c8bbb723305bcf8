// Package mcp exposes the fifteen puzzle to AI agents over the Model Context
// Protocol.
//
// The Client registers its tools on an mcp-go server and answers every call by
// talking to the REST API, so the same tools work whether the MCP server runs
// in-process behind /mcp or as a separate stdio process.
//
// MCP Tools:
//   - create_session, list_sessions, get_session: session management
//   - board_state: the board, phase, move counters and movable tiles
//   - move: slide the tile at (row, col) into the empty cell
//   - slide: slide by direction (up, down, left, right)
//   - bulk_move: several moves in one call, stopping when the puzzle is solved
//   - restart_game: reshuffle a solved session
//   - move_history: paginated attempts, rejected ones included
//   - list_configs, list_records: configurations and recorded solves
//   - game_instructions, describe_tile: help for agents new to the puzzle
//
// A rejected move is a normal result, not a tool error. Tool errors are
// reserved for bad arguments, unknown sessions and an unreachable API.
//
// Usage:
//
//	client := mcp.NewClient("http://localhost:8080")
//	server.ServeStdio(client.GetMCPServer())
package mcp
