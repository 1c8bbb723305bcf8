// Package api provides the HTTP REST API for the fifteen puzzle server.
//
// Endpoints:
//
// Session Management:
//   - POST /api/sessions - Create a session {config_id?, seed?}
//   - GET /api/sessions - List sessions (?sort=created|accessed&order=asc|desc&limit=N)
//   - GET /api/sessions/{id} - Get a session
//   - DELETE /api/sessions/{id} - Delete a session
//
// Game Operations:
//   - GET /api/sessions/{id}/state - Current board and phase
//   - POST /api/sessions/{id}/move - Move the tile at {row, col} into the blank
//   - POST /api/sessions/{id}/slide - Slide a tile {direction: up|down|left|right}
//   - POST /api/sessions/{id}/bulk-move - Run {moves: [{row, col}, ...]} in order
//   - POST /api/sessions/{id}/restart - Shuffle a new round once solved
//   - GET /api/sessions/{id}/history - Paginated move history (?page&limit&order&current)
//
// Configuration:
//   - GET /api/configs - List puzzle configurations
//   - POST /api/configs - Keep a configuration in memory {config_id?, ...GameConfig}
//   - GET /api/configs/{name} - Get one configuration
//
// Other:
//   - GET /api/records - Solve records (?session&config&order_by=recent|moves|duration&limit)
//   - GET /health - Liveness
//   - GET /ws?session={id} - WebSocket state feed
//
// Rejected moves are not errors: a tile that is not next to the blank, or a
// move on a solved board, answers 200 with success=false and a reason code.
//
// Error Handling:
//
// Errors are returned as JSON with a status code matching the cause:
//
//	{"error": "session not found: ab12"}
//
// 400 for malformed bodies, coordinates off the board and unknown directions,
// 404 for unknown sessions or configurations, 409 for a restart before the
// puzzle is solved, 500 otherwise.
package api
