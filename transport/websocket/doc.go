// Package websocket pushes game state to clients watching a puzzle session.
//
// The package uses a hub-and-spoke model where a central Hub owns every
// connection. Each client has a read goroutine that only keeps the connection
// alive and a write goroutine that drains its send queue. Moves are made over
// REST; the socket is a one-way feed.
//
// Message Protocol:
//
// Every frame is one JSON Message:
//
//	{"session_id": "ab12", "event": "state_update", "game_state": {...}}
//
// Events are state_update (after every move, slide, bulk move or restart),
// solved, restart and session_deleted.
//
// Usage:
//
//	hub := websocket.NewHub()
//	go hub.Run(ctx)
//
//	http.HandleFunc("/ws", func(w http.ResponseWriter, r *http.Request) {
//		hub.ServeWS(w, r, r.URL.Query().Get("session"), currentState)
//	})
//
// Broadcasts never block the caller. When the hub queue is full the message is
// dropped and logged; a client whose own queue is full is disconnected.
package websocket
