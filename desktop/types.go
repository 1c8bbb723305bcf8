package main

// Position is a board cell, both coordinates 0-based
type Position struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// GameState is the part of the server's game state the client draws
type GameState struct {
	Tiles             [boardSize][boardSize]int `json:"tiles"`
	Blank             Position                  `json:"blank"`
	Phase             string                    `json:"phase"`
	Solved            bool                      `json:"solved"`
	Message           string                    `json:"message"`
	ConfigName        string                    `json:"config_name"`
	Round             int                       `json:"round"`
	CurrentMovesCount int                       `json:"current_moves_count"`
}

// Playing reports whether tiles can be moved
func (s *GameState) Playing() bool {
	return s != nil && s.Phase == "playing"
}

// SessionInfo is returned when a session is created or fetched
type SessionInfo struct {
	ID         string     `json:"id"`
	ConfigName string     `json:"config_name"`
	GameState  *GameState `json:"game_state"`
}

// WSMessage represents WebSocket message wrapper
type WSMessage struct {
	SessionID string     `json:"session_id"`
	GameState *GameState `json:"game_state,omitempty"`
	Event     string     `json:"event,omitempty"`
}
