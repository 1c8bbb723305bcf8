package main

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
)

func TestClient_CreateSessionAndMove(t *testing.T) {
	var moved Position
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/sessions":
			json.NewEncoder(w).Encode(SessionInfo{ID: "ab12", GameState: &GameState{Phase: "playing"}})
		case "/api/sessions/ab12/move":
			json.NewDecoder(r.Body).Decode(&moved)
			json.NewEncoder(w).Encode(map[string]interface{}{
				"success":    true,
				"game_state": GameState{Phase: "solved", Solved: true},
			})
		case "/api/sessions/ab12/restart":
			json.NewEncoder(w).Encode(map[string]interface{}{"state": GameState{Phase: "playing", Round: 1}})
		default:
			w.WriteHeader(http.StatusNotFound)
			json.NewEncoder(w).Encode(map[string]string{"error": "session not found: " + r.URL.Path})
		}
	}))
	defer server.Close()

	client := NewClient(server.URL + "/")

	info, err := client.CreateSession("")
	if err != nil {
		t.Fatalf("CreateSession failed: %v", err)
	}
	if info.ID != "ab12" || !info.GameState.Playing() {
		t.Errorf("Unexpected session %+v", info)
	}

	state, err := client.Move("ab12", Position{Row: 3, Col: 2})
	if err != nil {
		t.Fatalf("Move failed: %v", err)
	}
	if moved != (Position{Row: 3, Col: 2}) || !state.Solved {
		t.Errorf("Move sent %v, got %+v", moved, state)
	}

	state, err = client.Restart("ab12")
	if err != nil {
		t.Fatalf("Restart failed: %v", err)
	}
	if state.Round != 1 {
		t.Errorf("Expected round 1, got %d", state.Round)
	}

	if _, err := client.State("zz"); err == nil || !strings.Contains(err.Error(), "session not found") {
		t.Errorf("Expected API error, got %v", err)
	}
}

func TestClient_wsURL(t *testing.T) {
	tests := []struct {
		base string
		want string
	}{
		{"http://localhost:8080", "ws://localhost:8080/ws?session=ab12"},
		{"https://example.ngrok.app/", "wss://example.ngrok.app/ws?session=ab12"},
	}
	for _, tt := range tests {
		got, err := NewClient(tt.base).wsURL("ab12")
		if err != nil || got != tt.want {
			t.Errorf("wsURL(%q) = %q, %v; want %q", tt.base, got, err, tt.want)
		}
	}
}

func TestClient_Subscribe(t *testing.T) {
	upgrader := websocket.Upgrader{}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("session") != "ab12" {
			http.Error(w, "missing session", http.StatusBadRequest)
			return
		}
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		defer conn.Close()
		conn.WriteJSON(WSMessage{SessionID: "ab12", Event: "solved"})
		conn.WriteJSON(WSMessage{SessionID: "ab12", Event: "state_update", GameState: &GameState{Phase: "playing", CurrentMovesCount: 7}})
		conn.ReadMessage()
	}))
	defer server.Close()

	states := make(chan *GameState, 1)
	closeFn, err := NewClient(server.URL).Subscribe("ab12", func(s *GameState) { states <- s })
	if err != nil {
		t.Fatalf("Subscribe failed: %v", err)
	}
	defer closeFn()

	select {
	case s := <-states:
		if s.CurrentMovesCount != 7 {
			t.Errorf("Expected pushed state, got %+v", s)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("No state received")
	}
}
