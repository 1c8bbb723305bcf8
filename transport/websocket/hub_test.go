package websocket

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"

	"github.com/wricardo/mcp-training/fifteenpuzzle/game/engine"
)

func newTestClient(hub *Hub, sessionID string) *Client {
	return &Client{
		hub:       hub,
		sessionID: sessionID,
		send:      make(chan []byte, 256),
	}
}

// startHub runs hub until the test ends
func startHub(t *testing.T, hub *Hub) {
	t.Helper()
	ctx, cancel := context.WithCancel(context.Background())
	go hub.Run(ctx)
	t.Cleanup(cancel)
}

func waitFor(t *testing.T, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatal("condition not met within timeout")
}

func TestNewHub(t *testing.T) {
	hub := NewHub()

	if hub == nil {
		t.Fatal("NewHub() returned nil")
	}
	if hub.sessions == nil {
		t.Error("Hub sessions map is nil")
	}
	if cap(hub.broadcast) != engine.WebSocketBufferSize {
		t.Errorf("Expected broadcast buffer %d, got %d", engine.WebSocketBufferSize, cap(hub.broadcast))
	}
	if hub.register == nil || hub.unregister == nil || hub.done == nil {
		t.Error("Hub channels not initialised")
	}
}

func TestHubRegisterClient(t *testing.T) {
	hub := NewHub()
	client := newTestClient(hub, "test-session")

	hub.registerClient(client)

	if !hub.sessions["test-session"][client] {
		t.Error("Client was not registered in session")
	}
	if hub.ClientCount("test-session") != 1 {
		t.Errorf("Expected 1 client in session, got %d", hub.ClientCount("test-session"))
	}
}

func TestHubUnregisterClient(t *testing.T) {
	hub := NewHub()
	client := newTestClient(hub, "test-session")

	hub.registerClient(client)
	hub.unregisterClient(client)

	if _, exists := hub.sessions["test-session"]; exists {
		t.Error("Session should have been cleaned up after last client unregistered")
	}
	if _, ok := <-client.send; ok {
		t.Error("Send channel should be closed")
	}

	// A second unregister must not close the channel again
	hub.unregisterClient(client)
}

func TestHubMultipleClientsInSession(t *testing.T) {
	hub := NewHub()
	sessionID := "multi-client-session"

	client1 := newTestClient(hub, sessionID)
	client2 := newTestClient(hub, sessionID)
	other := newTestClient(hub, "other")

	hub.registerClient(client1)
	hub.registerClient(client2)
	hub.registerClient(other)

	if hub.ClientCount(sessionID) != 2 {
		t.Errorf("Expected 2 clients in session, got %d", hub.ClientCount(sessionID))
	}

	hub.unregisterClient(client1)

	if hub.ClientCount(sessionID) != 1 {
		t.Errorf("Expected 1 client remaining in session, got %d", hub.ClientCount(sessionID))
	}
	if !hub.sessions[sessionID][client2] {
		t.Error("client2 should still be registered")
	}
}

func TestHubBroadcastMessage(t *testing.T) {
	hub := NewHub()
	sessionID := "broadcast-test"

	client := newTestClient(hub, sessionID)
	bystander := newTestClient(hub, "other-session")
	hub.registerClient(client)
	hub.registerClient(bystander)

	state := engine.InitGameStateFromConfig(engine.DefaultConfig())
	state.Phase = engine.PhasePlaying
	state.TotalMoves = 7

	hub.broadcastMessage(&Message{SessionID: sessionID, GameState: state, Event: EventStateUpdate})

	select {
	case data := <-client.send:
		var message Message
		if err := json.Unmarshal(data, &message); err != nil {
			t.Fatalf("Failed to unmarshal message: %v", err)
		}
		if message.SessionID != sessionID {
			t.Errorf("Expected sessionID %s, got %s", sessionID, message.SessionID)
		}
		if message.Event != EventStateUpdate {
			t.Errorf("Expected event %q, got %s", EventStateUpdate, message.Event)
		}
		if message.GameState.TotalMoves != 7 || message.GameState.Phase != engine.PhasePlaying {
			t.Error("GameState not correctly transmitted")
		}
	default:
		t.Error("No message queued for client")
	}

	select {
	case <-bystander.send:
		t.Error("Client in another session should not receive the message")
	default:
	}
}

func TestHubBroadcastDropsSlowClient(t *testing.T) {
	hub := NewHub()
	slow := &Client{hub: hub, sessionID: "slow", send: make(chan []byte)}
	hub.registerClient(slow)

	hub.broadcastMessage(&Message{SessionID: "slow", Event: EventSolved})

	if hub.ClientCount("slow") != 0 {
		t.Error("Expected slow client to be dropped")
	}
}

func TestHubBroadcastEventQueues(t *testing.T) {
	hub := NewHub()

	hub.BroadcastEvent("event-test", EventRestart, "test-data")

	select {
	case message := <-hub.broadcast:
		if message.SessionID != "event-test" {
			t.Errorf("Expected sessionID 'event-test', got %s", message.SessionID)
		}
		if message.Event != EventRestart {
			t.Errorf("Expected event %q, got %s", EventRestart, message.Event)
		}
		if message.Data != "test-data" {
			t.Errorf("Expected data 'test-data', got %v", message.Data)
		}
	default:
		t.Error("No broadcast message queued")
	}
}

func TestHubBroadcastNeverBlocks(t *testing.T) {
	hub := NewHub()

	done := make(chan struct{})
	go func() {
		// Nothing drains the queue; extra messages are dropped
		for i := 0; i < engine.WebSocketBufferSize+10; i++ {
			hub.BroadcastToSession("full", nil)
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("BroadcastToSession blocked on a full queue")
	}
	if len(hub.broadcast) != engine.WebSocketBufferSize {
		t.Errorf("Expected full queue, got %d", len(hub.broadcast))
	}
}

func newWSServer(t *testing.T, hub *Hub, initial *engine.GameState) string {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hub.ServeWS(w, r, r.URL.Query().Get("session"), initial)
	}))
	t.Cleanup(server.Close)
	return "ws" + strings.TrimPrefix(server.URL, "http")
}

func TestWebSocketUpgrade(t *testing.T) {
	hub := NewHub()
	startHub(t, hub)
	wsURL := newWSServer(t, hub, nil)

	conn, _, err := websocket.DefaultDialer.Dial(wsURL+"?session=ws-test", nil)
	if err != nil {
		t.Fatalf("Failed to connect to WebSocket: %v", err)
	}

	waitFor(t, func() bool { return hub.ClientCount("ws-test") == 1 })

	conn.Close()

	waitFor(t, func() bool { return hub.ClientCount("ws-test") == 0 })
}

func TestWebSocketInitialStateAndBroadcast(t *testing.T) {
	hub := NewHub()
	startHub(t, hub)

	initial := engine.InitGameStateFromConfig(engine.DefaultConfig())
	initial.Round = 3
	wsURL := newWSServer(t, hub, initial)

	conn, _, err := websocket.DefaultDialer.Dial(wsURL+"?session=msg-test", nil)
	if err != nil {
		t.Fatalf("Failed to connect to WebSocket: %v", err)
	}
	defer conn.Close()

	read := func() Message {
		t.Helper()
		conn.SetReadDeadline(time.Now().Add(time.Second))
		_, data, err := conn.ReadMessage()
		if err != nil {
			t.Fatalf("Failed to read WebSocket message: %v", err)
		}
		var message Message
		if err := json.Unmarshal(data, &message); err != nil {
			t.Fatalf("Failed to unmarshal message: %v", err)
		}
		return message
	}

	first := read()
	if first.GameState == nil || first.GameState.Round != 3 {
		t.Fatalf("Expected initial state for round 3, got %+v", first)
	}

	waitFor(t, func() bool { return hub.ClientCount("msg-test") == 1 })

	update := engine.InitGameStateFromConfig(engine.DefaultConfig())
	update.TotalMoves = 12
	hub.BroadcastToSession("msg-test", update)

	second := read()
	if second.SessionID != "msg-test" {
		t.Errorf("Expected sessionID 'msg-test', got %s", second.SessionID)
	}
	if second.GameState == nil || second.GameState.TotalMoves != 12 {
		t.Error("GameState not correctly received")
	}
}

func TestHubShutdownClosesClients(t *testing.T) {
	hub := NewHub()
	ctx, cancel := context.WithCancel(context.Background())
	stopped := make(chan struct{})
	go func() {
		hub.Run(ctx)
		close(stopped)
	}()
	wsURL := newWSServer(t, hub, nil)

	conn, _, err := websocket.DefaultDialer.Dial(wsURL+"?session=bye", nil)
	if err != nil {
		t.Fatalf("Failed to connect to WebSocket: %v", err)
	}
	defer conn.Close()
	waitFor(t, func() bool { return hub.ClientCount("bye") == 1 })

	cancel()
	<-stopped

	if hub.ClientCount("bye") != 0 {
		t.Error("Expected no clients after shutdown")
	}
	conn.SetReadDeadline(time.Now().Add(time.Second))
	if _, _, err := conn.ReadMessage(); err == nil {
		t.Error("Expected connection to be closed")
	}
}
