package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/gorilla/websocket"
)

// Client talks to the puzzle server over REST and listens for pushes over WebSocket
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a client for the server at baseURL
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

func (c *Client) call(method, path string, body, result interface{}) error {
	var payload bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&payload).Encode(body); err != nil {
			return err
		}
	}

	req, err := http.NewRequest(method, c.baseURL+path, &payload)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		var apiErr struct {
			Error string `json:"error"`
		}
		if json.NewDecoder(resp.Body).Decode(&apiErr) == nil && apiErr.Error != "" {
			return fmt.Errorf("%s", apiErr.Error)
		}
		return fmt.Errorf("server returned %d", resp.StatusCode)
	}

	if result != nil {
		return json.NewDecoder(resp.Body).Decode(result)
	}
	return nil
}

func sessionPath(id, suffix string) string {
	return "/api/sessions/" + url.PathEscape(id) + suffix
}

// CreateSession starts a new puzzle. An empty configID uses the server default.
func (c *Client) CreateSession(configID string) (*SessionInfo, error) {
	body := map[string]string{}
	if configID != "" {
		body["config_id"] = configID
	}
	var info SessionInfo
	if err := c.call("POST", "/api/sessions", body, &info); err != nil {
		return nil, fmt.Errorf("create session: %w", err)
	}
	return &info, nil
}

// State fetches the current state of a session
func (c *Client) State(sessionID string) (*GameState, error) {
	var state GameState
	if err := c.call("GET", sessionPath(sessionID, "/state"), nil, &state); err != nil {
		return nil, err
	}
	return &state, nil
}

// Move asks the server to slide the tile at p into the empty cell
func (c *Client) Move(sessionID string, p Position) (*GameState, error) {
	var result struct {
		GameState *GameState `json:"game_state"`
	}
	if err := c.call("POST", sessionPath(sessionID, "/move"), p, &result); err != nil {
		return nil, err
	}
	return result.GameState, nil
}

// Restart shuffles a new round of a solved session
func (c *Client) Restart(sessionID string) (*GameState, error) {
	var result struct {
		State *GameState `json:"state"`
	}
	if err := c.call("POST", sessionPath(sessionID, "/restart"), nil, &result); err != nil {
		return nil, err
	}
	return result.State, nil
}

// wsURL maps the server's http(s) base URL to the WebSocket endpoint for sessionID
func (c *Client) wsURL(sessionID string) (string, error) {
	u, err := url.Parse(c.baseURL)
	if err != nil {
		return "", err
	}
	switch u.Scheme {
	case "https":
		u.Scheme = "wss"
	default:
		u.Scheme = "ws"
	}
	u.Path = strings.TrimRight(u.Path, "/") + "/ws"
	u.RawQuery = url.Values{"session": {sessionID}}.Encode()
	return u.String(), nil
}

// Subscribe streams state pushes for sessionID to onState until the returned
// close function is called or the server hangs up
func (c *Client) Subscribe(sessionID string, onState func(*GameState)) (func(), error) {
	wsURL, err := c.wsURL(sessionID)
	if err != nil {
		return nil, err
	}

	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	if err != nil {
		return nil, err
	}
	log.Printf("WebSocket connected for session %s", sessionID)

	go func() {
		defer conn.Close()
		for {
			_, message, err := conn.ReadMessage()
			if err != nil {
				if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
					log.Printf("WebSocket read error for %s: %v", sessionID, err)
				}
				return
			}

			var wsMsg WSMessage
			if err := json.Unmarshal(message, &wsMsg); err != nil {
				log.Printf("WebSocket JSON parse error: %v", err)
				continue
			}
			if wsMsg.GameState != nil {
				onState(wsMsg.GameState)
			}
		}
	}()

	return func() { conn.Close() }, nil
}
