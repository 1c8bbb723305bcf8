// Command desktop is a windowed client for the 15 Puzzle server.
//
// It creates a session on the server, draws the board, and sends a move for
// every tile clicked. State pushes arrive over the session's WebSocket.
package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	server := flag.String("server", "http://localhost:8080", "Puzzle server base URL")
	configID := flag.String("config", "", "Configuration for new sessions (server default if empty)")
	flag.Parse()

	app := NewApp(NewClient(*server), *configID)

	ebiten.SetWindowSize(screenWidth, screenHeight)
	ebiten.SetWindowTitle("15 Puzzle")

	if err := ebiten.RunGame(app); err != nil {
		log.Fatal(err)
	}
}
