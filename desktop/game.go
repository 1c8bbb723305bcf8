package main

import (
	"fmt"
	"image/color"
	"log"
	"strconv"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

const blankTile = boardSize*boardSize - 1

var (
	tileColor   = color.RGBA{70, 110, 160, 255}
	solvedColor = color.RGBA{90, 150, 110, 255}
	hoverColor  = color.RGBA{255, 255, 255, 153}
)

type gameScene struct {
	app       *App
	sessionID string

	mu    sync.Mutex
	state *GameState

	hover       hoverTransition
	unsubscribe func()
}

func newGameScene(app *App, sessionID string, initial *GameState) *gameScene {
	s := &gameScene{app: app, sessionID: sessionID, state: initial}

	unsubscribe, err := app.client.Subscribe(sessionID, s.setState)
	if err != nil {
		log.Printf("WebSocket unavailable for %s, relying on REST responses: %v", sessionID, err)
	} else {
		s.unsubscribe = unsubscribe
	}
	return s
}

func (s *gameScene) setState(state *GameState) {
	if state == nil {
		return
	}
	s.mu.Lock()
	s.state = state
	s.mu.Unlock()
}

func (s *gameScene) snapshot() *GameState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

func (s *gameScene) Update() error {
	state := s.snapshot()
	if state == nil {
		return nil
	}
	x, y := ebiten.CursorPosition()
	clicked := inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)

	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		if s.unsubscribe != nil {
			s.unsubscribe()
		}
		s.app.changeScene(newTitleScene(s.app))
		return nil
	}

	if state.Solved {
		over := buttonRect.contains(x, y)
		s.hover.update(over)
		if over {
			ebiten.SetCursorShape(ebiten.CursorShapePointer)
		}
		if over && clicked {
			go s.do(func() (*GameState, error) { return s.app.client.Restart(s.sessionID) })
		}
		return nil
	}

	p, ok := cellAt(x, y)
	if !ok || p == state.Blank {
		return nil
	}
	ebiten.SetCursorShape(ebiten.CursorShapePointer)
	if clicked && state.Playing() && isAdjacent(p, state.Blank) {
		go s.do(func() (*GameState, error) { return s.app.client.Move(s.sessionID, p) })
	}
	return nil
}

// do runs a request off the game loop and keeps the state it returns
func (s *gameScene) do(request func() (*GameState, error)) {
	state, err := request()
	if err != nil {
		log.Printf("Request for session %s failed: %v", s.sessionID, err)
		return
	}
	s.setState(state)
}

func (s *gameScene) Draw(screen *ebiten.Image) {
	state := s.snapshot()
	if state == nil {
		ebitenutil.DebugPrint(screen, "Loading...")
		return
	}

	x, y := ebiten.CursorPosition()
	hovered, hovering := cellAt(x, y)

	fill := tileColor
	if state.Solved {
		fill = solvedColor
	}

	for row := 0; row < boardSize; row++ {
		for col := 0; col < boardSize; col++ {
			p := Position{Row: row, Col: col}
			tile := state.Tiles[row][col]
			// The last tile shows only once the picture is complete
			if tile == blankTile && !state.Solved {
				continue
			}

			r := cellRect(p)
			ebitenutil.DrawRect(screen, float64(r.x+2), float64(r.y+2), float64(r.w-4), float64(r.h-4), fill)
			if !state.Solved && hovering && hovered == p {
				ebitenutil.DrawRect(screen, float64(r.x+2), float64(r.y+2), float64(r.w-4), float64(r.h-4), hoverColor)
			}
			cx, cy := r.center()
			drawLabel(screen, strconv.Itoa(tile+1), cx, cy, 4, white)
		}
	}

	ebitenutil.DebugPrintAt(screen,
		fmt.Sprintf("Round %d | Moves: %d | %s", state.Round+1, state.CurrentMovesCount, state.ConfigName),
		boardOffset, 8)
	ebitenutil.DebugPrintAt(screen, "Click a tile next to the gap | ESC: Title", boardOffset, screenHeight-28)

	if state.Solved {
		drawLabel(screen, "CLEAR!!!", screenWidth/2, screenHeight/2, 6, skyBlue)
		drawButton(screen, "RESET", s.hover.value, lightGreen)
	}
}
