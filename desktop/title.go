package main

import (
	"image/color"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

var (
	aqua      = color.RGBA{0, 255, 255, 255}
	white     = color.RGBA{255, 255, 255, 255}
	skyBlue   = color.RGBA{135, 206, 250, 255}
	lightGreen = color.RGBA{144, 238, 144, 255}
)

type titleScene struct {
	app   *App
	hover hoverTransition
	err   string
}

func newTitleScene(app *App) *titleScene {
	return &titleScene{app: app}
}

func (s *titleScene) Update() error {
	x, y := ebiten.CursorPosition()
	over := buttonRect.contains(x, y)
	s.hover.update(over)
	if over {
		ebiten.SetCursorShape(ebiten.CursorShapePointer)
	}

	if (over && inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)) || inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		s.start()
	}
	return nil
}

// start creates a session and fades into it
func (s *titleScene) start() {
	info, err := s.app.client.CreateSession(s.app.configID)
	if err != nil {
		log.Printf("Failed to create session: %v", err)
		s.err = err.Error()
		return
	}
	s.err = ""
	s.app.changeScene(newGameScene(s.app, info.ID, info.GameState))
}

func (s *titleScene) Draw(screen *ebiten.Image) {
	cx, cy := buttonRect.center()
	drawLabel(screen, "15 PUZZLE", cx, cy-200, 6, aqua)
	drawButton(screen, "START", s.hover.value, white)
	if s.err != "" {
		ebitenutil.DebugPrintAt(screen, "ERROR: "+s.err, 10, screenHeight-20)
	}
}
