package main

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// Fade lengths in ticks (60 per second)
const (
	fadeOutTicks = 24
	fadeInTicks  = 12
)

// Scene is one screen of the app
type Scene interface {
	Update() error
	Draw(screen *ebiten.Image)
}

// App switches between scenes with a fade through black
type App struct {
	client   *Client
	configID string

	current Scene
	next    Scene
	tick    int
	fading  bool
}

// NewApp starts on the title scene
func NewApp(client *Client, configID string) *App {
	a := &App{client: client, configID: configID}
	a.current = newTitleScene(a)
	return a
}

// changeScene fades out the current scene and fades next in
func (a *App) changeScene(next Scene) {
	if a.fading {
		return
	}
	a.next = next
	a.fading = true
	a.tick = 0
}

// fadeAlpha is how dark the overlay is at the current tick, 0..1
func (a *App) fadeAlpha() float64 {
	if !a.fading {
		return 0
	}
	if a.next != nil {
		return float64(a.tick) / fadeOutTicks
	}
	return 1 - float64(a.tick)/fadeInTicks
}

func (a *App) Update() error {
	if a.fading {
		a.tick++
		switch {
		case a.next != nil && a.tick >= fadeOutTicks:
			a.current, a.next = a.next, nil
			a.tick = 0
		case a.next == nil && a.tick >= fadeInTicks:
			a.fading = false
		}
		return nil
	}

	ebiten.SetCursorShape(ebiten.CursorShapeDefault)
	return a.current.Update()
}

func (a *App) Draw(screen *ebiten.Image) {
	a.current.Draw(screen)
	if alpha := a.fadeAlpha(); alpha > 0 {
		ebitenutil.DrawRect(screen, 0, 0, screenWidth, screenHeight, color.RGBA{0, 0, 0, uint8(alpha * 255)})
	}
}

func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return screenWidth, screenHeight
}

// hoverTransition eases towards 1 while hovered and back to 0 otherwise
type hoverTransition struct {
	value float64
}

func (h *hoverTransition) update(hovered bool) {
	if hovered {
		h.value += 1.0 / fadeOutTicks
	} else {
		h.value -= 1.0 / fadeInTicks
	}
	h.value = min(max(h.value, 0), 1)
}

// labels caches the small images DebugPrint renders into
var labels = map[string]*ebiten.Image{}

// Debug font glyph size
const (
	glyphWidth  = 6
	glyphHeight = 16
)

// drawLabel draws s centered on (cx, cy), scaled up from the debug font
func drawLabel(dst *ebiten.Image, s string, cx, cy, scale float64, clr color.Color) {
	img, ok := labels[s]
	if !ok {
		img = ebiten.NewImage(len(s)*glyphWidth, glyphHeight)
		ebitenutil.DebugPrint(img, s)
		labels[s] = img
	}

	w, h := img.Bounds().Dx(), img.Bounds().Dy()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(cx-float64(w)*scale/2, cy-float64(h)*scale/2)
	op.ColorScale.ScaleWithColor(clr)
	dst.DrawImage(img, op)
}

// drawButton draws the shared start/reset button with its hover highlight
func drawButton(screen *ebiten.Image, label string, hover float64, clr color.Color) {
	r := buttonRect
	ebitenutil.DrawRect(screen, float64(r.x), float64(r.y), float64(r.w), float64(r.h),
		color.RGBA{255, 255, 255, uint8(hover * 80)})
	cx, cy := r.center()
	drawLabel(screen, label, cx, cy, 3, clr)
}
