package tui

import (
	"strconv"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"github.com/wricardo/mcp-training/fifteenpuzzle/game/engine"
)

// Tile geometry in terminal cells. Tiles are separated by a one-cell gutter.
const (
	tileWidth  = 6
	tileHeight = 3
	gutter     = 1

	boardWidth  = engine.Size*(tileWidth+gutter) - gutter
	boardHeight = engine.Size*(tileHeight+gutter) - gutter
)

var (
	tileStyle   = tcell.StyleDefault.Background(tcell.ColorTeal).Foreground(tcell.ColorWhite).Bold(true)
	hoverStyle  = tcell.StyleDefault.Background(tcell.ColorYellow).Foreground(tcell.ColorBlack).Bold(true)
	cursorStyle = tcell.StyleDefault.Background(tcell.ColorNavy).Foreground(tcell.ColorWhite).Bold(true)
	blankStyle  = tcell.StyleDefault.Background(tcell.ColorBlack)
	markerStyle = tcell.StyleDefault.Background(tcell.ColorDarkSlateGray)
)

// cellAt maps a point relative to the board's top-left corner to the cell
// under it. Points in a gutter or off the board hit nothing.
func cellAt(x, y int) (engine.Position, bool) {
	if x < 0 || y < 0 || x >= boardWidth || y >= boardHeight {
		return engine.Position{}, false
	}
	if x%(tileWidth+gutter) >= tileWidth || y%(tileHeight+gutter) >= tileHeight {
		return engine.Position{}, false
	}
	return engine.Position{Row: y / (tileHeight + gutter), Col: x / (tileWidth + gutter)}, true
}

// keyDirection maps arrow keys and hjkl to slide directions
func keyDirection(key tcell.Key, ch rune) (string, bool) {
	switch key {
	case tcell.KeyUp:
		return engine.DirectionUp, true
	case tcell.KeyDown:
		return engine.DirectionDown, true
	case tcell.KeyLeft:
		return engine.DirectionLeft, true
	case tcell.KeyRight:
		return engine.DirectionRight, true
	case tcell.KeyRune:
		switch ch {
		case 'k':
			return engine.DirectionUp, true
		case 'j':
			return engine.DirectionDown, true
		case 'h':
			return engine.DirectionLeft, true
		case 'l':
			return engine.DirectionRight, true
		}
	}
	return "", false
}

// stepCursor moves the keyboard cursor one cell with wasd, staying on the board
func stepCursor(p engine.Position, ch rune) (engine.Position, bool) {
	next := p
	switch ch {
	case 'w':
		next.Row--
	case 's':
		next.Row++
	case 'a':
		next.Col--
	case 'd':
		next.Col++
	default:
		return p, false
	}
	if !next.InBounds() {
		return p, true
	}
	return next, true
}

// boardView draws the tiles and turns clicks and keys into moves
type boardView struct {
	*tview.Box

	board    func() engine.Board
	canMove  func(engine.Position) bool
	onMove   func(engine.Position)
	onSlide  func(string)
	hover    engine.Position
	hovering bool
	cursor   engine.Position
}

func newBoardView(board func() engine.Board, canMove func(engine.Position) bool, onMove func(engine.Position), onSlide func(string)) *boardView {
	b := &boardView{
		Box:     tview.NewBox(),
		board:   board,
		canMove: canMove,
		onMove:  onMove,
		onSlide: onSlide,
	}
	b.SetBorder(true)
	return b
}

func (b *boardView) Draw(screen tcell.Screen) {
	b.Box.DrawForSubclass(screen, b)
	ox, oy, _, _ := b.GetInnerRect()
	board := b.board()

	for r := 0; r < engine.Size; r++ {
		for c := 0; c < engine.Size; c++ {
			p := engine.Position{Row: r, Col: c}
			tile, _ := board.TileAt(p)

			style := tileStyle
			label := strconv.Itoa(tile + 1)
			switch {
			case tile == engine.BlankTile && b.cursor == p:
				style, label = markerStyle, ""
			case tile == engine.BlankTile:
				style, label = blankStyle, ""
			case b.hovering && b.hover == p && b.canMove(p):
				style = hoverStyle
			case b.cursor == p:
				style = cursorStyle
			}

			x := ox + c*(tileWidth+gutter)
			y := oy + r*(tileHeight+gutter)
			for dy := 0; dy < tileHeight; dy++ {
				for dx := 0; dx < tileWidth; dx++ {
					screen.SetContent(x+dx, y+dy, ' ', nil, style)
				}
			}
			lx := x + (tileWidth-len(label))/2
			for i, ch := range label {
				screen.SetContent(lx+i, y+tileHeight/2, ch, nil, style)
			}
		}
	}
}

func (b *boardView) MouseHandler() func(action tview.MouseAction, event *tcell.EventMouse, setFocus func(p tview.Primitive)) (consumed bool, capture tview.Primitive) {
	return b.WrapMouseHandler(func(action tview.MouseAction, event *tcell.EventMouse, setFocus func(p tview.Primitive)) (bool, tview.Primitive) {
		x, y := event.Position()
		if !b.InRect(x, y) {
			b.hovering = false
			return false, nil
		}
		ox, oy, _, _ := b.GetInnerRect()
		p, ok := cellAt(x-ox, y-oy)

		switch action {
		case tview.MouseMove:
			b.hover, b.hovering = p, ok
			return true, nil
		case tview.MouseLeftClick:
			setFocus(b)
			if ok {
				b.cursor = p
				b.onMove(p)
			}
			return true, nil
		}
		return false, nil
	})
}

func (b *boardView) InputHandler() func(event *tcell.EventKey, setFocus func(p tview.Primitive)) {
	return b.WrapInputHandler(func(event *tcell.EventKey, setFocus func(p tview.Primitive)) {
		b.handleKey(event.Key(), event.Rune())
	})
}

// handleKey slides on arrows and hjkl, steers the cursor with wasd and moves
// the tile under the cursor on Enter or space
func (b *boardView) handleKey(key tcell.Key, ch rune) {
	if dir, ok := keyDirection(key, ch); ok {
		b.onSlide(dir)
		return
	}
	if key == tcell.KeyEnter || (key == tcell.KeyRune && ch == ' ') {
		b.onMove(b.cursor)
		return
	}
	if key == tcell.KeyRune {
		b.cursor, _ = stepCursor(b.cursor, ch)
	}
}
