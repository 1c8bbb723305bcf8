package main

// Window and board geometry. Four 128px tiles plus a 44px margin on each side fill the window.
const (
	screenWidth  = 600
	screenHeight = 600
	boardSize    = 4
	cellSize     = 128
	boardOffset  = 44
)

type rect struct {
	x, y, w, h int
}

func (r rect) contains(x, y int) bool {
	return x >= r.x && x < r.x+r.w && y >= r.y && y < r.y+r.h
}

func (r rect) center() (float64, float64) {
	return float64(r.x) + float64(r.w)/2, float64(r.y) + float64(r.h)/2
}

// buttonRect is the start/reset button: 300x60, centered 100px below the window center
var buttonRect = rect{x: screenWidth/2 - 150, y: screenHeight/2 + 100 - 30, w: 300, h: 60}

func cellRect(p Position) rect {
	return rect{x: boardOffset + p.Col*cellSize, y: boardOffset + p.Row*cellSize, w: cellSize, h: cellSize}
}

// cellAt returns the board cell under the window point (x, y)
func cellAt(x, y int) (Position, bool) {
	x -= boardOffset
	y -= boardOffset
	if x < 0 || y < 0 || x >= boardSize*cellSize || y >= boardSize*cellSize {
		return Position{}, false
	}
	return Position{Row: y / cellSize, Col: x / cellSize}, true
}

func isAdjacent(a, b Position) bool {
	dr, dc := a.Row-b.Row, a.Col-b.Col
	return dr*dr+dc*dc == 1
}
