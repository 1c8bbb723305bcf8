package engine

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrInvalidCoordinate is returned for positions outside the board
	ErrInvalidCoordinate = errors.New("invalid coordinate")
	// ErrInvalidBoard is returned when tiles are not a permutation of 0..15
	ErrInvalidBoard = errors.New("invalid board")
)

// Board is the 4x4 tile arrangement. The zero value is not usable; start from NewBoard.
type Board struct {
	tiles [Size][Size]int
	blank Position
}

// NewBoard returns the solved arrangement with the blank in the bottom-right corner
func NewBoard() Board {
	var b Board
	for r := 0; r < Size; r++ {
		for c := 0; c < Size; c++ {
			b.tiles[r][c] = r*Size + c
		}
	}
	b.blank = Position{Row: Size - 1, Col: Size - 1}
	return b
}

// BoardFromTiles builds a board from an explicit arrangement
func BoardFromTiles(tiles [Size][Size]int) (Board, error) {
	b := Board{tiles: tiles, blank: Position{Row: -1, Col: -1}}
	for r := 0; r < Size; r++ {
		for c := 0; c < Size; c++ {
			if tiles[r][c] == BlankTile {
				b.blank = Position{Row: r, Col: c}
			}
		}
	}
	if err := b.Validate(); err != nil {
		return Board{}, err
	}
	return b, nil
}

// Shuffle walks the blank steps times, each step swapping it with a uniformly
// chosen in-bounds orthogonal neighbor
func (b *Board) Shuffle(steps int, rng Rand) {
	var buf [4]Position
	for i := 0; i < steps; i++ {
		neighbors := appendNeighbors(buf[:0], b.blank)
		b.swapBlank(neighbors[rng.Intn(len(neighbors))])
	}
}

// Move slides the tile at target into the blank. Targets that are not
// orthogonally adjacent to the blank, the blank itself included, leave the
// board untouched and report false.
func (b *Board) Move(target Position) (bool, error) {
	if !target.InBounds() {
		return false, fmt.Errorf("%w: %s", ErrInvalidCoordinate, target)
	}
	if !IsAdjacent(target, b.blank) {
		return false, nil
	}
	b.swapBlank(target)
	return true, nil
}

func (b *Board) swapBlank(target Position) {
	b.tiles[b.blank.Row][b.blank.Col] = b.tiles[target.Row][target.Col]
	b.tiles[target.Row][target.Col] = BlankTile
	b.blank = target
}

// IsSolved reports whether every tile is in its home cell
func (b Board) IsSolved() bool {
	for r := 0; r < Size; r++ {
		for c := 0; c < Size; c++ {
			if b.tiles[r][c] != r*Size+c {
				return false
			}
		}
	}
	return true
}

// TileAt returns the identifier at p
func (b Board) TileAt(p Position) (int, error) {
	if !p.InBounds() {
		return 0, fmt.Errorf("%w: %s", ErrInvalidCoordinate, p)
	}
	return b.tiles[p.Row][p.Col], nil
}

// Blank returns the position of the empty cell
func (b Board) Blank() Position {
	return b.blank
}

// Tiles returns a copy of the arrangement
func (b Board) Tiles() [Size][Size]int {
	return b.tiles
}

// Neighbors returns the in-bounds orthogonal neighbors of p in up, down, left, right order
func (b Board) Neighbors(p Position) []Position {
	if !p.InBounds() {
		return nil
	}
	return appendNeighbors(make([]Position, 0, 4), p)
}

// MovableTiles returns the positions whose tile may slide into the blank
func (b Board) MovableTiles() []Position {
	return b.Neighbors(b.blank)
}

// Validate checks the permutation invariant and the cached blank position
func (b Board) Validate() error {
	var seen [Size * Size]bool
	for r := 0; r < Size; r++ {
		for c := 0; c < Size; c++ {
			id := b.tiles[r][c]
			if id < 0 || id > BlankTile {
				return fmt.Errorf("%w: tile %d at (%d,%d) out of range", ErrInvalidBoard, id, r, c)
			}
			if seen[id] {
				return fmt.Errorf("%w: tile %d appears more than once", ErrInvalidBoard, id)
			}
			seen[id] = true
		}
	}
	if !b.blank.InBounds() || b.tiles[b.blank.Row][b.blank.Col] != BlankTile {
		return fmt.Errorf("%w: blank cache %s does not hold tile %d", ErrInvalidBoard, b.blank, BlankTile)
	}
	return nil
}

// String renders the board one row per line with the blank as "__".
// Tiles are shown 1-based, the way players number them.
func (b Board) String() string {
	var sb strings.Builder
	for r := 0; r < Size; r++ {
		for c := 0; c < Size; c++ {
			if c > 0 {
				sb.WriteByte(' ')
			}
			if b.tiles[r][c] == BlankTile {
				sb.WriteString("__")
			} else {
				fmt.Fprintf(&sb, "%2d", b.tiles[r][c]+1)
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

func appendNeighbors(dst []Position, p Position) []Position {
	candidates := [4]Position{
		{Row: p.Row - 1, Col: p.Col},
		{Row: p.Row + 1, Col: p.Col},
		{Row: p.Row, Col: p.Col - 1},
		{Row: p.Row, Col: p.Col + 1},
	}
	for _, n := range candidates {
		if n.InBounds() {
			dst = append(dst, n)
		}
	}
	return dst
}
