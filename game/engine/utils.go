package engine

// ManhattanDistance calculates the Manhattan distance between two positions
func ManhattanDistance(from, to Position) int {
	dr := from.Row - to.Row
	if dr < 0 {
		dr = -dr
	}
	dc := from.Col - to.Col
	if dc < 0 {
		dc = -dc
	}
	return dr + dc
}

// IsAdjacent reports whether a and b share an edge
func IsAdjacent(a, b Position) bool {
	return ManhattanDistance(a, b) == 1
}

// HomeOf returns the cell tile belongs to in the solved arrangement
func HomeOf(tile int) Position {
	return Position{Row: tile / Size, Col: tile % Size}
}

// Displacement sums the distance of every non-blank tile from its home cell.
// It is zero exactly when the board is solved.
func Displacement(b Board) int {
	total := 0
	for r := 0; r < Size; r++ {
		for c := 0; c < Size; c++ {
			if id := b.tiles[r][c]; id != BlankTile {
				total += ManhattanDistance(Position{Row: r, Col: c}, HomeOf(id))
			}
		}
	}
	return total
}

// MisplacedTiles counts non-blank tiles outside their home cell
func MisplacedTiles(b Board) int {
	count := 0
	for r := 0; r < Size; r++ {
		for c := 0; c < Size; c++ {
			if id := b.tiles[r][c]; id != BlankTile && id != r*Size+c {
				count++
			}
		}
	}
	return count
}

// Parity is the permutation parity of the tiles plus the blank's distance from
// its home cell, mod 2. Every board reached by blank swaps from NewBoard has parity 0.
func Parity(b Board) int {
	var flat [Size * Size]int
	for r := 0; r < Size; r++ {
		for c := 0; c < Size; c++ {
			flat[r*Size+c] = b.tiles[r][c]
		}
	}
	var visited [Size * Size]bool
	transpositions := 0
	for i := range flat {
		if visited[i] {
			continue
		}
		length := 0
		for j := i; !visited[j]; j = flat[j] {
			visited[j] = true
			length++
		}
		transpositions += length - 1
	}
	return (transpositions + ManhattanDistance(b.blank, HomeOf(BlankTile))) % 2
}

// DirectionTarget returns the cell whose tile travels in direction to fill the blank
func DirectionTarget(blank Position, direction string) (Position, bool) {
	switch direction {
	case DirectionUp:
		return Position{Row: blank.Row + 1, Col: blank.Col}, true
	case DirectionDown:
		return Position{Row: blank.Row - 1, Col: blank.Col}, true
	case DirectionLeft:
		return Position{Row: blank.Row, Col: blank.Col + 1}, true
	case DirectionRight:
		return Position{Row: blank.Row, Col: blank.Col - 1}, true
	}
	return Position{}, false
}
