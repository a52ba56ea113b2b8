package mines

/*
 * Board geometry. A board of size s has 2s-1 rows; row y holds
 * s + min(y, 2s-2-y) cells, so rows widen towards the center row and
 * narrow again past it:
 *
 *     0 1 2        y = 0
 *    0 1 2 3       y = 1
 *   0 1 2 3 4      y = 2   (center row, size 3)
 *    0 1 2 3       y = 3
 *     0 1 2        y = 4
 *
 * x restarts at 0 on the left edge of every row, which makes the
 * vertical coordinate lines "bend" at the center row and is why the
 * diagonal neighbor offsets below depend on the row band.
 * (size-1, size-1) is always the center cell.
 */

// Coord addresses one cell: y is the row, x the position within it.
type Coord struct {
	X, Y int
}

// RowCount returns the number of rows on a board of the given size.
func RowCount(size int) int {
	return 2*size - 1
}

// CellCountInRow returns the width of row y. Plain arithmetic, total
// for out-of-range rows, so the mapper may probe it with unvalidated
// coordinates.
func CellCountInRow(size, y int) int {
	return size + min(y, 2*size-2-y)
}

// TotalTiles returns the cell count of a board of the given size.
func TotalTiles(size int) int {
	return 3*size*size - 3*size + 1
}

// HighestPossibleMineCount is one less than the tile count: a board
// needs at least one safe cell.
func HighestPossibleMineCount(size int) int {
	return TotalTiles(size) - 1
}

// CoordInBounds reports whether (x, y) addresses a cell on the board.
func CoordInBounds(size, x, y int) bool {
	return 0 <= y && y < RowCount(size) &&
		0 <= x && x < CellCountInRow(size, y)
}

// AllValidCoords enumerates the board row by row, left to right.
func AllValidCoords(size int) []Coord {
	coords := make([]Coord, 0, TotalTiles(size))
	for y := range RowCount(size) {
		for x := range CellCountInRow(size, y) {
			coords = append(coords, Coord{x, y})
		}
	}
	return coords
}

// AdjacentCoords returns the valid neighbors of (x, y). Interior cells
// have six, edge and corner cells fewer, and the relation is symmetric.
func AdjacentCoords(size, x, y int) []Coord {
	candidates := [6]Coord{
		{x, y + 1},
		{x, y - 1},
		{x + 1, y},
		{x - 1, y},
	}
	switch {
	case y < size-1: /* above the center row */
		candidates[4] = Coord{x + 1, y + 1}
		candidates[5] = Coord{x - 1, y - 1}
	case y == size-1: /* on the center row */
		candidates[4] = Coord{x - 1, y + 1}
		candidates[5] = Coord{x - 1, y - 1}
	default: /* below the center row */
		candidates[4] = Coord{x + 1, y - 1}
		candidates[5] = Coord{x - 1, y + 1}
	}

	adjacent := make([]Coord, 0, 6)
	for _, c := range candidates {
		if CoordInBounds(size, c.X, c.Y) {
			adjacent = append(adjacent, c)
		}
	}
	return adjacent
}
