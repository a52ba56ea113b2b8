package mines

import "math"

/*
 * Screen layout. The apothem a (center to edge midpoint) is the single
 * scale parameter: a hexagon is 2a wide flat-to-flat, each row is
 * indented half a hexagon per cell of width it lacks against the
 * center row, and the vertical pitch is 1.5 times the center-to-vertex
 * distance d = 2a/sqrt(3).
 */

// ToScreen maps a tile position to the pixel center of its hexagon.
// Coordinates are relative to the board's top-left corner; callers add
// their own border and centering shift.
func ToScreen(size, x, y int, apothem float64) (float64, float64) {
	rowWidth := CellCountInRow(size, y)
	maxRowWidth := RowCount(size)

	screenX := apothem*float64(maxRowWidth-rowWidth) +
		2*apothem*float64(x) +
		apothem

	d := 2 * apothem / math.Sqrt(3)
	screenY := math.Floor(float64(y)*1.5*d + d)

	return screenX, screenY
}

// ToGame inverts ToScreen for hit-testing. It is total: positions off
// the board come back as coordinates that fail validation, never as a
// panic, which is why CellCountInRow must accept any row.
func ToGame(size int, screenX, screenY, apothem float64) (int, int) {
	d := 2 * apothem / math.Sqrt(3)
	y := int(math.Round((screenY - d) / (1.5 * d)))

	rowWidth := CellCountInRow(size, y)
	maxRowWidth := RowCount(size)

	sx := screenX - apothem - apothem*float64(maxRowWidth-rowWidth)
	x := int(math.Round(sx / apothem / 2))

	return x, y
}

// Fit computes the largest apothem that fits a board of the given size
// inside a width x height viewport with a border on all sides, plus
// the horizontal shift that centers a height-constrained board.
func Fit(width, height, border float64, size int) (apothem, hshift float64) {
	maxRowWidth := float64(2*size - 1)

	horizontalApothem := (width - 2*border) / (2 * maxRowWidth)

	/*
	 * Stacked rows advance 1.5 center-to-vertex distances each, plus
	 * one more for the final row's bottom vertex: 3n+1 half-distances.
	 */
	numRows := float64(2*size - 1)
	dVertex := (height - 2*border) / (3*numRows + 1) * 2
	verticalApothem := dVertex * math.Sqrt(3) / 2

	apothem = min(horizontalApothem, verticalApothem)
	if verticalApothem == apothem {
		/* height-constrained: center the board horizontally */
		hshift = math.Floor((width-apothem*2*maxRowWidth)/2 - border)
	}
	return apothem, hshift
}
