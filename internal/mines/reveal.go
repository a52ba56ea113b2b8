package mines

// PrimaryClick handles a reveal at a raw screen position. Off-board
// positions and flagged tiles are silent no-ops. The first successful
// click places the mines before revealing anything.
func (g *Game) PrimaryClick(screenX, screenY, apothem float64, ui UI) {
	x, y := ToGame(g.size, screenX, screenY, apothem)
	if !g.IsPositionValid(x, y) {
		return
	}
	if g.Tile(x, y).HasFlag() {
		/* flags guard against accidental reveals */
		return
	}

	g.tryGenerateMines(x, y)

	g.Tile(x, y).Reveal()

	if g.AdjacentMineCount(x, y) > 0 {
		/* a numbered tile opens alone */
		ui.Redraw()
		g.checkGameOver(ui)
		return
	}

	g.revealFrom(x, y)
	ui.Redraw()
	g.checkGameOver(ui)
}

/*
 * Queue-based flood fill. Pop the frontier head, reveal it, reveal
 * every neighbor, and extend the frontier only with neighbors that
 * have no adjacent mines of their own. Numbered tiles are therefore
 * revealed as a border ring but never expanded, and the completed set
 * keeps each coordinate from being processed twice. Reveal itself
 * skips flagged tiles, so the fill flows around flags without
 * disturbing them.
 */
func (g *Game) revealFrom(x, y int) {
	frontier := []Coord{{x, y}}
	completed := make(map[Coord]bool)

	for len(frontier) > 0 {
		current := frontier[0]
		frontier = frontier[1:]
		if completed[current] {
			continue
		}
		completed[current] = true

		g.tileAt(current).Reveal()

		for _, adj := range AdjacentCoords(g.size, current.X, current.Y) {
			g.tileAt(adj).Reveal()
			if g.AdjacentMineCount(adj.X, adj.Y) == 0 {
				frontier = append(frontier, adj)
			}
		}
	}
}

// SecondaryClick toggles a flag at a raw screen position. Off-board
// positions and revealed tiles are silent no-ops. Planting a flag
// beyond the flag limit is refused with an alert and no state change.
func (g *Game) SecondaryClick(screenX, screenY, apothem float64, ui UI) {
	x, y := ToGame(g.size, screenX, screenY, apothem)
	if !g.IsPositionValid(x, y) {
		return
	}
	tile := g.Tile(x, y)
	if !tile.CanToggleFlag() {
		return
	}

	if !tile.HasFlag() {
		if g.FlagLimitReached() {
			ui.Alert(alertTitle, flagLimitMessage(g.mineCount))
			return
		}
		tile.SetFlag()
	} else {
		tile.UnsetFlag()
	}

	g.checkGameOver(ui)
}
