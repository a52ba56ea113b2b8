package mines

import (
	"fmt"
	"time"
)

const alertTitle = "Minesweeper"

// Outcome classifies one evaluation pass. Won and Lost are terminal:
// the session is already restarted by the time the caller sees them.
type Outcome int8

const (
	Ongoing Outcome = iota
	Won
	Lost
)

func (o Outcome) String() string {
	switch o {
	case Won:
		return "won"
	case Lost:
		return "lost"
	default:
		return "ongoing"
	}
}

/*
 * checkGameOver runs after every reveal and flag toggle, in strict
 * priority order:
 *
 *   (A) mines not generated yet -> ongoing, nothing to evaluate
 *   (B) no safe tile hidden     -> won
 *   (C) any mine revealed       -> lost
 *   (D) otherwise               -> ongoing
 *
 * A terminal outcome force-reveals everything except flags, alerts the
 * player, and restarts a fresh session with the same parameters.
 */
func (g *Game) checkGameOver(ui UI) Outcome {
	if !g.minesGenerated {
		ui.Redraw()
		return Ongoing
	}

	safeHidden := 0
	mineRevealed := false
	for y := range g.rows {
		for x := range g.rows[y] {
			t := &g.rows[y][x]
			if !t.mine && !t.revealed {
				safeHidden++
			}
			if t.mine && t.revealed {
				mineRevealed = true
			}
		}
	}

	if safeHidden == 0 {
		elapsed := time.Since(g.sessionStart)
		g.revealBoard()
		ui.Redraw()
		Log.WithField("duration", elapsed).Info("game won")
		ui.Alert(alertTitle, fmt.Sprintf(
			"Congratulations!\nYou won the game in %s.",
			formatWinDuration(elapsed),
		))
		g.Restart()
		ui.Redraw()
		return Won
	}

	if mineRevealed {
		g.revealBoard()
		ui.Redraw()
		Log.Info("game lost")
		ui.Alert(alertTitle, "Game over.\nTry again!")
		g.Restart()
		ui.Redraw()
		return Lost
	}

	ui.Redraw()
	return Ongoing
}

// revealBoard discloses the whole board. Reveal skips flagged tiles,
// so misplaced flags stay visible on the final screen.
func (g *Game) revealBoard() {
	for y := range g.rows {
		for x := range g.rows[y] {
			g.rows[y][x].Reveal()
		}
	}
}

// formatWinDuration spells out an elapsed time in whole minutes and
// seconds: "1 second", "42 seconds", "2 minutes and 1 second".
func formatWinDuration(elapsed time.Duration) string {
	total := int(elapsed.Seconds())
	mins, secs := total/60, total%60

	seconds := iif(secs == 1, "1 second", fmt.Sprintf("%d seconds", secs))
	if mins == 0 {
		return seconds
	}
	minutes := iif(mins == 1, "1 minute", fmt.Sprintf("%d minutes", mins))
	return minutes + " and " + seconds
}

// flagLimitMessage explains a refused flag. The limit equals the mine
// count, so a full set with the game still running means at least one
// flag is wrong.
func flagLimitMessage(mineCount int) string {
	return fmt.Sprintf(
		"You've reached the flag limit of %d.\n"+
			"This means that at least one of your flags is incorrectly placed.\n"+
			"Removing any incorrect flags will allow you to win the game.",
		mineCount,
	)
}
