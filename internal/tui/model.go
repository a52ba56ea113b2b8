package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vancomm/hexsweeper/internal/config"
	"github.com/vancomm/hexsweeper/internal/mines"
)

// clickApothem sizes the synthetic screen clicks keyboard and mouse
// input are translated into. The mapper round-trips tile centers
// exactly for any apothem of 2 or more.
const clickApothem = 8

/*
 * Engine callbacks arrive synchronously while a click is being handled,
 * which is mid-Update for a Bubble Tea program. The session is shared
 * by pointer between every copy of the model, so whatever the engine
 * reports during Update is still there when View runs. On a terminal
 * alert the engine restarts the board before the click even returns;
 * the snapshot holds the final position on screen until the player
 * dismisses the dialog.
 */
type session struct {
	game     *mines.Game
	dialog   *dialog
	snapshot string
}

type dialog struct {
	title string
	lines []string
}

// Redraw is a no-op. The program repaints after every message.
func (s *session) Redraw() {}

// Alert captures the board as it stands and raises a dialog over it.
func (s *session) Alert(title, message string) {
	s.snapshot = renderBoard(s.game, mines.Coord{}, false)
	s.dialog = &dialog{title: title, lines: strings.Split(message, "\n")}
}

// dismiss drops the dialog and the board snapshot behind it.
func (s *session) dismiss() {
	s.dialog = nil
	s.snapshot = ""
}

// Model is the Bubble Tea model for the board screen.
type Model struct {
	session    *session
	keys       KeyMap
	help       help.Model
	difficulty config.Difficulty
	cursor     mines.Coord
	width      int
	height     int
	quitting   bool
}

// NewModel builds the board screen around an existing game session.
// The cursor starts on the center tile.
func NewModel(cfg config.Config, game *mines.Game) Model {
	h := help.New()
	h.ShowAll = false

	center := game.Size() - 1
	return Model{
		session:    &session{game: game},
		keys:       DefaultKeyMap(),
		help:       h,
		difficulty: config.ParseDifficulty(cfg.Game.Difficulty),
		cursor:     mines.Coord{X: center, Y: center},
	}
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages for the board screen.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.session.dialog != nil {
		// Any key puts the dialog away, except the hard quit.
		if msg.String() == "ctrl+c" {
			m.quitting = true
			return m, tea.Quit
		}
		m.session.dismiss()
		return m, nil
	}

	g := m.session.game

	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Up):
		m.cursor = clampCursor(g.Size(), m.cursor.X, m.cursor.Y-1)
	case key.Matches(msg, m.keys.Down):
		m.cursor = clampCursor(g.Size(), m.cursor.X, m.cursor.Y+1)
	case key.Matches(msg, m.keys.Left):
		m.cursor = clampCursor(g.Size(), m.cursor.X-1, m.cursor.Y)
	case key.Matches(msg, m.keys.Right):
		m.cursor = clampCursor(g.Size(), m.cursor.X+1, m.cursor.Y)

	case key.Matches(msg, m.keys.Reveal):
		m.clickAt(m.cursor, false)
	case key.Matches(msg, m.keys.Flag):
		m.clickAt(m.cursor, true)

	case key.Matches(msg, m.keys.Easy):
		return m.switchPreset(config.DifficultyEasy)
	case key.Matches(msg, m.keys.Intermediate):
		return m.switchPreset(config.DifficultyIntermediate)
	case key.Matches(msg, m.keys.Advanced):
		return m.switchPreset(config.DifficultyAdvanced)

	case key.Matches(msg, m.keys.Restart):
		g.Restart()
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	}

	return m, nil
}

// handleMouse reveals on left click and flags on right click.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.Action != tea.MouseActionPress {
		return m, nil
	}
	if m.session.dialog != nil {
		m.session.dismiss()
		return m, nil
	}

	c, ok := tileAt(m.session.game.Size(), msg.X, msg.Y)
	if !ok {
		return m, nil
	}
	m.cursor = c

	switch msg.Button {
	case tea.MouseButtonLeft:
		m.clickAt(c, false)
	case tea.MouseButtonRight:
		m.clickAt(c, true)
	}
	return m, nil
}

// clickAt reveals or flags a tile by synthesizing the screen click the
// engine expects.
func (m Model) clickAt(c mines.Coord, flag bool) {
	g := m.session.game
	sx, sy := mines.ToScreen(g.Size(), c.X, c.Y, clickApothem)
	if flag {
		g.SecondaryClick(sx, sy, clickApothem, m.session)
	} else {
		g.PrimaryClick(sx, sy, clickApothem, m.session)
	}
}

// switchPreset reconfigures the session to a difficulty preset.
func (m Model) switchPreset(d config.Difficulty) (tea.Model, tea.Cmd) {
	size, mineCount := d.Board()
	if err := m.session.game.Reconfigure(size, mineCount); err != nil {
		return m, nil
	}
	m.difficulty = d
	m.cursor = clampCursor(size, m.cursor.X, m.cursor.Y)
	return m, nil
}

// clampCursor keeps the cursor on the board when rows change width.
func clampCursor(size, x, y int) mines.Coord {
	y = max(0, min(y, mines.RowCount(size)-1))
	x = max(0, min(x, mines.CellCountInRow(size, y)-1))
	return mines.Coord{X: x, Y: y}
}

// View renders the board screen. The header above the board is exactly
// boardTop lines tall; tileAt depends on that.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(" ")
	b.WriteString(styleTitle.Render("HexSweeper"))
	b.WriteString("\n\n ")
	b.WriteString(styleStatus.Render(m.statusLine()))
	b.WriteString("\n\n")

	if m.session.snapshot != "" {
		b.WriteString(m.session.snapshot)
	} else {
		b.WriteString(renderBoard(m.session.game, m.cursor, true))
	}
	b.WriteString("\n\n")

	if m.session.dialog != nil {
		b.WriteString(m.renderDialog())
		b.WriteString("\n")
	}

	b.WriteString(" ")
	b.WriteString(styleHelp.Render(m.help.View(m.keys)))
	b.WriteString("\n")
	return b.String()
}

func (m Model) statusLine() string {
	g := m.session.game
	return fmt.Sprintf("%s · size %d · %d mines · flags %d/%d",
		m.difficulty, g.Size(), g.MineCount(), g.TotalFlagCount(), g.MineCount())
}

func (m Model) renderDialog() string {
	d := m.session.dialog

	var b strings.Builder
	b.WriteString(styleTitle.Render(d.title))
	for _, line := range d.lines {
		b.WriteString("\n")
		b.WriteString(line)
	}
	b.WriteString("\n")
	b.WriteString(styleAlertHint.Render("press any key to continue"))
	return styleAlertBox.Render(b.String())
}

// Run drives the terminal frontend until the player quits.
func Run(cfg config.Config, game *mines.Game) error {
	p := tea.NewProgram(
		NewModel(cfg, game),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)
	_, err := p.Run()
	return err
}
