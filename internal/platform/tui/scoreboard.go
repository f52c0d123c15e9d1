package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/binary-breaker/internal/breaker"
	"github.com/vovakirdan/binary-breaker/internal/core"
	"github.com/vovakirdan/binary-breaker/internal/storage"
)

// Scoreboard is what the scores screen shows. Stats may be nil for
// backends without history.
type Scoreboard struct {
	HighScore int
	Sessions  []storage.SessionEntry
	Stats     *storage.Stats
}

// ScoreboardKeyMap defines the key bindings for the scoreboard.
type ScoreboardKeyMap struct {
	Up   key.Binding
	Down key.Binding
	Quit key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k ScoreboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k ScoreboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

// DefaultScoreboardKeyMap returns default key bindings.
func DefaultScoreboardKeyMap() ScoreboardKeyMap {
	return ScoreboardKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

var frameStyle = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	BorderForeground(lipgloss.Color("240")).
	Padding(0, 1)

var scoreboardColumns = []table.Column{
	{Title: "#", Width: 4},
	{Title: "Score", Width: 7},
	{Title: "Level", Width: 7},
	{Title: "Outcome", Width: 11},
	{Title: "Played", Width: 14},
}

// ScoreboardModel is the Bubble Tea model for the scores screen.
type ScoreboardModel struct {
	board    Scoreboard
	table    table.Model
	help     help.Model
	keys     ScoreboardKeyMap
	quitting bool
}

// NewScoreboardModel builds the scores screen for a terminal of the given
// height.
func NewScoreboardModel(board Scoreboard, height int) ScoreboardModel {
	t := table.New(
		table.WithColumns(scoreboardColumns),
		table.WithRows(sessionRows(board.Sessions)),
		table.WithFocused(true),
		table.WithHeight(tableHeight(height)),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return ScoreboardModel{
		board: board,
		table: t,
		help:  help.New(),
		keys:  DefaultScoreboardKeyMap(),
	}
}

// tableHeight leaves room for the title, summary and help lines.
func tableHeight(termHeight int) int {
	return max(termHeight-9, 5)
}

// sessionRows formats sessions for the table. A won session is marked so
// it stands out when the row is not selected.
func sessionRows(sessions []storage.SessionEntry) []table.Row {
	rows := make([]table.Row, len(sessions))
	for i, s := range sessions {
		outcome := s.Outcome
		if outcome == breaker.OutcomeWin {
			outcome = "★ " + outcome
		}
		played := "-"
		if !s.CreatedAt.IsZero() {
			played = s.CreatedAt.Local().Format("Jan 02 15:04")
		}
		rows[i] = table.Row{
			strconv.Itoa(i + 1),
			strconv.Itoa(s.Score),
			fmt.Sprintf("%d/%d", s.Level, breaker.MaxLevel),
			outcome,
			played,
		}
	}
	return rows
}

// Init implements tea.Model.
func (m ScoreboardModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the scoreboard.
func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Quit) {
			m.quitting = true
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.table.SetHeight(tableHeight(msg.Height))
		m.help.Width = msg.Width
		return m, nil
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the scoreboard.
func (m ScoreboardModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render(fmt.Sprintf("HIGH SCORE: %d", m.board.HighScore)))
	b.WriteString("\n")
	if summary := m.summary(); summary != "" {
		b.WriteString(style(core.ColorGray).Render(summary))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	body := m.table.View()
	if len(m.board.Sessions) == 0 {
		body = style(core.ColorGray).Italic(true).Padding(2, 4).
			Render("No sessions recorded yet.\nPlay a game to set a high score!")
	}
	b.WriteString(frameStyle.Render(body))

	b.WriteString("\n")
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))
	return b.String()
}

func (m ScoreboardModel) summary() string {
	st := m.board.Stats
	if st == nil || st.Sessions == 0 {
		return ""
	}
	return fmt.Sprintf("%d sessions · %d wins · best level %d · avg %.1f",
		st.Sessions, st.Wins, st.BestLevel, st.AvgScore)
}

// RunScoreboard shows the scores screen until the user quits.
func RunScoreboard(board Scoreboard, height int) error {
	p := tea.NewProgram(NewScoreboardModel(board, height), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
