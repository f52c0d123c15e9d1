package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/binary-breaker/internal/breaker"
	"github.com/vovakirdan/binary-breaker/internal/core"
	"github.com/vovakirdan/binary-breaker/internal/display"
	"github.com/vovakirdan/binary-breaker/internal/hw"
)

// Options configures a terminal session.
type Options struct {
	Rules      breaker.Rules
	Debounce   time.Duration
	HoldWindow time.Duration
	Seed       int64 // 0 picks a time-based seed
	Scores     breaker.HighScores
	Logger     *log.Logger
	Clock      core.Clock // nil uses the system clock
}

// Model is the Bubble Tea model for a game session.
// The controller and the virtual devices live behind pointers, so copies
// of the model made by Bubble Tea share them.
type Model struct {
	ctrl  *breaker.Controller
	input *KeyInput
	dev   *devices

	keys     KeyMap
	help     help.Model
	tick     time.Duration
	width    int
	height   int
	quitting bool
}

// NewModel wires the controller to the terminal devices and runs its
// startup sequence.
func NewModel(opts Options) (Model, error) {
	clock := opts.Clock
	if clock == nil {
		clock = core.NewSystemClock()
	}

	// Use time-based seed if not specified
	seed := opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	dev := &devices{}
	input := NewKeyInput(clock, opts.Debounce, opts.HoldWindow)

	ctrl, err := breaker.NewController(breaker.Deps{
		Input:   input,
		Display: display.NewRenderer(dev),
		Sound:   hw.NewPlayer(dev, clock),
		Lamps:   hw.NewLamps(dev, clock),
		Scores:  opts.Scores,
		Clock:   clock,
		Logger:  opts.Logger,
	}, opts.Rules, breaker.NewTaskGenerator(seed))
	if err != nil {
		return Model{}, err
	}
	ctrl.Start()

	return Model{
		ctrl:  ctrl,
		input: input,
		dev:   dev,
		keys:  DefaultKeyMap(),
		help:  help.New(),
		tick:  opts.Rules.TickInterval,
	}, nil
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.tick)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		m.ctrl.Tick()
		return m, tickCmd(m.tick)
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		m.ctrl.Close()
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	m.input.Press(m.keys.Button(msg))
	return m, nil
}

// State returns a copy of the game state.
func (m Model) State() breaker.GameState {
	return m.ctrl.State()
}

// View renders the device and the key help.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	view := lipgloss.JoinVertical(lipgloss.Center,
		RenderDevice(m.dev.frame, m.dev.green, m.dev.red, m.dev.tone),
		"",
		helpStyle.Render(m.help.View(m.keys)),
	)

	if m.width > 0 && m.height > 0 {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, view)
	}
	return view
}

// Run starts the Bubble Tea program for one terminal session.
func Run(opts Options) error {
	model, err := NewModel(opts)
	if err != nil {
		return err
	}

	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err = p.Run()

	// Covers exits that did not go through the quit key
	model.ctrl.Close()
	return err
}
