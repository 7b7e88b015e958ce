package tui

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/dome-defender/internal/core"
	"github.com/vovakirdan/dome-defender/internal/registry"
)

var (
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("11"))
	pausedStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("208"))
)

// Options tune the host.
type Options struct {
	HoldWindow time.Duration // how long a key reads as held, see Keyboard
	Logger     *log.Logger
}

// Model is the Bubble Tea model running one game.
type Model struct {
	game     registry.Game
	title    string
	buffer   *core.CellBuffer
	renderer *Renderer
	keyboard *Keyboard
	timer    *FrameTimer
	keys     KeyMap
	config   core.RuntimeConfig
	logger   *log.Logger
	paused   bool
	quitting bool
	frames   *int
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game registry.Game, cfg core.RuntimeConfig, opts Options) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = DefaultTickRate
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	worldW, worldH := registry.Dimensions(game)
	return Model{
		game:     game,
		title:    registry.TitleOf(game),
		buffer:   core.NewCellBuffer(cfg.ScreenW, playRows(cfg.ScreenH), worldW, worldH),
		renderer: NewRenderer(),
		keyboard: NewKeyboard(opts.HoldWindow),
		timer:    NewFrameTimer(),
		keys:     DefaultKeyMap(),
		config:   cfg,
		logger:   logger,
		frames:   new(int),
	}
}

// playRows leaves the last terminal row for the status line.
func playRows(screenH int) int {
	return max(screenH-1, 1)
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	// Reset may rebuild the playfield
	m.buffer.SetWorld(registry.Dimensions(m.game))
	m.timer.Reset()
	m.logger.Info("game started", "game", m.game.ID(), "seed", m.config.Seed, "fps", m.config.TickRate)

	return tea.Batch(tea.SetWindowTitle(m.title), tickCmd(m.config.TickRate))
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Pause):
		m.paused = !m.paused
		m.keyboard.ReleaseAll()
		m.timer.Reset()
		return m, nil
	}

	if !m.paused {
		m.keyboard.Press(MapKey(msg))
	}
	return m, nil
}

// handleResize changes the viewport; the simulation keeps its world size.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.buffer.Resize(msg.Width, playRows(msg.Height))
	return m, nil
}

// handleTick runs one frame of the game.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.quitting {
		return m, nil
	}
	if m.paused {
		return m, tickCmd(m.config.TickRate)
	}

	m.timer.Tick()
	if !m.game.Tic(m.keyboard, m.timer) {
		m.logger.Info("game ended", "game", m.game.ID(), "frames", *m.frames)
		m.quitting = true
		return m, tea.Quit
	}
	*m.frames++

	return m, tickCmd(m.config.TickRate)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Draw(m.buffer)
	return m.renderer.Render(m.buffer) + "\n" + m.statusLine()
}

func (m Model) statusLine() string {
	status := titleStyle.Render(m.title)
	if m.paused {
		status += " " + pausedStyle.Render("PAUSED")
	}
	for _, b := range m.keys.GameHelp() {
		h := b.Help()
		status += statusStyle.Render(fmt.Sprintf("  %s %s", h.Key, h.Desc))
	}
	return status
}

// Frames returns the number of frames simulated so far.
func (m Model) Frames() int {
	return *m.frames
}

// Paused reports whether the simulation is paused.
func (m Model) Paused() bool {
	return m.paused
}

// Run starts the Bubble Tea program with the given game.
func Run(game registry.Game, cfg core.RuntimeConfig, opts Options) error {
	model := NewModel(game, cfg, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
