package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/flappy-dragon/internal/config"
	"github.com/vovakirdan/flappy-dragon/internal/core"
	"github.com/vovakirdan/flappy-dragon/internal/games/dragon"
)

// Options configures a Model.
type Options struct {
	FPS      int                // Frames per second; defaults to 60
	Keys     KeyMap             // Key bindings; defaults to DefaultKeyMap
	Logger   *log.Logger        // Event log; defaults to discarding
	Renderer *lipgloss.Renderer // Color renderer; defaults to the local terminal
	WorldW   int                // World columns; defaults to the dragon world
	WorldH   int                // World rows; defaults to the dragon world
}

// Model is the Bubble Tea model that drives one game.
type Model struct {
	game       core.Game
	ctx        *core.Context
	keys       KeyMap
	help       help.Model
	styles     *Styles
	logger     *log.Logger
	fps        int
	pending    core.Action // Last action pressed since the previous frame
	lastTick   time.Time
	lastStatus core.Status
	quitting   bool
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game core.Game, opts Options) Model {
	if opts.FPS <= 0 {
		opts.FPS = config.Default().Display.FPS
	}
	if opts.Keys.Flap.Keys() == nil {
		opts.Keys = DefaultKeyMap()
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	if opts.WorldW <= 0 || opts.WorldH <= 0 {
		opts.WorldW, opts.WorldH = dragon.ScreenWidth, dragon.ScreenHeight
	}

	return Model{
		game:       game,
		ctx:        core.NewContext(opts.WorldW, opts.WorldH),
		keys:       opts.Keys,
		help:       help.New(),
		styles:     NewStyles(opts.Renderer),
		logger:     opts.Logger,
		fps:        opts.FPS,
		lastStatus: game.Status(),
	}
}

// Init starts the frame loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.fps)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey records the action for the next frame.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.ForceQuit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Screenshot):
		if path, err := m.saveScreenshot(); err != nil {
			m.logger.Warn("screenshot failed", "error", err)
		} else {
			m.logger.Info("screenshot saved", "path", path)
		}
		return m, nil
	}

	if action := m.keys.Action(msg); action != core.ActionNone {
		m.pending = action
	}
	return m, nil
}

// handleTick runs one game frame with the real time elapsed since the last one.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	if !m.lastTick.IsZero() {
		m.ctx.FrameTimeMs = float64(now.Sub(m.lastTick)) / float64(time.Millisecond)
	}
	m.lastTick = now
	m.ctx.Key = m.pending
	m.pending = core.ActionNone

	m.game.Tick(m.ctx)
	m.ctx.ResetInput()
	m.logTransition()

	if m.ctx.Quitting {
		m.quitting = true
		return m, tea.Quit
	}
	return m, tickCmd(m.fps)
}

// logTransition logs mode changes between frames.
func (m *Model) logTransition() {
	status := m.game.Status()
	prev := m.lastStatus
	m.lastStatus = status

	if status.Mode == prev.Mode {
		if status.Score > prev.Score {
			m.logger.Debug("obstacle passed", "score", status.Score)
		}
		return
	}

	switch {
	case status.Over:
		m.logger.Info("run ended", "score", status.Score)
	case prev.Over:
		m.logger.Info("run restarted", "previous", prev.Score)
	default:
		m.logger.Info("mode changed", "from", prev.Mode, "to", status.Mode)
	}
}

// saveScreenshot saves the current frame to a text file.
func (m *Model) saveScreenshot() (string, error) {
	dir := config.UserPath("screenshots")
	if dir == "" {
		return "", fmt.Errorf("tui: no home directory for screenshots")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("tui: cannot create %s: %w", dir, err)
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("dragon_%s.txt", timestamp))

	if err := os.WriteFile(path, []byte(RenderPlain(m.ctx)), 0o600); err != nil {
		return "", fmt.Errorf("tui: cannot write screenshot: %w", err)
	}
	return path, nil
}

// View renders the last frame and the key help footer.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	return RenderContext(m.ctx, m.styles) + "\n" + m.help.View(m.keys)
}

// Quitting reports whether the model has asked the program to exit.
func (m Model) Quitting() bool {
	return m.quitting
}

// Run starts the Bubble Tea program for the given game on the local terminal.
func Run(game core.Game, opts Options) error {
	model := NewModel(game, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
