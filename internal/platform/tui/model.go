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

	"github.com/pallasting/ICE-Climber/internal/core"
	"github.com/pallasting/ICE-Climber/internal/registry"
	"github.com/pallasting/ICE-Climber/internal/storage"
)

// helpRows is reserved under the playfield for the key help line.
const helpRows = 1

// logger receives platform logs; silent unless SetLogger is called.
var logger = log.New(io.Discard)

// SetLogger sets the logger used by the terminal loop and the SSH server.
func SetLogger(l *log.Logger) {
	if l != nil {
		logger = l
	}
}

var helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

// Model is the Bubble Tea model for running one climb.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	store      *storage.Store
	config     core.RuntimeConfig
	keys       *KeyMapper
	help       help.Model
	inputFrame core.MultiInputFrame
	gameState  core.GameState
	width      int
	height     int
	loop       int64
	quitting   bool
	backToMenu bool
	runSaved   bool // Whether the run has been saved for current game over
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	players := 1
	if game.ID() == "climb_coop" {
		players = 2
	}

	width, height := cfg.ScreenW, cfg.ScreenH
	cfg.ScreenH = max(1, height-helpRows)

	h := help.New()
	h.Width = width

	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:      store,
		config:     cfg,
		keys:       NewKeyMapper(players),
		help:       h,
		inputFrame: core.NewMultiInputFrame(),
		width:      width,
		height:     height,
		loop:       newLoop(),
	}
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	m.loadRecord()
	logger.Info("run started", "mode", m.game.ID(), "seed", m.config.Seed)

	return tickCmd(m.config.TickRate, m.loop)
}

// loadRecord shows the stored best run in games that display it.
func (m Model) loadRecord() {
	rv, ok := m.game.(registry.RecordViewer)
	if !ok || m.store == nil {
		return
	}
	rec, err := m.store.Records(m.game.ID())
	if err != nil {
		logger.Warn("could not read records", "mode", m.game.ID(), "err", err)
		return
	}
	rv.SetRecord(rec.BestScore, rec.BestAltitude)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		if msg.Loop != m.loop {
			return m, nil
		}
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Screenshot):
		m.saveScreenshot()
		return m, nil
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		m.layout()
		return m, nil
	case key.Matches(msg, m.keys.Back) && (m.gameState.GameOver || m.gameState.Paused):
		m.backToMenu = true
		return m, tea.Quit
	}

	if m.keys.MapKeyToMultiFrame(msg, &m.inputFrame) {
		m.quitting = true
		return m, tea.Quit
	}

	return m, nil
}

// handleResize processes window resize events.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.width = msg.Width
	m.height = msg.Height
	m.help.Width = msg.Width
	m.layout()

	return m, nil
}

// layout fits the playfield above the help view.
func (m *Model) layout() {
	m.config.ScreenW = m.width
	m.config.ScreenH = max(1, m.height-m.helpHeight())
	m.screen.Resize(m.config.ScreenW, m.config.ScreenH)

	// Keep the run when the game can adapt, otherwise restart it
	if r, ok := m.game.(registry.Resizer); ok {
		r.Resize(m.config.ScreenW, m.config.ScreenH)
	} else if !m.gameState.GameOver {
		m.game.Reset(m.config)
	}
}

func (m Model) helpHeight() int {
	if !m.help.ShowAll {
		return helpRows
	}
	rows := 0
	for _, group := range m.keys.FullHelp() {
		rows = max(rows, len(group))
	}
	return rows
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	// Check for restart
	if m.inputFrame.Player1().Has(core.ActionRestart) && m.gameState.GameOver {
		// Reset seed for new run
		m.config.Seed = time.Now().UnixNano()
		m.game.Reset(m.config)
		m.loadRecord()
		m.gameState = m.game.State()
		m.runSaved = false
		m.inputFrame.Clear()
		logger.Info("run restarted", "mode", m.game.ID(), "seed", m.config.Seed)
		return m, tickCmd(m.config.TickRate, m.loop)
	}

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State

	// Save the run on game over (once)
	if m.gameState.GameOver && !m.runSaved {
		m.saveRun()
		m.runSaved = true
	}

	// Clear input for next frame
	m.inputFrame.Clear()

	// Continue ticking
	return m, tickCmd(m.config.TickRate, m.loop)
}

// saveRun stores the finished run. Failures are logged and play continues.
func (m Model) saveRun() {
	if m.store == nil || m.gameState.Ticks == 0 {
		return
	}
	id, err := m.store.SaveRun(storage.Run{
		Mode:     m.game.ID(),
		Score:    m.gameState.Score,
		Altitude: m.gameState.Altitude,
		Players:  m.gameState.Players,
		Ticks:    m.gameState.Ticks,
		Seed:     m.config.Seed,
	})
	if err != nil {
		logger.Warn("could not save run", "mode", m.game.ID(), "err", err)
		return
	}
	logger.Debug("run saved", "id", id, "score", m.gameState.Score, "altitude", m.gameState.Altitude)
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	// Render current state
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		return
	}
	dir := filepath.Join(home, ".icetower", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	// Generate filename with timestamp
	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp)
	path := filepath.Join(dir, filename)

	//nolint:errcheck // Best-effort save, game continues regardless
	os.WriteFile(path, []byte(m.screen.String()), 0o600)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen) + "\n" + helpStyle.Render(m.help.View(m.keys))
}

// IsQuitting returns true if user requested to quit entirely.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to the menu.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// Run starts the Bubble Tea program with the given game.
// It reports whether the player asked to go back to the menu.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig) (backToMenu bool, err error) {
	model := NewModel(game, store, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	final, err := p.Run()
	if err != nil {
		return false, err
	}
	if fm, ok := final.(Model); ok {
		return fm.BackToMenu(), nil
	}
	return false, nil
}
