package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/registry"
	"github.com/vovakirdan/tui-snake/internal/storage"
)

const (
	inspectorWidth = 30 // Panel width including border
	helpHeight     = 1
)

// GameModel runs one game inside Bubble Tea: it collects key presses into
// an input frame, steps the game on every frame tick and saves a session
// summary when a run ends.
type GameModel struct {
	game       registry.Game
	screen     *core.Screen
	store      *storage.Store
	config     core.RuntimeConfig
	inputFrame core.InputFrame
	gameState  core.GameState
	keys       KeyMap
	help       help.Model
	logger     *log.Logger
	tickGen    uint64

	player        string
	started       time.Time
	screenshotDir string
	status        string // One-line feedback shown next to the help bar
	width         int
	height        int

	showInspector bool
	embedded      bool // Back returns to a parent model instead of quitting
	quitting      bool
	backToMenu    bool
}

// NewGameModel creates a model for the given game. A zero seed is replaced
// with a time-based one.
func NewGameModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, player string) GameModel {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultConfig().TickRate
	}

	m := GameModel{
		game:          game,
		store:         store,
		config:        cfg,
		inputFrame:    core.NewInputFrame(),
		keys:          DefaultKeyMap(),
		help:          help.New(),
		logger:        log.Default().WithPrefix("tui"),
		tickGen:       nextTickGen(),
		player:        player,
		started:       time.Now(),
		screenshotDir: defaultScreenshotDir(),
		width:         cfg.ScreenW,
		height:        cfg.ScreenH,
	}
	m.screen = core.NewScreen(m.screenSize())
	m.config.ScreenW, m.config.ScreenH = m.screenSize()
	return m
}

func defaultScreenshotDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".snake", "screenshots")
	}
	return filepath.Join(home, ".snake", "screenshots")
}

// screenSize returns the game screen size left after the help bar and,
// when open, the inspector panel.
func (m GameModel) screenSize() (int, int) {
	w := m.width
	if m.showInspector {
		w -= inspectorWidth
	}
	return max(w, 0), max(m.height-helpHeight, 0)
}

// Init starts the game and the frame loop.
func (m GameModel) Init() tea.Cmd {
	m.game.Reset(m.config)
	return tickCmd(m.config.TickRate, m.tickGen)
}

// Update handles messages and updates the model state.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.resizeScreen()
		return m, nil

	case TickMsg:
		if msg.Gen != m.tickGen {
			return m, nil
		}
		return m.handleTick()
	}

	return m, nil
}

// resizeScreen applies the current layout to the screen buffer. The game
// keeps running; rendering adapts to whatever size it gets.
func (m *GameModel) resizeScreen() {
	w, h := m.screenSize()
	m.config.ScreenW = w
	m.config.ScreenH = h
	m.screen.Resize(w, h)
}

// handleKey processes keyboard input.
func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Screenshot) {
		m.saveScreenshot()
		return m, nil
	}

	switch action := m.keys.Action(msg); action {
	case core.ActionNone:
		return m, nil

	case core.ActionQuit:
		m.endSession()
		m.quitting = true
		return m, tea.Quit

	case core.ActionBack:
		m.endSession()
		if !m.embedded {
			m.quitting = true
			return m, tea.Quit
		}
		m.backToMenu = true
		return m, nil

	case core.ActionInspector:
		m.showInspector = !m.showInspector
		m.resizeScreen()
		return m, nil

	default:
		m.inputFrame.Set(action)
		return m, nil
	}
}

// handleTick runs one frame with the keys pressed since the previous one.
func (m GameModel) handleTick() (tea.Model, tea.Cmd) {
	if m.inputFrame.Has(core.ActionRestart) {
		m.endSession()
		m.started = time.Now()
		m.status = ""
	}

	result := m.game.Step(m.inputFrame)
	if result.State.Halted && !m.gameState.Halted {
		m.status = "halted, press r to restart"
	}
	m.gameState = result.State
	m.inputFrame.Clear()

	return m, tickCmd(m.config.TickRate, m.tickGen)
}

// endSession stores a summary of the current run. Runs that never moved
// are not recorded.
func (m *GameModel) endSession() {
	if m.store == nil {
		return
	}
	s, ok := m.game.(registry.Summarizer)
	if !ok {
		return
	}
	sum := s.Summary()
	if sum.Ticks == 0 {
		return
	}

	id, err := m.store.SaveSession(storage.SessionResult{
		GameID:   m.game.ID(),
		Player:   m.player,
		Score:    sum.Score,
		Length:   sum.Length,
		Ticks:    sum.Ticks,
		Duration: time.Since(m.started),
	})
	if err != nil {
		m.logger.Error("save session", "error", err)
		return
	}
	m.logger.Info("session saved", "id", id, "player", m.player, "score", sum.Score, "length", sum.Length)
}

// saveScreenshot writes the current screen as plain text.
func (m *GameModel) saveScreenshot() {
	m.game.Render(m.screen)

	if err := os.MkdirAll(m.screenshotDir, 0o755); err != nil {
		m.logger.Warn("screenshot dir", "error", err)
		m.status = "screenshot failed"
		return
	}

	name := fmt.Sprintf("%s_%s.txt", m.game.ID(), time.Now().Format("20060102_150405"))
	path := filepath.Join(m.screenshotDir, name)
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("screenshot", "error", err)
		m.status = "screenshot failed"
		return
	}
	m.status = "saved " + path
}

// View renders the game screen, the optional inspector and the help bar.
func (m GameModel) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	body := RenderScreen(m.screen)

	if m.showInspector {
		body = lipgloss.JoinHorizontal(lipgloss.Top, body, m.renderInspector())
	}

	footer := helpStyle.Render(m.help.View(m.keys))
	if m.status != "" {
		footer += "  " + statusStyle.Render(m.status)
	}
	return lipgloss.JoinVertical(lipgloss.Left, body, footer)
}

// renderInspector draws the debug side panel.
func (m GameModel) renderInspector() string {
	lines := []string{"no inspector"}
	if in, ok := m.game.(registry.Inspector); ok {
		lines = in.Inspect()
	}
	if f, ok := m.game.(registry.Faulter); ok && f.Fault() != nil {
		lines = append(lines, "", "fault: "+f.Fault().Error())
	}

	maxLines := max(m.height-helpHeight-3, 1)
	if len(lines) > maxLines {
		lines = append(lines[:maxLines-1], "…")
	}

	content := titleStyle.Render("Inspector") + "\n" + strings.Join(lines, "\n")
	return panelStyle.Width(inspectorWidth - 2).Render(content)
}

// IsQuitting returns true if the user requested to quit entirely.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if the user requested to go back to the menu.
func (m GameModel) BackToMenu() bool {
	return m.backToMenu
}

// Run starts a standalone Bubble Tea program for one game.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, player string) error {
	model := NewGameModel(game, store, cfg, player)

	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
