package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/eggdrop/internal/config"
	"github.com/vovakirdan/eggdrop/internal/core"
	"github.com/vovakirdan/eggdrop/internal/games/catch"
	"github.com/vovakirdan/eggdrop/internal/registry"
	"github.com/vovakirdan/eggdrop/internal/replay"
	"github.com/vovakirdan/eggdrop/internal/storage"
)

// DefaultHoldTicks is how long a key press counts as held. Terminals send
// no key-up events, so a held key shows up as a stream of repeats.
const DefaultHoldTicks = 8

// Options configures a game model.
type Options struct {
	Store      *storage.Store // Replay journal; nil disables recording
	Logger     *log.Logger    // Game events are logged here; nil discards them
	Record     bool
	Difficulty string
	HoldTicks  int
	QuitOnBack bool           // Back ends the Bubble Tea program; set when the model runs on its own
	Replay     *replay.Source // Drive the game from a recording instead of the keyboard
}

// configured is implemented by games whose runs can be recorded.
type configured interface {
	Config() config.CatchConfig
}

// playfield is implemented by games that map mouse columns to their own units.
type playfield interface {
	PlayfieldWidth() float64
}

// Model is the Bubble Tea model for running a game.
type Model struct {
	game      registry.Game
	screen    *core.Screen
	config    core.RuntimeConfig
	opts      Options
	logger    *log.Logger
	keyMapper *KeyMapper
	help      help.Model
	showHelp  bool

	held    map[core.Action]int // Remaining ticks per held direction
	oneShot core.InputFrame     // Commands for the next tick only
	pointer core.Pointer

	gameState  core.GameState
	recorder   *replay.Recorder
	lastSaved  int64
	saveErr    error
	quitting   bool
	backToMenu bool
}

// NewModel creates a new Bubble Tea model for the given game and resets it.
func NewModel(game registry.Game, cfg core.RuntimeConfig, opts Options) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 && opts.Replay == nil {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultConfig().TickRate
	}
	if opts.HoldTicks <= 0 {
		opts.HoldTicks = DefaultHoldTicks
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	game.Reset(cfg)

	m := Model{
		game:      game,
		screen:    core.NewScreen(cfg.ScreenW, cfg.ScreenH-1),
		config:    cfg,
		opts:      opts,
		logger:    logger,
		keyMapper: NewKeyMapper(),
		help:      help.New(),
		held:      make(map[core.Action]int),
		oneShot:   core.NewInputFrame(),
		gameState: game.State(),
	}
	m.help.Width = cfg.ScreenW

	if c, ok := game.(configured); ok && opts.Record && opts.Store != nil && opts.Replay == nil {
		m.recorder = replay.NewRecorder(game.ID(), cfg.Seed, cfg.TickRate, opts.Difficulty, c.Config())
	}

	logger.Info("game started", "game", game.ID(), "seed", cfg.Seed, "tick_rate", cfg.TickRate, "difficulty", opts.Difficulty)
	return m
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	keys := m.keyMapper.Keys()
	switch msg.String() {
	case keys.Help.Keys()[0]:
		m.showHelp = !m.showHelp
		return m, nil
	case keys.Screenshot.Keys()[0]:
		m.saveScreenshot()
		return m, nil
	}

	action, isQuit := m.keyMapper.MapKey(msg)
	if isQuit {
		m.finishRecording()
		m.quitting = true
		return m, tea.Quit
	}

	if action == core.ActionBack && (m.gameState.GameOver || m.gameState.Paused || m.opts.Replay != nil) {
		m.finishRecording()
		m.backToMenu = true
		if m.opts.QuitOnBack {
			return m, tea.Quit
		}
		return m, nil
	}

	// Recordings play back their own input
	if m.opts.Replay != nil || action == core.ActionNone {
		return m, nil
	}

	if IsHeld(action) {
		m.held[action] = m.opts.HoldTicks
		// Pressing the opposite direction cancels the held one
		if action == core.ActionLeft {
			delete(m.held, core.ActionRight)
		} else {
			delete(m.held, core.ActionLeft)
		}
		m.pointer.Active = false
		return m, nil
	}

	m.oneShot.Set(action)
	return m, nil
}

// handleMouse turns mouse movement into a pointer target.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if m.opts.Replay != nil || m.screen.Width() == 0 {
		return m, nil
	}
	m.pointer = core.Pointer{X: m.columnToField(msg.X), Active: true}
	return m, nil
}

// columnToField converts a screen column to a playfield X at the column centre.
func (m Model) columnToField(col int) float64 {
	width := float64(m.screen.Width())
	if p, ok := m.game.(playfield); ok && p.PlayfieldWidth() > 0 {
		return (float64(col) + 0.5) / width * p.PlayfieldWidth()
	}
	return float64(col) + 0.5
}

// handleResize processes window resize events.
// The playfield scales to the screen, so the game keeps running.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height-1)
	m.help.Width = msg.Width
	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.opts.Replay != nil && m.opts.Replay.Done() {
		return m, tickCmd(m.config.TickRate)
	}

	in := m.currentInput()
	if m.recorder != nil {
		m.recorder.Record(in)
	}

	result := m.game.Step(in)
	m.gameState = result.State
	m.logEvents(result.Events)

	m.oneShot.Clear()
	for a, n := range m.held {
		if n <= 1 {
			delete(m.held, a)
		} else {
			m.held[a] = n - 1
		}
	}

	return m, tickCmd(m.config.TickRate)
}

// currentInput assembles the frame for this tick.
func (m Model) currentInput() core.InputFrame {
	if m.opts.Replay != nil {
		return m.opts.Replay.Next()
	}
	in := m.oneShot.Clone()
	for a := range m.held {
		in.Set(a)
	}
	in.Pointer = m.pointer
	return in
}

func (m Model) logEvents(events []core.Event) {
	for _, ev := range events {
		if _, over := ev.(catch.GameOverEvent); over {
			m.logger.Info(ev.EventName(), ev.Fields()...)
			continue
		}
		m.logger.Debug(ev.EventName(), ev.Fields()...)
	}
}

// finishRecording saves the recording once. Failures are logged, the
// game itself never depends on the journal.
func (m *Model) finishRecording() {
	if m.recorder == nil {
		return
	}
	rec := m.recorder
	m.recorder = nil
	if rec.Ticks() == 0 {
		return
	}
	id, err := rec.Save(m.opts.Store)
	if err != nil {
		m.saveErr = err
		m.logger.Warn("could not save replay", "error", err)
		return
	}
	m.lastSaved = id
	m.logger.Info("replay saved", "id", id, "ticks", rec.Ticks())
}

// SavedRun returns the journal ID of the recording saved on exit, or 0.
func (m Model) SavedRun() int64 {
	return m.lastSaved
}

// SaveError returns the error from saving the recording, if any.
func (m Model) SaveError() error {
	return m.saveErr
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		return
	}
	dir := filepath.Join(home, ".eggdrop", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("could not create screenshot directory", "error", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("could not save screenshot", "error", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting || (m.backToMenu && m.opts.QuitOnBack) {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen) + "\n" + m.statusLine()
}

// statusLine is the row under the playfield: key help or a hint.
func (m Model) statusLine() string {
	if m.opts.Replay != nil {
		src := m.opts.Replay
		return dimStyle.Render(fmt.Sprintf(" replay %d/%d  b: back  q: quit", src.Tick(), src.Total()))
	}
	if m.showHelp {
		return m.help.ShortHelpView(m.keyMapper.Keys().ShortHelp())
	}
	return dimStyle.Render(" ? help")
}

// IsQuitting returns true if user requested to quit entirely.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// State returns the last known game state.
func (m Model) State() core.GameState {
	return m.gameState
}

// Run starts the Bubble Tea program with the given model and returns the
// final model so callers can report on the saved recording.
func Run(game registry.Game, cfg core.RuntimeConfig, opts Options) (Model, error) {
	opts.QuitOnBack = true
	model := NewModel(game, cfg, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseAllMotion(),
	)

	final, err := p.Run()
	if fm, ok := final.(Model); ok {
		return fm, err
	}
	return model, err
}

// RunReplay plays a recording in the terminal with its own seed and tick rate.
func RunReplay(l replay.Log, cfg core.RuntimeConfig, opts Options) error {
	game, err := replay.NewGame(l)
	if err != nil {
		return err
	}
	cfg.Seed = l.Seed
	cfg.TickRate = l.TickRate
	opts.Replay = replay.NewSource(l)
	opts.Record = false
	_, err = Run(game, cfg, opts)
	return err
}
