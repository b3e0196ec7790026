package catch

import (
	"time"

	"github.com/vovakirdan/eggdrop/internal/config"
	"github.com/vovakirdan/eggdrop/internal/core"
	"github.com/vovakirdan/eggdrop/internal/registry"
)

// GameID is the registry identifier of the egg catching game.
const GameID = "catch"

// configPath stores the custom config path set via CLI
var configPath string

// difficultyPreset stores the difficulty preset set via CLI
var difficultyPreset config.DifficultyPreset

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset. Unknown names clear it.
func SetDifficultyPreset(preset string) {
	p, err := config.ParsePreset(preset)
	if err != nil {
		p = ""
	}
	difficultyPreset = p
}

// LoadConfig returns the configuration New games will use: the file
// found by config.LoadCatch with the CLI preset applied.
func LoadConfig() config.CatchConfig {
	cfg, err := config.LoadCatch(configPath)
	if err != nil {
		cfg = config.DefaultCatchConfig()
	}
	config.ApplyCatchPreset(&cfg, difficultyPreset)
	return cfg
}

// Game adapts Engine to the registry interface. It runs a fixed clock
// that advances one tick interval per Step, handles pause and restart,
// and draws the playfield scaled to the screen.
type Game struct {
	engine  *Engine
	cfg     config.CatchConfig
	pinned  bool // cfg was supplied by the caller and is not reloaded
	runtime core.RuntimeConfig
	clock   time.Duration
	tick    uint64
	paused  bool
}

// New creates a game that loads its configuration on Reset.
func New() *Game {
	return &Game{}
}

// NewWithConfig creates a game that always runs with cfg.
// Replays use it to re-simulate with the recorded configuration.
func NewWithConfig(cfg config.CatchConfig) *Game {
	return &Game{cfg: cfg, pinned: true}
}

// NewWithPreset creates a game from the loaded configuration with preset
// applied on top. Concurrent sessions use it instead of SetDifficultyPreset.
func NewWithPreset(preset config.DifficultyPreset) *Game {
	cfg := LoadConfig()
	config.ApplyCatchPreset(&cfg, preset)
	return NewWithConfig(cfg)
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return GameID
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Egg Catch"
}

// Reset initializes or restarts the game with a new seed.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	if !g.pinned {
		g.cfg = LoadConfig()
	}
	g.engine = NewEngine(g.cfg, runtime.Seed)
	g.clock = 0
	g.tick = 0
	g.paused = false
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.engine == nil {
		g.Reset(core.DefaultConfig())
	}

	running := g.engine.State().Running
	if in.Has(core.ActionRestart) || (!running && in.Has(core.ActionConfirm)) {
		g.engine.Reset()
		g.paused = false
		running = true
	}

	if running && in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	g.clock += g.tickInterval()
	g.tick++
	events := g.engine.Tick(in, g.clock)

	return core.StepResult{State: g.State(), Events: events}
}

// tickInterval returns the simulated time covered by one Step.
func (g *Game) tickInterval() time.Duration {
	rate := g.runtime.TickRate
	if rate <= 0 {
		rate = core.DefaultConfig().TickRate
	}
	return time.Second / time.Duration(rate)
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.engine == nil {
		return core.GameState{}
	}
	s := g.engine.State()
	return core.GameState{
		Score:    s.Score,
		Lives:    s.Lives,
		Level:    s.Level,
		GameOver: !s.Running,
		Paused:   g.paused,
	}
}

// Snapshot returns the engine snapshot for the current tick.
func (g *Game) Snapshot() Snapshot {
	if g.engine == nil {
		return Snapshot{}
	}
	return g.engine.Snapshot()
}

// Config returns the configuration of the running game.
func (g *Game) Config() config.CatchConfig {
	return g.cfg
}

// Ticks returns the number of simulated ticks since Reset.
func (g *Game) Ticks() uint64 {
	return g.tick
}

// PlayfieldWidth returns the logical playfield width, used by the
// frontend to convert mouse columns into playfield units.
func (g *Game) PlayfieldWidth() float64 {
	return g.cfg.Playfield.Width
}

// Register the game with the registry
func init() {
	registry.Register(GameID, func() registry.Game {
		return New()
	})
}
