package catch

import (
	"strings"
	"testing"
	"time"

	"github.com/vovakirdan/eggdrop/internal/config"
	"github.com/vovakirdan/eggdrop/internal/core"
	"github.com/vovakirdan/eggdrop/internal/registry"
)

func testRuntime() core.RuntimeConfig {
	return core.RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     42,
	}
}

func TestGameRegistered(t *testing.T) {
	if !registry.Exists(GameID) {
		t.Fatalf("game %q not registered", GameID)
	}
	g, err := registry.Create(GameID)
	if err != nil {
		t.Fatalf("Create() failed: %v", err)
	}
	if g.ID() != GameID || g.Title() == "" {
		t.Errorf("ID/Title = %q/%q", g.ID(), g.Title())
	}
}

func TestGameStepAdvancesClock(t *testing.T) {
	g := NewWithConfig(config.DefaultCatchConfig())
	g.Reset(testRuntime())

	for range 60 {
		g.Step(core.NewInputFrame())
	}
	if g.Ticks() != 60 {
		t.Errorf("Ticks() = %d, expected 60", g.Ticks())
	}
	if now := g.engine.Now(); now < 999*time.Millisecond || now > time.Second {
		t.Errorf("clock after 60 steps = %s, expected about 1s", now)
	}
}

func TestGamePause(t *testing.T) {
	g := NewWithConfig(config.DefaultCatchConfig())
	g.Reset(testRuntime())
	g.Step(core.NewInputFrame())

	pause := core.NewInputFrame()
	pause.Set(core.ActionPause)
	res := g.Step(pause)
	if !res.State.Paused {
		t.Fatal("game should be paused")
	}

	now := g.engine.Now()
	for range 100 {
		g.Step(core.NewInputFrame())
	}
	if g.engine.Now() != now {
		t.Error("clock advanced while paused")
	}

	res = g.Step(pause)
	if res.State.Paused {
		t.Error("second pause press should resume")
	}
}

func TestGameRestart(t *testing.T) {
	g := NewWithConfig(config.DefaultCatchConfig())
	g.Reset(testRuntime())

	// Run until the game ends with the basket idle
	for i := 0; i < 60*60 && !g.State().GameOver; i++ {
		g.Step(core.NewInputFrame())
	}
	if !g.State().GameOver {
		t.Fatal("idle game should end within a minute")
	}

	// Confirm restarts only after game over
	confirm := core.NewInputFrame()
	confirm.Set(core.ActionConfirm)
	res := g.Step(confirm)

	st := res.State
	if st.GameOver || st.Score != 0 || st.Lives != 3 || st.Level != 1 {
		t.Errorf("state after restart = %+v, expected fresh game", st)
	}
	if len(g.Snapshot().Objects) != 1 {
		t.Errorf("restart tick should spawn, objects = %d", len(g.Snapshot().Objects))
	}
}

func TestGameConfirmIgnoredWhileRunning(t *testing.T) {
	g := NewWithConfig(config.DefaultCatchConfig())
	g.Reset(testRuntime())
	for range 30 {
		g.Step(core.NewInputFrame())
	}
	before := g.Snapshot().Objects[0].ID

	confirm := core.NewInputFrame()
	confirm.Set(core.ActionConfirm)
	g.Step(confirm)

	if got := g.Snapshot().Objects[0].ID; got != before {
		t.Errorf("confirm while running restarted the game")
	}
}

func TestGameDeterminism(t *testing.T) {
	run := func() core.GameState {
		g := NewWithConfig(config.DefaultCatchConfig())
		g.Reset(testRuntime())
		var st core.GameState
		for i := range 60 * 40 {
			in := core.NewInputFrame()
			if (i/45)%2 == 0 {
				in.Set(core.ActionLeft)
			} else {
				in.Set(core.ActionRight)
			}
			st = g.Step(in).State
		}
		return st
	}

	if a, b := run(), run(); a != b {
		t.Errorf("runs diverged: %+v vs %+v", a, b)
	}
}

func TestSetDifficultyPreset(t *testing.T) {
	t.Cleanup(func() { SetDifficultyPreset("") })

	SetDifficultyPreset("hard")
	if difficultyPreset != config.DifficultyHard {
		t.Errorf("preset = %q, expected hard", difficultyPreset)
	}
	SetDifficultyPreset("bogus")
	if difficultyPreset != "" {
		t.Errorf("unknown preset should clear, got %q", difficultyPreset)
	}
}

func TestRender(t *testing.T) {
	g := NewWithConfig(config.DefaultCatchConfig())
	g.Reset(testRuntime())
	g.Step(core.NewInputFrame())

	scr := core.NewScreen(80, 24)
	g.Render(scr)

	hud := scr.Row(0)
	if !strings.Contains(hud, "Score: 0") || !strings.Contains(hud, "Level: 1") {
		t.Errorf("HUD row = %q", hud)
	}
	if !strings.Contains(hud, "♥♥♥") {
		t.Errorf("HUD should show three hearts, got %q", hud)
	}
	if !strings.ContainsRune(scr.Row(23), GroundChar) {
		t.Error("last row should be ground")
	}
	if !strings.ContainsRune(scr.String(), BasketLeft) || !strings.ContainsRune(scr.String(), BasketRight) {
		t.Errorf("basket not drawn:\n%s", scr.String())
	}
}

func TestRenderGameOver(t *testing.T) {
	g := NewWithConfig(config.DefaultCatchConfig())
	g.Reset(testRuntime())
	g.engine.state.Running = false
	g.engine.state.Lives = 0

	scr := core.NewScreen(80, 24)
	g.Render(scr)
	if !strings.Contains(scr.String(), "GAME OVER") {
		t.Errorf("game over box missing:\n%s", scr.String())
	}
}

func TestRenderTooSmall(t *testing.T) {
	g := NewWithConfig(config.DefaultCatchConfig())
	g.Reset(testRuntime())

	scr := core.NewScreen(10, 5)
	g.Render(scr)
	if strings.ContainsRune(scr.String(), BasketFill) {
		t.Error("tiny screen should not draw the playfield")
	}
}
