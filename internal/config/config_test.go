package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg, err := ParseCatch(GetDefaultYAML("catch"))
	if err != nil {
		t.Fatalf("ParseCatch(embedded) failed: %v", err)
	}
	if cfg != DefaultCatchConfig() {
		t.Errorf("embedded YAML and DefaultCatchConfig disagree:\nyaml: %+v\ncode: %+v", cfg, DefaultCatchConfig())
	}
}

func TestDefaultConfigValues(t *testing.T) {
	cfg := DefaultCatchConfig()

	if cfg.CatcherMaxX() != 720 {
		t.Errorf("CatcherMaxX() = %g, expected 720", cfg.CatcherMaxX())
	}
	if cfg.Spawn.Interval != 1500*time.Millisecond {
		t.Errorf("spawn interval = %s, expected 1.5s", cfg.Spawn.Interval)
	}
	if cfg.Spawn.FallDuration != 3*time.Second {
		t.Errorf("fall duration = %s, expected 3s", cfg.Spawn.FallDuration)
	}
	if cfg.Lives != 3 {
		t.Errorf("lives = %d, expected 3", cfg.Lives)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults should validate: %v", err)
	}
}

func TestLoadCatchCustomPathPartialOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catch.yaml")
	data := "spawn:\n  interval: 900ms\nobjects:\n  rare_chance: 0.5\n"
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadCatch(path)
	if err != nil {
		t.Fatalf("LoadCatch() failed: %v", err)
	}
	if cfg.Spawn.Interval != 900*time.Millisecond {
		t.Errorf("interval = %s, expected 900ms", cfg.Spawn.Interval)
	}
	if cfg.Objects.RareChance != 0.5 {
		t.Errorf("rare chance = %g, expected 0.5", cfg.Objects.RareChance)
	}
	// Untouched keys keep their defaults
	if cfg.Spawn.FallDuration != 3*time.Second {
		t.Errorf("fall duration = %s, expected default 3s", cfg.Spawn.FallDuration)
	}
	if cfg.Catcher.Width != 80 {
		t.Errorf("catcher width = %g, expected default 80", cfg.Catcher.Width)
	}
}

func TestLoadCatchErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := LoadCatch(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("missing custom config should fail")
	}

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("lives: [not a number"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadCatch(bad); err == nil {
		t.Error("malformed YAML should fail")
	}

	invalid := filepath.Join(dir, "invalid.yaml")
	if err := os.WriteFile(invalid, []byte("lives: 9\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	_, err := LoadCatch(invalid)
	if err == nil || !strings.Contains(err.Error(), "lives") {
		t.Errorf("out-of-range lives should fail validation, got %v", err)
	}
}

func TestValidateCollectsAllErrors(t *testing.T) {
	cfg := DefaultCatchConfig()
	cfg.Catcher.Smoothing = 2
	cfg.Objects.RareChance = -1
	cfg.Difficulty.ScoreStep = 0

	err := cfg.Validate()
	if err == nil {
		t.Fatal("Validate() should fail")
	}
	for _, want := range []string{"smoothing", "rare_chance", "score_step"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("error %q should mention %s", err, want)
		}
	}
}

func TestApplyCatchPreset(t *testing.T) {
	tests := []struct {
		preset   DifficultyPreset
		interval time.Duration
		fall     time.Duration
		enabled  bool
	}{
		{DifficultyEasy, 1800 * time.Millisecond, 3600 * time.Millisecond, true},
		{DifficultyNormal, 1500 * time.Millisecond, 3000 * time.Millisecond, true},
		{DifficultyHard, 1200 * time.Millisecond, 2400 * time.Millisecond, true},
		{DifficultyFixed, 1500 * time.Millisecond, 3000 * time.Millisecond, false},
	}

	for _, tc := range tests {
		t.Run(string(tc.preset), func(t *testing.T) {
			cfg := DefaultCatchConfig()
			ApplyCatchPreset(&cfg, tc.preset)

			if cfg.Spawn.Interval != tc.interval || cfg.Spawn.FallDuration != tc.fall {
				t.Errorf("pace = %s/%s, expected %s/%s", cfg.Spawn.Interval, cfg.Spawn.FallDuration, tc.interval, tc.fall)
			}
			if cfg.Difficulty.Enabled != tc.enabled {
				t.Errorf("progression enabled = %v, expected %v", cfg.Difficulty.Enabled, tc.enabled)
			}
			if err := cfg.Validate(); err != nil {
				t.Errorf("preset config should validate: %v", err)
			}
		})
	}
}

func TestParsePreset(t *testing.T) {
	for _, p := range Presets() {
		got, err := ParsePreset(string(p))
		if err != nil || got != p {
			t.Errorf("ParsePreset(%q) = %q, %v", p, got, err)
		}
		if p.Description() == "" {
			t.Errorf("preset %q has no description", p)
		}
	}
	if _, err := ParsePreset(""); err != nil {
		t.Errorf("empty preset should be accepted: %v", err)
	}
	if _, err := ParsePreset("nightmare"); err == nil {
		t.Error("unknown preset should fail")
	}
}

func TestMarshalCatchRoundTrip(t *testing.T) {
	cfg := DefaultCatchConfig()
	ApplyCatchPreset(&cfg, DifficultyHard)

	data, err := MarshalCatch(cfg)
	if err != nil {
		t.Fatalf("MarshalCatch() failed: %v", err)
	}
	if !strings.Contains(string(data), "fall_duration: 2.4s") {
		t.Errorf("durations should encode as strings, got:\n%s", data)
	}

	back, err := ParseCatch(data)
	if err != nil {
		t.Fatalf("ParseCatch() failed: %v", err)
	}
	if back != cfg {
		t.Errorf("round trip changed config:\nin:  %+v\nout: %+v", cfg, back)
	}
}

func TestDifficultyNext(t *testing.T) {
	d := DefaultCatchConfig().Difficulty

	spawn, fall := d.Next(1500*time.Millisecond, 3000*time.Millisecond)
	if spawn != 1400*time.Millisecond || fall != 2800*time.Millisecond {
		t.Errorf("Next() = %s/%s, expected 1.4s/2.8s", spawn, fall)
	}

	// Floors hold no matter how many tiers pass
	spawn, fall = 1500*time.Millisecond, 3000*time.Millisecond
	for range 50 {
		spawn, fall = d.Next(spawn, fall)
	}
	if spawn != 800*time.Millisecond || fall != 1500*time.Millisecond {
		t.Errorf("after many tiers = %s/%s, expected floors 800ms/1.5s", spawn, fall)
	}

	d.Enabled = false
	spawn, fall = d.Next(1500*time.Millisecond, 3000*time.Millisecond)
	if spawn != 1500*time.Millisecond || fall != 3000*time.Millisecond {
		t.Errorf("disabled progression should not change pace, got %s/%s", spawn, fall)
	}
}

func TestDifficultyShouldLevelUp(t *testing.T) {
	d := DefaultCatchConfig().Difficulty

	tests := []struct {
		score, last int
		want        bool
	}{
		{0, 0, false},
		{19, 0, false},
		{20, 0, true},
		{20, 20, false},
		{21, 20, false},
		{40, 20, true},
		{45, 40, false},
	}
	for _, tc := range tests {
		if got := d.ShouldLevelUp(tc.score, tc.last); got != tc.want {
			t.Errorf("ShouldLevelUp(%d, %d) = %v, expected %v", tc.score, tc.last, got, tc.want)
		}
	}
}

func TestLoadSettings(t *testing.T) {
	t.Setenv("EGGDROP_FPS", "30")
	t.Setenv("EGGDROP_SEED", "42")
	t.Setenv("EGGDROP_DIFFICULTY", "hard")

	s, err := LoadSettings()
	if err != nil {
		t.Fatalf("LoadSettings() failed: %v", err)
	}
	if s.FPS != 30 || s.Seed != 42 || s.Difficulty != "hard" {
		t.Errorf("settings = %+v", s)
	}
	if s.SSHAddr != ":23234" {
		t.Errorf("SSHAddr default = %q, expected :23234", s.SSHAddr)
	}
}

func TestLoadSettingsRejectsBadValues(t *testing.T) {
	t.Setenv("EGGDROP_DIFFICULTY", "impossible")
	if _, err := LoadSettings(); err == nil {
		t.Error("unknown difficulty in env should fail")
	}

	t.Setenv("EGGDROP_DIFFICULTY", "")
	t.Setenv("EGGDROP_FPS", "abc")
	s, err := LoadSettings()
	if err == nil {
		t.Error("non-numeric FPS should fail")
	}
	if s.FPS != 60 {
		t.Errorf("failed parse should fall back to defaults, FPS = %d", s.FPS)
	}
}
