// Package config provides YAML-based game configuration loading and
// difficulty management for the game platform.
package config

import (
	"errors"
	"fmt"
	"time"
)

// CatchConfig contains all configuration for the egg catching game.
type CatchConfig struct {
	Playfield  CatchPlayfield   `yaml:"playfield"`
	Catcher    CatchCatcher     `yaml:"catcher"`
	Objects    CatchObjects     `yaml:"objects"`
	Spawn      CatchSpawn       `yaml:"spawn"`
	Effects    CatchEffects     `yaml:"effects"`
	Lives      int              `yaml:"lives"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// CatchPlayfield defines the logical playfield size. Rendering scales it
// to whatever the terminal offers.
type CatchPlayfield struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// CatchCatcher defines the basket geometry and movement.
type CatchCatcher struct {
	Width            float64 `yaml:"width"`
	Height           float64 `yaml:"height"`
	BottomOffset     float64 `yaml:"bottom_offset"`     // Gap between basket bottom and floor
	Step             float64 `yaml:"step"`              // Keyboard nudge per tick
	Smoothing        float64 `yaml:"smoothing"`         // Pointer follow fraction per reference frame
	FrameIndependent bool    `yaml:"frame_independent"` // Scale smoothing by elapsed time
	CatchTolerance   float64 `yaml:"catch_tolerance"`   // How far below the basket bottom an egg still counts
}

// CatchObjects defines falling egg parameters.
type CatchObjects struct {
	Width        float64       `yaml:"width"`
	Height       float64       `yaml:"height"`
	RareChance   float64       `yaml:"rare_chance"`
	CommonPoints int           `yaml:"common_points"`
	RarePoints   int           `yaml:"rare_points"`
	ExpiryBuffer time.Duration `yaml:"expiry_buffer"`
}

// CatchSpawn defines the starting spawn cadence.
type CatchSpawn struct {
	Interval     time.Duration `yaml:"interval"`
	FallDuration time.Duration `yaml:"fall_duration"`
}

// CatchEffects defines transient visual markers.
type CatchEffects struct {
	MissLifetime time.Duration `yaml:"miss_lifetime"`
	MissOffset   float64       `yaml:"miss_offset"` // Height of the crack marker above the floor
}

// CatcherMaxX returns the rightmost legal basket position.
func (c CatchConfig) CatcherMaxX() float64 {
	return c.Playfield.Width - c.Catcher.Width
}

// Validate reports every invalid field at once.
func (c CatchConfig) Validate() error {
	var errs []error

	if c.Playfield.Width <= 0 || c.Playfield.Height <= 0 {
		errs = append(errs, fmt.Errorf("playfield: size must be positive, got %gx%g", c.Playfield.Width, c.Playfield.Height))
	}
	if c.Catcher.Width <= 0 || c.Catcher.Width > c.Playfield.Width {
		errs = append(errs, fmt.Errorf("catcher: width %g must be in (0, %g]", c.Catcher.Width, c.Playfield.Width))
	}
	if c.Catcher.Height <= 0 {
		errs = append(errs, fmt.Errorf("catcher: height must be positive, got %g", c.Catcher.Height))
	}
	if c.Catcher.Step < 0 {
		errs = append(errs, fmt.Errorf("catcher: step must not be negative, got %g", c.Catcher.Step))
	}
	if c.Catcher.Smoothing < 0 || c.Catcher.Smoothing > 1 {
		errs = append(errs, fmt.Errorf("catcher: smoothing %g must be in [0, 1]", c.Catcher.Smoothing))
	}
	if c.Objects.Width <= 0 || c.Objects.Width > c.Playfield.Width {
		errs = append(errs, fmt.Errorf("objects: width %g must be in (0, %g]", c.Objects.Width, c.Playfield.Width))
	}
	if c.Objects.Height <= 0 {
		errs = append(errs, fmt.Errorf("objects: height must be positive, got %g", c.Objects.Height))
	}
	if c.Objects.RareChance < 0 || c.Objects.RareChance > 1 {
		errs = append(errs, fmt.Errorf("objects: rare_chance %g must be in [0, 1]", c.Objects.RareChance))
	}
	if c.Objects.CommonPoints <= 0 || c.Objects.RarePoints <= 0 {
		errs = append(errs, errors.New("objects: points must be positive"))
	}
	if c.Objects.ExpiryBuffer < 0 {
		errs = append(errs, fmt.Errorf("objects: expiry_buffer must not be negative, got %s", c.Objects.ExpiryBuffer))
	}
	if c.Spawn.Interval <= 0 || c.Spawn.FallDuration <= 0 {
		errs = append(errs, errors.New("spawn: interval and fall_duration must be positive"))
	}
	if c.Effects.MissLifetime < 0 {
		errs = append(errs, fmt.Errorf("effects: miss_lifetime must not be negative, got %s", c.Effects.MissLifetime))
	}
	if c.Lives < 1 || c.Lives > MaxLives {
		errs = append(errs, fmt.Errorf("lives: %d must be in [1, %d]", c.Lives, MaxLives))
	}
	if err := c.Difficulty.Validate(); err != nil {
		errs = append(errs, err)
	}

	return errors.Join(errs...)
}

// MaxLives caps the starting lives; the HUD has room for three hearts.
const MaxLives = 3

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// Presets lists the selectable presets in menu order.
func Presets() []DifficultyPreset {
	return []DifficultyPreset{DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed}
}

// ParsePreset converts a flag value into a preset.
// The empty string means "use the config as loaded".
func ParsePreset(s string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(s); p {
	case "", DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	default:
		return "", fmt.Errorf("unknown difficulty %q (want easy, normal, hard or fixed)", s)
	}
}

// Description returns a one-line summary for menus and help text.
func (p DifficultyPreset) Description() string {
	switch p {
	case DifficultyEasy:
		return "Slower eggs, more time between drops"
	case DifficultyNormal:
		return "The classic pace"
	case DifficultyHard:
		return "Fast eggs from the first drop"
	case DifficultyFixed:
		return "Classic pace that never speeds up"
	default:
		return ""
	}
}
