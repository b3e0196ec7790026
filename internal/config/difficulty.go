package config

import (
	"errors"
	"fmt"
	"time"
)

// DifficultyConfig defines how the game speeds up as the score grows.
// Every ScoreStep points the spawn interval and fall duration shrink by a
// fixed amount, never going below their floors.
type DifficultyConfig struct {
	Enabled    bool          `yaml:"enabled"`
	ScoreStep  int           `yaml:"score_step"`
	SpawnStep  time.Duration `yaml:"spawn_step"`
	SpawnFloor time.Duration `yaml:"spawn_floor"`
	FallStep   time.Duration `yaml:"fall_step"`
	FallFloor  time.Duration `yaml:"fall_floor"`
}

// Validate checks the progression parameters.
func (d DifficultyConfig) Validate() error {
	var errs []error
	if d.ScoreStep <= 0 {
		errs = append(errs, fmt.Errorf("difficulty: score_step must be positive, got %d", d.ScoreStep))
	}
	if d.SpawnStep < 0 || d.FallStep < 0 {
		errs = append(errs, errors.New("difficulty: steps must not be negative"))
	}
	if d.SpawnFloor <= 0 || d.FallFloor <= 0 {
		errs = append(errs, errors.New("difficulty: floors must be positive"))
	}
	return errors.Join(errs...)
}

// ShouldLevelUp reports whether reaching score triggers a new tier.
// lastLevelScore is the score of the previous level-up (0 if none), so a
// score can never trigger twice.
func (d DifficultyConfig) ShouldLevelUp(score, lastLevelScore int) bool {
	if d.ScoreStep <= 0 || score <= 0 {
		return false
	}
	return score%d.ScoreStep == 0 && score != lastLevelScore
}

// Next returns the spawn interval and fall duration for the next tier.
// With progression disabled the values are returned unchanged.
func (d DifficultyConfig) Next(spawn, fall time.Duration) (time.Duration, time.Duration) {
	if !d.Enabled {
		return spawn, fall
	}
	return max(d.SpawnFloor, spawn-d.SpawnStep), max(d.FallFloor, fall-d.FallStep)
}
