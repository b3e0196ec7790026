package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/catch.yaml
var defaultCatchYAML []byte

// DefaultCatchConfig returns the hardcoded default configuration.
// It mirrors defaults/catch.yaml and is the last fallback of LoadCatch.
func DefaultCatchConfig() CatchConfig {
	return CatchConfig{
		Playfield: CatchPlayfield{
			Width:  800,
			Height: 600,
		},
		Catcher: CatchCatcher{
			Width:            80,
			Height:           30,
			BottomOffset:     20,
			Step:             5,
			Smoothing:        0.2,
			FrameIndependent: true,
			CatchTolerance:   20,
		},
		Objects: CatchObjects{
			Width:        30,
			Height:       40,
			RareChance:   0.1,
			CommonPoints: 1,
			RarePoints:   5,
			ExpiryBuffer: 100 * time.Millisecond,
		},
		Spawn: CatchSpawn{
			Interval:     1500 * time.Millisecond,
			FallDuration: 3000 * time.Millisecond,
		},
		Effects: CatchEffects{
			MissLifetime: 500 * time.Millisecond,
			MissOffset:   30,
		},
		Lives: 3,
		Difficulty: DifficultyConfig{
			Enabled:    true,
			ScoreStep:  20,
			SpawnStep:  100 * time.Millisecond,
			SpawnFloor: 800 * time.Millisecond,
			FallStep:   200 * time.Millisecond,
			FallFloor:  1500 * time.Millisecond,
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "catch":
		return defaultCatchYAML
	default:
		return nil
	}
}
