package catch

import (
	"time"

	"github.com/vovakirdan/eggdrop/internal/config"
)

// State is the complete rules state of one game. The Engine replaces it
// wholesale on restart, so nothing outlives a game by accident.
type State struct {
	Score         int
	Lives         int
	Level         int
	CatcherX      float64          // Left edge of the basket
	Objects       []*FallingObject // Spawn order
	Running       bool
	ObjectsCaught int
	SpawnInterval time.Duration
	FallDuration  time.Duration
}

// FallingObject is one egg in flight.
type FallingObject struct {
	ID           uint64
	X            float64 // Left edge, fixed at spawn
	Rare         bool
	Caught       bool
	Missed       bool
	SpawnedAt    time.Duration
	FallDuration time.Duration
}

// Resolved reports whether the object has already been caught or missed.
// Whichever path resolves it first wins; the other must leave it alone.
func (o *FallingObject) Resolved() bool {
	return o.Caught || o.Missed
}

// MissEffect is a transient crack marker left where an egg hit the floor.
type MissEffect struct {
	X         float64
	Y         float64
	CreatedAt time.Duration
	Lifetime  time.Duration
}

// Expired reports whether the effect should no longer be drawn.
func (m MissEffect) Expired(now time.Duration) bool {
	return now-m.CreatedAt >= m.Lifetime
}

// newState returns the initial state for a fresh game.
func newState(cfg config.CatchConfig) *State {
	return &State{
		Lives:         cfg.Lives,
		Level:         1,
		CatcherX:      cfg.CatcherMaxX() / 2,
		Objects:       make([]*FallingObject, 0, 8),
		Running:       true,
		SpawnInterval: cfg.Spawn.Interval,
		FallDuration:  cfg.Spawn.FallDuration,
	}
}
