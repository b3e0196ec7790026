// Package catch implements an egg catching game.
// The player steers a basket along the floor to catch eggs that fall from
// the top of the playfield. Missed eggs cost lives, caught eggs score
// points, and the pace picks up as the score grows.
//
// The rules live in Engine, which works in logical playfield units and an
// externally supplied clock. Game adapts it to the registry interface.
package catch

import (
	"math/rand"
	"time"

	"github.com/vovakirdan/eggdrop/internal/config"
	"github.com/vovakirdan/eggdrop/internal/core"
)

// Engine owns the game state and every rule that mutates it.
// It is driven by Tick from a single goroutine.
type Engine struct {
	cfg   config.CatchConfig
	state *State
	sched *Scheduler
	rng   *rand.Rand

	now       time.Duration // Clock value of the current tick
	lastTick  time.Duration
	hasTicked bool

	lastSpawn  time.Duration
	hasSpawned bool

	nextID         uint64
	generation     uint64 // Bumped on restart; stale timers compare against it
	lastLevelScore int

	effects []MissEffect
	events  []core.Event
}

// NewEngine creates an engine with a fresh game.
func NewEngine(cfg config.CatchConfig, seed int64) *Engine {
	e := &Engine{
		cfg:   cfg,
		sched: NewScheduler(),
		rng:   rand.New(rand.NewSource(seed)),
	}
	e.state = newState(cfg)
	return e
}

// Config returns the configuration the engine runs with.
func (e *Engine) Config() config.CatchConfig {
	return e.cfg
}

// State returns the live game state. Callers must treat it as read-only.
func (e *Engine) State() *State {
	return e.state
}

// Now returns the clock value of the most recent tick.
func (e *Engine) Now() time.Duration {
	return e.now
}

// Effects returns the miss markers that are still visible.
func (e *Engine) Effects() []MissEffect {
	return e.effects
}

// Tick advances the game to now and returns the events it produced.
// Order within a tick: due timers, catcher, spawn, collisions, effects.
func (e *Engine) Tick(in core.InputFrame, now time.Duration) []core.Event {
	var dt time.Duration
	if e.hasTicked && now > e.lastTick {
		dt = now - e.lastTick
	}
	e.hasTicked = true
	e.lastTick = now
	e.now = now

	e.sched.RunDue(now)
	e.UpdateCatcher(in.Direction(), in.Pointer, dt)
	e.MaybeSpawn(now)
	e.ResolveCollisions(now)
	e.pruneEffects(now)

	return e.drainEvents()
}

// Reset starts a new game. The clock keeps running; timers from the
// previous game are dropped and any that slip through are ignored.
func (e *Engine) Reset() {
	e.state = newState(e.cfg)
	e.sched.Clear()
	e.generation++
	e.lastSpawn = 0
	e.hasSpawned = false
	e.lastLevelScore = 0
	e.effects = e.effects[:0]
	e.events = e.events[:0]
}

func (e *Engine) emit(ev core.Event) {
	e.events = append(e.events, ev)
}

func (e *Engine) drainEvents() []core.Event {
	if len(e.events) == 0 {
		return nil
	}
	out := make([]core.Event, len(e.events))
	copy(out, e.events)
	e.events = e.events[:0]
	return out
}

func (e *Engine) pruneEffects(now time.Duration) {
	kept := e.effects[:0]
	for _, fx := range e.effects {
		if !fx.Expired(now) {
			kept = append(kept, fx)
		}
	}
	e.effects = kept
}
