// Package registry provides a global registry for game factories.
// Games register themselves in init() functions, so the CLI, the SSH
// server and the replay player can create them by ID without importing
// game internals.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/eggdrop/internal/core"
)

// Game is the interface every game implements.
// Games contain pure logic with no terminal dependencies (no Bubble Tea).
// The platform handles input mapping, timing, and drawing to the terminal.
type Game interface {
	// ID returns a unique identifier for this game (e.g., "catch").
	// Used for CLI commands and the replay journal.
	ID() string

	// Title returns a human-readable name for display.
	Title() string

	// Reset starts a new game with the given screen size and RNG seed.
	Reset(cfg core.RuntimeConfig)

	// Step advances the simulation by one fixed tick of 1s/TickRate.
	// Input is abstracted to platform-level actions and a pointer target.
	Step(in core.InputFrame) core.StepResult

	// Render draws the current game state into the provided screen buffer.
	Render(dst *core.Screen)

	// State returns the current score, lives, level and status flags.
	State() core.GameState
}

// GameInfo contains metadata about a registered game.
type GameInfo struct {
	ID    string
	Title string
}

// Factory is a function that creates a new instance of a game.
type Factory func() Game

var (
	factories = make(map[string]Factory)
	titles    = make(map[string]string)
	mu        sync.RWMutex
)

// Register adds a game factory to the registry.
// Panics if a game with the same ID is already registered.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}

	factories[id] = f

	// Get title by creating a temporary instance
	titles[id] = f().Title()
}

// List returns information about all registered games, sorted by ID.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]GameInfo, 0, len(factories))
	for id := range factories {
		result = append(result, GameInfo{ID: id, Title: titles[id]})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Info returns the metadata of one registered game.
func Info(id string) (GameInfo, bool) {
	mu.RLock()
	defer mu.RUnlock()

	title, ok := titles[id]
	if !ok {
		return GameInfo{}, false
	}
	return GameInfo{ID: id, Title: title}, true
}

// Create instantiates a new game by its ID.
func Create(id string) (Game, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[id]
	if !ok {
		return nil, fmt.Errorf("registry: unknown game %q", id)
	}

	return f(), nil
}

// Exists checks if a game with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}
