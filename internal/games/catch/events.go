package catch

import "time"

// SpawnEvent is emitted when an egg starts falling.
type SpawnEvent struct {
	ID           uint64
	X            float64
	Rare         bool
	FallDuration time.Duration
}

func (SpawnEvent) EventName() string { return "spawn" }

func (ev SpawnEvent) Fields() []any {
	return []any{"id", ev.ID, "x", ev.X, "rare", ev.Rare, "fall", ev.FallDuration}
}

// CatchEvent is emitted when the basket catches an egg.
type CatchEvent struct {
	ID     uint64
	X      float64
	Rare   bool
	Points int
	Score  int
}

func (CatchEvent) EventName() string { return "catch" }

func (ev CatchEvent) Fields() []any {
	return []any{"id", ev.ID, "rare", ev.Rare, "points", ev.Points, "score", ev.Score}
}

// MissEvent is emitted when an egg hits the floor. X and Y locate the crack.
type MissEvent struct {
	ID        uint64
	X         float64
	Y         float64
	LivesLeft int
}

func (MissEvent) EventName() string { return "miss" }

func (ev MissEvent) Fields() []any {
	return []any{"id", ev.ID, "x", ev.X, "y", ev.Y, "lives", ev.LivesLeft}
}

// LevelUpEvent is emitted when the game moves to a faster tier.
type LevelUpEvent struct {
	Level         int
	SpawnInterval time.Duration
	FallDuration  time.Duration
}

func (LevelUpEvent) EventName() string { return "level_up" }

func (ev LevelUpEvent) Fields() []any {
	return []any{"level", ev.Level, "spawn_interval", ev.SpawnInterval, "fall", ev.FallDuration}
}

// GameOverEvent is emitted once, when the last life is lost.
type GameOverEvent struct {
	Score         int
	ObjectsCaught int
	Level         int
}

func (GameOverEvent) EventName() string { return "game_over" }

func (ev GameOverEvent) Fields() []any {
	return []any{"score", ev.Score, "caught", ev.ObjectsCaught, "level", ev.Level}
}
