package catch

import "time"

// ObjectView is an egg as the presentation layer sees it.
type ObjectView struct {
	ID        uint64
	X         float64
	Y         float64 // Top edge
	Rare      bool
	Remaining time.Duration // Fall time left
	Progress  float64       // 0 at spawn, 1 at the floor
}

// EffectView is a visible miss marker.
type EffectView struct {
	X         float64
	Y         float64
	Remaining time.Duration
}

// Snapshot captures everything needed to draw a frame or compare two runs.
type Snapshot struct {
	Now           time.Duration
	CatcherX      float64
	CatcherY      float64
	Score         int
	Lives         int
	Level         int
	ObjectsCaught int
	Running       bool
	SpawnInterval time.Duration
	FallDuration  time.Duration
	Objects       []ObjectView
	Effects       []EffectView
}

// Snapshot returns a copy of the current game for rendering and tests.
func (e *Engine) Snapshot() Snapshot {
	s := e.state
	snap := Snapshot{
		Now:           e.now,
		CatcherX:      s.CatcherX,
		CatcherY:      e.catcherBounds().Y,
		Score:         s.Score,
		Lives:         s.Lives,
		Level:         s.Level,
		ObjectsCaught: s.ObjectsCaught,
		Running:       s.Running,
		SpawnInterval: s.SpawnInterval,
		FallDuration:  s.FallDuration,
		Objects:       make([]ObjectView, 0, len(s.Objects)),
		Effects:       make([]EffectView, 0, len(e.effects)),
	}

	for _, obj := range s.Objects {
		remaining := obj.FallDuration - (e.now - obj.SpawnedAt)
		snap.Objects = append(snap.Objects, ObjectView{
			ID:        obj.ID,
			X:         obj.X,
			Y:         e.objectTop(obj, e.now),
			Rare:      obj.Rare,
			Remaining: max(remaining, 0),
			Progress:  progress(obj, e.now),
		})
	}

	for _, fx := range e.effects {
		snap.Effects = append(snap.Effects, EffectView{
			X:         fx.X,
			Y:         fx.Y,
			Remaining: max(fx.Lifetime-(e.now-fx.CreatedAt), 0),
		})
	}

	return snap
}
