package catch

import (
	"time"

	"github.com/vovakirdan/eggdrop/internal/core"
)

// MaybeSpawn drops a new egg if the spawn interval has elapsed.
// The first call of a game always spawns.
func (e *Engine) MaybeSpawn(now time.Duration) {
	if !e.state.Running {
		return
	}
	if e.hasSpawned && now-e.lastSpawn < e.state.SpawnInterval {
		return
	}

	maxX := e.cfg.Playfield.Width - e.cfg.Objects.Width
	x := e.rng.Float64() * maxX
	rare := e.rng.Float64() < e.cfg.Objects.RareChance
	e.spawn(x, rare, now)
}

// spawn adds an egg and schedules its expiry.
func (e *Engine) spawn(x float64, rare bool, now time.Duration) *FallingObject {
	e.nextID++
	obj := &FallingObject{
		ID:           e.nextID,
		X:            x,
		Rare:         rare,
		SpawnedAt:    now,
		FallDuration: e.state.FallDuration,
	}
	e.state.Objects = append(e.state.Objects, obj)
	e.lastSpawn = now
	e.hasSpawned = true

	gen, id := e.generation, obj.ID
	e.sched.After(now, obj.FallDuration+e.cfg.Objects.ExpiryBuffer, func() {
		e.expire(gen, id)
	})

	e.emit(SpawnEvent{
		ID:           obj.ID,
		X:            obj.X,
		Rare:         obj.Rare,
		FallDuration: obj.FallDuration,
	})
	return obj
}

// objectTop returns the egg's top edge at now. Eggs start fully above the
// playfield and finish fully below it.
func (e *Engine) objectTop(obj *FallingObject, now time.Duration) float64 {
	h := e.cfg.Objects.Height
	return -h + (e.cfg.Playfield.Height+h)*progress(obj, now)
}

func (e *Engine) objectBounds(obj *FallingObject, now time.Duration) core.RectF {
	return core.NewRectF(obj.X, e.objectTop(obj, now), e.cfg.Objects.Width, e.cfg.Objects.Height)
}

// progress returns how far through its fall the object is, in [0, 1].
func progress(obj *FallingObject, now time.Duration) float64 {
	if obj.FallDuration <= 0 {
		return 1
	}
	return core.ClampF(float64(now-obj.SpawnedAt)/float64(obj.FallDuration), 0, 1)
}
