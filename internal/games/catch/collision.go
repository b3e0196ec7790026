package catch

import (
	"time"

	"github.com/vovakirdan/eggdrop/internal/core"
)

// ResolveCollisions catches every unresolved egg that overlaps the basket.
func (e *Engine) ResolveCollisions(now time.Duration) {
	if !e.state.Running {
		return
	}

	basket := e.catcherBounds()
	active := e.state.Objects
	kept := make([]*FallingObject, 0, len(active))

	for _, obj := range active {
		if obj.Resolved() {
			continue
		}
		if e.overlapsCatcher(basket, e.objectBounds(obj, now)) {
			e.catch(obj)
			continue
		}
		kept = append(kept, obj)
	}

	e.state.Objects = kept
}

// overlapsCatcher is an AABB test with a forgiving band: the egg counts
// once its bottom reaches the basket top and until it is catch_tolerance
// below the basket bottom.
func (e *Engine) overlapsCatcher(basket, obj core.RectF) bool {
	return obj.Bottom() >= basket.Y &&
		obj.X < basket.Right() &&
		obj.Right() > basket.X &&
		obj.Bottom() <= basket.Bottom()+e.cfg.Catcher.CatchTolerance
}

func (e *Engine) catch(obj *FallingObject) {
	obj.Caught = true

	points := e.cfg.Objects.CommonPoints
	if obj.Rare {
		points = e.cfg.Objects.RarePoints
	}
	e.state.Score += points
	e.state.ObjectsCaught++

	e.emit(CatchEvent{
		ID:     obj.ID,
		X:      obj.X,
		Rare:   obj.Rare,
		Points: points,
		Score:  e.state.Score,
	})

	e.checkLevel()
}

// removeObject drops the object with id from the active list.
func (e *Engine) removeObject(id uint64) {
	kept := make([]*FallingObject, 0, len(e.state.Objects))
	for _, obj := range e.state.Objects {
		if obj.ID != id {
			kept = append(kept, obj)
		}
	}
	e.state.Objects = kept
}

func (e *Engine) findObject(id uint64) *FallingObject {
	for _, obj := range e.state.Objects {
		if obj.ID == id {
			return obj
		}
	}
	return nil
}
