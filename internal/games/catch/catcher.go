package catch

import (
	"math"
	"time"

	"github.com/vovakirdan/eggdrop/internal/core"
)

// referenceFrame is the frame length the smoothing fraction is tuned for.
const referenceFrame = time.Second / 60

// UpdateCatcher moves the basket. dir nudges it by one step per call;
// an active pointer pulls it a fraction of the way toward the pointer,
// centred under it. dt is the time since the previous update.
func (e *Engine) UpdateCatcher(dir int, pointer core.Pointer, dt time.Duration) {
	if !e.state.Running {
		return
	}

	maxX := e.cfg.CatcherMaxX()
	x := e.state.CatcherX

	switch {
	case dir < 0:
		x -= e.cfg.Catcher.Step
	case dir > 0:
		x += e.cfg.Catcher.Step
	}

	if pointer.Active {
		target := core.ClampF(pointer.X-e.cfg.Catcher.Width/2, 0, maxX)
		x += (target - x) * e.followFactor(dt)
	}

	e.state.CatcherX = core.ClampF(x, 0, maxX)
}

// followFactor returns the share of the remaining distance covered this
// update. It stays in [0, 1], so the basket never overshoots.
func (e *Engine) followFactor(dt time.Duration) float64 {
	s := e.cfg.Catcher.Smoothing
	if !e.cfg.Catcher.FrameIndependent {
		return s
	}
	if dt <= 0 {
		return 0
	}
	return 1 - math.Pow(1-s, float64(dt)/float64(referenceFrame))
}

// catcherBounds returns the basket rectangle in playfield units.
func (e *Engine) catcherBounds() core.RectF {
	c := e.cfg.Catcher
	y := e.cfg.Playfield.Height - c.BottomOffset - c.Height
	return core.NewRectF(e.state.CatcherX, y, c.Width, c.Height)
}
