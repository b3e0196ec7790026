package catch

// expire handles an egg reaching the end of its fall. It runs from the
// scheduler and does nothing if the egg was already resolved, the game
// has ended, or the timer belongs to an earlier game.
func (e *Engine) expire(gen, id uint64) {
	if gen != e.generation || !e.state.Running {
		return
	}
	obj := e.findObject(id)
	if obj == nil || obj.Resolved() {
		return
	}

	obj.Missed = true
	e.removeObject(id)
	e.state.Lives--

	fx := MissEffect{
		X:         obj.X + e.cfg.Objects.Width/2,
		Y:         e.cfg.Playfield.Height - e.cfg.Effects.MissOffset,
		CreatedAt: e.now,
		Lifetime:  e.cfg.Effects.MissLifetime,
	}
	e.effects = append(e.effects, fx)

	e.emit(MissEvent{
		ID:        obj.ID,
		X:         fx.X,
		Y:         fx.Y,
		LivesLeft: e.state.Lives,
	})

	if e.state.Lives <= 0 {
		e.state.Lives = 0
		e.state.Running = false
		e.emit(GameOverEvent{
			Score:         e.state.Score,
			ObjectsCaught: e.state.ObjectsCaught,
			Level:         e.state.Level,
		})
	}
}
