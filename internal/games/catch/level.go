package catch

// checkLevel advances the tier when the score lands on a multiple of the
// configured step. Each score can level up at most once.
func (e *Engine) checkLevel() {
	if !e.cfg.Difficulty.ShouldLevelUp(e.state.Score, e.lastLevelScore) {
		return
	}
	e.lastLevelScore = e.state.Score
	e.state.Level++
	e.state.SpawnInterval, e.state.FallDuration = e.cfg.Difficulty.Next(e.state.SpawnInterval, e.state.FallDuration)

	e.emit(LevelUpEvent{
		Level:         e.state.Level,
		SpawnInterval: e.state.SpawnInterval,
		FallDuration:  e.state.FallDuration,
	})
}
