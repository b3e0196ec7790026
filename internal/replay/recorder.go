package replay

import (
	"github.com/vovakirdan/eggdrop/internal/config"
	"github.com/vovakirdan/eggdrop/internal/core"
	"github.com/vovakirdan/eggdrop/internal/storage"
)

// Recorder collects the inputs passed to Game.Step, one call per tick.
type Recorder struct {
	log  Log
	last core.InputFrame
}

// NewRecorder starts a recording for a game created with the given
// seed, tick rate and configuration.
func NewRecorder(gameID string, seed int64, tickRate int, difficulty string, cfg config.CatchConfig) *Recorder {
	return &Recorder{
		log: Log{
			GameID:     gameID,
			Seed:       seed,
			TickRate:   tickRate,
			Difficulty: difficulty,
			Config:     cfg,
		},
		last: core.NewInputFrame(),
	}
}

// Record notes the input of the next tick. Only changes are stored.
func (r *Recorder) Record(in core.InputFrame) {
	r.log.Ticks++
	if in.Equal(r.last) {
		return
	}
	r.log.Frames = append(r.log.Frames, frameFromInput(r.log.Ticks, in))
	r.last = in.Clone()
}

// Ticks returns the number of recorded ticks.
func (r *Recorder) Ticks() uint64 {
	return r.log.Ticks
}

// Log returns a copy of the recording so far.
func (r *Recorder) Log() Log {
	l := r.log
	l.Frames = append([]Frame(nil), r.log.Frames...)
	return l
}

// Save writes the recording to the journal and returns the run ID.
func (r *Recorder) Save(store *storage.Store) (int64, error) {
	run, err := ToRun(r.log)
	if err != nil {
		return 0, err
	}
	return store.SaveRun(run)
}
