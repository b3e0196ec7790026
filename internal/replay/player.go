package replay

import (
	"fmt"

	"github.com/vovakirdan/eggdrop/internal/core"
	"github.com/vovakirdan/eggdrop/internal/games/catch"
)

// Source yields the recorded input for each tick in order.
type Source struct {
	frames  []Frame
	next    int
	tick    uint64
	total   uint64
	current core.InputFrame
}

// NewSource creates a source positioned before the first tick.
func NewSource(l Log) *Source {
	return &Source{
		frames:  l.Frames,
		total:   l.Ticks,
		current: core.NewInputFrame(),
	}
}

// Next advances one tick and returns that tick's input.
// Past the end of the recording it returns an empty frame.
func (s *Source) Next() core.InputFrame {
	if s.Done() {
		return core.NewInputFrame()
	}
	s.tick++
	for s.next < len(s.frames) && s.frames[s.next].Tick <= s.tick {
		if in, err := s.frames[s.next].Input(); err == nil {
			s.current = in
		}
		s.next++
	}
	return s.current.Clone()
}

// Done reports whether every recorded tick has been returned.
func (s *Source) Done() bool {
	return s.tick >= s.total
}

// Tick returns the number of ticks returned so far.
func (s *Source) Tick() uint64 {
	return s.tick
}

// Total returns the recorded length in ticks.
func (s *Source) Total() uint64 {
	return s.total
}

// NewGame creates a game ready to replay l from its first tick.
func NewGame(l Log) (*catch.Game, error) {
	if l.GameID != catch.GameID {
		return nil, fmt.Errorf("replay: game %q cannot be replayed", l.GameID)
	}
	if err := l.Validate(); err != nil {
		return nil, err
	}
	g := catch.NewWithConfig(l.Config)
	rc := core.DefaultConfig()
	rc.TickRate = l.TickRate
	rc.Seed = l.Seed
	g.Reset(rc)
	return g, nil
}

// Result summarizes a headless replay.
type Result struct {
	State         core.GameState
	ObjectsCaught int
	Ticks         uint64
	Events        int
}

// Play re-simulates l without a terminal and returns the final state.
func Play(l Log) (Result, error) {
	g, err := NewGame(l)
	if err != nil {
		return Result{}, err
	}

	src := NewSource(l)
	var res Result
	for !src.Done() {
		step := g.Step(src.Next())
		res.State = step.State
		res.Events += len(step.Events)
	}
	res.Ticks = src.Tick()
	res.ObjectsCaught = g.Snapshot().ObjectsCaught
	return res, nil
}
