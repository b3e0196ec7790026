// Package replay records the inputs of a game and plays them back.
//
// Games are deterministic for a given seed, configuration and input
// sequence, so a run is stored as exactly that: the recorder keeps only the
// ticks where the input changed and the player re-simulates from them.
package replay

import (
	"fmt"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/eggdrop/internal/config"
	"github.com/vovakirdan/eggdrop/internal/core"
	"github.com/vovakirdan/eggdrop/internal/storage"
)

// Frame is the input that takes effect at Tick and stays until the next frame.
type Frame struct {
	Tick    uint64       `yaml:"tick"`
	Actions []string     `yaml:"actions,omitempty"`
	Pointer core.Pointer `yaml:"pointer,omitempty"`
}

// Log is a complete recorded run.
type Log struct {
	GameID     string             `yaml:"game"`
	Seed       int64              `yaml:"seed"`
	TickRate   int                `yaml:"tick_rate"`
	Difficulty string             `yaml:"difficulty,omitempty"`
	Ticks      uint64             `yaml:"ticks"`
	Config     config.CatchConfig `yaml:"config"`
	Frames     []Frame            `yaml:"frames"`
}

// recordable lists the actions a frame can carry.
var recordable = []core.Action{
	core.ActionLeft,
	core.ActionRight,
	core.ActionConfirm,
	core.ActionBack,
	core.ActionRestart,
	core.ActionPause,
}

var actionByName = func() map[string]core.Action {
	m := make(map[string]core.Action, len(recordable))
	for _, a := range recordable {
		m[a.String()] = a
	}
	return m
}()

// frameFromInput converts a live input frame into its recorded form.
func frameFromInput(tick uint64, in core.InputFrame) Frame {
	f := Frame{Tick: tick, Pointer: in.Pointer}
	for _, a := range recordable {
		if in.Has(a) {
			f.Actions = append(f.Actions, a.String())
		}
	}
	return f
}

// Input converts a recorded frame back into an input frame.
func (f Frame) Input() (core.InputFrame, error) {
	in := core.NewInputFrame()
	in.Pointer = f.Pointer
	for _, name := range f.Actions {
		a, ok := actionByName[name]
		if !ok {
			return in, fmt.Errorf("replay: unknown action %q at tick %d", name, f.Tick)
		}
		in.Set(a)
	}
	return in, nil
}

// Validate checks that frames are ordered and refer to known actions.
func (l Log) Validate() error {
	if l.TickRate <= 0 {
		return fmt.Errorf("replay: tick rate must be positive, got %d", l.TickRate)
	}
	if !sort.SliceIsSorted(l.Frames, func(i, j int) bool { return l.Frames[i].Tick < l.Frames[j].Tick }) {
		return fmt.Errorf("replay: frames are not in tick order")
	}
	for _, f := range l.Frames {
		if f.Tick == 0 || f.Tick > l.Ticks {
			return fmt.Errorf("replay: frame tick %d outside 1..%d", f.Tick, l.Ticks)
		}
		if _, err := f.Input(); err != nil {
			return err
		}
	}
	return l.Config.Validate()
}

// Encode writes the log as YAML, the format used by replay --export.
func Encode(l Log) ([]byte, error) {
	data, err := yaml.Marshal(l)
	if err != nil {
		return nil, fmt.Errorf("replay: encode: %w", err)
	}
	return data, nil
}

// Decode reads a YAML log and validates it.
func Decode(data []byte) (Log, error) {
	l := Log{Config: config.DefaultCatchConfig()}
	if err := yaml.Unmarshal(data, &l); err != nil {
		return Log{}, fmt.Errorf("replay: decode: %w", err)
	}
	if err := l.Validate(); err != nil {
		return Log{}, err
	}
	return l, nil
}

// ToRun converts a log into a journal row.
func ToRun(l Log) (storage.Run, error) {
	cfg, err := config.MarshalCatch(l.Config)
	if err != nil {
		return storage.Run{}, fmt.Errorf("replay: %w", err)
	}
	frames, err := yaml.Marshal(l.Frames)
	if err != nil {
		return storage.Run{}, fmt.Errorf("replay: encode frames: %w", err)
	}
	return storage.Run{
		GameID:     l.GameID,
		Seed:       l.Seed,
		TickRate:   l.TickRate,
		Difficulty: l.Difficulty,
		Config:     cfg,
		Ticks:      l.Ticks,
		Inputs:     frames,
	}, nil
}

// FromRun rebuilds a log from a journal row.
func FromRun(run storage.Run) (Log, error) {
	cfg, err := config.ParseCatch(run.Config)
	if err != nil {
		return Log{}, fmt.Errorf("replay: run %d config: %w", run.ID, err)
	}
	var frames []Frame
	if err := yaml.Unmarshal(run.Inputs, &frames); err != nil {
		return Log{}, fmt.Errorf("replay: run %d inputs: %w", run.ID, err)
	}
	l := Log{
		GameID:     run.GameID,
		Seed:       run.Seed,
		TickRate:   run.TickRate,
		Difficulty: run.Difficulty,
		Ticks:      run.Ticks,
		Config:     cfg,
		Frames:     frames,
	}
	if err := l.Validate(); err != nil {
		return Log{}, fmt.Errorf("replay: run %d: %w", run.ID, err)
	}
	return l, nil
}
