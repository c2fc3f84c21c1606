package app

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/lixenwraith/splitclock/clock"
	"github.com/lixenwraith/splitclock/constants"
	"github.com/lixenwraith/splitclock/display"
	"github.com/lixenwraith/splitclock/input"
	"github.com/lixenwraith/splitclock/stopwatch"
)

// Surface draws whole frames
type Surface interface {
	Render(frame display.Frame) error
	Resync()
}

// Source yields the intents pending since the last call without blocking
type Source interface {
	Poll() ([]input.Intent, error)
}

// Cue announces a stopwatch transition
type Cue interface {
	Play(state stopwatch.State)
}

// Loop owns the stopwatch and drives it from input
type Loop struct {
	surface   Surface
	source    Source
	cue       Cue
	tp        clock.TimeProvider
	stopwatch *stopwatch.Stopwatch
	interval  time.Duration
}

// NewLoop creates a loop with a fresh stopwatch in NotStarted
func NewLoop(surface Surface, source Source, tp clock.TimeProvider) *Loop {
	return &Loop{
		surface:   surface,
		source:    source,
		tp:        tp,
		stopwatch: stopwatch.New(tp),
		interval:  constants.RefreshInterval,
	}
}

// SetCue attaches an optional transition cue
func (l *Loop) SetCue(cue Cue) {
	l.cue = cue
}

// SetInterval overrides the sleep between iterations
func (l *Loop) SetInterval(d time.Duration) {
	l.interval = d
}

// Stopwatch returns the loop-owned stopwatch
func (l *Loop) Stopwatch() *stopwatch.Stopwatch {
	return l.stopwatch
}

// Step runs one iteration: poll, apply intents, render
// Returns true when a quit intent was seen; the frame is still rendered
func (l *Loop) Step() (quit bool, err error) {
	intents, err := l.source.Poll()
	if err != nil {
		return false, fmt.Errorf("poll input: %w", err)
	}

	for _, intent := range intents {
		if quit {
			break
		}
		switch intent {
		case input.IntentTrigger:
			l.advance()
		case input.IntentResize:
			l.surface.Resync()
		case input.IntentQuit:
			quit = true
		}
	}

	if err := l.surface.Render(l.Frame()); err != nil {
		return quit, fmt.Errorf("render frame: %w", err)
	}
	return quit, nil
}

func (l *Loop) advance() {
	prev := l.stopwatch.State()
	state := l.stopwatch.Advance()

	switch state {
	case stopwatch.Done:
		log.Printf("stopwatch: %v -> %v (%s)", prev, state, l.stopwatch.Display())
	default:
		log.Printf("stopwatch: %v -> %v", prev, state)
	}

	if l.cue != nil {
		l.cue.Play(state)
	}
}

// Frame builds the content for the current instant
func (l *Loop) Frame() display.Frame {
	return display.Frame{
		Left: display.Panel{
			Title:    constants.StopwatchTitle,
			Text:     l.stopwatch.Display(),
			Emphasis: emphasisFor(l.stopwatch.State()),
		},
		Right: display.Panel{
			Title: constants.WallClockTitle,
			Text:  clock.FormatUTC(l.tp.Now()),
		},
	}
}

func emphasisFor(state stopwatch.State) display.Emphasis {
	switch state {
	case stopwatch.Running:
		return display.EmphasisActive
	case stopwatch.Done:
		return display.EmphasisHeld
	default:
		return display.EmphasisIdle
	}
}

// Run steps until quit or ctx is cancelled, both of which return nil
// Any poll or render error ends the loop and is returned
func (l *Loop) Run(ctx context.Context) error {
	timer := time.NewTimer(l.interval)
	defer timer.Stop()

	for {
		quit, err := l.Step()
		if err != nil {
			return err
		}
		if quit {
			log.Printf("loop: quit requested")
			return nil
		}

		timer.Reset(l.interval)
		select {
		case <-ctx.Done():
			log.Printf("loop: %v", ctx.Err())
			return nil
		case <-timer.C:
		}
	}
}
