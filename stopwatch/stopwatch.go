package stopwatch

import (
	"time"

	"github.com/lixenwraith/splitclock/clock"
)

// Stopwatch cycles NotStarted -> Running -> Done -> NotStarted on each Advance
// Not safe for concurrent use; a single owner drives it
type Stopwatch struct {
	tp    clock.TimeProvider
	phase phase
}

// New creates a stopwatch in NotStarted reading time from tp
func New(tp clock.TimeProvider) *Stopwatch {
	return &Stopwatch{
		tp:    tp,
		phase: notStarted{},
	}
}

// State returns the active state
func (s *Stopwatch) State() State {
	return s.phase.state()
}

// Advance moves exactly one step around the cycle and returns the new state
func (s *Stopwatch) Advance() State {
	switch p := s.phase.(type) {
	case notStarted:
		s.phase = running{origin: s.tp.Now()}
	case running:
		elapsed := s.tp.Now().Sub(p.origin)
		s.phase = done{frozen: Format(elapsed), elapsed: max(elapsed, 0)}
	case done:
		s.phase = notStarted{}
	}
	return s.phase.state()
}

// Display returns the string for the current instant without mutating state
func (s *Stopwatch) Display() string {
	switch p := s.phase.(type) {
	case running:
		return Format(s.tp.Now().Sub(p.origin))
	case done:
		return p.frozen
	default:
		return ZeroDisplay
	}
}

// Elapsed returns zero before start, the live duration while running, and the captured duration once stopped
func (s *Stopwatch) Elapsed() time.Duration {
	switch p := s.phase.(type) {
	case running:
		return max(s.tp.Now().Sub(p.origin), 0)
	case done:
		return p.elapsed
	default:
		return 0
	}
}
