package input

import (
	"errors"
	"sync"

	"github.com/gdamore/tcell/v2"
)

// ErrSourceClosed is returned by Poll once the event stream has ended
var ErrSourceClosed = errors.New("input source closed")

// eventBuffer bounds events queued between two polls
const eventBuffer = 256

// EventPoller blocks until the next event, returning nil once finalized
// tcell.Screen satisfies it
type EventPoller interface {
	PollEvent() tcell.Event
}

// Source pumps events from a blocking poller into a buffer that Poll drains without waiting
type Source struct {
	poller  EventPoller
	eventCh chan tcell.Event
	stopCh  chan struct{}
	doneCh  chan struct{}

	startOnce sync.Once
	stopOnce  sync.Once
}

// NewSource creates a source over poller, Start must be called before Poll yields events
func NewSource(poller EventPoller) *Source {
	return &Source{
		poller:  poller,
		eventCh: make(chan tcell.Event, eventBuffer),
		stopCh:  make(chan struct{}),
		doneCh:  make(chan struct{}),
	}
}

// Start launches the pump goroutine
func (s *Source) Start() {
	s.startOnce.Do(func() {
		go s.pump()
	})
}

// pump reads events until the poller is finalized or Stop is called
func (s *Source) pump() {
	defer close(s.doneCh)

	for {
		ev := s.poller.PollEvent()
		if ev == nil {
			return
		}

		select {
		case s.eventCh <- ev:
		case <-s.stopCh:
			return
		}
	}
}

// Poll returns the intents of all pending events in arrival order without blocking
// Events mapping to IntentNone are dropped
func (s *Source) Poll() ([]Intent, error) {
	var intents []Intent
drain:
	for {
		select {
		case ev := <-s.eventCh:
			if intent := Classify(ev); intent != IntentNone {
				intents = append(intents, intent)
			}
		default:
			break drain
		}
	}

	if len(intents) == 0 && s.closed() {
		return nil, ErrSourceClosed
	}
	return intents, nil
}

// closed reports whether the pump has exited and nothing is left to drain
func (s *Source) closed() bool {
	select {
	case <-s.doneCh:
		return len(s.eventCh) == 0
	default:
		return false
	}
}

// Stop releases the pump if it is blocked on a full buffer
// A pump blocked inside PollEvent exits once the screen is finalized
func (s *Source) Stop() {
	s.stopOnce.Do(func() {
		close(s.stopCh)
	})
}
