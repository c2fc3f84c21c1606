package stopwatch

import "time"

// State identifies the active phase of the stopwatch cycle
type State int

const (
	NotStarted State = iota
	Running
	Done
	stateCount
)

var stateNames = [...]string{
	NotStarted: "NotStarted",
	Running:    "Running",
	Done:       "Done",
}

// String returns the state name
func (s State) String() string {
	if s < 0 || s >= stateCount {
		return "Unknown"
	}
	return stateNames[s]
}

// phase is the tagged variant holding state-specific payload
// Only the three types below implement it
type phase interface {
	state() State
}

type notStarted struct{}

// running carries the start instant of the current interval
type running struct {
	origin time.Time
}

// done carries the display and duration captured at stop
type done struct {
	frozen  string
	elapsed time.Duration
}

func (notStarted) state() State { return NotStarted }
func (running) state() State    { return Running }
func (done) state() State       { return Done }
