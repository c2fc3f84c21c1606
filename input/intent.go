package input

import "github.com/gdamore/tcell/v2"

// Intent is the semantic meaning of one input event
type Intent uint8

const (
	IntentNone    Intent = iota
	IntentTrigger        // Enter: advance the stopwatch
	IntentQuit           // Ctrl+C, Esc
	IntentResize         // Terminal resize event
)

var intentNames = [...]string{
	IntentNone:    "none",
	IntentTrigger: "trigger",
	IntentQuit:    "quit",
	IntentResize:  "resize",
}

// String returns the intent name
func (i Intent) String() string {
	if int(i) >= len(intentNames) {
		return "unknown"
	}
	return intentNames[i]
}

// Classify maps a tcell event to an intent
// tcell delivers key presses only, so repeats and releases never reach here as distinct events
func Classify(ev tcell.Event) Intent {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEnter:
			return IntentTrigger
		case tcell.KeyCtrlC, tcell.KeyEscape:
			return IntentQuit
		}
	case *tcell.EventResize:
		return IntentResize
	}
	return IntentNone
}
