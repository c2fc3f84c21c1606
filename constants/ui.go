package constants

// Panel titles
const (
	StopwatchTitle = "Stopwatch"
	WallClockTitle = "UTC Time"
)

// PanelSplit is the left panel's share of the screen width
const PanelSplit = 0.5
