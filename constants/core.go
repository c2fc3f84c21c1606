package constants

import "time"

// Event Loop Timing
const (
	// RefreshInterval is the sleep between loop iterations, bounding CPU use and input latency
	RefreshInterval = 20 * time.Millisecond
)

// Logging
const (
	// DebugLogging routes the standard logger to LogDir/LogFileName instead of discarding it
	DebugLogging = false

	LogDir      = "logs"
	LogFileName = "splitclock.log"
)
