package stopwatch

import (
	"strconv"
	"time"
)

// ZeroDisplay is shown while the stopwatch has not been started
const ZeroDisplay = "0:0:0"

// Format renders elapsed time as minutes:seconds:split
// Fields are not zero-padded, minutes never roll over into hours, and split is hundredths of a second truncated
func Format(elapsed time.Duration) string {
	ms := elapsed.Milliseconds()
	if ms < 0 {
		ms = 0
	}

	minutes := ms / 60000
	ms -= minutes * 60000
	seconds := ms / 1000
	ms -= seconds * 1000
	split := ms / 10

	buf := make([]byte, 0, 12)
	buf = strconv.AppendInt(buf, minutes, 10)
	buf = append(buf, ':')
	buf = strconv.AppendInt(buf, seconds, 10)
	buf = append(buf, ':')
	buf = strconv.AppendInt(buf, split, 10)
	return string(buf)
}
