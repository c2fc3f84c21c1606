package clock

import "time"

// WallLayout renders as YYYY/MM/DD HH:MM:SS, 24-hour, zero-padded
const WallLayout = "2006/01/02 15:04:05"

// FormatUTC renders t in UTC using WallLayout
func FormatUTC(t time.Time) string {
	return t.UTC().Format(WallLayout)
}
