package clock

import (
	"testing"
	"time"
)

func TestFormatUTC(t *testing.T) {
	tests := []struct {
		name     string
		in       time.Time
		expected string
	}{
		{
			name:     "Zero padded fields",
			in:       time.Date(2024, 3, 7, 4, 5, 6, 0, time.UTC),
			expected: "2024/03/07 04:05:06",
		},
		{
			name:     "24 hour clock",
			in:       time.Date(2024, 12, 31, 23, 59, 59, 999_000_000, time.UTC),
			expected: "2024/12/31 23:59:59",
		},
		{
			name:     "Converted from other zone",
			in:       time.Date(2024, 1, 1, 1, 30, 0, 0, time.FixedZone("UTC+2", 2*60*60)),
			expected: "2023/12/31 23:30:00",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatUTC(tt.in); got != tt.expected {
				t.Errorf("FormatUTC(%v) = %q, want %q", tt.in, got, tt.expected)
			}
		})
	}
}

func TestFormatUTCLength(t *testing.T) {
	got := FormatUTC(NewMonotonicTimeProvider().Now())
	if len(got) != len(WallLayout) {
		t.Errorf("Expected %d characters, got %q", len(WallLayout), got)
	}
}
