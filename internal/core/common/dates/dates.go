package dates

import (
	"math"
	"time"
)

// WireFormat is the date layout used by the roster service for plain dates.
const WireFormat = "2006-01-02"

var acceptedLayouts = []string{
	WireFormat,
	time.RFC3339,
	"02/01/2006",
}

// Parse converts a wire date to an instant. It is total: anything that does
// not parse under the accepted layouts yields the zero time.
func Parse(s string) time.Time {
	if s == "" {
		return time.Time{}
	}
	for _, layout := range acceptedLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return time.Time{}
}

// Format renders an instant back to the wire layout, empty for the zero time.
func Format(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(WireFormat)
}

// DurationDays is the number of calendar days covered by [start, end],
// inclusive of both endpoints: one day for start == end.
func DurationDays(start, end time.Time) int {
	if start.IsZero() || end.IsZero() {
		return 0
	}
	diff := end.Sub(start)
	if diff < 0 {
		diff = -diff
	}
	return int(math.Ceil(diff.Hours()/24)) + 1
}
