// ABOUTME: Duration formatting utilities for human readable elapsed times
// ABOUTME: Renders "N minutes ago" style labels used next to comment timestamps

package duration

import (
	"fmt"
	"math"
	"time"
)

// Ago renders an elapsed duration as minutes, hours or days ago.
// The unit is chosen on the unrounded value and the count is rounded.
// Negative durations (clock skew) are treated as zero.
func Ago(d time.Duration) string {
	if d < 0 {
		d = 0
	}

	mins := d.Minutes()
	if mins < 60 {
		return format(mins, "minute")
	}
	hours := mins / 60
	if hours < 24 {
		return format(hours, "hour")
	}
	return format(hours/24, "day")
}

func format(value float64, unit string) string {
	suffix := ""
	if value > 1 {
		suffix = "s"
	}
	return fmt.Sprintf("%d %s%s ago", int64(math.Round(value)), unit, suffix)
}
