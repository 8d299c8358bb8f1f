package ranking

import "time"

// Window restricts which activity-log rows count toward a metric.
type Window string

const (
	WindowAllTime Window = "all-time"
	WindowDaily   Window = "daily"
	WindowWeekly  Window = "weekly"
	WindowMonthly Window = "monthly"
)

// ParseWindow maps a caller-supplied window string to a Window, falling back
// to all-time for unknown values.
func ParseWindow(s string) Window {
	switch Window(s) {
	case WindowDaily, WindowWeekly, WindowMonthly:
		return Window(s)
	default:
		return WindowAllTime
	}
}

// Cutoff returns the inclusive lower bound for rows counted under the window.
// Cutoffs are anchored at the start of the current day: daily counts today's
// rows, weekly and monthly reach back 7 and 30 days from midnight. The second
// return value is false for all-time (no restriction).
func (w Window) Cutoff(now time.Time) (time.Time, bool) {
	startOfDay := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	switch w {
	case WindowDaily:
		return startOfDay, true
	case WindowWeekly:
		return startOfDay.AddDate(0, 0, -7), true
	case WindowMonthly:
		return startOfDay.AddDate(0, 0, -30), true
	default:
		return time.Time{}, false
	}
}
