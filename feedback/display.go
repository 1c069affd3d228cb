package feedback

import (
	"fmt"
	"time"
)

const calendarDateLayout = "January 2, 2006"

// FormatFeedbackDate renders the long-form submission date shown next to
// a feedback entry. Computed at read time, never stored.
func FormatFeedbackDate(t time.Time) string {
	return t.Format("January 2, 2006 at 3:04 PM")
}

// TimeAgo renders a relative description of t as seen from now, falling
// back to a plain calendar date beyond a week.
func TimeAgo(t, now time.Time) string {
	elapsed := now.Sub(t)

	switch {
	case elapsed < time.Minute:
		return "Just now"
	case elapsed < time.Hour:
		return pluralAgo(int(elapsed.Minutes()), "minute")
	case elapsed < 24*time.Hour:
		return pluralAgo(int(elapsed.Hours()), "hour")
	case elapsed < 7*24*time.Hour:
		return pluralAgo(int(elapsed.Hours()/24), "day")
	default:
		return t.Format(calendarDateLayout)
	}
}

func pluralAgo(n int, unit string) string {
	if n == 1 {
		return fmt.Sprintf("1 %s ago", unit)
	}
	return fmt.Sprintf("%d %ss ago", n, unit)
}
