package snapshot

import (
	"fmt"
	"time"
)

// FormatCountdown renders the time remaining until an arrival.
//
// Under a minute it reads "Due"; under an hour just minutes ("7m"); on exact
// hours just hours ("2h"); otherwise both ("1h 30m"). Minutes are floored,
// so 90 seconds out is still "1m".
func FormatCountdown(arrival, now time.Time) string {
	minutes := int(arrival.Sub(now) / time.Minute)
	hours := minutes / 60

	if minutes < 1 && hours < 1 {
		return "Due"
	}
	if hours == 0 {
		return fmt.Sprintf("%dm", minutes%60)
	}
	if minutes%60 == 0 {
		return fmt.Sprintf("%dh", hours)
	}
	return fmt.Sprintf("%dh %dm", hours, minutes%60)
}

// FormatETA renders a countdown for one arrival record, falling back to
// "No ETA" when the feed could not produce a prediction.
func FormatETA(etaUnixMilli int64, noETA bool, now time.Time) string {
	if noETA {
		return "No ETA"
	}
	return FormatCountdown(time.UnixMilli(etaUnixMilli), now)
}
