package medialogs

import (
	"math"
	"time"
)

// StarBreakdown decomposes a [0,5] rating into render primitives. The three
// counts always sum to five.
func StarBreakdown(rating float64) (full int, half bool, empty int) {
	full = int(math.Floor(rating))
	half = rating-math.Floor(rating) >= 0.5
	empty = 5 - full
	if half {
		empty--
	}
	return full, half, empty
}

// FormatWatchDate renders a diary date the way the list screens show it,
// e.g. "Jan 2, 2006".
func FormatWatchDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format("Jan 2, 2006")
}
