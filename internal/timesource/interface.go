package timesource

import (
	"time"

	"meckano-helper/pkg/timemath"
)

// Source yields the (checkin, checkout) window for a calendar date, or
// reports that it has no data for that date.
//
// Implementations must be pure functions of their configuration plus
// optional randomness: nothing carries over between calls. Future variants
// (e.g. a schedule-file source) plug in behind this same interface.
type Source interface {
	TimeFor(date time.Time) (timemath.Window, bool)
}
