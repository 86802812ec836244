package timesource

import (
	"time"

	"meckano-helper/pkg/timemath"
)

// FixedSource always returns its configured window.
type FixedSource struct {
	window timemath.Window
}

var _ Source = (*FixedSource)(nil)

// NewFixed creates a FixedSource for the given window.
func NewFixed(window timemath.Window) *FixedSource {
	return &FixedSource{window: window}
}

// TimeFor returns the configured window for every date.
func (s *FixedSource) TimeFor(date time.Time) (timemath.Window, bool) {
	return s.window, true
}
