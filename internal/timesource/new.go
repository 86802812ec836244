package timesource

import "meckano-helper/pkg/timemath"

// New selects the source variant for a fill request.
func New(window timemath.Window, humanize bool) Source {
	if humanize {
		return NewHumanized(window)
	}
	return NewFixed(window)
}
