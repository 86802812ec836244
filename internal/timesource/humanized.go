package timesource

import (
	"math/rand"
	"time"

	"meckano-helper/pkg/timemath"
)

// HumanizedSource perturbs each endpoint of the base window independently
// by a uniform integer offset in [-jitter, +jitter] minutes, clamped into
// [00:00, 23:59].
//
// The offsets are recomputed from the original base window on every call:
// they never compound across calls or across the two endpoints, so a
// window's duration may shrink, grow, or invert. Callers that need
// checkout > checkin must validate that themselves.
type HumanizedSource struct {
	base   timemath.Window
	jitter int
	intN   func(n int) int
}

var _ Source = (*HumanizedSource)(nil)

// NewHumanized creates a HumanizedSource with the default jitter bound.
func NewHumanized(base timemath.Window) *HumanizedSource {
	return &HumanizedSource{
		base:   base,
		jitter: DefaultJitterMinutes,
		intN:   rand.Intn,
	}
}

// TimeFor returns a freshly perturbed copy of the base window.
func (s *HumanizedSource) TimeFor(date time.Time) (timemath.Window, bool) {
	return timemath.Window{
		CheckIn:  s.base.CheckIn.AddMinutesClamp(s.offset()),
		CheckOut: s.base.CheckOut.AddMinutesClamp(s.offset()),
	}, true
}

func (s *HumanizedSource) offset() int {
	return s.intN(2*s.jitter+1) - s.jitter
}
