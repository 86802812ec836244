package timemath

// Window is an ordered (checkin, checkout) pair.
//
// No invariant is enforced that CheckOut is after CheckIn: a humanized
// window may shrink or invert, and validating duration is the caller's
// responsibility.
type Window struct {
	CheckIn  TimeOfDay
	CheckOut TimeOfDay
}

// ParseWindow builds a Window from two "HH:MM" strings.
func ParseWindow(start, end string) (Window, error) {
	checkIn, err := Parse(start)
	if err != nil {
		return Window{}, err
	}
	checkOut, err := Parse(end)
	if err != nil {
		return Window{}, err
	}
	return Window{CheckIn: checkIn, CheckOut: checkOut}, nil
}
