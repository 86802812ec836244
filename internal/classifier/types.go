package classifier

// Action is the classification verdict for a row.
type Action string

const (
	ActionWork Action = "WORK"
	ActionSkip Action = "SKIP"
)

// Classification is the result of classifying one calendar row.
type Classification struct {
	Action Action

	// Reason explains why the row is skipped. Empty for ActionWork.
	Reason string
}

// Skip reports whether the row should be left untouched.
func (c Classification) Skip() bool {
	return c.Action == ActionSkip
}
