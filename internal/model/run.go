package model

import "time"

// RunReport is the retained summary of one fill run.
type RunReport struct {
	ID         string
	StartedAt  time.Time
	FinishedAt time.Time

	Success bool
	Message string

	Filled  int
	Skipped int
	Errors  int

	// Submitted is true once the submit control was activated.
	Submitted bool

	// DialogClosed is false when submit was accepted but the host kept the
	// dialog open, usually on-page validation errors the operator must see.
	DialogClosed bool
}
