package usecase

// readinessReport is the terminal result of one readiness-polling call.
type readinessReport struct {
	Ready    bool
	Attempts int

	// InputCount is the number of time inputs observed on the successful
	// attempt. Zero when not ready.
	InputCount int

	// Missing names the first precondition that failed on the last attempt.
	// Empty when ready.
	Missing string
}

// rowTotals aggregates per-row outcomes of one fill pass.
type rowTotals struct {
	filled  int
	skipped int
	errors  int
}
