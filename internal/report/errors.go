package report

import "errors"

// Domain-specific errors for the report package.
var (
	// ErrTriggerNotFound — the dialog trigger control is absent from the
	// host document; page shape mismatch.
	ErrTriggerNotFound = errors.New("report trigger control not found")

	// ErrDialogNotReady — readiness polling exhausted all attempts without
	// the dialog reaching its ready shape.
	ErrDialogNotReady = errors.New("report dialog did not become ready")

	// ErrRowsUnavailable — the row table disappeared between readiness and
	// filling; structural failure of the whole pass.
	ErrRowsUnavailable = errors.New("report rows unavailable")

	ErrSubmitNotFound = errors.New("submit control not found")
	ErrSubmitDisabled = errors.New("submit control is disabled")

	// ErrFillInFlight — a fill request is already running.
	ErrFillInFlight = errors.New("a fill request is already in flight")

	// ErrRunNotFound — no retained report under that run id.
	ErrRunNotFound = errors.New("run report not found")
)
