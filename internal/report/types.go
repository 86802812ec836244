package report

import "meckano-helper/pkg/timemath"

// FillInput is one fill request.
type FillInput struct {
	Window   timemath.Window
	Humanize bool
}

// FillOutput aggregates one fill pass.
type FillOutput struct {
	RunID string

	Filled  int
	Skipped int
	Errors  int

	Submitted bool

	// DialogClosed is false when the submit control was activated but the
	// host never closed the dialog. That is success-with-warning, not a
	// failure: the page is usually showing validation errors the operator
	// must resolve by hand.
	DialogClosed bool

	Message string
}
