package report

import (
	"context"

	"meckano-helper/internal/model"
)

// UseCase defines the business logic interface for the attendance-report domain.
type UseCase interface {
	// Fill runs the whole pipeline once: open the dialog, wait for it to
	// render, fill the empty time fields of working rows, submit, and
	// confirm closure. At most one Fill runs at a time; a concurrent call
	// fails with ErrFillInFlight.
	//
	// The returned FillOutput carries whatever counts were accumulated even
	// when err is non-nil, so callers can surface partial progress.
	Fill(ctx context.Context, sc model.Scope, input FillInput) (FillOutput, error)

	// Run returns the retained report of a recent fill run.
	Run(ctx context.Context, sc model.Scope, id string) (model.RunReport, error)
}
