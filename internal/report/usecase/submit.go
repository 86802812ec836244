package usecase

import (
	"context"
	"fmt"

	"meckano-helper/internal/model"
	"meckano-helper/internal/report"
)

// submitAndConfirm activates the submit control and polls for the dialog
// to disappear. Returns closed=false with a nil error when the click was
// accepted but the host kept the dialog open: that distinguishes "we could
// not click it" from "we clicked it but the host would not close", the
// latter usually meaning on-page validation errors the operator must see.
func (u *implUseCase) submitAndConfirm(ctx context.Context, sc model.Scope) (closed bool, err error) {
	present, err := u.repo.SubmitPresent(ctx)
	if err != nil {
		return false, fmt.Errorf("probing submit control: %w", err)
	}
	if !present {
		return false, report.ErrSubmitNotFound
	}

	enabled, err := u.repo.SubmitEnabled(ctx)
	if err != nil {
		return false, fmt.Errorf("probing submit state: %w", err)
	}
	if !enabled {
		return false, report.ErrSubmitDisabled
	}

	if err := u.repo.ActivateSubmit(ctx); err != nil {
		return false, fmt.Errorf("activating submit: %w", err)
	}

	u.l.Debugf(ctx, "%s: run %s: submit activated, settling %s",
		LogPrefixSubmit, sc.RunID, u.page.SubmitSettle)
	u.clock.Sleep(u.page.SubmitSettle)

	for attempt := 1; attempt <= u.page.CloseAttempts; attempt++ {
		visible, err := u.repo.DialogVisible(ctx)
		if err == nil && !visible {
			u.l.Infof(ctx, "%s: run %s: dialog closed after %d attempt(s)",
				LogPrefixSubmit, sc.RunID, attempt)
			return true, nil
		}
		if err != nil {
			u.l.Debugf(ctx, "%s: run %s: attempt %d: visibility probe error: %v",
				LogPrefixSubmit, sc.RunID, attempt, err)
		}
		if attempt < u.page.CloseAttempts {
			u.clock.Sleep(u.page.CloseInterval)
		}
	}

	u.l.Warnf(ctx, "%s: run %s: dialog still open after %d attempts",
		LogPrefixSubmit, sc.RunID, u.page.CloseAttempts)
	return false, nil
}
