package usecase

import (
	"context"
	"fmt"

	"meckano-helper/internal/model"
	"meckano-helper/internal/report"
)

// openDialog locates the trigger control and activates it. The settle
// delay bridges the gap between activation and the host beginning to
// render; readiness is established separately by waitUntilReady.
func (u *implUseCase) openDialog(ctx context.Context, sc model.Scope) error {
	present, err := u.repo.TriggerPresent(ctx)
	if err != nil {
		return fmt.Errorf("probing trigger: %w", err)
	}
	if !present {
		return report.ErrTriggerNotFound
	}

	if err := u.repo.ActivateTrigger(ctx); err != nil {
		return fmt.Errorf("activating trigger: %w", err)
	}

	u.l.Debugf(ctx, "%s: run %s: trigger activated, settling %s",
		LogPrefixOpenDialog, sc.RunID, u.page.OpenSettle)
	u.clock.Sleep(u.page.OpenSettle)
	return nil
}

type readinessCheck struct {
	name  string
	probe func(context.Context) (bool, error)
}

// waitUntilReady polls the host document until the dialog reaches its
// ready shape or attempts are exhausted. The checks run coarse to fine so
// the diagnostic narrows monotonically across retries. "Not yet rendered"
// and "transient DOM error" are treated identically — both just mean "not
// ready this attempt" — because the host's asynchronous rendering timing
// is not observable except by polling.
func (u *implUseCase) waitUntilReady(ctx context.Context, sc model.Scope) readinessReport {
	var inputCount int

	checks := []readinessCheck{
		{name: "dialog container", probe: u.repo.DialogPresent},
		{name: "dialog visible", probe: u.repo.DialogVisible},
		{name: "attendance view", probe: u.repo.AttendanceViewPresent},
		{name: "attendance view visible", probe: u.repo.AttendanceViewVisible},
		{name: "hours table", probe: u.repo.RowTablePresent},
		{name: "time inputs", probe: func(ctx context.Context) (bool, error) {
			n, err := u.repo.TimeInputCount(ctx)
			if err != nil {
				return false, err
			}
			inputCount = n
			return n > 0, nil
		}},
		{name: "submit control", probe: u.repo.SubmitPresent},
	}

	lastMissing := ""
	for attempt := 1; attempt <= u.page.ReadyAttempts; attempt++ {
		missing := ""
		for _, chk := range checks {
			ok, err := chk.probe(ctx)
			if err != nil {
				u.l.Debugf(ctx, "%s: run %s: attempt %d: %s probe error: %v",
					LogPrefixWaitReady, sc.RunID, attempt, chk.name, err)
				missing = chk.name
				break
			}
			if !ok {
				missing = chk.name
				break
			}
		}

		if missing == "" {
			u.l.Infof(ctx, "%s: run %s: ready after %d attempt(s), %d time inputs",
				LogPrefixWaitReady, sc.RunID, attempt, inputCount)
			return readinessReport{Ready: true, Attempts: attempt, InputCount: inputCount}
		}

		lastMissing = missing
		u.l.Debugf(ctx, "%s: run %s: attempt %d/%d: waiting for %s",
			LogPrefixWaitReady, sc.RunID, attempt, u.page.ReadyAttempts, missing)

		if attempt < u.page.ReadyAttempts {
			u.clock.Sleep(u.page.ReadyInterval)
		}
	}

	u.l.Warnf(ctx, "%s: run %s: not ready after %d attempts, stuck on %s",
		LogPrefixWaitReady, sc.RunID, u.page.ReadyAttempts, lastMissing)
	return readinessReport{Attempts: u.page.ReadyAttempts, Missing: lastMissing}
}

// isReady is the single-shot diagnostic check: dialog present and visible,
// no waiting.
func (u *implUseCase) isReady(ctx context.Context) bool {
	present, err := u.repo.DialogPresent(ctx)
	if err != nil || !present {
		return false
	}
	visible, err := u.repo.DialogVisible(ctx)
	return err == nil && visible
}
