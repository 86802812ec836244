package usecase

import (
	"context"
	"fmt"
	"time"

	"meckano-helper/internal/model"
	"meckano-helper/internal/report"
	"meckano-helper/internal/timesource"
)

var _ report.UseCase = (*implUseCase)(nil)

// Fill runs the pipeline once: open → wait until ready → fill rows →
// submit and confirm. Partial counts are returned alongside any error.
func (u *implUseCase) Fill(ctx context.Context, sc model.Scope, input report.FillInput) (report.FillOutput, error) {
	if !u.inFlight.CompareAndSwap(false, true) {
		return report.FillOutput{RunID: sc.RunID}, report.ErrFillInFlight
	}
	defer u.inFlight.Store(false)

	started := u.clock.Now()
	out := report.FillOutput{RunID: sc.RunID}

	u.l.Infof(ctx, "%s: run %s: window %s-%s humanize=%t",
		LogPrefixFill, sc.RunID, input.Window.CheckIn, input.Window.CheckOut, input.Humanize)

	if err := u.openDialog(ctx, sc); err != nil {
		out.Message = MsgDialogOpenFailed
		u.storeRun(sc, started, out, false)
		return out, err
	}

	ready := u.waitUntilReady(ctx, sc)
	if !ready.Ready {
		out.Message = fmt.Sprintf(MsgNotReadyFmt, ready.Attempts, ready.Missing)
		u.storeRun(sc, started, out, false)
		return out, report.ErrDialogNotReady
	}

	src := timesource.New(input.Window, input.Humanize)
	totals, err := u.fillRows(ctx, sc, src)
	out.Filled = totals.filled
	out.Skipped = totals.skipped
	out.Errors = totals.errors
	if err != nil {
		out.Message = MsgRowsFailed
		u.storeRun(sc, started, out, false)
		return out, err
	}

	closed, err := u.submitAndConfirm(ctx, sc)
	if err != nil {
		out.Message = MsgSubmitFailed
		u.storeRun(sc, started, out, false)
		return out, err
	}

	out.Submitted = true
	out.DialogClosed = closed
	if closed {
		out.Message = fmt.Sprintf(MsgDoneFmt, out.Filled, out.Skipped, out.Errors)
	} else {
		out.Message = MsgStillOpenWarning
	}

	u.storeRun(sc, started, out, true)
	return out, nil
}

// Run returns the retained report of a recent fill run.
func (u *implUseCase) Run(ctx context.Context, sc model.Scope, id string) (model.RunReport, error) {
	rep, ok := u.runs.Get(id)
	if !ok {
		return model.RunReport{}, report.ErrRunNotFound
	}
	return rep, nil
}

func (u *implUseCase) storeRun(sc model.Scope, started time.Time, out report.FillOutput, success bool) {
	u.runs.Add(sc.RunID, model.RunReport{
		ID:           sc.RunID,
		StartedAt:    started,
		FinishedAt:   u.clock.Now(),
		Success:      success,
		Message:      out.Message,
		Filled:       out.Filled,
		Skipped:      out.Skipped,
		Errors:       out.Errors,
		Submitted:    out.Submitted,
		DialogClosed: out.DialogClosed,
	})
}
