package usecase

import "time"

// Log prefixes
const (
	LogPrefixFill       = "internal.report.usecase.Fill"
	LogPrefixOpenDialog = "internal.report.usecase.openDialog"
	LogPrefixWaitReady  = "internal.report.usecase.waitUntilReady"
	LogPrefixFillRows   = "internal.report.usecase.fillRows"
	LogPrefixSubmit     = "internal.report.usecase.submitAndConfirm"
)

// Run history retention
const (
	RunHistorySize = 64
	RunHistoryTTL  = 30 * time.Minute
)

// Messages surfaced to the caller
const (
	MsgDialogOpenFailed = "could not open the reporting dialog"
	MsgRowsFailed       = "attendance rows became unavailable mid-run"
	MsgSubmitFailed     = "rows processed but submit failed"
	MsgStillOpenWarning = "submit accepted but the dialog stayed open; check the page for validation errors"

	MsgNotReadyFmt = "dialog not ready after %d attempts (stuck on: %s)"
	MsgDoneFmt     = "filled %d, skipped %d, errors %d"
)
