package repository

import "context"

// PageRepository is the access layer for the host document. The document
// is externally owned, mutable, and only partially observable: every probe
// is a snapshot that may be stale by the next call, so callers must treat
// errors and negative results identically during polling.
type PageRepository interface {
	// Trigger control
	TriggerPresent(ctx context.Context) (bool, error)
	ActivateTrigger(ctx context.Context) error

	// Dialog readiness probes, coarse to fine.
	DialogPresent(ctx context.Context) (bool, error)
	DialogVisible(ctx context.Context) (bool, error)
	AttendanceViewPresent(ctx context.Context) (bool, error)
	AttendanceViewVisible(ctx context.Context) (bool, error)
	RowTablePresent(ctx context.Context) (bool, error)
	TimeInputCount(ctx context.Context) (int, error)

	// Submit control
	SubmitPresent(ctx context.Context) (bool, error)
	SubmitEnabled(ctx context.Context) (bool, error)
	ActivateSubmit(ctx context.Context) error

	// Rows returns raw snapshots of all data rows (header excluded), in
	// document order.
	Rows(ctx context.Context) ([]RowSnapshot, error)

	// WriteField sets one time input of one row and dispatches the host's
	// change-notification events so its own listeners observe the edit.
	WriteField(ctx context.Context, rowIndex int, field Field, value string) error
}

// Field names a writable time input within a row.
type Field string

const (
	FieldCheckIn  Field = "checkIn"
	FieldCheckOut Field = "checkOut"
)

// RowSnapshot is the raw, unparsed state of one data row.
type RowSnapshot struct {
	Index       int    `json:"index"`
	DateText    string `json:"dateText"`
	SpecialDay  string `json:"specialDay"`
	AbsenceCode string `json:"absenceCode"`
	CheckIn     string `json:"checkIn"`
	CheckOut    string `json:"checkOut"`
}
