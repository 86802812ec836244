package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/jonboulle/clockwork"

	"meckano-helper/config"
	"meckano-helper/internal/classifier"
	"meckano-helper/internal/report/repository"
	"meckano-helper/internal/timesource"
	"meckano-helper/pkg/timemath"
)

// mock dependencies

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Debugf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Info(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Infof(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Warnf(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Error(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Errorf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, args ...any)                 {}
func (m *mockLogger) DPanicf(ctx context.Context, format string, args ...any) {}
func (m *mockLogger) Panic(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Panicf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Fatalf(ctx context.Context, format string, args ...any)  {}

type fieldWrite struct {
	rowIndex int
	field    repository.Field
	value    string
}

// mockPage is a scriptable PageRepository. Field writes mutate the row
// snapshots so a second pass observes the first pass's edits, like the
// real document would.
type mockPage struct {
	trigger     bool
	activations int

	dialogPresent bool
	dialogVisible bool
	viewPresent   bool
	viewVisible   bool
	tablePresent  bool
	inputCount    int
	submitPresent bool
	submitEnabled bool
	submitClicks  int

	rows     []repository.RowSnapshot
	writes   []fieldWrite
	writeErr error

	// Per-probe hooks override the static fields when set. The int is the
	// 1-based call count for that probe.
	onDialogPresent func(call int) (bool, error)
	onDialogVisible func(call int) (bool, error)
	onTablePresent  func(call int) (bool, error)

	dialogPresentCalls int
	dialogVisibleCalls int
	tablePresentCalls  int
}

// newReadyPage returns a mock whose dialog is fully rendered.
func newReadyPage(rows []repository.RowSnapshot) *mockPage {
	inputCount := 2 * len(rows)
	if inputCount == 0 {
		inputCount = 2
	}
	return &mockPage{
		trigger:       true,
		dialogPresent: true,
		dialogVisible: true,
		viewPresent:   true,
		viewVisible:   true,
		tablePresent:  true,
		inputCount:    inputCount,
		submitPresent: true,
		submitEnabled: true,
		rows:          rows,
	}
}

func (p *mockPage) TriggerPresent(ctx context.Context) (bool, error) { return p.trigger, nil }

func (p *mockPage) ActivateTrigger(ctx context.Context) error {
	p.activations++
	return nil
}

func (p *mockPage) DialogPresent(ctx context.Context) (bool, error) {
	p.dialogPresentCalls++
	if p.onDialogPresent != nil {
		return p.onDialogPresent(p.dialogPresentCalls)
	}
	return p.dialogPresent, nil
}

func (p *mockPage) DialogVisible(ctx context.Context) (bool, error) {
	p.dialogVisibleCalls++
	if p.onDialogVisible != nil {
		return p.onDialogVisible(p.dialogVisibleCalls)
	}
	return p.dialogVisible, nil
}

func (p *mockPage) AttendanceViewPresent(ctx context.Context) (bool, error) {
	return p.viewPresent, nil
}

func (p *mockPage) AttendanceViewVisible(ctx context.Context) (bool, error) {
	return p.viewVisible, nil
}

func (p *mockPage) RowTablePresent(ctx context.Context) (bool, error) {
	p.tablePresentCalls++
	if p.onTablePresent != nil {
		return p.onTablePresent(p.tablePresentCalls)
	}
	return p.tablePresent, nil
}

func (p *mockPage) TimeInputCount(ctx context.Context) (int, error) { return p.inputCount, nil }

func (p *mockPage) SubmitPresent(ctx context.Context) (bool, error) { return p.submitPresent, nil }

func (p *mockPage) SubmitEnabled(ctx context.Context) (bool, error) { return p.submitEnabled, nil }

func (p *mockPage) ActivateSubmit(ctx context.Context) error {
	p.submitClicks++
	return nil
}

func (p *mockPage) Rows(ctx context.Context) ([]repository.RowSnapshot, error) {
	out := make([]repository.RowSnapshot, len(p.rows))
	copy(out, p.rows)
	return out, nil
}

func (p *mockPage) WriteField(ctx context.Context, rowIndex int, field repository.Field, value string) error {
	if p.writeErr != nil {
		return p.writeErr
	}
	if rowIndex < 0 || rowIndex >= len(p.rows) {
		return errors.New("row index out of range")
	}
	p.writes = append(p.writes, fieldWrite{rowIndex: rowIndex, field: field, value: value})
	switch field {
	case repository.FieldCheckIn:
		p.rows[rowIndex].CheckIn = value
	case repository.FieldCheckOut:
		p.rows[rowIndex].CheckOut = value
	}
	return nil
}

// decliningSource always reports "no data".
type decliningSource struct{}

func (decliningSource) TimeFor(date time.Time) (timemath.Window, bool) {
	return timemath.Window{}, false
}

var _ timesource.Source = decliningSource{}

func testRules() config.SkipRulesConfig {
	return config.SkipRulesConfig{
		WeekendLetters:  []string{"ו", "ש"},
		HolidayToken:    "חג",
		HolidayEveToken: "ערב חג",
		AbsenceReasons:  map[string]string{"1": "Vacation"},
	}
}

// fastPage is a PageConfig with all delays zeroed so tests run instantly
// on a real clock.
func fastPage() config.PageConfig {
	return config.PageConfig{
		ReadyAttempts: 5,
		CloseAttempts: 3,
	}
}

func newTestUseCase(p *mockPage, page config.PageConfig, clock clockwork.Clock) *implUseCase {
	l := &mockLogger{}
	return New(l, p, classifier.New(testRules(), l), clock, page)
}
