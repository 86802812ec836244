package classifier_test

import (
	"context"
	"testing"

	"meckano-helper/config"
	"meckano-helper/internal/classifier"
	"meckano-helper/internal/model"
)

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

func testRules() config.SkipRulesConfig {
	return config.SkipRulesConfig{
		WeekendLetters:  []string{"ו", "ש"},
		HolidayToken:    "חג",
		HolidayEveToken: "ערב חג",
		AbsenceReasons: map[string]string{
			"1": "Vacation",
			"2": "Sickness",
		},
	}
}

func newClassifier() *classifier.Classifier {
	return classifier.New(testRules(), &mockLogger{})
}

func TestClassifyRules(t *testing.T) {
	ctx := context.Background()
	c := newClassifier()

	cases := []struct {
		name       string
		row        model.CalendarRow
		wantAction classifier.Action
		wantReason string
	}{
		{
			name:       "friday is weekend",
			row:        model.CalendarRow{Day: 25, Month: 8, Year: 2025, Weekday: "ו"},
			wantAction: classifier.ActionSkip,
			wantReason: classifier.ReasonWeekend,
		},
		{
			name:       "saturday is weekend",
			row:        model.CalendarRow{Day: 30, Month: 8, Year: 2025, Weekday: "ש"},
			wantAction: classifier.ActionSkip,
			wantReason: classifier.ReasonWeekend,
		},
		{
			name:       "holiday annotation",
			row:        model.CalendarRow{Weekday: "ב", SpecialDay: "חג שבועות"},
			wantAction: classifier.ActionSkip,
			wantReason: classifier.ReasonHoliday,
		},
		{
			name:       "holiday eve annotation",
			row:        model.CalendarRow{Weekday: "ב", SpecialDay: "ערב חג שבועות"},
			wantAction: classifier.ActionSkip,
			wantReason: classifier.ReasonHolidayEve,
		},
		{
			name:       "absence code maps to reason",
			row:        model.CalendarRow{Weekday: "ג", AbsenceCode: "1"},
			wantAction: classifier.ActionSkip,
			wantReason: "Vacation",
		},
		{
			name:       "unknown absence code is still a working day",
			row:        model.CalendarRow{Weekday: "ג", AbsenceCode: "99"},
			wantAction: classifier.ActionWork,
		},
		{
			name:       "absence code zero means no absence",
			row:        model.CalendarRow{Weekday: "ג", AbsenceCode: "0"},
			wantAction: classifier.ActionWork,
		},
		{
			name:       "plain working day",
			row:        model.CalendarRow{Day: 26, Month: 8, Year: 2025, Weekday: "ב"},
			wantAction: classifier.ActionWork,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := c.Classify(ctx, tc.row)
			if got.Action != tc.wantAction {
				t.Fatalf("action = %s, want %s", got.Action, tc.wantAction)
			}
			if got.Reason != tc.wantReason {
				t.Fatalf("reason = %q, want %q", got.Reason, tc.wantReason)
			}
		})
	}
}

// A row annotated with both tokens must never classify as a plain holiday:
// the eve token is a substring match, so the ordering of rules 2 and 3
// carries the guarantee.
func TestClassifyHolidayEvePriority(t *testing.T) {
	ctx := context.Background()
	c := newClassifier()

	got := c.Classify(ctx, model.CalendarRow{
		Weekday:    "ה",
		SpecialDay: "חג פסח ערב חג",
	})
	if got.Reason != classifier.ReasonHolidayEve {
		t.Fatalf("reason = %q, want %q", got.Reason, classifier.ReasonHolidayEve)
	}
}

// Weekend wins over everything else, including absence codes and holiday text.
func TestClassifyPriorityOrder(t *testing.T) {
	ctx := context.Background()
	c := newClassifier()

	got := c.Classify(ctx, model.CalendarRow{
		Weekday:     "ש",
		SpecialDay:  "חג",
		AbsenceCode: "1",
	})
	if got.Reason != classifier.ReasonWeekend {
		t.Fatalf("reason = %q, want %q", got.Reason, classifier.ReasonWeekend)
	}
}

// Every row reaches exactly one verdict: skip carries a reason, work does not.
func TestClassifyTotality(t *testing.T) {
	ctx := context.Background()
	c := newClassifier()

	rows := []model.CalendarRow{
		{Weekday: "ו"},
		{Weekday: "א", SpecialDay: "חג"},
		{Weekday: "א", SpecialDay: "ערב חג"},
		{Weekday: "א", AbsenceCode: "2"},
		{Weekday: "א"},
		{},
	}

	for i, row := range rows {
		got := c.Classify(ctx, row)
		switch got.Action {
		case classifier.ActionSkip:
			if got.Reason == "" {
				t.Errorf("row %d: skip without reason", i)
			}
		case classifier.ActionWork:
			if got.Reason != "" {
				t.Errorf("row %d: work with reason %q", i, got.Reason)
			}
		default:
			t.Errorf("row %d: unexpected action %q", i, got.Action)
		}
	}
}
