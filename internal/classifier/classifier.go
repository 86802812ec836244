package classifier

import (
	"context"
	"strings"

	"meckano-helper/internal/model"
)

// Classify applies the skip rules to one row. The rules are evaluated in
// fixed order and the first match wins; every row reaches exactly one of
// Skip(reason) or Work.
//
// The holiday-eve rule is checked after the plain-holiday rule on purpose:
// rule 2 excludes eve-annotated text, so text carrying both tokens always
// lands on "Holiday Eve".
func (c *Classifier) Classify(ctx context.Context, row model.CalendarRow) Classification {
	// 1. Weekend letter
	if _, ok := c.weekend[row.Weekday]; ok {
		return c.skip(ctx, row, ReasonWeekend)
	}

	// 2. Holiday (but not holiday eve)
	if row.SpecialDay != "" {
		hasHoliday := strings.Contains(row.SpecialDay, c.rules.HolidayToken)
		hasEve := strings.Contains(row.SpecialDay, c.rules.HolidayEveToken)

		if hasHoliday && !hasEve {
			return c.skip(ctx, row, ReasonHoliday)
		}
		// 3. Holiday eve
		if hasEve {
			return c.skip(ctx, row, ReasonHolidayEve)
		}
	}

	// 4. Absence/leave code
	if row.HasAbsence() {
		if reason, ok := c.rules.AbsenceReasons[row.AbsenceCode]; ok {
			return c.skip(ctx, row, reason)
		}
	}

	// 5. Working day
	return Classification{Action: ActionWork}
}

func (c *Classifier) skip(ctx context.Context, row model.CalendarRow, reason string) Classification {
	c.l.Debugf(ctx, "%s: row %02d/%02d/%04d skipped: %s",
		LogPrefixClassify, row.Day, row.Month, row.Year, reason)
	return Classification{Action: ActionSkip, Reason: reason}
}
