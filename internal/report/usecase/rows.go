package usecase

import (
	"context"
	"fmt"
	"regexp"
	"strconv"

	"meckano-helper/internal/model"
	"meckano-helper/internal/report"
	"meckano-helper/internal/report/repository"
	"meckano-helper/internal/timesource"
)

// dateTextRe matches "DD/MM/YYYY <single weekday letter>".
var dateTextRe = regexp.MustCompile(`^(\d{2})/(\d{2})/(\d{4})\s+(\S)$`)

func parseRow(snap repository.RowSnapshot) (model.CalendarRow, error) {
	m := dateTextRe.FindStringSubmatch(snap.DateText)
	if m == nil {
		return model.CalendarRow{}, fmt.Errorf("date text %q does not match DD/MM/YYYY <weekday>", snap.DateText)
	}

	day, _ := strconv.Atoi(m[1])
	month, _ := strconv.Atoi(m[2])
	year, _ := strconv.Atoi(m[3])
	if month < 1 || month > 12 || day < 1 || day > 31 {
		return model.CalendarRow{}, fmt.Errorf("date text %q has an impossible date", snap.DateText)
	}

	return model.CalendarRow{
		Index:       snap.Index,
		Day:         day,
		Month:       month,
		Year:        year,
		Weekday:     m[4],
		SpecialDay:  snap.SpecialDay,
		AbsenceCode: snap.AbsenceCode,
		CheckIn:     snap.CheckIn,
		CheckOut:    snap.CheckOut,
	}, nil
}

// fillRows walks the data rows in document order and fills the empty time
// fields of working days. Per-row failures never abort the loop; only a
// structural failure of the table itself fails the pass.
//
// Writes are strictly non-destructive: a field that already holds a value
// is never touched, so rerunning over a filled sheet changes nothing and
// reports every row as skipped.
func (u *implUseCase) fillRows(ctx context.Context, sc model.Scope, src timesource.Source) (rowTotals, error) {
	present, err := u.repo.RowTablePresent(ctx)
	if err != nil {
		return rowTotals{}, fmt.Errorf("%w: %v", report.ErrRowsUnavailable, err)
	}
	if !present {
		return rowTotals{}, report.ErrRowsUnavailable
	}

	snaps, err := u.repo.Rows(ctx)
	if err != nil {
		return rowTotals{}, fmt.Errorf("%w: %v", report.ErrRowsUnavailable, err)
	}

	var totals rowTotals
	for _, snap := range snaps {
		row, err := parseRow(snap)
		if err != nil {
			totals.skipped++
			u.l.Warnf(ctx, "%s: run %s: row %d unparsable, skipping: %v",
				LogPrefixFillRows, sc.RunID, snap.Index, err)
			continue
		}

		if cls := u.rules.Classify(ctx, row); cls.Skip() {
			totals.skipped++
			continue
		}

		if row.Complete() {
			// Idempotence: already filled rows count as skipped.
			totals.skipped++
			u.l.Debugf(ctx, "%s: run %s: row %d already complete",
				LogPrefixFillRows, sc.RunID, row.Index)
			continue
		}

		window, ok := src.TimeFor(row.Date())
		if !ok {
			totals.errors++
			u.l.Warnf(ctx, "%s: run %s: no time data for %02d/%02d/%04d",
				LogPrefixFillRows, sc.RunID, row.Day, row.Month, row.Year)
			continue
		}

		if err := u.fillRowFields(ctx, row, window.CheckIn.String(), window.CheckOut.String()); err != nil {
			totals.errors++
			u.l.Errorf(ctx, "%s: run %s: row %d write failed: %v",
				LogPrefixFillRows, sc.RunID, row.Index, err)
			continue
		}
		totals.filled++
	}

	u.l.Infof(ctx, "%s: run %s: filled=%d skipped=%d errors=%d",
		LogPrefixFillRows, sc.RunID, totals.filled, totals.skipped, totals.errors)
	return totals, nil
}

func (u *implUseCase) fillRowFields(ctx context.Context, row model.CalendarRow, checkIn, checkOut string) error {
	if row.CheckIn == "" {
		if err := u.writeField(ctx, row.Index, repository.FieldCheckIn, checkIn); err != nil {
			return err
		}
	}
	if row.CheckOut == "" {
		if err := u.writeField(ctx, row.Index, repository.FieldCheckOut, checkOut); err != nil {
			return err
		}
	}
	return nil
}

func (u *implUseCase) writeField(ctx context.Context, rowIndex int, field repository.Field, value string) error {
	if err := u.writeLimiter.Wait(ctx); err != nil {
		return err
	}
	return u.repo.WriteField(ctx, rowIndex, field, value)
}
