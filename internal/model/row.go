package model

import "time"

// CalendarRow is the parsed snapshot of one attendance table row.
// Constructed fresh per row per fill pass and discarded after use.
type CalendarRow struct {
	// Index is the zero-based position among data rows (header excluded).
	Index int

	Day   int
	Month int
	Year  int

	// Weekday is the single locale weekday letter from the date cell.
	Weekday string

	// SpecialDay is the free-text annotation (holiday / holiday eve), if any.
	SpecialDay string

	// AbsenceCode is the value of the absence select. "" or "0" means none.
	AbsenceCode string

	// CheckIn and CheckOut are the current values of the time inputs.
	CheckIn  string
	CheckOut string
}

// Date returns the row's calendar date at midnight UTC.
func (r CalendarRow) Date() time.Time {
	return time.Date(r.Year, time.Month(r.Month), r.Day, 0, 0, 0, 0, time.UTC)
}

// HasAbsence reports whether the row carries an absence/leave code.
func (r CalendarRow) HasAbsence() bool {
	return r.AbsenceCode != "" && r.AbsenceCode != "0"
}

// Complete reports whether both time fields are already filled.
func (r CalendarRow) Complete() bool {
	return r.CheckIn != "" && r.CheckOut != ""
}
