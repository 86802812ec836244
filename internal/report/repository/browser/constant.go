package browser

// Structural contract of the host page. These selectors are the system's
// only wire-level interface; if Meckano changes them, every probe goes dark.
const (
	selTrigger        = `a.export.free-reporting.popup-container`
	selDialog         = `#freeReporting-dialog`
	selAttendanceView = `#freeReporting-dialog .attendance-view`
	selHoursTable     = `#freeReporting-dialog .attendance-view table.hours-report`
	selTimeInputs     = `#freeReporting-dialog .attendance-view table.hours-report input.checkIn, #freeReporting-dialog .attendance-view table.hours-report input.checkOut`
	selSubmit         = `.save.button-refresh-data.update-freeReporting`
)
