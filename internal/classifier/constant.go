package classifier

// Log prefixes
const (
	LogPrefixClassify = "internal.classifier.Classify"
)

// Skip reasons
const (
	ReasonWeekend    = "Weekend"
	ReasonHoliday    = "Holiday"
	ReasonHolidayEve = "Holiday Eve"
)
