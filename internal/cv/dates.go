package cv

import "time"

// dateLayout is the ISO date format used by all record dates.
const dateLayout = "2006-01-02"

func parseDate(s string) (time.Time, bool) {
	if s == "" {
		return time.Time{}, false
	}
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// Year extracts the four-digit year of an ISO date, or "" when the date is
// absent or malformed.
func Year(date string) string {
	t, ok := parseDate(date)
	if !ok {
		return ""
	}
	return t.Format("2006")
}

// InProgress reports whether an entry is still ongoing at the reference time:
// its start has passed and its end is absent or not yet reached. An entry with
// a supplied end date in the past is never in progress.
func InProgress(start, end string, now time.Time) bool {
	s, ok := parseDate(start)
	if !ok || s.After(now) {
		return false
	}
	e, ok := parseDate(end)
	if !ok {
		return true
	}
	return !e.Before(now)
}

// inProgressLabel is the localized "ongoing" marker used in entry headers.
func inProgressLabel(lang Language) string {
	if lang == LangEN {
		return "In progress"
	}
	return "En proceso"
}

// DateRange formats the start/end dates of an entry as a year range for the
// given language. Ongoing entries report a localized "in progress" label
// instead of a range; malformed or absent dates degrade to the years that are
// available, down to the empty string.
func DateRange(start, end string, lang Language, now time.Time) string {
	if InProgress(start, end, now) {
		return inProgressLabel(lang)
	}
	s, okS := parseDate(start)
	e, okE := parseDate(end)
	switch {
	case okS && okE:
		return s.Format("2006") + " - " + e.Format("2006")
	case okS:
		return s.Format("2006")
	case okE:
		return e.Format("2006")
	default:
		return ""
	}
}
