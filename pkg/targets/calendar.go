package targets

import "time"

// monthRef is a parsed calendar month
type monthRef struct {
	year  int
	month time.Month
	valid bool
}

// parseMonth parses a month given as YYYY-MM-DD (the API's first-of-month
// format) or YYYY-MM. Malformed input yields an invalid monthRef; callers
// degrade to a fallback rule rather than erroring.
func parseMonth(s string) monthRef {
	for _, layout := range []string{"2006-01-02", "2006-01"} {
		if t, err := time.Parse(layout, s); err == nil {
			return monthRef{year: t.Year(), month: t.Month(), valid: true}
		}
	}
	return monthRef{}
}

// after reports whether m is strictly later than other
func (m monthRef) after(other monthRef) bool {
	if m.year != other.year {
		return m.year > other.year
	}
	return m.month > other.month
}

// countWeekdayOccurrences counts occurrences of weekday within the given
// calendar month. The month is a closed date range, not an instant, so
// no timezone offset applies.
func countWeekdayOccurrences(year int, month time.Month, weekday time.Weekday) int {
	count := 0
	for d := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC); d.Month() == month; d = d.AddDate(0, 0, 1) {
		if d.Weekday() == weekday {
			count++
		}
	}
	return count
}
