package ynab

import (
	"fmt"
	"strings"
	"time"
)

// dateFormats are the wire formats the API uses: date-only for budget
// months, RFC3339 for modification timestamps.
var dateFormats = []string{
	"2006-01-02",
	time.RFC3339,
	"2006-01-02T15:04:05",
}

// Date is a custom type that handles the API's date-only and timestamp
// JSON values
type Date struct {
	time.Time
}

// UnmarshalJSON implements json.Unmarshaler for Date
func (d *Date) UnmarshalJSON(data []byte) error {
	str := strings.Trim(string(data), `"`)

	if str == "" || str == "null" {
		d.Time = time.Time{}
		return nil
	}

	for _, format := range dateFormats {
		if t, err := time.Parse(format, str); err == nil {
			d.Time = t
			return nil
		}
	}

	return fmt.Errorf("unable to parse date: %s", str)
}

// MarshalJSON implements json.Marshaler for Date
func (d Date) MarshalJSON() ([]byte, error) {
	if d.Time.IsZero() {
		return []byte("null"), nil
	}
	return []byte(fmt.Sprintf(`"%s"`, d.Time.Format("2006-01-02"))), nil
}

// String returns the date as a YYYY-MM-DD string
func (d Date) String() string {
	if d.Time.IsZero() {
		return ""
	}
	return d.Time.Format("2006-01-02")
}

// FirstOfMonth returns the first day of the date's month in the API's
// month format (YYYY-MM-DD), or "" for a zero date
func (d Date) FirstOfMonth() string {
	if d.Time.IsZero() {
		return ""
	}
	return time.Date(d.Year(), d.Month(), 1, 0, 0, 0, 0, time.UTC).Format("2006-01-02")
}
