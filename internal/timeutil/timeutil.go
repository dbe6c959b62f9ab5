package timeutil

import "time"

// DateLayout defines the canonical date format (YYYY-MM-DD).
const DateLayout = "2006-01-02"

// ParseDate parses a YYYY-MM-DD date string.
func ParseDate(value string) (time.Time, error) {
	return time.Parse(DateLayout, value)
}

// FormatDate formats a time as YYYY-MM-DD in its current location.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// UTCDate returns the YYYY-MM-DD day of the instant in UTC.
func UTCDate(t time.Time) string {
	return t.UTC().Format(DateLayout)
}

// ResolveDate returns the given date when it is a valid YYYY-MM-DD string,
// otherwise today's date in UTC per the supplied clock.
func ResolveDate(date string, now func() time.Time) string {
	if date != "" {
		if _, err := ParseDate(date); err == nil {
			return date
		}
	}
	if now == nil {
		now = time.Now
	}
	return UTCDate(now())
}
