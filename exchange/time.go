package exchange

import "time"

const iso8601Layout = "2006-01-02T15:04:05.000Z07:00"

// Milliseconds returns the current wall-clock time in milliseconds.
func Milliseconds() int64 {
	return time.Now().UnixMilli()
}

// ISO8601 renders a millisecond timestamp as an ISO 8601 string in UTC.
func ISO8601(ms int64) string {
	return time.UnixMilli(ms).UTC().Format(iso8601Layout)
}

// ParseISO8601 parses an ISO 8601 datetime into milliseconds. ok is false
// when the value does not parse.
func ParseISO8601(s string) (ms int64, ok bool) {
	for _, layout := range []string{iso8601Layout, time.RFC3339, "2006-01-02T15:04:05"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UnixMilli(), true
		}
	}
	return 0, false
}
