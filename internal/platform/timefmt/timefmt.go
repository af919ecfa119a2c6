package timefmt

import "time"

// ISO renders t as an ISO-8601 (RFC 3339) string in UTC.
func ISO(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}

// ISOPtr renders an optional timestamp. Absent values stay nil so they
// serialize as JSON null.
func ISOPtr(t *time.Time) *string {
	if t == nil || t.IsZero() {
		return nil
	}
	s := ISO(*t)
	return &s
}
