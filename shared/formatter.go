package shared

import "time"

const dateFormat = "02-01-2006"

// FormatDigestDate renders a date the way the page header shows it: dd-mm-yyyy.
func FormatDigestDate(t time.Time) string {
	return t.Format(dateFormat)
}
