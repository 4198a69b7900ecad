// Package dateutil provides date-only helpers for charging-year arithmetic.
package dateutil

import "time"

// Date builds a midnight-UTC date, the normal form for effective dates.
func Date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// ParseDate parses a YYYY-MM-DD string into a midnight-UTC date.
func ParseDate(s string) (time.Time, error) {
	return time.ParseInLocation("2006-01-02", s, time.UTC)
}

// ChargingYearStart returns the 1 April that begins the adult-social-care
// charging year containing t.
func ChargingYearStart(t time.Time) time.Time {
	start := Date(t.Year(), time.April, 1)
	if t.Before(start) {
		start = Date(t.Year()-1, time.April, 1)
	}
	return start
}

// ChargingYearLabel returns the "2025/26" style label for the charging year
// containing t.
func ChargingYearLabel(t time.Time) string {
	start := ChargingYearStart(t)
	return start.Format("2006") + "/" + start.AddDate(1, 0, 0).Format("06")
}

// WeeksBetween returns the number of whole weeks from a to b, never negative.
func WeeksBetween(a, b time.Time) int {
	if b.Before(a) {
		return 0
	}
	return int(b.Sub(a).Hours() / (24 * 7))
}
