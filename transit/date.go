package transit

import "time"

// Date is a calendar day, compared and offset in whole days regardless of
// time zone (GTFS calendars are naive dates).
type Date struct {
	Year, Month, Day int
}

// Time returns the UTC midnight instant for d.
func (d Date) Time() time.Time {
	return time.Date(d.Year, time.Month(d.Month), d.Day, 0, 0, 0, 0, time.UTC)
}

// AddDays returns d shifted by n calendar days (n may be negative).
func (d Date) AddDays(n int) Date {
	t := d.Time().AddDate(0, 0, n)
	return Date{Year: t.Year(), Month: int(t.Month()), Day: t.Day()}
}

// Before reports whether d is strictly earlier than o.
func (d Date) Before(o Date) bool { return d.Time().Before(o.Time()) }

// After reports whether d is strictly later than o.
func (d Date) After(o Date) bool { return d.Time().After(o.Time()) }

// Weekday returns d's day of week.
func (d Date) Weekday() time.Weekday { return d.Time().Weekday() }

// DiffDays returns the number of days from o to d (positive if d is later).
func (d Date) DiffDays(o Date) int {
	return int(d.Time().Sub(o.Time()).Hours() / 24)
}
