package cell

import (
	"fmt"
	"strings"
	"time"
)

// Date is a calendar date without time of day.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// InvalidDate is returned for values that cannot be parsed as a date.
var InvalidDate = Date{}

// Valid reports whether d is a real calendar date.
func (d Date) Valid() bool {
	if d.Year == 0 || d.Month < time.January || d.Month > time.December || d.Day < 1 {
		return false
	}
	t := time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC)
	return t.Day() == d.Day && t.Month() == d.Month
}

// String returns the ISO form (2006-01-02) or "" for an invalid date.
func (d Date) String() string {
	if !d.Valid() {
		return ""
	}
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, int(d.Month), d.Day)
}

// FromTime takes the calendar date of t.
func FromTime(t time.Time) Date {
	return Date{Year: t.Year(), Month: t.Month(), Day: t.Day()}
}

// Layouts accepted by ParseDate, tried in order. Slashed and dotted dates are
// day first, which is how the European lab reports write them.
var dateLayouts = []string{
	"2006-01-02",
	"2006/01/02",
	"2006.01.02",
	"20060102",
	"02/01/2006", "2/1/2006",
	"02.01.2006", "2.1.2006",
	"02-01-2006", "2-1-2006",
	"2 Jan 2006", "02 Jan 2006",
	"2-Jan-2006", "02-Jan-2006",
	"2-Jan-06", "02-Jan-06",
	"Jan 2, 2006", "January 2, 2006",
	"2 January 2006",
	"2006-01-02T15:04:05Z07:00",
	"2006-01-02 15:04:05",
}

// ParseDate parses s using the accepted layouts. It never fails: an
// unparseable value yields InvalidDate.
func ParseDate(s string) Date {
	s = strings.TrimSpace(s)
	if s == "" {
		return InvalidDate
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return FromTime(t)
		}
	}
	return InvalidDate
}
