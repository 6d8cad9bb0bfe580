package domain

import (
	"time"

	dErrors "worktime/pkg/domain-errors"
)

// DateLayout is the wire format of calendar dates.
const DateLayout = "2006-01-02"

// Date is a calendar day without a time-of-day component.
// Invariant: the underlying time is midnight UTC.
type Date struct {
	t time.Time
}

// NewDate truncates t to its calendar day in t's own location.
func NewDate(t time.Time) Date {
	y, m, d := t.Date()
	return Date{t: time.Date(y, m, d, 0, 0, 0, 0, time.UTC)}
}

// DateOf builds a Date from its components.
func DateOf(year int, month time.Month, day int) Date {
	return Date{t: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// ParseDate parses YYYY-MM-DD input.
func ParseDate(s string) (Date, error) {
	if s == "" {
		return Date{}, dErrors.New(dErrors.CodeInvalidInput, "date cannot be empty")
	}
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return Date{}, dErrors.New(dErrors.CodeInvalidInput, "date must be formatted as YYYY-MM-DD")
	}
	return Date{t: t}, nil
}

func (d Date) String() string { return d.t.Format(DateLayout) }
func (d Date) IsZero() bool   { return d.t.IsZero() }
func (d Date) Year() int      { return d.t.Year() }
func (d Date) Time() time.Time {
	return d.t
}
func (d Date) Weekday() time.Weekday { return d.t.Weekday() }
func (d Date) AddDays(n int) Date    { return Date{t: d.t.AddDate(0, 0, n)} }
func (d Date) Before(o Date) bool    { return d.t.Before(o.t) }
func (d Date) After(o Date) bool     { return d.t.After(o.t) }
func (d Date) Equal(o Date) bool     { return d.t.Equal(o.t) }

// DaysSince returns the whole number of days from o to d.
func (d Date) DaysSince(o Date) int {
	return int(d.t.Sub(o.t).Hours() / 24)
}

// YearMonth returns the YYYY-MM bucket the day belongs to.
func (d Date) YearMonth() string { return d.t.Format("2006-01") }

// StartOfYear returns January 1st of the same year.
func (d Date) StartOfYear() Date { return DateOf(d.t.Year(), time.January, 1) }

// Window returns the half-open [start, end) instant range covering the day in loc.
func (d Date) Window(loc *time.Location) (time.Time, time.Time) {
	if loc == nil {
		loc = time.UTC
	}
	y, m, day := d.t.Date()
	start := time.Date(y, m, day, 0, 0, 0, 0, loc)
	return start, start.AddDate(0, 0, 1)
}

func (d Date) MarshalText() ([]byte, error) { return []byte(d.String()), nil }

func (d *Date) UnmarshalText(b []byte) error {
	parsed, err := ParseDate(string(b))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
