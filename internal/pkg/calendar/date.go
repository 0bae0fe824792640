package calendar

import "time"

// DateLayout is the wire and form format of a calendar date.
const DateLayout = "2006-01-02"

// Date is a civil calendar date with no time of day and no zone.
// It is comparable and safe to use as a map key.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// DateOf returns the calendar date t falls on in t's own location.
func DateOf(t time.Time) Date {
	y, m, d := t.Date()
	return Date{Year: y, Month: m, Day: d}
}

// NewDate normalizes out-of-range values the way time.Date does,
// so NewDate(2024, 2, 30) is 2024-03-01.
func NewDate(year int, month time.Month, day int) Date {
	return DateOf(time.Date(year, month, day, 0, 0, 0, 0, time.UTC))
}

// ParseDate parses a YYYY-MM-DD string.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return Date{}, err
	}
	return DateOf(t), nil
}

// Time returns midnight UTC of the date.
func (d Date) Time() time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC)
}

func (d Date) String() string {
	return d.Time().Format(DateLayout)
}

func (d Date) Before(other Date) bool {
	if d.Year != other.Year {
		return d.Year < other.Year
	}
	if d.Month != other.Month {
		return d.Month < other.Month
	}
	return d.Day < other.Day
}

func (d Date) After(other Date) bool {
	return other.Before(d)
}

// AddDays returns the date n days later (earlier for negative n).
func (d Date) AddDays(n int) Date {
	return DateOf(d.Time().AddDate(0, 0, n))
}

func (d Date) Weekday() time.Weekday {
	return d.Time().Weekday()
}

// IsWeekend reports whether the date is a Saturday or Sunday.
func (d Date) IsWeekend() bool {
	wd := d.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}

// YearStart and YearEnd bound the calendar year window.
func YearStart(year int) Date {
	return Date{Year: year, Month: time.January, Day: 1}
}

func YearEnd(year int) Date {
	return Date{Year: year, Month: time.December, Day: 31}
}

// Clip restricts [from, to] to [lo, hi]. ok is false when nothing is left.
func Clip(from, to, lo, hi Date) (start, end Date, ok bool) {
	start, end = from, to
	if start.Before(lo) {
		start = lo
	}
	if end.After(hi) {
		end = hi
	}
	if start.After(end) {
		return Date{}, Date{}, false
	}
	return start, end, true
}
