package calendar

import (
	"sort"
	"time"
)

// HolidaySet maps non-working dates to the holiday name.
type HolidaySet map[Date]string

// Contains reports whether d is a holiday.
func (h HolidaySet) Contains(d Date) bool {
	_, ok := h[d]
	return ok
}

// Dates returns the holiday dates in ascending order.
func (h HolidaySet) Dates() []Date {
	dates := make([]Date, 0, len(h))
	for d := range h {
		dates = append(dates, d)
	}
	sort.Slice(dates, func(i, j int) bool { return dates[i].Before(dates[j]) })
	return dates
}

var polishFixedHolidays = []struct {
	month time.Month
	day   int
	name  string
}{
	{time.January, 1, "Nowy Rok"},
	{time.January, 6, "Święto Trzech Króli"},
	{time.May, 1, "Święto Pracy"},
	{time.May, 3, "Święto Konstytucji 3 Maja"},
	{time.August, 15, "Wniebowzięcie Najświętszej Maryi Panny"},
	{time.November, 1, "Wszystkich Świętych"},
	{time.November, 11, "Narodowe Święto Niepodległości"},
	{time.December, 25, "Boże Narodzenie (pierwszy dzień)"},
	{time.December, 26, "Boże Narodzenie (drugi dzień)"},
}

// PolishHolidays returns the fixed-date Polish public holidays of a year.
// Moving feasts (Easter Monday, Corpus Christi, ...) are not included.
func PolishHolidays(year int) HolidaySet {
	set := make(HolidaySet, len(polishFixedHolidays))
	for _, h := range polishFixedHolidays {
		set[Date{Year: year, Month: h.month, Day: h.day}] = h.name
	}
	return set
}

// IsWorkingDay reports whether d is Monday to Friday and not in holidays.
func IsWorkingDay(d Date, holidays HolidaySet) bool {
	return !d.IsWeekend() && !holidays.Contains(d)
}
