package dashboard

import (
	"github.com/urlopy/urlopy-backend-go/internal/domain/dashboard"
	"github.com/urlopy/urlopy-backend-go/internal/pkg/calendar"
)

// AggregateWorkingDays counts, per user, the working days of the given
// leave ranges that fall inside year. A working day is Monday to Friday and
// not in holidays; it is past when on or before today, future otherwise.
// Users without a working day in the year do not appear in the result.
// The inputs are not modified.
func AggregateWorkingDays(ranges []dashboard.LeaveRange, year int, holidays calendar.HolidaySet, today calendar.Date) map[int64]dashboard.UserDaySummary {
	result := make(map[int64]dashboard.UserDaySummary)
	yearStart, yearEnd := calendar.YearStart(year), calendar.YearEnd(year)

	for _, r := range ranges {
		start, end, ok := calendar.Clip(r.From, r.To, yearStart, yearEnd)
		if !ok {
			continue
		}

		past, future := 0, 0
		for d := start; !d.After(end); d = d.AddDays(1) {
			if !calendar.IsWorkingDay(d, holidays) {
				continue
			}
			if d.After(today) {
				future++
			} else {
				past++
			}
		}
		if past+future == 0 {
			continue
		}

		summary := result[r.UserID]
		summary.UserID = r.UserID
		summary.DaysPast += past
		summary.DaysFuture += future
		summary.DaysTotal = summary.DaysPast + summary.DaysFuture
		result[r.UserID] = summary
	}

	return result
}

// YearsTouched returns every calendar year any range overlaps.
func YearsTouched(ranges []dashboard.LeaveRange) map[int]struct{} {
	years := make(map[int]struct{})
	for _, r := range ranges {
		if r.To.Before(r.From) {
			continue
		}
		for y := r.From.Year; y <= r.To.Year; y++ {
			years[y] = struct{}{}
		}
	}
	return years
}
