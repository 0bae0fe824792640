package dashboard

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/urlopy/urlopy-backend-go/internal/domain/dashboard"
	"github.com/urlopy/urlopy-backend-go/internal/pkg/calendar"
	"golang.org/x/sync/errgroup"
)

// Clock returns the current time; "today" is its calendar date.
type Clock func() time.Time

// HolidayProvider returns the non-working dates of a year.
type HolidayProvider func(year int) calendar.HolidaySet

type DashboardServiceImpl struct {
	dashboard.DashboardRepository
	now      Clock
	holidays HolidayProvider
}

func NewDashboardService(repo dashboard.DashboardRepository, now Clock, holidays HolidayProvider) dashboard.DashboardService {
	if now == nil {
		now = time.Now
	}
	if holidays == nil {
		holidays = calendar.PolishHolidays
	}
	return &DashboardServiceImpl{
		DashboardRepository: repo,
		now:                 now,
		holidays:            holidays,
	}
}

// GetDashboard loads users and leave ranges in parallel, selects the year and
// aggregates working days for every user.
func (s *DashboardServiceImpl) GetDashboard(ctx context.Context, yearParam string) (*dashboard.DashboardResponse, error) {
	var (
		employees []dashboard.Employee
		ranges    []dashboard.LeaveRange
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		employees, err = s.ListEmployees(gctx)
		if err != nil {
			return fmt.Errorf("failed to list employees: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		ranges, err = s.ListLeaveRanges(gctx)
		if err != nil {
			return fmt.Errorf("failed to list leave ranges: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	today := calendar.DateOf(s.now())
	available := availableYears(ranges, today.Year)
	year := selectYear(yearParam, available)
	holidays := s.holidays(year)

	summaries := AggregateWorkingDays(ranges, year, holidays, today)

	resp := &dashboard.DashboardResponse{
		Year:           year,
		AvailableYears: available,
		Today:          today.String(),
		Rows:           make([]dashboard.DashboardRow, 0, len(employees)),
		Holidays:       make([]dashboard.HolidayResponse, 0, len(holidays)),
	}

	for _, e := range employees {
		summary := summaries[e.ID]
		summary.UserID = e.ID
		resp.Rows = append(resp.Rows, dashboard.DashboardRow{UserDaySummary: summary, Name: e.Name})

		resp.Total.DaysPast += summary.DaysPast
		resp.Total.DaysFuture += summary.DaysFuture
	}
	resp.Total.DaysTotal = resp.Total.DaysPast + resp.Total.DaysFuture

	for _, h := range holidays.Dates() {
		resp.Holidays = append(resp.Holidays, dashboard.HolidayResponse{Date: h.String(), Name: holidays[h]})
	}

	return resp, nil
}

// availableYears lists the years with leave data in ascending order, or just
// the current year when there is none.
func availableYears(ranges []dashboard.LeaveRange, currentYear int) []int {
	touched := YearsTouched(ranges)
	if len(touched) == 0 {
		return []int{currentYear}
	}

	years := make([]int, 0, len(touched))
	for y := range touched {
		years = append(years, y)
	}
	sort.Ints(years)
	return years
}

// selectYear honours a numeric, available yearParam and otherwise falls back
// to the latest available year.
func selectYear(yearParam string, available []int) int {
	latest := available[len(available)-1]

	year, err := strconv.Atoi(strings.TrimSpace(yearParam))
	if err != nil {
		return latest
	}
	for _, y := range available {
		if y == year {
			return year
		}
	}
	return latest
}
