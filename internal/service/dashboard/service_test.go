package dashboard_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/urlopy/urlopy-backend-go/internal/domain/dashboard"
	"github.com/urlopy/urlopy-backend-go/internal/mocks"
	"github.com/urlopy/urlopy-backend-go/internal/pkg/calendar"
	dashboardService "github.com/urlopy/urlopy-backend-go/internal/service/dashboard"
)

func fixedClock(y int, m time.Month, d int) dashboardService.Clock {
	return func() time.Time { return time.Date(y, m, d, 15, 0, 0, 0, time.UTC) }
}

func newRange(userID int64, from, to string) dashboard.LeaveRange {
	f, _ := calendar.ParseDate(from)
	t, _ := calendar.ParseDate(to)
	return dashboard.LeaveRange{UserID: userID, From: f, To: t}
}

func setupRepo(employees []dashboard.Employee, ranges []dashboard.LeaveRange) *mocks.DashboardRepository {
	repo := &mocks.DashboardRepository{}
	repo.On("ListEmployees", mock.Anything).Return(employees, nil)
	repo.On("ListLeaveRanges", mock.Anything).Return(ranges, nil)
	return repo
}

func TestDashboardService_GetDashboard_Success(t *testing.T) {
	ctx := context.Background()
	employees := []dashboard.Employee{{ID: 2, Name: "Anna"}, {ID: 1, Name: "Jan"}, {ID: 3, Name: "Zofia"}}
	ranges := []dashboard.LeaveRange{
		newRange(1, "2024-01-01", "2024-01-07"),
		newRange(2, "2024-06-10", "2024-06-14"),
	}
	repo := setupRepo(employees, ranges)
	svc := dashboardService.NewDashboardService(repo, fixedClock(2024, time.June, 12), nil)

	resp, err := svc.GetDashboard(ctx, "2024")

	require.NoError(t, err)
	assert.Equal(t, 2024, resp.Year)
	assert.Equal(t, []int{2024}, resp.AvailableYears)
	assert.Equal(t, "2024-06-12", resp.Today)
	require.Len(t, resp.Rows, 3)

	// Rows keep repository order and include users without leave.
	assert.Equal(t, "Anna", resp.Rows[0].Name)
	assert.Equal(t, dashboard.UserDaySummary{UserID: 2, DaysPast: 3, DaysFuture: 2, DaysTotal: 5}, resp.Rows[0].UserDaySummary)
	assert.Equal(t, dashboard.UserDaySummary{UserID: 1, DaysPast: 4, DaysFuture: 0, DaysTotal: 4}, resp.Rows[1].UserDaySummary)
	assert.Equal(t, dashboard.UserDaySummary{UserID: 3}, resp.Rows[2].UserDaySummary)

	assert.Equal(t, dashboard.UserDaySummary{DaysPast: 7, DaysFuture: 2, DaysTotal: 9}, resp.Total)
	assert.Len(t, resp.Holidays, 9)
	repo.AssertExpectations(t)
}

func TestDashboardService_GetDashboard_YearSelection(t *testing.T) {
	ranges := []dashboard.LeaveRange{
		newRange(1, "2023-12-27", "2024-01-03"),
		newRange(1, "2026-03-02", "2026-03-06"),
	}

	testCases := []struct {
		name      string
		yearParam string
		expected  int
	}{
		{name: "explicit available year", yearParam: "2023", expected: 2023},
		{name: "year touched only by spill-over", yearParam: "2024", expected: 2024},
		{name: "empty falls back to latest", yearParam: "", expected: 2026},
		{name: "non numeric falls back to latest", yearParam: "abc", expected: 2026},
		{name: "unavailable falls back to latest", yearParam: "2025", expected: 2026},
		{name: "surrounding spaces are ignored", yearParam: " 2023 ", expected: 2023},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			repo := setupRepo([]dashboard.Employee{{ID: 1, Name: "Jan"}}, ranges)
			svc := dashboardService.NewDashboardService(repo, fixedClock(2025, time.May, 5), nil)

			resp, err := svc.GetDashboard(context.Background(), tc.yearParam)

			require.NoError(t, err)
			assert.Equal(t, tc.expected, resp.Year)
			assert.Equal(t, []int{2023, 2024, 2026}, resp.AvailableYears)
		})
	}
}

func TestDashboardService_GetDashboard_NoLeavesUsesCurrentYear(t *testing.T) {
	repo := setupRepo([]dashboard.Employee{{ID: 1, Name: "Jan"}}, nil)
	svc := dashboardService.NewDashboardService(repo, fixedClock(2026, time.October, 17), nil)

	resp, err := svc.GetDashboard(context.Background(), "2019")

	require.NoError(t, err)
	assert.Equal(t, 2026, resp.Year)
	assert.Equal(t, []int{2026}, resp.AvailableYears)
	require.Len(t, resp.Rows, 1)
	assert.Equal(t, 0, resp.Rows[0].DaysTotal)
}

func TestDashboardService_GetDashboard_UsesHolidayProvider(t *testing.T) {
	ranges := []dashboard.LeaveRange{newRange(1, "2024-03-04", "2024-03-08")}
	repo := setupRepo([]dashboard.Employee{{ID: 1, Name: "Jan"}}, ranges)

	var requested int
	holidays := func(year int) calendar.HolidaySet {
		requested = year
		return calendar.HolidaySet{calendar.NewDate(year, time.March, 6): "company day"}
	}
	svc := dashboardService.NewDashboardService(repo, fixedClock(2024, time.December, 1), holidays)

	resp, err := svc.GetDashboard(context.Background(), "")

	require.NoError(t, err)
	assert.Equal(t, 2024, requested)
	assert.Equal(t, 4, resp.Rows[0].DaysTotal)
	assert.Equal(t, []dashboard.HolidayResponse{{Date: "2024-03-06", Name: "company day"}}, resp.Holidays)
}

func TestDashboardService_GetDashboard_RepositoryError(t *testing.T) {
	repo := &mocks.DashboardRepository{}
	repo.On("ListEmployees", mock.Anything).Return(nil, errors.New("connection refused"))
	repo.On("ListLeaveRanges", mock.Anything).Return([]dashboard.LeaveRange{}, nil).Maybe()
	svc := dashboardService.NewDashboardService(repo, fixedClock(2024, time.June, 1), nil)

	resp, err := svc.GetDashboard(context.Background(), "")

	assert.Nil(t, resp)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to list employees")
}
