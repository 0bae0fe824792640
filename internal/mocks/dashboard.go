package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/urlopy/urlopy-backend-go/internal/domain/dashboard"
)

type DashboardRepository struct {
	mock.Mock
}

func (m *DashboardRepository) ListEmployees(ctx context.Context) ([]dashboard.Employee, error) {
	args := m.Called(ctx)
	employees, _ := args.Get(0).([]dashboard.Employee)
	return employees, args.Error(1)
}

func (m *DashboardRepository) ListLeaveRanges(ctx context.Context) ([]dashboard.LeaveRange, error) {
	args := m.Called(ctx)
	ranges, _ := args.Get(0).([]dashboard.LeaveRange)
	return ranges, args.Error(1)
}

type DashboardService struct {
	mock.Mock
}

func (m *DashboardService) GetDashboard(ctx context.Context, yearParam string) (*dashboard.DashboardResponse, error) {
	args := m.Called(ctx, yearParam)
	resp, _ := args.Get(0).(*dashboard.DashboardResponse)
	return resp, args.Error(1)
}
