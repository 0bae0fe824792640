package dashboard

import (
	"context"
)

// Employee is the minimal user projection a dashboard row needs.
type Employee struct {
	ID   int64
	Name string
}

// DashboardRepository defines the interface for dashboard data access
type DashboardRepository interface {
	// ListEmployees returns every user ordered by name
	ListEmployees(ctx context.Context) ([]Employee, error)

	// ListLeaveRanges returns the date ranges of all leaves that are not rejected
	ListLeaveRanges(ctx context.Context) ([]LeaveRange, error)
}
