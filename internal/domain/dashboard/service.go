package dashboard

import "context"

// DashboardService defines the interface for dashboard operations
type DashboardService interface {
	// GetDashboard returns working-day counts per user for the selected year.
	// yearParam is the raw request value; anything unusable selects the
	// latest year that has leave data.
	GetDashboard(ctx context.Context, yearParam string) (*DashboardResponse, error)
}
