package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/urlopy/urlopy-backend-go/internal/domain/dashboard"
	"github.com/urlopy/urlopy-backend-go/internal/pkg/calendar"
	"github.com/urlopy/urlopy-backend-go/internal/pkg/database"
)

type dashboardRepositoryImpl struct {
	db *database.DB
}

func NewDashboardRepository(db *database.DB) dashboard.DashboardRepository {
	return &dashboardRepositoryImpl{db: db}
}

// ListEmployees implements dashboard.DashboardRepository.
func (r *dashboardRepositoryImpl) ListEmployees(ctx context.Context) ([]dashboard.Employee, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, `SELECT id, name FROM users ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("failed to query employees: %w", err)
	}
	defer rows.Close()

	employees := make([]dashboard.Employee, 0)
	for rows.Next() {
		var e dashboard.Employee
		if err := rows.Scan(&e.ID, &e.Name); err != nil {
			return nil, err
		}
		employees = append(employees, e)
	}
	return employees, rows.Err()
}

// ListLeaveRanges implements dashboard.DashboardRepository.
func (r *dashboardRepositoryImpl) ListLeaveRanges(ctx context.Context) ([]dashboard.LeaveRange, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT user_id, date_from, date_to
		FROM leaves
		WHERE status <> 'rejected'
		ORDER BY user_id, date_from
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query leave ranges: %w", err)
	}
	defer rows.Close()

	ranges := make([]dashboard.LeaveRange, 0)
	for rows.Next() {
		var (
			userID   int64
			from, to time.Time
		)
		if err := rows.Scan(&userID, &from, &to); err != nil {
			return nil, err
		}
		ranges = append(ranges, dashboard.LeaveRange{
			UserID: userID,
			From:   calendar.DateOf(from),
			To:     calendar.DateOf(to),
		})
	}
	return ranges, rows.Err()
}
