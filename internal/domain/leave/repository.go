package leave

import (
	"context"
	"time"
)

// LeaveRepository - interface for leaves table
type LeaveRepository interface {
	Create(ctx context.Context, leave Leave) (Leave, error)
	GetByID(ctx context.Context, id int64) (Leave, error)
	List(ctx context.Context, filter LeaveFilter) ([]Leave, error)
	Update(ctx context.Context, leave Leave) (Leave, error)
	UpdateStatus(ctx context.Context, id int64, status Status, reviewedBy int64, reviewedAt time.Time) (Leave, error)
	Delete(ctx context.Context, id int64) error
}
