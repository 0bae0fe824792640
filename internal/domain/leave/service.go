package leave

import (
	"context"

	"github.com/urlopy/urlopy-backend-go/internal/domain/user"
)

// LeaveService takes the acting user explicitly; mutations other than
// Create require actor.IsAdmin().
type LeaveService interface {
	Create(ctx context.Context, actor user.User, req CreateLeaveRequest) (Leave, error)
	Get(ctx context.Context, id int64) (Leave, error)
	List(ctx context.Context, filter LeaveFilter) ([]Leave, error)
	ListMine(ctx context.Context, actor user.User) ([]Leave, error)
	Update(ctx context.Context, actor user.User, id int64, req UpdateLeaveRequest) (Leave, error)
	Delete(ctx context.Context, actor user.User, id int64) error
	Approve(ctx context.Context, actor user.User, id int64) (Leave, error)
	Reject(ctx context.Context, actor user.User, id int64) (Leave, error)
}

// Notifier tells administrators about a newly submitted leave.
type Notifier interface {
	NotifyLeaveSubmitted(ctx context.Context, admins []user.User, employee user.User, l Leave) error
}
