package leave

import (
	"time"

	"github.com/urlopy/urlopy-backend-go/internal/pkg/calendar"
)

type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
)

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusApproved, StatusRejected:
		return true
	}
	return false
}

// Leave entity. DateFrom and DateTo are inclusive calendar dates stored as
// midnight UTC.
type Leave struct {
	ID       int64
	UserID   int64
	DateFrom time.Time
	DateTo   time.Time
	Comment  *string

	Status     Status
	ReviewedBy *int64
	ReviewedAt *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time

	// Relationships (for responses)
	UserName *string
}

func (l Leave) From() calendar.Date { return calendar.DateOf(l.DateFrom) }
func (l Leave) To() calendar.Date   { return calendar.DateOf(l.DateTo) }

// CalendarDays is the inclusive length of the leave.
func (l Leave) CalendarDays() int {
	return int(l.DateTo.Sub(l.DateFrom).Hours()/24) + 1
}

func (l Leave) ToResponse() LeaveResponse {
	resp := LeaveResponse{
		ID:           l.ID,
		UserID:       l.UserID,
		UserName:     l.UserName,
		DateFrom:     l.From().String(),
		DateTo:       l.To().String(),
		CalendarDays: l.CalendarDays(),
		Comment:      l.Comment,
		Status:       string(l.Status),
		ReviewedBy:   l.ReviewedBy,
		CreatedAt:    l.CreatedAt.Format(time.RFC3339),
		UpdatedAt:    l.UpdatedAt.Format(time.RFC3339),
	}
	if l.ReviewedAt != nil {
		reviewedAt := l.ReviewedAt.Format(time.RFC3339)
		resp.ReviewedAt = &reviewedAt
	}
	return resp
}
