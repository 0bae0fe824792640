package leave

import (
	"strings"

	"github.com/urlopy/urlopy-backend-go/internal/pkg/calendar"
	"github.com/urlopy/urlopy-backend-go/internal/pkg/validator"
)

const maxCommentLength = 500

type CreateLeaveRequest struct {
	DateFrom string  `json:"date_from"`
	DateTo   string  `json:"date_to"`
	Comment  *string `json:"comment,omitempty"`

	// Parsed by Validate
	From calendar.Date `json:"-"`
	To   calendar.Date `json:"-"`
}

func (r *CreateLeaveRequest) Validate() error {
	from, to, comment, err := validateRange(r.DateFrom, r.DateTo, r.Comment)
	if err != nil {
		return err
	}
	r.From, r.To, r.Comment = from, to, comment
	return nil
}

// UpdateLeaveRequest replaces the dates and the comment of a leave.
type UpdateLeaveRequest struct {
	DateFrom string  `json:"date_from"`
	DateTo   string  `json:"date_to"`
	Comment  *string `json:"comment,omitempty"`

	From calendar.Date `json:"-"`
	To   calendar.Date `json:"-"`
}

func (r *UpdateLeaveRequest) Validate() error {
	from, to, comment, err := validateRange(r.DateFrom, r.DateTo, r.Comment)
	if err != nil {
		return err
	}
	r.From, r.To, r.Comment = from, to, comment
	return nil
}

func validateRange(dateFrom, dateTo string, comment *string) (calendar.Date, calendar.Date, *string, error) {
	var errs validator.ValidationErrors
	var from, to calendar.Date
	var ok bool

	if validator.IsEmpty(dateFrom) {
		errs.Add("date_from", "date_from is required")
	} else if from, ok = validator.IsValidDate(strings.TrimSpace(dateFrom)); !ok {
		errs.Add("date_from", "date_from must be in YYYY-MM-DD format")
	}

	if validator.IsEmpty(dateTo) {
		errs.Add("date_to", "date_to is required")
	} else if to, ok = validator.IsValidDate(strings.TrimSpace(dateTo)); !ok {
		errs.Add("date_to", "date_to must be in YYYY-MM-DD format")
	}

	if len(errs) == 0 && to.Before(from) {
		errs.Add("date_to", "date_to must not be before date_from")
	}

	// Empty comments are stored as NULL
	if comment != nil {
		trimmed := strings.TrimSpace(*comment)
		if trimmed == "" {
			comment = nil
		} else if len([]rune(trimmed)) > maxCommentLength {
			errs.Add("comment", "comment must not exceed 500 characters")
		} else {
			comment = &trimmed
		}
	}

	if err := errs.Err(); err != nil {
		return calendar.Date{}, calendar.Date{}, nil, err
	}
	return from, to, comment, nil
}

// LeaveFilter narrows List. Nil fields are not filtered on.
type LeaveFilter struct {
	UserID *int64
	Status *Status
}

type LeaveResponse struct {
	ID           int64   `json:"id"`
	UserID       int64   `json:"user_id"`
	UserName     *string `json:"user_name,omitempty"`
	DateFrom     string  `json:"date_from"`
	DateTo       string  `json:"date_to"`
	CalendarDays int     `json:"calendar_days"`
	Comment      *string `json:"comment"`
	Status       string  `json:"status"`
	ReviewedBy   *int64  `json:"reviewed_by,omitempty"`
	ReviewedAt   *string `json:"reviewed_at,omitempty"`
	CreatedAt    string  `json:"created_at"`
	UpdatedAt    string  `json:"updated_at"`
}

func ToResponses(leaves []Leave) []LeaveResponse {
	out := make([]LeaveResponse, 0, len(leaves))
	for _, l := range leaves {
		out = append(out, l.ToResponse())
	}
	return out
}
