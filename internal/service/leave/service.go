package leave

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/urlopy/urlopy-backend-go/internal/domain/leave"
	"github.com/urlopy/urlopy-backend-go/internal/domain/user"
)

type LeaveServiceImpl struct {
	leave.LeaveRepository
	user.UserRepository
	notifier leave.Notifier
	now      func() time.Time
}

func NewLeaveService(leaveRepository leave.LeaveRepository, userRepository user.UserRepository, notifier leave.Notifier) leave.LeaveService {
	return &LeaveServiceImpl{
		LeaveRepository: leaveRepository,
		UserRepository:  userRepository,
		notifier:        notifier,
		now:             time.Now,
	}
}

// Create implements leave.LeaveService.
func (s *LeaveServiceImpl) Create(ctx context.Context, actor user.User, req leave.CreateLeaveRequest) (leave.Leave, error) {
	if err := req.Validate(); err != nil {
		return leave.Leave{}, err
	}

	created, err := s.LeaveRepository.Create(ctx, leave.Leave{
		UserID:   actor.ID,
		DateFrom: req.From.Time(),
		DateTo:   req.To.Time(),
		Comment:  req.Comment,
		Status:   leave.StatusPending,
	})
	if err != nil {
		return leave.Leave{}, fmt.Errorf("failed to create leave: %w", err)
	}
	created.UserName = &actor.Name

	s.notifyAdmins(ctx, actor, created)

	return created, nil
}

// notifyAdmins never fails the submission; delivery problems are only logged.
func (s *LeaveServiceImpl) notifyAdmins(ctx context.Context, actor user.User, created leave.Leave) {
	if s.notifier == nil {
		return
	}

	admins, err := s.UserRepository.ListByRole(ctx, user.RoleAdmin)
	if err != nil {
		slog.Error("Failed to list admins for leave notification", "leave_id", created.ID, "error", err)
		return
	}

	recipients := make([]user.User, 0, len(admins))
	for _, admin := range admins {
		if admin.ID != actor.ID {
			recipients = append(recipients, admin)
		}
	}
	if len(recipients) == 0 {
		return
	}

	if err := s.notifier.NotifyLeaveSubmitted(ctx, recipients, actor, created); err != nil {
		slog.Error("Failed to notify admins about leave", "leave_id", created.ID, "error", err)
	}
}

// Get implements leave.LeaveService.
func (s *LeaveServiceImpl) Get(ctx context.Context, id int64) (leave.Leave, error) {
	l, err := s.LeaveRepository.GetByID(ctx, id)
	if err != nil {
		return leave.Leave{}, wrapLeaveErr("failed to get leave", err)
	}
	return l, nil
}

// List implements leave.LeaveService.
func (s *LeaveServiceImpl) List(ctx context.Context, filter leave.LeaveFilter) ([]leave.Leave, error) {
	leaves, err := s.LeaveRepository.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list leaves: %w", err)
	}
	return leaves, nil
}

// ListMine implements leave.LeaveService.
func (s *LeaveServiceImpl) ListMine(ctx context.Context, actor user.User) ([]leave.Leave, error) {
	userID := actor.ID
	return s.List(ctx, leave.LeaveFilter{UserID: &userID})
}

// Update implements leave.LeaveService.
func (s *LeaveServiceImpl) Update(ctx context.Context, actor user.User, id int64, req leave.UpdateLeaveRequest) (leave.Leave, error) {
	if !actor.IsAdmin() {
		return leave.Leave{}, user.ErrAdminPrivilegeRequired
	}
	if err := req.Validate(); err != nil {
		return leave.Leave{}, err
	}

	updated, err := s.LeaveRepository.Update(ctx, leave.Leave{
		ID:       id,
		DateFrom: req.From.Time(),
		DateTo:   req.To.Time(),
		Comment:  req.Comment,
	})
	if err != nil {
		return leave.Leave{}, wrapLeaveErr("failed to update leave", err)
	}

	slog.Info("Leave updated", "leave_id", id, "admin_id", actor.ID)
	return updated, nil
}

// Delete implements leave.LeaveService.
func (s *LeaveServiceImpl) Delete(ctx context.Context, actor user.User, id int64) error {
	if !actor.IsAdmin() {
		return user.ErrAdminPrivilegeRequired
	}

	if err := s.LeaveRepository.Delete(ctx, id); err != nil {
		return wrapLeaveErr("failed to delete leave", err)
	}

	slog.Info("Leave deleted", "leave_id", id, "admin_id", actor.ID)
	return nil
}

// Approve implements leave.LeaveService.
func (s *LeaveServiceImpl) Approve(ctx context.Context, actor user.User, id int64) (leave.Leave, error) {
	return s.review(ctx, actor, id, leave.StatusApproved)
}

// Reject implements leave.LeaveService.
func (s *LeaveServiceImpl) Reject(ctx context.Context, actor user.User, id int64) (leave.Leave, error) {
	return s.review(ctx, actor, id, leave.StatusRejected)
}

func (s *LeaveServiceImpl) review(ctx context.Context, actor user.User, id int64, status leave.Status) (leave.Leave, error) {
	if !actor.IsAdmin() {
		return leave.Leave{}, user.ErrAdminPrivilegeRequired
	}

	reviewed, err := s.LeaveRepository.UpdateStatus(ctx, id, status, actor.ID, s.now().UTC())
	if err != nil {
		if errors.Is(err, leave.ErrLeaveAlreadyReviewed) {
			return leave.Leave{}, err
		}
		return leave.Leave{}, wrapLeaveErr("failed to review leave", err)
	}

	slog.Info("Leave reviewed", "leave_id", id, "status", status, "admin_id", actor.ID)
	return reviewed, nil
}

// wrapLeaveErr passes domain sentinels through untouched.
func wrapLeaveErr(msg string, err error) error {
	if errors.Is(err, leave.ErrLeaveNotFound) {
		return err
	}
	return fmt.Errorf("%s: %w", msg, err)
}
