package mocks

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/urlopy/urlopy-backend-go/internal/domain/leave"
	"github.com/urlopy/urlopy-backend-go/internal/domain/user"
)

type LeaveRepository struct {
	mock.Mock
}

func (m *LeaveRepository) Create(ctx context.Context, l leave.Leave) (leave.Leave, error) {
	args := m.Called(ctx, l)
	return args.Get(0).(leave.Leave), args.Error(1)
}

func (m *LeaveRepository) GetByID(ctx context.Context, id int64) (leave.Leave, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(leave.Leave), args.Error(1)
}

func (m *LeaveRepository) List(ctx context.Context, filter leave.LeaveFilter) ([]leave.Leave, error) {
	args := m.Called(ctx, filter)
	leaves, _ := args.Get(0).([]leave.Leave)
	return leaves, args.Error(1)
}

func (m *LeaveRepository) Update(ctx context.Context, l leave.Leave) (leave.Leave, error) {
	args := m.Called(ctx, l)
	return args.Get(0).(leave.Leave), args.Error(1)
}

func (m *LeaveRepository) UpdateStatus(ctx context.Context, id int64, status leave.Status, reviewedBy int64, reviewedAt time.Time) (leave.Leave, error) {
	args := m.Called(ctx, id, status, reviewedBy, reviewedAt)
	return args.Get(0).(leave.Leave), args.Error(1)
}

func (m *LeaveRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type LeaveService struct {
	mock.Mock
}

func (m *LeaveService) Create(ctx context.Context, actor user.User, req leave.CreateLeaveRequest) (leave.Leave, error) {
	args := m.Called(ctx, actor, req)
	return args.Get(0).(leave.Leave), args.Error(1)
}

func (m *LeaveService) Get(ctx context.Context, id int64) (leave.Leave, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(leave.Leave), args.Error(1)
}

func (m *LeaveService) List(ctx context.Context, filter leave.LeaveFilter) ([]leave.Leave, error) {
	args := m.Called(ctx, filter)
	leaves, _ := args.Get(0).([]leave.Leave)
	return leaves, args.Error(1)
}

func (m *LeaveService) ListMine(ctx context.Context, actor user.User) ([]leave.Leave, error) {
	args := m.Called(ctx, actor)
	leaves, _ := args.Get(0).([]leave.Leave)
	return leaves, args.Error(1)
}

func (m *LeaveService) Update(ctx context.Context, actor user.User, id int64, req leave.UpdateLeaveRequest) (leave.Leave, error) {
	args := m.Called(ctx, actor, id, req)
	return args.Get(0).(leave.Leave), args.Error(1)
}

func (m *LeaveService) Delete(ctx context.Context, actor user.User, id int64) error {
	args := m.Called(ctx, actor, id)
	return args.Error(0)
}

func (m *LeaveService) Approve(ctx context.Context, actor user.User, id int64) (leave.Leave, error) {
	args := m.Called(ctx, actor, id)
	return args.Get(0).(leave.Leave), args.Error(1)
}

func (m *LeaveService) Reject(ctx context.Context, actor user.User, id int64) (leave.Leave, error) {
	args := m.Called(ctx, actor, id)
	return args.Get(0).(leave.Leave), args.Error(1)
}

type Notifier struct {
	mock.Mock
}

func (m *Notifier) NotifyLeaveSubmitted(ctx context.Context, admins []user.User, employee user.User, l leave.Leave) error {
	args := m.Called(ctx, admins, employee, l)
	return args.Error(0)
}
