package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/urlopy/urlopy-backend-go/internal/domain/leave"
	"github.com/urlopy/urlopy-backend-go/internal/pkg/database"
)

const leaveColumns = `l.id, l.user_id, l.date_from, l.date_to, l.comment, l.status,
	l.reviewed_by, l.reviewed_at, l.created_at, l.updated_at, u.name`

type leaveRepositoryImpl struct {
	db *database.DB
}

func NewLeaveRepository(db *database.DB) leave.LeaveRepository {
	return &leaveRepositoryImpl{db: db}
}

func scanLeave(row pgx.Row) (leave.Leave, error) {
	var l leave.Leave
	err := row.Scan(
		&l.ID,
		&l.UserID,
		&l.DateFrom,
		&l.DateTo,
		&l.Comment,
		&l.Status,
		&l.ReviewedBy,
		&l.ReviewedAt,
		&l.CreatedAt,
		&l.UpdatedAt,
		&l.UserName,
	)
	return l, err
}

func (r *leaveRepositoryImpl) getByID(ctx context.Context, q database.Querier, id int64, forUpdate bool) (leave.Leave, error) {
	query := `SELECT ` + leaveColumns + ` FROM leaves l JOIN users u ON u.id = l.user_id WHERE l.id = $1`
	if forUpdate {
		query += ` FOR UPDATE OF l`
	}

	l, err := scanLeave(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return leave.Leave{}, leave.ErrLeaveNotFound
		}
		return leave.Leave{}, err
	}
	return l, nil
}

// Create implements leave.LeaveRepository.
func (r *leaveRepositoryImpl) Create(ctx context.Context, newLeave leave.Leave) (leave.Leave, error) {
	q := GetQuerier(ctx, r.db)

	status := newLeave.Status
	if status == "" {
		status = leave.StatusPending
	}

	query := `
		INSERT INTO leaves (user_id, date_from, date_to, comment, status)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`

	var id int64
	if err := q.QueryRow(ctx, query, newLeave.UserID, newLeave.DateFrom, newLeave.DateTo, newLeave.Comment, status).Scan(&id); err != nil {
		return leave.Leave{}, fmt.Errorf("failed to insert leave: %w", err)
	}

	return r.getByID(ctx, q, id, false)
}

// GetByID implements leave.LeaveRepository.
func (r *leaveRepositoryImpl) GetByID(ctx context.Context, id int64) (leave.Leave, error) {
	return r.getByID(ctx, GetQuerier(ctx, r.db), id, false)
}

// List implements leave.LeaveRepository.
func (r *leaveRepositoryImpl) List(ctx context.Context, filter leave.LeaveFilter) ([]leave.Leave, error) {
	q := GetQuerier(ctx, r.db)

	var (
		conditions []string
		args       []any
	)
	if filter.UserID != nil {
		args = append(args, *filter.UserID)
		conditions = append(conditions, fmt.Sprintf("l.user_id = $%d", len(args)))
	}
	if filter.Status != nil {
		args = append(args, *filter.Status)
		conditions = append(conditions, fmt.Sprintf("l.status = $%d", len(args)))
	}

	query := `SELECT ` + leaveColumns + ` FROM leaves l JOIN users u ON u.id = l.user_id`
	if len(conditions) > 0 {
		query += ` WHERE ` + strings.Join(conditions, " AND ")
	}
	query += ` ORDER BY l.date_from DESC, l.id DESC`

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query leaves: %w", err)
	}
	defer rows.Close()

	leaves := make([]leave.Leave, 0)
	for rows.Next() {
		l, err := scanLeave(rows)
		if err != nil {
			return nil, err
		}
		leaves = append(leaves, l)
	}
	return leaves, rows.Err()
}

// Update implements leave.LeaveRepository. Only dates and comment change.
func (r *leaveRepositoryImpl) Update(ctx context.Context, l leave.Leave) (leave.Leave, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE leaves
		SET date_from = $1, date_to = $2, comment = $3, updated_at = NOW()
		WHERE id = $4
	`

	tag, err := q.Exec(ctx, query, l.DateFrom, l.DateTo, l.Comment, l.ID)
	if err != nil {
		return leave.Leave{}, fmt.Errorf("failed to update leave: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return leave.Leave{}, leave.ErrLeaveNotFound
	}

	return r.getByID(ctx, q, l.ID, false)
}

// UpdateStatus implements leave.LeaveRepository. The row is locked so two
// concurrent reviews cannot both succeed.
func (r *leaveRepositoryImpl) UpdateStatus(ctx context.Context, id int64, status leave.Status, reviewedBy int64, reviewedAt time.Time) (leave.Leave, error) {
	var reviewed leave.Leave

	err := WithTransaction(ctx, r.db, func(txCtx context.Context) error {
		q := GetQuerier(txCtx, r.db)

		current, err := r.getByID(txCtx, q, id, true)
		if err != nil {
			return err
		}
		if current.Status != leave.StatusPending {
			return leave.ErrLeaveAlreadyReviewed
		}

		query := `
			UPDATE leaves
			SET status = $1, reviewed_by = $2, reviewed_at = $3, updated_at = NOW()
			WHERE id = $4
		`
		if _, err := q.Exec(txCtx, query, status, reviewedBy, reviewedAt, id); err != nil {
			return fmt.Errorf("failed to update leave status: %w", err)
		}

		reviewed, err = r.getByID(txCtx, q, id, false)
		return err
	})
	if err != nil {
		return leave.Leave{}, err
	}
	return reviewed, nil
}

// Delete implements leave.LeaveRepository.
func (r *leaveRepositoryImpl) Delete(ctx context.Context, id int64) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM leaves WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete leave: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return leave.ErrLeaveNotFound
	}
	return nil
}
