package postgres

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/cleanup-hub/cleanup/internal/entities"
	"github.com/cleanup-hub/cleanup/internal/storage"
)

type flagDTO struct {
	ID        uuid.UUID `db:"id"`
	PostID    uuid.UUID `db:"post_id"`
	UserID    uuid.UUID `db:"user_id"`
	Reason    string    `db:"reason"`
	Comment   string    `db:"comment"`
	Status    string    `db:"status"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

func (s pg) CreateFlag(ctx context.Context, f *entities.Flag) error {
	flag := flagDTO{
		ID:        f.ID,
		PostID:    f.PostID,
		UserID:    f.UserID,
		Reason:    string(f.Reason),
		Comment:   f.Comment,
		Status:    string(f.Status),
		CreatedAt: f.CreatedAt.UTC(),
		UpdatedAt: f.UpdatedAt.UTC(),
	}

	if _, err := sqlx.NamedExecContext(ctx, s.ext,
		`
			INSERT INTO flag(id, post_id, user_id, reason, comment, status, created_at, updated_at)
			VALUES(:id, :post_id, :user_id, :reason, :comment, :status, :created_at, :updated_at)
		`, flag,
	); err != nil {
		return translateError(err)
	}

	return nil
}

func (s pg) ListFlags(ctx context.Context, p *storage.ListFlagsParams) ([]*entities.Flag, error) {
	var (
		where []string
		args  []interface{}
	)

	if p.PostID != nil {
		where = append(where, `post_id = ?`)
		args = append(args, *p.PostID)
	}

	if p.Status != nil {
		where = append(where, `status = ?`)
		args = append(args, *p.Status)
	}

	if len(p.IDs) > 0 {
		where = append(where, `id IN (?)`)
		args = append(args, p.IDs)
	}

	query := `SELECT id, post_id, user_id, reason, comment, status, created_at, updated_at FROM flag`
	if len(where) > 0 {
		query += ` WHERE ` + strings.Join(where, " AND ")
	}
	query += ` ORDER BY created_at, id`

	query, args, err := sqlx.In(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to construct IN clause: %w", err)
	}

	var dto []flagDTO
	if err := sqlx.SelectContext(ctx, s.ext, &dto, s.ext.Rebind(query), args...); err != nil {
		return nil, fmt.Errorf("failed to query: %w", err)
	}

	out := make([]*entities.Flag, len(dto))
	for i, v := range dto {
		out[i] = &entities.Flag{
			ID:        v.ID,
			PostID:    v.PostID,
			UserID:    v.UserID,
			Reason:    entities.FlagReason(v.Reason),
			Comment:   v.Comment,
			Status:    entities.FlagStatus(v.Status),
			CreatedAt: v.CreatedAt,
			UpdatedAt: v.UpdatedAt,
		}
	}

	return out, nil
}

func (s pg) SetFlagsStatus(ctx context.Context, ids []uuid.UUID, status entities.FlagStatus, timestamp time.Time) error {
	if len(ids) == 0 {
		return nil
	}

	query, args, err := sqlx.In(`UPDATE flag SET status=?, updated_at=? WHERE id IN (?)`, status, timestamp.UTC(), ids)
	if err != nil {
		return fmt.Errorf("failed to construct IN clause: %w", err)
	}

	if _, err := s.ext.ExecContext(ctx, s.ext.Rebind(query), args...); err != nil {
		return fmt.Errorf("failed to exec: %w", err)
	}

	return nil
}
