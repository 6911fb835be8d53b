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

type moderationActionDTO struct {
	ID           uuid.UUID     `db:"id"`
	PostID       uuid.NullUUID `db:"post_id"`
	TargetUserID uuid.NullUUID `db:"target_user_id"`
	ModeratorID  uuid.UUID     `db:"moderator_id"`
	Action       string        `db:"action"`
	Reason       string        `db:"reason"`
	CreatedAt    time.Time     `db:"created_at"`
}

func toNullUUID(id *uuid.UUID) uuid.NullUUID {
	if id == nil {
		return uuid.NullUUID{}
	}
	return uuid.NullUUID{UUID: *id, Valid: true}
}

func fromNullUUID(id uuid.NullUUID) *uuid.UUID {
	if !id.Valid {
		return nil
	}
	v := id.UUID
	return &v
}

func (s pg) CreateModerationAction(ctx context.Context, a *entities.ModerationAction) error {
	action := moderationActionDTO{
		ID:           a.ID,
		PostID:       toNullUUID(a.PostID),
		TargetUserID: toNullUUID(a.TargetUserID),
		ModeratorID:  a.ModeratorID,
		Action:       string(a.Action),
		Reason:       a.Reason,
		CreatedAt:    a.CreatedAt.UTC(),
	}

	if _, err := sqlx.NamedExecContext(ctx, s.ext,
		`
			INSERT INTO moderation_action(id, post_id, target_user_id, moderator_id, action, reason, created_at)
			VALUES(:id, :post_id, :target_user_id, :moderator_id, :action, :reason, :created_at)
		`, action,
	); err != nil {
		return translateError(err)
	}

	return nil
}

func (s pg) ListModerationActions(ctx context.Context, p *storage.ListModerationActionsParams) ([]*entities.ModerationAction, error) {
	var (
		where []string
		args  []interface{}
	)

	if p.PostID != nil {
		where = append(where, `post_id = ?`)
		args = append(args, *p.PostID)
	}

	if p.TargetUserID != nil {
		where = append(where, `target_user_id = ?`)
		args = append(args, *p.TargetUserID)
	}

	if p.ModeratorID != nil {
		where = append(where, `moderator_id = ?`)
		args = append(args, *p.ModeratorID)
	}

	query := `SELECT id, post_id, target_user_id, moderator_id, action, reason, created_at FROM moderation_action`
	if len(where) > 0 {
		query += ` WHERE ` + strings.Join(where, " AND ")
	}
	query += fmt.Sprintf(` ORDER BY created_at DESC, id LIMIT %d OFFSET %d`, p.Limit, p.Offset)

	var dto []moderationActionDTO
	if err := sqlx.SelectContext(ctx, s.ext, &dto, s.ext.Rebind(query), args...); err != nil {
		return nil, fmt.Errorf("failed to query: %w", err)
	}

	out := make([]*entities.ModerationAction, len(dto))
	for i, v := range dto {
		out[i] = &entities.ModerationAction{
			ID:           v.ID,
			PostID:       fromNullUUID(v.PostID),
			TargetUserID: fromNullUUID(v.TargetUserID),
			ModeratorID:  v.ModeratorID,
			Action:       entities.ModerationActionType(v.Action),
			Reason:       v.Reason,
			CreatedAt:    v.CreatedAt,
		}
	}

	return out, nil
}
