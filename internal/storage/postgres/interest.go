package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/cleanup-hub/cleanup/internal/entities"
	"github.com/cleanup-hub/cleanup/internal/storage"
)

type interestDTO struct {
	UserID           uuid.UUID `db:"user_id"`
	PostID           uuid.UUID `db:"post_id"`
	ShareContactInfo bool      `db:"share_contact_info"`
	CreatedAt        time.Time `db:"created_at"`
	UpdatedAt        time.Time `db:"updated_at"`
}

type interestedUserDTO struct {
	userDTO
	ShareContactInfo bool      `db:"share_contact_info"`
	InterestedAt     time.Time `db:"interested_at"`
}

func (s pg) GetInterest(ctx context.Context, userID, postID uuid.UUID) (*entities.PostInterest, error) {
	var i interestDTO

	if err := sqlx.GetContext(ctx, s.ext, &i, `
			SELECT user_id, post_id, share_contact_info, created_at, updated_at
			FROM post_interest
			WHERE user_id = $1 AND post_id = $2
		`, userID, postID,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrNotFound
		}

		return nil, fmt.Errorf("failed to query: %w", err)
	}

	return &entities.PostInterest{
		UserID:           i.UserID,
		PostID:           i.PostID,
		ShareContactInfo: i.ShareContactInfo,
		CreatedAt:        i.CreatedAt,
		UpdatedAt:        i.UpdatedAt,
	}, nil
}

func (s pg) UpsertInterest(ctx context.Context, i *entities.PostInterest) error {
	interest := interestDTO{
		UserID:           i.UserID,
		PostID:           i.PostID,
		ShareContactInfo: i.ShareContactInfo,
		CreatedAt:        i.CreatedAt.UTC(),
		UpdatedAt:        i.UpdatedAt.UTC(),
	}

	if _, err := sqlx.NamedExecContext(ctx, s.ext,
		`
			INSERT INTO post_interest(user_id, post_id, share_contact_info, created_at, updated_at)
			VALUES(:user_id, :post_id, :share_contact_info, :created_at, :updated_at)
			ON CONFLICT(user_id, post_id) DO UPDATE SET
			share_contact_info=excluded.share_contact_info, updated_at=excluded.updated_at
		`, interest,
	); err != nil {
		return translateError(err)
	}

	return nil
}

func (s pg) DeleteInterest(ctx context.Context, userID, postID uuid.UUID) error {
	res, err := s.ext.ExecContext(ctx,
		`DELETE FROM post_interest WHERE user_id=$1 AND post_id=$2`,
		userID, postID,
	)
	if err != nil {
		return fmt.Errorf("failed to exec: %w", err)
	}

	return checkAffected(res)
}

func (s pg) CountInterests(ctx context.Context, postID uuid.UUID) (uint64, error) {
	var c uint64
	if err := sqlx.GetContext(ctx, s.ext, &c, `SELECT COUNT(*) FROM post_interest WHERE post_id = $1`, postID); err != nil {
		return 0, fmt.Errorf("failed to query: %w", err)
	}

	return c, nil
}

func (s pg) ListInterestedUsers(ctx context.Context, postID uuid.UUID) ([]*storage.InterestedUser, error) {
	var dto []interestedUserDTO

	if err := sqlx.SelectContext(ctx, s.ext, &dto, `
			SELECT u.id, u.email, u.name, u.phone, u.role, u.status, u.created_at, u.updated_at,
				i.share_contact_info, i.created_at AS interested_at
			FROM post_interest i
			JOIN "user" u ON u.id = i.user_id
			WHERE i.post_id = $1
			ORDER BY i.created_at, u.id
		`, postID,
	); err != nil {
		return nil, fmt.Errorf("failed to query: %w", err)
	}

	out := make([]*storage.InterestedUser, len(dto))
	for i, v := range dto {
		out[i] = &storage.InterestedUser{
			User:             *v.toEntity(),
			ShareContactInfo: v.ShareContactInfo,
			InterestedAt:     v.InterestedAt,
		}
	}

	return out, nil
}
