package impl

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/cleanup-hub/cleanup/internal/entities"
	"github.com/cleanup-hub/cleanup/internal/service"
	"github.com/cleanup-hub/cleanup/internal/service/policy"
	"github.com/cleanup-hub/cleanup/internal/storage"
)

// ExpressInterest creates or updates actor's interest and returns interests count of the post.
func (s *srv) ExpressInterest(ctx context.Context, actor *entities.Actor, postID uuid.UUID, shareContactInfo bool) (uint64, error) {
	if err := policy.RequireActor(actor); err != nil {
		return 0, err
	}

	var count uint64
	if err := s.s.InTx(ctx, func(tx storage.Storage) error {
		p, err := tx.GetPost(ctx, postID)
		if err != nil {
			return notFoundOr(err, "post", postID)
		}

		if err := policy.CanExpressInterest(actor, p); err != nil {
			return err
		}

		now := s.now()
		if err := tx.UpsertInterest(ctx, &entities.PostInterest{
			UserID:           actor.ID,
			PostID:           postID,
			ShareContactInfo: shareContactInfo,
			CreatedAt:        now,
			UpdatedAt:        now,
		}); err != nil {
			return fmt.Errorf("failed to upsert interest: %w", err)
		}

		if count, err = tx.CountInterests(ctx, postID); err != nil {
			return fmt.Errorf("failed to count interests: %w", err)
		}

		return nil
	}); err != nil {
		return 0, err
	}

	return count, nil
}

func (s *srv) WithdrawInterest(ctx context.Context, actor *entities.Actor, postID uuid.UUID) (uint64, error) {
	if err := policy.RequireActor(actor); err != nil {
		return 0, err
	}

	var count uint64
	if err := s.s.InTx(ctx, func(tx storage.Storage) error {
		p, err := tx.GetPost(ctx, postID)
		if err != nil {
			return notFoundOr(err, "post", postID)
		}

		if err := policy.CanWithdrawInterest(actor, p); err != nil {
			return err
		}

		if err := tx.DeleteInterest(ctx, actor.ID, postID); err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				return fmt.Errorf("%w: user=%s is not interested in post=%s", service.ErrNotFound, actor.ID, postID)
			}
			return fmt.Errorf("failed to delete interest: %w", err)
		}

		if count, err = tx.CountInterests(ctx, postID); err != nil {
			return fmt.Errorf("failed to count interests: %w", err)
		}

		return nil
	}); err != nil {
		return 0, err
	}

	return count, nil
}

// ListInterestedUsers returns users interested in the post. Contacts are filled only for users who agreed
// to share them.
func (s *srv) ListInterestedUsers(ctx context.Context, actor *entities.Actor, postID uuid.UUID) ([]*entities.InterestedUser, error) {
	if err := policy.RequireActor(actor); err != nil {
		return nil, err
	}

	p, err := s.s.GetPost(ctx, postID)
	if err != nil {
		return nil, notFoundOr(err, "post", postID)
	}

	if err := policy.CanListInterested(actor, p); err != nil {
		return nil, err
	}

	users, err := s.s.ListInterestedUsers(ctx, postID)
	if err != nil {
		return nil, fmt.Errorf("failed to list interested users: %w", err)
	}

	out := make([]*entities.InterestedUser, len(users))
	for i, v := range users {
		out[i] = &entities.InterestedUser{
			ID:           v.User.ID,
			Name:         v.User.Name,
			InterestedAt: v.InterestedAt,
		}

		if v.ShareContactInfo {
			email, phone := v.User.Email, v.User.Phone
			out[i].Email, out[i].Phone = &email, &phone
		}
	}

	return out, nil
}
