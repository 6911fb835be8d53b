package impl

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/cleanup-hub/cleanup/internal/entities"
	"github.com/cleanup-hub/cleanup/internal/service"
	"github.com/cleanup-hub/cleanup/internal/service/policy"
	"github.com/cleanup-hub/cleanup/internal/storage"
)

func (s *srv) CreatePost(ctx context.Context, actor *entities.Actor, p *service.CreatePostParams) (*entities.Post, error) {
	if err := policy.RequireActor(actor); err != nil {
		return nil, err
	}

	title, description := strings.TrimSpace(p.Title), strings.TrimSpace(p.Description)
	if title == "" || description == "" {
		return nil, fmt.Errorf("%w: title and description are required", service.ErrValidation)
	}

	photos := make([]string, 0, len(p.Photos))
	for _, v := range p.Photos {
		if v = strings.TrimSpace(v); v == "" {
			return nil, fmt.Errorf("%w: empty photo url", service.ErrValidation)
		}
		photos = append(photos, v)
	}

	status := entities.PublishedPostStatus
	if p.Draft {
		status = entities.DraftPostStatus
	}

	now := s.now()
	post := &entities.Post{
		ID:           uuid.New(),
		Title:        title,
		Description:  description,
		Photos:       photos,
		AuthorID:     actor.ID,
		District:     strings.TrimSpace(p.District),
		Neighborhood: strings.TrimSpace(p.Neighborhood),
		Status:       status,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.s.CreatePost(ctx, post); err != nil {
		return nil, fmt.Errorf("failed to create post: %w", err)
	}

	return post, nil
}

func (s *srv) GetPost(ctx context.Context, actor *entities.Actor, id uuid.UUID) (*entities.Post, error) {
	p, err := s.s.GetPost(ctx, id)
	if err != nil {
		return nil, notFoundOr(err, "post", id)
	}

	if err := policy.CanViewPost(actor, p, s.showArchived); err != nil {
		return nil, err
	}

	return p, nil
}

func (s *srv) ListPosts(ctx context.Context, actor *entities.Actor, p *service.ListPostsParams) ([]*entities.Post, error) {
	params := storage.ListPostsParams{
		Query:        p.Query,
		District:     p.District,
		Neighborhood: p.Neighborhood,
		Author:       p.Author,
		OrderBy:      p.OrderBy,
		Limit:        limitOf(p.Limit),
		After:        p.After,
	}

	isAuthor := actor != nil && p.Author != nil && *p.Author == actor.ID
	archivedVisible := isAuthor || (s.showArchived && actor != nil && actor.Role.IsModerator())

	if p.Status != nil {
		switch *p.Status {
		case entities.DraftPostStatus:
			if !isAuthor {
				return []*entities.Post{}, nil
			}
		case entities.ArchivedPostStatus:
			if !archivedVisible {
				return []*entities.Post{}, nil
			}
		case entities.PublishedPostStatus, entities.UnderReviewPostStatus, entities.CompletedPostStatus:
		default:
			return nil, fmt.Errorf("%w: unknown status %q", service.ErrValidation, *p.Status)
		}
		params.Statuses = []entities.PostStatus{*p.Status}
	} else {
		params.Statuses = []entities.PostStatus{
			entities.PublishedPostStatus, entities.UnderReviewPostStatus, entities.CompletedPostStatus,
		}
		if archivedVisible {
			params.Statuses = append(params.Statuses, entities.ArchivedPostStatus)
		}
		if isAuthor {
			params.Statuses = append(params.Statuses, entities.DraftPostStatus)
		}
	}

	posts, err := s.s.ListPosts(ctx, &params)
	if err != nil {
		return nil, fmt.Errorf("failed to list posts: %w", err)
	}

	return posts, nil
}

func (s *srv) UpdatePostStatus(ctx context.Context, actor *entities.Actor, id uuid.UUID, status entities.PostStatus) (*entities.Post, error) {
	if err := policy.RequireActor(actor); err != nil {
		return nil, err
	}

	switch status {
	case entities.DraftPostStatus, entities.PublishedPostStatus, entities.UnderReviewPostStatus, entities.CompletedPostStatus:
	case entities.ArchivedPostStatus:
		return nil, fmt.Errorf("%w: post could be archived by moderation only", service.ErrInvalidState)
	default:
		return nil, fmt.Errorf("%w: unknown status %q", service.ErrValidation, status)
	}

	var out *entities.Post
	if err := s.s.InTx(ctx, func(tx storage.Storage) error {
		p, err := tx.GetPostForUpdate(ctx, id)
		if err != nil {
			return notFoundOr(err, "post", id)
		}

		if err := policy.CanViewPost(actor, p, s.showArchived); err != nil {
			return err
		}

		if err := policy.CanChangePostStatus(actor, p); err != nil {
			return err
		}

		sm := postStateMachine(p.Status, actor.ID == p.AuthorID, actor.Role.IsModerator())
		if !sm.Can(string(status)) {
			return fmt.Errorf("%w: post=%s transition %s->%s is not allowed", service.ErrInvalidState, id, p.Status, status)
		}

		now := s.now()
		if err := tx.SetPostStatus(ctx, id, status, now); err != nil {
			return fmt.Errorf("failed to set post status: %w", err)
		}

		p.Status, p.UpdatedAt = status, now
		out = p

		return nil
	}); err != nil {
		return nil, err
	}

	return out, nil
}

// CompletePost marks post as cleaned up and appends completion photos to the post's photos.
func (s *srv) CompletePost(ctx context.Context, actor *entities.Actor, id uuid.UUID, photos []string) (*entities.Post, error) {
	if err := policy.RequireActor(actor); err != nil {
		return nil, err
	}

	if len(photos) == 0 {
		return nil, fmt.Errorf("%w: completion photos are required", service.ErrValidation)
	}

	for _, v := range photos {
		if strings.TrimSpace(v) == "" {
			return nil, fmt.Errorf("%w: empty photo url", service.ErrValidation)
		}
	}

	var out *entities.Post
	if err := s.s.InTx(ctx, func(tx storage.Storage) error {
		p, err := tx.GetPostForUpdate(ctx, id)
		if err != nil {
			return notFoundOr(err, "post", id)
		}

		if err := policy.CanCompletePost(actor, p); err != nil {
			return err
		}

		if !postStateMachine(p.Status, true, false).Can(string(entities.CompletedPostStatus)) {
			return fmt.Errorf("%w: post=%s status=%s", service.ErrInvalidState, id, p.Status)
		}

		now := s.now()
		p.Photos = append(p.Photos, photos...)

		if err := tx.SetPostPhotos(ctx, id, p.Photos, now); err != nil {
			return fmt.Errorf("failed to set post photos: %w", err)
		}

		if err := tx.SetPostStatus(ctx, id, entities.CompletedPostStatus, now); err != nil {
			return fmt.Errorf("failed to set post status: %w", err)
		}

		p.Status, p.UpdatedAt = entities.CompletedPostStatus, now
		out = p

		return nil
	}); err != nil {
		return nil, err
	}

	return out, nil
}
