package impl

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/cleanup-hub/cleanup/internal/entities"
	"github.com/cleanup-hub/cleanup/internal/metrics"
	"github.com/cleanup-hub/cleanup/internal/notifier"
	"github.com/cleanup-hub/cleanup/internal/service"
	"github.com/cleanup-hub/cleanup/internal/service/policy"
	"github.com/cleanup-hub/cleanup/internal/storage"
)

func (s *srv) FlagPost(ctx context.Context, actor *entities.Actor, postID uuid.UUID, reason entities.FlagReason,
	comment string) (*entities.Flag, error) {
	if err := policy.RequireActor(actor); err != nil {
		return nil, err
	}

	if !reason.IsValid() {
		return nil, fmt.Errorf("%w: unknown flag reason %q", service.ErrValidation, reason)
	}

	p, err := s.s.GetPost(ctx, postID)
	if err != nil {
		return nil, notFoundOr(err, "post", postID)
	}

	if err := policy.CanViewPost(actor, p, s.showArchived); err != nil {
		return nil, err
	}

	if err := policy.CanFlag(actor, p); err != nil {
		return nil, err
	}

	now := s.now()
	f := &entities.Flag{
		ID:        uuid.New(),
		PostID:    postID,
		UserID:    actor.ID,
		Reason:    reason,
		Comment:   strings.TrimSpace(comment),
		Status:    entities.PendingFlagStatus,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.s.CreateFlag(ctx, f); err != nil {
		switch {
		case errors.Is(err, storage.ErrAlreadyExists):
			return nil, fmt.Errorf("%w: user=%s already flagged post=%s", service.ErrConflict, actor.ID, postID)
		case errors.Is(err, storage.ErrNotFound):
			return nil, fmt.Errorf("%w: post=%s", service.ErrNotFound, postID)
		default:
			return nil, fmt.Errorf("failed to create flag: %w", err)
		}
	}

	log.WithField("post", postID).WithField("user", actor.ID).WithField("reason", reason).Info("post flagged")

	return f, nil
}

func (s *srv) ListFlags(ctx context.Context, actor *entities.Actor, postID uuid.UUID) ([]*entities.Flag, error) {
	if err := policy.CanModerate(actor); err != nil {
		return nil, err
	}

	if _, err := s.s.GetPost(ctx, postID); err != nil {
		return nil, notFoundOr(err, "post", postID)
	}

	flags, err := s.s.ListFlags(ctx, &storage.ListFlagsParams{PostID: &postID})
	if err != nil {
		return nil, fmt.Errorf("failed to list flags: %w", err)
	}

	return flags, nil
}

func (s *srv) ListFlaggedPosts(ctx context.Context, actor *entities.Actor, p *storage.ListFlaggedPostsParams) ([]*storage.FlaggedPost, error) {
	if err := policy.CanModerate(actor); err != nil {
		return nil, err
	}

	params := *p
	params.Limit = limitOf(p.Limit)
	if params.FlagStatus == "" {
		params.FlagStatus = entities.PendingFlagStatus
	}

	posts, err := s.s.ListFlaggedPosts(ctx, &params)
	if err != nil {
		return nil, fmt.Errorf("failed to list flagged posts: %w", err)
	}

	return posts, nil
}

func (s *srv) ListModerationActions(ctx context.Context, actor *entities.Actor,
	p *storage.ListModerationActionsParams) ([]*entities.ModerationAction, error) {
	if err := policy.CanModerate(actor); err != nil {
		return nil, err
	}

	params := *p
	params.Limit = limitOf(p.Limit)

	actions, err := s.s.ListModerationActions(ctx, &params)
	if err != nil {
		return nil, fmt.Errorf("failed to list moderation actions: %w", err)
	}

	return actions, nil
}

func (s *srv) DismissFlags(ctx context.Context, actor *entities.Actor, postID uuid.UUID, flagIDs []uuid.UUID,
	reason string) (*service.ModerationResult, error) {
	return s.Moderate(ctx, actor, postID, &service.ModerationRequest{
		Action:  entities.DismissFlagsAction,
		FlagIDs: flagIDs,
		Reason:  reason,
	})
}

func (s *srv) HidePost(ctx context.Context, actor *entities.Actor, postID uuid.UUID, reason string) (*service.ModerationResult, error) {
	return s.Moderate(ctx, actor, postID, &service.ModerationRequest{
		Action: entities.HidePostAction,
		Reason: reason,
	})
}

func (s *srv) DeletePost(ctx context.Context, actor *entities.Actor, postID uuid.UUID, reason string) (*service.ModerationResult, error) {
	return s.Moderate(ctx, actor, postID, &service.ModerationRequest{
		Action: entities.DeletePostAction,
		Reason: reason,
	})
}

func (s *srv) NotifyAuthor(ctx context.Context, actor *entities.Actor, postID uuid.UUID, reason string) (*service.ModerationResult, error) {
	return s.Moderate(ctx, actor, postID, &service.ModerationRequest{
		Action: entities.NotifyAuthorAction,
		Reason: reason,
	})
}

// Moderate applies moderator's decision to the flagged post. The audit records, flags and post changes are
// written in one transaction; all checks are done before the first write.
// Audit records of deleted post are written before the delete and lose post reference together with the post.
// nolint: gocyclo
func (s *srv) Moderate(ctx context.Context, actor *entities.Actor, postID uuid.UUID,
	r *service.ModerationRequest) (*service.ModerationResult, error) {
	if err := policy.CanModerate(actor); err != nil {
		return nil, err
	}

	switch r.Action {
	case entities.DismissFlagsAction, entities.NotifyAuthorAction:
	case entities.HidePostAction, entities.DeletePostAction:
		if strings.TrimSpace(r.Reason) == "" {
			return nil, fmt.Errorf("%w: reason is required for %s", service.ErrValidation, r.Action)
		}
	default:
		return nil, fmt.Errorf("%w: %q", service.ErrInvalidAction, r.Action)
	}

	res := service.ModerationResult{}
	var notification *notifier.Notification

	if err := s.s.InTx(ctx, func(tx storage.Storage) error {
		post, err := tx.GetPostForUpdate(ctx, postID)
		if err != nil {
			return notFoundOr(err, "post", postID)
		}

		flags, err := tx.ListFlags(ctx, &storage.ListFlagsParams{PostID: &postID})
		if err != nil {
			return fmt.Errorf("failed to list flags: %w", err)
		}

		if len(flags) == 0 {
			return fmt.Errorf("%w: post=%s has no flags", service.ErrNotFound, postID)
		}

		var affected []uuid.UUID
		switch r.Action {
		case entities.DismissFlagsAction:
			if affected, err = flagsToDismiss(flags, r.FlagIDs); err != nil {
				return err
			}
		case entities.HidePostAction:
			if !canHide(post.Status) {
				return fmt.Errorf("%w: post=%s is already hidden", service.ErrInvalidState, postID)
			}
			affected = pendingFlags(flags)
		case entities.DeletePostAction:
			affected = pendingFlags(flags)
		}

		now := s.now()

		actions := []*entities.ModerationAction{newPostAction(actor, post, r.Action, r.Reason, now)}
		if r.NotifyAuthor && r.Action != entities.NotifyAuthorAction {
			actions = append(actions, newPostAction(actor, post, entities.NotifyAuthorAction, r.Reason, now))
		}

		for _, a := range actions {
			if err := tx.CreateModerationAction(ctx, a); err != nil {
				return fmt.Errorf("failed to create moderation action: %w", err)
			}
		}

		switch r.Action {
		case entities.DismissFlagsAction:
			if err := tx.SetFlagsStatus(ctx, affected, entities.DismissedFlagStatus, now); err != nil {
				return fmt.Errorf("failed to dismiss flags: %w", err)
			}
		case entities.HidePostAction:
			if err := tx.SetFlagsStatus(ctx, affected, entities.ResolvedFlagStatus, now); err != nil {
				return fmt.Errorf("failed to resolve flags: %w", err)
			}
			if err := tx.SetPostStatus(ctx, postID, entities.ArchivedPostStatus, now); err != nil {
				return fmt.Errorf("failed to hide post: %w", err)
			}
			post.Status, post.UpdatedAt = entities.ArchivedPostStatus, now
		case entities.DeletePostAction:
			if err := tx.SetFlagsStatus(ctx, affected, entities.ResolvedFlagStatus, now); err != nil {
				return fmt.Errorf("failed to resolve flags: %w", err)
			}
			if err := tx.DeletePost(ctx, postID); err != nil {
				return fmt.Errorf("failed to delete post: %w", err)
			}
		}

		if r.Action == entities.NotifyAuthorAction || r.NotifyAuthor {
			notification = &notifier.Notification{
				PostID:      post.ID,
				AuthorID:    post.AuthorID,
				ModeratorID: actor.ID,
				Action:      r.Action,
				Reason:      r.Reason,
				CreatedAt:   now,
			}
		}

		if r.Action != entities.DeletePostAction {
			res.Post = post
		}
		res.Flags = affected
		res.Actions = actions

		return nil
	}); err != nil {
		return nil, err
	}

	if r.Action == entities.DeletePostAction {
		for _, a := range res.Actions {
			a.PostID = nil
		}
	}

	for _, a := range res.Actions {
		metrics.ModerationActions.WithLabelValues(string(a.Action)).Inc()
	}

	log.WithField("post", postID).WithField("moderator", actor.ID).WithField("action", r.Action).
		WithField("flags", len(res.Flags)).Info("moderation action applied")

	if notification != nil {
		if err := s.n.NotifyAuthor(ctx, notification); err != nil {
			log.WithError(err).WithField("post", postID).Error("failed to notify author")
		}
	}

	return &res, nil
}

func newPostAction(actor *entities.Actor, p *entities.Post, action entities.ModerationActionType, reason string,
	timestamp time.Time) *entities.ModerationAction {
	postID, authorID := p.ID, p.AuthorID

	return &entities.ModerationAction{
		ID:           uuid.New(),
		PostID:       &postID,
		TargetUserID: &authorID,
		ModeratorID:  actor.ID,
		Action:       action,
		Reason:       strings.TrimSpace(reason),
		CreatedAt:    timestamp,
	}
}

func pendingFlags(flags []*entities.Flag) []uuid.UUID {
	out := make([]uuid.UUID, 0, len(flags))
	for _, v := range flags {
		if v.Status == entities.PendingFlagStatus {
			out = append(out, v.ID)
		}
	}

	return out
}

// flagsToDismiss returns all pending flags when ids is empty. Otherwise every id should reference a pending
// flag of the post.
func flagsToDismiss(flags []*entities.Flag, ids []uuid.UUID) ([]uuid.UUID, error) {
	if len(ids) == 0 {
		return pendingFlags(flags), nil
	}

	byID := make(map[uuid.UUID]*entities.Flag, len(flags))
	for _, v := range flags {
		byID[v.ID] = v
	}

	out := make([]uuid.UUID, 0, len(ids))
	seen := make(map[uuid.UUID]struct{}, len(ids))

	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}

		f, ok := byID[id]
		if !ok {
			return nil, fmt.Errorf("%w: flag=%s", service.ErrNotFound, id)
		}

		if f.Status != entities.PendingFlagStatus {
			return nil, fmt.Errorf("%w: flag=%s status=%s", service.ErrInvalidState, id, f.Status)
		}

		out = append(out, id)
	}

	return out, nil
}
