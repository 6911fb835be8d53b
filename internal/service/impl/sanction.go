package impl

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/cleanup-hub/cleanup/internal/entities"
	"github.com/cleanup-hub/cleanup/internal/metrics"
	"github.com/cleanup-hub/cleanup/internal/service"
	"github.com/cleanup-hub/cleanup/internal/service/policy"
	"github.com/cleanup-hub/cleanup/internal/storage"
)

type standing struct {
	status entities.UserStatus
	// role is empty when the action keeps user's role.
	role  entities.Role
	audit entities.ModerationActionType
}

// nolint:gochecknoglobals
var sanctions = map[entities.SanctionAction]standing{
	entities.WarnSanction:     {status: entities.WarnedUserStatus, audit: entities.WarnUserAction},
	entities.SuspendSanction:  {status: entities.SuspendedUserStatus, audit: entities.SuspendUserAction},
	entities.ActivateSanction: {status: entities.ActiveUserStatus, audit: entities.ActivateUserAction},
	entities.PromoteSanction:  {status: entities.ActiveUserStatus, role: entities.ModeratorRole, audit: entities.PromoteUserAction},
}

func (s *srv) GetUser(ctx context.Context, id uuid.UUID) (*entities.PublicUser, error) {
	u, err := s.s.GetUser(ctx, id)
	if err != nil {
		return nil, notFoundOr(err, "user", id)
	}

	out := u.Public()
	return &out, nil
}

// ApplySanction changes user's status or role and writes audit record in the same transaction.
func (s *srv) ApplySanction(ctx context.Context, actor *entities.Actor, targetID uuid.UUID, action entities.SanctionAction,
	reason string) (*entities.PublicUser, error) {
	if err := policy.RequireActor(actor); err != nil {
		return nil, err
	}

	st, ok := sanctions[action]
	if !ok {
		return nil, fmt.Errorf("%w: %q", service.ErrInvalidAction, action)
	}

	var out entities.PublicUser
	if err := s.s.InTx(ctx, func(tx storage.Storage) error {
		target, err := tx.GetUserForUpdate(ctx, targetID)
		if err != nil {
			return notFoundOr(err, "user", targetID)
		}

		if err := policy.CanSanction(actor, target, action); err != nil {
			return err
		}

		role := target.Role
		if st.role != "" {
			role = st.role
		}

		now := s.now()
		if err := tx.SetUserStanding(ctx, targetID, role, st.status, now); err != nil {
			return fmt.Errorf("failed to update user: %w", err)
		}

		if err := tx.CreateModerationAction(ctx, &entities.ModerationAction{
			ID:           uuid.New(),
			TargetUserID: &targetID,
			ModeratorID:  actor.ID,
			Action:       st.audit,
			Reason:       strings.TrimSpace(reason),
			CreatedAt:    now,
		}); err != nil {
			return fmt.Errorf("failed to create moderation action: %w", err)
		}

		target.Role, target.Status, target.UpdatedAt = role, st.status, now
		out = target.Public()

		return nil
	}); err != nil {
		return nil, err
	}

	metrics.ModerationActions.WithLabelValues(string(st.audit)).Inc()
	log.WithField("user", targetID).WithField("moderator", actor.ID).WithField("action", action).Info("sanction applied")

	return &out, nil
}
