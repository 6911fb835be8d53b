package impl

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/cleanup-hub/cleanup/internal/entities"
	"github.com/cleanup-hub/cleanup/internal/service"
	storageinterface "github.com/cleanup-hub/cleanup/internal/storage"
)

func TestSrv_ApplySanction(t *testing.T) {
	tt := []struct {
		name   string
		actor  *entities.Actor
		target entities.Role
		action entities.SanctionAction

		role   entities.Role
		status entities.UserStatus
		audit  entities.ModerationActionType
		err    error
	}{
		{
			name:   "moderator warns user",
			actor:  moderator(),
			target: entities.UserRole,
			action: entities.WarnSanction,
			role:   entities.UserRole,
			status: entities.WarnedUserStatus,
			audit:  entities.WarnUserAction,
		},
		{
			name:   "moderator suspends user",
			actor:  moderator(),
			target: entities.UserRole,
			action: entities.SuspendSanction,
			role:   entities.UserRole,
			status: entities.SuspendedUserStatus,
			audit:  entities.SuspendUserAction,
		},
		{
			name:   "admin activates moderator",
			actor:  admin(),
			target: entities.ModeratorRole,
			action: entities.ActivateSanction,
			role:   entities.ModeratorRole,
			status: entities.ActiveUserStatus,
			audit:  entities.ActivateUserAction,
		},
		{
			name:   "admin promotes user",
			actor:  admin(),
			target: entities.UserRole,
			action: entities.PromoteSanction,
			role:   entities.ModeratorRole,
			status: entities.ActiveUserStatus,
			audit:  entities.PromoteUserAction,
		},
		{
			name:   "moderator promotes user",
			actor:  moderator(),
			target: entities.UserRole,
			action: entities.PromoteSanction,
			err:    service.ErrForbidden,
		},
		{
			name:   "moderator suspends moderator",
			actor:  moderator(),
			target: entities.ModeratorRole,
			action: entities.SuspendSanction,
			err:    service.ErrForbidden,
		},
		{
			name:   "admin suspends admin",
			actor:  admin(),
			target: entities.AdminRole,
			action: entities.SuspendSanction,
			err:    service.ErrForbidden,
		},
		{
			name:   "user warns user",
			actor:  user(),
			target: entities.UserRole,
			action: entities.WarnSanction,
			err:    service.ErrForbidden,
		},
	}

	for i := range tt {
		tc := tt[i]

		t.Run(tc.name, func(t *testing.T) {
			srv, s, _ := newTestService(t)

			target := &entities.User{
				ID:     uuid.New(),
				Email:  "target@example.com",
				Name:   "Target",
				Phone:  "+100000",
				Role:   tc.target,
				Status: entities.ActiveUserStatus,
			}

			expectTx(s)
			s.EXPECT().GetUserForUpdate(gomock.Any(), target.ID).Return(target, nil)

			if tc.err == nil {
				s.EXPECT().SetUserStanding(gomock.Any(), target.ID, tc.role, tc.status, testNow).Return(nil)
				s.EXPECT().CreateModerationAction(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, a *entities.ModerationAction) error {
					require.Nil(t, a.PostID)
					require.Equal(t, target.ID, *a.TargetUserID)
					require.Equal(t, tc.actor.ID, a.ModeratorID)
					require.Equal(t, tc.audit, a.Action)
					require.Equal(t, "rules", a.Reason)
					return nil
				})
			}

			u, err := srv.ApplySanction(context.Background(), tc.actor, target.ID, tc.action, "rules")
			if tc.err != nil {
				require.True(t, errors.Is(err, tc.err), err)
				require.Nil(t, u)
				return
			}

			require.NoError(t, err)
			require.Equal(t, tc.role, u.Role)
			require.Equal(t, tc.status, u.Status)
		})
	}
}

func TestSrv_ApplySanction_InvalidAction(t *testing.T) {
	srv, _, _ := newTestService(t)

	_, err := srv.ApplySanction(context.Background(), admin(), uuid.New(), "BAN", "")
	require.True(t, errors.Is(err, service.ErrInvalidAction))

	_, err = srv.ApplySanction(context.Background(), nil, uuid.New(), entities.WarnSanction, "")
	require.True(t, errors.Is(err, service.ErrUnauthorized))
}

func TestSrv_ApplySanction_UserNotFound(t *testing.T) {
	srv, s, _ := newTestService(t)

	id := uuid.New()

	expectTx(s)
	s.EXPECT().GetUserForUpdate(gomock.Any(), id).Return(nil, storageinterface.ErrNotFound)

	_, err := srv.ApplySanction(context.Background(), admin(), id, entities.WarnSanction, "")
	require.True(t, errors.Is(err, service.ErrNotFound))
}

func TestSrv_GetUser(t *testing.T) {
	srv, s, _ := newTestService(t)

	u := &entities.User{ID: uuid.New(), Email: "a@b.c", Name: "A", Phone: "123", Role: entities.UserRole}

	s.EXPECT().GetUser(gomock.Any(), u.ID).Return(u, nil)
	got, err := srv.GetUser(context.Background(), u.ID)
	require.NoError(t, err)
	require.Equal(t, u.Public(), *got)

	s.EXPECT().GetUser(gomock.Any(), u.ID).Return(nil, storageinterface.ErrNotFound)
	_, err = srv.GetUser(context.Background(), u.ID)
	require.True(t, errors.Is(err, service.ErrNotFound))
}
