package impl

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/cleanup-hub/cleanup/internal/entities"
	"github.com/cleanup-hub/cleanup/internal/service"
	storageinterface "github.com/cleanup-hub/cleanup/internal/storage"
)

func intPtr(v int) *int {
	return &v
}

func timePtr(v time.Time) *time.Time {
	return &v
}

func TestSrv_CreateEvent(t *testing.T) {
	author, volunteer := user(), user()
	p := post(author.ID, entities.PublishedPostStatus)

	valid := func() *service.CreateEventParams {
		return &service.CreateEventParams{
			Title:        "Riverside cleanup",
			Description:  "Bring gloves",
			StartDate:    testNow.Add(24 * time.Hour),
			EndDate:      timePtr(testNow.Add(27 * time.Hour)),
			MaxAttendees: intPtr(10),
		}
	}

	tt := []struct {
		name       string
		actor      *entities.Actor
		params     func() *service.CreateEventParams
		getPost    bool
		interested error
		create     bool
		err        error
	}{
		{
			name:    "author",
			actor:   author,
			params:  valid,
			getPost: true,
			create:  true,
		},
		{
			name:       "interested user",
			actor:      volunteer,
			params:     valid,
			getPost:    true,
			interested: nil,
			create:     true,
		},
		{
			name:       "not interested user",
			actor:      volunteer,
			params:     valid,
			getPost:    true,
			interested: storageinterface.ErrNotFound,
			err:        service.ErrForbidden,
		},
		{
			name:   "anonymous",
			params: valid,
			err:    service.ErrUnauthorized,
		},
		{
			name:  "no title",
			actor: author,
			params: func() *service.CreateEventParams {
				p := valid()
				p.Title = " "
				return p
			},
			err: service.ErrValidation,
		},
		{
			name:  "zero capacity",
			actor: author,
			params: func() *service.CreateEventParams {
				p := valid()
				p.MaxAttendees = intPtr(0)
				return p
			},
			err: service.ErrValidation,
		},
		{
			name:  "start in the past",
			actor: author,
			params: func() *service.CreateEventParams {
				p := valid()
				p.StartDate = testNow.Add(-time.Minute)
				return p
			},
			getPost: true,
			err:     service.ErrInvalidDate,
		},
		{
			name:  "start equals now",
			actor: author,
			params: func() *service.CreateEventParams {
				p := valid()
				p.StartDate = testNow
				return p
			},
			getPost: true,
			err:     service.ErrInvalidDate,
		},
		{
			name:  "end before start",
			actor: author,
			params: func() *service.CreateEventParams {
				p := valid()
				p.EndDate = timePtr(p.StartDate.Add(-time.Hour))
				return p
			},
			getPost: true,
			err:     service.ErrInvalidDate,
		},
	}

	for i := range tt {
		tc := tt[i]

		t.Run(tc.name, func(t *testing.T) {
			srv, s, _ := newTestService(t)

			if tc.getPost {
				s.EXPECT().GetPost(gomock.Any(), p.ID).Return(p, nil)
			}

			if tc.getPost && tc.actor.ID != author.ID {
				var i *entities.PostInterest
				if tc.interested == nil {
					i = &entities.PostInterest{UserID: tc.actor.ID, PostID: p.ID}
				}
				s.EXPECT().GetInterest(gomock.Any(), tc.actor.ID, p.ID).Return(i, tc.interested)
			}

			if tc.create {
				s.EXPECT().CreateEvent(gomock.Any(), gomock.Any()).Return(nil)
			}

			e, err := srv.CreateEvent(context.Background(), tc.actor, p.ID, tc.params())
			if tc.err != nil {
				require.True(t, errors.Is(err, tc.err), err)
				require.Nil(t, e)
				return
			}

			require.NoError(t, err)
			require.Equal(t, entities.PlannedEventStatus, e.Status)
			require.Equal(t, tc.actor.ID, e.OrganizerID)
			require.Equal(t, p.District, e.District)
			require.Equal(t, p.Neighborhood, e.Neighborhood)
			require.NotNil(t, e.Attendees)
			require.Empty(t, e.Attendees)
		})
	}
}

func event(organizer uuid.UUID, status entities.EventStatus, max *int, attendees ...uuid.UUID) *entities.Event {
	e := &entities.Event{
		ID:           uuid.New(),
		Title:        "Cleanup",
		Description:  "Park cleanup",
		StartDate:    testNow.Add(time.Hour),
		Status:       status,
		MaxAttendees: max,
		OrganizerID:  organizer,
		PostID:       uuid.New(),
		Attendees:    []entities.EventAttendee{},
	}

	for _, v := range attendees {
		e.Attendees = append(e.Attendees, entities.EventAttendee{EventID: e.ID, UserID: v, JoinedAt: testNow})
	}

	return e
}

func TestSrv_JoinEvent(t *testing.T) {
	organizer, volunteer, author := user(), user(), user()

	tt := []struct {
		name  string
		actor *entities.Actor
		event *entities.Event
		post  *entities.Post
		add   error
		err   error
	}{
		{
			name:  "success",
			actor: volunteer,
			event: event(organizer.ID, entities.PlannedEventStatus, intPtr(2), uuid.New()),
		},
		{
			name:  "unlimited",
			actor: volunteer,
			event: event(organizer.ID, entities.PlannedEventStatus, nil, uuid.New(), uuid.New()),
		},
		{
			name:  "full",
			actor: volunteer,
			event: event(organizer.ID, entities.PlannedEventStatus, intPtr(1), uuid.New()),
			err:   service.ErrFull,
		},
		{
			name:  "organizer",
			actor: organizer,
			event: event(organizer.ID, entities.PlannedEventStatus, nil),
			err:   service.ErrForbidden,
		},
		{
			name:  "post author",
			actor: author,
			event: event(organizer.ID, entities.PlannedEventStatus, nil),
			post:  post(author.ID, entities.PublishedPostStatus),
			err:   service.ErrForbidden,
		},
		{
			name:  "archived post",
			actor: volunteer,
			event: event(organizer.ID, entities.PlannedEventStatus, nil),
			post:  post(author.ID, entities.ArchivedPostStatus),
			err:   service.ErrNotFound,
		},
		{
			name:  "archived post moderator",
			actor: moderator(),
			event: event(organizer.ID, entities.PlannedEventStatus, nil),
			post:  post(author.ID, entities.ArchivedPostStatus),
			err:   service.ErrNotFound,
		},
		{
			name:  "already active",
			actor: volunteer,
			event: event(organizer.ID, entities.ActiveEventStatus, nil),
			err:   service.ErrInvalidState,
		},
		{
			name:  "already attending",
			actor: volunteer,
			event: event(organizer.ID, entities.PlannedEventStatus, nil, volunteer.ID),
			err:   service.ErrConflict,
		},
		{
			name:  "concurrent duplicate",
			actor: volunteer,
			event: event(organizer.ID, entities.PlannedEventStatus, nil),
			add:   storageinterface.ErrAlreadyExists,
			err:   service.ErrConflict,
		},
	}

	for i := range tt {
		tc := tt[i]

		t.Run(tc.name, func(t *testing.T) {
			srv, s, _ := newTestService(t, WithArchivedVisibleToModerators(true))

			p := tc.post
			if p == nil {
				p = post(author.ID, entities.PublishedPostStatus)
			}
			tc.event.PostID = p.ID

			expectTx(s)
			s.EXPECT().GetEventForUpdate(gomock.Any(), tc.event.ID).Return(tc.event, nil)
			s.EXPECT().GetPost(gomock.Any(), p.ID).Return(p, nil)

			if tc.err == nil || tc.add != nil {
				s.EXPECT().AddAttendee(gomock.Any(), tc.event.ID, tc.actor.ID, testNow).Return(tc.add)
			}

			err := srv.JoinEvent(context.Background(), tc.actor, tc.event.ID)
			if tc.err != nil {
				require.True(t, errors.Is(err, tc.err), err)
				return
			}

			require.NoError(t, err)
		})
	}
}

func TestSrv_JoinEvent_NotFound(t *testing.T) {
	srv, s, _ := newTestService(t)

	id := uuid.New()

	expectTx(s)
	s.EXPECT().GetEventForUpdate(gomock.Any(), id).Return(nil, storageinterface.ErrNotFound)

	require.True(t, errors.Is(srv.JoinEvent(context.Background(), user(), id), service.ErrNotFound))
	require.True(t, errors.Is(srv.JoinEvent(context.Background(), nil, id), service.ErrUnauthorized))
}

func TestSrv_LeaveEvent(t *testing.T) {
	srv, s, _ := newTestService(t)
	volunteer := user()

	e := event(uuid.New(), entities.PlannedEventStatus, nil, volunteer.ID)

	expectTx(s)
	s.EXPECT().GetEventForUpdate(gomock.Any(), e.ID).Return(e, nil)
	s.EXPECT().RemoveAttendee(gomock.Any(), e.ID, volunteer.ID).Return(nil)
	require.NoError(t, srv.LeaveEvent(context.Background(), volunteer, e.ID))

	expectTx(s)
	s.EXPECT().GetEventForUpdate(gomock.Any(), e.ID).Return(e, nil)
	s.EXPECT().RemoveAttendee(gomock.Any(), e.ID, volunteer.ID).Return(storageinterface.ErrNotFound)
	require.True(t, errors.Is(srv.LeaveEvent(context.Background(), volunteer, e.ID), service.ErrNotFound))

	e.Status = entities.CompletedEventStatus
	expectTx(s)
	s.EXPECT().GetEventForUpdate(gomock.Any(), e.ID).Return(e, nil)
	require.True(t, errors.Is(srv.LeaveEvent(context.Background(), volunteer, e.ID), service.ErrInvalidState))
}

func TestSrv_UpdateEventStatus(t *testing.T) {
	organizer := user()

	tt := []struct {
		name    string
		actor   *entities.Actor
		current entities.EventStatus
		status  entities.EventStatus
		err     error
	}{
		{name: "start", actor: organizer, current: entities.PlannedEventStatus, status: entities.ActiveEventStatus},
		{name: "complete", actor: organizer, current: entities.ActiveEventStatus, status: entities.CompletedEventStatus},
		{name: "cancel planned", actor: organizer, current: entities.PlannedEventStatus, status: entities.CancelledEventStatus},
		{name: "cancel active", actor: organizer, current: entities.ActiveEventStatus, status: entities.CancelledEventStatus},
		{name: "complete planned", actor: organizer, current: entities.PlannedEventStatus, status: entities.CompletedEventStatus, err: service.ErrInvalidState},
		{name: "reopen", actor: organizer, current: entities.CompletedEventStatus, status: entities.PlannedEventStatus, err: service.ErrInvalidState},
		{name: "revive cancelled", actor: organizer, current: entities.CancelledEventStatus, status: entities.ActiveEventStatus, err: service.ErrInvalidState},
		{name: "not organizer", actor: moderator(), current: entities.PlannedEventStatus, status: entities.CancelledEventStatus, err: service.ErrForbidden},
	}

	for i := range tt {
		tc := tt[i]

		t.Run(tc.name, func(t *testing.T) {
			srv, s, _ := newTestService(t)

			e := event(organizer.ID, tc.current, nil)

			expectTx(s)
			s.EXPECT().GetEventForUpdate(gomock.Any(), e.ID).Return(e, nil)
			if tc.err == nil {
				s.EXPECT().SetEventStatus(gomock.Any(), e.ID, tc.status, testNow).Return(nil)
			}

			got, err := srv.UpdateEventStatus(context.Background(), tc.actor, e.ID, tc.status)
			if tc.err != nil {
				require.True(t, errors.Is(err, tc.err), err)
				return
			}

			require.NoError(t, err)
			require.Equal(t, tc.status, got.Status)
		})
	}
}

func TestSrv_UpdateEventStatus_Unknown(t *testing.T) {
	srv, _, _ := newTestService(t)

	_, err := srv.UpdateEventStatus(context.Background(), user(), uuid.New(), "POSTPONED")
	require.True(t, errors.Is(err, service.ErrValidation))
}

func TestSrv_AdvanceEvents(t *testing.T) {
	srv, s, _ := newTestService(t)

	s.EXPECT().AdvanceEvents(gomock.Any(), testNow).Return(uint64(3), nil)
	c, err := srv.AdvanceEvents(context.Background())
	require.NoError(t, err)
	require.EqualValues(t, 3, c)

	s.EXPECT().AdvanceEvents(gomock.Any(), testNow).Return(uint64(0), context.Canceled)
	_, err = srv.AdvanceEvents(context.Background())
	require.True(t, errors.Is(err, context.Canceled))
}

func TestSrv_GetEvent(t *testing.T) {
	srv, s, _ := newTestService(t, WithArchivedVisibleToModerators(true))

	author := user()
	p := post(author.ID, entities.PublishedPostStatus)
	e := event(uuid.New(), entities.PlannedEventStatus, nil)
	e.PostID = p.ID

	s.EXPECT().GetEvent(gomock.Any(), e.ID).Return(e, nil)
	s.EXPECT().GetPost(gomock.Any(), p.ID).Return(p, nil)
	got, err := srv.GetEvent(context.Background(), nil, e.ID)
	require.NoError(t, err)
	require.Equal(t, e, got)

	s.EXPECT().GetEvent(gomock.Any(), e.ID).Return(nil, storageinterface.ErrNotFound)
	_, err = srv.GetEvent(context.Background(), nil, e.ID)
	require.True(t, errors.Is(err, service.ErrNotFound))

	s.EXPECT().ListEvents(gomock.Any(), p.ID).Return([]*entities.Event{e}, nil)
	s.EXPECT().GetPost(gomock.Any(), p.ID).Return(p, nil)
	list, err := srv.ListEvents(context.Background(), user(), p.ID)
	require.NoError(t, err)
	require.Len(t, list, 1)
}

func TestSrv_GetEvent_HiddenPost(t *testing.T) {
	author := user()

	tt := []struct {
		name   string
		actor  *entities.Actor
		status entities.PostStatus
		err    error
	}{
		{name: "archived anonymous", status: entities.ArchivedPostStatus, err: service.ErrNotFound},
		{name: "archived user", actor: user(), status: entities.ArchivedPostStatus, err: service.ErrNotFound},
		{name: "archived moderator", actor: moderator(), status: entities.ArchivedPostStatus},
		{name: "archived author", actor: author, status: entities.ArchivedPostStatus},
		{name: "draft user", actor: user(), status: entities.DraftPostStatus, err: service.ErrNotFound},
		{name: "completed", status: entities.CompletedPostStatus},
	}

	for i := range tt {
		tc := tt[i]

		t.Run(tc.name, func(t *testing.T) {
			srv, s, _ := newTestService(t, WithArchivedVisibleToModerators(true))

			p := post(author.ID, tc.status)
			e := event(uuid.New(), entities.PlannedEventStatus, nil)
			e.PostID = p.ID

			s.EXPECT().GetEvent(gomock.Any(), e.ID).Return(e, nil)
			s.EXPECT().GetPost(gomock.Any(), p.ID).Return(p, nil).Times(2)
			if tc.err == nil {
				s.EXPECT().ListEvents(gomock.Any(), p.ID).Return([]*entities.Event{e}, nil)
			}

			_, getErr := srv.GetEvent(context.Background(), tc.actor, e.ID)
			_, listErr := srv.ListEvents(context.Background(), tc.actor, p.ID)
			if tc.err != nil {
				require.True(t, errors.Is(getErr, tc.err), getErr)
				require.True(t, errors.Is(listErr, tc.err), listErr)
				return
			}

			require.NoError(t, getErr)
			require.NoError(t, listErr)
		})
	}
}
