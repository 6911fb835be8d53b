package server

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi"
	"github.com/golang-jwt/jwt/v5"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cleanup-hub/cleanup/internal/entities"
	mm "github.com/cleanup-hub/cleanup/internal/middleware"
	"github.com/cleanup-hub/cleanup/internal/service"
	"github.com/cleanup-hub/cleanup/internal/service/mock"
	"github.com/cleanup-hub/cleanup/internal/storage"
)

var (
	secret    = []byte("secret")
	timestamp = time.Unix(1614600000, 0).UTC()
	actor     = &entities.Actor{ID: uuid.MustParse("8d5a2e6e-3f4b-4a4e-8b7a-2b8b3c9a7f01"), Role: entities.UserRole}
	moderator = &entities.Actor{ID: uuid.MustParse("0f3b9c2d-4d0a-4f6e-9a6b-5c1d2e3f4a02"), Role: entities.ModeratorRole}
	postID    = uuid.MustParse("5b0a1e8f-2c3d-4e5f-8a9b-0c1d2e3f4a03")
)

func newRouter(t *testing.T) (http.Handler, *mock.MockService) {
	ctrl := gomock.NewController(t)
	srv := mock.NewMockService(ctrl)

	router := chi.NewRouter()
	SetupRouter(srv, router, Config{Timeout: time.Second, Secret: secret})

	return router, srv
}

func request(t *testing.T, method, path, body string, a *entities.Actor) *http.Request {
	t.Helper()

	var r *http.Request
	if body == "" {
		r = httptest.NewRequest(method, path, nil)
	} else {
		r = httptest.NewRequest(method, path, strings.NewReader(body))
	}

	if a != nil {
		token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, mm.Claims{
			Role: a.Role,
			RegisteredClaims: jwt.RegisteredClaims{
				Subject:   a.ID.String(),
				ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
			},
		}).SignedString(secret)
		require.NoError(t, err)

		r.Header.Set("Authorization", "Bearer "+token)
	}

	return r
}

func serve(h http.Handler, r *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	h.ServeHTTP(w, r)
	return w
}

func testPost(status entities.PostStatus) *entities.Post {
	return &entities.Post{
		ID:           postID,
		Title:        "Trash near the river",
		Description:  "Plastic bags",
		Photos:       []string{"https://img/1.jpg"},
		AuthorID:     actor.ID,
		District:     "Central",
		Neighborhood: "Riverside",
		Status:       status,
		CreatedAt:    timestamp,
		UpdatedAt:    timestamp,
	}
}

const testPostJSON = `{
	"id":"5b0a1e8f-2c3d-4e5f-8a9b-0c1d2e3f4a03",
	"title":"Trash near the river",
	"description":"Plastic bags",
	"photos":["https://img/1.jpg"],
	"author_id":"8d5a2e6e-3f4b-4a4e-8b7a-2b8b3c9a7f01",
	"district":"Central",
	"neighborhood":"Riverside",
	"status":"%s",
	"created_at":1614600000,
	"updated_at":1614600000
}`

func Test_createPost(t *testing.T) {
	router, srv := newRouter(t)

	srv.EXPECT().CreatePost(gomock.Any(), actor, &service.CreatePostParams{
		Title:        "Trash near the river",
		Description:  "Plastic bags",
		Photos:       []string{"https://img/1.jpg"},
		District:     "Central",
		Neighborhood: "Riverside",
	}).Return(testPost(entities.PublishedPostStatus), nil)

	w := serve(router, request(t, http.MethodPost, "/v1/posts", `{
		"title":"Trash near the river",
		"description":"Plastic bags",
		"photos":["https://img/1.jpg"],
		"district":"Central",
		"neighborhood":"Riverside"
	}`, actor))

	require.Equal(t, http.StatusCreated, w.Code)
	assert.JSONEq(t, fmt.Sprintf(testPostJSON, "PUBLISHED"), w.Body.String())
}

func Test_createPost_InvalidBody(t *testing.T) {
	tt := []struct {
		name string
		body string
		err  string
	}{
		{
			name: "malformed",
			body: `{"title":`,
			err:  "invalid request body",
		},
		{
			name: "blank title",
			body: `{"title":"  ","description":"d"}`,
			err:  "invalid title: notblank",
		},
		{
			name: "invalid photo url",
			body: `{"title":"t","description":"d","photos":["not a url"]}`,
			err:  "invalid photos[0]: url",
		},
	}

	for i := range tt {
		tc := tt[i]
		t.Run(tc.name, func(t *testing.T) {
			router, _ := newRouter(t)

			w := serve(router, request(t, http.MethodPost, "/v1/posts", tc.body, actor))

			require.Equal(t, http.StatusBadRequest, w.Code)
			assert.JSONEq(t, fmt.Sprintf(`{"error":%q}`, tc.err), w.Body.String())
		})
	}
}

func Test_listPosts(t *testing.T) {
	router, srv := newRouter(t)

	author := actor.ID
	after := postID
	query := fmt.Sprintf("q=river&district=Central&neighborhood=Riverside&author=%s&status=DRAFT&orderBy=asc&limit=10&after=%s",
		author, after)

	srv.EXPECT().ListPosts(gomock.Any(), actor, gomock.Any()).DoAndReturn(
		func(_ context.Context, _ *entities.Actor, p *service.ListPostsParams) ([]*entities.Post, error) {
			assert.Equal(t, "river", *p.Query)
			assert.Equal(t, "Central", *p.District)
			assert.Equal(t, "Riverside", *p.Neighborhood)
			assert.Equal(t, author, *p.Author)
			assert.Equal(t, entities.DraftPostStatus, *p.Status)
			assert.Equal(t, storage.AscendingOrder, p.OrderBy)
			assert.EqualValues(t, 10, p.Limit)
			assert.Equal(t, after, *p.After)

			return []*entities.Post{testPost(entities.DraftPostStatus)}, nil
		})

	w := serve(router, request(t, http.MethodGet, "/v1/posts?"+query, "", actor))

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, "["+fmt.Sprintf(testPostJSON, "DRAFT")+"]", w.Body.String())
}

func Test_listPosts_Anonymous(t *testing.T) {
	router, srv := newRouter(t)

	srv.EXPECT().ListPosts(gomock.Any(), nil, &service.ListPostsParams{
		OrderBy: storage.DescendingOrder,
	}).Return([]*entities.Post{}, nil)

	w := serve(router, request(t, http.MethodGet, "/v1/posts", "", nil))

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "[]", w.Body.String())
}

func Test_listPosts_InvalidParams(t *testing.T) {
	for _, q := range []string{
		"limit=1000",
		"limit=-1",
		"orderBy=random",
		"author=1234",
		"after=abc",
	} {
		t.Run(q, func(t *testing.T) {
			router, _ := newRouter(t)

			w := serve(router, request(t, http.MethodGet, "/v1/posts?"+q, "", nil))
			require.Equal(t, http.StatusBadRequest, w.Code)
		})
	}
}

func Test_getPost_Errors(t *testing.T) {
	tt := []struct {
		err    error
		status int
		body   string
	}{
		{
			err:    fmt.Errorf("%w: post %s", service.ErrNotFound, postID),
			status: http.StatusNotFound,
			body:   fmt.Sprintf(`{"error":"not found: post %s"}`, postID),
		},
		{
			err:    fmt.Errorf("%w: login required", service.ErrUnauthorized),
			status: http.StatusUnauthorized,
		},
		{
			err:    fmt.Errorf("%w: not an author", service.ErrForbidden),
			status: http.StatusForbidden,
		},
		{
			err:    fmt.Errorf("%w: title is required", service.ErrValidation),
			status: http.StatusBadRequest,
		},
		{
			err:    fmt.Errorf("%w: action", service.ErrInvalidAction),
			status: http.StatusBadRequest,
		},
		{
			err:    fmt.Errorf("%w: start in the past", service.ErrInvalidDate),
			status: http.StatusBadRequest,
		},
		{
			err:    fmt.Errorf("%w: post is archived", service.ErrInvalidState),
			status: http.StatusConflict,
		},
		{
			err:    fmt.Errorf("%w: flag", service.ErrConflict),
			status: http.StatusConflict,
		},
		{
			err:    fmt.Errorf("%w: 10 attendees", service.ErrFull),
			status: http.StatusConflict,
			body:   `{"error":"event is full"}`,
		},
		{
			err:    fmt.Errorf("failed to get post: %w", context.DeadlineExceeded),
			status: http.StatusInternalServerError,
			body:   `{"error":"internal error"}`,
		},
	}

	for i := range tt {
		tc := tt[i]
		t.Run(tc.err.Error(), func(t *testing.T) {
			router, srv := newRouter(t)

			srv.EXPECT().GetPost(gomock.Any(), nil, postID).Return(nil, tc.err)

			w := serve(router, request(t, http.MethodGet, "/v1/posts/"+postID.String(), "", nil))

			require.Equal(t, tc.status, w.Code)
			if tc.body != "" {
				assert.JSONEq(t, tc.body, w.Body.String())
			}
		})
	}
}

func Test_invalidID(t *testing.T) {
	router, _ := newRouter(t)

	w := serve(router, request(t, http.MethodGet, "/v1/posts/1234", "", nil))

	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"error":"invalid id"}`, w.Body.String())
}

func Test_invalidToken(t *testing.T) {
	router, _ := newRouter(t)

	r := request(t, http.MethodGet, "/v1/posts", "", nil)
	r.Header.Set("Authorization", "Bearer invalid")

	w := serve(router, r)

	require.Equal(t, http.StatusUnauthorized, w.Code)
}

func Test_updatePostStatus(t *testing.T) {
	router, srv := newRouter(t)

	srv.EXPECT().UpdatePostStatus(gomock.Any(), actor, postID, entities.PublishedPostStatus).
		Return(testPost(entities.PublishedPostStatus), nil)

	w := serve(router, request(t, http.MethodPut, "/v1/posts/"+postID.String()+"/status", `{"status":"PUBLISHED"}`, actor))

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, fmt.Sprintf(testPostJSON, "PUBLISHED"), w.Body.String())
}

func Test_completePost(t *testing.T) {
	router, srv := newRouter(t)

	srv.EXPECT().CompletePost(gomock.Any(), actor, postID, []string{"https://img/2.jpg"}).
		Return(testPost(entities.CompletedPostStatus), nil)

	w := serve(router, request(t, http.MethodPost, "/v1/posts/"+postID.String()+"/complete", `{"photos":["https://img/2.jpg"]}`, actor))

	require.Equal(t, http.StatusOK, w.Code)
}

func Test_flagPost(t *testing.T) {
	router, srv := newRouter(t)

	flagID := uuid.MustParse("a1b2c3d4-e5f6-4a7b-8c9d-0e1f2a3b4c05")
	srv.EXPECT().FlagPost(gomock.Any(), moderator, postID, entities.SpamFlagReason, "ads").Return(&entities.Flag{
		ID:        flagID,
		PostID:    postID,
		UserID:    moderator.ID,
		Reason:    entities.SpamFlagReason,
		Comment:   "ads",
		Status:    entities.PendingFlagStatus,
		CreatedAt: timestamp,
		UpdatedAt: timestamp,
	}, nil)

	w := serve(router, request(t, http.MethodPost, "/v1/posts/"+postID.String()+"/flags", `{"reason":"spam","comment":"ads"}`, moderator))

	require.Equal(t, http.StatusCreated, w.Code)
	assert.JSONEq(t, fmt.Sprintf(`{
		"id":"%s",
		"post_id":"%s",
		"user_id":"%s",
		"reason":"spam",
		"comment":"ads",
		"status":"PENDING",
		"created_at":1614600000,
		"updated_at":1614600000
	}`, flagID, postID, moderator.ID), w.Body.String())
}

func Test_listFlaggedPosts(t *testing.T) {
	router, srv := newRouter(t)

	srv.EXPECT().ListFlaggedPosts(gomock.Any(), moderator, &storage.ListFlaggedPostsParams{
		FlagStatus: entities.ResolvedFlagStatus,
		Limit:      5,
		Offset:     10,
	}).Return([]*storage.FlaggedPost{
		{
			Post:       *testPost(entities.ArchivedPostStatus),
			FlagsCount: 3,
			LastFlagAt: timestamp,
		},
	}, nil)

	w := serve(router, request(t, http.MethodGet, "/v1/moderation/posts?flagStatus=RESOLVED&limit=5&offset=10", "", moderator))

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[{"post":`+fmt.Sprintf(testPostJSON, "ARCHIVED")+`,"flags_count":3,"last_flag_at":1614600000}]`,
		w.Body.String())

	w = serve(router, request(t, http.MethodGet, "/v1/moderation/posts?flagStatus=UNKNOWN", "", moderator))
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func Test_moderate_DeletePost(t *testing.T) {
	router, srv := newRouter(t)

	flagID := uuid.MustParse("a1b2c3d4-e5f6-4a7b-8c9d-0e1f2a3b4c05")
	actionID := uuid.MustParse("b1b2c3d4-e5f6-4a7b-8c9d-0e1f2a3b4c06")

	srv.EXPECT().Moderate(gomock.Any(), moderator, postID, &service.ModerationRequest{
		Action:       entities.DeletePostAction,
		Reason:       "illegal content",
		NotifyAuthor: true,
	}).Return(&service.ModerationResult{
		Flags: []uuid.UUID{flagID},
		Actions: []*entities.ModerationAction{
			{
				ID:           actionID,
				TargetUserID: &actor.ID,
				ModeratorID:  moderator.ID,
				Action:       entities.DeletePostAction,
				Reason:       "illegal content",
				CreatedAt:    timestamp,
			},
		},
	}, nil)

	w := serve(router, request(t, http.MethodPost, "/v1/moderation/posts/"+postID.String(),
		`{"action":"DELETE_POST","reason":"illegal content","notify_author":true}`, moderator))

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, fmt.Sprintf(`{
		"flags":["%s"],
		"actions":[{
			"id":"%s",
			"post_id":null,
			"target_user_id":"%s",
			"moderator_id":"%s",
			"action":"DELETE_POST",
			"reason":"illegal content",
			"created_at":1614600000
		}]
	}`, flagID, actionID, actor.ID, moderator.ID), w.Body.String())
}

func Test_moderate_MissingAction(t *testing.T) {
	router, _ := newRouter(t)

	w := serve(router, request(t, http.MethodPost, "/v1/moderation/posts/"+postID.String(), `{"reason":"r"}`, moderator))

	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"error":"invalid action: required"}`, w.Body.String())
}

func Test_listModerationActions(t *testing.T) {
	router, srv := newRouter(t)

	srv.EXPECT().ListModerationActions(gomock.Any(), moderator, &storage.ListModerationActionsParams{
		TargetUserID: &actor.ID,
		Limit:        50,
	}).Return([]*entities.ModerationAction{}, nil)

	w := serve(router, request(t, http.MethodGet, "/v1/moderation/actions?targetUser="+actor.ID.String()+"&limit=50", "", moderator))

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "[]", w.Body.String())
}

func Test_applySanction(t *testing.T) {
	router, srv := newRouter(t)

	srv.EXPECT().ApplySanction(gomock.Any(), moderator, actor.ID, entities.WarnSanction, "spam").Return(&entities.PublicUser{
		ID:     actor.ID,
		Email:  "user@example.com",
		Name:   "User",
		Role:   entities.UserRole,
		Status: entities.WarnedUserStatus,
	}, nil)

	w := serve(router, request(t, http.MethodPost, "/v1/users/"+actor.ID.String()+"/sanctions", `{"action":"WARN","reason":"spam"}`, moderator))

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, fmt.Sprintf(`{"id":"%s","email":"user@example.com","name":"User","role":"USER","status":"WARNED"}`, actor.ID),
		w.Body.String())
}

func Test_createEvent(t *testing.T) {
	router, srv := newRouter(t)

	eventID := uuid.MustParse("c1b2c3d4-e5f6-4a7b-8c9d-0e1f2a3b4c07")
	start := timestamp.Add(24 * time.Hour)
	end := start.Add(3 * time.Hour)
	capacity := 10

	srv.EXPECT().CreateEvent(gomock.Any(), actor, postID, &service.CreateEventParams{
		Title:         "Saturday cleanup",
		Description:   "Bring gloves",
		StartDate:     start,
		EndDate:       &end,
		MaxAttendees:  &capacity,
		RequiredTools: "gloves",
	}).Return(&entities.Event{
		ID:            eventID,
		Title:         "Saturday cleanup",
		Description:   "Bring gloves",
		StartDate:     start,
		EndDate:       &end,
		Status:        entities.PlannedEventStatus,
		MaxAttendees:  &capacity,
		OrganizerID:   actor.ID,
		PostID:        postID,
		District:      "Central",
		Neighborhood:  "Riverside",
		RequiredTools: "gloves",
		CreatedAt:     timestamp,
		Attendees:     []entities.EventAttendee{},
	}, nil)

	w := serve(router, request(t, http.MethodPost, "/v1/posts/"+postID.String()+"/events", fmt.Sprintf(`{
		"title":"Saturday cleanup",
		"description":"Bring gloves",
		"start_date":%d,
		"end_date":%d,
		"max_attendees":10,
		"required_tools":"gloves"
	}`, start.Unix(), end.Unix()), actor))

	require.Equal(t, http.StatusCreated, w.Code)
	assert.JSONEq(t, fmt.Sprintf(`{
		"id":"%s",
		"post_id":"%s",
		"organizer_id":"%s",
		"title":"Saturday cleanup",
		"description":"Bring gloves",
		"start_date":%d,
		"end_date":%d,
		"status":"PLANNED",
		"max_attendees":10,
		"district":"Central",
		"neighborhood":"Riverside",
		"required_tools":"gloves",
		"attendees":[],
		"created_at":1614600000
	}`, eventID, postID, actor.ID, start.Unix(), end.Unix()), w.Body.String())
}

func Test_joinEvent(t *testing.T) {
	eventID := uuid.MustParse("c1b2c3d4-e5f6-4a7b-8c9d-0e1f2a3b4c07")

	router, srv := newRouter(t)
	srv.EXPECT().JoinEvent(gomock.Any(), actor, eventID).Return(nil)

	w := serve(router, request(t, http.MethodPost, "/v1/events/"+eventID.String()+"/attendees", "", actor))
	require.Equal(t, http.StatusNoContent, w.Code)

	srv.EXPECT().JoinEvent(gomock.Any(), actor, eventID).Return(fmt.Errorf("%w: 10 attendees", service.ErrFull))

	w = serve(router, request(t, http.MethodPost, "/v1/events/"+eventID.String()+"/attendees", "", actor))
	require.Equal(t, http.StatusConflict, w.Code)
	assert.JSONEq(t, `{"error":"event is full"}`, w.Body.String())
}

func Test_getEvent_HiddenPost(t *testing.T) {
	eventID := uuid.MustParse("c1b2c3d4-e5f6-4a7b-8c9d-0e1f2a3b4c07")

	router, srv := newRouter(t)

	srv.EXPECT().GetEvent(gomock.Any(), actor, eventID).Return(nil, fmt.Errorf("%w: event=%s", service.ErrNotFound, eventID))
	w := serve(router, request(t, http.MethodGet, "/v1/events/"+eventID.String(), "", actor))
	require.Equal(t, http.StatusNotFound, w.Code)

	srv.EXPECT().ListEvents(gomock.Any(), nil, postID).Return(nil, fmt.Errorf("%w: post=%s", service.ErrNotFound, postID))
	w = serve(router, request(t, http.MethodGet, "/v1/posts/"+postID.String()+"/events", "", nil))
	require.Equal(t, http.StatusNotFound, w.Code)
}

func Test_leaveEvent(t *testing.T) {
	eventID := uuid.MustParse("c1b2c3d4-e5f6-4a7b-8c9d-0e1f2a3b4c07")

	router, srv := newRouter(t)
	srv.EXPECT().LeaveEvent(gomock.Any(), actor, eventID).Return(nil)

	w := serve(router, request(t, http.MethodDelete, "/v1/events/"+eventID.String()+"/attendees", "", actor))
	require.Equal(t, http.StatusNoContent, w.Code)
}

func Test_updateEventStatus(t *testing.T) {
	eventID := uuid.MustParse("c1b2c3d4-e5f6-4a7b-8c9d-0e1f2a3b4c07")

	router, srv := newRouter(t)
	srv.EXPECT().UpdateEventStatus(gomock.Any(), actor, eventID, entities.CancelledEventStatus).
		Return(nil, fmt.Errorf("%w: event is completed", service.ErrInvalidState))

	w := serve(router, request(t, http.MethodPut, "/v1/events/"+eventID.String()+"/status", `{"status":"CANCELLED"}`, actor))
	require.Equal(t, http.StatusConflict, w.Code)
}

func Test_interest(t *testing.T) {
	router, srv := newRouter(t)

	srv.EXPECT().ExpressInterest(gomock.Any(), moderator, postID, true).Return(uint64(3), nil)
	w := serve(router, request(t, http.MethodPut, "/v1/posts/"+postID.String()+"/interest", `{"share_contact_info":true}`, moderator))
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"interested_count":3}`, w.Body.String())

	srv.EXPECT().WithdrawInterest(gomock.Any(), moderator, postID).Return(uint64(2), nil)
	w = serve(router, request(t, http.MethodDelete, "/v1/posts/"+postID.String()+"/interest", "", moderator))
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"interested_count":2}`, w.Body.String())
}

func Test_listInterestedUsers(t *testing.T) {
	router, srv := newRouter(t)

	email := "shared@example.com"
	shared := uuid.MustParse("d1b2c3d4-e5f6-4a7b-8c9d-0e1f2a3b4c08")
	hidden := uuid.MustParse("e1b2c3d4-e5f6-4a7b-8c9d-0e1f2a3b4c09")

	srv.EXPECT().ListInterestedUsers(gomock.Any(), actor, postID).Return([]*entities.InterestedUser{
		{ID: shared, Name: "Shared", Email: &email, InterestedAt: timestamp},
		{ID: hidden, Name: "Hidden", InterestedAt: timestamp},
	}, nil)

	w := serve(router, request(t, http.MethodGet, "/v1/posts/"+postID.String()+"/interested", "", actor))

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, fmt.Sprintf(`[
		{"id":"%s","name":"Shared","email":"shared@example.com","interested_at":1614600000},
		{"id":"%s","name":"Hidden","interested_at":1614600000}
	]`, shared, hidden), w.Body.String())
}

func Test_getStats(t *testing.T) {
	router, srv := newRouter(t)

	srv.EXPECT().GetStats(gomock.Any()).Return(&entities.Stats{
		Posts:         map[entities.PostStatus]uint64{entities.PublishedPostStatus: 4},
		PlannedEvents: 2,
		Volunteers:    7,
	}, nil)

	w := serve(router, request(t, http.MethodGet, "/v1/stats", "", nil))

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"posts":{"PUBLISHED":4},"planned_events":2,"volunteers":7}`, w.Body.String())
}

func Test_health(t *testing.T) {
	router, _ := newRouter(t)

	w := serve(router, request(t, http.MethodGet, "/health", "", nil))

	require.Equal(t, http.StatusOK, w.Code)
}
