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
	notifier "github.com/cleanup-hub/cleanup/internal/notifier/mock"
	storageinterface "github.com/cleanup-hub/cleanup/internal/storage"
	storage "github.com/cleanup-hub/cleanup/internal/storage/mock"
)

var testNow = time.Date(2021, time.March, 1, 12, 0, 0, 0, time.UTC)

func newTestService(t *testing.T, opts ...Option) (*srv, *storage.MockStorage, *notifier.MockNotifier) {
	ctrl := gomock.NewController(t)

	s := storage.NewMockStorage(ctrl)
	n := notifier.NewMockNotifier(ctrl)

	opts = append([]Option{WithClock(func() time.Time { return testNow })}, opts...)

	return New(s, n, opts...).(*srv), s, n
}

func expectTx(s *storage.MockStorage) {
	s.EXPECT().InTx(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, f func(s storageinterface.Storage) error) error {
		return f(s)
	})
}

func user() *entities.Actor {
	return &entities.Actor{ID: uuid.New(), Role: entities.UserRole}
}

func moderator() *entities.Actor {
	return &entities.Actor{ID: uuid.New(), Role: entities.ModeratorRole}
}

func admin() *entities.Actor {
	return &entities.Actor{ID: uuid.New(), Role: entities.AdminRole}
}

func post(author uuid.UUID, status entities.PostStatus) *entities.Post {
	return &entities.Post{
		ID:           uuid.New(),
		Title:        "Trash near the river",
		Description:  "A lot of plastic bottles",
		Photos:       []string{"https://img/1.jpg"},
		AuthorID:     author,
		District:     "Central",
		Neighborhood: "Riverside",
		Status:       status,
		CreatedAt:    testNow.Add(-time.Hour),
		UpdatedAt:    testNow.Add(-time.Hour),
	}
}

func TestNew(t *testing.T) {
	s := New(nil, nil).(*srv)

	require.NotNil(t, s.n)
	require.NotNil(t, s.now)
	require.False(t, s.showArchived)

	s = New(nil, nil, WithArchivedVisibleToModerators(true)).(*srv)
	require.True(t, s.showArchived)
}

func TestSrv_GetStats(t *testing.T) {
	srv, s, _ := newTestService(t)

	stats := &entities.Stats{
		Posts:         map[entities.PostStatus]uint64{entities.PublishedPostStatus: 2},
		PlannedEvents: 1,
		Volunteers:    3,
	}

	s.EXPECT().GetStats(gomock.Any()).Return(stats, nil)
	got, err := srv.GetStats(context.Background())
	require.NoError(t, err)
	require.Equal(t, stats, got)

	s.EXPECT().GetStats(gomock.Any()).Return(nil, context.Canceled)
	_, err = srv.GetStats(context.Background())
	require.True(t, errors.Is(err, context.Canceled))
}

func TestLimitOf(t *testing.T) {
	require.EqualValues(t, defaultLimit, limitOf(0))
	require.EqualValues(t, 5, limitOf(5))
	require.EqualValues(t, maxLimit, limitOf(maxLimit+1))
}
