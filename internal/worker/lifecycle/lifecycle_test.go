package lifecycle

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"

	"github.com/cleanup-hub/cleanup/internal/service/mock"
)

func TestLifecycle_Run(t *testing.T) {
	ctrl := gomock.NewController(t)
	srv := mock.NewMockService(ctrl)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := make(chan struct{})
	var calls int
	srv.EXPECT().AdvanceEvents(gomock.Any()).DoAndReturn(func(context.Context) (uint64, error) {
		calls++
		if calls == 3 {
			close(done)
		}
		return 1, nil
	}).MinTimes(3)

	w := New(srv, 10*time.Millisecond)
	require.ErrorIs(t, w.Ping(ctx), errNotStarted)

	errs := make(chan error)
	go func() {
		errs <- w.Run(ctx)
	}()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("worker didn't run")
	}

	cancel()
	require.NoError(t, <-errs)
	require.NoError(t, w.Ping(context.Background()))
	require.Equal(t, "lifecycle", w.Name())
}

func TestLifecycle_Ping(t *testing.T) {
	ctrl := gomock.NewController(t)
	srv := mock.NewMockService(ctrl)

	w := New(srv, time.Hour).(*lifecycle)

	srv.EXPECT().AdvanceEvents(gomock.Any()).Return(uint64(0), errors.New("connection refused"))
	w.tick(context.Background())
	require.EqualError(t, w.Ping(context.Background()), "failed to advance events: connection refused")

	srv.EXPECT().AdvanceEvents(gomock.Any()).Return(uint64(2), nil)
	w.tick(context.Background())
	require.NoError(t, w.Ping(context.Background()))
}
