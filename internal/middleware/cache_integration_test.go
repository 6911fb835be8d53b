//go:build integration
// +build integration

package middleware

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

var (
	ctx    = context.Background()
	client redis.UniversalClient
)

func TestMain(m *testing.M) {
	req := testcontainers.ContainerRequest{
		Image:        "redis:6",
		ExposedPorts: []string{"6379/tcp"},
		WaitingFor:   wait.ForListeningPort("6379/tcp"),
	}
	c, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	if err != nil {
		logrus.WithError(err).Fatal("failed to start container")
	}

	host, err := c.Host(ctx)
	if err != nil {
		logrus.WithError(err).Fatal("failed to get host")
	}

	port, err := c.MappedPort(ctx, "6379")
	if err != nil {
		logrus.WithError(err).Fatal("failed to map port")
	}

	client = redis.NewClient(&redis.Options{Addr: fmt.Sprintf("%s:%d", host, port.Int())})

	code := m.Run()

	_ = client.Close()
	_ = c.Terminate(ctx)
	os.Exit(code)
}

func TestRedisStorage(t *testing.T) {
	s := NewRedisStorage(client)

	_, err := s.Get(ctx, "/v1/stats")
	require.ErrorIs(t, err, ErrCacheMiss)

	require.NoError(t, s.Set(ctx, "/v1/stats", []byte(`{"volunteers":1}`), time.Minute))

	b, err := s.Get(ctx, "/v1/stats")
	require.NoError(t, err)
	require.Equal(t, `{"volunteers":1}`, string(b))

	ttl, err := client.TTL(ctx, cacheKeyPrefix+"/v1/stats").Result()
	require.NoError(t, err)
	require.True(t, ttl > 0 && ttl <= time.Minute)

	require.NoError(t, s.Set(ctx, "/v1/short", []byte(`{}`), 50*time.Millisecond))
	time.Sleep(200 * time.Millisecond)

	_, err = s.Get(ctx, "/v1/short")
	require.ErrorIs(t, err, ErrCacheMiss)
}
