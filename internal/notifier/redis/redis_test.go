//go:build integration
// +build integration

package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/cleanup-hub/cleanup/internal/entities"
	"github.com/cleanup-hub/cleanup/internal/notifier"
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

func TestPublisher_NotifyAuthor(t *testing.T) {
	sub := client.Subscribe(ctx, DefaultChannel)
	defer sub.Close()

	_, err := sub.Receive(ctx)
	require.NoError(t, err)

	n := &notifier.Notification{
		PostID:      uuid.New(),
		AuthorID:    uuid.New(),
		ModeratorID: uuid.New(),
		Action:      entities.HidePostAction,
		Reason:      "spam",
		CreatedAt:   time.Unix(1614600000, 0),
	}

	require.NoError(t, New(client, DefaultChannel).NotifyAuthor(ctx, n))

	msg, err := sub.ReceiveMessage(ctx)
	require.NoError(t, err)

	var got message
	require.NoError(t, json.Unmarshal([]byte(msg.Payload), &got))
	require.Equal(t, message{
		PostID:      n.PostID.String(),
		AuthorID:    n.AuthorID.String(),
		ModeratorID: n.ModeratorID.String(),
		Action:      "HIDE_POST",
		Reason:      "spam",
		CreatedAt:   1614600000,
	}, got)
}
