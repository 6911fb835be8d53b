// Package redis is implementation of notifier interface over redis pub/sub.
package redis

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/cleanup-hub/cleanup/internal/notifier"
)

// DefaultChannel ...
const DefaultChannel = "moderation.author-notified"

type publisher struct {
	client  redis.UniversalClient
	channel string
}

type message struct {
	PostID      string `json:"post_id"`
	AuthorID    string `json:"author_id"`
	ModeratorID string `json:"moderator_id"`
	Action      string `json:"action"`
	Reason      string `json:"reason,omitempty"`
	CreatedAt   int64  `json:"created_at"`
}

// New returns notifier which publishes notifications to the channel.
// Delivery to users is done by channel subscribers.
func New(client redis.UniversalClient, channel string) notifier.Notifier {
	return publisher{
		client:  client,
		channel: channel,
	}
}

func (p publisher) NotifyAuthor(ctx context.Context, n *notifier.Notification) error {
	payload, err := json.Marshal(message{
		PostID:      n.PostID.String(),
		AuthorID:    n.AuthorID.String(),
		ModeratorID: n.ModeratorID.String(),
		Action:      string(n.Action),
		Reason:      n.Reason,
		CreatedAt:   n.CreatedAt.Unix(),
	})
	if err != nil {
		return fmt.Errorf("failed to marshal notification: %w", err)
	}

	if err := p.client.Publish(ctx, p.channel, payload).Err(); err != nil {
		return fmt.Errorf("failed to publish notification: %w", err)
	}

	return nil
}
