// Package notifier contains interface of moderation notifications delivery.
package notifier

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/cleanup-hub/cleanup/internal/entities"
)

//go:generate mockgen -destination=./mock/notifier.go -package=mock -source=notifier.go

// Notifier delivers moderation decisions to post authors.
type Notifier interface {
	NotifyAuthor(ctx context.Context, n *Notification) error
}

// Notification ...
type Notification struct {
	PostID      uuid.UUID
	AuthorID    uuid.UUID
	ModeratorID uuid.UUID
	Action      entities.ModerationActionType
	Reason      string
	CreatedAt   time.Time
}

type logNotifier struct {
	log *logrus.Entry
}

// NewLogNotifier returns notifier which only writes notifications to log.
// It is used when no delivery channel is configured.
func NewLogNotifier() Notifier {
	return logNotifier{
		log: logrus.WithField("layer", "notifier").WithField("package", "notifier"),
	}
}

func (n logNotifier) NotifyAuthor(_ context.Context, v *Notification) error {
	n.log.WithFields(logrus.Fields{
		"post":      v.PostID,
		"author":    v.AuthorID,
		"moderator": v.ModeratorID,
		"action":    v.Action,
	}).Info("author notified")

	return nil
}
