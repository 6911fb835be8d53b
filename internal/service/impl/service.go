// Package impl is implementation of service interface.
package impl

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/cleanup-hub/cleanup/internal/entities"
	"github.com/cleanup-hub/cleanup/internal/notifier"
	"github.com/cleanup-hub/cleanup/internal/service"
	"github.com/cleanup-hub/cleanup/internal/storage"
)

var log = logrus.WithField("layer", "service").WithField("package", "impl")

const (
	defaultLimit = 20
	maxLimit     = 100
)

// service ...
type srv struct {
	s storage.Storage
	n notifier.Notifier

	now          func() time.Time
	showArchived bool
}

// Option configures service.
type Option func(s *srv)

// WithClock sets the time source used for timestamps and date validation.
func WithClock(now func() time.Time) Option {
	return func(s *srv) {
		s.now = now
	}
}

// WithArchivedVisibleToModerators makes hidden posts visible to moderators in listings and lookups.
func WithArchivedVisibleToModerators(v bool) Option {
	return func(s *srv) {
		s.showArchived = v
	}
}

// New creates new instance of service.
func New(s storage.Storage, n notifier.Notifier, opts ...Option) service.Service {
	out := &srv{
		s:   s,
		n:   n,
		now: time.Now,
	}

	for _, opt := range opts {
		opt(out)
	}

	if out.n == nil {
		out.n = notifier.NewLogNotifier()
	}

	return out
}

func (s *srv) GetStats(ctx context.Context) (*entities.Stats, error) {
	stats, err := s.s.GetStats(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get stats: %w", err)
	}

	return stats, nil
}

// notFoundOr translates storage.ErrNotFound to service.ErrNotFound and wraps other errors as internal.
func notFoundOr(err error, entity string, id uuid.UUID) error {
	if errors.Is(err, storage.ErrNotFound) {
		return fmt.Errorf("%w: %s=%s", service.ErrNotFound, entity, id)
	}

	return fmt.Errorf("failed to get %s: %w", entity, err)
}

func limitOf(l uint16) uint16 {
	switch {
	case l == 0:
		return defaultLimit
	case l > maxLimit:
		return maxLimit
	default:
		return l
	}
}
