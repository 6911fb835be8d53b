// Package lifecycle contains worker which moves events through statuses by schedule.
package lifecycle

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/cleanup-hub/cleanup/internal/worker"
)

var log = logrus.WithField("layer", "worker").WithField("package", "lifecycle")

var errNotStarted = errors.New("worker is not started")

// Advancer moves due events to the next status.
type Advancer interface {
	AdvanceEvents(ctx context.Context) (uint64, error)
}

type lifecycle struct {
	a        Advancer
	interval time.Duration

	mu      sync.Mutex
	lastErr error
}

// New returns worker which calls Advancer every interval.
func New(a Advancer, interval time.Duration) worker.Worker {
	return &lifecycle{
		a:        a,
		interval: interval,
		lastErr:  errNotStarted,
	}
}

func (l *lifecycle) Name() string {
	return "lifecycle"
}

// Ping returns error of the last run.
func (l *lifecycle) Ping(_ context.Context) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	return l.lastErr
}

func (l *lifecycle) Run(ctx context.Context) error {
	t := time.NewTicker(l.interval)
	defer t.Stop()

	l.tick(ctx)

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-t.C:
			l.tick(ctx)
		}
	}
}

func (l *lifecycle) tick(ctx context.Context) {
	n, err := l.a.AdvanceEvents(ctx)
	if err != nil {
		if ctx.Err() != nil {
			return
		}
		err = fmt.Errorf("failed to advance events: %w", err)
		log.WithError(err).Error("failed to run")
	} else if n > 0 {
		log.WithField("count", n).Info("events advanced")
	}

	l.mu.Lock()
	l.lastErr = err
	l.mu.Unlock()
}
