// Package worker contains interface of background workers.
package worker

import (
	"context"

	"github.com/cleanup-hub/cleanup/internal/health"
)

// Worker runs periodic jobs until context is cancelled.
type Worker interface {
	health.Pinger

	Run(ctx context.Context) error
}
