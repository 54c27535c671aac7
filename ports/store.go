package ports

import (
	"context"
	"time"
)

// ReplayStore records request ids that have already produced a session
type ReplayStore interface {
	MarkConsumed(ctx context.Context, requestID string, ttl time.Duration) error
	IsConsumed(ctx context.Context, requestID string) (bool, error)
}
