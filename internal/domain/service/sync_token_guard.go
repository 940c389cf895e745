package service

import (
	"context"
	"time"
)

// SyncTokenGuard records consumed sync tokens so each one can pair devices only once.
type SyncTokenGuard interface {
	// Consume marks tokenID as used for ttl. It returns false when the token was already used.
	Consume(ctx context.Context, tokenID string, ttl time.Duration) (bool, error)

	// Close releases any resources held by the guard
	Close() error
}
