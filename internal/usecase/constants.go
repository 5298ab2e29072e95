package usecase

import "time"

const (
	// DefaultResultTTL is how long a finished simulation stays retrievable
	// by ID when the caller does not configure its own TTL.
	DefaultResultTTL = 1 * time.Hour

	// IdempotencyKeyTTL is how long idempotency keys are cached
	IdempotencyKeyTTL = 24 * time.Hour
)
