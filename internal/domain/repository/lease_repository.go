package repository

import (
	"context"
	"time"
)

// LeaseRepository provides mutual exclusion for the background jobs. A job
// acquires a named lease before running so that only one process executes
// it per scheduled slot.
type LeaseRepository interface {
	// Acquire takes the named lease for the given holder until expiry.
	// It reports false when another holder owns an unexpired lease.
	Acquire(ctx context.Context, name, holder string, expiry time.Time) (bool, error)
	// Release frees the named lease if the holder still owns it.
	Release(ctx context.Context, name, holder string) error
}
