// Package dedup holds the set of tweet identifiers the service has already
// accepted. The set is derived from the tweets table and can always be
// rebuilt from it.
package dedup

import "context"

const (
	DRIVER_MEMORY = "memory"
	DRIVER_REDIS  = "redis"
)

type Set interface {
	// Seed adds every id in ids. It is called once at startup with the
	// identifiers already present in the store.
	Seed(ctx context.Context, ids []string) error
	Contains(ctx context.Context, id string) (bool, error)
	Add(ctx context.Context, id string) error
	// Reserve adds id and reports whether it was absent before the call.
	// Two callers reserving the same id never both get true.
	Reserve(ctx context.Context, id string) (bool, error)
	Forget(ctx context.Context, ids ...string) error
	Len(ctx context.Context) (int64, error)
	Clear(ctx context.Context) error
}
