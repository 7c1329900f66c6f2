package cache

import "context"

// Producer loads the value for a key when the cache cannot serve it.
type Producer[T any] func(ctx context.Context) (T, error)

// Cache defines the memoization contract.
type Cache[T any] interface {
	Get(ctx context.Context, key string, producer Producer[T]) (T, error)
	Evict(key string)
	Clear()
	Stats() Stats
}

// Inspector exposes the type-independent operations used by diagnostics and admin routes.
type Inspector interface {
	Name() string
	Evict(key string)
	Clear()
	Stats() Stats
}

// Stats is a diagnostic snapshot of a cache.
type Stats struct {
	Size    int         `json:"size"`
	Keys    []string    `json:"keys"`
	Entries []EntryStat `json:"entries"`
}

// EntryStat reports the age of one entry in whole seconds.
type EntryStat struct {
	Key string `json:"key"`
	Age int64  `json:"age"`
}
