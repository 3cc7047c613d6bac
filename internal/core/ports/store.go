package ports

import "context"

// KeyValueStore is the durable local storage the settings store persists to.
// Get reports found=false for a missing key; err is reserved for I/O failures.
type KeyValueStore interface {
	Get(ctx context.Context, key string) (value string, found bool, err error)
	Set(ctx context.Context, key, value string) error
	Ping(ctx context.Context) error
}
