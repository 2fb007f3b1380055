// Package store persists the handful of key-value entries the client keeps
// on device: the auth token and the cached user identity.
package store

import "context"

// Store is a small key-value capability. Implementations: sqlite-backed
// (durable) and in-memory (fallback when the device store cannot be
// opened); callers cannot tell them apart.
type Store interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
}
