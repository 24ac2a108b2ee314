// Package storage provides the on-device key-value persistence adapter the
// wellkeeper stores are built on. Values are JSON-serialized strings; the
// adapter itself does not interpret them.
package storage

import "context"

// Adapter is an asynchronous string-keyed store. Get returns
// common.ErrNotFound when the key has never been written. Both operations
// are fallible; callers decide whether to surface or degrade to the last
// known in-memory value.
type Adapter interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value string) error
}
