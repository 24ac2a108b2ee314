package storage

import (
	"context"
	"sync"

	"github.com/dkrastev/wellkeeper/internal/common"
)

// MemoryAdapter is a map-backed Adapter used in tests and ephemeral runs.
// FailGet / FailSet can be set to inject storage failures.
type MemoryAdapter struct {
	mu      sync.Mutex
	values  map[string]string
	FailGet error
	FailSet error
}

func NewMemoryAdapter() *MemoryAdapter {
	return &MemoryAdapter{values: make(map[string]string)}
}

func (a *MemoryAdapter) Get(ctx context.Context, key string) (string, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.FailGet != nil {
		return "", a.FailGet
	}
	v, ok := a.values[key]
	if !ok {
		return "", common.ErrNotFound
	}
	return v, nil
}

func (a *MemoryAdapter) Set(ctx context.Context, key string, value string) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.FailSet != nil {
		return a.FailSet
	}
	a.values[key] = value
	return nil
}

// Seed writes value under key directly, bypassing failure injection.
func (a *MemoryAdapter) Seed(key, value string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.values[key] = value
}
