package profile

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/dkrastev/wellkeeper/internal/common"
	"github.com/dkrastev/wellkeeper/internal/logging"
	"github.com/dkrastev/wellkeeper/internal/storage"
)

const storageKey = "profile"

// Store owns the single in-memory profile and persists it as one JSON
// object. All mutation goes through Update; nothing else may touch the
// persisted blob.
type Store struct {
	adapter storage.Adapter
	log     logging.Logger

	current Profile
	loaded  bool
}

func NewStore(adapter storage.Adapter, log logging.Logger) *Store {
	return &Store{adapter: adapter, log: log.With("store", "profile")}
}

// Load reads the persisted profile into memory. An absent key yields the
// empty profile; a corrupt value is an error. Repeated calls return the
// cached copy.
func (s *Store) Load(ctx context.Context) (Profile, error) {
	if s.loaded {
		return s.current, nil
	}

	raw, err := s.adapter.Get(ctx, storageKey)
	if errors.Is(err, common.ErrNotFound) {
		s.loaded = true
		return s.current, nil
	}
	if err != nil {
		return Profile{}, fmt.Errorf("failed to read profile: %w", err)
	}

	var p Profile
	if err := json.Unmarshal([]byte(raw), &p); err != nil {
		return Profile{}, fmt.Errorf("failed to parse profile: %w", err)
	}

	s.current = p
	s.loaded = true
	return s.current, nil
}

// Update shallow-merges partial into the current profile and persists the
// result. The in-memory copy only advances after a successful write, so a
// failed write leaves the last known state intact.
func (s *Store) Update(ctx context.Context, partial Profile) (Profile, error) {
	current, err := s.Load(ctx)
	if err != nil {
		return Profile{}, err
	}

	merged := merge(current, partial)

	data, err := json.Marshal(merged)
	if err != nil {
		return Profile{}, fmt.Errorf("failed to marshal profile: %w", err)
	}
	if err := s.adapter.Set(ctx, storageKey, string(data)); err != nil {
		return Profile{}, fmt.Errorf("failed to write profile: %w", err)
	}

	s.current = merged
	return merged, nil
}
