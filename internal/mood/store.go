package mood

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/dkrastev/wellkeeper/internal/common"
	"github.com/dkrastev/wellkeeper/internal/logging"
	"github.com/dkrastev/wellkeeper/internal/storage"
)

// Persisted layout: a single JSON object under storageKey mapping
// "YYYY-MM-DD" to an Entry. Earlier app versions wrote the same data under
// legacyStorageKey, some of it as bare mood strings; Load migrates both.
const (
	storageKey       = "moods"
	legacyStorageKey = "@moodEntries"
)

// Entry is the mood recorded for a single date. Note is optional free text.
type Entry struct {
	Mood Mood   `json:"mood"`
	Note string `json:"note,omitempty"`
}

// Store maps calendar dates to mood entries, at most one entry per date.
// Every mutation rewrites the whole map, which is fine at the expected
// scale of one entry per day.
type Store struct {
	adapter storage.Adapter
	log     logging.Logger
}

func NewStore(adapter storage.Adapter, log logging.Logger) *Store {
	return &Store{adapter: adapter, log: log.With("store", "mood")}
}

// Save records mood (and an optional note) for date, overwriting any prior
// entry in full: re-saving a date without a note clears the old note.
func (s *Store) Save(ctx context.Context, date string, m Mood, note string) error {
	if _, err := time.Parse(time.DateOnly, date); err != nil {
		return fmt.Errorf("%w: date %q is not YYYY-MM-DD", common.ErrValidation, date)
	}
	if !m.Valid() {
		return fmt.Errorf("%w: %q", common.ErrUnknownMood, m)
	}

	entries, err := s.Load(ctx)
	if err != nil {
		return err
	}
	entries[date] = Entry{Mood: m, Note: note}

	return s.write(ctx, entries)
}

// Load returns all recorded entries, an empty map when nothing has been
// recorded yet. A stored value that is not valid JSON is an error.
func (s *Store) Load(ctx context.Context) (map[string]Entry, error) {
	raw, err := s.adapter.Get(ctx, storageKey)
	if errors.Is(err, common.ErrNotFound) {
		return s.loadLegacy(ctx)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read moods: %w", err)
	}
	return parseEntries(raw)
}

// Get returns the entry for date and whether one exists.
func (s *Store) Get(ctx context.Context, date string) (Entry, bool, error) {
	entries, err := s.Load(ctx)
	if err != nil {
		return Entry{}, false, err
	}
	e, ok := entries[date]
	return e, ok, nil
}

// loadLegacy reads the pre-rename key and rewrites its contents under the
// canonical one, so the migration happens once per device.
func (s *Store) loadLegacy(ctx context.Context) (map[string]Entry, error) {
	raw, err := s.adapter.Get(ctx, legacyStorageKey)
	if errors.Is(err, common.ErrNotFound) {
		return map[string]Entry{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read legacy moods: %w", err)
	}

	entries, err := parseEntries(raw)
	if err != nil {
		return nil, err
	}

	if err := s.write(ctx, entries); err != nil {
		return nil, fmt.Errorf("failed to migrate legacy moods: %w", err)
	}
	s.log.Info(ctx, "migrated legacy mood entries", "count", len(entries))
	return entries, nil
}

func (s *Store) write(ctx context.Context, entries map[string]Entry) error {
	data, err := json.Marshal(entries)
	if err != nil {
		return fmt.Errorf("failed to marshal moods: %w", err)
	}
	if err := s.adapter.Set(ctx, storageKey, string(data)); err != nil {
		return fmt.Errorf("failed to write moods: %w", err)
	}
	return nil
}

// parseEntries accepts both persisted shapes: the current {mood, note}
// object and the legacy bare mood string.
func parseEntries(raw string) (map[string]Entry, error) {
	var loose map[string]json.RawMessage
	if err := json.Unmarshal([]byte(raw), &loose); err != nil {
		return nil, fmt.Errorf("failed to parse moods: %w", err)
	}

	entries := make(map[string]Entry, len(loose))
	for date, v := range loose {
		var label string
		if err := json.Unmarshal(v, &label); err == nil {
			entries[date] = Entry{Mood: Mood(canonicalize(label))}
			continue
		}
		var e Entry
		if err := json.Unmarshal(v, &e); err != nil {
			return nil, fmt.Errorf("failed to parse mood entry for %s: %w", date, err)
		}
		entries[date] = e
	}
	return entries, nil
}
