package assessment

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/dkrastev/wellkeeper/internal/common"
	"github.com/dkrastev/wellkeeper/internal/logging"
	"github.com/dkrastev/wellkeeper/internal/storage"
)

const storageKey = "testHistory"

// Result is one completed self-check. Date is a full timestamp, unlike the
// date-only keys of the mood store.
type Result struct {
	ID              string           `json:"id"`
	Date            time.Time        `json:"date"`
	Answers         []int            `json:"answers"`
	Recommendations []Recommendation `json:"recommendations"`
}

// Store persists completed self-checks as a JSON array, newest first.
type Store struct {
	adapter storage.Adapter
	log     logging.Logger
	now     func() time.Time
}

func NewStore(adapter storage.Adapter, log logging.Logger, now func() time.Time) *Store {
	if now == nil {
		now = time.Now
	}
	return &Store{adapter: adapter, log: log.With("store", "assessment"), now: now}
}

// Record evaluates answers, prepends the result to the history and
// persists it.
func (s *Store) Record(ctx context.Context, answers []int) (Result, error) {
	recs, err := Evaluate(answers)
	if err != nil {
		return Result{}, err
	}

	history, err := s.History(ctx)
	if err != nil {
		return Result{}, err
	}

	result := Result{
		ID:              uuid.NewString(),
		Date:            s.now(),
		Answers:         answers,
		Recommendations: recs,
	}
	history = append([]Result{result}, history...)

	data, err := json.Marshal(history)
	if err != nil {
		return Result{}, fmt.Errorf("failed to marshal test history: %w", err)
	}
	if err := s.adapter.Set(ctx, storageKey, string(data)); err != nil {
		return Result{}, fmt.Errorf("failed to write test history: %w", err)
	}
	return result, nil
}

// History returns past results, newest first; empty when none exist.
func (s *Store) History(ctx context.Context) ([]Result, error) {
	raw, err := s.adapter.Get(ctx, storageKey)
	if errors.Is(err, common.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read test history: %w", err)
	}

	var history []Result
	if err := json.Unmarshal([]byte(raw), &history); err != nil {
		return nil, fmt.Errorf("failed to parse test history: %w", err)
	}
	return history, nil
}
