package water

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"

	"github.com/dkrastev/wellkeeper/internal/common"
	"github.com/dkrastev/wellkeeper/internal/logging"
	"github.com/dkrastev/wellkeeper/internal/profile"
	"github.com/dkrastev/wellkeeper/internal/storage"
)

// Persisted layout: one JSON array per log kind.
const (
	waterLogsKey    = "waterLogs"
	mealLogsKey     = "mealLogs"
	exerciseLogsKey = "exerciseLogs"
)

// Config parameterizes a Tracker. Now is a clock override for tests; nil
// means time.Now.
type Config struct {
	Sex      profile.Sex
	WeightKg float64
	Settings Settings
	Now      func() time.Time
}

// Tracker accumulates water, meal and exercise logs and derives daily
// stats. Logs are append-only: there is no update or delete.
type Tracker struct {
	adapter  storage.Adapter
	log      logging.Logger
	sex      profile.Sex
	weightKg float64
	settings Settings
	now      func() time.Time
}

func NewTracker(adapter storage.Adapter, log logging.Logger, cfg Config) *Tracker {
	now := cfg.Now
	if now == nil {
		now = time.Now
	}
	return &Tracker{
		adapter:  adapter,
		log:      log.With("store", "water"),
		sex:      cfg.Sex,
		weightKg: cfg.WeightKg,
		settings: cfg.Settings,
		now:      now,
	}
}

// Recommended returns the daily water volume in ml: weight times the
// per-sex coefficient. Sexes other than male use the female coefficient.
// Without a known weight it falls back to the sex baseline.
func (t *Tracker) Recommended() int {
	if t.weightKg <= 0 {
		if t.sex == profile.SexMale {
			return t.settings.BaselineMaleML
		}
		return t.settings.BaselineFemaleML
	}
	coef := t.settings.FemaleMLPerKg
	if t.sex == profile.SexMale {
		coef = t.settings.MaleMLPerKg
	}
	return int(math.Round(t.weightKg * coef))
}

// LogWater appends a drink of volumeML for today.
func (t *Tracker) LogWater(ctx context.Context, volumeML int) error {
	if volumeML <= 0 {
		return fmt.Errorf("%w: volume must be positive, got %d", common.ErrValidation, volumeML)
	}
	var logs []WaterLog
	if err := t.read(ctx, waterLogsKey, &logs); err != nil {
		return err
	}
	logs = append(logs, WaterLog{ID: uuid.NewString(), Date: t.today(), VolumeML: volumeML})
	return t.write(ctx, waterLogsKey, logs)
}

// LogMeal appends a meal for today. Each meal contributes the fixed
// per-meal water amount to stats regardless of the food.
func (t *Tracker) LogMeal(ctx context.Context, foodID string) error {
	if foodID == "" {
		return fmt.Errorf("%w: food id is required", common.ErrValidation)
	}
	var logs []MealLog
	if err := t.read(ctx, mealLogsKey, &logs); err != nil {
		return err
	}
	logs = append(logs, MealLog{ID: uuid.NewString(), Date: t.today(), FoodID: foodID})
	return t.write(ctx, mealLogsKey, logs)
}

// LogExercise appends a workout for today.
func (t *Tracker) LogExercise(ctx context.Context, activity Activity, durationMin int) error {
	if !activity.Valid() {
		return fmt.Errorf("%w: unknown activity %q", common.ErrValidation, activity)
	}
	if durationMin <= 0 {
		return fmt.Errorf("%w: duration must be positive, got %d", common.ErrValidation, durationMin)
	}
	var logs []ExerciseLog
	if err := t.read(ctx, exerciseLogsKey, &logs); err != nil {
		return err
	}
	logs = append(logs, ExerciseLog{
		ID:          uuid.NewString(),
		Date:        t.today(),
		Activity:    activity,
		DurationMin: durationMin,
	})
	return t.write(ctx, exerciseLogsKey, logs)
}

// TodayStats aggregates today's logs: entries are matched by exact date
// string and summed.
func (t *Tracker) TodayStats(ctx context.Context) (DailyStats, error) {
	today := t.today()

	var waterLogs []WaterLog
	if err := t.read(ctx, waterLogsKey, &waterLogs); err != nil {
		return DailyStats{}, err
	}
	var mealLogs []MealLog
	if err := t.read(ctx, mealLogsKey, &mealLogs); err != nil {
		return DailyStats{}, err
	}

	logged := 0
	for _, l := range waterLogs {
		if l.Date == today {
			logged += l.VolumeML
		}
	}
	food := 0
	for _, l := range mealLogs {
		if l.Date == today {
			food += t.settings.MealWaterML
		}
	}

	recommended := t.Recommended()
	actual := logged + food
	pct := 0
	if recommended > 0 {
		pct = int(math.Round(float64(actual) / float64(recommended) * 100))
	}

	return DailyStats{
		RecommendedML: recommended,
		FoodWaterML:   food,
		LoggedWaterML: logged,
		ActualML:      actual,
		HydrationPct:  pct,
	}, nil
}

// ExerciseWaterSuggestionML returns the extra water suggested for a
// workout of the given length.
func (t *Tracker) ExerciseWaterSuggestionML(durationMin int) int {
	if durationMin <= 0 {
		return 0
	}
	hours := float64(durationMin) / 60
	return int(math.Round(hours * float64(t.settings.ExerciseWaterMLPerHour)))
}

func (t *Tracker) today() string {
	return t.now().Format(time.DateOnly)
}

func (t *Tracker) read(ctx context.Context, key string, out any) error {
	raw, err := t.adapter.Get(ctx, key)
	if errors.Is(err, common.ErrNotFound) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", key, err)
	}
	if err := json.Unmarshal([]byte(raw), out); err != nil {
		return fmt.Errorf("failed to parse %s: %w", key, err)
	}
	return nil
}

func (t *Tracker) write(ctx context.Context, key string, logs any) error {
	data, err := json.Marshal(logs)
	if err != nil {
		return fmt.Errorf("failed to marshal %s: %w", key, err)
	}
	if err := t.adapter.Set(ctx, key, string(data)); err != nil {
		return fmt.Errorf("failed to write %s: %w", key, err)
	}
	return nil
}
