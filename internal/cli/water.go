package cli

import (
	"context"
	"fmt"

	"github.com/dkrastev/wellkeeper/internal/water"
)

// LogWater records a drink for today.
func (a *App) LogWater(ctx context.Context) error {
	tr, err := a.tracker(ctx)
	if err != nil {
		fmt.Fprintln(a.out, "Could not load profile:", err)
		return err
	}

	volume, err := GetInt(a.reader, "Volume (ml)", a.out)
	if err != nil {
		fmt.Fprintln(a.out, err)
		return err
	}
	if err := tr.LogWater(ctx, volume); err != nil {
		fmt.Fprintln(a.out, "Could not log water:", err)
		return err
	}

	return a.printStats(ctx, tr)
}

// LogMeal records a water-rich meal for today and shows the estimated
// water content of the picked portion.
func (a *App) LogMeal(ctx context.Context) error {
	tr, err := a.tracker(ctx)
	if err != nil {
		fmt.Fprintln(a.out, "Could not load profile:", err)
		return err
	}

	labels := make([]string, 0, len(water.HighWaterFoods))
	for _, f := range water.HighWaterFoods {
		labels = append(labels, fmt.Sprintf("%s (%d%% water)", f.Name, f.WaterPct))
	}
	pick, err := GetChoice(a.reader, "Pick a food", labels, a.out)
	if err != nil {
		fmt.Fprintln(a.out, err)
		return err
	}
	food := water.HighWaterFoods[pick]

	grams, err := GetFloat(a.reader, "Portion (g)", a.out)
	if err != nil {
		fmt.Fprintln(a.out, err)
		return err
	}
	fmt.Fprintf(a.out, "That portion holds about %.3f l of water\n",
		water.FoodWaterLiters(grams, food.WaterPct))

	if err := tr.LogMeal(ctx, food.ID); err != nil {
		fmt.Fprintln(a.out, "Could not log meal:", err)
		return err
	}

	return a.printStats(ctx, tr)
}

// LogExercise records a workout and suggests extra water for it.
func (a *App) LogExercise(ctx context.Context) error {
	tr, err := a.tracker(ctx)
	if err != nil {
		fmt.Fprintln(a.out, "Could not load profile:", err)
		return err
	}

	activities := []string{string(water.Run), string(water.Swim), string(water.Bike)}
	pick, err := GetChoice(a.reader, "Activity", activities, a.out)
	if err != nil {
		fmt.Fprintln(a.out, err)
		return err
	}
	duration, err := GetInt(a.reader, "Duration (min)", a.out)
	if err != nil {
		fmt.Fprintln(a.out, err)
		return err
	}

	if err := tr.LogExercise(ctx, water.Activity(activities[pick]), duration); err != nil {
		fmt.Fprintln(a.out, "Could not log exercise:", err)
		return err
	}

	fmt.Fprintf(a.out, "Consider drinking an extra %d ml for that workout\n",
		tr.ExerciseWaterSuggestionML(duration))
	return nil
}

// Stats prints today's hydration summary.
func (a *App) Stats(ctx context.Context) error {
	tr, err := a.tracker(ctx)
	if err != nil {
		fmt.Fprintln(a.out, "Could not load profile:", err)
		return err
	}
	return a.printStats(ctx, tr)
}

func (a *App) printStats(ctx context.Context, tr *water.Tracker) error {
	stats, err := tr.TodayStats(ctx)
	if err != nil {
		fmt.Fprintln(a.out, "Could not compute stats:", err)
		return err
	}
	fmt.Fprintf(a.out, "Today: %d ml of %d ml (%d%%): %d ml drunk, %d ml from food\n",
		stats.ActualML, stats.RecommendedML, stats.HydrationPct,
		stats.LoggedWaterML, stats.FoodWaterML)
	return nil
}
