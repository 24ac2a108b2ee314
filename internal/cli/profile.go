package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/dkrastev/wellkeeper/internal/profile"
)

// ShowProfile prints the fields that have been set so far.
func (a *App) ShowProfile(ctx context.Context) error {
	p, err := a.profiles.Load(ctx)
	if err != nil {
		fmt.Fprintln(a.out, "Could not load profile:", err)
		return err
	}

	print := func(label, value string) {
		fmt.Fprintf(a.out, "  %-14s %s\n", label+":", value)
	}

	fmt.Fprintln(a.out, "Profile")
	if p.FullName != nil {
		print("name", *p.FullName)
	}
	if p.DateOfBirth != nil {
		print("born", p.DateOfBirth.Format(time.DateOnly))
	}
	if p.Sex != nil {
		print("sex", string(*p.Sex))
	}
	if p.HeightCm != nil {
		print("height", fmt.Sprintf("%.0f cm", *p.HeightCm))
	}
	if p.WeightKg != nil {
		print("weight", fmt.Sprintf("%.1f kg", *p.WeightKg))
	}
	if p.TargetWeightKg != nil {
		print("target weight", fmt.Sprintf("%.1f kg", *p.TargetWeightKg))
	}
	if p.ActivityLevel != nil {
		print("activity", string(*p.ActivityLevel))
	}
	if p.Bedtime != nil && p.WakeTime != nil {
		print("sleep window", *p.Bedtime+" to "+*p.WakeTime)
	}
	if p.DietStyle != nil {
		print("diet", *p.DietStyle)
	}
	if len(p.Allergies) > 0 {
		print("allergies", strings.Join(p.Allergies, ", "))
	}
	if p.CalorieGoal != nil {
		print("calorie goal", fmt.Sprintf("%d kcal", *p.CalorieGoal))
	}
	if p.MacroSplit != nil {
		print("macros", fmt.Sprintf("%d/%d/%d carbs/protein/fat",
			p.MacroSplit.Carbs, p.MacroSplit.Protein, p.MacroSplit.Fat))
	}
	return nil
}

// EditProfile updates the core personal fields, one prompt each. Empty
// answers leave the field unchanged.
func (a *App) EditProfile(ctx context.Context) error {
	var partial profile.Profile

	name, err := GetSimpleText(a.reader, "Full name (empty to keep)", a.out)
	if err != nil {
		return err
	}
	if name != "" {
		partial.FullName = &name
	}

	sexText, err := GetSimpleText(a.reader, "Sex (male/female/other, empty to keep)", a.out)
	if err != nil {
		return err
	}
	if sexText != "" {
		switch s := profile.Sex(sexText); s {
		case profile.SexMale, profile.SexFemale, profile.SexOther:
			partial.Sex = &s
		default:
			fmt.Fprintln(a.out, "Unknown sex, skipping")
		}
	}

	heightText, err := GetSimpleText(a.reader, "Height in cm (empty to keep)", a.out)
	if err != nil {
		return err
	}
	if heightText != "" {
		var h float64
		if _, err := fmt.Sscanf(heightText, "%g", &h); err == nil && h > 0 {
			partial.HeightCm = &h
		} else {
			fmt.Fprintln(a.out, "Not a valid height, skipping")
		}
	}

	weightText, err := GetSimpleText(a.reader, "Weight in kg (empty to keep)", a.out)
	if err != nil {
		return err
	}
	if weightText != "" {
		var kg float64
		if _, err := fmt.Sscanf(weightText, "%g", &kg); err == nil && kg > 0 {
			partial.WeightKg = &kg
		} else {
			fmt.Fprintln(a.out, "Not a valid weight, skipping")
		}
	}

	if _, err := a.profiles.Update(ctx, partial); err != nil {
		fmt.Fprintln(a.out, "Could not save profile:", err)
		return err
	}
	fmt.Fprintln(a.out, "Profile updated")
	return nil
}

// Goals shows (or sets) the primary health goal and the hydration target.
func (a *App) Goals(ctx context.Context) error {
	p, err := a.profiles.Load(ctx)
	if err != nil {
		fmt.Fprintln(a.out, "Could not load profile:", err)
		return err
	}

	if p.HealthGoals != nil {
		fmt.Fprintf(a.out, "Primary goal: %s\n", p.HealthGoals.PrimaryGoal)
		if g := p.HealthGoals.Hydration; g != nil {
			fmt.Fprintf(a.out, "Hydration: %d of %d glasses\n", g.CurrentGlasses, g.TargetGlasses)
		}
	}

	goal, err := GetSimpleText(a.reader, "Primary goal (empty to keep)", a.out)
	if err != nil {
		return err
	}
	if goal == "" {
		return nil
	}

	goals := profile.HealthGoals{PrimaryGoal: goal}
	if p.HealthGoals != nil {
		goals = *p.HealthGoals
		goals.PrimaryGoal = goal
	}
	if _, err := a.profiles.Update(ctx, profile.Profile{HealthGoals: &goals}); err != nil {
		fmt.Fprintln(a.out, "Could not save goals:", err)
		return err
	}
	fmt.Fprintln(a.out, "Goals updated")
	return nil
}
