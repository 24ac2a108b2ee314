// Package profile stores the single per-user record of demographic, dietary
// and goal-tracking attributes. Every field is optional and consumers must
// tolerate any field being absent at any time.
package profile

import "time"

// Sex of the user, as self-reported.
type Sex string

const (
	SexMale   Sex = "male"
	SexFemale Sex = "female"
	SexOther  Sex = "other"
)

// ActivityLevel is one of five self-reported levels.
type ActivityLevel string

const (
	ActivitySedentary ActivityLevel = "sedentary"
	ActivityLight     ActivityLevel = "light"
	ActivityModerate  ActivityLevel = "moderate"
	ActivityActive    ActivityLevel = "active"
	ActivityAthlete   ActivityLevel = "athlete"
)

// MacroSplit is the desired carbs/protein/fat percentage split.
type MacroSplit struct {
	Carbs   int `json:"carbs"`
	Protein int `json:"protein"`
	Fat     int `json:"fat"`
}

// TimeWindow is a clock-time interval like {"07:00", "09:00"}.
type TimeWindow struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// MealTiming holds eating-schedule preferences.
type MealTiming struct {
	BreakfastWindow TimeWindow `json:"breakfastWindow"`
	DinnerCutoff    string     `json:"dinnerCutoff"`
}

// SleepGoal tracks current vs. target sleep hours and quality (1-10).
type SleepGoal struct {
	CurrentHours   float64 `json:"currentHours"`
	TargetHours    float64 `json:"targetHours"`
	CurrentQuality int     `json:"currentQuality"`
	TargetQuality  int     `json:"targetQuality"`
}

// StressGoal tracks current vs. target stress level plus mindfulness days
// per week.
type StressGoal struct {
	CurrentLevel    int `json:"currentLevel"`
	TargetLevel     int `json:"targetLevel"`
	MindfulnessDays int `json:"mindfulnessDays"`
}

// ExerciseGoal tracks workouts per week and their length in minutes.
type ExerciseGoal struct {
	CurrentWorkouts int `json:"currentWorkouts"`
	TargetWorkouts  int `json:"targetWorkouts"`
	WorkoutLength   int `json:"workoutLength"`
}

// HydrationGoal tracks glasses of water per day.
type HydrationGoal struct {
	CurrentGlasses int `json:"currentGlasses"`
	TargetGlasses  int `json:"targetGlasses"`
}

// NutritionGoal tracks a calorie target and dietary restrictions.
type NutritionGoal struct {
	TargetCalories int      `json:"targetCalories"`
	Restrictions   []string `json:"restrictions"`
}

// HealthGoals is the nested per-category current/target structure.
type HealthGoals struct {
	PrimaryGoal string         `json:"primaryGoal"`
	Sleep       *SleepGoal     `json:"sleep,omitempty"`
	Stress      *StressGoal    `json:"stress,omitempty"`
	Exercise    *ExerciseGoal  `json:"exercise,omitempty"`
	Hydration   *HydrationGoal `json:"hydration,omitempty"`
	Nutrition   *NutritionGoal `json:"nutrition,omitempty"`
}

// Notifications holds the app toggle switches.
type Notifications struct {
	DarkMode     bool `json:"darkMode"`
	EnergyMode   bool `json:"energyMode"`
	DailySummary bool `json:"dailySummary"`
	MealTracking bool `json:"mealTracking"`
}

// Profile is the persisted record. Scalar fields are pointers so an unset
// field is distinguishable from a zero value; date fields serialize to ISO
// strings via time.Time's JSON encoding.
type Profile struct {
	FullName           *string        `json:"fullName,omitempty"`
	DateOfBirth        *time.Time     `json:"dateOfBirth,omitempty"`
	Sex                *Sex           `json:"sex,omitempty"`
	HeightCm           *float64       `json:"height,omitempty"`
	WeightKg           *float64       `json:"weight,omitempty"`
	TargetWeightKg     *float64       `json:"targetWeight,omitempty"`
	ActivityLevel      *ActivityLevel `json:"activityLevel,omitempty"`
	Bedtime            *string        `json:"bedtime,omitempty"`
	WakeTime           *string        `json:"wakeTime,omitempty"`
	ChronicConditions  []string       `json:"chronicConditions,omitempty"`
	Medications        *string        `json:"medications,omitempty"`
	Allergies          []string       `json:"allergies,omitempty"`
	DietStyle          *string        `json:"dietStyle,omitempty"`
	FoodsToAvoid       []string       `json:"foodsToAvoid,omitempty"`
	Dislikes           []string       `json:"dislikes,omitempty"`
	Cravings           []string       `json:"cravings,omitempty"`
	CalorieGoal        *int           `json:"calorieGoal,omitempty"`
	MacroSplit         *MacroSplit    `json:"macroSplit,omitempty"`
	MealTiming         *MealTiming    `json:"mealTiming,omitempty"`
	CulturalConstraint *string        `json:"culturalConstraint,omitempty"`
	HealthGoals        *HealthGoals   `json:"healthGoals,omitempty"`
	Notifications      *Notifications `json:"notifications,omitempty"`
}

// merge overlays the set fields of partial onto p and returns the result.
// The merge is shallow: a set field replaces the old value in full, an
// unset one retains it.
func merge(p Profile, partial Profile) Profile {
	if partial.FullName != nil {
		p.FullName = partial.FullName
	}
	if partial.DateOfBirth != nil {
		p.DateOfBirth = partial.DateOfBirth
	}
	if partial.Sex != nil {
		p.Sex = partial.Sex
	}
	if partial.HeightCm != nil {
		p.HeightCm = partial.HeightCm
	}
	if partial.WeightKg != nil {
		p.WeightKg = partial.WeightKg
	}
	if partial.TargetWeightKg != nil {
		p.TargetWeightKg = partial.TargetWeightKg
	}
	if partial.ActivityLevel != nil {
		p.ActivityLevel = partial.ActivityLevel
	}
	if partial.Bedtime != nil {
		p.Bedtime = partial.Bedtime
	}
	if partial.WakeTime != nil {
		p.WakeTime = partial.WakeTime
	}
	if partial.ChronicConditions != nil {
		p.ChronicConditions = partial.ChronicConditions
	}
	if partial.Medications != nil {
		p.Medications = partial.Medications
	}
	if partial.Allergies != nil {
		p.Allergies = partial.Allergies
	}
	if partial.DietStyle != nil {
		p.DietStyle = partial.DietStyle
	}
	if partial.FoodsToAvoid != nil {
		p.FoodsToAvoid = partial.FoodsToAvoid
	}
	if partial.Dislikes != nil {
		p.Dislikes = partial.Dislikes
	}
	if partial.Cravings != nil {
		p.Cravings = partial.Cravings
	}
	if partial.CalorieGoal != nil {
		p.CalorieGoal = partial.CalorieGoal
	}
	if partial.MacroSplit != nil {
		p.MacroSplit = partial.MacroSplit
	}
	if partial.MealTiming != nil {
		p.MealTiming = partial.MealTiming
	}
	if partial.CulturalConstraint != nil {
		p.CulturalConstraint = partial.CulturalConstraint
	}
	if partial.HealthGoals != nil {
		p.HealthGoals = partial.HealthGoals
	}
	if partial.Notifications != nil {
		p.Notifications = partial.Notifications
	}
	return p
}
