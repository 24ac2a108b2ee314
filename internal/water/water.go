// Package water computes a recommended daily water volume and accumulates
// logged water, food-derived water and exercise for "today".
package water

// Settings are the hydration heuristics. They are placeholder coefficients
// rather than validated nutrition science, so they live in configuration
// instead of being hard-coded at call sites.
type Settings struct {
	// Recommended ml of water per kg of body weight, by sex.
	MaleMLPerKg   float64
	FemaleMLPerKg float64
	// Fixed contribution of one logged meal, regardless of food.
	MealWaterML int
	// Extra water suggested per hour of exercise.
	ExerciseWaterMLPerHour int
	// Sex-based daily baselines used when no body weight is known.
	BaselineMaleML   int
	BaselineFemaleML int
}

// DefaultSettings mirrors the app's shipped constants: 35/30 ml per kg,
// 100 ml per meal, 500 ml per exercise hour, 3.7/2.7 l baselines.
func DefaultSettings() Settings {
	return Settings{
		MaleMLPerKg:            35,
		FemaleMLPerKg:          30,
		MealWaterML:            100,
		ExerciseWaterMLPerHour: 500,
		BaselineMaleML:         3700,
		BaselineFemaleML:       2700,
	}
}

// Activity is a supported exercise type.
type Activity string

const (
	Run  Activity = "run"
	Swim Activity = "swim"
	Bike Activity = "bike"
)

// Valid reports whether a is a supported activity.
func (a Activity) Valid() bool {
	switch a {
	case Run, Swim, Bike:
		return true
	}
	return false
}

// WaterLog is one logged drink. Date is "YYYY-MM-DD".
type WaterLog struct {
	ID       string `json:"id"`
	Date     string `json:"date"`
	VolumeML int    `json:"volume_ml"`
}

// MealLog is one logged meal contributing food-derived water.
type MealLog struct {
	ID     string `json:"id"`
	Date   string `json:"date"`
	FoodID string `json:"food_id"`
}

// ExerciseLog is one logged workout.
type ExerciseLog struct {
	ID          string   `json:"id"`
	Date        string   `json:"date"`
	Activity    Activity `json:"activity_type"`
	DurationMin int      `json:"duration_min"`
}

// DailyStats is the aggregate for a single day. HydrationPct is not
// clamped and may exceed 100.
type DailyStats struct {
	RecommendedML int `json:"recommended_ml"`
	FoodWaterML   int `json:"food_water_ml"`
	LoggedWaterML int `json:"logged_water_ml"`
	ActualML      int `json:"actual_ml"`
	HydrationPct  int `json:"hydration_pct"`
}
