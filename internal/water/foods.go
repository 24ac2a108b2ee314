package water

// Food is an entry of the high-water-content food catalog.
type Food struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	WaterPct int    `json:"waterPct"`
}

// HighWaterFoods is the built-in catalog shown on the logging surface.
var HighWaterFoods = []Food{
	{ID: "cucumber", Name: "Cucumber", WaterPct: 96},
	{ID: "watermelon", Name: "Watermelon", WaterPct: 92},
	{ID: "tomato", Name: "Tomato", WaterPct: 94},
	{ID: "lettuce", Name: "Lettuce", WaterPct: 95},
	{ID: "apple", Name: "Apple", WaterPct: 86},
	{ID: "orange", Name: "Orange", WaterPct: 87},
	{ID: "celery", Name: "Celery", WaterPct: 95},
	{ID: "grapes", Name: "Grapes", WaterPct: 81},
	{ID: "strawberries", Name: "Strawberries", WaterPct: 91},
	{ID: "cantaloupe", Name: "Cantaloupe", WaterPct: 90},
	{ID: "peach", Name: "Peach", WaterPct: 89},
	{ID: "pineapple", Name: "Pineapple", WaterPct: 87},
}

// FindFood looks a catalog entry up by id.
func FindFood(id string) (Food, bool) {
	for _, f := range HighWaterFoods {
		if f.ID == id {
			return f, true
		}
	}
	return Food{}, false
}

// FoodWaterLiters estimates the water in a portion, treating the water
// percentage as a fraction of the food's mass: 200 g at 96% is 0.192 l.
// Used by the logging surface, not by the daily aggregation.
func FoodWaterLiters(grams float64, waterPct int) float64 {
	return (grams / 1000) * (float64(waterPct) / 100)
}
