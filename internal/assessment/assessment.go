// Package assessment implements the wellness self-check: a short fixed
// questionnaire scored on a 1-5 scale, with simple per-category advice for
// low scores and a persisted history of past results.
package assessment

import (
	"fmt"

	"github.com/dkrastev/wellkeeper/internal/common"
)

// Category groups questions and recommendations.
type Category string

const (
	CategoryMood   Category = "mood"
	CategorySleep  Category = "sleep"
	CategoryStress Category = "stress"
	CategoryEnergy Category = "energy"
	CategoryFocus  Category = "focus"
)

// Option is one selectable answer. Value runs 1 (worst) to 5 (best).
type Option struct {
	Value int
	Label string
}

// Question is one questionnaire item.
type Question struct {
	Text     string
	Category Category
	Options  []Option
}

func scale(labels [5]string) []Option {
	opts := make([]Option, 0, 5)
	for i, l := range labels {
		opts = append(opts, Option{Value: i + 1, Label: l})
	}
	return opts
}

// Questions returns the fixed questionnaire in presentation order.
func Questions() []Question {
	return []Question{
		{
			Text:     "How would you rate your overall mood today?",
			Category: CategoryMood,
			Options:  scale([5]string{"Very Low", "Low", "Neutral", "Good", "Very Good"}),
		},
		{
			Text:     "How well did you sleep last night?",
			Category: CategorySleep,
			Options:  scale([5]string{"Very Poorly", "Poorly", "Okay", "Well", "Very Well"}),
		},
		{
			Text:     "How stressed do you feel today?",
			Category: CategoryStress,
			Options:  scale([5]string{"Extremely Stressed", "Very Stressed", "Somewhat Stressed", "A Little Stressed", "Not Stressed"}),
		},
		{
			Text:     "How is your energy level today?",
			Category: CategoryEnergy,
			Options:  scale([5]string{"Exhausted", "Tired", "Okay", "Energetic", "Very Energetic"}),
		},
		{
			Text:     "How focused do you feel today?",
			Category: CategoryFocus,
			Options:  scale([5]string{"Very Distracted", "Somewhat Distracted", "Neutral", "Focused", "Very Focused"}),
		},
	}
}

// Recommendation is per-category advice produced for a low score.
type Recommendation struct {
	Category Category `json:"category"`
	Advice   string   `json:"advice"`
}

var advice = map[Category]string{
	CategoryMood:   "Try a short walk outside and reach out to someone you trust.",
	CategorySleep:  "Keep a consistent bedtime tonight and avoid screens for the last hour.",
	CategoryStress: "Take five minutes for slow breathing or a brief mindfulness break.",
	CategoryEnergy: "Have a glass of water and a protein-rich snack; consider a rest day.",
	CategoryFocus:  "Work in short focused blocks and silence notifications for a while.",
}

// lowScoreThreshold: answers at or below this value trigger advice.
const lowScoreThreshold = 2

// Evaluate scores one answer per question (in Questions order) and returns
// advice for every category scoring at or below the threshold.
func Evaluate(answers []int) ([]Recommendation, error) {
	questions := Questions()
	if len(answers) != len(questions) {
		return nil, fmt.Errorf("%w: expected %d answers, got %d",
			common.ErrValidation, len(questions), len(answers))
	}

	var recs []Recommendation
	for i, a := range answers {
		if a < 1 || a > 5 {
			return nil, fmt.Errorf("%w: answer %d out of range [1,5]: %d",
				common.ErrValidation, i+1, a)
		}
		if a <= lowScoreThreshold {
			c := questions[i].Category
			recs = append(recs, Recommendation{Category: c, Advice: advice[c]})
		}
	}
	return recs, nil
}
