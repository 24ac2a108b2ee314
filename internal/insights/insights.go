// Package insights serves the static research-recommendation content shown
// in the app feed. The catalog ships in code; there is nothing to persist.
package insights

import "github.com/dkrastev/wellkeeper/internal/mood"

// Insight is one research card: a finding linking diet and mood, tagged
// with the moods it is most relevant to.
type Insight struct {
	ID       string      `json:"id"`
	Title    string      `json:"title"`
	PaperURL string      `json:"paperUrl"`
	MoodTags []mood.Mood `json:"moodTags"`
	Summary  string      `json:"summary"`
}

var catalog = []Insight{
	{
		ID:       "omega3_mood",
		Title:    "Omega-3s are linked to lower depression scores",
		PaperURL: "https://pubmed.ncbi.nlm.nih.gov/31269543/",
		MoodTags: []mood.Mood{mood.Stressed, mood.Tired},
		Summary:  "EPA-rich fish oil was associated with 20% lower PHQ-9 in a 12-wk RCT.",
	},
	{
		ID:       "probiotics_anxiety",
		Title:    "Gut-brain axis: Probiotics may reduce anxiety",
		PaperURL: "https://pubmed.ncbi.nlm.nih.gov/29920041/",
		MoodTags: []mood.Mood{mood.Stressed},
		Summary:  "Meta-analysis shows probiotics significantly reduce anxiety symptoms.",
	},
	{
		ID:       "vitamin_d_mood",
		Title:    "Vitamin D supplementation improves mood",
		PaperURL: "https://pubmed.ncbi.nlm.nih.gov/30246883/",
		MoodTags: []mood.Mood{mood.Tired, mood.Soso},
		Summary:  "Vitamin D3 supplementation linked to improved mood in deficient individuals.",
	},
	{
		ID:       "mediterranean_diet",
		Title:    "Mediterranean diet reduces depression risk",
		PaperURL: "https://pubmed.ncbi.nlm.nih.gov/29997636/",
		MoodTags: []mood.Mood{mood.Happy, mood.Soso},
		Summary:  "Adherence to Mediterranean diet associated with 33% lower depression risk.",
	},
	{
		ID:       "magnesium_stress",
		Title:    "Magnesium reduces stress and anxiety",
		PaperURL: "https://pubmed.ncbi.nlm.nih.gov/27910808/",
		MoodTags: []mood.Mood{mood.Stressed},
		Summary:  "Magnesium supplementation shows promise in reducing stress and anxiety.",
	},
	{
		ID:       "protein_mood",
		Title:    "High-protein breakfast improves mood",
		PaperURL: "https://pubmed.ncbi.nlm.nih.gov/29510383/",
		MoodTags: []mood.Mood{mood.Tired, mood.Soso},
		Summary:  "Protein-rich breakfast associated with better mood and cognitive function.",
	},
}

// All returns every insight in feed order.
func All() []Insight {
	return catalog
}

// ForMood returns the insights tagged with m.
func ForMood(m mood.Mood) []Insight {
	var out []Insight
	for _, in := range catalog {
		for _, tag := range in.MoodTags {
			if tag == m {
				out = append(out, in)
				break
			}
		}
	}
	return out
}
