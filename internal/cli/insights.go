package cli

import (
	"context"
	"fmt"

	"github.com/dkrastev/wellkeeper/internal/insights"
	"github.com/dkrastev/wellkeeper/internal/mood"
)

// Insights prints the research feed, optionally filtered to the cards
// tagged with a mood the user names.
func (a *App) Insights(_ context.Context) error {
	filter, err := GetSimpleText(a.reader, "Filter by mood (empty for all)", a.out)
	if err != nil {
		return err
	}

	cards := insights.All()
	if filter != "" {
		m, err := mood.Normalize(filter)
		if err != nil {
			fmt.Fprintln(a.out, "Unknown mood:", filter)
			return err
		}
		cards = insights.ForMood(m)
	}

	if len(cards) == 0 {
		fmt.Fprintln(a.out, "No insights for that mood")
		return nil
	}
	for _, c := range cards {
		fmt.Fprintf(a.out, "* %s\n  %s\n  %s\n", c.Title, c.Summary, c.PaperURL)
	}
	return nil
}
