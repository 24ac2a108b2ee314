package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/dkrastev/wellkeeper/internal/assessment"
)

// RunCheck walks the user through the self-check questionnaire and records
// the result.
func (a *App) RunCheck(ctx context.Context) error {
	questions := assessment.Questions()
	answers := make([]int, 0, len(questions))

	for _, q := range questions {
		labels := make([]string, 0, len(q.Options))
		for _, o := range q.Options {
			labels = append(labels, o.Label)
		}
		pick, err := GetChoice(a.reader, q.Text, labels, a.out)
		if err != nil {
			return err
		}
		answers = append(answers, q.Options[pick].Value)
	}

	result, err := a.assessments.Record(ctx, answers)
	if err != nil {
		fmt.Fprintln(a.out, "Could not record check:", err)
		return err
	}

	if len(result.Recommendations) == 0 {
		fmt.Fprintln(a.out, "All good, no recommendations today")
		return nil
	}
	fmt.Fprintln(a.out, "Recommendations:")
	for _, r := range result.Recommendations {
		fmt.Fprintf(a.out, "  [%s] %s\n", r.Category, r.Advice)
	}
	return nil
}

// CheckHistory prints past self-check results, newest first.
func (a *App) CheckHistory(ctx context.Context) error {
	history, err := a.assessments.History(ctx)
	if err != nil {
		fmt.Fprintln(a.out, "Could not load history:", err)
		return err
	}
	if len(history) == 0 {
		fmt.Fprintln(a.out, "No checks recorded yet")
		return nil
	}
	for _, r := range history {
		fmt.Fprintf(a.out, "%s  answers %v  %d recommendation(s)\n",
			r.Date.Format(time.DateTime), r.Answers, len(r.Recommendations))
	}
	return nil
}
