package cli

import (
	"context"
	"fmt"
	"sort"

	"github.com/dkrastev/wellkeeper/internal/mood"
)

// RecordMood asks how the user feels today (or on an explicitly entered
// date) and saves the answer with an optional note.
func (a *App) RecordMood(ctx context.Context) error {
	date, err := GetSimpleText(a.reader, fmt.Sprintf("Date (YYYY-MM-DD, empty for %s)", a.today()), a.out)
	if err != nil {
		return err
	}
	if date == "" {
		date = a.today()
	}

	labels := make([]string, 0, len(mood.All()))
	for _, m := range mood.All() {
		labels = append(labels, string(m))
	}
	pick, err := GetChoice(a.reader, "How are you feeling?", labels, a.out)
	if err != nil {
		fmt.Fprintln(a.out, err)
		return err
	}

	note, err := GetSimpleText(a.reader, "Note (optional)", a.out)
	if err != nil {
		return err
	}

	if err := a.moods.Save(ctx, date, mood.All()[pick], note); err != nil {
		fmt.Fprintln(a.out, "Could not save mood:", err)
		return err
	}
	fmt.Fprintf(a.out, "Saved %s for %s\n", labels[pick], date)
	return nil
}

// Calendar lists all recorded moods in date order.
func (a *App) Calendar(ctx context.Context) error {
	entries, err := a.moods.Load(ctx)
	if err != nil {
		fmt.Fprintln(a.out, "Could not load moods:", err)
		return err
	}
	if len(entries) == 0 {
		fmt.Fprintln(a.out, "No moods recorded yet")
		return nil
	}

	dates := make([]string, 0, len(entries))
	for d := range entries {
		dates = append(dates, d)
	}
	sort.Strings(dates)

	for _, d := range dates {
		e := entries[d]
		if e.Note != "" {
			fmt.Fprintf(a.out, "%s  %-9s %s\n", d, e.Mood, e.Note)
		} else {
			fmt.Fprintf(a.out, "%s  %s\n", d, e.Mood)
		}
	}
	return nil
}
