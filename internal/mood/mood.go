// Package mood stores self-reported moods keyed by calendar date.
package mood

import (
	"fmt"
	"strings"

	"github.com/dkrastev/wellkeeper/internal/common"
)

// Mood is one of a closed set of self-reported emotional states.
type Mood string

const (
	Happy    Mood = "happy"
	Soso     Mood = "soso"
	Stressed Mood = "stressed"
	Tired    Mood = "tired"
)

// All lists the canonical moods in display order.
func All() []Mood {
	return []Mood{Happy, Soso, Stressed, Tired}
}

// Valid reports whether m is one of the canonical moods.
func (m Mood) Valid() bool {
	switch m {
	case Happy, Soso, Stressed, Tired:
		return true
	}
	return false
}

// canonicalize lower-cases a label and strips whitespace, underscores and
// hyphens, so "So-so ", "so so" and "SOSO" all collapse to "soso".
func canonicalize(raw string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case ' ', '\t', '_', '-':
			return -1
		}
		return r
	}, strings.ToLower(strings.TrimSpace(raw)))
}

// Normalize maps a free-form label onto the canonical enumeration.
// Unrecognized labels are rejected rather than silently stored.
func Normalize(raw string) (Mood, error) {
	m := Mood(canonicalize(raw))
	if !m.Valid() {
		return "", fmt.Errorf("%w: %q", common.ErrUnknownMood, raw)
	}
	return m, nil
}
