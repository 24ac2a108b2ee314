package insights

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dkrastev/wellkeeper/internal/mood"
)

func TestAll_CatalogIsWellFormed(t *testing.T) {
	all := All()
	require.NotEmpty(t, all)

	seen := map[string]bool{}
	for _, in := range all {
		assert.NotEmpty(t, in.ID)
		assert.NotEmpty(t, in.Title)
		assert.NotEmpty(t, in.Summary)
		assert.NotEmpty(t, in.MoodTags)
		assert.False(t, seen[in.ID], "duplicate id %s", in.ID)
		seen[in.ID] = true
		for _, tag := range in.MoodTags {
			assert.True(t, tag.Valid(), "insight %s has invalid tag %q", in.ID, tag)
		}
	}
}

func TestForMood(t *testing.T) {
	stressed := ForMood(mood.Stressed)
	require.NotEmpty(t, stressed)
	for _, in := range stressed {
		assert.Contains(t, in.MoodTags, mood.Stressed)
	}

	// Every catalog entry is reachable through some mood.
	total := 0
	for _, m := range mood.All() {
		total += len(ForMood(m))
	}
	assert.GreaterOrEqual(t, total, len(All()))
}
