package encounter_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/rpg-quest/internal/catalog"
	"github.com/KirkDiggler/rpg-quest/internal/encounter"
	"github.com/KirkDiggler/rpg-quest/internal/errors"
	"github.com/KirkDiggler/rpg-quest/internal/pkg/random"
)

func newSelector(t *testing.T, draws ...float64) *encounter.Selector {
	t.Helper()
	s, err := encounter.NewSelector(&encounter.Config{
		Enemies: catalog.MustDefault().Enemies(),
		Random:  random.NewFixed(draws...),
		Chance:  encounter.DefaultChance,
	})
	require.NoError(t, err)
	return s
}

func TestRoll(t *testing.T) {
	testCases := []struct {
		name     string
		draws    []float64
		hit      bool
		expected string
	}{
		{name: "just under the chance hits", draws: []float64{0.79, 0.0}, hit: true, expected: "Slime"},
		{name: "just over the chance misses", draws: []float64{0.81}, hit: false},
		{name: "exactly the chance misses", draws: []float64{0.8}, hit: false},
		{name: "table pick is uniform by index", draws: []float64{0.1, 0.5}, hit: true, expected: "Bat"},
		{name: "top of the range picks the last enemy", draws: []float64{0.1, 0.99}, hit: true, expected: "Skeleton"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			enemy, hit, err := newSelector(t, tc.draws...).Roll()
			require.NoError(t, err)
			assert.Equal(t, tc.hit, hit)
			assert.Equal(t, tc.expected, enemy.Name)
		})
	}
}

func TestNewSelectorValidation(t *testing.T) {
	_, err := encounter.NewSelector(&encounter.Config{Chance: 2})
	require.Error(t, err)
	assert.True(t, errors.IsInvalidArgument(err))
	assert.Contains(t, err.Error(), "Enemies: is required")
	assert.Contains(t, err.Error(), "Chance: must be between 0 and 1")
}
