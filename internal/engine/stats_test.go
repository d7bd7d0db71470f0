package engine_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/KirkDiggler/rpg-quest/internal/engine"
	"github.com/KirkDiggler/rpg-quest/internal/entities"
)

func fighter(attack, defense, strength, defence int) entities.Character {
	c := entities.Character{Attack: attack, Defense: defense, Level: 1}
	c.Attributes[entities.Strength] = strength
	c.Attributes[entities.Defence] = defence
	return c
}

func TestEffectiveStats(t *testing.T) {
	testCases := []struct {
		name            string
		character       entities.Character
		expectedAttack  int
		expectedDefence int
	}{
		{name: "hero", character: fighter(8, 3, 5, 5), expectedAttack: 10, expectedDefence: 5},
		{name: "odd values round down", character: fighter(1, 1, 3, 1), expectedAttack: 2, expectedDefence: 1},
		{name: "zero attributes", character: fighter(4, 2, 0, 0), expectedAttack: 4, expectedDefence: 2},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expectedAttack, engine.EffectiveAttack(tc.character))
			assert.Equal(t, tc.expectedDefence, engine.EffectiveDefence(tc.character))
		})
	}
}

func TestEffectiveStatsAreMonotonic(t *testing.T) {
	for strength := 0; strength < 20; strength++ {
		lower := fighter(5, 0, strength, 0)
		higher := fighter(5, 0, strength+1, 0)
		assert.GreaterOrEqual(t, engine.EffectiveAttack(higher), engine.EffectiveAttack(lower))
	}
	for defence := 0; defence < 20; defence++ {
		lower := fighter(0, 5, 0, defence)
		higher := fighter(0, 5, 0, defence+1)
		assert.GreaterOrEqual(t, engine.EffectiveDefence(higher), engine.EffectiveDefence(lower))
	}
}

func TestDamage(t *testing.T) {
	t.Run("attack 8 strength 5 against defense 1 defence 1", func(t *testing.T) {
		assert.Equal(t, 9, engine.Damage(fighter(8, 0, 5, 0), fighter(0, 1, 0, 1)))
	})

	t.Run("never below one", func(t *testing.T) {
		for attack := 0; attack < 10; attack++ {
			for defense := 0; defense < 30; defense += 3 {
				assert.GreaterOrEqual(t, engine.Damage(fighter(attack, 0, 0, 0), fighter(0, defense, 0, defense)), 1)
			}
		}
	})
}
