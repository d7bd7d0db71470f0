package catalog_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/rpg-quest/internal/catalog"
	"github.com/KirkDiggler/rpg-quest/internal/entities"
	"github.com/KirkDiggler/rpg-quest/internal/errors"
)

func TestDefaultCatalog(t *testing.T) {
	c, err := catalog.Default()
	require.NoError(t, err)

	t.Run("hero starts at level 1 with empty slots", func(t *testing.T) {
		hero := c.NewHero("Aria")
		assert.Equal(t, "Aria", hero.Name)
		assert.Equal(t, 30, hero.Health)
		assert.Equal(t, 30, hero.MaxHealth)
		assert.Equal(t, 8, hero.Attack)
		assert.Equal(t, 3, hero.Defense)
		assert.Equal(t, 1, hero.Level)
		assert.Equal(t, entities.NewAttributes(5), hero.Attributes)
		assert.Equal(t, entities.Equipment{}, hero.Equipment)
	})

	t.Run("starting inventory is five potions", func(t *testing.T) {
		inv := c.StartingInventory()
		assert.Equal(t, 5, inv.Count("Potion"))
		require.NoError(t, inv.Consume("Potion"))
		assert.Equal(t, 5, c.StartingInventory().Count("Potion"))
	})

	t.Run("enemy table", func(t *testing.T) {
		enemies := c.Enemies()
		require.Len(t, enemies, 4)
		assert.Equal(t, "Slime", c.DefaultEnemy().Name)

		goblin, ok := c.Enemy("goblin")
		require.True(t, ok)
		assert.Equal(t, 24, goblin.MaxHealth)
		assert.Equal(t, "Iron Sword", goblin.Drop)
		assert.Equal(t, 5, goblin.Attributes.Get(entities.Strength))
	})

	t.Run("items carry their tagged category", func(t *testing.T) {
		potion := c.Item("Potion")
		require.NotNil(t, potion)
		assert.True(t, potion.UsableInBattle())

		herb := c.Item("Mana Herb")
		require.NotNil(t, herb)
		assert.False(t, herb.UsableInBattle())

		ring := c.Item("Ring of Power")
		require.NotNil(t, ring)
		assert.Equal(t, entities.ItemKindEquipment, ring.Kind)
		assert.Equal(t, entities.SlotCategoryAccessory, ring.Slot)
		assert.Equal(t, 2, ring.Bonuses.Strength)

		assert.Nil(t, c.Item("Excalibur"))
	})

	t.Run("world map and classes", func(t *testing.T) {
		assert.Equal(t, []string{"Start Town", "River City", "Mountain Village", "Forest Hamlet", "Desert Outpost"}, c.Cities())
		assert.Equal(t, []string{"Warrior", "Mage", "Healer", "Rogue"}, c.ClassNames())
	})
}

func TestParseRejectsBrokenReferences(t *testing.T) {
	testCases := []struct {
		name string
		data string
	}{
		{
			name: "unknown drop",
			data: `
items: []
enemies:
  - {name: Slime, health: 10, drop: Potion}
default_enemy: Slime
cities: [A]
classes: [{name: Warrior}]
hero: {name: Hero, health: 30}
`,
		},
		{
			name: "unknown slot",
			data: `
items:
  - {name: Hat, kind: equipment, slot: Head}
`,
		},
		{
			name: "missing default enemy",
			data: `
items: []
enemies:
  - {name: Bat, health: 10}
default_enemy: Slime
cities: [A]
classes: [{name: Warrior}]
hero: {name: Hero, health: 30}
`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := catalog.Parse([]byte(tc.data))
			require.Error(t, err)
			assert.True(t, errors.IsInvalidArgument(err))
		})
	}
}
