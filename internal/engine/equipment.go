package engine

import (
	"github.com/KirkDiggler/rpg-quest/internal/entities"
	"github.com/KirkDiggler/rpg-quest/internal/errors"
)

// ItemLookup resolves item names to definitions. *catalog.Catalog satisfies it.
type ItemLookup interface {
	Item(name string) *entities.ItemDefinition
}

// BaseStats returns the character's stats before equipment.
func BaseStats(c entities.Character) entities.StatBlock {
	return entities.StatBlock{
		Attack:    c.Attack,
		Defence:   c.Defense,
		Strength:  c.Attributes.Get(entities.Strength),
		Agility:   c.Attributes.Get(entities.Agility),
		Stamina:   c.Attributes.Get(entities.Stamina),
		Intellect: c.Attributes.Get(entities.Intellect),
		Spirit:    c.Attributes.Get(entities.Spirit),
	}
}

// ComputeStats sums base stats and the bonuses of every equipped item. It is
// recomputed from scratch on each call so unequipping restores stats exactly.
func ComputeStats(c entities.Character, items ItemLookup) (entities.StatBlock, error) {
	stats := BaseStats(c)
	for _, slot := range entities.AllSlots() {
		name := c.Equipment.Item(slot)
		if name == "" {
			continue
		}
		def := items.Item(name)
		if def == nil {
			return entities.StatBlock{}, errors.NotFoundf("item %s in slot %s not found", name, slot).
				WithMeta("slot", slot.String())
		}
		stats = stats.Add(def.Bonuses)
	}
	return stats, nil
}

// CombatView returns a copy of c with equipment bonuses folded into its base
// values. Battles fight with the view; the stored character never absorbs
// the bonuses.
func CombatView(c entities.Character, items ItemLookup) (entities.Character, error) {
	stats, err := ComputeStats(c, items)
	if err != nil {
		return entities.Character{}, err
	}

	view := c
	view.Attack = stats.Attack
	view.Defense = stats.Defence
	view.Attributes[entities.Strength] = stats.Strength
	view.Attributes[entities.Agility] = stats.Agility
	view.Attributes[entities.Stamina] = stats.Stamina
	view.Attributes[entities.Intellect] = stats.Intellect
	view.Attributes[entities.Spirit] = stats.Spirit
	return view, nil
}

// Equip places item into slot. The slot must be empty and accept the item's
// category.
func Equip(c entities.Character, slot entities.Slot, item *entities.ItemDefinition) (entities.Character, error) {
	if !slot.Valid() {
		return c, errors.InvalidArgumentf("unknown slot %d", int(slot))
	}
	if item == nil {
		return c, errors.NotFound("item not found")
	}
	if !slot.Accepts(item) {
		return c, errors.InvalidArgumentf("%s cannot be equipped in %s", item.Name, slot).
			WithMeta("item", item.Name).
			WithMeta("slot", slot.String())
	}
	if current := c.Equipment.Item(slot); current != "" {
		return c, errors.FailedPreconditionf("%s is holding %s, unequip first", slot, current).
			WithMeta("slot", slot.String())
	}

	c.Equipment = c.Equipment.With(slot, item.Name)
	return c, nil
}

// Unequip empties slot and returns the removed item name. An empty slot is
// left as is.
func Unequip(c entities.Character, slot entities.Slot) (entities.Character, string, error) {
	if !slot.Valid() {
		return c, "", errors.InvalidArgumentf("unknown slot %d", int(slot))
	}

	removed := c.Equipment.Item(slot)
	c.Equipment = c.Equipment.With(slot, "")
	return c, removed, nil
}
