package entities

import "fmt"

// ItemKind separates consumables from equipment.
type ItemKind int

// Item kinds.
const (
	ItemKindConsumable ItemKind = iota + 1
	ItemKindEquipment
)

// String returns the kind label.
func (k ItemKind) String() string {
	switch k {
	case ItemKindConsumable:
		return "consumable"
	case ItemKindEquipment:
		return "equipment"
	default:
		return fmt.Sprintf("ItemKind(%d)", int(k))
	}
}

// Effect is what a consumable does when used.
type Effect struct {
	RestoreHealth int `json:"restore_health,omitempty"`
	RestoreMana   int `json:"restore_mana,omitempty"`
}

// ItemDefinition is shared, immutable catalog data for an item.
type ItemDefinition struct {
	Name        string       `json:"name"`
	Description string       `json:"description,omitempty"`
	Kind        ItemKind     `json:"kind"`
	Slot        SlotCategory `json:"slot,omitempty"`
	Bonuses     StatBlock    `json:"bonuses"`
	Effect      Effect       `json:"effect"`
}

// UsableInBattle reports whether the item can be used from the battle item
// menu. Only health-restoring consumables qualify.
func (d *ItemDefinition) UsableInBattle() bool {
	return d != nil && d.Kind == ItemKindConsumable && d.Effect.RestoreHealth > 0
}
