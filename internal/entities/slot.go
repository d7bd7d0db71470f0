package entities

import (
	"encoding/json"
	"fmt"
	"strings"
)

// SlotCategory is the kind of slot an equipment item fits into.
type SlotCategory int

// Slot categories. SlotCategoryNone marks items that are not equipment.
const (
	SlotCategoryNone SlotCategory = iota
	SlotCategoryHelmet
	SlotCategoryChest
	SlotCategoryLegs
	SlotCategoryAccessory
	SlotCategoryWeapon
)

var slotCategoryLabels = map[SlotCategory]string{
	SlotCategoryNone:      "",
	SlotCategoryHelmet:    "Helmet",
	SlotCategoryChest:     "Chest",
	SlotCategoryLegs:      "Legs",
	SlotCategoryAccessory: "Accessory",
	SlotCategoryWeapon:    "Weapon",
}

// String returns the category label.
func (c SlotCategory) String() string {
	if l, ok := slotCategoryLabels[c]; ok {
		return l
	}
	return fmt.Sprintf("SlotCategory(%d)", int(c))
}

// ParseSlotCategory resolves a category label case-insensitively.
func ParseSlotCategory(label string) (SlotCategory, bool) {
	for c, l := range slotCategoryLabels {
		if c != SlotCategoryNone && strings.EqualFold(l, strings.TrimSpace(label)) {
			return c, true
		}
	}
	return SlotCategoryNone, false
}

// Slot is one of the fixed equipment positions on a character.
type Slot int

// Equipment slots in display order.
const (
	SlotHelmet Slot = iota
	SlotChest
	SlotLegs
	SlotAccessory1
	SlotAccessory2
	SlotAccessory3
	SlotWeapon1
	SlotWeapon2

	slotCount
)

var slotLabels = [slotCount]string{
	SlotHelmet:     "Helmet",
	SlotChest:      "Chest",
	SlotLegs:       "Legs",
	SlotAccessory1: "Accessory 1",
	SlotAccessory2: "Accessory 2",
	SlotAccessory3: "Accessory 3",
	SlotWeapon1:    "Weapon 1",
	SlotWeapon2:    "Weapon 2",
}

var slotCategories = [slotCount]SlotCategory{
	SlotHelmet:     SlotCategoryHelmet,
	SlotChest:      SlotCategoryChest,
	SlotLegs:       SlotCategoryLegs,
	SlotAccessory1: SlotCategoryAccessory,
	SlotAccessory2: SlotCategoryAccessory,
	SlotAccessory3: SlotCategoryAccessory,
	SlotWeapon1:    SlotCategoryWeapon,
	SlotWeapon2:    SlotCategoryWeapon,
}

// AllSlots returns every slot in display order.
func AllSlots() []Slot {
	all := make([]Slot, slotCount)
	for i := range all {
		all[i] = Slot(i)
	}
	return all
}

// Valid reports whether s is a known slot.
func (s Slot) Valid() bool {
	return s >= 0 && s < slotCount
}

// String returns the slot label, e.g. "Accessory 2".
func (s Slot) String() string {
	if !s.Valid() {
		return fmt.Sprintf("Slot(%d)", int(s))
	}
	return slotLabels[s]
}

// Category returns the category of items the slot accepts.
func (s Slot) Category() SlotCategory {
	if !s.Valid() {
		return SlotCategoryNone
	}
	return slotCategories[s]
}

// Accepts reports whether item may be placed in the slot.
func (s Slot) Accepts(item *ItemDefinition) bool {
	if item == nil || item.Kind != ItemKindEquipment {
		return false
	}
	return item.Slot != SlotCategoryNone && item.Slot == s.Category()
}

// ParseSlot resolves a slot label case-insensitively.
func ParseSlot(label string) (Slot, bool) {
	for i, l := range slotLabels {
		if strings.EqualFold(l, strings.TrimSpace(label)) {
			return Slot(i), true
		}
	}
	return 0, false
}

// Equipment maps every slot to an item name. An empty string is an empty slot.
type Equipment [slotCount]string

// Item returns the item name in slot, or "" when empty.
func (e Equipment) Item(slot Slot) string {
	return e[slot]
}

// With returns a copy of e with slot set to item.
func (e Equipment) With(slot Slot, item string) Equipment {
	e[slot] = item
	return e
}

// CountOf returns how many slots hold item.
func (e Equipment) CountOf(item string) int {
	n := 0
	for _, name := range e {
		if name != "" && name == item {
			n++
		}
	}
	return n
}

// MarshalJSON writes every slot, using null for empty ones.
func (e Equipment) MarshalJSON() ([]byte, error) {
	m := make(map[string]*string, slotCount)
	for i := range e {
		if e[i] == "" {
			m[slotLabels[i]] = nil
			continue
		}
		name := e[i]
		m[slotLabels[i]] = &name
	}
	return json.Marshal(m)
}

// UnmarshalJSON reads the object form written by MarshalJSON. Slots that are
// missing from the document are empty.
func (e *Equipment) UnmarshalJSON(data []byte) error {
	var m map[string]*string
	if err := json.Unmarshal(data, &m); err != nil {
		return err
	}
	var out Equipment
	for label, name := range m {
		slot, ok := ParseSlot(label)
		if !ok {
			return fmt.Errorf("unknown equipment slot %q", label)
		}
		if name != nil {
			out[slot] = *name
		}
	}
	*e = out
	return nil
}
