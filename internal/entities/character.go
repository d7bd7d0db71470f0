// Package entities provides the core data structures for rpg-quest.
package entities

import "github.com/KirkDiggler/rpg-quest/internal/errors"

// Character is a combatant, either the player or an enemy.
type Character struct {
	Name            string     `json:"name"`
	Health          int        `json:"health"`
	MaxHealth       int        `json:"max_health"`
	Attack          int        `json:"attack"`
	Defense         int        `json:"defense"`
	Attributes      Attributes `json:"attributes"`
	Experience      int        `json:"experience"`
	Level           int        `json:"level"`
	AttributePoints int        `json:"attribute_points"`
	Equipment       Equipment  `json:"equipment"`
}

// Attribute returns the value of attr.
func (c Character) Attribute(attr Attribute) int {
	return c.Attributes[attr]
}

// IsAlive reports whether the character still has health left.
func (c Character) IsAlive() bool {
	return c.Health > 0
}

// Validate checks the character invariants.
func (c Character) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.MaxHealth < 0 {
		vb.Field("max_health", "must not be negative")
	}
	if c.Health < 0 || c.Health > c.MaxHealth {
		vb.Fieldf("health", "must be between 0 and %d", c.MaxHealth)
	}
	if c.Level < 1 {
		vb.Field("level", "must be at least 1")
	}
	if c.AttributePoints < 0 {
		vb.Field("attribute_points", "must not be negative")
	}
	for _, attr := range AllAttributes() {
		if c.Attributes[attr] < 0 {
			vb.Field(attr.Key(), "must not be negative")
		}
	}

	return vb.Build()
}
