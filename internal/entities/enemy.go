package entities

// EnemyDefinition is an enemy archetype from the encounter table.
type EnemyDefinition struct {
	Name       string     `json:"name"`
	Health     int        `json:"health"`
	MaxHealth  int        `json:"max_health"`
	Attack     int        `json:"attack"`
	Defense    int        `json:"defense"`
	Attributes Attributes `json:"attributes"`
	// Drop is granted to the player on victory. Empty means no drop.
	Drop string `json:"drop,omitempty"`
}

// Character builds a fresh level 1 combatant from the definition.
func (d EnemyDefinition) Character() Character {
	return Character{
		Name:       d.Name,
		Health:     d.Health,
		MaxHealth:  d.MaxHealth,
		Attack:     d.Attack,
		Defense:    d.Defense,
		Attributes: d.Attributes,
		Level:      1,
	}
}
