// Package engine holds the pure rules of rpg-quest: the stat model, equipment
// resolution and the progression curve. Nothing here performs I/O.
package engine

import "github.com/KirkDiggler/rpg-quest/internal/entities"

// EffectiveAttack is base attack plus half of strength, rounded down.
func EffectiveAttack(c entities.Character) int {
	return c.Attack + c.Attributes.Get(entities.Strength)/2
}

// EffectiveDefence is base defense plus half of the defence attribute,
// rounded down.
func EffectiveDefence(c entities.Character) int {
	return c.Defense + c.Attributes.Get(entities.Defence)/2
}

// Damage is what attacker deals to defender in one hit. It is never below 1.
func Damage(attacker, defender entities.Character) int {
	return MitigatedDamage(EffectiveAttack(attacker), defender)
}

// MitigatedDamage applies defender's effective defence to a raw attack value.
func MitigatedDamage(attack int, defender entities.Character) int {
	return max(1, attack-EffectiveDefence(defender))
}
