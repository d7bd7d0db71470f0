package battle

import "github.com/KirkDiggler/rpg-toolkit/core"

const (
	entityTypePlayer = "player"
	entityTypeEnemy  = "enemy"
)

// combatant implements core.Entity so battle events can name who acted
type combatant struct {
	id         string
	entityType string
}

func (c *combatant) GetID() string {
	return c.id
}

func (c *combatant) GetType() string {
	return c.entityType
}

func playerEntity(gameID string) core.Entity {
	return &combatant{id: gameID, entityType: entityTypePlayer}
}

func enemyEntity(battleID string) core.Entity {
	return &combatant{id: battleID + ":enemy", entityType: entityTypeEnemy}
}
