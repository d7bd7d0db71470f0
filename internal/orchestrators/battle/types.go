package battle

import (
	battlemachine "github.com/KirkDiggler/rpg-quest/internal/battle"
	"github.com/KirkDiggler/rpg-quest/internal/entities"
)

// StartBattleInput defines the request for starting a battle
type StartBattleInput struct {
	GameID string
	// EnemyName picks the enemy. Empty or unknown names fall back to the
	// default enemy.
	EnemyName string
}

// StartBattleOutput defines the response for starting a battle
type StartBattleOutput struct {
	Session *battlemachine.Session
	Events  []battlemachine.Event
	Game    *entities.GameState
}

// SubmitActionInput defines the request for one player action
type SubmitActionInput struct {
	BattleID string
	Action   battlemachine.Action
}

// SubmitActionOutput defines the response for one player action
type SubmitActionOutput struct {
	Session *battlemachine.Session
	Events  []battlemachine.Event
	// Game is set whenever battle results were written back, which happens on
	// victory and at the end of every battle
	Game *entities.GameState
}

// GetBattleInput defines the request for reading a battle
type GetBattleInput struct {
	BattleID string
}

// GetBattleOutput defines the response for reading a battle
type GetBattleOutput struct {
	Session *battlemachine.Session
}
