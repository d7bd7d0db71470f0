package entities

import (
	"time"

	"github.com/KirkDiggler/rpg-quest/internal/inventory"
)

// GameState is everything that persists between calls for one player: the
// character, the stacked inventory and the settings chosen at creation. It is
// passed explicitly to every component that reads or changes player state.
type GameState struct {
	ID         string           `json:"id"`
	Player     Character        `json:"player"`
	Inventory  inventory.Ledger `json:"inventory"`
	Difficulty Difficulty       `json:"difficulty"`
	Class      string           `json:"class"`
	Location   string           `json:"location"`
	// ActiveBattleID is set while a battle owns the player state.
	ActiveBattleID string    `json:"active_battle_id,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// InBattle reports whether a battle currently owns the player state.
func (g *GameState) InBattle() bool {
	return g.ActiveBattleID != ""
}
