package game

import (
	battlemachine "github.com/KirkDiggler/rpg-quest/internal/battle"
	"github.com/KirkDiggler/rpg-quest/internal/entities"
)

// Direction is a step along the ring of cities.
type Direction string

// Travel directions.
const (
	DirectionNext     Direction = "next"
	DirectionPrevious Direction = "previous"
)

// CreateGameInput defines the request for creating a character and game
type CreateGameInput struct {
	Name       string
	Class      string
	Difficulty string
}

// CreateGameOutput defines the response for creating a game
type CreateGameOutput struct {
	Game *entities.GameState
}

// GetGameInput defines the request for loading a game
type GetGameInput struct {
	GameID string
}

// GetGameOutput defines the response for loading a game
type GetGameOutput struct {
	Game *entities.GameState
}

// TravelInput defines the request for moving on the world map
type TravelInput struct {
	GameID    string
	Direction Direction
}

// TravelOutput defines the response for moving on the world map
type TravelOutput struct {
	Game *entities.GameState
	// Battle is set when the move ran into an enemy
	Battle *battlemachine.Session
	Events []battlemachine.Event
}

// EquipInput defines the request for equipping an item
type EquipInput struct {
	GameID string
	Slot   string
	Item   string
}

// EquipOutput defines the response for equipping an item
type EquipOutput struct {
	Game  *entities.GameState
	Stats *Stats
}

// UnequipInput defines the request for emptying a slot
type UnequipInput struct {
	GameID string
	Slot   string
}

// UnequipOutput defines the response for emptying a slot
type UnequipOutput struct {
	Game    *entities.GameState
	Removed string
	Stats   *Stats
}

// SpendAttributeInput defines the request for spending an attribute point
type SpendAttributeInput struct {
	GameID    string
	Attribute string
}

// SpendAttributeOutput defines the response for spending an attribute point
type SpendAttributeOutput struct {
	Game *entities.GameState
	// Spent is false when there were no points to spend
	Spent bool
}

// GetStatsInput defines the request for the stat sheet
type GetStatsInput struct {
	GameID string
}

// GetStatsOutput defines the response for the stat sheet
type GetStatsOutput struct {
	Stats *Stats
}

// Stats is the character sheet with equipment applied
type Stats struct {
	entities.StatBlock
	EffectiveAttack  int
	EffectiveDefence int
	Health           int
	MaxHealth        int
	Level            int
	Experience       int
	// NextLevel is the experience needed for the next level
	NextLevel       int
	AttributePoints int
}
