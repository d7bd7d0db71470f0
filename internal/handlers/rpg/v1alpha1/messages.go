package v1alpha1

// CreateGameRequest creates a character and a new saved game.
type CreateGameRequest struct {
	Name       string `json:"name"`
	Class      string `json:"class"`
	Difficulty string `json:"difficulty"`
}

// CreateGameResponse returns the new game.
type CreateGameResponse struct {
	Game *Game `json:"game"`
}

// GetGameRequest loads a saved game.
type GetGameRequest struct {
	GameID string `json:"game_id"`
}

// GetGameResponse returns a saved game.
type GetGameResponse struct {
	Game *Game `json:"game"`
}

// TravelRequest moves one city along the ring. Direction is "next" or
// "previous".
type TravelRequest struct {
	GameID    string `json:"game_id"`
	Direction string `json:"direction"`
}

// TravelResponse returns the moved game and the battle the move ran into,
// if any.
type TravelResponse struct {
	Game   *Game          `json:"game"`
	Battle *Battle        `json:"battle,omitempty"`
	Events []*BattleEvent `json:"events,omitempty"`
}

// EquipRequest puts an inventory item into a slot.
type EquipRequest struct {
	GameID string `json:"game_id"`
	Slot   string `json:"slot"`
	Item   string `json:"item"`
}

// EquipResponse returns the game and the resulting stat sheet.
type EquipResponse struct {
	Game  *Game  `json:"game"`
	Stats *Stats `json:"stats"`
}

// UnequipRequest empties a slot.
type UnequipRequest struct {
	GameID string `json:"game_id"`
	Slot   string `json:"slot"`
}

// UnequipResponse returns the game, the removed item and the stat sheet.
type UnequipResponse struct {
	Game    *Game  `json:"game"`
	Removed string `json:"removed,omitempty"`
	Stats   *Stats `json:"stats"`
}

// SpendAttributeRequest spends one attribute point outside of battle.
type SpendAttributeRequest struct {
	GameID    string `json:"game_id"`
	Attribute string `json:"attribute"`
}

// SpendAttributeResponse reports whether a point was spent.
type SpendAttributeResponse struct {
	Game  *Game `json:"game"`
	Spent bool  `json:"spent"`
}

// GetStatsRequest reads the stat sheet.
type GetStatsRequest struct {
	GameID string `json:"game_id"`
}

// GetStatsResponse returns the stat sheet.
type GetStatsResponse struct {
	Stats *Stats `json:"stats"`
}

// StartBattleRequest starts a battle. An empty enemy picks the default one.
type StartBattleRequest struct {
	GameID string `json:"game_id"`
	Enemy  string `json:"enemy,omitempty"`
}

// StartBattleResponse returns the opened battle.
type StartBattleResponse struct {
	Battle *Battle        `json:"battle"`
	Events []*BattleEvent `json:"events"`
}

// SubmitActionRequest sends one player action. Item is read for "use_item"
// and Attribute for "spend".
type SubmitActionRequest struct {
	BattleID  string `json:"battle_id"`
	Action    string `json:"action"`
	Item      string `json:"item,omitempty"`
	Attribute string `json:"attribute,omitempty"`
}

// SubmitActionResponse returns the battle after the action. Game is set once
// the battle is over.
type SubmitActionResponse struct {
	Battle *Battle        `json:"battle"`
	Events []*BattleEvent `json:"events"`
	Game   *Game          `json:"game,omitempty"`
}

// GetBattleRequest reads a battle.
type GetBattleRequest struct {
	BattleID string `json:"battle_id"`
}

// GetBattleResponse returns a battle snapshot.
type GetBattleResponse struct {
	Battle *Battle `json:"battle"`
}

// Game is a saved game.
type Game struct {
	ID             string            `json:"id"`
	Player         *Character        `json:"player"`
	Inventory      []*InventoryEntry `json:"inventory"`
	Difficulty     string            `json:"difficulty"`
	Class          string            `json:"class"`
	Location       string            `json:"location"`
	ActiveBattleID string            `json:"active_battle_id,omitempty"`
	CreatedAt      int64             `json:"created_at"`
	UpdatedAt      int64             `json:"updated_at"`
}

// Character is the player or an enemy. Attributes are keyed by lower case
// attribute name, Equipment by slot label.
type Character struct {
	Name            string            `json:"name"`
	Health          int32             `json:"health"`
	MaxHealth       int32             `json:"max_health"`
	Attack          int32             `json:"attack"`
	Defense         int32             `json:"defense"`
	Attributes      map[string]int32  `json:"attributes"`
	Experience      int32             `json:"experience"`
	Level           int32             `json:"level"`
	AttributePoints int32             `json:"attribute_points"`
	Equipment       map[string]string `json:"equipment,omitempty"`
}

// InventoryEntry is one stack of items.
type InventoryEntry struct {
	Name  string `json:"name"`
	Count int32  `json:"count"`
}

// Battle is a battle snapshot.
type Battle struct {
	ID         string            `json:"id"`
	GameID     string            `json:"game_id"`
	Player     *Character        `json:"player"`
	Enemy      *Character        `json:"enemy"`
	Inventory  []*InventoryEntry `json:"inventory"`
	Difficulty string            `json:"difficulty"`
	State      string            `json:"state"`
	Outcome    string            `json:"outcome,omitempty"`
	Turn       int32             `json:"turn"`
}

// BattleEvent is one line of battle narration with its typed payload.
type BattleEvent struct {
	Kind      string `json:"kind"`
	Message   string `json:"message"`
	Subject   string `json:"subject,omitempty"`
	Amount    int32  `json:"amount"`
	Health    int32  `json:"health"`
	Level     int32  `json:"level,omitempty"`
	Item      string `json:"item,omitempty"`
	Attribute string `json:"attribute,omitempty"`
	Outcome   string `json:"outcome,omitempty"`
}

// Stats is the character sheet with equipment applied.
type Stats struct {
	Attack           int32 `json:"attack"`
	Defence          int32 `json:"defence"`
	Strength         int32 `json:"strength"`
	Agility          int32 `json:"agility"`
	Stamina          int32 `json:"stamina"`
	Intellect        int32 `json:"intellect"`
	Spirit           int32 `json:"spirit"`
	EffectiveAttack  int32 `json:"effective_attack"`
	EffectiveDefence int32 `json:"effective_defence"`
	Health           int32 `json:"health"`
	MaxHealth        int32 `json:"max_health"`
	Level            int32 `json:"level"`
	Experience       int32 `json:"experience"`
	NextLevel        int32 `json:"next_level"`
	AttributePoints  int32 `json:"attribute_points"`
}
