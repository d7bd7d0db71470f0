package battle

import (
	"strings"
	"time"

	"github.com/KirkDiggler/rpg-quest/internal/entities"
	"github.com/KirkDiggler/rpg-quest/internal/inventory"
)

// State is whose input the session is waiting for.
type State string

// Session states. The enemy turn resolves inside Submit and is never observed.
const (
	StatePlayerTurn     State = "player_turn"
	StateItemMenu       State = "item_menu"
	StateAttributeSpend State = "attribute_spend"
	StateBattleOver     State = "battle_over"
)

// Outcome is how a battle ended.
type Outcome string

// Outcomes. OutcomeNone while the fight is still going.
const (
	OutcomeNone    Outcome = ""
	OutcomeVictory Outcome = "victory"
	OutcomeDefeat  Outcome = "defeat"
	OutcomeFled    Outcome = "fled"
)

// ActionKind names a player action.
type ActionKind string

// Player actions.
const (
	ActionAttack    ActionKind = "attack"
	ActionDefend    ActionKind = "defend"
	ActionItems     ActionKind = "items"
	ActionUseItem   ActionKind = "use_item"
	ActionCancel    ActionKind = "cancel"
	ActionRun       ActionKind = "run"
	ActionSpells    ActionKind = "spells"
	ActionAbilities ActionKind = "abilities"
	ActionSpend     ActionKind = "spend"
)

var actionKinds = []ActionKind{
	ActionAttack, ActionDefend, ActionItems, ActionUseItem, ActionCancel,
	ActionRun, ActionSpells, ActionAbilities, ActionSpend,
}

// ParseActionKind resolves a transport label such as "Attack" or "use_item".
func ParseActionKind(label string) (ActionKind, bool) {
	normalized := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(label)), " ", "_")
	for _, k := range actionKinds {
		if string(k) == normalized {
			return k, true
		}
	}
	return "", false
}

// Action is one player input. Item is set for UseItem, Attribute for Spend.
type Action struct {
	Kind      ActionKind
	Item      string
	Attribute entities.Attribute
}

// Attack is the basic attack.
func Attack() Action { return Action{Kind: ActionAttack} }

// Defend guards against the next enemy attack.
func Defend() Action { return Action{Kind: ActionDefend} }

// OpenItems opens the item menu.
func OpenItems() Action { return Action{Kind: ActionItems} }

// UseItem uses one of name.
func UseItem(name string) Action { return Action{Kind: ActionUseItem, Item: name} }

// Cancel closes the item menu.
func Cancel() Action { return Action{Kind: ActionCancel} }

// Run tries to flee.
func Run() Action { return Action{Kind: ActionRun} }

// Spells opens the spell list.
func Spells() Action { return Action{Kind: ActionSpells} }

// Abilities opens the ability list.
func Abilities() Action { return Action{Kind: ActionAbilities} }

// Spend puts one attribute point into attr.
func Spend(attr entities.Attribute) Action {
	return Action{Kind: ActionSpend, Attribute: attr}
}

// EventKind classifies a battle event.
type EventKind string

// Event kinds.
const (
	EventNarrative      EventKind = "narrative"
	EventHealthChanged  EventKind = "health_changed"
	EventLevelUp        EventKind = "level_up"
	EventItemFound      EventKind = "item_found"
	EventItemUsed       EventKind = "item_used"
	EventAttributeSpent EventKind = "attribute_spent"
	EventBattleEnded    EventKind = "battle_ended"
)

// Event is one observable step of a turn. Message is the line shown to the
// player; the other fields depend on Kind.
type Event struct {
	Kind    EventKind `json:"kind"`
	Message string    `json:"message"`
	// Subject is the name of the character the event is about.
	Subject   string  `json:"subject,omitempty"`
	Amount    int     `json:"amount"`
	Health    int     `json:"health"`
	Level     int     `json:"level,omitempty"`
	Item      string  `json:"item,omitempty"`
	Attribute string  `json:"attribute,omitempty"`
	Outcome   Outcome `json:"outcome,omitempty"`
}

// Session is one battle in progress. The player and inventory are copies of
// the game state taken at battle start; they are handed back when the battle
// ends.
type Session struct {
	ID         string              `json:"id"`
	GameID     string              `json:"game_id"`
	Player     entities.Character  `json:"player"`
	Inventory  inventory.Ledger    `json:"inventory"`
	Enemy      entities.Character  `json:"enemy"`
	Drop       string              `json:"drop,omitempty"`
	Difficulty entities.Difficulty `json:"difficulty"`
	State      State               `json:"state"`
	Outcome    Outcome             `json:"outcome,omitempty"`
	// Turn counts the actions that drew an enemy reply or ended the fight.
	Turn       int                 `json:"turn"`
	CreatedAt  time.Time           `json:"created_at"`
	UpdatedAt  time.Time           `json:"updated_at"`
}

// Over reports whether the session has reached BattleOver.
func (s Session) Over() bool {
	return s.State == StateBattleOver
}

func (s Session) clone() Session {
	s.Inventory = s.Inventory.Clone()
	return s
}
