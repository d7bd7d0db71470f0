package battle

import (
	battlemachine "github.com/KirkDiggler/rpg-quest/internal/battle"
)

// Keys set on the context of every published battle event.
const (
	EventKeyBattleID = "battle_id"
	EventKeyMessage  = "message"
	// EventKeyPayload holds the battle.Event the bus event was built from.
	EventKeyPayload = "payload"
)

const eventTypePrefix = "battle."

// EventType is the bus event type for a battle event kind, e.g. "battle.level_up".
func EventType(kind battlemachine.EventKind) string {
	return eventTypePrefix + string(kind)
}

// EventTypes lists every bus event type the orchestrator publishes.
func EventTypes() []string {
	kinds := []battlemachine.EventKind{
		battlemachine.EventNarrative,
		battlemachine.EventHealthChanged,
		battlemachine.EventLevelUp,
		battlemachine.EventItemFound,
		battlemachine.EventItemUsed,
		battlemachine.EventAttributeSpent,
		battlemachine.EventBattleEnded,
	}

	out := make([]string, 0, len(kinds))
	for _, k := range kinds {
		out = append(out, EventType(k))
	}
	return out
}
