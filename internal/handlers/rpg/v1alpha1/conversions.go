package v1alpha1

import (
	battlemachine "github.com/KirkDiggler/rpg-quest/internal/battle"
	"github.com/KirkDiggler/rpg-quest/internal/entities"
	"github.com/KirkDiggler/rpg-quest/internal/errors"
	"github.com/KirkDiggler/rpg-quest/internal/inventory"
	"github.com/KirkDiggler/rpg-quest/internal/orchestrators/game"
)

func toWireGame(g *entities.GameState) *Game {
	if g == nil {
		return nil
	}

	return &Game{
		ID:             g.ID,
		Player:         toWireCharacter(g.Player),
		Inventory:      toWireInventory(g.Inventory),
		Difficulty:     string(g.Difficulty),
		Class:          g.Class,
		Location:       g.Location,
		ActiveBattleID: g.ActiveBattleID,
		CreatedAt:      g.CreatedAt.Unix(),
		UpdatedAt:      g.UpdatedAt.Unix(),
	}
}

func toWireCharacter(c entities.Character) *Character {
	attrs := make(map[string]int32, len(entities.AllAttributes()))
	for _, attr := range entities.AllAttributes() {
		attrs[attr.Key()] = int32(c.Attribute(attr))
	}

	var equipment map[string]string
	for _, slot := range entities.AllSlots() {
		item := c.Equipment.Item(slot)
		if item == "" {
			continue
		}
		if equipment == nil {
			equipment = make(map[string]string)
		}
		equipment[slot.String()] = item
	}

	return &Character{
		Name:            c.Name,
		Health:          int32(c.Health),
		MaxHealth:       int32(c.MaxHealth),
		Attack:          int32(c.Attack),
		Defense:         int32(c.Defense),
		Attributes:      attrs,
		Experience:      int32(c.Experience),
		Level:           int32(c.Level),
		AttributePoints: int32(c.AttributePoints),
		Equipment:       equipment,
	}
}

func toWireInventory(l inventory.Ledger) []*InventoryEntry {
	out := make([]*InventoryEntry, 0, len(l))
	for _, e := range l {
		out = append(out, &InventoryEntry{Name: e.Name, Count: int32(e.Count)})
	}
	return out
}

func toWireBattle(s *battlemachine.Session) *Battle {
	if s == nil {
		return nil
	}

	return &Battle{
		ID:         s.ID,
		GameID:     s.GameID,
		Player:     toWireCharacter(s.Player),
		Enemy:      toWireCharacter(s.Enemy),
		Inventory:  toWireInventory(s.Inventory),
		Difficulty: string(s.Difficulty),
		State:      string(s.State),
		Outcome:    string(s.Outcome),
		Turn:       int32(s.Turn),
	}
}

func toWireEvents(evts []battlemachine.Event) []*BattleEvent {
	out := make([]*BattleEvent, 0, len(evts))
	for _, e := range evts {
		out = append(out, &BattleEvent{
			Kind:      string(e.Kind),
			Message:   e.Message,
			Subject:   e.Subject,
			Amount:    int32(e.Amount),
			Health:    int32(e.Health),
			Level:     int32(e.Level),
			Item:      e.Item,
			Attribute: e.Attribute,
			Outcome:   string(e.Outcome),
		})
	}
	return out
}

func toWireStats(s *game.Stats) *Stats {
	if s == nil {
		return nil
	}

	return &Stats{
		Attack:           int32(s.Attack),
		Defence:          int32(s.Defence),
		Strength:         int32(s.Strength),
		Agility:          int32(s.Agility),
		Stamina:          int32(s.Stamina),
		Intellect:        int32(s.Intellect),
		Spirit:           int32(s.Spirit),
		EffectiveAttack:  int32(s.EffectiveAttack),
		EffectiveDefence: int32(s.EffectiveDefence),
		Health:           int32(s.Health),
		MaxHealth:        int32(s.MaxHealth),
		Level:            int32(s.Level),
		Experience:       int32(s.Experience),
		NextLevel:        int32(s.NextLevel),
		AttributePoints:  int32(s.AttributePoints),
	}
}

// toAction maps the action label and its argument to a battle
// action.
func toAction(req *SubmitActionRequest) (battlemachine.Action, error) {
	kind, ok := battlemachine.ParseActionKind(req.Action)
	if !ok {
		return battlemachine.Action{}, errors.InvalidArgumentf("unknown action %q", req.Action)
	}

	switch kind {
	case battlemachine.ActionUseItem:
		if req.Item == "" {
			return battlemachine.Action{}, errors.InvalidArgument("item is required for use_item")
		}
		return battlemachine.UseItem(req.Item), nil
	case battlemachine.ActionSpend:
		attr, ok := entities.ParseAttribute(req.Attribute)
		if !ok {
			return battlemachine.Action{}, errors.InvalidArgumentf("unknown attribute %q", req.Attribute)
		}
		return battlemachine.Spend(attr), nil
	default:
		return battlemachine.Action{Kind: kind}, nil
	}
}
