// Package battle implements the turn state machine for a single fight between
// the player and one enemy.
//
// Submit takes a session by value and returns the next session together with
// the ordered events the turn produced. The enemy's reply is resolved inside
// the same call, so callers only ever see the player's turn, one of the two
// menus, or the end of the battle.
package battle

import (
	"fmt"

	"github.com/KirkDiggler/rpg-quest/internal/engine"
	"github.com/KirkDiggler/rpg-quest/internal/entities"
	"github.com/KirkDiggler/rpg-quest/internal/errors"
	"github.com/KirkDiggler/rpg-quest/internal/inventory"
	"github.com/KirkDiggler/rpg-quest/internal/pkg/random"
)

// Defaults used when a Config leaves the value unset.
const (
	DefaultVictoryExperience = 10
	DefaultFleeChance        = 0.5
)

// Config wires a Machine.
type Config struct {
	Items  engine.ItemLookup
	Random random.Source
	Rules  engine.Rules
	// VictoryExperience is awarded for every win.
	VictoryExperience int
	// FleeChance is the probability that Run succeeds.
	FleeChance float64
}

// Validate checks the config.
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.Items == nil {
		vb.RequiredField("Items")
	}
	if c.Random == nil {
		vb.RequiredField("Random")
	}
	if err := c.Rules.Validate(); err != nil {
		vb.Fieldf("Rules", "%s", errors.GetMessage(err))
	}
	if c.VictoryExperience < 0 {
		vb.Field("VictoryExperience", "must not be negative")
	}
	if c.FleeChance < 0 || c.FleeChance > 1 {
		vb.Field("FleeChance", "must be between 0 and 1")
	}

	return vb.Build()
}

// Machine runs battles. It holds no per-battle state and is safe for
// concurrent use.
type Machine struct {
	items             engine.ItemLookup
	random            random.Source
	rules             engine.Rules
	victoryExperience int
	fleeChance        float64
}

// NewMachine creates a machine from cfg.
func NewMachine(cfg *Config) (*Machine, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &Machine{
		items:             cfg.Items,
		random:            cfg.Random,
		rules:             cfg.Rules,
		victoryExperience: cfg.VictoryExperience,
		fleeChance:        cfg.FleeChance,
	}, nil
}

// StartInput is what a battle starts from.
type StartInput struct {
	ID         string
	GameID     string
	Player     entities.Character
	Inventory  inventory.Ledger
	Enemy      entities.EnemyDefinition
	Difficulty entities.Difficulty
}

// Start opens a battle on the player's turn.
func (m *Machine) Start(input StartInput) (Session, []Event, error) {
	if !input.Player.IsAlive() {
		return Session{}, nil, errors.FailedPreconditionf("%s cannot fight with no health left", input.Player.Name)
	}
	if input.Enemy.Name == "" {
		return Session{}, nil, errors.InvalidArgument("enemy is required")
	}
	if _, err := engine.CombatView(input.Player, m.items); err != nil {
		return Session{}, nil, err
	}

	s := Session{
		ID:         input.ID,
		GameID:     input.GameID,
		Player:     input.Player,
		Inventory:  input.Inventory.Clone(),
		Enemy:      input.Enemy.Character(),
		Drop:       input.Enemy.Drop,
		Difficulty: input.Difficulty,
		State:      StatePlayerTurn,
	}

	return s, []Event{narrative("A wild %s appears!", s.Enemy.Name)}, nil
}

// Submit applies one player action. On error the returned session is the
// input unchanged and no events are produced.
func (m *Machine) Submit(s Session, a Action) (Session, []Event, error) {
	t := &turn{m: m, s: s.clone()}

	var err error
	switch s.State {
	case StatePlayerTurn:
		err = t.playerTurn(a)
	case StateItemMenu:
		err = t.itemMenu(a)
	case StateAttributeSpend:
		err = t.attributeSpend(a)
	default:
		err = invalidAction(s.State, a)
	}
	if err != nil {
		return s, nil, err
	}

	return t.s, t.events, nil
}

// turn accumulates the changes of a single Submit call.
type turn struct {
	m      *Machine
	s      Session
	events []Event
}

func (t *turn) emit(e Event) {
	t.events = append(t.events, e)
}

func (t *turn) say(format string, args ...interface{}) {
	t.emit(narrative(format, args...))
}

func (t *turn) playerTurn(a Action) error {
	switch a.Kind {
	case ActionAttack:
		return t.attack()
	case ActionDefend:
		t.s.Turn++
		t.say("You brace for the next attack!")
		return t.enemyTurn(true)
	case ActionItems:
		if len(t.usableItems()) == 0 {
			t.say("No usable items.")
			return nil
		}
		t.s.State = StateItemMenu
		t.say("Select an item to use")
		return nil
	case ActionUseItem:
		return t.useItem(a.Item)
	case ActionRun:
		return t.run()
	case ActionSpells:
		t.say("No spells learned yet.")
		return nil
	case ActionAbilities:
		t.say("No abilities unlocked yet.")
		return nil
	default:
		return invalidAction(t.s.State, a)
	}
}

func (t *turn) itemMenu(a Action) error {
	switch a.Kind {
	case ActionUseItem:
		return t.useItem(a.Item)
	case ActionCancel:
		t.s.State = StatePlayerTurn
		t.say("Item use cancelled.")
		return nil
	default:
		return invalidAction(t.s.State, a)
	}
}

func (t *turn) attributeSpend(a Action) error {
	if a.Kind != ActionSpend {
		return invalidAction(t.s.State, a)
	}
	if err := t.m.rules.SpendPoint(&t.s.Player, a.Attribute); err != nil {
		return err
	}

	t.emit(Event{
		Kind:      EventAttributeSpent,
		Message:   fmt.Sprintf("%s increased to %d.", a.Attribute, t.s.Player.Attribute(a.Attribute)),
		Subject:   t.s.Player.Name,
		Amount:    t.s.Player.Attribute(a.Attribute),
		Health:    t.s.Player.Health,
		Attribute: a.Attribute.String(),
	})

	if t.s.Player.AttributePoints == 0 {
		t.say("Attribute points spent! Continue your adventure.")
		t.end(OutcomeVictory)
	}
	return nil
}

func (t *turn) attack() error {
	view, err := t.playerView()
	if err != nil {
		return err
	}
	t.s.Turn++

	dmg := engine.Damage(view, t.s.Enemy)
	t.s.Enemy.Health = max(0, t.s.Enemy.Health-dmg)
	t.emit(Event{
		Kind:    EventHealthChanged,
		Message: fmt.Sprintf("You attack! %s takes %d damage.", t.s.Enemy.Name, dmg),
		Subject: t.s.Enemy.Name,
		Amount:  -dmg,
		Health:  t.s.Enemy.Health,
	})

	if !t.s.Enemy.IsAlive() {
		return t.victory()
	}
	return t.enemyTurn(false)
}

func (t *turn) run() error {
	t.s.Turn++
	t.say("You attempt to run...")

	draw, err := t.m.random.Float64()
	if err != nil {
		return errors.Wrap(err, "failed to draw flee chance")
	}
	if draw < t.m.fleeChance {
		t.say("You escaped!")
		t.end(OutcomeFled)
		return nil
	}

	t.say("Couldn't escape!")
	return t.enemyTurn(false)
}

func (t *turn) usableItems() []inventory.Entry {
	return t.s.Inventory.Usable(func(name string) bool {
		return t.m.items.Item(name).UsableInBattle()
	})
}

func (t *turn) useItem(name string) error {
	def := t.m.items.Item(name)
	if !def.UsableInBattle() || t.s.Inventory.Count(name) <= 0 {
		return errors.ItemUnavailablef("No usable items.").WithMeta("item", name)
	}

	t.s.Turn++
	before := t.s.Player.Health
	t.s.Player.Health = min(t.s.Player.MaxHealth, t.s.Player.Health+def.Effect.RestoreHealth)
	if err := t.s.Inventory.Consume(name); err != nil {
		return err
	}

	t.s.State = StatePlayerTurn
	t.emit(Event{
		Kind:    EventItemUsed,
		Message: fmt.Sprintf("You used a %s! Restored %d HP.", name, def.Effect.RestoreHealth),
		Subject: t.s.Player.Name,
		Amount:  t.s.Player.Health - before,
		Health:  t.s.Player.Health,
		Item:    name,
	})

	return t.enemyTurn(false)
}

func (t *turn) enemyTurn(guarding bool) error {
	view, err := t.playerView()
	if err != nil {
		return err
	}

	attack := engine.EffectiveAttack(t.s.Enemy)
	if t.s.Difficulty == entities.DifficultyEasy {
		attack /= 2
	}
	dmg := engine.MitigatedDamage(attack, view)
	if guarding {
		dmg /= 2
	}

	t.s.Player.Health = max(0, t.s.Player.Health-dmg)
	t.emit(Event{
		Kind:    EventHealthChanged,
		Message: fmt.Sprintf("%s attacks! You take %d damage.", t.s.Enemy.Name, dmg),
		Subject: t.s.Player.Name,
		Amount:  -dmg,
		Health:  t.s.Player.Health,
	})

	if !t.s.Player.IsAlive() {
		t.say("You were defeated...")
		t.end(OutcomeDefeat)
		return nil
	}

	t.s.State = StatePlayerTurn
	t.say("Choose your action.")
	return nil
}

func (t *turn) victory() error {
	t.say("Victory! You defeated the enemy.")

	levels, err := t.m.rules.GainExperience(&t.s.Player, t.m.victoryExperience)
	if err != nil {
		return err
	}
	if levels > 0 {
		t.emit(Event{
			Kind: EventLevelUp,
			Message: fmt.Sprintf("Level up! You are now level %d. Attribute points: %d",
				t.s.Player.Level, t.s.Player.AttributePoints),
			Subject: t.s.Player.Name,
			Amount:  levels,
			Level:   t.s.Player.Level,
		})
	}

	if t.s.Drop != "" {
		if err := t.s.Inventory.Add(t.s.Drop, 1); err != nil {
			return err
		}
		t.emit(Event{
			Kind:    EventItemFound,
			Message: fmt.Sprintf("You found: %s!", t.s.Drop),
			Subject: t.s.Player.Name,
			Amount:  1,
			Item:    t.s.Drop,
		})
	}

	if levels > 0 && t.s.Player.AttributePoints > 0 {
		t.s.State = StateAttributeSpend
		t.s.Outcome = OutcomeVictory
		return nil
	}

	t.end(OutcomeVictory)
	return nil
}

func (t *turn) end(outcome Outcome) {
	t.s.State = StateBattleOver
	t.s.Outcome = outcome
	t.emit(Event{
		Kind:    EventBattleEnded,
		Message: endMessage(outcome),
		Subject: t.s.Player.Name,
		Outcome: outcome,
	})
}

func (t *turn) playerView() (entities.Character, error) {
	return engine.CombatView(t.s.Player, t.m.items)
}

func endMessage(outcome Outcome) string {
	switch outcome {
	case OutcomeVictory:
		return "The battle is won."
	case OutcomeDefeat:
		return "The battle is lost."
	case OutcomeFled:
		return "You left the battle."
	default:
		return "The battle is over."
	}
}

func narrative(format string, args ...interface{}) Event {
	return Event{Kind: EventNarrative, Message: fmt.Sprintf(format, args...)}
}

func invalidAction(state State, a Action) error {
	return errors.InvalidActionf("%s is not allowed during %s", a.Kind, state).
		WithMeta("state", string(state)).
		WithMeta("action", string(a.Kind))
}
