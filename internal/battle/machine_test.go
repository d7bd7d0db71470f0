package battle_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-quest/internal/battle"
	"github.com/KirkDiggler/rpg-quest/internal/catalog"
	"github.com/KirkDiggler/rpg-quest/internal/engine"
	"github.com/KirkDiggler/rpg-quest/internal/entities"
	"github.com/KirkDiggler/rpg-quest/internal/errors"
	"github.com/KirkDiggler/rpg-quest/internal/inventory"
	"github.com/KirkDiggler/rpg-quest/internal/pkg/random"
)

type MachineTestSuite struct {
	suite.Suite
	catalog *catalog.Catalog
	random  *random.Fixed
	machine *battle.Machine
	hero    entities.Character
	slime   entities.EnemyDefinition
}

func TestMachineSuite(t *testing.T) {
	suite.Run(t, new(MachineTestSuite))
}

func (s *MachineTestSuite) SetupTest() {
	s.catalog = catalog.MustDefault()
	s.random = random.NewFixed(0.9)
	s.machine = s.newMachine(s.random)
	s.hero = s.catalog.NewHero("Hero")
	s.slime = s.catalog.DefaultEnemy()
}

func (s *MachineTestSuite) newMachine(src random.Source) *battle.Machine {
	m, err := battle.NewMachine(&battle.Config{
		Items:             s.catalog,
		Random:            src,
		Rules:             engine.DefaultRules(),
		VictoryExperience: battle.DefaultVictoryExperience,
		FleeChance:        battle.DefaultFleeChance,
	})
	s.Require().NoError(err)
	return m
}

func (s *MachineTestSuite) start(player entities.Character, enemy entities.EnemyDefinition, difficulty entities.Difficulty) battle.Session {
	session, events, err := s.machine.Start(battle.StartInput{
		ID:         "battle-1",
		GameID:     "game-1",
		Player:     player,
		Inventory:  inventory.New(inventory.Entry{Name: "Potion", Count: 2}),
		Enemy:      enemy,
		Difficulty: difficulty,
	})
	s.Require().NoError(err)
	s.Require().Len(events, 1)
	s.Equal("A wild "+enemy.Name+" appears!", events[0].Message)
	s.Equal(battle.StatePlayerTurn, session.State)
	return session
}

func messages(events []battle.Event) []string {
	out := make([]string, 0, len(events))
	for _, e := range events {
		out = append(out, e.Message)
	}
	return out
}

func (s *MachineTestSuite) TestNewMachineValidation() {
	_, err := battle.NewMachine(&battle.Config{})
	s.Error(err)
	s.True(errors.IsInvalidArgument(err))

	_, err = battle.NewMachine(nil)
	s.Error(err)
}

func (s *MachineTestSuite) TestAttackDamage() {
	player := s.hero
	player.Attributes[entities.Strength] = 5
	enemy := entities.EnemyDefinition{Name: "Dummy", Health: 50, MaxHealth: 50, Attack: 1, Defense: 1}
	enemy.Attributes[entities.Defence] = 1

	session := s.start(player, enemy, entities.DifficultyMedium)
	next, events, err := s.machine.Submit(session, battle.Attack())
	s.Require().NoError(err)

	s.Equal("You attack! Dummy takes 9 damage.", events[0].Message)
	s.Equal(battle.EventHealthChanged, events[0].Kind)
	s.Equal(41, next.Enemy.Health)
	s.Equal(battle.StatePlayerTurn, next.State)
	s.Equal(1, next.Turn)
}

func (s *MachineTestSuite) TestSubmitDoesNotMutateInput() {
	session := s.start(s.hero, s.slime, entities.DifficultyMedium)
	before := session
	beforeInventory := session.Inventory.Clone()

	_, _, err := s.machine.Submit(session, battle.UseItem("Potion"))
	s.Require().NoError(err)

	s.Equal(before.Player, session.Player)
	s.Equal(before.Enemy, session.Enemy)
	s.Equal(beforeInventory, session.Inventory)
}

func (s *MachineTestSuite) TestEnemyTurnDamage() {
	// Slime effective attack 5+1=6, hero effective defence 3+2=5
	testCases := []struct {
		name       string
		difficulty entities.Difficulty
		action     battle.Action
		damage     int
	}{
		{name: "medium", difficulty: entities.DifficultyMedium, action: battle.Attack(), damage: 1},
		{name: "easy halves attack then floors at one", difficulty: entities.DifficultyEasy, action: battle.Attack(), damage: 1},
		{name: "guard halves after the floor", difficulty: entities.DifficultyMedium, action: battle.Defend(), damage: 0},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			session := s.start(s.hero, s.slime, tc.difficulty)
			next, _, err := s.machine.Submit(session, tc.action)
			s.Require().NoError(err)
			s.Equal(30-tc.damage, next.Player.Health)
		})
	}
}

func (s *MachineTestSuite) TestGuardedHitKeepsZeroAmount() {
	session := s.start(s.hero, s.slime, entities.DifficultyMedium)
	_, events, err := s.machine.Submit(session, battle.Defend())
	s.Require().NoError(err)

	hit := events[1]
	s.Equal(battle.EventHealthChanged, hit.Kind)
	s.Zero(hit.Amount)

	data, err := json.Marshal(hit)
	s.Require().NoError(err)
	s.Contains(string(data), `"amount":0`)
	s.Contains(string(data), `"health":30`)
}

func (s *MachineTestSuite) TestEnemyTurnWithHeavyHitter() {
	ogre := entities.EnemyDefinition{Name: "Ogre", Health: 100, MaxHealth: 100, Attack: 20, Defense: 50}
	ogre.Attributes[entities.Strength] = 4

	s.Run("normal", func() {
		session := s.start(s.hero, ogre, entities.DifficultyHard)
		next, events, err := s.machine.Submit(session, battle.Attack())
		s.Require().NoError(err)
		// 22 - 5
		s.Equal(13, next.Player.Health)
		s.Contains(messages(events), "Ogre attacks! You take 17 damage.")
		s.Equal("Choose your action.", events[len(events)-1].Message)
	})

	s.Run("easy", func() {
		session := s.start(s.hero, ogre, entities.DifficultyEasy)
		next, _, err := s.machine.Submit(session, battle.Attack())
		s.Require().NoError(err)
		// floor(22/2) - 5
		s.Equal(24, next.Player.Health)
	})

	s.Run("guarded", func() {
		session := s.start(s.hero, ogre, entities.DifficultyHard)
		next, events, err := s.machine.Submit(session, battle.Defend())
		s.Require().NoError(err)
		s.Equal("You brace for the next attack!", events[0].Message)
		s.Equal(22, next.Player.Health)
	})
}

func (s *MachineTestSuite) TestEquipmentCountsInBattle() {
	player, err := engine.Equip(s.hero, entities.SlotWeapon1, s.catalog.Item("Iron Sword"))
	s.Require().NoError(err)

	session := s.start(player, s.slime, entities.DifficultyMedium)
	next, _, err := s.machine.Submit(session, battle.Attack())
	s.Require().NoError(err)

	// (8+5) + 2 - (1+0)
	s.Equal(18-14, next.Enemy.Health)
	s.Equal(8, next.Player.Attack)
}

func (s *MachineTestSuite) TestRun() {
	s.Run("low draw escapes", func() {
		m := s.newMachine(random.NewFixed(0.3))
		session := s.start(s.hero, s.slime, entities.DifficultyMedium)

		next, events, err := m.Submit(session, battle.Run())
		s.Require().NoError(err)

		s.Equal(battle.StateBattleOver, next.State)
		s.Equal(battle.OutcomeFled, next.Outcome)
		s.Equal(30, next.Player.Health)
		s.Equal([]string{"You attempt to run...", "You escaped!"}, messages(events)[:2])
		s.Zero(next.Player.Experience)
		s.Equal(2, next.Inventory.Count("Potion"))
	})

	s.Run("high draw fails and the enemy acts", func() {
		m := s.newMachine(random.NewFixed(0.7))
		session := s.start(s.hero, s.slime, entities.DifficultyMedium)

		next, events, err := m.Submit(session, battle.Run())
		s.Require().NoError(err)

		s.Equal(battle.StatePlayerTurn, next.State)
		s.Equal(29, next.Player.Health)
		s.Equal([]string{
			"You attempt to run...",
			"Couldn't escape!",
			"Slime attacks! You take 1 damage.",
			"Choose your action.",
		}, messages(events))
	})
}

func (s *MachineTestSuite) TestMenusDoNotConsumeTurn() {
	session := s.start(s.hero, s.slime, entities.DifficultyMedium)

	next, events, err := s.machine.Submit(session, battle.Spells())
	s.Require().NoError(err)
	s.Equal([]string{"No spells learned yet."}, messages(events))
	s.Equal(session.Player, next.Player)
	s.Equal(battle.StatePlayerTurn, next.State)

	next, events, err = s.machine.Submit(next, battle.Abilities())
	s.Require().NoError(err)
	s.Equal([]string{"No abilities unlocked yet."}, messages(events))

	next, _, err = s.machine.Submit(next, battle.OpenItems())
	s.Require().NoError(err)
	s.Equal(battle.StateItemMenu, next.State)

	next, events, err = s.machine.Submit(next, battle.Cancel())
	s.Require().NoError(err)
	s.Equal([]string{"Item use cancelled."}, messages(events))
	s.Equal(battle.StatePlayerTurn, next.State)
	s.Equal(30, next.Player.Health)
	s.Equal(2, next.Inventory.Count("Potion"))
	s.Zero(next.Turn)
}

func (s *MachineTestSuite) TestItemMenuWithoutUsableItems() {
	session := s.start(s.hero, s.slime, entities.DifficultyMedium)
	session.Inventory = inventory.New(inventory.Entry{Name: "Mana Herb", Count: 3})

	next, events, err := s.machine.Submit(session, battle.OpenItems())
	s.Require().NoError(err)

	s.Equal([]string{"No usable items."}, messages(events))
	s.Equal(battle.StatePlayerTurn, next.State)
}

func (s *MachineTestSuite) TestUsePotion() {
	player := s.hero
	player.Health = 5
	session := s.start(player, s.slime, entities.DifficultyMedium)

	next, _, err := s.machine.Submit(session, battle.OpenItems())
	s.Require().NoError(err)
	next, events, err := s.machine.Submit(next, battle.UseItem("Potion"))
	s.Require().NoError(err)

	s.Equal(battle.EventItemUsed, events[0].Kind)
	s.Equal("You used a Potion! Restored 20 HP.", events[0].Message)
	// healed to 25, then the slime hits for 1
	s.Equal(24, next.Player.Health)
	s.Equal(1, next.Inventory.Count("Potion"))
	s.Equal(battle.StatePlayerTurn, next.State)
}

func (s *MachineTestSuite) TestHealIsCappedAtMax() {
	player := s.hero
	player.Health = 25
	session := s.start(player, s.slime, entities.DifficultyMedium)

	next, events, err := s.machine.Submit(session, battle.UseItem("Potion"))
	s.Require().NoError(err)

	s.Equal(5, events[0].Amount)
	s.Equal(29, next.Player.Health)
}

func (s *MachineTestSuite) TestUseUnavailableItem() {
	session := s.start(s.hero, s.slime, entities.DifficultyMedium)
	session.Inventory = inventory.New(inventory.Entry{Name: "Potion", Count: 1}, inventory.Entry{Name: "Mana Herb", Count: 1})

	next, _, err := s.machine.Submit(session, battle.UseItem("Potion"))
	s.Require().NoError(err)

	for _, item := range []string{"Potion", "Mana Herb", "Elixir"} {
		after, events, err := s.machine.Submit(next, battle.UseItem(item))
		s.True(errors.IsItemUnavailable(err), item)
		s.Nil(events)
		s.Equal(next, after)
	}
}

func (s *MachineTestSuite) TestInvalidActions() {
	session := s.start(s.hero, s.slime, entities.DifficultyMedium)

	testCases := []struct {
		name   string
		state  battle.State
		action battle.Action
	}{
		{name: "cancel outside menu", state: battle.StatePlayerTurn, action: battle.Cancel()},
		{name: "spend outside level up", state: battle.StatePlayerTurn, action: battle.Spend(entities.Stamina)},
		{name: "attack from item menu", state: battle.StateItemMenu, action: battle.Attack()},
		{name: "run during spend", state: battle.StateAttributeSpend, action: battle.Run()},
		{name: "anything after the battle", state: battle.StateBattleOver, action: battle.Attack()},
		{name: "unknown kind", state: battle.StatePlayerTurn, action: battle.Action{Kind: "dance"}},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			in := session
			in.State = tc.state
			out, events, err := s.machine.Submit(in, tc.action)
			s.True(errors.IsInvalidAction(err))
			s.Nil(events)
			s.Equal(in, out)
		})
	}
}

func (s *MachineTestSuite) TestVictoryWithoutLevelUp() {
	weak := s.slime
	weak.Health = 1
	session := s.start(s.hero, weak, entities.DifficultyMedium)

	next, events, err := s.machine.Submit(session, battle.Attack())
	s.Require().NoError(err)

	s.Equal(battle.StateBattleOver, next.State)
	s.Equal(battle.OutcomeVictory, next.Outcome)
	s.Equal(10, next.Player.Experience)
	s.Equal(3, next.Inventory.Count("Potion"))
	s.Equal([]string{
		"You attack! Slime takes 9 damage.",
		"Victory! You defeated the enemy.",
		"You found: Potion!",
		"The battle is won.",
	}, messages(events))
	s.Equal(0, next.Enemy.Health)
}

func (s *MachineTestSuite) TestVictoryWithLevelUpEntersAttributeSpend() {
	player := s.hero
	player.Experience = 15
	weak := s.catalog.Enemies()[1]
	weak.Health = 1
	session := s.start(player, weak, entities.DifficultyMedium)

	next, events, err := s.machine.Submit(session, battle.Attack())
	s.Require().NoError(err)

	s.Equal(battle.StateAttributeSpend, next.State)
	s.Equal(2, next.Player.Level)
	s.Equal(5, next.Player.AttributePoints)
	s.Equal(5, next.Player.Experience)
	s.Equal(1, next.Inventory.Count("Iron Sword"))

	kinds := make([]battle.EventKind, 0, len(events))
	for _, e := range events {
		kinds = append(kinds, e.Kind)
	}
	s.Equal([]battle.EventKind{
		battle.EventHealthChanged,
		battle.EventNarrative,
		battle.EventLevelUp,
		battle.EventItemFound,
	}, kinds)
	s.Equal("Level up! You are now level 2. Attribute points: 5", events[2].Message)

	for i := 0; i < 4; i++ {
		next, _, err = s.machine.Submit(next, battle.Spend(entities.Stamina))
		s.Require().NoError(err)
		s.Equal(battle.StateAttributeSpend, next.State)
	}

	next, events, err = s.machine.Submit(next, battle.Spend(entities.Strength))
	s.Require().NoError(err)

	s.Equal(battle.StateBattleOver, next.State)
	s.Equal(battle.OutcomeVictory, next.Outcome)
	s.Equal(50, next.Player.MaxHealth)
	s.Equal(6, next.Player.Attribute(entities.Strength))
	s.Equal(9, next.Player.Attribute(entities.Stamina))
	s.Zero(next.Player.AttributePoints)
	s.Equal(1, next.Turn)
	s.Contains(messages(events), "Attribute points spent! Continue your adventure.")
	s.Equal(battle.EventBattleEnded, events[len(events)-1].Kind)
}

func (s *MachineTestSuite) TestDefeat() {
	ogre := entities.EnemyDefinition{Name: "Ogre", Health: 100, MaxHealth: 100, Attack: 60, Defense: 50}
	player := s.hero
	player.Health = 10
	session := s.start(player, ogre, entities.DifficultyMedium)

	next, events, err := s.machine.Submit(session, battle.Attack())
	s.Require().NoError(err)

	s.Equal(battle.StateBattleOver, next.State)
	s.Equal(battle.OutcomeDefeat, next.Outcome)
	s.Zero(next.Player.Health)
	s.Zero(next.Player.Experience)
	s.Contains(messages(events), "You were defeated...")
}

func (s *MachineTestSuite) TestStartRejectsFallenPlayer() {
	player := s.hero
	player.Health = 0

	_, _, err := s.machine.Start(battle.StartInput{Player: player, Enemy: s.slime})
	s.True(errors.IsFailedPrecondition(err))
}

func TestParseActionKind(t *testing.T) {
	for label, expected := range map[string]battle.ActionKind{
		"Attack":   battle.ActionAttack,
		"use item": battle.ActionUseItem,
		"SPEND":    battle.ActionSpend,
	} {
		kind, ok := battle.ParseActionKind(label)
		if !ok || kind != expected {
			t.Errorf("ParseActionKind(%q) = %q, %v", label, kind, ok)
		}
	}

	if _, ok := battle.ParseActionKind("dance"); ok {
		t.Error("expected dance to be rejected")
	}
}
