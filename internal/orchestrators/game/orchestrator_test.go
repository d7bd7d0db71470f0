package game_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	battlemachine "github.com/KirkDiggler/rpg-quest/internal/battle"
	"github.com/KirkDiggler/rpg-quest/internal/catalog"
	"github.com/KirkDiggler/rpg-quest/internal/engine"
	"github.com/KirkDiggler/rpg-quest/internal/entities"
	"github.com/KirkDiggler/rpg-quest/internal/errors"
	"github.com/KirkDiggler/rpg-quest/internal/orchestrators/battle"
	battlemock "github.com/KirkDiggler/rpg-quest/internal/orchestrators/battle/mock"
	"github.com/KirkDiggler/rpg-quest/internal/orchestrators/game"
	"github.com/KirkDiggler/rpg-quest/internal/pkg/idgen"
	"github.com/KirkDiggler/rpg-quest/internal/repositories/gamestate"
	"github.com/KirkDiggler/rpg-quest/internal/testutils"
)

type stubRoller struct {
	enemy entities.EnemyDefinition
	hit   bool
}

func (r *stubRoller) Roll() (entities.EnemyDefinition, bool, error) {
	return r.enemy, r.hit, nil
}

type OrchestratorTestSuite struct {
	suite.Suite
	ctx         context.Context
	ctrl        *gomock.Controller
	mockBattles *battlemock.MockService
	gameRepo    gamestate.Repository
	encounters  *stubRoller
	cleanup     func()
	service     game.Service
}

func TestOrchestratorSuite(t *testing.T) {
	suite.Run(t, new(OrchestratorTestSuite))
}

func (s *OrchestratorTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.ctrl = gomock.NewController(s.T())
	s.mockBattles = battlemock.NewMockService(s.ctrl)

	client, cleanup := testutils.CreateTestRedisClient(s.T())
	s.cleanup = cleanup

	var err error
	s.gameRepo, err = gamestate.NewRedis(&gamestate.RedisConfig{Client: client})
	s.Require().NoError(err)

	s.encounters = &stubRoller{}

	s.service, err = game.NewOrchestrator(&game.Config{
		GameRepo:    s.gameRepo,
		Battles:     s.mockBattles,
		Catalog:     catalog.MustDefault(),
		Encounters:  s.encounters,
		IDGenerator: idgen.NewSequential("game"),
		Rules:       engine.DefaultRules(),
	})
	s.Require().NoError(err)
}

func (s *OrchestratorTestSuite) TearDownTest() {
	s.ctrl.Finish()
	s.cleanup()
}

func (s *OrchestratorTestSuite) createGame() *entities.GameState {
	out, err := s.service.CreateGame(s.ctx, &game.CreateGameInput{
		Name:       "Aria",
		Class:      "Mage",
		Difficulty: "Easy",
	})
	s.Require().NoError(err)
	return out.Game
}

func (s *OrchestratorTestSuite) save(g *entities.GameState) {
	_, err := s.gameRepo.Update(s.ctx, gamestate.UpdateInput{Game: g})
	s.Require().NoError(err)
}

func (s *OrchestratorTestSuite) TestNewOrchestratorValidation() {
	_, err := game.NewOrchestrator(&game.Config{})
	s.Require().Error(err)
	s.Contains(err.Error(), "GameRepo: is required")
	s.Contains(err.Error(), "Rules:")
}

func (s *OrchestratorTestSuite) TestCreateGame() {
	g := s.createGame()

	s.Equal("game_1", g.ID)
	s.Equal("Aria", g.Player.Name)
	s.Equal(30, g.Player.Health)
	s.Equal(1, g.Player.Level)
	s.Equal(entities.DifficultyEasy, g.Difficulty)
	s.Equal("Mage", g.Class)
	s.Equal("Start Town", g.Location)
	s.Equal(5, g.Inventory.Count("Potion"))
	s.False(g.InBattle())

	got, err := s.service.GetGame(s.ctx, &game.GetGameInput{GameID: g.ID})
	s.Require().NoError(err)
	s.Equal(g.ID, got.Game.ID)
	s.Equal(g.Player, got.Game.Player)
	s.Equal(g.Inventory, got.Game.Inventory)
}

func (s *OrchestratorTestSuite) TestCreateGameValidation() {
	testCases := []struct {
		name     string
		input    *game.CreateGameInput
		contains string
	}{
		{
			name:     "empty name",
			input:    &game.CreateGameInput{Name: "  ", Class: "Warrior", Difficulty: "Hard"},
			contains: "name: is required",
		},
		{
			name:     "long name",
			input:    &game.CreateGameInput{Name: "Bartholomew the Bold", Class: "Warrior", Difficulty: "Hard"},
			contains: "name: must be no more than 12 characters",
		},
		{
			name:     "unknown class",
			input:    &game.CreateGameInput{Name: "Aria", Class: "Bard", Difficulty: "Hard"},
			contains: "class: must be one of: Warrior, Mage, Healer, Rogue",
		},
		{
			name:     "unknown difficulty",
			input:    &game.CreateGameInput{Name: "Aria", Class: "Rogue", Difficulty: "Nightmare"},
			contains: "difficulty: must be one of: Easy, Medium, Hard",
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			_, err := s.service.CreateGame(s.ctx, tc.input)
			s.Require().Error(err)
			s.True(errors.IsInvalidArgument(err))
			s.Contains(err.Error(), tc.contains)
		})
	}
}

func (s *OrchestratorTestSuite) TestCreateGameNormalizesLabels() {
	out, err := s.service.CreateGame(s.ctx, &game.CreateGameInput{Name: "Kai", Class: "rogue", Difficulty: "HARD"})
	s.Require().NoError(err)
	s.Equal("Rogue", out.Game.Class)
	s.Equal(entities.DifficultyHard, out.Game.Difficulty)
}

func (s *OrchestratorTestSuite) TestTravelWithoutEncounter() {
	g := s.createGame()

	out, err := s.service.Travel(s.ctx, &game.TravelInput{GameID: g.ID, Direction: game.DirectionPrevious})
	s.Require().NoError(err)
	s.Equal("Desert Outpost", out.Game.Location)
	s.Nil(out.Battle)

	out, err = s.service.Travel(s.ctx, &game.TravelInput{GameID: g.ID, Direction: game.DirectionNext})
	s.Require().NoError(err)
	s.Equal("Start Town", out.Game.Location)
}

func (s *OrchestratorTestSuite) TestTravelWithEncounter() {
	g := s.createGame()
	s.encounters.enemy = entities.EnemyDefinition{Name: "Goblin"}
	s.encounters.hit = true

	battleGame := *g
	battleGame.Location = "River City"
	battleGame.ActiveBattleID = "battle_1"
	s.mockBattles.EXPECT().
		StartBattle(s.ctx, &battle.StartBattleInput{GameID: g.ID, EnemyName: "Goblin"}).
		Return(&battle.StartBattleOutput{
			Session: &battlemachine.Session{ID: "battle_1", GameID: g.ID},
			Events:  []battlemachine.Event{{Kind: battlemachine.EventNarrative, Message: "A wild Goblin appears!"}},
			Game:    &battleGame,
		}, nil)

	out, err := s.service.Travel(s.ctx, &game.TravelInput{GameID: g.ID, Direction: game.DirectionNext})
	s.Require().NoError(err)

	s.Require().NotNil(out.Battle)
	s.Equal("battle_1", out.Battle.ID)
	s.Equal("A wild Goblin appears!", out.Events[0].Message)
	s.Equal("River City", out.Game.Location)
	s.True(out.Game.InBattle())
}

func (s *OrchestratorTestSuite) TestTravelRejectsUnknownDirection() {
	_, err := s.service.Travel(s.ctx, &game.TravelInput{GameID: "game_1", Direction: "up"})
	s.True(errors.IsInvalidArgument(err))
}

func (s *OrchestratorTestSuite) TestMutationsRefusedDuringBattle() {
	g := s.createGame()
	g.ActiveBattleID = "battle_7"
	s.save(g)

	s.mockBattles.EXPECT().
		GetBattle(s.ctx, &battle.GetBattleInput{BattleID: "battle_7"}).
		Return(&battle.GetBattleOutput{Session: &battlemachine.Session{ID: "battle_7"}}, nil).
		Times(3)

	_, err := s.service.Travel(s.ctx, &game.TravelInput{GameID: g.ID, Direction: game.DirectionNext})
	s.True(errors.IsFailedPrecondition(err))

	_, err = s.service.Equip(s.ctx, &game.EquipInput{GameID: g.ID, Slot: "Helmet", Item: "Iron Helmet"})
	s.True(errors.IsFailedPrecondition(err))

	_, err = s.service.SpendAttribute(s.ctx, &game.SpendAttributeInput{GameID: g.ID, Attribute: "stamina"})
	s.True(errors.IsFailedPrecondition(err))
}

func (s *OrchestratorTestSuite) TestExpiredBattleLockIsReleased() {
	g := s.createGame()
	g.ActiveBattleID = "battle_7"
	s.save(g)

	s.mockBattles.EXPECT().
		GetBattle(s.ctx, gomock.Any()).
		Return(nil, errors.NotFound("battle with ID battle_7 not found"))

	out, err := s.service.Travel(s.ctx, &game.TravelInput{GameID: g.ID, Direction: game.DirectionNext})
	s.Require().NoError(err)
	s.False(out.Game.InBattle())
}

func (s *OrchestratorTestSuite) TestEquipAndUnequip() {
	g := s.createGame()
	s.Require().NoError(g.Inventory.Add("Iron Sword", 1))
	s.Require().NoError(g.Inventory.Add("Ring of Power", 2))
	s.save(g)

	out, err := s.service.Equip(s.ctx, &game.EquipInput{GameID: g.ID, Slot: "Weapon 1", Item: "Iron Sword"})
	s.Require().NoError(err)
	s.Equal("Iron Sword", out.Game.Player.Equipment.Item(entities.SlotWeapon1))
	s.Equal(13, out.Stats.Attack)
	s.Equal(15, out.Stats.EffectiveAttack)

	_, err = s.service.Equip(s.ctx, &game.EquipInput{GameID: g.ID, Slot: "weapon 2", Item: "Iron Sword"})
	s.True(errors.IsItemUnavailable(err), "only one sword owned")

	_, err = s.service.Equip(s.ctx, &game.EquipInput{GameID: g.ID, Slot: "Accessory 1", Item: "Ring of Power"})
	s.Require().NoError(err)
	ringOut, err := s.service.Equip(s.ctx, &game.EquipInput{GameID: g.ID, Slot: "Accessory 3", Item: "Ring of Power"})
	s.Require().NoError(err)
	s.Equal(9, ringOut.Stats.Strength)

	un, err := s.service.Unequip(s.ctx, &game.UnequipInput{GameID: g.ID, Slot: "Weapon 1"})
	s.Require().NoError(err)
	s.Equal("Iron Sword", un.Removed)
	s.Equal(8, un.Stats.Attack)

	stats, err := s.service.GetStats(s.ctx, &game.GetStatsInput{GameID: g.ID})
	s.Require().NoError(err)
	s.Equal(9, stats.Stats.Strength)
	s.Equal(20, stats.Stats.NextLevel)
}

func (s *OrchestratorTestSuite) TestEquipErrors() {
	g := s.createGame()
	s.Require().NoError(g.Inventory.Add("Iron Helmet", 1))
	s.Require().NoError(g.Inventory.Add("Wooden Shield", 1))
	s.save(g)

	_, err := s.service.Equip(s.ctx, &game.EquipInput{GameID: g.ID, Slot: "Feet", Item: "Iron Helmet"})
	s.True(errors.IsInvalidArgument(err))

	_, err = s.service.Equip(s.ctx, &game.EquipInput{GameID: g.ID, Slot: "Helmet", Item: "Crown"})
	s.True(errors.IsNotFound(err))

	_, err = s.service.Equip(s.ctx, &game.EquipInput{GameID: g.ID, Slot: "Chest", Item: "Iron Helmet"})
	s.True(errors.IsInvalidArgument(err))

	_, err = s.service.Equip(s.ctx, &game.EquipInput{GameID: g.ID, Slot: "Helmet", Item: "Iron Chest"})
	s.True(errors.IsItemUnavailable(err))

	_, err = s.service.Equip(s.ctx, &game.EquipInput{GameID: g.ID, Slot: "Weapon 2", Item: "Wooden Shield"})
	s.Require().NoError(err)
	s.Require().NoError(g.Inventory.Add("Iron Sword", 1))

	_, err = s.service.Equip(s.ctx, &game.EquipInput{GameID: g.ID, Slot: "Weapon 2", Item: "Iron Sword"})
	s.True(errors.IsItemUnavailable(err), "sword was never saved to the inventory")
}

func (s *OrchestratorTestSuite) TestSpendAttribute() {
	g := s.createGame()

	out, err := s.service.SpendAttribute(s.ctx, &game.SpendAttributeInput{GameID: g.ID, Attribute: "Stamina"})
	s.Require().NoError(err)
	s.False(out.Spent)
	s.Equal(30, out.Game.Player.MaxHealth)

	g.Player.AttributePoints = 2
	s.save(g)

	out, err = s.service.SpendAttribute(s.ctx, &game.SpendAttributeInput{GameID: g.ID, Attribute: "Stamina"})
	s.Require().NoError(err)
	s.True(out.Spent)
	s.Equal(35, out.Game.Player.MaxHealth)
	s.Equal(35, out.Game.Player.Health)
	s.Equal(1, out.Game.Player.AttributePoints)

	got, err := s.service.GetGame(s.ctx, &game.GetGameInput{GameID: g.ID})
	s.Require().NoError(err)
	s.Equal(6, got.Game.Player.Attribute(entities.Stamina))

	_, err = s.service.SpendAttribute(s.ctx, &game.SpendAttributeInput{GameID: g.ID, Attribute: "luck"})
	s.True(errors.IsInvalidArgument(err))
}

func (s *OrchestratorTestSuite) TestGetGameMissing() {
	_, err := s.service.GetGame(s.ctx, &game.GetGameInput{GameID: "game_404"})
	s.True(errors.IsNotFound(err))

	_, err = s.service.GetStats(s.ctx, &game.GetStatsInput{})
	s.True(errors.IsInvalidArgument(err))
}
