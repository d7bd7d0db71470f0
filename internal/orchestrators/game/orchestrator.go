// Package game implements the game orchestrator: character creation, world
// map travel, equipment and attribute allocation outside of battle.
package game

//go:generate mockgen -destination=mock/mock_service.go -package=gamemock github.com/KirkDiggler/rpg-quest/internal/orchestrators/game Service

import (
	"context"
	"log/slog"
	"strings"
	"unicode/utf8"

	"github.com/KirkDiggler/rpg-quest/internal/engine"
	"github.com/KirkDiggler/rpg-quest/internal/entities"
	"github.com/KirkDiggler/rpg-quest/internal/errors"
	"github.com/KirkDiggler/rpg-quest/internal/inventory"
	"github.com/KirkDiggler/rpg-quest/internal/orchestrators/battle"
	"github.com/KirkDiggler/rpg-quest/internal/pkg/idgen"
	"github.com/KirkDiggler/rpg-quest/internal/repositories/gamestate"
)

// MaxNameLength is the longest character name accepted at creation.
const MaxNameLength = 12

// Service defines the interface for game operations
type Service interface {
	// CreateGame creates a new character and saves it as a new game
	CreateGame(ctx context.Context, input *CreateGameInput) (*CreateGameOutput, error)

	// GetGame loads a saved game
	GetGame(ctx context.Context, input *GetGameInput) (*GetGameOutput, error)

	// Travel moves to a neighbouring city and may trigger a battle
	Travel(ctx context.Context, input *TravelInput) (*TravelOutput, error)

	// Equip puts an item from the inventory into an empty slot
	Equip(ctx context.Context, input *EquipInput) (*EquipOutput, error)

	// Unequip empties a slot
	Unequip(ctx context.Context, input *UnequipInput) (*UnequipOutput, error)

	// SpendAttribute spends one unspent attribute point
	SpendAttribute(ctx context.Context, input *SpendAttributeInput) (*SpendAttributeOutput, error)

	// GetStats returns the character sheet with equipment applied
	GetStats(ctx context.Context, input *GetStatsInput) (*GetStatsOutput, error)
}

// Catalog is the reference data the orchestrator needs. *catalog.Catalog
// satisfies it.
type Catalog interface {
	engine.ItemLookup
	Cities() []string
	ClassNames() []string
	NewHero(name string) entities.Character
	StartingInventory() inventory.Ledger
}

// EncounterRoller decides whether a move runs into an enemy.
// *encounter.Selector satisfies it.
type EncounterRoller interface {
	Roll() (entities.EnemyDefinition, bool, error)
}

// Config holds the dependencies for the game orchestrator
type Config struct {
	GameRepo    gamestate.Repository
	Battles     battle.Service
	Catalog     Catalog
	Encounters  EncounterRoller
	IDGenerator idgen.Generator
	Rules       engine.Rules
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.GameRepo == nil {
		vb.RequiredField("GameRepo")
	}
	if c.Battles == nil {
		vb.RequiredField("Battles")
	}
	if c.Catalog == nil {
		vb.RequiredField("Catalog")
	}
	if c.Encounters == nil {
		vb.RequiredField("Encounters")
	}
	if c.IDGenerator == nil {
		vb.RequiredField("IDGenerator")
	}
	if err := c.Rules.Validate(); err != nil {
		vb.Fieldf("Rules", "%s", errors.GetMessage(err))
	}

	return vb.Build()
}

type orchestrator struct {
	gameRepo   gamestate.Repository
	battles    battle.Service
	catalog    Catalog
	encounters EncounterRoller
	idGen      idgen.Generator
	rules      engine.Rules
}

// NewOrchestrator creates a new game orchestrator with the provided dependencies
func NewOrchestrator(cfg *Config) (Service, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &orchestrator{
		gameRepo:   cfg.GameRepo,
		battles:    cfg.Battles,
		catalog:    cfg.Catalog,
		encounters: cfg.Encounters,
		idGen:      cfg.IDGenerator,
		rules:      cfg.Rules,
	}, nil
}

func (o *orchestrator) CreateGame(ctx context.Context, input *CreateGameInput) (*CreateGameOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	name := strings.TrimSpace(input.Name)
	class, classOK := matchLabel(input.Class, o.catalog.ClassNames())
	difficulty, difficultyOK := matchLabel(input.Difficulty, entities.DifficultyLabels())

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("name", name, vb)
	if utf8.RuneCountInString(name) > MaxNameLength {
		vb.Fieldf("name", "must be no more than %d characters", MaxNameLength)
	}
	if !classOK {
		errors.ValidateEnum("class", input.Class, o.catalog.ClassNames(), vb)
	}
	if !difficultyOK {
		errors.ValidateEnum("difficulty", input.Difficulty, entities.DifficultyLabels(), vb)
	}
	if err := vb.Build(); err != nil {
		return nil, err
	}

	cities := o.catalog.Cities()
	game := &entities.GameState{
		ID:         o.idGen.Generate(),
		Player:     o.catalog.NewHero(name),
		Inventory:  o.catalog.StartingInventory(),
		Difficulty: entities.Difficulty(difficulty),
		Class:      class,
		Location:   cities[0],
	}

	out, err := o.gameRepo.Create(ctx, gamestate.CreateInput{Game: game})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create game")
	}

	slog.InfoContext(ctx, "game created",
		"game_id", game.ID,
		"name", name,
		"class", class,
		"difficulty", difficulty,
	)

	return &CreateGameOutput{Game: out.Game}, nil
}

func (o *orchestrator) GetGame(ctx context.Context, input *GetGameInput) (*GetGameOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	game, err := o.load(ctx, input.GameID)
	if err != nil {
		return nil, err
	}

	return &GetGameOutput{Game: game}, nil
}

func (o *orchestrator) Travel(ctx context.Context, input *TravelInput) (*TravelOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	var step int
	switch input.Direction {
	case DirectionNext:
		step = 1
	case DirectionPrevious:
		step = -1
	default:
		return nil, errors.InvalidArgumentf("direction must be %q or %q", DirectionNext, DirectionPrevious)
	}

	game, err := o.loadIdle(ctx, input.GameID)
	if err != nil {
		return nil, err
	}

	cities := o.catalog.Cities()
	from := 0
	for i, c := range cities {
		if c == game.Location {
			from = i
			break
		}
	}
	game.Location = cities[(from+step+len(cities))%len(cities)]

	updated, err := o.gameRepo.Update(ctx, gamestate.UpdateInput{Game: game})
	if err != nil {
		return nil, errors.Wrap(err, "failed to save location")
	}

	slog.DebugContext(ctx, "traveled",
		"game_id", game.ID,
		"from", cities[from],
		"to", game.Location,
	)

	output := &TravelOutput{Game: updated.Game}

	enemy, hit, err := o.encounters.Roll()
	if err != nil {
		return nil, errors.Wrap(err, "failed to roll encounter")
	}
	if !hit {
		return output, nil
	}

	started, err := o.battles.StartBattle(ctx, &battle.StartBattleInput{
		GameID:    game.ID,
		EnemyName: enemy.Name,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to start encounter")
	}

	output.Battle = started.Session
	output.Events = started.Events
	if started.Game != nil {
		output.Game = started.Game
	}

	return output, nil
}

func (o *orchestrator) Equip(ctx context.Context, input *EquipInput) (*EquipOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	slot, ok := entities.ParseSlot(input.Slot)
	if !ok {
		return nil, errors.InvalidArgumentf("unknown slot %q", input.Slot)
	}
	item := o.catalog.Item(input.Item)
	if item == nil {
		return nil, errors.NotFoundf("item %q not found", input.Item)
	}

	game, err := o.loadIdle(ctx, input.GameID)
	if err != nil {
		return nil, err
	}

	if game.Inventory.Count(item.Name) <= game.Player.Equipment.CountOf(item.Name) {
		return nil, errors.ItemUnavailablef("no spare %s in the inventory", item.Name).
			WithMeta("item", item.Name)
	}

	player, err := engine.Equip(game.Player, slot, item)
	if err != nil {
		return nil, err
	}
	game.Player = player

	updated, err := o.gameRepo.Update(ctx, gamestate.UpdateInput{Game: game})
	if err != nil {
		return nil, errors.Wrap(err, "failed to save equipment")
	}

	stats, err := o.stats(updated.Game.Player)
	if err != nil {
		return nil, err
	}

	slog.InfoContext(ctx, "item equipped",
		"game_id", game.ID,
		"slot", slot.String(),
		"item", item.Name,
	)

	return &EquipOutput{Game: updated.Game, Stats: stats}, nil
}

func (o *orchestrator) Unequip(ctx context.Context, input *UnequipInput) (*UnequipOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	slot, ok := entities.ParseSlot(input.Slot)
	if !ok {
		return nil, errors.InvalidArgumentf("unknown slot %q", input.Slot)
	}

	game, err := o.loadIdle(ctx, input.GameID)
	if err != nil {
		return nil, err
	}

	player, removed, err := engine.Unequip(game.Player, slot)
	if err != nil {
		return nil, err
	}
	game.Player = player

	if removed != "" {
		updated, err := o.gameRepo.Update(ctx, gamestate.UpdateInput{Game: game})
		if err != nil {
			return nil, errors.Wrap(err, "failed to save equipment")
		}
		game = updated.Game
	}

	stats, err := o.stats(game.Player)
	if err != nil {
		return nil, err
	}

	return &UnequipOutput{Game: game, Removed: removed, Stats: stats}, nil
}

func (o *orchestrator) SpendAttribute(ctx context.Context, input *SpendAttributeInput) (*SpendAttributeOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	attr, ok := entities.ParseAttribute(input.Attribute)
	if !ok {
		return nil, errors.InvalidArgumentf("unknown attribute %q", input.Attribute)
	}

	game, err := o.loadIdle(ctx, input.GameID)
	if err != nil {
		return nil, err
	}

	if err := o.rules.SpendPoint(&game.Player, attr); err != nil {
		if errors.IsNoAttributePoints(err) {
			return &SpendAttributeOutput{Game: game, Spent: false}, nil
		}
		return nil, err
	}

	updated, err := o.gameRepo.Update(ctx, gamestate.UpdateInput{Game: game})
	if err != nil {
		return nil, errors.Wrap(err, "failed to save attributes")
	}

	slog.InfoContext(ctx, "attribute point spent",
		"game_id", game.ID,
		"attribute", attr.String(),
		"remaining", game.Player.AttributePoints,
	)

	return &SpendAttributeOutput{Game: updated.Game, Spent: true}, nil
}

func (o *orchestrator) GetStats(ctx context.Context, input *GetStatsInput) (*GetStatsOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	game, err := o.load(ctx, input.GameID)
	if err != nil {
		return nil, err
	}

	stats, err := o.stats(game.Player)
	if err != nil {
		return nil, err
	}

	return &GetStatsOutput{Stats: stats}, nil
}

func (o *orchestrator) stats(c entities.Character) (*Stats, error) {
	block, err := engine.ComputeStats(c, o.catalog)
	if err != nil {
		return nil, err
	}
	view, err := engine.CombatView(c, o.catalog)
	if err != nil {
		return nil, err
	}

	return &Stats{
		StatBlock:        block,
		EffectiveAttack:  engine.EffectiveAttack(view),
		EffectiveDefence: engine.EffectiveDefence(view),
		Health:           c.Health,
		MaxHealth:        c.MaxHealth,
		Level:            c.Level,
		Experience:       c.Experience,
		NextLevel:        o.rules.Threshold(c.Level),
		AttributePoints:  c.AttributePoints,
	}, nil
}

func (o *orchestrator) load(ctx context.Context, gameID string) (*entities.GameState, error) {
	if gameID == "" {
		return nil, errors.InvalidArgument("game ID is required")
	}

	out, err := o.gameRepo.Get(ctx, gamestate.GetInput{ID: gameID})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to load game %s", gameID)
	}
	return out.Game, nil
}

// loadIdle loads a game that is about to be changed. A battle owns the
// player state while it runs, so changes are refused until it ends.
func (o *orchestrator) loadIdle(ctx context.Context, gameID string) (*entities.GameState, error) {
	game, err := o.load(ctx, gameID)
	if err != nil {
		return nil, err
	}
	if !game.InBattle() {
		return game, nil
	}

	_, err = o.battles.GetBattle(ctx, &battle.GetBattleInput{BattleID: game.ActiveBattleID})
	switch {
	case err == nil:
		return nil, errors.FailedPreconditionf("game %s is in battle %s", game.ID, game.ActiveBattleID).
			WithMeta("battle_id", game.ActiveBattleID)
	case errors.IsNotFound(err):
		// the battle expired; the next save releases the lock
		slog.WarnContext(ctx, "ignoring expired battle lock",
			"game_id", game.ID,
			"battle_id", game.ActiveBattleID,
		)
		game.ActiveBattleID = ""
		return game, nil
	default:
		return nil, errors.Wrap(err, "failed to check active battle")
	}
}

// matchLabel finds value in labels ignoring case and surrounding space and
// returns the canonical label.
func matchLabel(value string, labels []string) (string, bool) {
	value = strings.TrimSpace(value)
	for _, l := range labels {
		if strings.EqualFold(l, value) {
			return l, true
		}
	}
	return "", false
}
