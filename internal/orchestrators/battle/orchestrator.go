// Package battle implements the battle orchestrator. It loads the saved game,
// runs the battle state machine one action at a time and writes the results
// back to the game as soon as the battle is won or over.
package battle

//go:generate mockgen -destination=mock/mock_service.go -package=battlemock github.com/KirkDiggler/rpg-quest/internal/orchestrators/battle Service

import (
	"context"
	"log/slog"

	"github.com/KirkDiggler/rpg-toolkit/events"

	battlemachine "github.com/KirkDiggler/rpg-quest/internal/battle"
	"github.com/KirkDiggler/rpg-quest/internal/entities"
	"github.com/KirkDiggler/rpg-quest/internal/errors"
	"github.com/KirkDiggler/rpg-quest/internal/pkg/idgen"
	"github.com/KirkDiggler/rpg-quest/internal/repositories/battlesession"
	"github.com/KirkDiggler/rpg-quest/internal/repositories/gamestate"
)

// Service defines the interface for battle operations
type Service interface {
	// StartBattle opens a battle for a game that is not already fighting
	StartBattle(ctx context.Context, input *StartBattleInput) (*StartBattleOutput, error)

	// SubmitAction applies one player action to a battle
	SubmitAction(ctx context.Context, input *SubmitActionInput) (*SubmitActionOutput, error)

	// GetBattle returns the current state of a battle
	GetBattle(ctx context.Context, input *GetBattleInput) (*GetBattleOutput, error)
}

// EnemyTable resolves enemies by name. *catalog.Catalog satisfies it.
type EnemyTable interface {
	Enemy(name string) (entities.EnemyDefinition, bool)
	DefaultEnemy() entities.EnemyDefinition
}

// Machine runs battle turns. *battle.Machine satisfies it.
type Machine interface {
	Start(input battlemachine.StartInput) (battlemachine.Session, []battlemachine.Event, error)
	Submit(s battlemachine.Session, a battlemachine.Action) (battlemachine.Session, []battlemachine.Event, error)
}

// Config holds the dependencies for the battle orchestrator
type Config struct {
	GameRepo    gamestate.Repository
	SessionRepo battlesession.Repository
	Machine     Machine
	Enemies     EnemyTable
	IDGenerator idgen.Generator
	EventBus    events.EventBus
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.GameRepo == nil {
		vb.RequiredField("GameRepo")
	}
	if c.SessionRepo == nil {
		vb.RequiredField("SessionRepo")
	}
	if c.Machine == nil {
		vb.RequiredField("Machine")
	}
	if c.Enemies == nil {
		vb.RequiredField("Enemies")
	}
	if c.IDGenerator == nil {
		vb.RequiredField("IDGenerator")
	}
	if c.EventBus == nil {
		vb.RequiredField("EventBus")
	}

	return vb.Build()
}

type orchestrator struct {
	gameRepo    gamestate.Repository
	sessionRepo battlesession.Repository
	machine     Machine
	enemies     EnemyTable
	idGen       idgen.Generator
	eventBus    events.EventBus
}

// NewOrchestrator creates a new battle orchestrator with the provided dependencies
func NewOrchestrator(cfg *Config) (Service, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &orchestrator{
		gameRepo:    cfg.GameRepo,
		sessionRepo: cfg.SessionRepo,
		machine:     cfg.Machine,
		enemies:     cfg.Enemies,
		idGen:       cfg.IDGenerator,
		eventBus:    cfg.EventBus,
	}, nil
}

func (o *orchestrator) StartBattle(ctx context.Context, input *StartBattleInput) (*StartBattleOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.GameID == "" {
		return nil, errors.InvalidArgument("game ID is required")
	}

	gameOut, err := o.gameRepo.Get(ctx, gamestate.GetInput{ID: input.GameID})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to load game %s", input.GameID)
	}
	game := gameOut.Game

	if game.InBattle() {
		if err := o.checkStaleBattle(ctx, game); err != nil {
			return nil, err
		}
	}

	enemy, ok := o.enemies.Enemy(input.EnemyName)
	if !ok {
		enemy = o.enemies.DefaultEnemy()
		if input.EnemyName != "" {
			slog.WarnContext(ctx, "unknown enemy, using default",
				"game_id", game.ID,
				"enemy", input.EnemyName,
				"default_enemy", enemy.Name,
			)
		}
	}

	session, evts, err := o.machine.Start(battlemachine.StartInput{
		ID:         o.idGen.Generate(),
		GameID:     game.ID,
		Player:     game.Player,
		Inventory:  game.Inventory,
		Enemy:      enemy,
		Difficulty: game.Difficulty,
	})
	if err != nil {
		return nil, err
	}

	saved, err := o.sessionRepo.Save(ctx, battlesession.SaveInput{Session: &session})
	if err != nil {
		return nil, errors.Wrap(err, "failed to save battle")
	}

	game.ActiveBattleID = session.ID
	updated, err := o.gameRepo.Update(ctx, gamestate.UpdateInput{Game: game})
	if err != nil {
		if _, delErr := o.sessionRepo.Delete(ctx, battlesession.DeleteInput{ID: session.ID}); delErr != nil {
			slog.ErrorContext(ctx, "failed to remove orphaned battle",
				"battle_id", session.ID,
				"error", delErr,
			)
		}
		return nil, errors.Wrap(err, "failed to lock game for battle")
	}

	slog.InfoContext(ctx, "battle started",
		"battle_id", session.ID,
		"game_id", game.ID,
		"enemy", enemy.Name,
		"difficulty", game.Difficulty,
	)

	o.publish(ctx, saved.Session, evts)

	return &StartBattleOutput{
		Session: saved.Session,
		Events:  evts,
		Game:    updated.Game,
	}, nil
}

// checkStaleBattle rejects the start when the game's battle is still live.
// A lock left behind by an expired session is cleared.
func (o *orchestrator) checkStaleBattle(ctx context.Context, game *entities.GameState) error {
	_, err := o.sessionRepo.Get(ctx, battlesession.GetInput{ID: game.ActiveBattleID})
	if err == nil {
		return errors.FailedPreconditionf("game %s is already in battle %s", game.ID, game.ActiveBattleID).
			WithMeta("battle_id", game.ActiveBattleID)
	}
	if !errors.IsNotFound(err) {
		return errors.Wrap(err, "failed to check active battle")
	}

	slog.WarnContext(ctx, "clearing expired battle lock",
		"game_id", game.ID,
		"battle_id", game.ActiveBattleID,
	)
	game.ActiveBattleID = ""
	return nil
}

func (o *orchestrator) SubmitAction(ctx context.Context, input *SubmitActionInput) (*SubmitActionOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.BattleID == "" {
		return nil, errors.InvalidArgument("battle ID is required")
	}

	sessionOut, err := o.sessionRepo.Get(ctx, battlesession.GetInput{ID: input.BattleID})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to load battle %s", input.BattleID)
	}

	next, evts, err := o.machine.Submit(*sessionOut.Session, input.Action)
	if err != nil {
		level := slog.LevelWarn
		if errors.IsRecoverable(err) {
			level = slog.LevelDebug
		}
		slog.Log(ctx, level, "battle action rejected",
			"battle_id", input.BattleID,
			"action", input.Action.Kind,
			"error", err,
		)
		return nil, err
	}

	output := &SubmitActionOutput{Events: evts}

	switch {
	case next.Over():
		game, err := o.finish(ctx, &next)
		if err != nil {
			return nil, err
		}
		output.Game = game
		output.Session = &next
	default:
		// A won battle waiting on attribute points keeps the game in step
		// after every action, so an expired session loses nothing.
		if next.Outcome == battlemachine.OutcomeVictory {
			game, err := o.writeBack(ctx, &next)
			if err != nil {
				return nil, err
			}
			output.Game = game
		}

		saved, err := o.sessionRepo.Save(ctx, battlesession.SaveInput{Session: &next})
		if err != nil {
			return nil, errors.Wrap(err, "failed to save battle")
		}
		output.Session = saved.Session
	}

	o.publish(ctx, output.Session, evts)

	return output, nil
}

// writeBack copies the battle results onto the saved game. Items used during
// the fight stay used whatever the outcome. The character only keeps what
// happened to it when it won. The battle lock is released once the session
// is over.
func (o *orchestrator) writeBack(ctx context.Context, session *battlemachine.Session) (*entities.GameState, error) {
	gameOut, err := o.gameRepo.Get(ctx, gamestate.GetInput{ID: session.GameID})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to load game %s", session.GameID)
	}
	game := gameOut.Game

	game.Inventory = session.Inventory.Clone()
	if session.Outcome == battlemachine.OutcomeVictory {
		game.Player = session.Player
	}
	if session.Over() && game.ActiveBattleID == session.ID {
		game.ActiveBattleID = ""
	}

	updated, err := o.gameRepo.Update(ctx, gamestate.UpdateInput{Game: game})
	if err != nil {
		return nil, errors.Wrap(err, "failed to save battle results")
	}
	return updated.Game, nil
}

// finish writes the final results back to the game and removes the session.
func (o *orchestrator) finish(ctx context.Context, session *battlemachine.Session) (*entities.GameState, error) {
	game, err := o.writeBack(ctx, session)
	if err != nil {
		return nil, err
	}

	if _, err := o.sessionRepo.Delete(ctx, battlesession.DeleteInput{ID: session.ID}); err != nil {
		slog.ErrorContext(ctx, "failed to delete finished battle",
			"battle_id", session.ID,
			"error", err,
		)
	}

	slog.InfoContext(ctx, "battle finished",
		"battle_id", session.ID,
		"game_id", game.ID,
		"outcome", session.Outcome,
		"turns", session.Turn,
		"level", game.Player.Level,
	)

	return game, nil
}

func (o *orchestrator) GetBattle(ctx context.Context, input *GetBattleInput) (*GetBattleOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.BattleID == "" {
		return nil, errors.InvalidArgument("battle ID is required")
	}

	out, err := o.sessionRepo.Get(ctx, battlesession.GetInput{ID: input.BattleID})
	if err != nil {
		return nil, err
	}

	return &GetBattleOutput{Session: out.Session}, nil
}

// publish sends every battle event to the bus. Delivery failures are logged
// and never fail the action.
func (o *orchestrator) publish(ctx context.Context, session *battlemachine.Session, evts []battlemachine.Event) {
	source := playerEntity(session.GameID)
	target := enemyEntity(session.ID)

	for _, e := range evts {
		event := events.NewGameEvent(EventType(e.Kind), source, target)
		event.Context().Set(EventKeyBattleID, session.ID)
		event.Context().Set(EventKeyMessage, e.Message)
		event.Context().Set(EventKeyPayload, e)

		if err := o.eventBus.Publish(ctx, event); err != nil {
			slog.WarnContext(ctx, "failed to publish battle event",
				"battle_id", session.ID,
				"event_type", EventType(e.Kind),
				"error", err,
			)
		}
	}
}
