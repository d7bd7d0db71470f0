// Package v1alpha1 handles the rpgquest GameService grpc interface
package v1alpha1

import (
	"context"

	"github.com/KirkDiggler/rpg-quest/internal/errors"
	"github.com/KirkDiggler/rpg-quest/internal/orchestrators/battle"
	"github.com/KirkDiggler/rpg-quest/internal/orchestrators/game"
)

// HandlerConfig holds dependencies for the handler
type HandlerConfig struct {
	GameService   game.Service
	BattleService battle.Service
}

// Validate ensures all required dependencies are present
func (c *HandlerConfig) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.GameService == nil {
		vb.RequiredField("GameService")
	}
	if c.BattleService == nil {
		vb.RequiredField("BattleService")
	}

	return vb.Build()
}

var _ GameServiceServer = (*Handler)(nil)

// Handler implements GameServiceServer
type Handler struct {
	gameService   game.Service
	battleService battle.Service
}

// NewHandler creates a new handler with the given configuration
func NewHandler(cfg *HandlerConfig) (*Handler, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &Handler{
		gameService:   cfg.GameService,
		battleService: cfg.BattleService,
	}, nil
}

// CreateGame creates a character and a new saved game
func (h *Handler) CreateGame(
	ctx context.Context,
	req *CreateGameRequest,
) (*CreateGameResponse, error) {
	out, err := h.gameService.CreateGame(ctx, &game.CreateGameInput{
		Name:       req.Name,
		Class:      req.Class,
		Difficulty: req.Difficulty,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &CreateGameResponse{Game: toWireGame(out.Game)}, nil
}

// GetGame loads a saved game
func (h *Handler) GetGame(
	ctx context.Context,
	req *GetGameRequest,
) (*GetGameResponse, error) {
	if req.GameID == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("game_id is required"))
	}

	out, err := h.gameService.GetGame(ctx, &game.GetGameInput{GameID: req.GameID})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &GetGameResponse{Game: toWireGame(out.Game)}, nil
}

// Travel moves to the next or previous city
func (h *Handler) Travel(
	ctx context.Context,
	req *TravelRequest,
) (*TravelResponse, error) {
	if req.GameID == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("game_id is required"))
	}

	out, err := h.gameService.Travel(ctx, &game.TravelInput{
		GameID:    req.GameID,
		Direction: game.Direction(req.Direction),
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	resp := &TravelResponse{Game: toWireGame(out.Game)}
	if out.Battle != nil {
		resp.Battle = toWireBattle(out.Battle)
		resp.Events = toWireEvents(out.Events)
	}
	return resp, nil
}

// Equip puts an inventory item into a slot
func (h *Handler) Equip(
	ctx context.Context,
	req *EquipRequest,
) (*EquipResponse, error) {
	if req.GameID == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("game_id is required"))
	}

	out, err := h.gameService.Equip(ctx, &game.EquipInput{
		GameID: req.GameID,
		Slot:   req.Slot,
		Item:   req.Item,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &EquipResponse{
		Game:  toWireGame(out.Game),
		Stats: toWireStats(out.Stats),
	}, nil
}

// Unequip empties a slot
func (h *Handler) Unequip(
	ctx context.Context,
	req *UnequipRequest,
) (*UnequipResponse, error) {
	if req.GameID == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("game_id is required"))
	}

	out, err := h.gameService.Unequip(ctx, &game.UnequipInput{
		GameID: req.GameID,
		Slot:   req.Slot,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &UnequipResponse{
		Game:    toWireGame(out.Game),
		Removed: out.Removed,
		Stats:   toWireStats(out.Stats),
	}, nil
}

// SpendAttribute spends one attribute point outside of battle
func (h *Handler) SpendAttribute(
	ctx context.Context,
	req *SpendAttributeRequest,
) (*SpendAttributeResponse, error) {
	if req.GameID == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("game_id is required"))
	}

	out, err := h.gameService.SpendAttribute(ctx, &game.SpendAttributeInput{
		GameID:    req.GameID,
		Attribute: req.Attribute,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &SpendAttributeResponse{
		Game:  toWireGame(out.Game),
		Spent: out.Spent,
	}, nil
}

// GetStats returns the stat sheet
func (h *Handler) GetStats(
	ctx context.Context,
	req *GetStatsRequest,
) (*GetStatsResponse, error) {
	if req.GameID == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("game_id is required"))
	}

	out, err := h.gameService.GetStats(ctx, &game.GetStatsInput{GameID: req.GameID})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &GetStatsResponse{Stats: toWireStats(out.Stats)}, nil
}

// StartBattle opens a battle against the named enemy
func (h *Handler) StartBattle(
	ctx context.Context,
	req *StartBattleRequest,
) (*StartBattleResponse, error) {
	if req.GameID == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("game_id is required"))
	}

	out, err := h.battleService.StartBattle(ctx, &battle.StartBattleInput{
		GameID:    req.GameID,
		EnemyName: req.Enemy,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &StartBattleResponse{
		Battle: toWireBattle(out.Session),
		Events: toWireEvents(out.Events),
	}, nil
}

// SubmitAction applies one player action to a battle
func (h *Handler) SubmitAction(
	ctx context.Context,
	req *SubmitActionRequest,
) (*SubmitActionResponse, error) {
	if req.BattleID == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("battle_id is required"))
	}

	action, err := toAction(req)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	out, err := h.battleService.SubmitAction(ctx, &battle.SubmitActionInput{
		BattleID: req.BattleID,
		Action:   action,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &SubmitActionResponse{
		Battle: toWireBattle(out.Session),
		Events: toWireEvents(out.Events),
		Game:   toWireGame(out.Game),
	}, nil
}

// GetBattle returns a battle snapshot
func (h *Handler) GetBattle(
	ctx context.Context,
	req *GetBattleRequest,
) (*GetBattleResponse, error) {
	if req.BattleID == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("battle_id is required"))
	}

	out, err := h.battleService.GetBattle(ctx, &battle.GetBattleInput{BattleID: req.BattleID})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &GetBattleResponse{Battle: toWireBattle(out.Session)}, nil
}
