package gamestate

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/KirkDiggler/rpg-quest/internal/entities"
	"github.com/KirkDiggler/rpg-quest/internal/errors"
	"github.com/KirkDiggler/rpg-quest/internal/pkg/clock"
	redisclient "github.com/KirkDiggler/rpg-quest/internal/redis"
)

const (
	gameKeyPrefix = "game:"

	errGameNil     = "game cannot be nil"
	errGameIDEmpty = "game ID cannot be empty"
)

type redisRepository struct {
	client redisclient.Client
	clock  clock.Clock
}

// RedisConfig contains configuration for the Redis game state repository.
type RedisConfig struct {
	Client redisclient.Client
	Clock  clock.Clock
}

// Validate validates the RedisConfig.
func (cfg *RedisConfig) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if cfg.Client == nil {
		return errors.InvalidArgument("client cannot be nil")
	}
	return nil
}

// NewRedis creates a new Redis-backed game state repository
func NewRedis(cfg *RedisConfig) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	c := cfg.Clock
	if c == nil {
		c = clock.New()
	}

	return &redisRepository{
		client: cfg.Client,
		clock:  c,
	}, nil
}

func (r *redisRepository) Create(ctx context.Context, input CreateInput) (*CreateOutput, error) {
	if input.Game == nil {
		return nil, errors.InvalidArgument(errGameNil)
	}
	if input.Game.ID == "" {
		return nil, errors.InvalidArgument(errGameIDEmpty)
	}

	key := gameKeyPrefix + input.Game.ID

	exists, err := r.client.Exists(ctx, key).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to check existence")
	}
	if exists > 0 {
		return nil, errors.AlreadyExistsf("game with ID %s already exists", input.Game.ID)
	}

	game := *input.Game
	now := r.clock.Now()
	if game.CreatedAt.IsZero() {
		game.CreatedAt = now
	}
	game.UpdatedAt = now

	data, err := json.Marshal(&game)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal game")
	}

	if err := r.client.Set(ctx, key, data, 0).Err(); err != nil {
		return nil, errors.Wrapf(err, "failed to create game")
	}

	slog.DebugContext(ctx, "game created", "game_id", game.ID)

	return &CreateOutput{Game: &game}, nil
}

func (r *redisRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errGameIDEmpty)
	}

	game, err := r.load(ctx, input.ID)
	if err != nil {
		return nil, err
	}

	return &GetOutput{Game: game}, nil
}

func (r *redisRepository) Update(ctx context.Context, input UpdateInput) (*UpdateOutput, error) {
	if input.Game == nil {
		return nil, errors.InvalidArgument(errGameNil)
	}
	if input.Game.ID == "" {
		return nil, errors.InvalidArgument(errGameIDEmpty)
	}

	existing, err := r.load(ctx, input.Game.ID)
	if err != nil {
		return nil, err
	}

	game := *input.Game
	game.CreatedAt = existing.CreatedAt
	game.UpdatedAt = r.clock.Now()

	data, err := json.Marshal(&game)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal game")
	}

	// XX keeps a concurrent Delete from being undone by this write
	ok, err := r.client.SetXX(ctx, gameKeyPrefix+game.ID, data, 0).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to update game")
	}
	if !ok {
		return nil, errors.NotFoundf("game with ID %s not found", game.ID)
	}

	return &UpdateOutput{Game: &game}, nil
}

func (r *redisRepository) Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errGameIDEmpty)
	}

	deleted, err := r.client.Del(ctx, gameKeyPrefix+input.ID).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to delete game")
	}
	if deleted == 0 {
		return nil, errors.NotFoundf("game with ID %s not found", input.ID)
	}

	return &DeleteOutput{}, nil
}

func (r *redisRepository) load(ctx context.Context, id string) (*entities.GameState, error) {
	result, err := r.client.Get(ctx, gameKeyPrefix+id).Result()
	if err != nil {
		if errors.Is(err, redisclient.Nil) {
			return nil, errors.NotFoundf("game with ID %s not found", id)
		}
		return nil, errors.Wrapf(err, "failed to get game")
	}

	var game entities.GameState
	if err := json.Unmarshal([]byte(result), &game); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal game")
	}

	return &game, nil
}
