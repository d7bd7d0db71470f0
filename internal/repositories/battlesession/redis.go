package battlesession

import (
	"context"
	"encoding/json"
	"time"

	"github.com/KirkDiggler/rpg-quest/internal/battle"
	"github.com/KirkDiggler/rpg-quest/internal/errors"
	"github.com/KirkDiggler/rpg-quest/internal/pkg/clock"
	redisclient "github.com/KirkDiggler/rpg-quest/internal/redis"
)

const (
	battleKeyPrefix = "battle:"

	// DefaultTTL is how long an untouched battle survives
	DefaultTTL = time.Hour

	errSessionNil     = "session cannot be nil"
	errSessionIDEmpty = "session ID cannot be empty"
)

type redisRepository struct {
	client redisclient.Client
	clock  clock.Clock
	ttl    time.Duration
}

// RedisConfig contains configuration for the Redis battle session repository.
type RedisConfig struct {
	Client redisclient.Client
	Clock  clock.Clock
	// TTL defaults to DefaultTTL when zero
	TTL time.Duration
}

// Validate validates the RedisConfig.
func (cfg *RedisConfig) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}

	vb := errors.NewValidationBuilder()
	if cfg.Client == nil {
		vb.RequiredField("Client")
	}
	if cfg.TTL < 0 {
		vb.Field("TTL", "must not be negative")
	}
	return vb.Build()
}

// NewRedis creates a new Redis-backed battle session repository
func NewRedis(cfg *RedisConfig) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	c := cfg.Clock
	if c == nil {
		c = clock.New()
	}

	ttl := cfg.TTL
	if ttl == 0 {
		ttl = DefaultTTL
	}

	return &redisRepository{
		client: cfg.Client,
		clock:  c,
		ttl:    ttl,
	}, nil
}

func (r *redisRepository) Save(ctx context.Context, input SaveInput) (*SaveOutput, error) {
	if input.Session == nil {
		return nil, errors.InvalidArgument(errSessionNil)
	}
	if input.Session.ID == "" {
		return nil, errors.InvalidArgument(errSessionIDEmpty)
	}

	session := *input.Session
	now := r.clock.Now()
	if session.CreatedAt.IsZero() {
		session.CreatedAt = now
	}
	session.UpdatedAt = now

	data, err := json.Marshal(&session)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal session")
	}

	if err := r.client.Set(ctx, battleKeyPrefix+session.ID, data, r.ttl).Err(); err != nil {
		return nil, errors.Wrapf(err, "failed to save session")
	}

	return &SaveOutput{Session: &session}, nil
}

func (r *redisRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errSessionIDEmpty)
	}

	result, err := r.client.Get(ctx, battleKeyPrefix+input.ID).Result()
	if err != nil {
		if errors.Is(err, redisclient.Nil) {
			return nil, errors.NotFoundf("battle with ID %s not found", input.ID)
		}
		return nil, errors.Wrapf(err, "failed to get session")
	}

	var session battle.Session
	if err := json.Unmarshal([]byte(result), &session); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal session")
	}

	return &GetOutput{Session: &session}, nil
}

func (r *redisRepository) Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errSessionIDEmpty)
	}

	if err := r.client.Del(ctx, battleKeyPrefix+input.ID).Err(); err != nil {
		return nil, errors.Wrapf(err, "failed to delete session")
	}

	return &DeleteOutput{}, nil
}
