// Package encounter decides whether a step on the world map runs into an
// enemy, and which one.
package encounter

import (
	"github.com/KirkDiggler/rpg-quest/internal/entities"
	"github.com/KirkDiggler/rpg-quest/internal/errors"
	"github.com/KirkDiggler/rpg-quest/internal/pkg/random"
)

// DefaultChance is the probability that a move triggers an encounter.
const DefaultChance = 0.8

// Config wires a Selector.
type Config struct {
	Enemies []entities.EnemyDefinition
	Random  random.Source
	Chance  float64
}

// Validate checks the config.
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if len(c.Enemies) == 0 {
		vb.RequiredField("Enemies")
	}
	if c.Random == nil {
		vb.RequiredField("Random")
	}
	if c.Chance < 0 || c.Chance > 1 {
		vb.Field("Chance", "must be between 0 and 1")
	}

	return vb.Build()
}

// Selector rolls encounters against a fixed enemy table.
type Selector struct {
	enemies []entities.EnemyDefinition
	random  random.Source
	chance  float64
}

// NewSelector creates a selector from cfg.
func NewSelector(cfg *Config) (*Selector, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	enemies := make([]entities.EnemyDefinition, len(cfg.Enemies))
	copy(enemies, cfg.Enemies)

	return &Selector{
		enemies: enemies,
		random:  cfg.Random,
		chance:  cfg.Chance,
	}, nil
}

// Roll draws once against the encounter chance and, on a hit, picks an enemy
// uniformly from the table.
func (s *Selector) Roll() (entities.EnemyDefinition, bool, error) {
	draw, err := s.random.Float64()
	if err != nil {
		return entities.EnemyDefinition{}, false, errors.Wrap(err, "failed to draw encounter chance")
	}
	if draw >= s.chance {
		return entities.EnemyDefinition{}, false, nil
	}

	i, err := s.random.Intn(len(s.enemies))
	if err != nil {
		return entities.EnemyDefinition{}, false, errors.Wrap(err, "failed to pick enemy")
	}
	return s.enemies[i], true, nil
}
