package engine

import (
	"github.com/KirkDiggler/rpg-quest/internal/entities"
	"github.com/KirkDiggler/rpg-quest/internal/errors"
)

// Rules parameterises the progression curve.
type Rules struct {
	LevelCap        int
	PointsPerLevel  int
	ThresholdFactor int
	// StaminaHealth is the max health gained per stamina point spent.
	StaminaHealth int
}

// DefaultRules returns the standard curve: threshold 20 x level, 5 points per
// level, level cap 100.
func DefaultRules() Rules {
	return Rules{
		LevelCap:        100,
		PointsPerLevel:  5,
		ThresholdFactor: 20,
		StaminaHealth:   5,
	}
}

// Validate checks the rules are usable.
func (r Rules) Validate() error {
	vb := errors.NewValidationBuilder()

	if r.LevelCap < 1 {
		vb.Field("LevelCap", "must be at least 1")
	}
	if r.PointsPerLevel < 0 {
		vb.Field("PointsPerLevel", "must not be negative")
	}
	if r.ThresholdFactor < 1 {
		vb.Field("ThresholdFactor", "must be at least 1")
	}
	if r.StaminaHealth < 0 {
		vb.Field("StaminaHealth", "must not be negative")
	}

	return vb.Build()
}

// Threshold is the experience needed to advance from level.
func (r Rules) Threshold(level int) int {
	return r.ThresholdFactor * level
}

// GainExperience awards amount experience to c and applies every level-up it
// pays for. It returns the number of levels gained.
func (r Rules) GainExperience(c *entities.Character, amount int) (int, error) {
	if amount < 0 {
		return 0, errors.InvalidArgumentf("experience must not be negative, got %d", amount)
	}

	c.Experience += amount

	gained := 0
	for c.Level < r.LevelCap && c.Experience >= r.Threshold(c.Level) {
		c.Experience -= r.Threshold(c.Level)
		c.Level++
		c.AttributePoints += r.PointsPerLevel
		gained++
	}
	return gained, nil
}

// SpendPoint moves one unspent point into attr. Stamina also raises max and
// current health. With no points left c is unchanged and NoAttributePoints
// is returned.
func (r Rules) SpendPoint(c *entities.Character, attr entities.Attribute) error {
	if !attr.Valid() {
		return errors.InvalidArgumentf("unknown attribute %d", int(attr))
	}
	if c.AttributePoints <= 0 {
		return errors.NoAttributePoints("no attribute points to spend")
	}

	c.Attributes[attr]++
	c.AttributePoints--
	if attr == entities.Stamina {
		c.MaxHealth += r.StaminaHealth
		c.Health += r.StaminaHealth
	}
	return nil
}
