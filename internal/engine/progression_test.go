package engine_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-quest/internal/catalog"
	"github.com/KirkDiggler/rpg-quest/internal/engine"
	"github.com/KirkDiggler/rpg-quest/internal/entities"
	"github.com/KirkDiggler/rpg-quest/internal/errors"
)

type ProgressionTestSuite struct {
	suite.Suite
	rules engine.Rules
	hero  entities.Character
}

func TestProgressionSuite(t *testing.T) {
	suite.Run(t, new(ProgressionTestSuite))
}

func (s *ProgressionTestSuite) SetupTest() {
	s.rules = engine.DefaultRules()
	s.hero = catalog.MustDefault().NewHero("Hero")
}

func (s *ProgressionTestSuite) TestDefaultRulesAreValid() {
	s.NoError(s.rules.Validate())
	s.Equal(20, s.rules.Threshold(1))
	s.Equal(60, s.rules.Threshold(3))

	s.Error(engine.Rules{}.Validate())
}

func (s *ProgressionTestSuite) TestZeroExperienceIsNoop() {
	before := s.hero
	gained, err := s.rules.GainExperience(&s.hero, 0)
	s.Require().NoError(err)
	s.Zero(gained)
	s.Equal(before, s.hero)
}

func (s *ProgressionTestSuite) TestMultiLevelAward() {
	gained, err := s.rules.GainExperience(&s.hero, 65)
	s.Require().NoError(err)

	s.Equal(2, gained)
	s.Equal(3, s.hero.Level)
	s.Equal(5, s.hero.Experience)
	s.Equal(10, s.hero.AttributePoints)
}

func (s *ProgressionTestSuite) TestExperienceBelowThresholdAccumulates() {
	gained, err := s.rules.GainExperience(&s.hero, 10)
	s.Require().NoError(err)
	s.Zero(gained)

	gained, err = s.rules.GainExperience(&s.hero, 10)
	s.Require().NoError(err)
	s.Equal(1, gained)
	s.Equal(2, s.hero.Level)
	s.Zero(s.hero.Experience)
}

func (s *ProgressionTestSuite) TestLevelCap() {
	s.hero.Level = s.rules.LevelCap - 1

	gained, err := s.rules.GainExperience(&s.hero, 1_000_000)
	s.Require().NoError(err)

	s.Equal(1, gained)
	s.Equal(s.rules.LevelCap, s.hero.Level)
	s.Equal(5, s.hero.AttributePoints)
}

func (s *ProgressionTestSuite) TestNegativeExperienceRejected() {
	_, err := s.rules.GainExperience(&s.hero, -1)
	s.True(errors.IsInvalidArgument(err))
}

func (s *ProgressionTestSuite) TestSpendStamina() {
	s.hero.AttributePoints = 5

	s.Require().NoError(s.rules.SpendPoint(&s.hero, entities.Stamina))

	s.Equal(6, s.hero.Attribute(entities.Stamina))
	s.Equal(35, s.hero.MaxHealth)
	s.Equal(35, s.hero.Health)
	s.Equal(4, s.hero.AttributePoints)
}

func (s *ProgressionTestSuite) TestSpendOtherAttributeLeavesHealth() {
	s.hero.AttributePoints = 1

	s.Require().NoError(s.rules.SpendPoint(&s.hero, entities.Strength))

	s.Equal(6, s.hero.Attribute(entities.Strength))
	s.Equal(30, s.hero.MaxHealth)
	s.Zero(s.hero.AttributePoints)
}

func (s *ProgressionTestSuite) TestSpendWithoutPointsIsNoop() {
	before := s.hero

	err := s.rules.SpendPoint(&s.hero, entities.Agility)

	s.True(errors.IsNoAttributePoints(err))
	s.Equal(before, s.hero)
}

func TestSpendKeepsInvariants(t *testing.T) {
	rules := engine.DefaultRules()
	hero := catalog.MustDefault().NewHero("Hero")
	_, err := rules.GainExperience(&hero, 500)
	require.NoError(t, err)

	for hero.AttributePoints > 0 {
		for _, attr := range entities.AllAttributes() {
			if hero.AttributePoints == 0 {
				break
			}
			require.NoError(t, rules.SpendPoint(&hero, attr))
		}
	}
	assert.NoError(t, hero.Validate())
	assert.Zero(t, hero.AttributePoints)
}
