// Package catalog holds the immutable reference data for rpg-quest: item
// definitions, the enemy table, the city ring, classes and the starting hero.
package catalog

import (
	_ "embed"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/KirkDiggler/rpg-quest/internal/entities"
	"github.com/KirkDiggler/rpg-quest/internal/errors"
	"github.com/KirkDiggler/rpg-quest/internal/inventory"
)

//go:embed catalog.yaml
var defaultData []byte

// Class is a selectable character class. Classes are labels only.
type Class struct {
	Name        string
	Description string
}

// Catalog is read-only after construction and safe for concurrent use.
type Catalog struct {
	items        map[string]*entities.ItemDefinition
	itemOrder    []string
	enemies      []entities.EnemyDefinition
	defaultEnemy string
	cities       []string
	classes      []Class
	hero         entities.Character
	starting     inventory.Ledger
}

// Default returns the catalog embedded in the binary.
func Default() (*Catalog, error) {
	return Parse(defaultData)
}

// MustDefault is Default for tests and wiring code that cannot proceed without it.
func MustDefault() *Catalog {
	c, err := Default()
	if err != nil {
		panic(err)
	}
	return c
}

// Item returns the definition for name, or nil when unknown.
func (c *Catalog) Item(name string) *entities.ItemDefinition {
	return c.items[name]
}

// Items returns all item definitions in catalog order.
func (c *Catalog) Items() []*entities.ItemDefinition {
	out := make([]*entities.ItemDefinition, 0, len(c.itemOrder))
	for _, name := range c.itemOrder {
		out = append(out, c.items[name])
	}
	return out
}

// Enemy looks up an enemy by name, case-insensitively.
func (c *Catalog) Enemy(name string) (entities.EnemyDefinition, bool) {
	for _, e := range c.enemies {
		if strings.EqualFold(e.Name, strings.TrimSpace(name)) {
			return e, true
		}
	}
	return entities.EnemyDefinition{}, false
}

// Enemies returns a copy of the encounter table.
func (c *Catalog) Enemies() []entities.EnemyDefinition {
	out := make([]entities.EnemyDefinition, len(c.enemies))
	copy(out, c.enemies)
	return out
}

// DefaultEnemy is used when a battle is started without a known enemy.
func (c *Catalog) DefaultEnemy() entities.EnemyDefinition {
	e, _ := c.Enemy(c.defaultEnemy)
	return e
}

// Cities returns the world map ring in travel order.
func (c *Catalog) Cities() []string {
	out := make([]string, len(c.cities))
	copy(out, c.cities)
	return out
}

// Classes returns the selectable classes.
func (c *Catalog) Classes() []Class {
	out := make([]Class, len(c.classes))
	copy(out, c.classes)
	return out
}

// ClassNames returns the class labels in menu order.
func (c *Catalog) ClassNames() []string {
	out := make([]string, 0, len(c.classes))
	for _, cl := range c.classes {
		out = append(out, cl.Name)
	}
	return out
}

// NewHero returns a fresh level 1 hero with the given name and empty slots.
func (c *Catalog) NewHero(name string) entities.Character {
	hero := c.hero
	hero.Name = name
	return hero
}

// StartingInventory returns a fresh copy of the starting loadout.
func (c *Catalog) StartingInventory() inventory.Ledger {
	return c.starting.Clone()
}

type rawCatalog struct {
	Items             []rawItem         `yaml:"items"`
	Enemies           []rawEnemy        `yaml:"enemies"`
	DefaultEnemy      string            `yaml:"default_enemy"`
	Cities            []string          `yaml:"cities"`
	Classes           []rawClass        `yaml:"classes"`
	Hero              rawEnemy          `yaml:"hero"`
	StartingInventory []inventory.Entry `yaml:"starting_inventory"`
}

type rawItem struct {
	Name        string             `yaml:"name"`
	Kind        string             `yaml:"kind"`
	Slot        string             `yaml:"slot"`
	Description string             `yaml:"description"`
	Bonuses     entities.StatBlock `yaml:"bonuses"`
	Effect      struct {
		RestoreHealth int `yaml:"restore_health"`
		RestoreMana   int `yaml:"restore_mana"`
	} `yaml:"effect"`
}

type rawEnemy struct {
	Name       string         `yaml:"name"`
	Health     int            `yaml:"health"`
	Attack     int            `yaml:"attack"`
	Defense    int            `yaml:"defense"`
	Attributes map[string]int `yaml:"attributes"`
	Drop       string         `yaml:"drop"`
}

type rawClass struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
}

// Parse builds a catalog from YAML and checks its cross references.
func Parse(data []byte) (*Catalog, error) {
	var raw rawCatalog
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, errors.Wrap(err, "failed to parse catalog")
	}

	c := &Catalog{
		items:        make(map[string]*entities.ItemDefinition, len(raw.Items)),
		defaultEnemy: raw.DefaultEnemy,
		cities:       raw.Cities,
	}

	for _, ri := range raw.Items {
		item, err := ri.definition()
		if err != nil {
			return nil, err
		}
		if _, dup := c.items[item.Name]; dup {
			return nil, errors.InvalidArgumentf("duplicate item %q", item.Name)
		}
		c.items[item.Name] = item
		c.itemOrder = append(c.itemOrder, item.Name)
	}

	for _, re := range raw.Enemies {
		enemy, err := re.definition()
		if err != nil {
			return nil, err
		}
		if enemy.Drop != "" && c.items[enemy.Drop] == nil {
			return nil, errors.InvalidArgumentf("enemy %s drops unknown item %q", enemy.Name, enemy.Drop)
		}
		c.enemies = append(c.enemies, enemy)
	}

	hero, err := raw.Hero.definition()
	if err != nil {
		return nil, err
	}
	c.hero = hero.Character()

	for _, rc := range raw.Classes {
		c.classes = append(c.classes, Class(rc))
	}

	for _, e := range raw.StartingInventory {
		if c.items[e.Name] == nil {
			return nil, errors.InvalidArgumentf("starting inventory has unknown item %q", e.Name)
		}
		if err := c.starting.Add(e.Name, e.Count); err != nil {
			return nil, err
		}
	}

	if err := c.validate(); err != nil {
		return nil, err
	}

	return c, nil
}

func (c *Catalog) validate() error {
	vb := errors.NewValidationBuilder()

	if len(c.enemies) == 0 {
		vb.RequiredField("enemies")
	}
	if _, ok := c.Enemy(c.defaultEnemy); !ok {
		vb.Fieldf("default_enemy", "unknown enemy %q", c.defaultEnemy)
	}
	if len(c.cities) == 0 {
		vb.RequiredField("cities")
	}
	if len(c.classes) == 0 {
		vb.RequiredField("classes")
	}
	if c.hero.MaxHealth <= 0 {
		vb.Field("hero.health", "must be positive")
	}

	return vb.Build()
}

func (ri rawItem) definition() (*entities.ItemDefinition, error) {
	if ri.Name == "" {
		return nil, errors.InvalidArgument("item name is required")
	}

	item := &entities.ItemDefinition{
		Name:        ri.Name,
		Description: ri.Description,
		Bonuses:     ri.Bonuses,
		Effect: entities.Effect{
			RestoreHealth: ri.Effect.RestoreHealth,
			RestoreMana:   ri.Effect.RestoreMana,
		},
	}

	switch strings.ToLower(ri.Kind) {
	case "consumable":
		item.Kind = entities.ItemKindConsumable
	case "equipment":
		item.Kind = entities.ItemKindEquipment
		slot, ok := entities.ParseSlotCategory(ri.Slot)
		if !ok {
			return nil, errors.InvalidArgumentf("item %s has unknown slot %q", ri.Name, ri.Slot)
		}
		item.Slot = slot
	default:
		return nil, errors.InvalidArgumentf("item %s has unknown kind %q", ri.Name, ri.Kind)
	}

	return item, nil
}

func (re rawEnemy) definition() (entities.EnemyDefinition, error) {
	var attrs entities.Attributes
	for key, v := range re.Attributes {
		attr, ok := entities.ParseAttribute(key)
		if !ok {
			return entities.EnemyDefinition{}, errors.InvalidArgumentf("%s has unknown attribute %q", re.Name, key)
		}
		attrs[attr] = v
	}

	return entities.EnemyDefinition{
		Name:       re.Name,
		Health:     re.Health,
		MaxHealth:  re.Health,
		Attack:     re.Attack,
		Defense:    re.Defense,
		Attributes: attrs,
		Drop:       re.Drop,
	}, nil
}
