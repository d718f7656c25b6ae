// Package catalog holds the fixed table of monster templates players can fight.
package catalog

import (
	"strings"

	"github.com/sahilm/fuzzy"

	"github.com/KirkDiggler/rpg-battle/internal/entities"
	"github.com/KirkDiggler/rpg-battle/internal/errors"
)

var monsters = []entities.Monster{
	{
		ID: 1, Name: "🐗 Кабан", Level: 1, HP: 50, Attack: 8, Defense: 2,
		ExperienceReward: 20, Coins: entities.CoinRange{Min: 10, Max: 25},
		DropItem: "Шкура кабана", DropChance: 0.30,
	},
	{
		ID: 2, Name: "🐺 Волк", Level: 3, HP: 80, Attack: 12, Defense: 3,
		ExperienceReward: 35, Coins: entities.CoinRange{Min: 20, Max: 45},
		DropItem: "Клык волка", DropChance: 0.35,
	},
	{
		ID: 3, Name: "🐻 Медведь", Level: 5, HP: 150, Attack: 18, Defense: 5,
		ExperienceReward: 60, Coins: entities.CoinRange{Min: 40, Max: 80},
		DropItem: "Медвежья шкура", DropChance: 0.40,
	},
	{
		ID: 4, Name: "👹 Огр", Level: 8, HP: 250, Attack: 25, Defense: 8,
		ExperienceReward: 100, Coins: entities.CoinRange{Min: 80, Max: 150},
		DropItem: "Дубина огра", DropChance: 0.45,
	},
	{
		ID: 5, Name: "🐉 Дракон", Level: 12, HP: 500, Attack: 40, Defense: 15,
		ExperienceReward: 300, Coins: entities.CoinRange{Min: 200, Max: 500},
		DropItem: "Чешуя дракона", DropChance: 0.50,
	},
}

// Catalog is a read-only set of monster templates
type Catalog struct {
	monsters []entities.Monster
	byID     map[int]int
}

// Default returns the built-in five monster catalog
func Default() *Catalog {
	c, err := New(monsters)
	if err != nil {
		panic(err)
	}
	return c
}

// New builds a catalog from templates. IDs must be unique and every template
// must describe a fightable monster.
func New(templates []entities.Monster) (*Catalog, error) {
	c := &Catalog{
		monsters: make([]entities.Monster, len(templates)),
		byID:     make(map[int]int, len(templates)),
	}
	copy(c.monsters, templates)

	for i, m := range c.monsters {
		if err := validate(m); err != nil {
			return nil, errors.Wrapf(err, "monster %d", m.ID)
		}
		if _, dup := c.byID[m.ID]; dup {
			return nil, errors.InvalidArgumentf("duplicate monster id %d", m.ID)
		}
		c.byID[m.ID] = i
	}
	return c, nil
}

func validate(m entities.Monster) error {
	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("name", m.Name, vb)
	errors.ValidatePositive("level", int64(m.Level), vb)
	errors.ValidatePositive("hp", int64(m.HP), vb)
	errors.ValidateNonNegative("attack", int64(m.Attack), vb)
	errors.ValidateNonNegative("defense", int64(m.Defense), vb)
	errors.ValidateNonNegative("experience_reward", m.ExperienceReward, vb)
	errors.ValidateNonNegative("coins.min", int64(m.Coins.Min), vb)
	if m.Coins.Max < m.Coins.Min {
		vb.InvalidField("coins.max", "must not be below coins.min")
	}
	errors.ValidateFraction("drop_chance", m.DropChance, vb)
	return vb.Build()
}

// Get returns a copy of the monster with the given ID
func (c *Catalog) Get(id int) (*entities.Monster, error) {
	i, ok := c.byID[id]
	if !ok {
		return nil, errors.NotFoundf("monster %d not found", id)
	}
	m := c.monsters[i]
	return &m, nil
}

// List returns all monsters in catalog order
func (c *Catalog) List() []entities.Monster {
	out := make([]entities.Monster, len(c.monsters))
	copy(out, c.monsters)
	return out
}

// Available returns the monsters a character of the given level may fight
func (c *Catalog) Available(level int) []entities.Monster {
	var out []entities.Monster
	for _, m := range c.monsters {
		if level >= m.MinCharacterLevel() {
			out = append(out, m)
		}
	}
	return out
}

type searchItems []entities.Monster

func (s searchItems) Len() int {
	return len(s)
}

func (s searchItems) String(i int) string {
	return normalize(s[i].Name)
}

// Find resolves a player-typed monster name, best match first
func (c *Catalog) Find(query string) (*entities.Monster, error) {
	q := normalize(query)
	if q == "" {
		return nil, errors.InvalidArgument("monster name is required")
	}

	matches := fuzzy.FindFrom(q, searchItems(c.monsters))
	if len(matches) == 0 {
		return nil, errors.NotFoundf("no monster matches %q", query)
	}
	m := c.monsters[matches[0].Index]
	return &m, nil
}

// normalize drops the emoji prefix and folds case
func normalize(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	return strings.TrimLeftFunc(s, func(r rune) bool {
		return r > 0x2000 || r == ' '
	})
}
