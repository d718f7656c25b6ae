package entities

import "strconv"

// EntityTypeMonster is the core.Entity type of a monster
const EntityTypeMonster = "monster"

// CoinRange is an inclusive coin reward range
type CoinRange struct {
	Min int
	Max int
}

// Monster is an immutable catalog entry
type Monster struct {
	ID               int
	Name             string
	Level            int
	HP               int
	Attack           int
	Defense          int
	ExperienceReward int64
	Coins            CoinRange
	DropItem         string
	DropChance       float64
}

// GetID implements core.Entity
func (m *Monster) GetID() string {
	return strconv.Itoa(m.ID)
}

// GetType implements core.Entity
func (m *Monster) GetType() string {
	return EntityTypeMonster
}

// MinCharacterLevel is the lowest level allowed to fight this monster
func (m *Monster) MinCharacterLevel() int {
	return m.Level - 2
}
