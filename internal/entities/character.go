// Package entities provides core data structures for rpg-battle.
package entities

import (
	"maps"
	"time"

	"github.com/KirkDiggler/rpg-battle/internal/pkg/clock"
)

// Starting stats for a freshly created character
const (
	StartLevel         = 1
	StartHP            = 100
	StartAttack        = 10
	StartDefense       = 5
	StartBalance int64 = 100
)

// EntityTypeCharacter is the core.Entity type of a player character
const EntityTypeCharacter = "character"

// Character is a player's persistent game entity. A single session owns it
// while handling one action; the core never stores it.
type Character struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Level      int    `json:"level"`
	Experience int64  `json:"experience"`
	Class      Class  `json:"class"`

	HP      int `json:"hp"`
	MaxHP   int `json:"max_hp"`
	Attack  int `json:"attack"`
	Defense int `json:"defense"`

	Balance int64 `json:"balance"`
	Kills   int   `json:"kills"`
	Deaths  int   `json:"deaths"`
	Rating  int   `json:"rating"`

	// Inventory maps item name to count. Counts are always >= 1.
	Inventory map[string]int `json:"inventory,omitempty"`

	// Battle is nil while idle. A non-nil session is the in-battle state.
	Battle *BattleSession `json:"battle,omitempty"`

	LastDailyClaim clock.Date `json:"last_daily_claim"`
	DailyStreak    int        `json:"daily_streak"`

	CreatedAt    time.Time `json:"created_at"`
	LastActiveAt time.Time `json:"last_active_at"`
}

// BattleSession is the payload of the in-battle state
type BattleSession struct {
	ID        string    `json:"id"`
	MonsterID int       `json:"monster_id"`
	MonsterHP int       `json:"monster_hp"`
	StartedAt time.Time `json:"started_at"`
}

// NewCharacter creates a level 1 character with starting stats and no class
func NewCharacter(id, name string, now time.Time) *Character {
	return &Character{
		ID:           id,
		Name:         name,
		Level:        StartLevel,
		HP:           StartHP,
		MaxHP:        StartHP,
		Attack:       StartAttack,
		Defense:      StartDefense,
		Balance:      StartBalance,
		Inventory:    map[string]int{},
		CreatedAt:    now,
		LastActiveAt: now,
	}
}

// GetID implements core.Entity
func (c *Character) GetID() string {
	return c.ID
}

// GetType implements core.Entity
func (c *Character) GetType() string {
	return EntityTypeCharacter
}

// InBattle reports whether the character is fighting
func (c *Character) InBattle() bool {
	return c.Battle != nil
}

// IsDead reports whether the character has no hit points left
func (c *Character) IsDead() bool {
	return c.HP <= 0
}

// AddItem increments the count of an inventory item
func (c *Character) AddItem(name string) {
	if c.Inventory == nil {
		c.Inventory = map[string]int{}
	}
	c.Inventory[name]++
}

// Clone returns a deep copy
func (c *Character) Clone() *Character {
	if c == nil {
		return nil
	}
	out := *c
	out.Inventory = maps.Clone(c.Inventory)
	if c.Battle != nil {
		battle := *c.Battle
		out.Battle = &battle
	}
	return &out
}
