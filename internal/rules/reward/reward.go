// Package reward computes the coins, experience and loot of a won battle.
package reward

import (
	"math"

	"github.com/KirkDiggler/rpg-battle/internal/entities"
	"github.com/KirkDiggler/rpg-battle/internal/errors"
	"github.com/KirkDiggler/rpg-battle/internal/pkg/random"
)

// Modifier bounds
const (
	MinLevelModifier   = 0.5
	MaxLevelModifier   = 1.5
	OverLevelPenalty   = 0.10
	UnderLevelBonus    = 0.15
	RandomModifierLow  = 0.9
	RandomModifierHigh = 1.1
)

// Reward is what a victory is worth before the pool has agreed to pay it
type Reward struct {
	Coins      int64
	Experience int64
	// Drop is the looted item name, empty when nothing dropped
	Drop          string
	LevelModifier float64
	Modifier      float64
}

// HasDrop reports whether an item dropped
func (r *Reward) HasDrop() bool {
	return r.Drop != ""
}

// LevelModifier scales rewards by the level gap. Over-leveled characters earn
// less, under-leveled ones earn a bonus.
func LevelModifier(characterLevel, monsterLevel int) float64 {
	diff := characterLevel - monsterLevel
	if diff > 0 {
		return math.Max(MinLevelModifier, 1.0-float64(diff)*OverLevelPenalty)
	}
	return math.Min(MaxLevelModifier, 1.0+float64(-diff)*UnderLevelBonus)
}

// Compute rolls the reward for beating monster. Rolls are drawn in a fixed
// order: base coins, random modifier, drop.
func Compute(src *random.Source, monster *entities.Monster, characterLevel int) (*Reward, error) {
	if monster == nil {
		return nil, errors.InvalidArgument("monster is required")
	}

	baseCoins, err := src.IntRange(monster.Coins.Min, monster.Coins.Max)
	if err != nil {
		return nil, errors.Wrap(err, "failed to roll coins")
	}
	randomModifier, err := src.Uniform(RandomModifierLow, RandomModifierHigh)
	if err != nil {
		return nil, errors.Wrap(err, "failed to roll reward modifier")
	}
	dropped, err := src.Chance(monster.DropChance)
	if err != nil {
		return nil, errors.Wrap(err, "failed to roll drop")
	}

	levelModifier := LevelModifier(characterLevel, monster.Level)
	final := levelModifier * randomModifier

	r := &Reward{
		Coins:         int64(math.Floor(float64(baseCoins) * final)),
		Experience:    int64(math.Floor(float64(monster.ExperienceReward) * final)),
		LevelModifier: levelModifier,
		Modifier:      final,
	}
	if dropped {
		r.Drop = monster.DropItem
	}
	return r, nil
}
