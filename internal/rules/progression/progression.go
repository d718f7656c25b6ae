// Package progression applies earned rewards to a character and levels it up.
package progression

import (
	"github.com/KirkDiggler/rpg-battle/internal/entities"
	"github.com/KirkDiggler/rpg-battle/internal/rules/levelcurve"
	"github.com/KirkDiggler/rpg-battle/internal/rules/reward"
)

// Per-level stat growth and per-kill rating
const (
	HPPerLevel      = 20
	AttackPerLevel  = 3
	DefensePerLevel = 2
	RatingPerKill   = 10
)

// Result summarizes what changed
type Result struct {
	LevelsGained int
	FromLevel    int
	ToLevel      int
	Drop         string
}

// LeveledUp reports whether at least one level was gained
func (r *Result) LeveledUp() bool {
	return r.LevelsGained > 0
}

// Apply credits a victory reward the pool has already paid out
func Apply(c *entities.Character, r *reward.Reward) *Result {
	c.Kills++
	c.Rating += RatingPerKill
	if r.HasDrop() {
		c.AddItem(r.Drop)
	}

	res := ApplyBonus(c, r.Coins, r.Experience)
	res.Drop = r.Drop
	return res
}

// ApplyBonus credits coins and experience with no kill attached, then levels up
func ApplyBonus(c *entities.Character, coins, experience int64) *Result {
	c.Balance += coins
	c.Experience += experience

	res := &Result{FromLevel: c.Level}
	target := levelcurve.Level(c.Experience).Level
	for c.Level < target {
		c.Level++
		c.MaxHP += HPPerLevel
		// a level-up restores health fully
		c.HP = c.MaxHP
		c.Attack += AttackPerLevel
		c.Defense += DefensePerLevel
		res.LevelsGained++
	}
	res.ToLevel = c.Level
	return res
}
