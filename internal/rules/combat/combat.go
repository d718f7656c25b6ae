// Package combat holds the per-round damage math of a battle.
// It never touches character state; the battle orchestrator applies results.
package combat

import (
	"github.com/KirkDiggler/rpg-battle/internal/errors"
	"github.com/KirkDiggler/rpg-battle/internal/pkg/random"
)

// Round tuning
const (
	PlayerVarianceMin  = -3
	PlayerVarianceMax  = 5
	MonsterVarianceMin = -2
	MonsterVarianceMax = 3
	CriticalChance     = 0.10
	CriticalMultiplier = 2
	MinDamage          = 1
	DefendHealPercent  = 10
)

// Combatant is the attack and defense of one side of a round
type Combatant struct {
	Attack  int
	Defense int
}

// Round is the outcome of one exchange of blows
type Round struct {
	PlayerRoll    int
	MonsterRoll   int
	Critical      bool
	PlayerDamage  int
	MonsterDamage int
}

// ResolveRound rolls one round. Rolls are drawn in a fixed order: player
// variance, monster variance, critical check.
func ResolveRound(src *random.Source, player, monster Combatant) (*Round, error) {
	playerVariance, err := src.IntRange(PlayerVarianceMin, PlayerVarianceMax)
	if err != nil {
		return nil, errors.Wrap(err, "failed to roll player variance")
	}
	monsterVariance, err := src.IntRange(MonsterVarianceMin, MonsterVarianceMax)
	if err != nil {
		return nil, errors.Wrap(err, "failed to roll monster variance")
	}
	critical, err := src.Chance(CriticalChance)
	if err != nil {
		return nil, errors.Wrap(err, "failed to roll critical")
	}

	playerRoll := player.Attack + playerVariance
	if critical {
		playerRoll *= CriticalMultiplier
	}
	monsterRoll := monster.Attack + monsterVariance

	return &Round{
		PlayerRoll:    playerRoll,
		MonsterRoll:   monsterRoll,
		Critical:      critical,
		PlayerDamage:  Damage(playerRoll, monster.Defense),
		MonsterDamage: Damage(monsterRoll, player.Defense),
	}, nil
}

// Damage mitigates a roll by half the defender's defense, never below MinDamage
func Damage(roll, defense int) int {
	return max(MinDamage, roll-defense/2)
}

// DefendHeal is the hit points restored by defending, capped so hp never
// exceeds maxHP
func DefendHeal(hp, maxHP int) int {
	heal := maxHP * DefendHealPercent / 100
	return max(0, min(heal, maxHP-hp))
}
