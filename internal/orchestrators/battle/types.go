package battle

import (
	"github.com/KirkDiggler/rpg-battle/internal/entities"
	"github.com/KirkDiggler/rpg-battle/internal/rules/combat"
	"github.com/KirkDiggler/rpg-battle/internal/rules/progression"
	"github.com/KirkDiggler/rpg-battle/internal/rules/reward"
)

// Result is how an attack left the battle
type Result int

// Results
const (
	ResultOngoing Result = iota
	ResultVictory
	ResultDefeat
)

func (r Result) String() string {
	switch r {
	case ResultOngoing:
		return "ongoing"
	case ResultVictory:
		return "victory"
	case ResultDefeat:
		return "defeat"
	default:
		return "unknown"
	}
}

// View is a snapshot of a running battle
type View struct {
	BattleID     string
	Monster      *entities.Monster
	MonsterHP    int
	MonsterMaxHP int
	HP           int
	MaxHP        int
}

// Outcome is the result of one attack
type Outcome struct {
	Result Result
	Round  *combat.Round
	// MonsterHP is never negative
	MonsterHP int
	Monster   *entities.Monster

	// Reward is set on victory
	Reward *reward.Reward
	// Paid is true when the pool accepted the reward
	Paid bool
	// PoolRejection holds the pool's reason when a victory went unpaid
	PoolRejection error
	// Progression is set when the reward was applied
	Progression *progression.Result
}

// SelectMonsterInput starts a battle
type SelectMonsterInput struct {
	Character *entities.Character
	MonsterID int
}

// SelectMonsterOutput describes the new battle
type SelectMonsterOutput struct {
	Battle *View
}

// AttackInput runs one combat round
type AttackInput struct {
	Character *entities.Character
}

// AttackOutput carries the round outcome
type AttackOutput struct {
	Outcome *Outcome
}

// DefendInput heals instead of attacking
type DefendInput struct {
	Character *entities.Character
}

// DefendOutput reports the heal
type DefendOutput struct {
	Healed int
	HP     int
	MaxHP  int
}

// FleeInput leaves the battle
type FleeInput struct {
	Character *entities.Character
}

// FleeOutput names the monster that was left behind
type FleeOutput struct {
	Monster *entities.Monster
}

// ReviveInput brings a dead character back for a fee
type ReviveInput struct {
	Character *entities.Character
}

// ReviveOutput reports the fee and restored hp
type ReviveOutput struct {
	Cost int64
	HP   int
}

// ChooseClassInput picks the character's class
type ChooseClassInput struct {
	Character *entities.Character
	Class     entities.Class
}

// ChooseClassOutput reports the bonus that was applied
type ChooseClassOutput struct {
	Bonus entities.ClassBonus
}
