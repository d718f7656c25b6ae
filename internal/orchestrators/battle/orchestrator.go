// Package battle runs the Idle → InBattle → Idle state machine of a single
// character's fight against a catalog monster.
package battle

//go:generate mockgen -destination=mock/mock_service.go -package=battlemock github.com/KirkDiggler/rpg-battle/internal/orchestrators/battle Service

import (
	"context"
	"log/slog"

	"github.com/KirkDiggler/rpg-toolkit/core"
	"github.com/KirkDiggler/rpg-toolkit/dice"
	"github.com/KirkDiggler/rpg-toolkit/events"

	"github.com/KirkDiggler/rpg-battle/internal/economy/pool"
	"github.com/KirkDiggler/rpg-battle/internal/entities"
	"github.com/KirkDiggler/rpg-battle/internal/errors"
	"github.com/KirkDiggler/rpg-battle/internal/pkg/clock"
	"github.com/KirkDiggler/rpg-battle/internal/pkg/idgen"
	"github.com/KirkDiggler/rpg-battle/internal/pkg/random"
	"github.com/KirkDiggler/rpg-battle/internal/rules/combat"
	"github.com/KirkDiggler/rpg-battle/internal/rules/progression"
	"github.com/KirkDiggler/rpg-battle/internal/rules/reward"
)

// ReviveCost is the coin fee for coming back from the dead. It is burned.
const ReviveCost int64 = 50

// Service defines the battle operations. Every call mutates the given
// character in place; the caller owns persisting it.
type Service interface {
	// SelectMonster starts a battle
	// Returns errors with reason AlreadyInBattle, CharacterDead or MonsterTooStrong,
	// checked in that order, and errors.NotFound for unknown monsters
	SelectMonster(ctx context.Context, input *SelectMonsterInput) (*SelectMonsterOutput, error)

	// Attack resolves one round
	// Returns errors with reason NotInBattle when idle
	Attack(ctx context.Context, input *AttackInput) (*AttackOutput, error)

	// Defend heals a tenth of max hp and skips the monster's blow
	// Returns errors with reason NotInBattle when idle
	Defend(ctx context.Context, input *DefendInput) (*DefendOutput, error)

	// Flee ends the battle with no reward and no penalty
	// Returns errors with reason NotInBattle when idle
	Flee(ctx context.Context, input *FleeInput) (*FleeOutput, error)

	// Revive restores half of max hp for ReviveCost coins
	// Returns errors with reason CharacterAlive or InsufficientFunds
	Revive(ctx context.Context, input *ReviveInput) (*ReviveOutput, error)

	// ChooseClass applies a class bonus, once per character
	// Returns errors with reason ClassAlreadyChosen on a second call
	ChooseClass(ctx context.Context, input *ChooseClassInput) (*ChooseClassOutput, error)
}

// Catalog looks up monster templates
type Catalog interface {
	Get(id int) (*entities.Monster, error)
}

// Config holds the dependencies for the battle orchestrator
type Config struct {
	Catalog     Catalog
	Pool        pool.Pool
	Roller      dice.Roller
	Clock       clock.Clock
	IDGenerator idgen.Generator
	// EventBus is optional
	EventBus events.EventBus
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config cannot be nil")
	}

	vb := errors.NewValidationBuilder()

	if c.Catalog == nil {
		vb.RequiredField("Catalog")
	}
	if c.Pool == nil {
		vb.RequiredField("Pool")
	}
	if c.Roller == nil {
		vb.RequiredField("Roller")
	}
	if c.Clock == nil {
		vb.RequiredField("Clock")
	}
	if c.IDGenerator == nil {
		vb.RequiredField("IDGenerator")
	}

	return vb.Build()
}

type orchestrator struct {
	catalog Catalog
	pool    pool.Pool
	random  *random.Source
	clock   clock.Clock
	idGen   idgen.Generator
	bus     events.EventBus
}

// NewOrchestrator creates a new battle orchestrator with the provided dependencies
func NewOrchestrator(cfg *Config) (Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &orchestrator{
		catalog: cfg.Catalog,
		pool:    cfg.Pool,
		random:  random.New(cfg.Roller),
		clock:   cfg.Clock,
		idGen:   cfg.IDGenerator,
		bus:     cfg.EventBus,
	}, nil
}

func (o *orchestrator) SelectMonster(ctx context.Context, input *SelectMonsterInput) (*SelectMonsterOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	c := input.Character
	if err := requireCharacter(c); err != nil {
		return nil, err
	}

	if c.InBattle() {
		return nil, errors.AlreadyInBattle()
	}
	if c.IsDead() {
		return nil, errors.CharacterDead()
	}

	monster, err := o.catalog.Get(input.MonsterID)
	if err != nil {
		return nil, err
	}
	if c.Level < monster.MinCharacterLevel() {
		return nil, errors.MonsterTooStrong(c.Level, monster.MinCharacterLevel())
	}

	c.Battle = &entities.BattleSession{
		ID:        o.idGen.Generate(),
		MonsterID: monster.ID,
		MonsterHP: monster.HP,
		StartedAt: o.clock.Now(),
	}

	slog.InfoContext(ctx, "battle started",
		"character_id", c.ID,
		"battle_id", c.Battle.ID,
		"monster", monster.Name,
	)
	o.publish(ctx, entities.EventBattleStarted, c, monster)

	return &SelectMonsterOutput{Battle: view(c, monster)}, nil
}

func (o *orchestrator) Attack(ctx context.Context, input *AttackInput) (*AttackOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	c := input.Character
	if err := requireCharacter(c); err != nil {
		return nil, err
	}
	monster, err := o.currentMonster(c)
	if err != nil {
		return nil, err
	}

	round, err := combat.ResolveRound(o.random,
		combat.Combatant{Attack: c.Attack, Defense: c.Defense},
		combat.Combatant{Attack: monster.Attack, Defense: monster.Defense},
	)
	if err != nil {
		return nil, errors.Wrap(err, "failed to resolve round")
	}

	monsterHP := c.Battle.MonsterHP - round.PlayerDamage
	hp := c.HP - round.MonsterDamage

	outcome := &Outcome{
		Round:     round,
		Monster:   monster,
		MonsterHP: max(0, monsterHP),
	}

	switch {
	case hp <= 0:
		// character death wins over a simultaneous monster death
		c.HP = 0
		c.Deaths++
		battleID := c.Battle.ID
		c.Battle = nil
		outcome.Result = ResultDefeat

		slog.InfoContext(ctx, "battle lost",
			"character_id", c.ID,
			"battle_id", battleID,
			"monster", monster.Name,
		)
		o.publish(ctx, entities.EventBattleDefeat, c, monster)

	case monsterHP <= 0:
		if err := o.settleVictory(ctx, c, hp, monster, outcome); err != nil {
			return nil, err
		}

	default:
		c.HP = hp
		c.Battle.MonsterHP = monsterHP
		outcome.Result = ResultOngoing
	}

	return &AttackOutput{Outcome: outcome}, nil
}

// settleVictory leaves c untouched when it returns an error. hp is the
// character's health after the final round.
func (o *orchestrator) settleVictory(ctx context.Context, c *entities.Character, hp int, monster *entities.Monster, outcome *Outcome) error {
	r, err := reward.Compute(o.random, monster, c.Level)
	if err != nil {
		return errors.Wrap(err, "failed to compute reward")
	}
	outcome.Result = ResultVictory
	outcome.Reward = r

	err = o.pool.TryEarn(ctx, r.Coins)
	switch {
	case err == nil:
		c.HP = hp
		outcome.Paid = true
		outcome.Progression = progression.Apply(c, r)
	case errors.IsPoolRejection(err):
		c.HP = hp
		outcome.PoolRejection = err
		slog.InfoContext(ctx, "victory reward rejected by pool",
			"character_id", c.ID,
			"coins", r.Coins,
			"reason", errors.GetReason(err),
		)
	default:
		return errors.Wrap(err, "failed to pay reward")
	}

	battleID := c.Battle.ID
	c.Battle = nil

	slog.InfoContext(ctx, "battle won",
		"character_id", c.ID,
		"battle_id", battleID,
		"monster", monster.Name,
		"coins", r.Coins,
		"experience", r.Experience,
		"paid", outcome.Paid,
	)
	o.publish(ctx, entities.EventBattleVictory, c, monster)
	if outcome.Progression != nil && outcome.Progression.LeveledUp() {
		slog.InfoContext(ctx, "character leveled up",
			"character_id", c.ID,
			"from", outcome.Progression.FromLevel,
			"to", outcome.Progression.ToLevel,
		)
		o.publish(ctx, entities.EventLevelUp, c, nil)
	}
	return nil
}

func (o *orchestrator) Defend(_ context.Context, input *DefendInput) (*DefendOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	c := input.Character
	if err := requireCharacter(c); err != nil {
		return nil, err
	}
	if !c.InBattle() {
		return nil, errors.NotInBattle()
	}

	healed := combat.DefendHeal(c.HP, c.MaxHP)
	c.HP += healed

	return &DefendOutput{Healed: healed, HP: c.HP, MaxHP: c.MaxHP}, nil
}

func (o *orchestrator) Flee(ctx context.Context, input *FleeInput) (*FleeOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	c := input.Character
	if err := requireCharacter(c); err != nil {
		return nil, err
	}
	if !c.InBattle() {
		return nil, errors.NotInBattle()
	}

	// an unknown monster still lets the character leave
	monster, _ := o.catalog.Get(c.Battle.MonsterID)
	c.Battle = nil

	slog.InfoContext(ctx, "character fled", "character_id", c.ID)
	o.publish(ctx, entities.EventBattleFled, c, monster)

	return &FleeOutput{Monster: monster}, nil
}

func (o *orchestrator) Revive(ctx context.Context, input *ReviveInput) (*ReviveOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	c := input.Character
	if err := requireCharacter(c); err != nil {
		return nil, err
	}
	if !c.IsDead() {
		return nil, errors.CharacterAlive()
	}
	if c.Balance < ReviveCost {
		return nil, errors.InsufficientFunds(ReviveCost, c.Balance)
	}

	c.Balance -= ReviveCost
	c.HP = c.MaxHP / 2

	slog.InfoContext(ctx, "character revived", "character_id", c.ID, "hp", c.HP)
	o.publish(ctx, entities.EventRevived, c, nil)

	return &ReviveOutput{Cost: ReviveCost, HP: c.HP}, nil
}

func (o *orchestrator) ChooseClass(ctx context.Context, input *ChooseClassInput) (*ChooseClassOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	c := input.Character
	if err := requireCharacter(c); err != nil {
		return nil, err
	}
	if !input.Class.Valid() {
		return nil, errors.InvalidArgumentf("unknown class %s", input.Class)
	}
	if c.Class != entities.ClassUnset {
		return nil, errors.ClassAlreadyChosen()
	}

	bonus := input.Class.Bonus()
	c.Class = input.Class
	c.MaxHP += bonus.HP
	c.HP = c.MaxHP
	c.Attack += bonus.Attack
	c.Defense += bonus.Defense

	slog.InfoContext(ctx, "class chosen", "character_id", c.ID, "class", c.Class.String())

	return &ChooseClassOutput{Bonus: bonus}, nil
}

func (o *orchestrator) currentMonster(c *entities.Character) (*entities.Monster, error) {
	if !c.InBattle() {
		return nil, errors.NotInBattle()
	}
	monster, err := o.catalog.Get(c.Battle.MonsterID)
	if err != nil {
		return nil, errors.Internalf("battle %s references unknown monster %d", c.Battle.ID, c.Battle.MonsterID)
	}
	return monster, nil
}

func (o *orchestrator) publish(ctx context.Context, eventType string, c *entities.Character, monster *entities.Monster) {
	if o.bus == nil {
		return
	}

	var target core.Entity
	if monster != nil {
		target = monster
	}
	if err := o.bus.Publish(ctx, events.NewGameEvent(eventType, c, target)); err != nil {
		slog.WarnContext(ctx, "failed to publish event", "type", eventType, "error", err)
	}
}

func view(c *entities.Character, monster *entities.Monster) *View {
	return &View{
		BattleID:     c.Battle.ID,
		Monster:      monster,
		MonsterHP:    c.Battle.MonsterHP,
		MonsterMaxHP: monster.HP,
		HP:           c.HP,
		MaxHP:        c.MaxHP,
	}
}

func requireCharacter(c *entities.Character) error {
	if c == nil {
		return errors.InvalidArgument("character is required")
	}
	return nil
}
