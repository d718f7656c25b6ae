// Package builders provides test data builders for creating test fixtures
package builders

import (
	"time"

	"github.com/KirkDiggler/rpg-battle/internal/entities"
	"github.com/KirkDiggler/rpg-battle/internal/pkg/clock"
)

// CharacterBuilder provides a fluent interface for building test Character instances
type CharacterBuilder struct {
	character *entities.Character
}

// NewCharacterBuilder creates a new builder with starting stats
func NewCharacterBuilder() *CharacterBuilder {
	return &CharacterBuilder{
		character: entities.NewCharacter("player-test-123", "Test Hero",
			time.Date(2026, time.October, 16, 12, 0, 0, 0, time.UTC)),
	}
}

// WithID sets the character ID
func (b *CharacterBuilder) WithID(id string) *CharacterBuilder {
	b.character.ID = id
	return b
}

// WithName sets the character name
func (b *CharacterBuilder) WithName(name string) *CharacterBuilder {
	b.character.Name = name
	return b
}

// WithLevel sets level and experience together so they agree with the level curve
func (b *CharacterBuilder) WithLevel(level int, experience int64) *CharacterBuilder {
	b.character.Level = level
	b.character.Experience = experience
	return b
}

// WithStats sets combat stats. HP starts full.
func (b *CharacterBuilder) WithStats(maxHP, attack, defense int) *CharacterBuilder {
	b.character.MaxHP = maxHP
	b.character.HP = maxHP
	b.character.Attack = attack
	b.character.Defense = defense
	return b
}

// WithHP sets current hit points
func (b *CharacterBuilder) WithHP(hp int) *CharacterBuilder {
	b.character.HP = hp
	return b
}

// WithClass sets the class without applying its bonus
func (b *CharacterBuilder) WithClass(class entities.Class) *CharacterBuilder {
	b.character.Class = class
	return b
}

// WithBalance sets the coin balance
func (b *CharacterBuilder) WithBalance(balance int64) *CharacterBuilder {
	b.character.Balance = balance
	return b
}

// WithRating sets the rating
func (b *CharacterBuilder) WithRating(rating int) *CharacterBuilder {
	b.character.Rating = rating
	return b
}

// InBattle puts the character in battle against a monster
func (b *CharacterBuilder) InBattle(monsterID, monsterHP int) *CharacterBuilder {
	b.character.Battle = &entities.BattleSession{
		ID:        "battle-test-1",
		MonsterID: monsterID,
		MonsterHP: monsterHP,
		StartedAt: b.character.CreatedAt,
	}
	return b
}

// WithDaily sets the last claim date and streak
func (b *CharacterBuilder) WithDaily(lastClaim clock.Date, streak int) *CharacterBuilder {
	b.character.LastDailyClaim = lastClaim
	b.character.DailyStreak = streak
	return b
}

// Build returns the built character
func (b *CharacterBuilder) Build() *entities.Character {
	return b.character.Clone()
}
