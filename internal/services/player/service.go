// Package player defines the per-player session operations. Each call loads
// the player's character, runs one game action and saves the result.
package player

//go:generate mockgen -destination=mock/mock_service.go -package=playermock github.com/KirkDiggler/rpg-battle/internal/services/player Service

import (
	"context"

	"github.com/KirkDiggler/rpg-battle/internal/economy/pool"
	"github.com/KirkDiggler/rpg-battle/internal/entities"
	"github.com/KirkDiggler/rpg-battle/internal/orchestrators/battle"
	"github.com/KirkDiggler/rpg-battle/internal/orchestrators/daily"
	"github.com/KirkDiggler/rpg-battle/internal/rules/levelcurve"
)

// LeaderboardSize is how many players the leaderboard lists
const LeaderboardSize = 5

// Service defines the interface for player session operations
type Service interface {
	// Session lifecycle
	Start(ctx context.Context, input *StartInput) (*StartOutput, error)
	ChooseClass(ctx context.Context, input *ChooseClassInput) (*ChooseClassOutput, error)

	// Battle
	ListMonsters(ctx context.Context, input *ListMonstersInput) (*ListMonstersOutput, error)
	SelectMonster(ctx context.Context, input *SelectMonsterInput) (*SelectMonsterOutput, error)
	Attack(ctx context.Context, input *AttackInput) (*AttackOutput, error)
	Defend(ctx context.Context, input *DefendInput) (*DefendOutput, error)
	Flee(ctx context.Context, input *FleeInput) (*FleeOutput, error)
	Revive(ctx context.Context, input *ReviveInput) (*ReviveOutput, error)

	// Economy
	ClaimDaily(ctx context.Context, input *ClaimDailyInput) (*ClaimDailyOutput, error)
	Balance(ctx context.Context, input *BalanceInput) (*BalanceOutput, error)

	// Read-only views
	Profile(ctx context.Context, input *ProfileInput) (*ProfileOutput, error)
	Inventory(ctx context.Context, input *InventoryInput) (*InventoryOutput, error)
	Leaderboard(ctx context.Context, input *LeaderboardInput) (*LeaderboardOutput, error)

	// Owner only
	OwnerStatus(ctx context.Context, input *OwnerStatusInput) (*OwnerStatusOutput, error)
	SetPoolEnabled(ctx context.Context, input *SetPoolEnabledInput) (*SetPoolEnabledOutput, error)
}

// Session lifecycle types

// StartInput registers a player or resumes their session
type StartInput struct {
	PlayerID string
	Name     string
}

// StartOutput returns the player's character
type StartOutput struct {
	Character *entities.Character
	// Created is false for a returning player
	Created bool
}

// ChooseClassInput picks a class by name
type ChooseClassInput struct {
	PlayerID string
	Class    string
}

// ChooseClassOutput returns the updated character
type ChooseClassOutput struct {
	Character *entities.Character
	Bonus     entities.ClassBonus
}

// Battle types

// ListMonstersInput asks for the monsters a player may fight
type ListMonstersInput struct {
	PlayerID string
}

// ListMonstersOutput lists the whole catalog and the fightable subset
type ListMonstersOutput struct {
	Level     int
	Available []entities.Monster
	All       []entities.Monster
}

// SelectMonsterInput starts a battle. MonsterName is matched loosely when
// MonsterID is zero.
type SelectMonsterInput struct {
	PlayerID    string
	MonsterID   int
	MonsterName string
}

// SelectMonsterOutput describes the new battle
type SelectMonsterOutput struct {
	Character *entities.Character
	Battle    *battle.View
}

// AttackInput runs one combat round
type AttackInput struct {
	PlayerID string
}

// AttackOutput carries the round outcome
type AttackOutput struct {
	Character *entities.Character
	Outcome   *battle.Outcome
}

// DefendInput heals instead of attacking
type DefendInput struct {
	PlayerID string
}

// DefendOutput reports the heal
type DefendOutput struct {
	Character *entities.Character
	Healed    int
}

// FleeInput leaves the current battle
type FleeInput struct {
	PlayerID string
}

// FleeOutput names the monster left behind
type FleeOutput struct {
	Character *entities.Character
	Monster   *entities.Monster
}

// ReviveInput pays to come back from the dead
type ReviveInput struct {
	PlayerID string
}

// ReviveOutput reports the fee
type ReviveOutput struct {
	Character *entities.Character
	Cost      int64
}

// Economy types

// ClaimDailyInput claims today's bonus
type ClaimDailyInput struct {
	PlayerID string
}

// ClaimDailyOutput describes the claim
type ClaimDailyOutput struct {
	Character *entities.Character
	Claim     *daily.ClaimDailyOutput
}

// BalanceInput asks for the player's coins
type BalanceInput struct {
	PlayerID string
}

// BalanceOutput shows the player's coins next to the shared pool
type BalanceOutput struct {
	Balance int64
	Pool    *pool.Status
}

// Read-only view types

// ProfileInput asks for the player's character sheet
type ProfileInput struct {
	PlayerID string
}

// ProfileOutput is the character sheet
type ProfileOutput struct {
	Character *entities.Character
	Progress  levelcurve.Progress
}

// InventoryInput asks for the player's items
type InventoryInput struct {
	PlayerID string
}

// InventoryItem is one stack of items
type InventoryItem struct {
	Name  string
	Count int
}

// InventoryOutput lists item stacks by name
type InventoryOutput struct {
	Items []InventoryItem
}

// LeaderboardInput asks for the top players and the caller's place
type LeaderboardInput struct {
	PlayerID string
}

// LeaderboardOutput lists the best rated players
type LeaderboardOutput struct {
	Top []*entities.Character
	// Rank is the caller's 1-based position
	Rank int
}

// Owner types

// OwnerStatusInput asks for the bot status
type OwnerStatusInput struct {
	ActorID string
}

// OwnerStatusOutput is the bot status
type OwnerStatusOutput struct {
	Players int64
	Pool    *pool.Status
}

// SetPoolEnabledInput switches payouts on or off
type SetPoolEnabledInput struct {
	ActorID string
	Enabled bool
}

// SetPoolEnabledOutput returns the pool status after the switch
type SetPoolEnabledOutput struct {
	Pool *pool.Status
}
