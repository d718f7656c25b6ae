package testutils

import (
	"time"

	"github.com/KirkDiggler/rpg-battle/internal/entities"
	"github.com/KirkDiggler/rpg-battle/internal/pkg/clock"
)

const (
	// TestCharacterName is the default character name for test fixtures
	TestCharacterName = "Илья Муромец"

	// TestOwnerID is the pool owner in tests
	TestOwnerID = "owner-1"
)

// TestNow is the fixed instant tests run at
var TestNow = time.Date(2026, time.October, 16, 12, 0, 0, 0, time.UTC)

// TestToday is the calendar date of TestNow
var TestToday = clock.DateOf(TestNow)

// CreateTestCharacter creates a fresh level 1 character
func CreateTestCharacter(playerID string) *entities.Character {
	return entities.NewCharacter(playerID, TestCharacterName, TestNow)
}

// CreateTestMonster returns the level 1 boar from the catalog table
func CreateTestMonster() *entities.Monster {
	return &entities.Monster{
		ID:               1,
		Name:             "🐗 Кабан",
		Level:            1,
		HP:               50,
		Attack:           8,
		Defense:          2,
		ExperienceReward: 20,
		Coins:            entities.CoinRange{Min: 10, Max: 25},
		DropItem:         "Шкура кабана",
		DropChance:       0.30,
	}
}
