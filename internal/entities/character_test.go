package entities_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/KirkDiggler/rpg-toolkit/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/rpg-battle/internal/entities"
	"github.com/KirkDiggler/rpg-battle/internal/errors"
	"github.com/KirkDiggler/rpg-battle/internal/pkg/clock"
)

var (
	_ core.Entity = (*entities.Character)(nil)
	_ core.Entity = (*entities.Monster)(nil)
)

func TestNewCharacterStartingStats(t *testing.T) {
	now := time.Date(2026, 10, 16, 9, 0, 0, 0, time.UTC)
	c := entities.NewCharacter("42", "Ivan", now)

	assert.Equal(t, 1, c.Level)
	assert.Equal(t, 100, c.HP)
	assert.Equal(t, 100, c.MaxHP)
	assert.Equal(t, 10, c.Attack)
	assert.Equal(t, 5, c.Defense)
	assert.Equal(t, int64(100), c.Balance)
	assert.Equal(t, entities.ClassUnset, c.Class)
	assert.False(t, c.InBattle())
	assert.False(t, c.IsDead())
	assert.Equal(t, "42", c.GetID())
	assert.Equal(t, entities.EntityTypeCharacter, c.GetType())
}

func TestCloneIsDeep(t *testing.T) {
	c := entities.NewCharacter("1", "A", time.Now())
	c.AddItem("Клык волка")
	c.Battle = &entities.BattleSession{ID: "b1", MonsterID: 2, MonsterHP: 80}

	clone := c.Clone()
	clone.AddItem("Клык волка")
	clone.Battle.MonsterHP = 10

	assert.Equal(t, 1, c.Inventory["Клык волка"])
	assert.Equal(t, 80, c.Battle.MonsterHP)
	assert.Equal(t, 2, clone.Inventory["Клык волка"])

	var nilChar *entities.Character
	assert.Nil(t, nilChar.Clone())
}

func TestCharacterJSONRoundTrip(t *testing.T) {
	c := entities.NewCharacter("7", "Olga", time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC))
	c.Class = entities.ClassMage
	c.AddItem("Шкура кабана")
	c.LastDailyClaim = clock.Date{Year: 2026, Month: time.January, Day: 2}
	c.Battle = &entities.BattleSession{ID: "b", MonsterID: 1, MonsterHP: 33}

	data, err := json.Marshal(c)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"class":"mage"`)
	assert.Contains(t, string(data), `"last_daily_claim":"2026-01-02"`)

	var out entities.Character
	require.NoError(t, json.Unmarshal(data, &out))
	assert.Equal(t, c, &out)
}

func TestClassTable(t *testing.T) {
	testCases := []struct {
		name  string
		class entities.Class
		bonus entities.ClassBonus
	}{
		{"воин", entities.ClassWarrior, entities.ClassBonus{HP: 20, Attack: 5, Defense: 10}},
		{"Archer", entities.ClassArcher, entities.ClassBonus{HP: 10, Attack: 10, Defense: 5}},
		{" маг ", entities.ClassMage, entities.ClassBonus{HP: 5, Attack: 15, Defense: 5}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			class, err := entities.ParseClass(tc.name)
			require.NoError(t, err)
			assert.Equal(t, tc.class, class)
			assert.Equal(t, tc.bonus, class.Bonus())
			assert.True(t, class.Valid())
		})
	}

	_, err := entities.ParseClass("paladin")
	assert.True(t, errors.IsInvalidArgument(err))
	assert.False(t, entities.ClassUnset.Valid())
	assert.Equal(t, entities.ClassBonus{}, entities.ClassUnset.Bonus())
	assert.Len(t, entities.Classes(), 3)
}
