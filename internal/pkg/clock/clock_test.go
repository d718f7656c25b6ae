package clock_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/rpg-battle/internal/errors"
	"github.com/KirkDiggler/rpg-battle/internal/pkg/clock"
	clockmock "github.com/KirkDiggler/rpg-battle/internal/pkg/clock/mock"
)

func TestToday(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockClock := clockmock.NewMockClock(ctrl)

	// 23:30 UTC is already the next day in Moscow
	mockClock.EXPECT().Now().Return(time.Date(2026, 3, 31, 23, 30, 0, 0, time.UTC)).Times(2)

	moscow := time.FixedZone("MSK", 3*60*60)
	assert.Equal(t, clock.Date{Year: 2026, Month: time.April, Day: 1}, clock.Today(mockClock, moscow))
	assert.Equal(t, clock.Date{Year: 2026, Month: time.March, Day: 31}, clock.Today(mockClock, nil))
}

func TestFixedAdvance(t *testing.T) {
	c := &clock.Fixed{At: time.Date(2026, 12, 31, 12, 0, 0, 0, time.UTC)}
	c.Advance(24 * time.Hour)
	assert.Equal(t, clock.Date{Year: 2027, Month: time.January, Day: 1}, clock.Today(c, time.UTC))
}

func TestDateArithmetic(t *testing.T) {
	d := clock.Date{Year: 2024, Month: time.February, Day: 28}

	assert.Equal(t, clock.Date{Year: 2024, Month: time.February, Day: 29}, d.AddDays(1))
	assert.Equal(t, clock.Date{Year: 2024, Month: time.March, Day: 1}, d.AddDays(2))
	assert.Equal(t, clock.Date{Year: 2024, Month: time.February, Day: 27}, d.AddDays(-1))
	assert.True(t, d.Before(d.AddDays(1)))
	assert.False(t, d.Before(d))
	assert.Equal(t, "2024-02-28", d.String())
	assert.True(t, clock.Date{}.IsZero())
	assert.Equal(t, "", clock.Date{}.String())
}

func TestDateJSON(t *testing.T) {
	type wrapper struct {
		Last clock.Date `json:"last"`
	}

	data, err := json.Marshal(wrapper{Last: clock.Date{Year: 2026, Month: time.October, Day: 16}})
	require.NoError(t, err)
	assert.JSONEq(t, `{"last":"2026-10-16"}`, string(data))

	var out wrapper
	require.NoError(t, json.Unmarshal(data, &out))
	assert.Equal(t, clock.Date{Year: 2026, Month: time.October, Day: 16}, out.Last)

	var empty wrapper
	require.NoError(t, json.Unmarshal([]byte(`{"last":""}`), &empty))
	assert.True(t, empty.Last.IsZero())

	_, err = clock.ParseDate("16.10.2026")
	assert.True(t, errors.IsInvalidArgument(err))
}
