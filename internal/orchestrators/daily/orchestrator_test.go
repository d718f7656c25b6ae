package daily_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/rpg-battle/internal/economy/pool"
	poolmock "github.com/KirkDiggler/rpg-battle/internal/economy/pool/mock"
	"github.com/KirkDiggler/rpg-battle/internal/errors"
	"github.com/KirkDiggler/rpg-battle/internal/orchestrators/daily"
	"github.com/KirkDiggler/rpg-battle/internal/pkg/clock"
	"github.com/KirkDiggler/rpg-battle/internal/testutils"
	"github.com/KirkDiggler/rpg-battle/internal/testutils/builders"
	"github.com/KirkDiggler/rpg-battle/internal/testutils/mocks"
)

type OrchestratorTestSuite struct {
	suite.Suite
	ctx    context.Context
	clock  *clock.Fixed
	roller *testutils.ScriptedRoller
	pool   pool.Pool
	orch   daily.Service
}

func TestOrchestratorSuite(t *testing.T) {
	suite.Run(t, new(OrchestratorTestSuite))
}

func (s *OrchestratorTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.clock = &clock.Fixed{At: testutils.TestNow}
	s.roller = testutils.NewScriptedRoller()

	var err error
	s.pool, err = pool.NewMemory(&pool.Config{
		Total:    pool.DefaultTotal,
		DailyCap: pool.DefaultDailyCap,
		Enabled:  true,
		Clock:    s.clock,
	})
	s.Require().NoError(err)

	s.orch, err = daily.NewOrchestrator(&daily.Config{
		Pool:   s.pool,
		Roller: s.roller,
		Clock:  s.clock,
	})
	s.Require().NoError(err)
}

func (s *OrchestratorTestSuite) TestFirstClaim() {
	c := testutils.CreateTestCharacter("p1")
	s.roller.Push(testutils.FractionRoll(0.5))

	out, err := s.orch.ClaimDaily(s.ctx, &daily.ClaimDailyInput{Character: c})
	s.Require().NoError(err)

	s.True(out.Paid)
	s.Equal(1, out.Streak)
	s.Equal(int64(55), out.Coins)
	s.Equal(int64(33), out.Experience)
	s.InDelta(1.0, out.Multiplier, 1e-9)

	s.Equal(int64(155), c.Balance)
	s.Equal(int64(33), c.Experience)
	s.Equal(testutils.TestToday, c.LastDailyClaim)
	s.Equal(1, c.DailyStreak)

	st, err := s.pool.Status(s.ctx)
	s.Require().NoError(err)
	s.Equal(int64(55), st.DistributedToday)
}

func (s *OrchestratorTestSuite) TestAlreadyClaimedToday() {
	c := builders.NewCharacterBuilder().WithDaily(testutils.TestToday, 4).Build()

	_, err := s.orch.ClaimDaily(s.ctx, &daily.ClaimDailyInput{Character: c})
	s.True(errors.HasReason(err, errors.ReasonAlreadyClaimedToday))
	s.Equal(4, c.DailyStreak)
	s.Empty(s.roller.Sizes())
}

func (s *OrchestratorTestSuite) TestStreakSequenceWithGap() {
	c := testutils.CreateTestCharacter("p1")
	day := testutils.TestToday

	var streaks []int
	for _, offset := range []int{0, 1, 3} {
		s.roller.Push(testutils.FractionRoll(0.5))
		out, err := s.orch.ClaimDaily(s.ctx, &daily.ClaimDailyInput{Character: c, Today: day.AddDays(offset)})
		s.Require().NoError(err)
		streaks = append(streaks, out.Streak)
	}

	s.Equal([]int{1, 2, 1}, streaks)
}

func (s *OrchestratorTestSuite) TestStreakBonusScales() {
	c := builders.NewCharacterBuilder().WithDaily(testutils.TestToday.AddDays(-1), 1).Build()
	s.roller.Push(testutils.FractionRoll(0.5))

	out, err := s.orch.ClaimDaily(s.ctx, &daily.ClaimDailyInput{Character: c})
	s.Require().NoError(err)

	s.Equal(2, out.Streak)
	s.Equal(int64(60), out.Coins)
	s.Equal(int64(36), out.Experience)
}

func (s *OrchestratorTestSuite) TestClockDecidesToday() {
	c := builders.NewCharacterBuilder().WithDaily(testutils.TestToday, 1).Build()
	s.clock.Advance(24 * time.Hour)
	s.roller.Push(testutils.FractionRoll(0.5))

	out, err := s.orch.ClaimDaily(s.ctx, &daily.ClaimDailyInput{Character: c})
	s.Require().NoError(err)
	s.Equal(2, out.Streak)
	s.Equal(testutils.TestToday.AddDays(1), c.LastDailyClaim)
}

func (s *OrchestratorTestSuite) TestStreakBonusHelpers() {
	s.InDelta(0.1, daily.StreakBonus(1), 1e-9)
	s.InDelta(0.5, daily.StreakBonus(5), 1e-9)
	s.InDelta(1.0, daily.StreakBonus(10), 1e-9)
	s.InDelta(1.0, daily.StreakBonus(40), 1e-9)

	today := testutils.TestToday
	s.Equal(1, daily.NextStreak(clock.Date{}, today, 0))
	s.Equal(4, daily.NextStreak(today.AddDays(-1), today, 3))
	s.Equal(1, daily.NextStreak(today.AddDays(-2), today, 3))
}

func (s *OrchestratorTestSuite) TestNilInput() {
	_, err := s.orch.ClaimDaily(s.ctx, nil)
	s.True(errors.IsInvalidArgument(err))

	_, err = s.orch.ClaimDaily(s.ctx, &daily.ClaimDailyInput{})
	s.True(errors.IsInvalidArgument(err))
}

type PoolRejectionTestSuite struct {
	suite.Suite
	ctx      context.Context
	ctrl     *gomock.Controller
	mockPool *poolmock.MockPool
	roller   *testutils.ScriptedRoller
	orch     daily.Service
}

func TestPoolRejectionSuite(t *testing.T) {
	suite.Run(t, new(PoolRejectionTestSuite))
}

func (s *PoolRejectionTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.ctrl = gomock.NewController(s.T())
	s.mockPool = poolmock.NewMockPool(s.ctrl)
	s.roller = testutils.NewScriptedRoller()

	var err error
	s.orch, err = daily.NewOrchestrator(&daily.Config{
		Pool:   s.mockPool,
		Roller: s.roller,
		Clock:  &clock.Fixed{At: testutils.TestNow},
	})
	s.Require().NoError(err)
}

func (s *PoolRejectionTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *PoolRejectionTestSuite) TestRejectedClaimKeepsStreakButPaysNothing() {
	yesterday := testutils.TestToday.AddDays(-1)
	c := builders.NewCharacterBuilder().WithDaily(yesterday, 2).Build()
	s.roller.Push(testutils.FractionRoll(0.5))
	mocks.ExpectPayout(s.ctx, s.mockPool, 65, errors.PoolExhausted(10))

	out, err := s.orch.ClaimDaily(s.ctx, &daily.ClaimDailyInput{Character: c})
	s.Require().NoError(err)

	s.False(out.Paid)
	s.True(errors.HasReason(out.PoolRejection, errors.ReasonPoolExhausted))
	s.Nil(out.Progression)
	s.Equal(3, c.DailyStreak)
	s.Equal(yesterday, c.LastDailyClaim)
	s.Equal(int64(100), c.Balance)
	s.Zero(c.Experience)
}

func (s *PoolRejectionTestSuite) TestRetryAfterRejectionAdvancesStreakAgain() {
	yesterday := testutils.TestToday.AddDays(-1)
	c := builders.NewCharacterBuilder().WithDaily(yesterday, 2).Build()
	s.roller.Push(testutils.FractionRoll(0.5), testutils.FractionRoll(0.5))
	gomock.InOrder(
		mocks.ExpectPayout(s.ctx, s.mockPool, 65, errors.PoolDisabled()),
		mocks.ExpectPayout(s.ctx, s.mockPool, 70, nil),
	)

	_, err := s.orch.ClaimDaily(s.ctx, &daily.ClaimDailyInput{Character: c})
	s.Require().NoError(err)

	out, err := s.orch.ClaimDaily(s.ctx, &daily.ClaimDailyInput{Character: c})
	s.Require().NoError(err)
	s.True(out.Paid)
	s.Equal(4, out.Streak)
	s.Equal(testutils.TestToday, c.LastDailyClaim)
}

func (s *PoolRejectionTestSuite) TestPoolFailureIsAnError() {
	c := testutils.CreateTestCharacter("p1")
	s.roller.Push(testutils.FractionRoll(0.5))
	mocks.ExpectPayout(s.ctx, s.mockPool, 55, errors.Internal("redis down"))

	_, err := s.orch.ClaimDaily(s.ctx, &daily.ClaimDailyInput{Character: c})
	s.Error(err)
}
