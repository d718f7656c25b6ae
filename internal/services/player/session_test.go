package player_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/rpg-battle/internal/catalog"
	"github.com/KirkDiggler/rpg-battle/internal/economy/pool"
	poolmock "github.com/KirkDiggler/rpg-battle/internal/economy/pool/mock"
	"github.com/KirkDiggler/rpg-battle/internal/entities"
	"github.com/KirkDiggler/rpg-battle/internal/errors"
	"github.com/KirkDiggler/rpg-battle/internal/orchestrators/battle"
	battlemock "github.com/KirkDiggler/rpg-battle/internal/orchestrators/battle/mock"
	"github.com/KirkDiggler/rpg-battle/internal/orchestrators/daily"
	dailymock "github.com/KirkDiggler/rpg-battle/internal/orchestrators/daily/mock"
	"github.com/KirkDiggler/rpg-battle/internal/pkg/clock"
	"github.com/KirkDiggler/rpg-battle/internal/pkg/idgen"
	"github.com/KirkDiggler/rpg-battle/internal/pkg/random"
	characterrepo "github.com/KirkDiggler/rpg-battle/internal/repositories/character"
	charactermock "github.com/KirkDiggler/rpg-battle/internal/repositories/character/mock"
	"github.com/KirkDiggler/rpg-battle/internal/services/player"
	"github.com/KirkDiggler/rpg-battle/internal/testutils"
	"github.com/KirkDiggler/rpg-battle/internal/testutils/builders"
	"github.com/KirkDiggler/rpg-battle/internal/testutils/mocks"
)

type SessionTestSuite struct {
	suite.Suite
	ctrl       *gomock.Controller
	mockRepo   *charactermock.MockRepository
	mockBattle *battlemock.MockService
	mockDaily  *dailymock.MockService
	mockPool   *poolmock.MockPool
	clock      *clock.Fixed
	svc        player.Service
	ctx        context.Context
}

func TestSessionSuite(t *testing.T) {
	suite.Run(t, new(SessionTestSuite))
}

func (s *SessionTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockRepo = charactermock.NewMockRepository(s.ctrl)
	s.mockBattle = battlemock.NewMockService(s.ctrl)
	s.mockDaily = dailymock.NewMockService(s.ctrl)
	s.mockPool = poolmock.NewMockPool(s.ctrl)
	s.clock = &clock.Fixed{At: testutils.TestNow}
	s.ctx = context.Background()

	guard, err := pool.NewOwnerGuard(s.mockPool, testutils.TestOwnerID)
	s.Require().NoError(err)

	s.svc, err = player.NewService(&player.Config{
		Repository: s.mockRepo,
		Battle:     s.mockBattle,
		Daily:      s.mockDaily,
		Catalog:    catalog.Default(),
		Pool:       s.mockPool,
		OwnerGuard: guard,
		Clock:      s.clock,
	})
	s.Require().NoError(err)
}

func (s *SessionTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *SessionTestSuite) expectLoad(c *entities.Character) {
	mocks.ExpectCharacterGet(s.ctx, s.mockRepo, c)
}

func (s *SessionTestSuite) expectSave() {
	mocks.ExpectCharacterUpdate(s.ctx, s.mockRepo)
}

func (s *SessionTestSuite) TestNewServiceValidation() {
	_, err := player.NewService(nil)
	s.True(errors.IsInvalidArgument(err))

	_, err = player.NewService(&player.Config{Clock: s.clock})
	s.True(errors.IsInvalidArgument(err))
}

func (s *SessionTestSuite) TestStartCreatesCharacter() {
	s.mockRepo.EXPECT().
		Get(s.ctx, characterrepo.GetInput{ID: "p1"}).
		Return(nil, errors.NotFound("character not found"))
	s.mockRepo.EXPECT().
		Create(s.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input characterrepo.CreateInput) (*characterrepo.CreateOutput, error) {
			s.Equal("p1", input.Character.ID)
			s.Equal("Alyosha", input.Character.Name)
			s.Equal(testutils.TestNow, input.Character.CreatedAt)
			return &characterrepo.CreateOutput{Character: input.Character}, nil
		})

	out, err := s.svc.Start(s.ctx, &player.StartInput{PlayerID: "p1", Name: "Alyosha"})
	s.Require().NoError(err)
	s.True(out.Created)
	s.Equal(entities.StartBalance, out.Character.Balance)
}

func (s *SessionTestSuite) TestStartReturningPlayer() {
	c := testutils.CreateTestCharacter("p1")
	s.expectLoad(c)

	out, err := s.svc.Start(s.ctx, &player.StartInput{PlayerID: "p1", Name: "someone else"})
	s.Require().NoError(err)
	s.False(out.Created)
	s.Equal(testutils.TestCharacterName, out.Character.Name)
}

func (s *SessionTestSuite) TestStartLosesRegistrationRace() {
	c := testutils.CreateTestCharacter("p1")
	gomock.InOrder(
		s.mockRepo.EXPECT().
			Get(s.ctx, characterrepo.GetInput{ID: "p1"}).
			Return(nil, errors.NotFound("character not found")),
		s.mockRepo.EXPECT().
			Create(s.ctx, gomock.Any()).
			Return(nil, errors.AlreadyExistsf("character %s already exists", "p1")),
		s.mockRepo.EXPECT().
			Get(s.ctx, characterrepo.GetInput{ID: "p1"}).
			Return(&characterrepo.GetOutput{Character: c}, nil),
	)

	out, err := s.svc.Start(s.ctx, &player.StartInput{PlayerID: "p1"})
	s.Require().NoError(err)
	s.False(out.Created)
	s.Same(c, out.Character)
}

func (s *SessionTestSuite) TestActionsRequireStartedPlayer() {
	mocks.ExpectCharacterMissing(s.ctx, s.mockRepo, "ghost")

	_, err := s.svc.Attack(s.ctx, &player.AttackInput{PlayerID: "ghost"})
	s.True(errors.IsNotFound(err))
}

func (s *SessionTestSuite) TestEmptyPlayerID() {
	_, err := s.svc.Attack(s.ctx, &player.AttackInput{})
	s.True(errors.IsInvalidArgument(err))

	_, err = s.svc.Profile(s.ctx, &player.ProfileInput{})
	s.True(errors.IsInvalidArgument(err))

	_, err = s.svc.Start(s.ctx, nil)
	s.True(errors.IsInvalidArgument(err))
}

func (s *SessionTestSuite) TestAttackSavesCharacter() {
	c := builders.NewCharacterBuilder().WithID("p1").InBattle(1, 50).Build()
	s.expectLoad(c)
	s.clock.Advance(time.Minute)

	outcome := &battle.Outcome{Result: battle.ResultOngoing, MonsterHP: 41}
	s.mockBattle.EXPECT().
		Attack(s.ctx, &battle.AttackInput{Character: c}).
		DoAndReturn(func(_ context.Context, input *battle.AttackInput) (*battle.AttackOutput, error) {
			input.Character.Battle.MonsterHP = 41
			return &battle.AttackOutput{Outcome: outcome}, nil
		})
	s.mockRepo.EXPECT().
		Update(s.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input characterrepo.UpdateInput) (*characterrepo.UpdateOutput, error) {
			s.Equal(41, input.Character.Battle.MonsterHP)
			s.Equal(testutils.TestNow.Add(time.Minute), input.Character.LastActiveAt)
			return &characterrepo.UpdateOutput{Character: input.Character}, nil
		})

	out, err := s.svc.Attack(s.ctx, &player.AttackInput{PlayerID: "p1"})
	s.Require().NoError(err)
	s.Same(outcome, out.Outcome)
	s.Equal(41, out.Character.Battle.MonsterHP)
}

func (s *SessionTestSuite) TestFailedActionIsNotSaved() {
	testCases := []struct {
		name string
		run  func() error
		mock func()
	}{
		{
			name: "attack while idle",
			mock: func() {
				s.mockBattle.EXPECT().Attack(s.ctx, gomock.Any()).Return(nil, errors.NotInBattle())
			},
			run: func() error {
				_, err := s.svc.Attack(s.ctx, &player.AttackInput{PlayerID: "p1"})
				return err
			},
		},
		{
			name: "defend while idle",
			mock: func() {
				s.mockBattle.EXPECT().Defend(s.ctx, gomock.Any()).Return(nil, errors.NotInBattle())
			},
			run: func() error {
				_, err := s.svc.Defend(s.ctx, &player.DefendInput{PlayerID: "p1"})
				return err
			},
		},
		{
			name: "revive while alive",
			mock: func() {
				s.mockBattle.EXPECT().Revive(s.ctx, gomock.Any()).Return(nil, errors.CharacterAlive())
			},
			run: func() error {
				_, err := s.svc.Revive(s.ctx, &player.ReviveInput{PlayerID: "p1"})
				return err
			},
		},
		{
			name: "second daily claim",
			mock: func() {
				s.mockDaily.EXPECT().ClaimDaily(s.ctx, gomock.Any()).Return(nil, errors.AlreadyClaimedToday())
			},
			run: func() error {
				_, err := s.svc.ClaimDaily(s.ctx, &player.ClaimDailyInput{PlayerID: "p1"})
				return err
			},
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.expectLoad(testutils.CreateTestCharacter("p1"))
			tc.mock()

			err := tc.run()
			s.Error(err)
		})
	}
}

func (s *SessionTestSuite) TestSelectMonsterByName() {
	c := testutils.CreateTestCharacter("p1")
	s.expectLoad(c)
	s.mockBattle.EXPECT().
		SelectMonster(s.ctx, &battle.SelectMonsterInput{Character: c, MonsterID: 2}).
		Return(&battle.SelectMonsterOutput{Battle: &battle.View{BattleID: "b1"}}, nil)
	s.expectSave()

	out, err := s.svc.SelectMonster(s.ctx, &player.SelectMonsterInput{PlayerID: "p1", MonsterName: "волк"})
	s.Require().NoError(err)
	s.Equal("b1", out.Battle.BattleID)
}

func (s *SessionTestSuite) TestSelectUnknownMonsterName() {
	_, err := s.svc.SelectMonster(s.ctx, &player.SelectMonsterInput{PlayerID: "p1", MonsterName: "xyzzy"})
	s.True(errors.IsNotFound(err))
}

func (s *SessionTestSuite) TestChooseClass() {
	c := testutils.CreateTestCharacter("p1")
	s.expectLoad(c)
	s.mockBattle.EXPECT().
		ChooseClass(s.ctx, &battle.ChooseClassInput{Character: c, Class: entities.ClassMage}).
		Return(&battle.ChooseClassOutput{Bonus: entities.ClassMage.Bonus()}, nil)
	s.expectSave()

	out, err := s.svc.ChooseClass(s.ctx, &player.ChooseClassInput{PlayerID: "p1", Class: "Маг"})
	s.Require().NoError(err)
	s.Equal(entities.ClassMage.Bonus(), out.Bonus)
}

func (s *SessionTestSuite) TestChooseUnknownClass() {
	_, err := s.svc.ChooseClass(s.ctx, &player.ChooseClassInput{PlayerID: "p1", Class: "bard"})
	s.True(errors.IsInvalidArgument(err))
}

func (s *SessionTestSuite) TestClaimDailyRejectedStillSaves() {
	c := testutils.CreateTestCharacter("p1")
	s.expectLoad(c)
	claim := &daily.ClaimDailyOutput{Streak: 1, Coins: 50, PoolRejection: errors.PoolDisabled()}
	s.mockDaily.EXPECT().
		ClaimDaily(s.ctx, &daily.ClaimDailyInput{Character: c}).
		DoAndReturn(func(_ context.Context, input *daily.ClaimDailyInput) (*daily.ClaimDailyOutput, error) {
			input.Character.DailyStreak = 1
			return claim, nil
		})
	s.expectSave()

	out, err := s.svc.ClaimDaily(s.ctx, &player.ClaimDailyInput{PlayerID: "p1"})
	s.Require().NoError(err)
	s.False(out.Claim.Paid)
	s.Equal(1, out.Character.DailyStreak)
}

func (s *SessionTestSuite) TestBalance() {
	c := builders.NewCharacterBuilder().WithID("p1").WithBalance(321).Build()
	s.expectLoad(c)
	status := &pool.Status{TotalRemaining: 999, RemainingToday: 88}
	s.mockPool.EXPECT().Status(s.ctx).Return(status, nil)

	out, err := s.svc.Balance(s.ctx, &player.BalanceInput{PlayerID: "p1"})
	s.Require().NoError(err)
	s.Equal(int64(321), out.Balance)
	s.Same(status, out.Pool)
}

func (s *SessionTestSuite) TestLeaderboard() {
	c := testutils.CreateTestCharacter("p1")
	s.expectLoad(c)
	top := []*entities.Character{c}
	s.mockRepo.EXPECT().
		ListTopByRating(s.ctx, characterrepo.ListTopByRatingInput{Limit: player.LeaderboardSize}).
		Return(&characterrepo.ListTopByRatingOutput{Characters: top}, nil)
	s.mockRepo.EXPECT().
		GetRank(s.ctx, characterrepo.GetRankInput{ID: "p1"}).
		Return(&characterrepo.GetRankOutput{Rank: 7}, nil)

	out, err := s.svc.Leaderboard(s.ctx, &player.LeaderboardInput{PlayerID: "p1"})
	s.Require().NoError(err)
	s.Equal(top, out.Top)
	s.Equal(7, out.Rank)
}

func (s *SessionTestSuite) TestOwnerStatus() {
	status := &pool.Status{Enabled: true}
	s.mockPool.EXPECT().Status(s.ctx).Return(status, nil)
	s.mockRepo.EXPECT().Count(s.ctx, characterrepo.CountInput{}).Return(&characterrepo.CountOutput{Count: 42}, nil)

	out, err := s.svc.OwnerStatus(s.ctx, &player.OwnerStatusInput{ActorID: testutils.TestOwnerID})
	s.Require().NoError(err)
	s.Equal(int64(42), out.Players)
	s.Same(status, out.Pool)
}

func (s *SessionTestSuite) TestOwnerOperationsDenyOthers() {
	_, err := s.svc.OwnerStatus(s.ctx, &player.OwnerStatusInput{ActorID: "p1"})
	s.True(errors.IsPermissionDenied(err))

	_, err = s.svc.SetPoolEnabled(s.ctx, &player.SetPoolEnabledInput{ActorID: "p1", Enabled: false})
	s.True(errors.IsPermissionDenied(err))
}

func (s *SessionTestSuite) TestSetPoolEnabled() {
	gomock.InOrder(
		s.mockPool.EXPECT().SetEnabled(s.ctx, false).Return(nil),
		s.mockPool.EXPECT().Status(s.ctx).Return(&pool.Status{Enabled: false}, nil),
	)

	out, err := s.svc.SetPoolEnabled(s.ctx, &player.SetPoolEnabledInput{ActorID: testutils.TestOwnerID, Enabled: false})
	s.Require().NoError(err)
	s.False(out.Pool.Enabled)
}

// SessionFlowTestSuite runs the service over the real game stack
type SessionFlowTestSuite struct {
	suite.Suite
	repo characterrepo.Repository
	pool pool.Pool
	svc  player.Service
	ctx  context.Context
}

func TestSessionFlowSuite(t *testing.T) {
	suite.Run(t, new(SessionFlowTestSuite))
}

func (s *SessionFlowTestSuite) SetupTest() {
	s.ctx = context.Background()
	clk := &clock.Fixed{At: testutils.TestNow}
	roller := random.NewSeededRoller(7)

	var err error
	s.repo = characterrepo.NewInMemory()
	s.pool, err = pool.NewMemory(&pool.Config{
		Total:    pool.DefaultTotal,
		DailyCap: pool.DefaultDailyCap,
		Enabled:  true,
		Clock:    clk,
	})
	s.Require().NoError(err)

	guard, err := pool.NewOwnerGuard(s.pool, testutils.TestOwnerID)
	s.Require().NoError(err)

	battleSvc, err := battle.NewOrchestrator(&battle.Config{
		Catalog:     catalog.Default(),
		Pool:        s.pool,
		Roller:      roller,
		Clock:       clk,
		IDGenerator: idgen.NewSequential("battle"),
	})
	s.Require().NoError(err)

	dailySvc, err := daily.NewOrchestrator(&daily.Config{
		Pool:   s.pool,
		Roller: roller,
		Clock:  clk,
	})
	s.Require().NoError(err)

	s.svc, err = player.NewService(&player.Config{
		Repository: s.repo,
		Battle:     battleSvc,
		Daily:      dailySvc,
		Catalog:    catalog.Default(),
		Pool:       s.pool,
		OwnerGuard: guard,
		Clock:      clk,
	})
	s.Require().NoError(err)
}

func (s *SessionFlowTestSuite) TestFightToTheEnd() {
	_, err := s.svc.Start(s.ctx, &player.StartInput{PlayerID: "p1", Name: "Dobrynya"})
	s.Require().NoError(err)
	_, err = s.svc.ChooseClass(s.ctx, &player.ChooseClassInput{PlayerID: "p1", Class: "воин"})
	s.Require().NoError(err)

	selected, err := s.svc.SelectMonster(s.ctx, &player.SelectMonsterInput{PlayerID: "p1", MonsterName: "кабан"})
	s.Require().NoError(err)
	s.Equal(1, selected.Battle.Monster.ID)

	var last *player.AttackOutput
	for i := 0; i < 100; i++ {
		last, err = s.svc.Attack(s.ctx, &player.AttackInput{PlayerID: "p1"})
		s.Require().NoError(err)
		if last.Outcome.Result != battle.ResultOngoing {
			break
		}
	}
	s.Require().NotEqual(battle.ResultOngoing, last.Outcome.Result)

	// a warrior always beats a boar
	s.Equal(battle.ResultVictory, last.Outcome.Result)
	s.True(last.Outcome.Paid)

	stored, err := s.repo.Get(s.ctx, characterrepo.GetInput{ID: "p1"})
	s.Require().NoError(err)
	s.False(stored.Character.InBattle())
	s.Equal(1, stored.Character.Kills)
	s.Equal(entities.StartBalance+last.Outcome.Reward.Coins, stored.Character.Balance)

	status, err := s.pool.Status(s.ctx)
	s.Require().NoError(err)
	s.Equal(last.Outcome.Reward.Coins, status.DistributedToday)

	profile, err := s.svc.Profile(s.ctx, &player.ProfileInput{PlayerID: "p1"})
	s.Require().NoError(err)
	s.Equal(stored.Character.Experience, profile.Progress.IntoLevel)
}

func (s *SessionFlowTestSuite) TestConcurrentDailyClaimsPayOnce() {
	_, err := s.svc.Start(s.ctx, &player.StartInput{PlayerID: "p1"})
	s.Require().NoError(err)

	const workers = 16
	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		paid    int
		claimed int
	)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			out, err := s.svc.ClaimDaily(s.ctx, &player.ClaimDailyInput{PlayerID: "p1"})
			mu.Lock()
			defer mu.Unlock()
			if errors.HasReason(err, errors.ReasonAlreadyClaimedToday) {
				claimed++
				return
			}
			if err == nil && out.Claim.Paid {
				paid++
			}
		}()
	}
	wg.Wait()

	s.Equal(1, paid)
	s.Equal(workers-1, claimed)

	status, err := s.pool.Status(s.ctx)
	s.Require().NoError(err)
	stored, err := s.repo.Get(s.ctx, characterrepo.GetInput{ID: "p1"})
	s.Require().NoError(err)
	s.Equal(entities.StartBalance+status.DistributedToday, stored.Character.Balance)
}

func (s *SessionFlowTestSuite) TestInventorySortedByName() {
	c := testutils.CreateTestCharacter("p1")
	c.AddItem("Шкура волка")
	c.AddItem("Шкура кабана")
	c.AddItem("Шкура волка")
	_, err := s.repo.Create(s.ctx, characterrepo.CreateInput{Character: c})
	s.Require().NoError(err)

	out, err := s.svc.Inventory(s.ctx, &player.InventoryInput{PlayerID: "p1"})
	s.Require().NoError(err)
	s.Equal([]player.InventoryItem{
		{Name: "Шкура волка", Count: 2},
		{Name: "Шкура кабана", Count: 1},
	}, out.Items)
}

func (s *SessionFlowTestSuite) TestLeaderboardAndRank() {
	for _, p := range []struct {
		id     string
		rating int
	}{
		{"a", 30}, {"b", 50}, {"c", 10}, {"d", 40}, {"e", 20}, {"f", 60}, {"g", 0},
	} {
		c := builders.NewCharacterBuilder().WithID(p.id).WithRating(p.rating).Build()
		_, err := s.repo.Create(s.ctx, characterrepo.CreateInput{Character: c})
		s.Require().NoError(err)
	}

	out, err := s.svc.Leaderboard(s.ctx, &player.LeaderboardInput{PlayerID: "g"})
	s.Require().NoError(err)
	s.Require().Len(out.Top, player.LeaderboardSize)

	ids := make([]string, 0, len(out.Top))
	for _, c := range out.Top {
		ids = append(ids, c.ID)
	}
	s.Equal([]string{"f", "b", "d", "a", "e"}, ids)
	s.Equal(7, out.Rank)
}

func (s *SessionFlowTestSuite) TestListMonsters() {
	_, err := s.svc.Start(s.ctx, &player.StartInput{PlayerID: "p1"})
	s.Require().NoError(err)

	out, err := s.svc.ListMonsters(s.ctx, &player.ListMonstersInput{PlayerID: "p1"})
	s.Require().NoError(err)
	s.Equal(1, out.Level)
	s.Len(out.All, 5)
	s.Less(len(out.Available), len(out.All))
}

// SharedRedisSessionTestSuite runs two services, as two processes would,
// over one Redis holding both the characters and the pool
type SharedRedisSessionTestSuite struct {
	suite.Suite
	redis *testutils.TestRedis
	clock *clock.Fixed
	ctx   context.Context
}

func TestSharedRedisSessionSuite(t *testing.T) {
	suite.Run(t, new(SharedRedisSessionTestSuite))
}

func (s *SharedRedisSessionTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.clock = &clock.Fixed{At: testutils.TestNow}
	s.redis = testutils.NewTestRedis(s.T())
}

func (s *SharedRedisSessionTestSuite) TearDownTest() {
	s.redis.Close()
}

func (s *SharedRedisSessionTestSuite) newService(seed uint64) (player.Service, pool.Pool) {
	roller := random.NewSeededRoller(seed)

	repo, err := characterrepo.NewRedis(&characterrepo.RedisConfig{Client: s.redis.Client})
	s.Require().NoError(err)
	rewards, err := pool.NewRedis(s.ctx, &pool.RedisConfig{
		Config: pool.Config{
			Total:    pool.DefaultTotal,
			DailyCap: pool.DefaultDailyCap,
			Enabled:  true,
			Clock:    s.clock,
		},
		Client: s.redis.Client,
	})
	s.Require().NoError(err)
	guard, err := pool.NewOwnerGuard(rewards, testutils.TestOwnerID)
	s.Require().NoError(err)

	battleSvc, err := battle.NewOrchestrator(&battle.Config{
		Catalog:     catalog.Default(),
		Pool:        rewards,
		Roller:      roller,
		Clock:       s.clock,
		IDGenerator: idgen.NewSequential("battle"),
	})
	s.Require().NoError(err)
	dailySvc, err := daily.NewOrchestrator(&daily.Config{
		Pool:   rewards,
		Roller: roller,
		Clock:  s.clock,
	})
	s.Require().NoError(err)

	svc, err := player.NewService(&player.Config{
		Repository: repo,
		Battle:     battleSvc,
		Daily:      dailySvc,
		Catalog:    catalog.Default(),
		Pool:       rewards,
		OwnerGuard: guard,
		Clock:      s.clock,
	})
	s.Require().NoError(err)
	return svc, rewards
}

func (s *SharedRedisSessionTestSuite) TestSecondProcessCannotClaimDailyAgain() {
	first, rewards := s.newService(7)
	second, _ := s.newService(11)

	_, err := first.Start(s.ctx, &player.StartInput{PlayerID: "p1"})
	s.Require().NoError(err)
	// the second process has seen the player before the claim
	_, err = second.Balance(s.ctx, &player.BalanceInput{PlayerID: "p1"})
	s.Require().NoError(err)

	claimed, err := first.ClaimDaily(s.ctx, &player.ClaimDailyInput{PlayerID: "p1"})
	s.Require().NoError(err)
	s.Require().True(claimed.Claim.Paid)

	_, err = second.ClaimDaily(s.ctx, &player.ClaimDailyInput{PlayerID: "p1"})
	s.True(errors.HasReason(err, errors.ReasonAlreadyClaimedToday), "got %v", err)

	balance, err := second.Balance(s.ctx, &player.BalanceInput{PlayerID: "p1"})
	s.Require().NoError(err)
	s.Equal(entities.StartBalance+claimed.Claim.Coins, balance.Balance)

	status, err := rewards.Status(s.ctx)
	s.Require().NoError(err)
	s.Equal(claimed.Claim.Coins, status.DistributedToday)
}
