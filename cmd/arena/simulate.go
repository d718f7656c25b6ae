package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"sort"
	"sync/atomic"

	"github.com/KirkDiggler/rpg-toolkit/events"
	"github.com/puzpuzpuz/xsync/v3"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/KirkDiggler/rpg-battle/internal/entities"
	"github.com/KirkDiggler/rpg-battle/internal/errors"
	"github.com/KirkDiggler/rpg-battle/internal/orchestrators/battle"
	"github.com/KirkDiggler/rpg-battle/internal/pkg/random"
	"github.com/KirkDiggler/rpg-battle/internal/services/player"
)

// maxRounds stops a battle that somehow never ends
const maxRounds = 500

var simOpts simOptions

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Run concurrent bot players against one reward pool",
	Long: `Simulate starts many bot players at once. Each claims the daily bonus and
fights the strongest monster it may face, over and over, while all of them
draw on the same pool.

  arena simulate --players 50 --battles 20 --seed 42`,
	Args: cobra.NoArgs,
	RunE: runSimulate,
}

func init() {
	simulateCmd.Flags().IntVar(&simOpts.Players, "players", 20, "number of concurrent players")
	simulateCmd.Flags().IntVar(&simOpts.Battles, "battles", 10, "battles per player")
	simulateCmd.Flags().Uint64Var(&simOpts.Seed, "seed", 0, "seed for reproducible dice, 0 for random")
}

type simOptions struct {
	Players int
	Battles int
	Seed    uint64
}

// simReport sums up a simulation
type simReport struct {
	Victories   int64
	Defeats     int64
	Unpaid      int64
	Revives     int64
	Balances    int64
	Distributed int64
	Remaining   int64
	Events      map[string]int64
}

func runSimulate(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	deps := appDeps{}
	if simOpts.Seed != 0 {
		deps.Roller = random.NewSeededRoller(simOpts.Seed)
	}

	a, err := buildApp(ctx, cfg, deps)
	if err != nil {
		return err
	}
	defer a.close()

	report, err := simulate(ctx, a, simOpts)
	if err != nil {
		return err
	}
	report.write(os.Stdout)
	return nil
}

func simulate(ctx context.Context, a *app, opts simOptions) (*simReport, error) {
	if opts.Players <= 0 || opts.Battles < 0 {
		return nil, errors.InvalidArgument("players must be positive and battles not negative")
	}

	tally := xsync.NewMapOf[string, int64]()
	count := func(_ context.Context, e events.Event) error {
		tally.Compute(e.Type(), func(old int64, _ bool) (int64, bool) {
			return old + 1, false
		})
		return nil
	}
	var subs []string
	for _, t := range []string{
		entities.EventBattleStarted, entities.EventBattleVictory, entities.EventBattleDefeat,
		entities.EventLevelUp, entities.EventDailyClaimed, entities.EventRevived,
	} {
		subs = append(subs, a.bus.SubscribeFunc(t, 0, count))
	}
	defer func() {
		for _, id := range subs {
			_ = a.bus.Unsubscribe(id) // nolint:errcheck // best effort
		}
	}()

	report := &simReport{}
	g, gctx := errgroup.WithContext(ctx)
	for i := 0; i < opts.Players; i++ {
		id := fmt.Sprintf("bot-%03d", i+1)
		class := entities.Classes()[i%len(entities.Classes())]
		g.Go(func() error {
			return runBot(gctx, a.players, id, class, opts.Battles, report)
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	for i := 0; i < opts.Players; i++ {
		out, err := a.players.Balance(ctx, &player.BalanceInput{PlayerID: fmt.Sprintf("bot-%03d", i+1)})
		if err != nil {
			return nil, err
		}
		report.Balances += out.Balance
	}

	status, err := a.pool.Status(ctx)
	if err != nil {
		return nil, err
	}
	report.Distributed = status.DistributedToday
	report.Remaining = status.TotalRemaining

	report.Events = make(map[string]int64)
	tally.Range(func(k string, v int64) bool {
		report.Events[k] = v
		return true
	})
	return report, nil
}

func runBot(ctx context.Context, players player.Service, id string, class entities.Class, battles int, report *simReport) error {
	if _, err := players.Start(ctx, &player.StartInput{PlayerID: id, Name: id}); err != nil {
		return err
	}
	if _, err := players.ChooseClass(ctx, &player.ChooseClassInput{PlayerID: id, Class: class.String()}); err != nil {
		return err
	}
	if _, err := players.ClaimDaily(ctx, &player.ClaimDailyInput{PlayerID: id}); err != nil {
		return err
	}

	for b := 0; b < battles; b++ {
		if err := ctx.Err(); err != nil {
			return err
		}

		list, err := players.ListMonsters(ctx, &player.ListMonstersInput{PlayerID: id})
		if err != nil {
			return err
		}
		target := list.Available[len(list.Available)-1]

		_, err = players.SelectMonster(ctx, &player.SelectMonsterInput{PlayerID: id, MonsterID: target.ID})
		if errors.HasReason(err, errors.ReasonCharacterDead) {
			if _, err := players.Revive(ctx, &player.ReviveInput{PlayerID: id}); err != nil {
				if errors.HasReason(err, errors.ReasonInsufficientFunds) {
					return nil
				}
				return err
			}
			atomic.AddInt64(&report.Revives, 1)
			continue
		}
		if err != nil {
			return err
		}

		if err := fightToTheEnd(ctx, players, id, report); err != nil {
			return err
		}
	}
	return nil
}

func fightToTheEnd(ctx context.Context, players player.Service, id string, report *simReport) error {
	for round := 0; round < maxRounds; round++ {
		out, err := players.Attack(ctx, &player.AttackInput{PlayerID: id})
		if err != nil {
			return err
		}
		switch out.Outcome.Result {
		case battle.ResultVictory:
			atomic.AddInt64(&report.Victories, 1)
			if !out.Outcome.Paid {
				atomic.AddInt64(&report.Unpaid, 1)
			}
			return nil
		case battle.ResultDefeat:
			atomic.AddInt64(&report.Defeats, 1)
			return nil
		}
	}

	_, err := players.Flee(ctx, &player.FleeInput{PlayerID: id})
	return err
}

func (r *simReport) write(w io.Writer) {
	_, _ = fmt.Fprintf(w, "victories %d (unpaid %d), defeats %d, revives %d\n", // nolint:errcheck // console output
		r.Victories, r.Unpaid, r.Defeats, r.Revives)
	_, _ = fmt.Fprintf(w, "pool paid %d today, %d left in total, players hold %d coins\n", // nolint:errcheck // console output
		r.Distributed, r.Remaining, r.Balances)

	types := make([]string, 0, len(r.Events))
	for t := range r.Events {
		types = append(types, t)
	}
	sort.Strings(types)
	for _, t := range types {
		_, _ = fmt.Fprintf(w, "  %-20s %d\n", t, r.Events[t]) // nolint:errcheck // console output
	}
}
