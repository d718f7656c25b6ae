package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-battle/internal/economy/pool"
	"github.com/KirkDiggler/rpg-battle/internal/errors"
	"github.com/KirkDiggler/rpg-battle/internal/orchestrators/battle"
	"github.com/KirkDiggler/rpg-battle/internal/services/player"
)

var (
	playerID   string
	playerName string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play interactively, one command per line",
	Long: `Play reads commands from stdin. Type "help" for the list.

  arena play --player ivan --name "Иван"`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&playerID, "player", "player-1", "player ID")
	playCmd.Flags().StringVar(&playerName, "name", "", "character name for a new player")
}

func runPlay(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	a, err := buildApp(ctx, cfg, appDeps{})
	if err != nil {
		return err
	}
	defer a.close()

	c := &console{players: a.players, playerID: playerID, name: playerName, out: os.Stdout}
	return c.run(ctx, os.Stdin)
}

const helpText = `commands:
  start [name]       register or resume
  class <name>       warrior, archer or mage (once)
  monsters           list the catalog
  fight <id|name>    start a battle
  attack | defend | flee
  revive             come back for 50 coins
  daily              claim the daily bonus
  profile | inventory | top | balance
  status             pool status (owner)
  pool on|off        switch payouts (owner)
  quit`

// console runs one player's line-oriented session
type console struct {
	players  player.Service
	playerID string
	name     string
	out      io.Writer
}

func (c *console) run(ctx context.Context, in io.Reader) error {
	scanner := bufio.NewScanner(in)
	c.printf("%s\n", helpText)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if line == "quit" || line == "exit" {
			return nil
		}
		if err := c.dispatch(ctx, line); err != nil {
			c.printf("%s\n", describeError(err))
		}
	}
	return scanner.Err()
}

func (c *console) dispatch(ctx context.Context, line string) error {
	command, arg, _ := strings.Cut(line, " ")
	arg = strings.TrimSpace(arg)

	switch strings.ToLower(command) {
	case "help":
		c.printf("%s\n", helpText)
		return nil
	case "start":
		return c.start(ctx, arg)
	case "class":
		return c.chooseClass(ctx, arg)
	case "monsters":
		return c.monsters(ctx)
	case "fight":
		return c.fight(ctx, arg)
	case "attack":
		return c.attack(ctx)
	case "defend":
		return c.defend(ctx)
	case "flee":
		return c.flee(ctx)
	case "revive":
		return c.revive(ctx)
	case "daily":
		return c.claimDaily(ctx)
	case "profile":
		return c.profile(ctx)
	case "inventory":
		return c.inventory(ctx)
	case "top":
		return c.leaderboard(ctx)
	case "balance":
		return c.balance(ctx)
	case "status":
		return c.ownerStatus(ctx)
	case "pool":
		return c.setPool(ctx, arg)
	default:
		return errors.InvalidArgumentf("unknown command %q, try help", command)
	}
}

func (c *console) start(ctx context.Context, name string) error {
	if name == "" {
		name = c.name
	}
	out, err := c.players.Start(ctx, &player.StartInput{PlayerID: c.playerID, Name: name})
	if err != nil {
		return err
	}
	if out.Created {
		c.printf("Welcome, %s! Pick a class: warrior, archer or mage.\n", out.Character.Name)
		return nil
	}
	c.printf("Welcome back, %s!\n", out.Character.Name)
	return nil
}

func (c *console) chooseClass(ctx context.Context, name string) error {
	out, err := c.players.ChooseClass(ctx, &player.ChooseClassInput{PlayerID: c.playerID, Class: name})
	if err != nil {
		return err
	}
	c.printf("Class chosen: %s (+%d hp, +%d attack, +%d defense)\n",
		out.Character.Class, out.Bonus.HP, out.Bonus.Attack, out.Bonus.Defense)
	return nil
}

func (c *console) monsters(ctx context.Context) error {
	out, err := c.players.ListMonsters(ctx, &player.ListMonstersInput{PlayerID: c.playerID})
	if err != nil {
		return err
	}
	open := make(map[int]bool, len(out.Available))
	for _, m := range out.Available {
		open[m.ID] = true
	}
	for _, m := range out.All {
		mark := " "
		if !open[m.ID] {
			mark = "x"
		}
		c.printf("[%s] %d. %s  lvl %d  hp %d  atk %d  def %d\n", mark, m.ID, m.Name, m.Level, m.HP, m.Attack, m.Defense)
	}
	return nil
}

func (c *console) fight(ctx context.Context, target string) error {
	input := &player.SelectMonsterInput{PlayerID: c.playerID}
	if id, err := strconv.Atoi(target); err == nil {
		input.MonsterID = id
	} else {
		input.MonsterName = target
	}

	out, err := c.players.SelectMonster(ctx, input)
	if err != nil {
		return err
	}
	v := out.Battle
	c.printf("%s appears! Monster hp %d/%d, your hp %d/%d\n", v.Monster.Name, v.MonsterHP, v.MonsterMaxHP, v.HP, v.MaxHP)
	return nil
}

func (c *console) attack(ctx context.Context) error {
	out, err := c.players.Attack(ctx, &player.AttackInput{PlayerID: c.playerID})
	if err != nil {
		return err
	}
	o := out.Outcome
	if o.Round.Critical {
		c.printf("Critical hit! ")
	}
	c.printf("You deal %d, %s deals %d. Monster hp %d, your hp %d/%d\n",
		o.Round.PlayerDamage, o.Monster.Name, o.Round.MonsterDamage, o.MonsterHP, out.Character.HP, out.Character.MaxHP)

	switch o.Result {
	case battle.ResultDefeat:
		c.printf("You died. Type revive to come back for %d coins.\n", battle.ReviveCost)
	case battle.ResultVictory:
		c.renderVictory(o)
	}
	return nil
}

func (c *console) renderVictory(o *battle.Outcome) {
	if !o.Paid {
		c.printf("Victory! The reward pool could not pay: %s\n", describeError(o.PoolRejection))
		return
	}
	c.printf("Victory! +%d coins, +%d exp\n", o.Reward.Coins, o.Reward.Experience)
	if o.Reward.HasDrop() {
		c.printf("Loot: %s\n", o.Reward.Drop)
	}
	if o.Progression != nil && o.Progression.LeveledUp() {
		c.printf("Level up! %d -> %d\n", o.Progression.FromLevel, o.Progression.ToLevel)
	}
}

func (c *console) defend(ctx context.Context) error {
	out, err := c.players.Defend(ctx, &player.DefendInput{PlayerID: c.playerID})
	if err != nil {
		return err
	}
	c.printf("You defend and recover %d hp (%d/%d)\n", out.Healed, out.Character.HP, out.Character.MaxHP)
	return nil
}

func (c *console) flee(ctx context.Context) error {
	out, err := c.players.Flee(ctx, &player.FleeInput{PlayerID: c.playerID})
	if err != nil {
		return err
	}
	name := "the monster"
	if out.Monster != nil {
		name = out.Monster.Name
	}
	c.printf("You fled from %s\n", name)
	return nil
}

func (c *console) revive(ctx context.Context) error {
	out, err := c.players.Revive(ctx, &player.ReviveInput{PlayerID: c.playerID})
	if err != nil {
		return err
	}
	c.printf("Revived for %d coins with %d/%d hp\n", out.Cost, out.Character.HP, out.Character.MaxHP)
	return nil
}

func (c *console) claimDaily(ctx context.Context) error {
	out, err := c.players.ClaimDaily(ctx, &player.ClaimDailyInput{PlayerID: c.playerID})
	if err != nil {
		return err
	}
	claim := out.Claim
	if !claim.Paid {
		c.printf("Day %d streak, but the reward pool could not pay: %s\n", claim.Streak, describeError(claim.PoolRejection))
		return nil
	}
	c.printf("Daily bonus: +%d coins, +%d exp (streak %d)\n", claim.Coins, claim.Experience, claim.Streak)
	return nil
}

func (c *console) profile(ctx context.Context) error {
	out, err := c.players.Profile(ctx, &player.ProfileInput{PlayerID: c.playerID})
	if err != nil {
		return err
	}
	ch := out.Character
	c.printf("%s the %s, level %d (%d/%d exp)\n", ch.Name, ch.Class, ch.Level, out.Progress.IntoLevel, out.Progress.NeededForNext)
	c.printf("hp %d/%d  attack %d  defense %d\n", ch.HP, ch.MaxHP, ch.Attack, ch.Defense)
	c.printf("kills %d  deaths %d  balance %d  rating %d\n", ch.Kills, ch.Deaths, ch.Balance, ch.Rating)
	return nil
}

func (c *console) inventory(ctx context.Context) error {
	out, err := c.players.Inventory(ctx, &player.InventoryInput{PlayerID: c.playerID})
	if err != nil {
		return err
	}
	if len(out.Items) == 0 {
		c.printf("Inventory is empty. Fight monsters to find loot.\n")
		return nil
	}
	for _, item := range out.Items {
		c.printf("- %s x%d\n", item.Name, item.Count)
	}
	return nil
}

func (c *console) leaderboard(ctx context.Context) error {
	out, err := c.players.Leaderboard(ctx, &player.LeaderboardInput{PlayerID: c.playerID})
	if err != nil {
		return err
	}
	for i, ch := range out.Top {
		c.printf("%d. %s | lvl %d | %d rating | %d coins\n", i+1, ch.Name, ch.Level, ch.Rating, ch.Balance)
	}
	c.printf("Your place: #%d\n", out.Rank)
	return nil
}

func (c *console) balance(ctx context.Context) error {
	out, err := c.players.Balance(ctx, &player.BalanceInput{PlayerID: c.playerID})
	if err != nil {
		return err
	}
	c.printf("Balance: %d coins\n", out.Balance)
	c.printf("Pool: %d left today, %d in total, %d paid today\n",
		out.Pool.RemainingToday, out.Pool.TotalRemaining, out.Pool.DistributedToday)
	return nil
}

func (c *console) ownerStatus(ctx context.Context) error {
	out, err := c.players.OwnerStatus(ctx, &player.OwnerStatusInput{ActorID: c.playerID})
	if err != nil {
		return err
	}
	c.printf("Players: %d\n", out.Players)
	renderPool(c.out, out.Pool)
	return nil
}

func (c *console) setPool(ctx context.Context, arg string) error {
	var enabled bool
	switch strings.ToLower(arg) {
	case "on":
		enabled = true
	case "off":
		enabled = false
	default:
		return errors.InvalidArgument("usage: pool on|off")
	}

	out, err := c.players.SetPoolEnabled(ctx, &player.SetPoolEnabledInput{ActorID: c.playerID, Enabled: enabled})
	if err != nil {
		return err
	}
	renderPool(c.out, out.Pool)
	return nil
}

func (c *console) printf(format string, args ...any) {
	_, _ = fmt.Fprintf(c.out, format, args...) // nolint:errcheck // console output
}

func renderPool(w io.Writer, st *pool.Status) {
	state := "on"
	if !st.Enabled {
		state = "off"
	}
	_, _ = fmt.Fprintf(w, "Pool %s: %d total, %d/%d today (%.1f%%), %d left today, reset %s\n", // nolint:errcheck // console output
		state, st.TotalRemaining, st.DistributedToday, st.DailyCap, st.PercentUsed, st.RemainingToday, st.LastResetDate)
}

// describeError turns a game error into a player-facing line
func describeError(err error) string {
	switch errors.GetReason(err) {
	case errors.ReasonAlreadyInBattle:
		return "You are already in a battle."
	case errors.ReasonNotInBattle:
		return "You are not in a battle. Type fight <monster>."
	case errors.ReasonCharacterDead:
		return fmt.Sprintf("You are dead. Type revive to come back for %d coins.", battle.ReviveCost)
	case errors.ReasonCharacterAlive:
		return "You are alive, no need to revive."
	case errors.ReasonMonsterTooStrong:
		return "That monster is too strong for you."
	case errors.ReasonClassAlreadyChosen:
		return "Your class is already chosen."
	case errors.ReasonPoolDisabled:
		return "payouts are switched off"
	case errors.ReasonDailyCapExceeded:
		return "today's payout limit is reached"
	case errors.ReasonPoolExhausted:
		return "the pool is empty"
	case errors.ReasonAlreadyClaimedToday:
		return "You already claimed today's bonus."
	case errors.ReasonInsufficientFunds:
		return "Not enough coins."
	}

	switch {
	case errors.IsNotFound(err):
		return errors.GetMessage(err) + ". Type start to begin."
	case errors.IsPermissionDenied(err):
		return "Only the owner can do that."
	case errors.IsInvalidArgument(err):
		return errors.GetMessage(err)
	default:
		return "Something went wrong: " + err.Error()
	}
}
