package main

import (
	"context"
	"os"

	"github.com/spf13/cobra"
)

var (
	actorID  string
	switchTo string
)

var poolCmd = &cobra.Command{
	Use:   "pool",
	Short: "Show or switch the reward pool (owner only)",
	Long: `Pool prints the shared reward pool and the player count. With --set it
switches payouts on or off first. Only the configured owner may do either.

  arena pool --as admin
  arena pool --as admin --set off --storage redis`,
	Args: cobra.NoArgs,
	RunE: runPool,
}

func init() {
	poolCmd.Flags().StringVar(&actorID, "as", "", "acting player ID")
	poolCmd.Flags().StringVar(&switchTo, "set", "", "switch payouts on or off")
}

func runPool(cmd *cobra.Command, _ []string) error {
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

	actor := actorID
	if actor == "" {
		actor = cfg.OwnerID
	}
	c := &console{players: a.players, playerID: actor, out: os.Stdout}

	if switchTo != "" {
		if err := c.setPool(ctx, switchTo); err != nil {
			return err
		}
	}
	return c.ownerStatus(ctx)
}
