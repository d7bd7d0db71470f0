package client

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-quest/internal/handlers/rpg/v1alpha1"
)

var (
	battleID string
	enemy    string
)

var startBattleCmd = &cobra.Command{
	Use:   "start-battle",
	Short: "Start a battle against an enemy",
	RunE: func(_ *cobra.Command, _ []string) error {
		return withClient(func(ctx context.Context, c v1alpha1.GameServiceClient) (any, error) {
			return c.StartBattle(ctx, &v1alpha1.StartBattleRequest{GameID: gameID, Enemy: enemy})
		})
	},
}

var actCmd = &cobra.Command{
	Use:   "act [action]",
	Short: "Submit a battle action",
	Long: `Submit a battle action: attack, defend, items, use_item, cancel, run,
spells, abilities or spend. use_item reads --item and spend reads --attribute.`,
	Args: cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		return withClient(func(ctx context.Context, c v1alpha1.GameServiceClient) (any, error) {
			return c.SubmitAction(ctx, &v1alpha1.SubmitActionRequest{
				BattleID:  battleID,
				Action:    args[0],
				Item:      item,
				Attribute: attribute,
			})
		})
	},
}

var getBattleCmd = &cobra.Command{
	Use:   "get-battle",
	Short: "Show a battle in progress",
	RunE: func(_ *cobra.Command, _ []string) error {
		return withClient(func(ctx context.Context, c v1alpha1.GameServiceClient) (any, error) {
			return c.GetBattle(ctx, &v1alpha1.GetBattleRequest{BattleID: battleID})
		})
	},
}

func init() {
	startBattleCmd.Flags().StringVar(&enemy, "enemy", "", "Enemy name, defaults to Slime")

	for _, cmd := range []*cobra.Command{actCmd, getBattleCmd} {
		cmd.Flags().StringVar(&battleID, "battle-id", "", "Battle ID (required)")
		_ = cmd.MarkFlagRequired("battle-id") // nolint:errcheck // safe to ignore in init
	}

	actCmd.Flags().StringVar(&item, "item", "", "Item to use with use_item")
	actCmd.Flags().StringVar(&attribute, "attribute", "", "Attribute to raise with spend")
}
