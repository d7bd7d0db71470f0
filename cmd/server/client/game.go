package client

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-quest/internal/handlers/rpg/v1alpha1"
)

var (
	gameID     string
	name       string
	class      string
	difficulty string
	slot       string
	item       string
	attribute  string
)

var createGameCmd = &cobra.Command{
	Use:   "create-game",
	Short: "Create a character and start a new game",
	RunE: func(_ *cobra.Command, _ []string) error {
		return withClient(func(ctx context.Context, c v1alpha1.GameServiceClient) (any, error) {
			return c.CreateGame(ctx, &v1alpha1.CreateGameRequest{
				Name:       name,
				Class:      class,
				Difficulty: difficulty,
			})
		})
	},
}

var getGameCmd = &cobra.Command{
	Use:   "get-game",
	Short: "Show a saved game",
	RunE: func(_ *cobra.Command, _ []string) error {
		return withClient(func(ctx context.Context, c v1alpha1.GameServiceClient) (any, error) {
			return c.GetGame(ctx, &v1alpha1.GetGameRequest{GameID: gameID})
		})
	},
}

var travelCmd = &cobra.Command{
	Use:       "travel [next|previous]",
	Short:     "Move to a neighbouring city",
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{"next", "previous"},
	RunE: func(_ *cobra.Command, args []string) error {
		return withClient(func(ctx context.Context, c v1alpha1.GameServiceClient) (any, error) {
			return c.Travel(ctx, &v1alpha1.TravelRequest{GameID: gameID, Direction: args[0]})
		})
	},
}

var equipCmd = &cobra.Command{
	Use:   "equip",
	Short: "Equip an item from the inventory",
	RunE: func(_ *cobra.Command, _ []string) error {
		return withClient(func(ctx context.Context, c v1alpha1.GameServiceClient) (any, error) {
			return c.Equip(ctx, &v1alpha1.EquipRequest{GameID: gameID, Slot: slot, Item: item})
		})
	},
}

var unequipCmd = &cobra.Command{
	Use:   "unequip",
	Short: "Empty an equipment slot",
	RunE: func(_ *cobra.Command, _ []string) error {
		return withClient(func(ctx context.Context, c v1alpha1.GameServiceClient) (any, error) {
			return c.Unequip(ctx, &v1alpha1.UnequipRequest{GameID: gameID, Slot: slot})
		})
	},
}

var spendCmd = &cobra.Command{
	Use:   "spend",
	Short: "Spend one attribute point",
	RunE: func(_ *cobra.Command, _ []string) error {
		return withClient(func(ctx context.Context, c v1alpha1.GameServiceClient) (any, error) {
			return c.SpendAttribute(ctx, &v1alpha1.SpendAttributeRequest{GameID: gameID, Attribute: attribute})
		})
	},
}

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show the character sheet",
	RunE: func(_ *cobra.Command, _ []string) error {
		return withClient(func(ctx context.Context, c v1alpha1.GameServiceClient) (any, error) {
			return c.GetStats(ctx, &v1alpha1.GetStatsRequest{GameID: gameID})
		})
	},
}

func init() {
	createGameCmd.Flags().StringVar(&name, "name", "", "Character name (required)")
	createGameCmd.Flags().StringVar(&class, "class", "Warrior", "Character class")
	createGameCmd.Flags().StringVar(&difficulty, "difficulty", "Medium", "Easy, Medium or Hard")
	_ = createGameCmd.MarkFlagRequired("name") // nolint:errcheck // safe to ignore in init

	for _, cmd := range []*cobra.Command{getGameCmd, travelCmd, equipCmd, unequipCmd, spendCmd, statsCmd, startBattleCmd} {
		cmd.Flags().StringVar(&gameID, "game-id", "", "Game ID (required)")
		_ = cmd.MarkFlagRequired("game-id") // nolint:errcheck // safe to ignore in init
	}

	equipCmd.Flags().StringVar(&slot, "slot", "", "Slot, e.g. \"Weapon 1\" (required)")
	equipCmd.Flags().StringVar(&item, "item", "", "Item name (required)")
	_ = equipCmd.MarkFlagRequired("slot") // nolint:errcheck // safe to ignore in init
	_ = equipCmd.MarkFlagRequired("item") // nolint:errcheck // safe to ignore in init

	unequipCmd.Flags().StringVar(&slot, "slot", "", "Slot, e.g. \"Helmet\" (required)")
	_ = unequipCmd.MarkFlagRequired("slot") // nolint:errcheck // safe to ignore in init

	spendCmd.Flags().StringVar(&attribute, "attribute", "", "Attribute, e.g. Stamina (required)")
	_ = spendCmd.MarkFlagRequired("attribute") // nolint:errcheck // safe to ignore in init
}
