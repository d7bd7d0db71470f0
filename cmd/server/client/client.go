// Package client provides test commands for the RPG Quest gRPC service
package client

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	"github.com/KirkDiggler/rpg-quest/internal/handlers/rpg/v1alpha1"
)

var (
	// Connection flags
	serverAddr string
	timeout    time.Duration
)

// ClientCmd is the root command for all client test commands
var ClientCmd = &cobra.Command{
	Use:   "client",
	Short: "Test client commands for RPG Quest",
	Long:  `Client commands allow you to play RPG Quest by making real gRPC requests.`,
}

func init() {
	ClientCmd.PersistentFlags().StringVar(&serverAddr, "server", "localhost:50051", "gRPC server address")
	ClientCmd.PersistentFlags().DurationVar(&timeout, "timeout", 30*time.Second, "Request timeout")

	// Game commands
	ClientCmd.AddCommand(createGameCmd)
	ClientCmd.AddCommand(getGameCmd)
	ClientCmd.AddCommand(travelCmd)
	ClientCmd.AddCommand(equipCmd)
	ClientCmd.AddCommand(unequipCmd)
	ClientCmd.AddCommand(spendCmd)
	ClientCmd.AddCommand(statsCmd)

	// Battle commands
	ClientCmd.AddCommand(startBattleCmd)
	ClientCmd.AddCommand(actCmd)
	ClientCmd.AddCommand(getBattleCmd)
}

// withClient dials the server and runs fn with a request context
func withClient(fn func(ctx context.Context, client v1alpha1.GameServiceClient) (any, error)) error {
	conn, err := grpc.NewClient(serverAddr,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	if err != nil {
		return fmt.Errorf("failed to connect to server: %w", err)
	}
	defer func() {
		_ = conn.Close() // nolint:errcheck // safe to ignore in cleanup
	}()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	resp, err := fn(ctx, v1alpha1.NewGameServiceClient(conn))
	if err != nil {
		return err
	}
	return printJSON(resp)
}

func printJSON(v any) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to format response: %w", err)
	}
	fmt.Println(string(out))
	return nil
}
