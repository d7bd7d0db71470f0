// Package main is the entry point for the rpg-quest gRPC server
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-quest/cmd/server/client"
)

var rootCmd = &cobra.Command{
	Use:   "rpg-quest",
	Short: "RPG Quest gRPC Server",
	Long:  `RPG Quest runs turn-based battles and character progression behind a gRPC interface.`,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (yaml, toml or json)")

	rootCmd.AddCommand(serverCmd)
	rootCmd.AddCommand(client.ClientCmd)
}
