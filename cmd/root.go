package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/MrNetsudo/NetAssets/internal/config"
)

var cfg *config.Config

var rootCmd = &cobra.Command{
	Use:   "netassets",
	Short: "Network asset location intelligence",
	Long:  "Imports network-device inventories, assigns each device a validated geographic location from cross-checked evidence, and decodes the structural metadata embedded in hostnames.",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		c, err := config.Load()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		cfg = c

		if err := config.InitLogger(cfg.Log); err != nil {
			return fmt.Errorf("init logger: %w", err)
		}

		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = zap.L().Sync()
	},
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
