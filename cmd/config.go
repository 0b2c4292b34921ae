package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/cwel/imgtab/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage imgtab configuration",
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print config, data and log locations",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("config: %s\n", config.ConfigPath())
		fmt.Printf("data:   %s\n", config.DataDir())
		if cfg, err := config.LoadConfig(); err == nil {
			fmt.Printf("log:    %s\n", cfg.LogFile())
		}
	},
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Create default config file",
	RunE: func(cmd *cobra.Command, args []string) error {
		configPath := config.ConfigPath()

		// Back up existing config
		if _, err := os.Stat(configPath); err == nil {
			backupPath := configPath + ".bak"
			if err := os.Rename(configPath, backupPath); err != nil {
				return fmt.Errorf("backup config: %w", err)
			}
			fmt.Printf("Backed up existing config to %s\n", backupPath)
		}

		if err := config.SaveConfig(config.DefaultConfig()); err != nil {
			return err
		}

		fmt.Printf("Created config at %s\n", configPath)
		return nil
	},
}

func init() {
	configCmd.AddCommand(configPathCmd)
	configCmd.AddCommand(configInitCmd)
	rootCmd.AddCommand(configCmd)
}
