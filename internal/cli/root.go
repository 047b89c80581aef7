// Package cli implements the daybook commands.
package cli

import (
	"os"

	"github.com/spf13/cobra"
)

var cfgPath string

// RootCmd is the top-level command.
var RootCmd = &cobra.Command{
	Use:   "daybook",
	Short: "Telegram bot for events and notes",
	Long:  "daybook is a Telegram bot that keeps dated events and free-text notes per user, driven by short conversational flows.",
}

func init() {
	RootCmd.PersistentFlags().StringVarP(&cfgPath, "config", "c", "", "Path to config file (default: $CONFIG_PATH or ./config.yml)")
	RootCmd.AddCommand(runCmd, migrateCmd, versionCmd)
}

func configPath() string {
	if cfgPath != "" {
		return cfgPath
	}
	if env := os.Getenv("CONFIG_PATH"); env != "" {
		return env
	}
	return "./config.yml"
}
