package cli

import (
	"github.com/spf13/cobra"

	coredatabase "github.com/avdeev/daybook/core/database"
	"github.com/avdeev/daybook/core/logger"
	"github.com/avdeev/daybook/internal/app"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply database migrations and exit",
	RunE: func(cmd *cobra.Command, _ []string) error {
		cmd.SilenceUsage = true

		cfg, err := app.LoadConfig(configPath())
		if err != nil {
			return err
		}
		if err := logger.InitLogger(cfg.CoreConfig()); err != nil {
			return err
		}
		defer func() { _ = logger.Shutdown() }()

		return coredatabase.RunMigrations(cfg.Database)
	},
}
