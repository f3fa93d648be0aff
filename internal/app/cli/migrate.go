package cli

import (
	"github.com/spf13/cobra"

	"artistpages/config"
	"artistpages/database"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create or update the database schema",
	RunE: func(cmd *cobra.Command, args []string) error {
		config.LoadDatabaseEnv()
		if err := initLogger(); err != nil {
			return err
		}
		db, err := database.Open(config.DB_DRIVER, config.DB_URL)
		if err != nil {
			return err
		}
		if err := database.Migrate(db); err != nil {
			return err
		}
		logger.Info("schema migrated")
		return nil
	},
}
