package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"artistpages/config"
	"artistpages/internal/infra/logging"
)

var logger *zap.Logger

var rootCmd = &cobra.Command{
	Use:   "artistpages",
	Short: "Multi-tenant artist landing pages",
	Long: `artistpages serves one landing page per artist on its own subdomain,
plus the editor API used to build them.

Run without arguments to start the server.`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServe(cmd, args)
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

func init() {
	rootCmd.AddCommand(serveCmd, migrateCmd, importCmd)
}

// Execute runs the command line.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func initLogger() error {
	var err error
	logger, err = logging.New(config.LOG_LEVEL)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	return nil
}
