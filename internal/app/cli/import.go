package cli

import (
	"fmt"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"artistpages/config"
	"artistpages/database"
	"artistpages/internal/domain/pages"
	"artistpages/internal/infra/blob"
	"artistpages/internal/service"
)

var (
	importEmail  string
	importFile   string
	importPageID string
)

var importCmd = &cobra.Command{
	Use:   "import",
	Short: "Apply a YAML page file to an existing page",
	Long: `Loads the user's page, applies the keys present in the YAML file and
saves it. Collections missing from the file are left as they are; an empty
list clears one.

Example:
  artistpages import --email nova@example.com --file page.yaml`,
	RunE: runImport,
}

func init() {
	importCmd.Flags().StringVar(&importEmail, "email", "", "owner email")
	importCmd.Flags().StringVar(&importFile, "file", "", "YAML page file")
	importCmd.Flags().StringVar(&importPageID, "page-id", "", "page id (defaults to the user's first page)")
	_ = importCmd.MarkFlagRequired("email")
	_ = importCmd.MarkFlagRequired("file")
}

func runImport(cmd *cobra.Command, args []string) error {
	config.LoadDatabaseEnv()
	if err := initLogger(); err != nil {
		return err
	}

	raw, err := os.ReadFile(importFile)
	if err != nil {
		return errors.Wrap(err, "read page file")
	}

	db, err := database.Open(config.DB_DRIVER, config.DB_URL)
	if err != nil {
		return err
	}
	blobs, err := blob.NewLocalStore(config.BLOB_DIR, config.BLOB_BASE_URL)
	if err != nil {
		return err
	}
	svc := service.NewPageService(db, blobs, logger, service.WithRootDomain(config.ROOT_DOMAIN))

	saved, err := ImportDraft(cmd.Context(), svc, importEmail, importPageID, raw)
	if err != nil {
		return err
	}
	if saved == nil {
		fmt.Fprintln(cmd.OutOrStdout(), "nothing to change")
		return nil
	}
	logger.Info("page imported", zap.String("page_id", saved.ID), zap.String("slug", saved.Slug))
	fmt.Fprintf(cmd.OutOrStdout(), "saved %s (%s)\n", saved.Slug, pages.BuildPublicURL(saved.Slug, svc.RootDomain()))
	return nil
}
