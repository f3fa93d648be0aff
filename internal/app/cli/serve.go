package cli

import (
	"context"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"artistpages/config"
	"artistpages/database"
	routes "artistpages/internal/app/http"
	"artistpages/internal/infra/blob"
	"artistpages/internal/service"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP server",
	RunE:  runServe,
}

func runServe(cmd *cobra.Command, args []string) error {
	config.LoadEnv()
	if err := initLogger(); err != nil {
		return err
	}
	gin.SetMode(config.GIN_MODE)
	database.InitDB()

	blobs, err := blob.NewLocalStore(config.BLOB_DIR, config.BLOB_BASE_URL)
	if err != nil {
		return err
	}
	svc := service.NewPageService(database.DB, blobs, logger,
		service.WithRootDomain(config.ROOT_DOMAIN))

	handler := routes.NewHandler(routes.Deps{
		Pages:     svc,
		Blobs:     blobs,
		BlobDir:   config.BLOB_DIR,
		JWTSecret: config.JWT_SECRET,
		Log:       logger,
	}, config.CORS_ORIGIN)

	srv := &http.Server{
		Addr:              ":" + config.PORT,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errc := make(chan error, 1)
	go func() {
		logger.Info("listening", zap.String("addr", srv.Addr), zap.String("root_domain", config.ROOT_DOMAIN))
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		if err != nil && err != http.ErrServerClosed {
			return err
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
