package routes

import (
	"net/http"

	artistapi "artistpages/internal/api/artist"
	"artistpages/internal/api/blobapi"
	onboardingapi "artistpages/internal/api/onboarding"
	"artistpages/internal/api/pagesapi"
	"artistpages/internal/app/http/middleware"
	"artistpages/internal/infra/blob"
	"artistpages/internal/service"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Deps struct {
	Pages     *service.PageService
	Blobs     blob.Store
	BlobDir   string
	JWTSecret string
	Log       *zap.Logger
}

func RegisterRoutes(r *gin.Engine, d Deps) {
	pagesH := pagesapi.New(d.Pages, d.Log)
	artistH := artistapi.New(d.Pages, d.Log)
	onboardingH := onboardingapi.New(d.Pages, d.Log)
	blobH := blobapi.New(d.Blobs, d.Log)

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	if d.BlobDir != "" {
		r.Static("/blobs", d.BlobDir)
	}

	// surfaces the host router rewrites onto
	r.GET("/marketing", artistH.Marketing)
	r.GET("/admin", artistH.Admin)
	r.GET("/artist/:slug", artistH.Show)

	r.GET("/api/check-subdomain", pagesH.CheckSubdomain)

	// ✅ Apply input sanitization to public write routes only
	public := r.Group("/api")
	public.Use(middleware.SanitizeAndCleanInputMiddleware())
	public.POST("/onboarding/complete", onboardingH.Complete)

	// Authenticated
	auth := r.Group("/api")
	auth.Use(middleware.AuthMiddleware(d.JWTSecret))
	auth.POST("/pages/save", pagesH.Save)
	auth.GET("/pages/load", pagesH.Load)
	auth.GET("/pages/list", pagesH.List)
	auth.DELETE("/pages/delete", pagesH.Delete)

	auth.POST("/blob/upload", blobH.Upload)
	auth.DELETE("/blob/delete", blobH.Delete)
}
