package routes

import (
	"net/http"
	"time"

	"artistpages/internal/app/http/hostrouter"
	"artistpages/internal/app/http/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// NewHandler builds the gin engine and puts the host router in front of it.
// Host routing has to happen before gin picks a route, so it wraps the
// engine instead of being a gin middleware.
func NewHandler(d Deps, corsOrigin string) http.Handler {
	r := gin.New()
	r.Use(gin.Recovery(), middleware.RequestLogger(d.Log))

	if corsOrigin != "" {
		r.Use(cors.New(cors.Config{
			AllowOrigins:     []string{corsOrigin},
			AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
			ExposeHeaders:    []string{"Content-Length"},
			AllowCredentials: true,
			MaxAge:           12 * time.Hour,
		}))
	}

	RegisterRoutes(r, d)

	return hostrouter.Wrap(r, hostrouter.WithLogger(d.Log.Named("hostrouter")))
}
