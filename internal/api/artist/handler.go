package artistapi

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"artistpages/internal/api/httperr"
	"artistpages/internal/service"
)

type Handler struct {
	Pages *service.PageService
	Log   *zap.Logger
}

func New(svc *service.PageService, log *zap.Logger) *Handler {
	return &Handler{Pages: svc, Log: log.Named("artistapi")}
}

// GET /artist/:slug
func (h *Handler) Show(c *gin.Context) {
	view, err := h.Pages.Public(c.Request.Context(), c.Param("slug"))
	if err != nil {
		httperr.Write(c, h.Log, err, "Page not found", "Failed to load page")
		return
	}
	c.JSON(http.StatusOK, gin.H{"page": view})
}

// GET /marketing
func (h *Handler) Marketing(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"surface": "marketing", "root_domain": h.Pages.RootDomain()})
}

// GET /admin
func (h *Handler) Admin(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"surface": "admin", "root_domain": h.Pages.RootDomain()})
}
