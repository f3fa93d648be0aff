package onboardingapi

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"artistpages/internal/api/httperr"
	"artistpages/internal/domain/pages"
	"artistpages/internal/service"
)

type Handler struct {
	Pages *service.PageService
	Log   *zap.Logger
}

func New(svc *service.PageService, log *zap.Logger) *Handler {
	return &Handler{Pages: svc, Log: log.Named("onboardingapi")}
}

// POST /api/onboarding/complete
func (h *Handler) Complete(c *gin.Context) {
	var in service.OnboardingInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	page, err := h.Pages.Onboard(c.Request.Context(), in)
	if err != nil {
		httperr.Write(c, h.Log, err, "Not found", "Failed to create page")
		return
	}
	draft, err := pages.FromPage(*page)
	if err != nil {
		httperr.Write(c, h.Log, err, "Not found", "Failed to create page")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"page":    draft,
		"url":     pages.BuildPublicURL(page.Slug, h.Pages.RootDomain()),
	})
}
