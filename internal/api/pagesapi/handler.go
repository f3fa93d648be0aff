package pagesapi

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"artistpages/internal/api/httperr"
	"artistpages/internal/app/http/middleware"
	"artistpages/internal/domain/pages"
	"artistpages/internal/service"
)

type Handler struct {
	Pages *service.PageService
	Log   *zap.Logger
}

func New(svc *service.PageService, log *zap.Logger) *Handler {
	return &Handler{Pages: svc, Log: log.Named("pagesapi")}
}

// caller resolves the acting email. A claimed email that is not the token's
// is answered like a missing page.
func (h *Handler) caller(c *gin.Context, claimed string) (string, bool) {
	email, ok := middleware.Identity(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return "", false
	}
	if claimed = strings.TrimSpace(claimed); claimed != "" && !strings.EqualFold(claimed, email) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Page not found"})
		return "", false
	}
	return email, true
}

// POST /api/pages/save (auth)
func (h *Handler) Save(c *gin.Context) {
	var req SaveRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.PageData == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Page data is required"})
		return
	}
	email, ok := h.caller(c, req.UserEmail)
	if !ok {
		return
	}

	page, err := h.Pages.Save(c.Request.Context(), email, *req.PageData)
	if err != nil {
		httperr.Write(c, h.Log, err, "Page not found", "Failed to save page")
		return
	}
	draft, err := pages.FromPage(*page)
	if err != nil {
		httperr.Write(c, h.Log, err, "Page not found", "Failed to save page")
		return
	}

	c.JSON(http.StatusOK, SaveResponse{
		Success: true,
		Message: "Page saved successfully",
		Page:    draft,
	})
}

// GET /api/pages/load?pageId= (auth)
func (h *Handler) Load(c *gin.Context) {
	email, ok := h.caller(c, c.Query("userEmail"))
	if !ok {
		return
	}

	draft, err := h.Pages.LoadDraft(c.Request.Context(), email, c.Query("pageId"))
	if err != nil {
		httperr.Write(c, h.Log, err, "Page not found", "Failed to load page")
		return
	}
	c.JSON(http.StatusOK, LoadResponse{Success: true, Page: draft})
}

// GET /api/pages/list (auth)
func (h *Handler) List(c *gin.Context) {
	email, ok := h.caller(c, c.Query("email"))
	if !ok {
		return
	}

	out, err := h.Pages.List(c.Request.Context(), email)
	if err != nil {
		httperr.Write(c, h.Log, err, "User not found", "Failed to fetch pages")
		return
	}
	c.JSON(http.StatusOK, ListResponse{Success: true, Pages: out, Total: len(out)})
}

// DELETE /api/pages/delete?pageId= (auth)
func (h *Handler) Delete(c *gin.Context) {
	email, ok := h.caller(c, c.Query("userEmail"))
	if !ok {
		return
	}
	pageID := c.Query("pageId")
	if pageID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Page id is required"})
		return
	}

	if err := h.Pages.Delete(c.Request.Context(), email, pageID); err != nil {
		httperr.Write(c, h.Log, err, "Page not found", "Failed to delete page")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Page deleted successfully"})
}

// GET /api/check-subdomain?slug=
func (h *Handler) CheckSubdomain(c *gin.Context) {
	out, err := h.Pages.CheckSlug(c.Request.Context(), c.Query("slug"))
	if err != nil {
		httperr.Write(c, h.Log, err, "Not found", "Failed to check availability")
		return
	}
	c.JSON(http.StatusOK, out)
}
