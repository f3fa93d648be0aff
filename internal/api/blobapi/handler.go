package blobapi

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"artistpages/internal/infra/blob"
)

type Handler struct {
	Store blob.Store
	Log   *zap.Logger
}

func New(store blob.Store, log *zap.Logger) *Handler {
	return &Handler{Store: store, Log: log.Named("blobapi")}
}

type UploadRequest struct {
	Base64String string `json:"base64String"`
	Filename     string `json:"filename"`
}

type DeleteRequest struct {
	URL string `json:"url"`
}

// POST /api/blob/upload (auth)
func (h *Handler) Upload(c *gin.Context) {
	var req UploadRequest
	if err := c.ShouldBindJSON(&req); err != nil || strings.TrimSpace(req.Base64String) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No file data provided"})
		return
	}

	img, err := blob.ParseDataURL(req.Base64String)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unsupported or corrupt image"})
		return
	}
	name := strings.TrimSpace(req.Filename)
	if name == "" {
		name = "upload" + img.Ext
	}

	url, err := h.Store.Put(c.Request.Context(), name, img.ContentType, img.Data)
	if err != nil {
		h.Log.Error("blob upload failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Upload failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"url": url, "width": img.Width, "height": img.Height})
}

// DELETE /api/blob/delete (auth)
func (h *Handler) Delete(c *gin.Context) {
	var req DeleteRequest
	if err := c.ShouldBindJSON(&req); err != nil || strings.TrimSpace(req.URL) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No URL provided"})
		return
	}

	if err := h.Store.Delete(c.Request.Context(), strings.TrimSpace(req.URL)); err != nil {
		if errors.Is(err, blob.ErrForeignURL) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "URL is not managed by this service"})
			return
		}
		h.Log.Error("blob delete failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Delete failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
