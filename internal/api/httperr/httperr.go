package httperr

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"artistpages/internal/service"
)

// Write maps a service error onto a response. Upstream failures get the
// generic message; their detail only goes to the log.
func Write(c *gin.Context, log *zap.Logger, err error, notFoundMsg, failMsg string) {
	switch {
	case errors.Is(err, service.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": notFoundMsg})
	case service.IsClientError(err):
		c.JSON(http.StatusBadRequest, gin.H{"error": service.Reason(err)})
	default:
		_ = c.Error(err)
		log.Error(failMsg,
			zap.String("path", c.FullPath()),
			zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": failMsg})
	}
}
