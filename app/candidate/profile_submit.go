package candidate

import (
	"errors"
	"net/http"

	"verihire/candidate-api/internal"
	"verihire/candidate-api/internal/service"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ProfileSubmit moves an unsubmitted or rejected profile into the
// review queue
func ProfileSubmit(c *gin.Context, d *internal.Deps) {
	requestID := c.MustGet("requestID").(string)
	userID := c.MustGet("userID").(string)

	profile, err := service.Submit(d.DB, userID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrProfileNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error":     "Profile not found",
				"requestID": requestID,
			})
		case errors.Is(err, service.ErrValidation):
			c.JSON(http.StatusBadRequest, gin.H{
				"error":     err.Error(),
				"requestID": requestID,
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error":     "Internal server error",
				"requestID": requestID,
			})

			zap.L().Error("Failed to submit profile", zap.Error(err), zap.String("requestID", requestID))
		}
		return
	}

	c.JSON(http.StatusOK, profile)
}
