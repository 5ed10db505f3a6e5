package candidate

import (
	"errors"
	"net/http"

	"verihire/candidate-api/internal"
	"verihire/candidate-api/internal/service"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func ProfileFetch(c *gin.Context, d *internal.Deps) {
	requestID := c.MustGet("requestID").(string)
	userID := c.MustGet("userID").(string)

	profile, err := service.ProfileByAccount(d.DB, userID)
	if err != nil {
		if errors.Is(err, service.ErrProfileNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"error":     "Profile not found",
				"requestID": requestID,
			})
			return
		}

		c.JSON(http.StatusInternalServerError, gin.H{
			"error":     "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to fetch profile", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	c.JSON(http.StatusOK, profile)
}
