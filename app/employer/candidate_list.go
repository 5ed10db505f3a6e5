package employer

import (
	"net/http"

	"verihire/candidate-api/internal"
	"verihire/candidate-api/internal/service"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// CandidateList only ever surfaces verified profiles, the filter is
// part of the underlying query
func CandidateList(c *gin.Context, d *internal.Deps) {
	requestID := c.MustGet("requestID").(string)

	rows, err := service.ListVerified(d.DB)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":     "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to list verified candidates", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	c.JSON(http.StatusOK, rows)
}
