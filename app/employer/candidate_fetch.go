package employer

import (
	"errors"
	"net/http"
	"strconv"

	"verihire/candidate-api/internal"
	"verihire/candidate-api/internal/service"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// CandidateFetch returns a verified profile. Unverified and unknown
// candidates are both a 404, an employer can't probe which is which.
// Documents are never exposed here.
func CandidateFetch(c *gin.Context, d *internal.Deps) {
	requestID := c.MustGet("requestID").(string)

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":     "Candidate ID must be a number",
			"requestID": requestID,
		})
		return
	}

	profile, err := service.VerifiedByID(d.DB, uint(id))
	if err != nil {
		if errors.Is(err, service.ErrCandidateNotFound) || errors.Is(err, service.ErrNotVerified) {
			c.JSON(http.StatusNotFound, gin.H{
				"error":     "Candidate not found or not verified",
				"requestID": requestID,
			})
			return
		}

		c.JSON(http.StatusInternalServerError, gin.H{
			"error":     "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to fetch verified candidate", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	c.JSON(http.StatusOK, profile)
}
