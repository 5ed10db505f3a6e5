package admin

import (
	"errors"
	"net/http"
	"strconv"

	"verihire/candidate-api/internal"
	"verihire/candidate-api/internal/service"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Review applies an administrator verification decision to a profile
func Review(c *gin.Context, d *internal.Deps) {
	requestID := c.MustGet("requestID").(string)
	userID := c.MustGet("userID").(string)

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":     "Candidate ID must be a number",
			"requestID": requestID,
		})
		return
	}

	var data service.ReviewInput
	if err := c.ShouldBind(&data); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":     "Invalid request body",
			"requestID": requestID,
		})

		zap.L().Error("Can't bind request body", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	profile, err := service.Review(d.DB, uint(id), data)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrValidation):
			c.JSON(http.StatusBadRequest, gin.H{
				"error":     err.Error(),
				"requestID": requestID,
			})
		case errors.Is(err, service.ErrCandidateNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error":     "Candidate not found",
				"requestID": requestID,
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error":     "Internal server error",
				"requestID": requestID,
			})

			zap.L().Error("Failed to apply review", zap.Error(err), zap.String("requestID", requestID))
		}
		return
	}

	zap.L().Info("Verification updated",
		zap.Uint("profileID", profile.ID),
		zap.String("status", string(profile.VerificationStatus)),
		zap.String("reviewedBy", userID),
		zap.String("requestID", requestID))

	c.JSON(http.StatusOK, profile)
}
