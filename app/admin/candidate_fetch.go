package admin

import (
	"errors"
	"net/http"
	"strconv"

	"verihire/candidate-api/internal"
	"verihire/candidate-api/internal/model"
	"verihire/candidate-api/internal/service"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type documentResponse struct {
	model.Document
	URL string `json:"url"`
}

// CandidateFetch returns a single profile with its documents, the
// admin review view
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

	row, err := service.CandidateByID(d.DB, uint(id))
	if err != nil {
		if errors.Is(err, service.ErrCandidateNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"error":     "Candidate not found",
				"requestID": requestID,
			})
			return
		}

		c.JSON(http.StatusInternalServerError, gin.H{
			"error":     "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to fetch candidate", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	docs, err := service.DocumentsByProfile(d.DB, row.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":     "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to fetch candidate documents", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	respDocs := make([]documentResponse, 0, len(docs))
	for _, doc := range docs {
		respDocs = append(respDocs, documentResponse{Document: doc, URL: d.Blob.URL(doc.StoredKey)})
	}

	c.JSON(http.StatusOK, gin.H{
		"profile":   row,
		"documents": respDocs,
	})
}
