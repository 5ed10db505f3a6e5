package candidate

import (
	"errors"
	"net/http"

	"verihire/candidate-api/internal"
	"verihire/candidate-api/internal/model"
	"verihire/candidate-api/internal/service"
	"verihire/candidate-api/storage"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type documentResponse struct {
	model.Document
	URL string `json:"url"`
}

func withURLs(docs []model.Document, blob storage.Storage) []documentResponse {
	out := make([]documentResponse, 0, len(docs))
	for _, doc := range docs {
		out = append(out, documentResponse{Document: doc, URL: blob.URL(doc.StoredKey)})
	}

	return out
}

func DocumentList(c *gin.Context, d *internal.Deps) {
	requestID := c.MustGet("requestID").(string)
	userID := c.MustGet("userID").(string)

	docs, err := d.Docs.ByAccount(userID)
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

		zap.L().Error("Failed to list documents", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	c.JSON(http.StatusOK, withURLs(docs, d.Blob))
}
