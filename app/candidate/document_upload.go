package candidate

import (
	"errors"
	"net/http"

	"verihire/candidate-api/internal"
	"verihire/candidate-api/internal/service"
	"verihire/candidate-api/pkg/validators"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func DocumentUpload(c *gin.Context, d *internal.Deps) {
	requestID := c.MustGet("requestID").(string)
	userID := c.MustGet("userID").(string)

	fh, err := c.FormFile("document")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":     "No file provided",
			"requestID": requestID,
		})
		return
	}

	docType := c.PostForm("doc_type")

	if code, err := validators.DocumentValidator(fh, docType); err != nil {
		c.JSON(code, gin.H{
			"error":     err.Error(),
			"requestID": requestID,
		})
		return
	}

	f, err := fh.Open()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":     "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to open multipart file", zap.Error(err), zap.String("requestID", requestID))
		return
	}
	defer f.Close()

	doc, err := d.Docs.Upload(c.Request.Context(), userID, docType, fh.Filename, f, fh.Size)
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

		zap.L().Error("Failed to upload document", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	c.JSON(http.StatusOK, documentResponse{Document: *doc, URL: d.Blob.URL(doc.StoredKey)})
}
