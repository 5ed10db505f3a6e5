package auth

import (
	"errors"
	"net/http"

	"verihire/candidate-api/internal"
	"verihire/candidate-api/internal/model"
	"verihire/candidate-api/internal/service"
	"verihire/candidate-api/pkg/validators"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type registerBody struct {
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirm_password"`
}

// Register creates a candidate account together with its empty,
// unsubmitted profile
func Register(c *gin.Context, d *internal.Deps) {
	register(c, d, model.RoleCandidate)
}

// RegisterEmployer creates an employer account. Employers have no
// profile of their own, they only browse verified candidates
func RegisterEmployer(c *gin.Context, d *internal.Deps) {
	register(c, d, model.RoleEmployer)
}

func register(c *gin.Context, d *internal.Deps, role model.Role) {
	requestID := c.MustGet("requestID").(string)

	var data registerBody
	if err := c.ShouldBind(&data); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":     "Invalid request body",
			"requestID": requestID,
		})

		zap.L().Error("Can't bind request body", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	if err := validators.EmailValidator(data.Email); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":     err.Error(),
			"requestID": requestID,
		})
		return
	}

	if err := validators.PasswordValidator(data.Password); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":     err.Error(),
			"requestID": requestID,
		})
		return
	}

	if data.Password != data.ConfirmPassword {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":     "Passwords do not match",
			"requestID": requestID,
		})
		return
	}

	account, err := service.Register(d.DB, d.Argon, data.Email, data.Password, role)
	if err != nil {
		if errors.Is(err, service.ErrDuplicateEmail) {
			c.JSON(http.StatusConflict, gin.H{
				"error":     "This email is already registered. Please login or use a different email",
				"requestID": requestID,
			})
			return
		}

		c.JSON(http.StatusInternalServerError, gin.H{
			"error":     "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to register account", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"accountID": account.ID,
		"role":      account.Role,
	})
}
