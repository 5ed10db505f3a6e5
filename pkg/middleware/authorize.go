package middleware

import (
	"errors"
	"net/http"

	"verihire/candidate-api/internal/model"
	"verihire/candidate-api/internal/policy"

	"github.com/gin-gonic/gin"
)

// Authorize gates a route on the access policy. It must run after the
// JWT middleware, which populates userID and role.
func Authorize(action policy.Action) gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.MustGet("requestID").(string)

		actor := policy.Identity{
			AccountID: c.GetString("userID"),
			Role:      model.Role(c.GetString("role")),
		}

		// Candidate routes only ever touch the actor's own records,
		// so the route-level check carries no separate resource owner
		err := policy.Authorize(actor, action, "")
		if err != nil {
			if errors.Is(err, policy.ErrUnauthenticated) {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
					"error":     "unauthenticated",
					"requestID": requestID,
				})
				return
			}

			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"error":     "forbidden",
				"requestID": requestID,
			})
			return
		}

		c.Next()
	}
}
