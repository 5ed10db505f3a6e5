package auth

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/spf13/viper"
)

func Logout(c *gin.Context) {
	sslEnabled := viper.GetBool("host.ssl_enabled")

	c.SetCookie("auth_token", "", -1, "/", "", sslEnabled, true)
	c.SetCookie("logged_in", "", -1, "/", "", sslEnabled, false)

	c.Status(http.StatusNoContent)
}
