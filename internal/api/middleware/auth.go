package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// RequireLogin 未登录请求一律送回登录页
func RequireLogin() gin.HandlerFunc {
	return func(c *gin.Context) {
		if CurrentUser(c) == nil {
			c.Redirect(http.StatusFound, "/login")
			c.Abort()
			return
		}
		c.Next()
	}
}
