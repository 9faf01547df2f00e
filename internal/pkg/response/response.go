package response

import (
	"errors"
	log "log/slog"
	"net/http"

	"Quill/internal/pkg/backend"
	"Quill/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// HTML 渲染页面
func HTML(c *gin.Context, tpl string, data gin.H) {
	c.HTML(http.StatusOK, tpl, data)
}

// RedirectLogin 会话失效后的统一去向
func RedirectLogin(c *gin.Context) {
	c.Redirect(http.StatusFound, "/login")
}

// Message 把错误折算成展示给用户的消息与 HTTP 状态码
func Message(err error) (int, string) {
	var ve validator.ValidationErrors
	if errors.As(err, &ve) {
		return http.StatusBadRequest, "Please check the form and try again."
	}

	var apiErr *backend.APIError
	if errors.As(err, &apiErr) {
		return apiErr.Status, apiErr.Message
	}

	if code, ok := service.ErrorMap[err]; ok {
		return code, err.Error()
	}

	log.Error("unhandled error", "err", err)
	return http.StatusInternalServerError, "An unexpected error occurred"
}

// Error 渲染独立错误页。会话失效不走错误页，直接回登录页。
func Error(c *gin.Context, err error) {
	if errors.Is(err, backend.ErrSessionExpired) {
		RedirectLogin(c)
		return
	}

	status, msg := Message(err)
	c.HTML(status, "error.html", gin.H{"Message": msg})
}
