package backend

import (
	"errors"
	"net/http"

	"github.com/goccy/go-json"
)

// ErrSessionExpired 任意请求收到 401 后的统一信号，由 web 层转为登录页跳转
var ErrSessionExpired = errors.New("session expired")

// FieldError 后端字段级校验错误
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// APIError 所有后端失败的统一形态
type APIError struct {
	Status  int          `json:"status"`
	Message string       `json:"message"`
	Errors  []FieldError `json:"errors,omitempty"`
}

func (e *APIError) Error() string {
	return e.Message
}

func genericError() *APIError {
	return &APIError{
		Status:  http.StatusInternalServerError,
		Message: "An unexpected error occurred",
	}
}

// normalize 把后端错误负载映射为 APIError；无结构化负载时退化为通用 500
func normalize(status int, body []byte) *APIError {
	if len(body) == 0 {
		return genericError()
	}

	var apiErr APIError
	if err := json.Unmarshal(body, &apiErr); err != nil || apiErr.Message == "" {
		return genericError()
	}
	if apiErr.Status == 0 {
		apiErr.Status = status
	}
	return &apiErr
}
