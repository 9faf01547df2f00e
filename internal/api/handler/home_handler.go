package handler

import (
	"errors"
	log "log/slog"

	"Quill/internal/api/dto"
	"Quill/internal/api/middleware"
	"Quill/internal/pkg/backend"
	"Quill/internal/pkg/response"
	"Quill/internal/service"

	"github.com/gin-gonic/gin"
)

type HomeHandler struct {
	postSvc service.PostService
}

func NewHomeHandler(postSvc service.PostService) *HomeHandler {
	return &HomeHandler{postSvc: postSvc}
}

func (s *HomeHandler) Index(c *gin.Context) {
	var query dto.PostListQuery
	// 非法查询参数按默认值浏览
	_ = c.ShouldBindQuery(&query)

	view, err := s.postSvc.Browse(c.Request.Context(), service.BrowseQuery{
		CategoryID: query.CategoryID,
		TagID:      query.TagID,
		Sort:       query.Sort,
		Page:       query.Page,
	})
	if err != nil {
		if errors.Is(err, backend.ErrSessionExpired) {
			response.RedirectLogin(c)
			return
		}
		log.ErrorContext(c.Request.Context(), "home load failed", "err", err)
		response.HTML(c, "home.html", gin.H{
			"User":  middleware.CurrentUser(c),
			"Error": "Failed to load content. Please try again later.",
		})
		return
	}

	response.HTML(c, "home.html", gin.H{
		"User": middleware.CurrentUser(c),
		"View": view,
	})
}
