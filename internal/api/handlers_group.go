package api

import "Quill/internal/api/handler"

// HandlersGroup 封装了所有已初始化的 Handler 实例
type HandlersGroup struct {
	AuthHandler     *handler.AuthHandler
	HomeHandler     *handler.HomeHandler
	PostHandler     *handler.PostHandler
	CommentHandler  *handler.CommentHandler
	CategoryHandler *handler.CategoryHandler
	TagHandler      *handler.TagHandler
}
