package api

import (
	"Quill/internal/api/config"
	"Quill/internal/api/middleware"
	"Quill/internal/pkg/logger"
	"Quill/internal/session"
	"html/template"
	"net/http"

	"github.com/gin-gonic/gin"
)

func SetupRouter(group *HandlersGroup, store session.Store) *gin.Engine {
	r := gin.New()
	_ = r.SetTrustedProxies([]string{"localhost"})

	// TraceId & Logger & Session
	r.Use(middleware.TraceMiddleware())
	r.Use(middleware.SessionMiddleware(store, config.Cfg.Session.Cookie))
	logger.SetupGin(r)

	r.SetFuncMap(template.FuncMap{
		"add": func(a, b int) int { return a + b },
		"sub": func(a, b int) int { return a - b },
	})
	r.LoadHTMLGlob("web/templates/*.html")
	r.Static("/assets", "web/assets")

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

	// 无需登录即可访问的页面
	r.GET("/", group.HomeHandler.Index)
	r.GET("/login", group.AuthHandler.LoginPage)
	r.POST("/login", group.AuthHandler.Login)
	r.GET("/register", group.AuthHandler.RegisterPage)
	r.POST("/register", group.AuthHandler.Register)
	r.GET("/posts/:id", group.PostHandler.Show)

	authGroup := r.Group("")
	authGroup.Use(middleware.RequireLogin())
	{
		authGroup.POST("/logout", group.AuthHandler.Logout)

		authGroup.GET("/drafts", group.PostHandler.Drafts)
		authGroup.GET("/posts/new", group.PostHandler.NewPage)
		authGroup.POST("/posts", group.PostHandler.Create)
		authGroup.GET("/posts/:id/edit", group.PostHandler.EditPage)
		authGroup.POST("/posts/:id", group.PostHandler.Update)
		authGroup.POST("/posts/:id/delete", group.PostHandler.Delete)

		authGroup.POST("/posts/:id/comments", group.CommentHandler.Create)
		authGroup.POST("/comments/:id", group.CommentHandler.Update)
		authGroup.POST("/comments/:id/delete", group.CommentHandler.Delete)
		authGroup.POST("/comments/:id/like", group.CommentHandler.Like)
		authGroup.POST("/comments/:id/unlike", group.CommentHandler.Unlike)

		authGroup.GET("/categories", group.CategoryHandler.Index)
		authGroup.POST("/categories", group.CategoryHandler.Create)
		authGroup.POST("/categories/:id", group.CategoryHandler.Update)
		authGroup.POST("/categories/:id/delete", group.CategoryHandler.Delete)

		authGroup.GET("/tags", group.TagHandler.Index)
		authGroup.POST("/tags", group.TagHandler.Create)
		authGroup.POST("/tags/bulk", group.TagHandler.Bulk)
		authGroup.POST("/tags/:id", group.TagHandler.Update)
		authGroup.POST("/tags/:id/delete", group.TagHandler.Delete)
	}

	return r
}
