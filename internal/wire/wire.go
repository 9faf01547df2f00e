package wire

import (
	"strings"
	"time"

	"Quill/internal/api"
	"Quill/internal/api/config"
	"Quill/internal/api/handler"
	"Quill/internal/gateway"
	"Quill/internal/job"
	"Quill/internal/pkg/backend"
	"Quill/internal/pkg/cron"
	"Quill/internal/service"
	"Quill/internal/session"

	"github.com/gin-gonic/gin"
)

// ApplicationContainer 封装了应用运行所需的所有顶级组件
type ApplicationContainer struct {
	Router  *gin.Engine
	Client  *backend.Client
	CronMgr *cron.Manager
}

func BuildApplication(store session.Store, cfg *config.Config) (*ApplicationContainer, error) {
	// 全应用共享同一个后端客户端
	client := backend.New(cfg.Backend, store)

	authGw := gateway.NewAuthGateway(client)
	postGw := gateway.NewPostGateway(client)
	categoryGw := gateway.NewCategoryGateway(client)
	tagGw := gateway.NewTagGateway(client)
	commentGw := gateway.NewCommentGateway(client)

	useCache := cfg.Redis.Addr != ""
	cacheTTL := time.Duration(cfg.Cache.TaxonomyTTL) * time.Second

	authService := service.NewAuthService(authGw)
	taxonomyService := service.NewTaxonomyService(categoryGw, tagGw, cacheTTL, useCache)
	postService := service.NewPostService(postGw, taxonomyService, photoBase(cfg.Backend))
	commentService := service.NewCommentService(commentGw)

	handlers := &api.HandlersGroup{
		AuthHandler:     handler.NewAuthHandler(authService, store),
		HomeHandler:     handler.NewHomeHandler(postService),
		PostHandler:     handler.NewPostHandler(postService, commentService, taxonomyService),
		CommentHandler:  handler.NewCommentHandler(commentService),
		CategoryHandler: handler.NewCategoryHandler(taxonomyService),
		TagHandler:      handler.NewTagHandler(taxonomyService),
	}

	router := api.SetupRouter(handlers, store)

	taxonomyJob := job.NewTaxonomyRefreshJob(taxonomyService)
	cronMgr := cron.NewCronManager(taxonomyJob, cfg.Cache.RefreshSpec)

	return &ApplicationContainer{
		Router:  router,
		Client:  client,
		CronMgr: cronMgr,
	}, nil
}

// photoBase 图片地址基准，未配置时取后端地址去掉 API 前缀
func photoBase(cfg config.BackendConfig) string {
	if cfg.PhotoBaseURL != "" {
		return cfg.PhotoBaseURL
	}
	return strings.TrimSuffix(strings.TrimSuffix(cfg.BaseURL, "/"), "/api/v1")
}
