package service

import (
	"context"
	log "log/slog"
	"time"

	"Quill/internal/api/dto"
	"Quill/internal/gateway"
	"Quill/internal/model"
	"Quill/internal/pkg/consts"
	"Quill/internal/pkg/paging"
	"Quill/internal/pkg/redis"

	"github.com/goccy/go-json"
)

// TaxonomyService 分类与标签。读路径走 Redis 旁路缓存（未配置 Redis 时直连），
// 写路径全部透传后端并使缓存失效。
type TaxonomyService interface {
	Categories(ctx context.Context) ([]dto.CategoryView, error)
	Tags(ctx context.Context) ([]dto.TagView, error)
	Refresh(ctx context.Context) error

	CreateCategory(ctx context.Context, name string) (*model.Category, error)
	RenameCategory(ctx context.Context, id, name string) (*model.Category, error)
	DeleteCategory(ctx context.Context, id string) error

	CreateTag(ctx context.Context, name string) (*model.Tag, error)
	CreateTags(ctx context.Context, names []string) ([]model.Tag, error)
	RenameTag(ctx context.Context, id, name string) (*model.Tag, error)
	DeleteTag(ctx context.Context, id string) error
}

type taxonomyServiceImpl struct {
	categories gateway.CategoryGateway
	tags       gateway.TagGateway
	cacheTTL   time.Duration
	useCache   bool

	// 重叠刷新守卫：迟到的旧一代结果不写缓存
	catCursor paging.Cursor
	tagCursor paging.Cursor
}

func NewTaxonomyService(categories gateway.CategoryGateway, tags gateway.TagGateway, cacheTTL time.Duration, useCache bool) TaxonomyService {
	return &taxonomyServiceImpl{
		categories: categories,
		tags:       tags,
		cacheTTL:   cacheTTL,
		useCache:   useCache,
	}
}

func (s *taxonomyServiceImpl) Categories(ctx context.Context) ([]dto.CategoryView, error) {
	if s.useCache {
		if cached, err := redis.GetValue(ctx, consts.TaxonomyCategoryKey); err == nil && cached != "" {
			var list []model.Category
			if err := json.Unmarshal([]byte(cached), &list); err == nil {
				return categoryViews(list), nil
			}
		}
	}

	list, err := s.refreshCategories(ctx)
	if err != nil {
		return nil, err
	}
	return categoryViews(list), nil
}

func (s *taxonomyServiceImpl) Tags(ctx context.Context) ([]dto.TagView, error) {
	if s.useCache {
		if cached, err := redis.GetValue(ctx, consts.TaxonomyTagKey); err == nil && cached != "" {
			var list []model.Tag
			if err := json.Unmarshal([]byte(cached), &list); err == nil {
				return tagViews(list), nil
			}
		}
	}

	list, err := s.refreshTags(ctx)
	if err != nil {
		return nil, err
	}
	return tagViews(list), nil
}

// Refresh 由定时任务调用，预热两类缓存
func (s *taxonomyServiceImpl) Refresh(ctx context.Context) error {
	if _, err := s.refreshCategories(ctx); err != nil {
		return err
	}
	_, err := s.refreshTags(ctx)
	return err
}

func (s *taxonomyServiceImpl) refreshCategories(ctx context.Context) ([]model.Category, error) {
	gen := s.catCursor.Begin()

	list, err := s.categories.List(ctx)
	if err != nil {
		return nil, err
	}

	if s.useCache && s.catCursor.Accept(gen) {
		s.writeCache(ctx, consts.TaxonomyCategoryKey, list)
	}
	return list, nil
}

func (s *taxonomyServiceImpl) refreshTags(ctx context.Context) ([]model.Tag, error) {
	gen := s.tagCursor.Begin()

	list, err := s.tags.List(ctx)
	if err != nil {
		return nil, err
	}

	if s.useCache && s.tagCursor.Accept(gen) {
		s.writeCache(ctx, consts.TaxonomyTagKey, list)
	}
	return list, nil
}

func (s *taxonomyServiceImpl) writeCache(ctx context.Context, key string, value any) {
	raw, err := json.Marshal(value)
	if err != nil {
		return
	}
	if err := redis.SetWithExpiration(ctx, key, string(raw), s.cacheTTL); err != nil {
		log.WarnContext(ctx, "taxonomy cache write failed", "key", key, "err", err)
	}
}

func (s *taxonomyServiceImpl) invalidate(ctx context.Context, key string) {
	if !s.useCache {
		return
	}
	if err := redis.DeleteKey(ctx, key); err != nil {
		log.WarnContext(ctx, "taxonomy cache invalidation failed", "key", key, "err", err)
	}
}

func (s *taxonomyServiceImpl) CreateCategory(ctx context.Context, name string) (*model.Category, error) {
	category, err := s.categories.Create(ctx, name)
	if err != nil {
		return nil, err
	}
	s.invalidate(ctx, consts.TaxonomyCategoryKey)
	return category, nil
}

func (s *taxonomyServiceImpl) RenameCategory(ctx context.Context, id, name string) (*model.Category, error) {
	category, err := s.categories.Update(ctx, id, name)
	if err != nil {
		return nil, err
	}
	s.invalidate(ctx, consts.TaxonomyCategoryKey)
	return category, nil
}

func (s *taxonomyServiceImpl) DeleteCategory(ctx context.Context, id string) error {
	if err := s.categories.Delete(ctx, id); err != nil {
		return err
	}
	s.invalidate(ctx, consts.TaxonomyCategoryKey)
	return nil
}

func (s *taxonomyServiceImpl) CreateTag(ctx context.Context, name string) (*model.Tag, error) {
	tag, err := s.tags.Create(ctx, name)
	if err != nil {
		return nil, err
	}
	s.invalidate(ctx, consts.TaxonomyTagKey)
	return tag, nil
}

func (s *taxonomyServiceImpl) CreateTags(ctx context.Context, names []string) ([]model.Tag, error) {
	if len(names) == 0 {
		return nil, ErrNameEmpty
	}
	tags, err := s.tags.CreateBulk(ctx, names)
	if err != nil {
		return nil, err
	}
	s.invalidate(ctx, consts.TaxonomyTagKey)
	return tags, nil
}

func (s *taxonomyServiceImpl) RenameTag(ctx context.Context, id, name string) (*model.Tag, error) {
	tag, err := s.tags.Update(ctx, id, name)
	if err != nil {
		return nil, err
	}
	s.invalidate(ctx, consts.TaxonomyTagKey)
	return tag, nil
}

func (s *taxonomyServiceImpl) DeleteTag(ctx context.Context, id string) error {
	if err := s.tags.Delete(ctx, id); err != nil {
		return err
	}
	s.invalidate(ctx, consts.TaxonomyTagKey)
	return nil
}

func categoryViews(list []model.Category) []dto.CategoryView {
	views := make([]dto.CategoryView, 0, len(list))
	for _, c := range list {
		count := 0
		if c.PostCount != nil {
			count = *c.PostCount
		}
		views = append(views, dto.CategoryView{
			ID:        c.ID,
			Name:      c.Name,
			PostCount: count,
			// 有关联帖子的分类禁用删除入口，后端仍是最终约束
			CanDelete: count == 0,
		})
	}
	return views
}

func tagViews(list []model.Tag) []dto.TagView {
	views := make([]dto.TagView, 0, len(list))
	for _, t := range list {
		count := 0
		if t.PostCount != nil {
			count = *t.PostCount
		}
		views = append(views, dto.TagView{
			ID:        t.ID,
			Name:      t.Name,
			PostCount: count,
			CanDelete: count == 0,
		})
	}
	return views
}
