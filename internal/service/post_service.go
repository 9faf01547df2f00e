package service

import (
	"context"
	"strings"

	"Quill/internal/api/dto"
	"Quill/internal/content"
	"Quill/internal/gateway"
	"Quill/internal/model"
	"Quill/internal/pkg/consts"
	"Quill/internal/pkg/paging"

	"html/template"

	"github.com/jinzhu/copier"
)

const defaultSort = "createdAt,desc"

// placeholderPhoto 后端的占位图文件名
const placeholderPhoto = "photo_1.png"

// BrowseQuery 首页浏览条件。过滤/排序变化由调用方重置 Page 为 1。
type BrowseQuery struct {
	CategoryID string
	TagID      string
	Sort       string
	Page       int
}

type PostService interface {
	Browse(ctx context.Context, q BrowseQuery) (*dto.HomeView, error)
	Detail(ctx context.Context, id string, current *model.User) (*dto.PostDetailView, error)
	Raw(ctx context.Context, id string) (*model.Post, error)
	Drafts(ctx context.Context) ([]dto.PostCardView, error)
	Create(ctx context.Context, form dto.PostForm) (*model.Post, error)
	Update(ctx context.Context, id string, form dto.PostForm) (*model.Post, error)
	Delete(ctx context.Context, id string) error
}

type postServiceImpl struct {
	posts     gateway.PostGateway
	taxonomy  TaxonomyService
	photoBase string
}

func NewPostService(posts gateway.PostGateway, taxonomy TaxonomyService, photoBase string) PostService {
	return &postServiceImpl{
		posts:     posts,
		taxonomy:  taxonomy,
		photoBase: strings.TrimSuffix(photoBase, "/"),
	}
}

func (s *postServiceImpl) Browse(ctx context.Context, q BrowseQuery) (*dto.HomeView, error) {
	if q.Sort == "" {
		q.Sort = defaultSort
	}
	if q.Page <= 0 {
		q.Page = 1
	}

	// 头条取全站第一篇，与过滤条件无关
	featuredList, err := s.posts.List(ctx, gateway.PostQuery{})
	if err != nil {
		return nil, err
	}

	// 当前过滤条件下整表抓取，分页在本地切片
	filtered, err := s.posts.List(ctx, gateway.PostQuery{
		CategoryID: q.CategoryID,
		TagID:      q.TagID,
		Sort:       q.Sort,
	})
	if err != nil {
		return nil, err
	}

	categories, err := s.taxonomy.Categories(ctx)
	if err != nil {
		return nil, err
	}
	tags, err := s.taxonomy.Tags(ctx)
	if err != nil {
		return nil, err
	}

	visible := paging.Slice(filtered, q.Page, consts.PostsPerPage)
	cards := make([]dto.PostCardView, 0, len(visible))
	for i := range visible {
		cards = append(cards, s.card(&visible[i]))
	}

	view := &dto.HomeView{
		Posts:      cards,
		Categories: categories,
		Tags:       tags,
		Page:       q.Page,
		TotalPages: paging.TotalPages(len(filtered), consts.PostsPerPage),
		TotalPosts: len(filtered),
		CategoryID: q.CategoryID,
		TagID:      q.TagID,
		Sort:       q.Sort,
	}
	if len(featuredList) > 0 {
		featured := s.card(&featuredList[0])
		view.Featured = &featured
	}
	return view, nil
}

func (s *postServiceImpl) Detail(ctx context.Context, id string, current *model.User) (*dto.PostDetailView, error) {
	post, err := s.posts.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	var view dto.PostDetailView
	if err := copier.Copy(&view, post); err != nil {
		return nil, err
	}

	view.ContentHTML = template.HTML(content.Sanitize(post.Content, content.Article))
	view.CategoryName = post.Category.Name
	view.PhotoURL = s.photoURL(post.Photo)
	view.Status = string(post.Status)
	if post.ReadingTime != nil {
		view.ReadingTime = *post.ReadingTime
	}
	for _, tag := range post.Tags {
		view.TagNames = append(view.TagNames, tag.Name)
	}
	if post.Author != nil {
		view.AuthorName = post.Author.Name
		// 仅控制编辑入口的展示，真正的权限判定在后端
		view.CanEdit = current != nil && current.ID == post.Author.ID
	}
	return &view, nil
}

// Raw 返回未净化的原始帖子，供编辑表单回填
func (s *postServiceImpl) Raw(ctx context.Context, id string) (*model.Post, error) {
	return s.posts.Get(ctx, id)
}

func (s *postServiceImpl) Drafts(ctx context.Context) ([]dto.PostCardView, error) {
	drafts, err := s.posts.Drafts(ctx, gateway.PostQuery{Sort: defaultSort})
	if err != nil {
		return nil, err
	}

	cards := make([]dto.PostCardView, 0, len(drafts))
	for i := range drafts {
		cards = append(cards, s.card(&drafts[i]))
	}
	return cards, nil
}

func (s *postServiceImpl) Create(ctx context.Context, form dto.PostForm) (*model.Post, error) {
	status, err := parseStatus(form.Status)
	if err != nil {
		return nil, err
	}
	return s.posts.Create(ctx, dto.CreatePostRequest{
		Title:      form.Title,
		Content:    form.Content,
		CategoryID: form.CategoryID,
		TagIDs:     form.TagIDs,
		Status:     status,
		Photo:      form.Photo,
	})
}

func (s *postServiceImpl) Update(ctx context.Context, id string, form dto.PostForm) (*model.Post, error) {
	status, err := parseStatus(form.Status)
	if err != nil {
		return nil, err
	}
	return s.posts.Update(ctx, id, dto.UpdatePostRequest{
		ID:         id,
		Title:      form.Title,
		Content:    form.Content,
		CategoryID: form.CategoryID,
		TagIDs:     form.TagIDs,
		Status:     status,
		Photo:      form.Photo,
	})
}

func (s *postServiceImpl) Delete(ctx context.Context, id string) error {
	return s.posts.Delete(ctx, id)
}

func (s *postServiceImpl) card(post *model.Post) dto.PostCardView {
	var card dto.PostCardView
	_ = copier.Copy(&card, post)
	card.Excerpt = content.Excerpt(post.Content)
	card.CategoryName = post.Category.Name
	card.PhotoURL = s.photoURL(post.Photo)
	if post.Author != nil {
		card.AuthorName = post.Author.Name
	}
	return card
}

func (s *postServiceImpl) photoURL(photo *string) string {
	if photo == nil || *photo == "" {
		return s.photoBase + "/post-photos/" + placeholderPhoto
	}

	p := *photo
	switch {
	case strings.HasPrefix(p, "/post-photos/"):
		return s.photoBase + p
	case strings.HasPrefix(p, "post-photos/"):
		return s.photoBase + "/" + p
	default:
		return s.photoBase + "/post-photos/" + p
	}
}

func parseStatus(raw string) (model.PostStatus, error) {
	switch model.PostStatus(strings.ToUpper(strings.TrimSpace(raw))) {
	case model.PostStatusDraft, "":
		return model.PostStatusDraft, nil
	case model.PostStatusPublished:
		return model.PostStatusPublished, nil
	default:
		return "", ErrInvalidStatus
	}
}
