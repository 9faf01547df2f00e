package gateway

import (
	"context"
	"net/url"
	"strconv"

	"Quill/internal/api/dto"
	"Quill/internal/model"
	"Quill/internal/pkg/backend"
)

// PostQuery 列表过滤条件，零值字段不进入查询串
type PostQuery struct {
	CategoryID string
	TagID      string
	Sort       string
	Page       int
	Size       int
}

func (q PostQuery) values() url.Values {
	v := url.Values{}
	if q.CategoryID != "" {
		v.Set("categoryId", q.CategoryID)
	}
	if q.TagID != "" {
		v.Set("tagId", q.TagID)
	}
	if q.Sort != "" {
		v.Set("sort", q.Sort)
	}
	if q.Page > 0 {
		v.Set("page", strconv.Itoa(q.Page))
	}
	if q.Size > 0 {
		v.Set("size", strconv.Itoa(q.Size))
	}
	return v
}

type PostGateway interface {
	List(ctx context.Context, q PostQuery) ([]model.Post, error)
	Drafts(ctx context.Context, q PostQuery) ([]model.Post, error)
	Get(ctx context.Context, id string) (*model.Post, error)
	Create(ctx context.Context, req dto.CreatePostRequest) (*model.Post, error)
	Update(ctx context.Context, id string, req dto.UpdatePostRequest) (*model.Post, error)
	Delete(ctx context.Context, id string) error
}

type postGatewayImpl struct {
	client *backend.Client
}

func NewPostGateway(client *backend.Client) PostGateway {
	return &postGatewayImpl{client: client}
}

func (s *postGatewayImpl) List(ctx context.Context, q PostQuery) ([]model.Post, error) {
	var posts []model.Post
	if err := s.client.Get(ctx, "/posts", q.values(), &posts); err != nil {
		return nil, err
	}
	return posts, nil
}

func (s *postGatewayImpl) Drafts(ctx context.Context, q PostQuery) ([]model.Post, error) {
	var posts []model.Post
	if err := s.client.Get(ctx, "/posts/drafts", q.values(), &posts); err != nil {
		return nil, err
	}
	return posts, nil
}

func (s *postGatewayImpl) Get(ctx context.Context, id string) (*model.Post, error) {
	var post model.Post
	if err := s.client.Get(ctx, "/posts/"+id, nil, &post); err != nil {
		return nil, err
	}
	return &post, nil
}

func (s *postGatewayImpl) Create(ctx context.Context, req dto.CreatePostRequest) (*model.Post, error) {
	var post model.Post
	if err := s.client.Post(ctx, "/posts", req, &post); err != nil {
		return nil, err
	}
	return &post, nil
}

func (s *postGatewayImpl) Update(ctx context.Context, id string, req dto.UpdatePostRequest) (*model.Post, error) {
	var post model.Post
	if err := s.client.Put(ctx, "/posts/"+id, req, &post); err != nil {
		return nil, err
	}
	return &post, nil
}

func (s *postGatewayImpl) Delete(ctx context.Context, id string) error {
	return s.client.Delete(ctx, "/posts/"+id)
}
