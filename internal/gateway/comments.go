package gateway

import (
	"context"

	"Quill/internal/api/dto"
	"Quill/internal/model"
	"Quill/internal/pkg/backend"
)

type CommentGateway interface {
	ListAll(ctx context.Context) ([]model.Comment, error)
	ListByPost(ctx context.Context, postID string) ([]model.Comment, error)
	ListByUser(ctx context.Context, userID string) ([]model.Comment, error)
	Get(ctx context.Context, id string) (*model.Comment, error)
	CountByPost(ctx context.Context, postID string) (int, error)
	Create(ctx context.Context, postID, content string) (*model.Comment, error)
	Update(ctx context.Context, id, content string) (*model.Comment, error)
	Delete(ctx context.Context, id string) error
	Like(ctx context.Context, id string) (*model.Comment, error)
	Unlike(ctx context.Context, id string) (*model.Comment, error)
}

type commentGatewayImpl struct {
	client *backend.Client
}

func NewCommentGateway(client *backend.Client) CommentGateway {
	return &commentGatewayImpl{client: client}
}

func (s *commentGatewayImpl) ListAll(ctx context.Context) ([]model.Comment, error) {
	var comments []model.Comment
	if err := s.client.Get(ctx, "/comments", nil, &comments); err != nil {
		return nil, err
	}
	return comments, nil
}

func (s *commentGatewayImpl) ListByPost(ctx context.Context, postID string) ([]model.Comment, error) {
	var comments []model.Comment
	if err := s.client.Get(ctx, "/comments/post/"+postID, nil, &comments); err != nil {
		return nil, err
	}
	return comments, nil
}

func (s *commentGatewayImpl) ListByUser(ctx context.Context, userID string) ([]model.Comment, error) {
	var comments []model.Comment
	if err := s.client.Get(ctx, "/comments/user/"+userID, nil, &comments); err != nil {
		return nil, err
	}
	return comments, nil
}

func (s *commentGatewayImpl) Get(ctx context.Context, id string) (*model.Comment, error) {
	var comment model.Comment
	if err := s.client.Get(ctx, "/comments/"+id, nil, &comment); err != nil {
		return nil, err
	}
	return &comment, nil
}

func (s *commentGatewayImpl) CountByPost(ctx context.Context, postID string) (int, error) {
	var resp dto.CommentCountResponse
	if err := s.client.Get(ctx, "/comments/post/"+postID+"/count", nil, &resp); err != nil {
		return 0, err
	}
	return resp.Count, nil
}

func (s *commentGatewayImpl) Create(ctx context.Context, postID, content string) (*model.Comment, error) {
	var comment model.Comment
	if err := s.client.Post(ctx, "/comments/post/"+postID, dto.CommentRequest{Content: content}, &comment); err != nil {
		return nil, err
	}
	return &comment, nil
}

func (s *commentGatewayImpl) Update(ctx context.Context, id, content string) (*model.Comment, error) {
	var comment model.Comment
	if err := s.client.Put(ctx, "/comments/"+id, dto.CommentRequest{Content: content}, &comment); err != nil {
		return nil, err
	}
	return &comment, nil
}

func (s *commentGatewayImpl) Delete(ctx context.Context, id string) error {
	return s.client.Delete(ctx, "/comments/"+id)
}

func (s *commentGatewayImpl) Like(ctx context.Context, id string) (*model.Comment, error) {
	var comment model.Comment
	if err := s.client.Post(ctx, "/comments/"+id+"/like", nil, &comment); err != nil {
		return nil, err
	}
	return &comment, nil
}

func (s *commentGatewayImpl) Unlike(ctx context.Context, id string) (*model.Comment, error) {
	var comment model.Comment
	if err := s.client.Post(ctx, "/comments/"+id+"/unlike", nil, &comment); err != nil {
		return nil, err
	}
	return &comment, nil
}
