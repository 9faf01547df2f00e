package service

import (
	"context"
	"strings"

	"Quill/internal/api/dto"
	"Quill/internal/gateway"
	"Quill/internal/model"
)

type CommentService interface {
	ListByPost(ctx context.Context, postID string, current *model.User) ([]dto.CommentView, error)
	CountByPost(ctx context.Context, postID string) (int, error)
	Create(ctx context.Context, postID, content string) (*model.Comment, error)
	Update(ctx context.Context, id, content string) (*model.Comment, error)
	Delete(ctx context.Context, id string) error
	Like(ctx context.Context, id string) (*model.Comment, error)
	Unlike(ctx context.Context, id string) (*model.Comment, error)
}

type commentServiceImpl struct {
	comments gateway.CommentGateway
}

func NewCommentService(comments gateway.CommentGateway) CommentService {
	return &commentServiceImpl{comments: comments}
}

func (s *commentServiceImpl) ListByPost(ctx context.Context, postID string, current *model.User) ([]dto.CommentView, error) {
	comments, err := s.comments.ListByPost(ctx, postID)
	if err != nil {
		return nil, err
	}

	views := make([]dto.CommentView, 0, len(comments))
	for _, c := range comments {
		view := dto.CommentView{
			ID:        c.ID,
			Content:   c.Content,
			CreatedAt: c.CreatedAt,
		}
		if c.Likes != nil {
			view.Likes = *c.Likes
		}
		if c.User != nil {
			view.AuthorName = c.User.Name
			// 展示层判定，后端才是权限边界
			view.CanEdit = current != nil && current.ID == c.User.ID
		}
		views = append(views, view)
	}
	return views, nil
}

func (s *commentServiceImpl) CountByPost(ctx context.Context, postID string) (int, error) {
	return s.comments.CountByPost(ctx, postID)
}

// Create 空白内容在本地拒绝，不发起网络请求
func (s *commentServiceImpl) Create(ctx context.Context, postID, content string) (*model.Comment, error) {
	trimmed := strings.TrimSpace(content)
	if trimmed == "" {
		return nil, ErrCommentEmpty
	}
	return s.comments.Create(ctx, postID, trimmed)
}

func (s *commentServiceImpl) Update(ctx context.Context, id, content string) (*model.Comment, error) {
	trimmed := strings.TrimSpace(content)
	if trimmed == "" {
		return nil, ErrCommentEmpty
	}
	return s.comments.Update(ctx, id, trimmed)
}

func (s *commentServiceImpl) Delete(ctx context.Context, id string) error {
	return s.comments.Delete(ctx, id)
}

func (s *commentServiceImpl) Like(ctx context.Context, id string) (*model.Comment, error) {
	return s.comments.Like(ctx, id)
}

func (s *commentServiceImpl) Unlike(ctx context.Context, id string) (*model.Comment, error) {
	return s.comments.Unlike(ctx, id)
}
