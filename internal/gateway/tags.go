package gateway

import (
	"context"

	"Quill/internal/api/dto"
	"Quill/internal/model"
	"Quill/internal/pkg/backend"
)

type TagGateway interface {
	List(ctx context.Context) ([]model.Tag, error)
	Create(ctx context.Context, name string) (*model.Tag, error)
	CreateBulk(ctx context.Context, names []string) ([]model.Tag, error)
	Update(ctx context.Context, id, name string) (*model.Tag, error)
	Delete(ctx context.Context, id string) error
}

type tagGatewayImpl struct {
	client *backend.Client
}

func NewTagGateway(client *backend.Client) TagGateway {
	return &tagGatewayImpl{client: client}
}

func (s *tagGatewayImpl) List(ctx context.Context) ([]model.Tag, error) {
	var tags []model.Tag
	if err := s.client.Get(ctx, "/tags", nil, &tags); err != nil {
		return nil, err
	}
	return tags, nil
}

func (s *tagGatewayImpl) Create(ctx context.Context, name string) (*model.Tag, error) {
	var tag model.Tag
	if err := s.client.Post(ctx, "/tags", dto.NameRequest{Name: name}, &tag); err != nil {
		return nil, err
	}
	return &tag, nil
}

func (s *tagGatewayImpl) CreateBulk(ctx context.Context, names []string) ([]model.Tag, error) {
	body := make([]dto.NameRequest, 0, len(names))
	for _, name := range names {
		body = append(body, dto.NameRequest{Name: name})
	}

	var tags []model.Tag
	if err := s.client.Post(ctx, "/tags/bulk", body, &tags); err != nil {
		return nil, err
	}
	return tags, nil
}

func (s *tagGatewayImpl) Update(ctx context.Context, id, name string) (*model.Tag, error) {
	var tag model.Tag
	if err := s.client.Put(ctx, "/tags/"+id, dto.RenameRequest{ID: id, Name: name}, &tag); err != nil {
		return nil, err
	}
	return &tag, nil
}

func (s *tagGatewayImpl) Delete(ctx context.Context, id string) error {
	return s.client.Delete(ctx, "/tags/"+id)
}
