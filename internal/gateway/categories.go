package gateway

import (
	"context"

	"Quill/internal/api/dto"
	"Quill/internal/model"
	"Quill/internal/pkg/backend"
)

type CategoryGateway interface {
	List(ctx context.Context) ([]model.Category, error)
	Create(ctx context.Context, name string) (*model.Category, error)
	Update(ctx context.Context, id, name string) (*model.Category, error)
	Delete(ctx context.Context, id string) error
}

type categoryGatewayImpl struct {
	client *backend.Client
}

func NewCategoryGateway(client *backend.Client) CategoryGateway {
	return &categoryGatewayImpl{client: client}
}

func (s *categoryGatewayImpl) List(ctx context.Context) ([]model.Category, error) {
	var categories []model.Category
	if err := s.client.Get(ctx, "/categories", nil, &categories); err != nil {
		return nil, err
	}
	return categories, nil
}

func (s *categoryGatewayImpl) Create(ctx context.Context, name string) (*model.Category, error) {
	var category model.Category
	if err := s.client.Post(ctx, "/categories", dto.NameRequest{Name: name}, &category); err != nil {
		return nil, err
	}
	return &category, nil
}

func (s *categoryGatewayImpl) Update(ctx context.Context, id, name string) (*model.Category, error) {
	var category model.Category
	if err := s.client.Put(ctx, "/categories/"+id, dto.RenameRequest{ID: id, Name: name}, &category); err != nil {
		return nil, err
	}
	return &category, nil
}

func (s *categoryGatewayImpl) Delete(ctx context.Context, id string) error {
	return s.client.Delete(ctx, "/categories/"+id)
}
