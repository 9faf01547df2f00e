package gateway

import (
	"context"

	"Quill/internal/api/dto"
	"Quill/internal/pkg/backend"
)

type AuthGateway interface {
	Login(ctx context.Context, email, password string) (*dto.AuthResponse, error)
	Register(ctx context.Context, name, email, password string) (*dto.RegisterResponse, error)
}

type authGatewayImpl struct {
	client *backend.Client
}

func NewAuthGateway(client *backend.Client) AuthGateway {
	return &authGatewayImpl{client: client}
}

func (s *authGatewayImpl) Login(ctx context.Context, email, password string) (*dto.AuthResponse, error) {
	var resp dto.AuthResponse
	err := s.client.Post(ctx, "/auth/login", dto.LoginRequest{Email: email, Password: password}, &resp)
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

func (s *authGatewayImpl) Register(ctx context.Context, name, email, password string) (*dto.RegisterResponse, error) {
	var resp dto.RegisterResponse
	err := s.client.Post(ctx, "/auth/register", dto.RegisterRequest{Name: name, Email: email, Password: password}, &resp)
	if err != nil {
		return nil, err
	}
	return &resp, nil
}
