package service

import (
	"context"
	"strings"
	"time"

	"Quill/internal/api/dto"
	"Quill/internal/gateway"
	"Quill/internal/model"
	"Quill/internal/session"
)

type AuthService interface {
	Login(ctx context.Context, email, password string) (*session.Session, time.Duration, error)
	Register(ctx context.Context, name, email, password string) (*dto.RegisterResponse, error)
}

type authServiceImpl struct {
	authGw gateway.AuthGateway
}

func NewAuthService(authGw gateway.AuthGateway) AuthService {
	return &authServiceImpl{authGw: authGw}
}

func (s *authServiceImpl) Login(ctx context.Context, email, password string) (*session.Session, time.Duration, error) {
	resp, err := s.authGw.Login(ctx, email, password)
	if err != nil {
		return nil, 0, err
	}

	user := resp.User
	if user == nil {
		// 登录响应未带档案时按邮箱兜底
		user = &model.User{
			ID:    email,
			Name:  strings.SplitN(email, "@", 2)[0],
			Email: email,
		}
	}

	sess := &session.Session{Token: resp.Token, User: user}
	return sess, time.Duration(resp.ExpiresIn) * time.Second, nil
}

func (s *authServiceImpl) Register(ctx context.Context, name, email, password string) (*dto.RegisterResponse, error) {
	return s.authGw.Register(ctx, name, email, password)
}
