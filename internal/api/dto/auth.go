package dto

import "Quill/internal/model"

// LoginForm 登录表单
type LoginForm struct {
	Email    string `form:"email" binding:"required,email"`
	Password string `form:"password" binding:"required"`
}

// RegisterForm 注册表单
type RegisterForm struct {
	Name     string `form:"name" binding:"required,min=4"`
	Email    string `form:"email" binding:"required,email"`
	Password string `form:"password" binding:"required"`
}

// LoginRequest POST /auth/login 请求体
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RegisterRequest POST /auth/register 请求体
type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthResponse 登录响应，user 可能缺席
type AuthResponse struct {
	Token     string      `json:"token"`
	ExpiresIn int         `json:"expiresIn"`
	User      *model.User `json:"user,omitempty"`
}

// RegisterResponse 注册响应
type RegisterResponse struct {
	Message string `json:"message"`
	UserID  string `json:"userId"`
}
