package dto

import "Quill/internal/model"

// PostForm 帖子编辑表单
type PostForm struct {
	Title      string   `form:"title" binding:"required"`
	Content    string   `form:"content" binding:"required"`
	CategoryID string   `form:"category_id" binding:"required"`
	TagIDs     []string `form:"tag_ids"`
	Status     string   `form:"status"`
	Photo      string   `form:"photo"`
}

// PostListQuery 首页列表查询
type PostListQuery struct {
	CategoryID string `form:"category"`
	TagID      string `form:"tag"`
	Sort       string `form:"sort"`
	Page       int    `form:"page"`
}

// CreatePostRequest POST /posts 请求体
type CreatePostRequest struct {
	Title      string           `json:"title"`
	Content    string           `json:"content"`
	CategoryID string           `json:"categoryId"`
	TagIDs     []string         `json:"tagIds"`
	Status     model.PostStatus `json:"status,omitempty"`
	Photo      string           `json:"photo,omitempty"`
}

// UpdatePostRequest PUT /posts/{id} 请求体
type UpdatePostRequest struct {
	ID         string           `json:"id"`
	Title      string           `json:"title"`
	Content    string           `json:"content"`
	CategoryID string           `json:"categoryId"`
	TagIDs     []string         `json:"tagIds"`
	Status     model.PostStatus `json:"status,omitempty"`
	Photo      string           `json:"photo,omitempty"`
}
