package model

type PostStatus string

const (
	PostStatusDraft     PostStatus = "DRAFT"
	PostStatusPublished PostStatus = "PUBLISHED"
)

// Post 后端返回的帖子，本地副本仅用于展示，不作为数据源
type Post struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Content     string     `json:"content"`
	Author      *Author    `json:"author,omitempty"`
	Category    Category   `json:"category"`
	Tags        []Tag      `json:"tags"`
	Status      PostStatus `json:"status,omitempty"`
	Photo       *string    `json:"photo,omitempty"`
	ReadingTime *int       `json:"readingTime,omitempty"`
	CreatedAt   string     `json:"createdAt"`
	UpdatedAt   string     `json:"updatedAt"`
}
