package dto

import "html/template"

// PostCardView 列表卡片
type PostCardView struct {
	ID           string
	Title        string
	Excerpt      string
	CategoryName string
	AuthorName   string
	PhotoURL     string
	CreatedAt    string
}

// PostDetailView 帖子详情页
type PostDetailView struct {
	ID           string
	Title        string
	ContentHTML  template.HTML
	CategoryName string
	TagNames     []string
	AuthorName   string
	PhotoURL     string
	ReadingTime  int
	Status       string
	CreatedAt    string
	UpdatedAt    string
	CanEdit      bool
}

// CommentView 评论项
type CommentView struct {
	ID         string
	Content    string
	AuthorName string
	Likes      int
	CreatedAt  string
	CanEdit    bool
}

// CategoryView 分类管理行
type CategoryView struct {
	ID        string
	Name      string
	PostCount int
	CanDelete bool
}

// TagView 标签管理行
type TagView struct {
	ID        string
	Name      string
	PostCount int
	CanDelete bool
}

// HomeView 首页数据
type HomeView struct {
	Featured   *PostCardView
	Posts      []PostCardView
	Categories []CategoryView
	Tags       []TagView
	Page       int
	TotalPages int
	TotalPosts int
	CategoryID string
	TagID      string
	Sort       string
}
