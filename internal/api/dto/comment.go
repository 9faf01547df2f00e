package dto

// CommentForm 评论表单，内容校验在服务层完成（空白内容不发网络请求）。
// PostID 用于操作完成后跳回详情页。
type CommentForm struct {
	Content string `form:"content"`
	PostID  string `form:"post_id"`
}

// CommentRequest 评论创建/更新请求体
type CommentRequest struct {
	Content string `json:"content"`
}

// CommentCountResponse GET /comments/post/{postId}/count 响应
type CommentCountResponse struct {
	Count int `json:"count"`
}
