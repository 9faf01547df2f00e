package model

type Comment struct {
	ID        string  `json:"id"`
	Content   string  `json:"content"`
	User      *Author `json:"user,omitempty"`
	PostID    string  `json:"postId"`
	Likes     *int    `json:"likes,omitempty"`
	CreatedAt string  `json:"createdAt"`
	UpdatedAt string  `json:"updatedAt"`
}
