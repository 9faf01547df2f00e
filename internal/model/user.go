package model

// User 当前登录用户的最小档案
type User struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// Author 资源作者，由后端随资源一并返回
type Author struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}
