package dto

// NameForm 分类/标签的新建与改名表单
type NameForm struct {
	Name string `form:"name" binding:"required"`
}

// BulkTagForm 批量建标签表单，逗号分隔
type BulkTagForm struct {
	Names string `form:"names" binding:"required"`
}

// NameRequest 分类/标签创建请求体
type NameRequest struct {
	Name string `json:"name"`
}

// RenameRequest 分类/标签更新请求体
type RenameRequest struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}
