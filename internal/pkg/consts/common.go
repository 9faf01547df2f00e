package consts

// Context 键，由会话中间件写入、出站客户端读取
const (
	CtxSessionID    = "session_id"
	CtxSessionToken = "session_token"
	CtxSessionUser  = "session_user"
)

const (
	// PostsPerPage 首页每页帖子数
	PostsPerPage = 6

	// ExcerptMaxRunes 摘要截断长度
	ExcerptMaxRunes = 200
)

// 会话持久化字段名
const (
	SessionFieldToken = "token"
	SessionFieldUser  = "user"
)
