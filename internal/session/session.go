package session

import (
	"time"

	"Quill/internal/model"

	"github.com/goccy/go-json"
	"github.com/golang-jwt/jwt/v5"
)

// Session 登录态，token 与 user 始终整体读写
type Session struct {
	Token string
	User  *model.User
}

func (s *Session) Authenticated() bool {
	return s != nil && s.Token != "" && s.User != nil
}

// hydrate 从持久化字段还原会话。ok 为 false 表示数据损坏或已过期，
// 调用方应整体清除持久化状态并按未登录处理，不得向上抛解析错误。
func hydrate(token, rawUser string) (*Session, bool) {
	if token == "" || rawUser == "" {
		return nil, false
	}

	var user model.User
	if err := json.Unmarshal([]byte(rawUser), &user); err != nil {
		return nil, false
	}
	if user.ID == "" {
		return nil, false
	}

	if tokenExpired(token) {
		return nil, false
	}

	return &Session{Token: token, User: &user}, true
}

// tokenExpired 不做签名校验，仅读取 exp；校验是后端的职责。
// 无法按 JWT 解析的不透明 token 同样交由后端判定。
func tokenExpired(token string) bool {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return false
	}

	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return false
	}
	return exp.Before(time.Now())
}
