package session

import (
	"context"
	"time"
)

// Store 会话存储。Get 对损坏的持久化数据返回 (nil, nil) 并顺带清除，
// 三个字段（登录态、token、user）永远整体替换，不存在中间状态。
type Store interface {
	Get(ctx context.Context, sid string) (*Session, error)
	Set(ctx context.Context, sid string, s *Session, ttl time.Duration) error
	Clear(ctx context.Context, sid string) error
}
