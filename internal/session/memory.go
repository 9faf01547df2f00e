package session

import (
	"context"
	"sync"
	"time"

	"github.com/goccy/go-json"
)

type memoryEntry struct {
	token     string
	rawUser   string
	expiresAt time.Time
}

// MemoryStore 进程内会话存储，用于未配置 Redis 的开发环境与测试
type MemoryStore struct {
	mu      sync.RWMutex
	entries map[string]memoryEntry
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{entries: make(map[string]memoryEntry)}
}

func (s *MemoryStore) Get(ctx context.Context, sid string) (*Session, error) {
	s.mu.RLock()
	entry, found := s.entries[sid]
	s.mu.RUnlock()

	if !found {
		return nil, nil
	}
	if !entry.expiresAt.IsZero() && entry.expiresAt.Before(time.Now()) {
		_ = s.Clear(ctx, sid)
		return nil, nil
	}

	sess, ok := hydrate(entry.token, entry.rawUser)
	if !ok {
		_ = s.Clear(ctx, sid)
		return nil, nil
	}
	return sess, nil
}

func (s *MemoryStore) Set(_ context.Context, sid string, sess *Session, ttl time.Duration) error {
	rawUser, err := json.Marshal(sess.User)
	if err != nil {
		return err
	}

	var expiresAt time.Time
	if ttl > 0 {
		expiresAt = time.Now().Add(ttl)
	}

	s.mu.Lock()
	s.entries[sid] = memoryEntry{
		token:     sess.Token,
		rawUser:   string(rawUser),
		expiresAt: expiresAt,
	}
	s.mu.Unlock()
	return nil
}

func (s *MemoryStore) Clear(_ context.Context, sid string) error {
	s.mu.Lock()
	delete(s.entries, sid)
	s.mu.Unlock()
	return nil
}

// put 写入原始持久化字段，测试用：可以注入损坏的 user 数据
func (s *MemoryStore) put(sid, token, rawUser string) {
	s.mu.Lock()
	s.entries[sid] = memoryEntry{token: token, rawUser: rawUser}
	s.mu.Unlock()
}
