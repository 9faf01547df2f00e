package session

import (
	"context"
	"time"

	"Quill/internal/pkg/consts"

	"github.com/goccy/go-json"
	"github.com/redis/go-redis/v9"
)

// RedisStore 以 hash 持久化会话，字段名与浏览器端约定一致：token、user
type RedisStore struct {
	rdb *redis.Client
}

func NewRedisStore(rdb *redis.Client) *RedisStore {
	return &RedisStore{rdb: rdb}
}

func (s *RedisStore) Get(ctx context.Context, sid string) (*Session, error) {
	fields, err := s.rdb.HGetAll(ctx, consts.SessionKey+sid).Result()
	if err != nil {
		return nil, err
	}
	if len(fields) == 0 {
		return nil, nil
	}

	sess, ok := hydrate(fields[consts.SessionFieldToken], fields[consts.SessionFieldUser])
	if !ok {
		_ = s.Clear(ctx, sid)
		return nil, nil
	}
	return sess, nil
}

func (s *RedisStore) Set(ctx context.Context, sid string, sess *Session, ttl time.Duration) error {
	rawUser, err := json.Marshal(sess.User)
	if err != nil {
		return err
	}

	key := consts.SessionKey + sid
	pipe := s.rdb.TxPipeline()
	pipe.HSet(ctx, key,
		consts.SessionFieldToken, sess.Token,
		consts.SessionFieldUser, string(rawUser),
	)
	pipe.Expire(ctx, key, ttl)
	_, err = pipe.Exec(ctx)
	return err
}

func (s *RedisStore) Clear(ctx context.Context, sid string) error {
	return s.rdb.Del(ctx, consts.SessionKey+sid).Err()
}
