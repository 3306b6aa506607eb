package redisstore

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	keyPrefix = "conversation:"
	entryTTL  = 1 * time.Hour
)

// SessionRepository keeps conversation identifiers in Redis so they
// survive process restarts. Selected via SESSION_STORE=redis.
type SessionRepository struct {
	rdb *redis.Client
}

func NewSessionRepository(rdb *redis.Client) *SessionRepository {
	return &SessionRepository{rdb: rdb}
}

func (r *SessionRepository) Get(sessionKey string) (string, bool) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	val, err := r.rdb.Get(ctx, keyPrefix+sessionKey).Result()
	if err != nil {
		return "", false
	}
	return val, true
}

func (r *SessionRepository) Save(sessionKey, conversationID string) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	r.rdb.Set(ctx, keyPrefix+sessionKey, conversationID, entryTTL)
}

func (r *SessionRepository) Delete(sessionKey string) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	r.rdb.Del(ctx, keyPrefix+sessionKey)
}
