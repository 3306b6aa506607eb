package memory

import (
	"time"

	"github.com/patrickmn/go-cache"
)

// SessionRepository keeps conversation identifiers in process memory.
// Entries expire after an hour of inactivity, matching how long the
// generation agent retains session context.
type SessionRepository struct {
	cache *cache.Cache
}

func NewSessionRepository() *SessionRepository {
	// Default expiration of 1 hour, purge sweep every 10 minutes
	c := cache.New(1*time.Hour, 10*time.Minute)
	return &SessionRepository{
		cache: c,
	}
}

func (r *SessionRepository) Get(sessionKey string) (string, bool) {
	if x, found := r.cache.Get(sessionKey); found {
		return x.(string), true
	}
	return "", false
}

func (r *SessionRepository) Save(sessionKey, conversationID string) {
	r.cache.Set(sessionKey, conversationID, cache.DefaultExpiration)
}

func (r *SessionRepository) Delete(sessionKey string) {
	r.cache.Delete(sessionKey)
}
