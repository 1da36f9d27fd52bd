package memory

import (
	"strconv"
	"sync"
	"time"

	"github.com/marcosalmeidaedp/bot-cliente/pkg/store"

	"github.com/patrickmn/go-cache"
)

// SessionRepository keeps one dialogue session per chat in memory. Sessions
// expire after an hour of inactivity; an expired session simply comes back as
// a fresh idle one, which the dialogue handles by asking for a field again.
type SessionRepository struct {
	cache *cache.Cache

	// Per-chat locks so two concurrent updates for the same chat cannot
	// interleave their read-modify-write of the session. Locks are never
	// evicted; the map grows with the number of distinct chats, which is
	// bounded in practice.
	locks sync.Map // int64 -> *sync.Mutex
}

func NewSessionRepository() *SessionRepository {
	// Default expiration of 1 hour, purge sweep every 10 minutes.
	c := cache.New(1*time.Hour, 10*time.Minute)
	return &SessionRepository{
		cache: c,
	}
}

// Lock acquires the mutex owning chatID and returns the unlock function.
func (r *SessionRepository) Lock(chatID int64) func() {
	mu, _ := r.locks.LoadOrStore(chatID, &sync.Mutex{})
	m := mu.(*sync.Mutex)
	m.Lock()
	return m.Unlock
}

// Get returns the session for chatID, creating a default idle session if
// none exists (or the previous one expired).
func (r *SessionRepository) Get(chatID int64) *store.Session {
	if x, found := r.cache.Get(key(chatID)); found {
		return x.(*store.Session)
	}
	return store.NewSession(chatID)
}

// Save persists the session state.
func (r *SessionRepository) Save(session *store.Session) {
	r.cache.Set(key(session.ChatID), session, cache.DefaultExpiration)
}

// Delete drops the session for chatID.
func (r *SessionRepository) Delete(chatID int64) {
	r.cache.Delete(key(chatID))
}

// Count returns the number of live sessions (expired ones excluded by the cache).
func (r *SessionRepository) Count() int {
	return r.cache.ItemCount()
}

func key(chatID int64) string {
	return strconv.FormatInt(chatID, 10)
}
