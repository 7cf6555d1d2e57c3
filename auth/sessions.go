package auth

import (
	"context"
	"encoding/binary"
	"errors"
	"time"

	"github.com/allegro/bigcache/v3"
	"github.com/google/uuid"
)

type (
	// SessionStore binds opaque tokens to user ids. Sessions only move
	// from active to absent: destroyed explicitly or evicted by the
	// backend's expiry policy, there is no refresh.
	SessionStore interface {
		Create(ctx context.Context, userID int64) (string, error)
		Resolve(ctx context.Context, token string) (int64, bool, error)
		Destroy(ctx context.Context, token string) error
	}

	memStore struct {
		cache *bigcache.BigCache
	}
)

// InMemorySessionStore keeps sessions in process memory, expiring them
// after ttl. A restart logs everyone out, which is acceptable for a
// single-process deployment.
func InMemorySessionStore(ttl time.Duration) SessionStore {
	cache, _ := bigcache.NewBigCache(bigcache.DefaultConfig(ttl))
	return &memStore{
		cache: cache,
	}
}

func (m *memStore) Create(ctx context.Context, userID int64) (string, error) {
	token := uuid.NewString()
	var buf [8]byte
	binary.BigEndian.PutUint64(buf[:], uint64(userID))
	err := m.cache.Set(token, buf[:])
	if err != nil {
		return "", err
	}
	return token, nil
}

func (m *memStore) Resolve(ctx context.Context, token string) (int64, bool, error) {
	buf, err := m.cache.Get(token)
	if errors.Is(err, bigcache.ErrEntryNotFound) {
		return 0, false, nil
	} else if err != nil {
		return 0, false, err
	}
	if len(buf) != 8 {
		return 0, false, nil
	}
	return int64(binary.BigEndian.Uint64(buf)), true, nil
}

func (m *memStore) Destroy(ctx context.Context, token string) error {
	err := m.cache.Delete(token)
	if errors.Is(err, bigcache.ErrEntryNotFound) {
		// destroying an absent session is a no-op
		return nil
	}
	return err
}
