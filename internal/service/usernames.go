package service

import (
	"context"
	"sync"

	"github.com/diskusi-dev/diskusi/internal/domain"
)

// usernameResolver memoizes owner id -> username lookups for the lifetime of
// one aggregation request. The same owner often appears as thread owner,
// commenter and replier at once; without this every appearance would hit
// storage separately. Two goroutines racing on a cold id may both fetch,
// which is harmless.
type usernameResolver struct {
	users UserStorage

	mu    sync.Mutex
	cache map[domain.UserId]domain.Username
}

func newUsernameResolver(users UserStorage) *usernameResolver {
	return &usernameResolver{users: users, cache: make(map[domain.UserId]domain.Username)}
}

func (r *usernameResolver) Resolve(ctx context.Context, id domain.UserId) (domain.Username, error) {
	r.mu.Lock()
	if username, ok := r.cache[id]; ok {
		r.mu.Unlock()
		return username, nil
	}
	r.mu.Unlock()

	username, err := r.users.UsernameById(ctx, id)
	if err != nil {
		return "", err
	}

	r.mu.Lock()
	r.cache[id] = username
	r.mu.Unlock()
	return username, nil
}
