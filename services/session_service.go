package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jdjewellers/storefront-backend/repository"
)

// SessionService issues and recognizes opaque shopping session
// identifiers. A browser presents its stored id on every request; an
// unknown or absent id gets a fresh one minted and persisted. Ids never
// expire and carry no identity beyond scoping cart storage.
type SessionService struct {
	store repository.SessionStore
}

func NewSessionService(store repository.SessionStore) *SessionService {
	return &SessionService{store: store}
}

// GetOrCreate returns the presented session id if it is known,
// otherwise mints, persists and returns a new one. The store is only
// written when a new id is issued.
func (s *SessionService) GetOrCreate(ctx context.Context, presented string) (string, error) {
	if presented != "" {
		ok, err := s.store.Exists(ctx, presented)
		if err != nil {
			return "", err
		}
		if ok {
			return presented, nil
		}
	}

	id := newSessionID()
	if err := s.store.Put(ctx, id); err != nil {
		return "", err
	}
	return id, nil
}

// newSessionID builds a time-prefixed id with a random suffix. The time
// part makes ids roughly sortable; the suffix is the only collision
// defense.
func newSessionID() string {
	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")[:9]
	return fmt.Sprintf("session_%d_%s", time.Now().UnixMilli(), suffix)
}
