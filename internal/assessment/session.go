package assessment

import (
	"context"
	"time"

	"github.com/karyahq/compass/internal/cache"
)

// SessionTTL is the sliding expiry of in-flight scoring state. Abandoned
// assessments age out instead of accumulating.
const SessionTTL = 24 * time.Hour

const sessionKeyPrefix = "assess:sess:"

// SessionStore holds the per-user trait scoring state between answers.
// Completing or abandoning an assessment removes the state.
type SessionStore interface {
	Get(ctx context.Context, userID string) (*TraitState, bool, error)
	Put(ctx context.Context, userID string, state *TraitState) error
	Delete(ctx context.Context, userID string) error
}

type cacheSessionStore struct {
	c   cache.Cache
	ttl time.Duration
}

// NewSessionStore backs sessions by a Cache with the sliding SessionTTL.
func NewSessionStore(c cache.Cache) SessionStore {
	return &cacheSessionStore{c: c, ttl: SessionTTL}
}

func sessionKey(userID string) string { return sessionKeyPrefix + userID }

func (s *cacheSessionStore) Get(ctx context.Context, userID string) (*TraitState, bool, error) {
	var state TraitState
	hit, err := s.c.GetJSON(ctx, sessionKey(userID), &state)
	if err != nil || !hit {
		return nil, false, err
	}
	state.Normalize()
	return &state, true, nil
}

func (s *cacheSessionStore) Put(ctx context.Context, userID string, state *TraitState) error {
	return s.c.SetJSON(ctx, sessionKey(userID), state, s.ttl)
}

func (s *cacheSessionStore) Delete(ctx context.Context, userID string) error {
	return s.c.Del(ctx, sessionKey(userID))
}
