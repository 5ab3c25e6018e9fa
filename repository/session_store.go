package repository

import (
	"encoding/json"
	"fmt"
	"time"

	"loan-compare/domain"
)

// SessionStore persists access sessions as JSON in a CacheRepository.
// Sessions expire from the cache after ttl.
type SessionStore struct {
	cache CacheRepository
	ttl   time.Duration
}

func NewSessionStore(cache CacheRepository, ttl time.Duration) *SessionStore {
	return &SessionStore{cache: cache, ttl: ttl}
}

func sessionKey(id string) string {
	return "session:" + id
}

func (s *SessionStore) Save(session domain.Session) error {
	data, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}
	return s.cache.Set(sessionKey(session.ID), string(data), s.ttl)
}

func (s *SessionStore) Get(id string) (domain.Session, error) {
	raw, ok, err := s.cache.Get(sessionKey(id))
	if err != nil {
		return domain.Session{}, fmt.Errorf("load session: %w", err)
	}
	if !ok {
		return domain.Session{}, ErrNotFound
	}

	var session domain.Session
	if err := json.Unmarshal([]byte(raw), &session); err != nil {
		return domain.Session{}, fmt.Errorf("decode session: %w", err)
	}
	return session, nil
}

func (s *SessionStore) Delete(id string) error {
	return s.cache.Delete(sessionKey(id))
}
