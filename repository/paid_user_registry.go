package repository

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"loan-compare/domain"
)

// PaidUserRegistry remembers which email addresses have paid. Entries
// are never pruned.
type PaidUserRegistry interface {
	Grant(email string, user domain.PaidUser) error
	Lookup(email string) (domain.PaidUser, error)
}

// JSONFileRegistry keeps the registry as one JSON object keyed by email.
type JSONFileRegistry struct {
	mu   sync.Mutex
	path string
}

func NewJSONFileRegistry(path string) *JSONFileRegistry {
	return &JSONFileRegistry{path: path}
}

func (r *JSONFileRegistry) Grant(email string, user domain.PaidUser) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	users, err := r.read()
	if err != nil {
		return err
	}
	users[email] = user

	data, err := json.MarshalIndent(users, "", "  ")
	if err != nil {
		return fmt.Errorf("encode paid users: %w", err)
	}
	if dir := filepath.Dir(r.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create registry dir: %w", err)
		}
	}
	if err := os.WriteFile(r.path, data, 0o644); err != nil {
		return fmt.Errorf("write paid users: %w", err)
	}
	return nil
}

func (r *JSONFileRegistry) Lookup(email string) (domain.PaidUser, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	users, err := r.read()
	if err != nil {
		return domain.PaidUser{}, err
	}
	user, ok := users[email]
	if !ok {
		return domain.PaidUser{}, ErrNotFound
	}
	return user, nil
}

func (r *JSONFileRegistry) read() (map[string]domain.PaidUser, error) {
	users := make(map[string]domain.PaidUser)

	data, err := os.ReadFile(r.path)
	if errors.Is(err, fs.ErrNotExist) {
		return users, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read paid users: %w", err)
	}
	if len(data) == 0 {
		return users, nil
	}
	if err := json.Unmarshal(data, &users); err != nil {
		return nil, fmt.Errorf("decode paid users: %w", err)
	}
	return users, nil
}

// CacheRegistry stores paid users in a CacheRepository, normally Redis,
// so several server instances share one registry.
type CacheRegistry struct {
	cache CacheRepository
}

func NewCacheRegistry(cache CacheRepository) *CacheRegistry {
	return &CacheRegistry{cache: cache}
}

func paidUserKey(email string) string {
	return "paid:" + email
}

func (r *CacheRegistry) Grant(email string, user domain.PaidUser) error {
	data, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("encode paid user: %w", err)
	}
	return r.cache.Set(paidUserKey(email), string(data), 0)
}

func (r *CacheRegistry) Lookup(email string) (domain.PaidUser, error) {
	raw, ok, err := r.cache.Get(paidUserKey(email))
	if err != nil {
		return domain.PaidUser{}, fmt.Errorf("look up paid user: %w", err)
	}
	if !ok {
		return domain.PaidUser{}, ErrNotFound
	}

	var user domain.PaidUser
	if err := json.Unmarshal([]byte(raw), &user); err != nil {
		return domain.PaidUser{}, fmt.Errorf("decode paid user: %w", err)
	}
	return user, nil
}
