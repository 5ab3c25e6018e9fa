package repository

import (
	"sync"

	"loan-compare/domain"
)

// MemoryHistory is an in-memory implementation of HistoryRepository.
type MemoryHistory struct {
	mu   sync.RWMutex
	data []domain.ComparisonRecord
}

func NewMemoryHistory() *MemoryHistory {
	return &MemoryHistory{
		data: []domain.ComparisonRecord{},
	}
}

func (r *MemoryHistory) Save(record domain.ComparisonRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.data = append(r.data, record)
	return nil
}

func (r *MemoryHistory) Get(id string) (domain.ComparisonRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, rec := range r.data {
		if rec.ID == id {
			return rec, nil
		}
	}
	return domain.ComparisonRecord{}, ErrNotFound
}

func (r *MemoryHistory) ListRecent(limit int) ([]domain.ComparisonRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if limit <= 0 || limit > len(r.data) {
		limit = len(r.data)
	}
	out := make([]domain.ComparisonRecord, 0, limit)
	for i := len(r.data) - 1; i >= 0 && len(out) < limit; i-- {
		out = append(out, r.data[i])
	}
	return out, nil
}
