package repository

import "loan-compare/domain"

// HistoryRepository stores a summary of every comparison that was run.
type HistoryRepository interface {
	Save(record domain.ComparisonRecord) error
	Get(id string) (domain.ComparisonRecord, error)
	// ListRecent returns up to limit records, newest first.
	ListRecent(limit int) ([]domain.ComparisonRecord, error)
}
