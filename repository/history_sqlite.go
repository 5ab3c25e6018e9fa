package repository

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"loan-compare/domain"
)

const HistorySchema = `
CREATE TABLE IF NOT EXISTS comparisons (
	id TEXT PRIMARY KEY,
	created_at TEXT NOT NULL,
	amount REAL NOT NULL,
	tenure_months INTEGER NOT NULL,
	regular_bank TEXT NOT NULL,
	overdraft_bank TEXT NOT NULL,
	regular_rate REAL NOT NULL,
	overdraft_rate REAL NOT NULL,
	regular_net_cost REAL NOT NULL,
	overdraft_net_cost REAL NOT NULL,
	net_savings REAL NOT NULL,
	cheaper TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_comparisons_created ON comparisons(created_at);
`

const historyColumns = `id, created_at, amount, tenure_months, regular_bank, overdraft_bank,
	regular_rate, overdraft_rate, regular_net_cost, overdraft_net_cost, net_savings, cheaper`

// SQLiteHistory keeps comparison history in a SQLite file.
type SQLiteHistory struct {
	db *sql.DB
}

func NewSQLiteHistory(path string) (*SQLiteHistory, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, err
	}

	if _, err := db.Exec(HistorySchema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("create history schema: %w", err)
	}

	return &SQLiteHistory{db: db}, nil
}

func (h *SQLiteHistory) Save(r domain.ComparisonRecord) error {
	_, err := h.db.Exec(`
		INSERT INTO comparisons (`+historyColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		r.ID, r.CreatedAt.UTC().Format(time.RFC3339Nano), r.Amount, r.TenureMonths,
		string(r.RegularBank), string(r.OverdraftBank), r.RegularRate, r.OverdraftRate,
		r.RegularNetCost, r.OverdraftNetCost, r.NetSavings, string(r.Cheaper),
	)
	return err
}

func (h *SQLiteHistory) Get(id string) (domain.ComparisonRecord, error) {
	row := h.db.QueryRow(`SELECT `+historyColumns+` FROM comparisons WHERE id = ?`, id)

	rec, err := scanRecord(row)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.ComparisonRecord{}, ErrNotFound
	}
	return rec, err
}

func (h *SQLiteHistory) ListRecent(limit int) ([]domain.ComparisonRecord, error) {
	if limit <= 0 {
		limit = -1
	}

	rows, err := h.db.Query(`SELECT `+historyColumns+` FROM comparisons ORDER BY id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.ComparisonRecord
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}

func (h *SQLiteHistory) Close() error {
	return h.db.Close()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRecord(s rowScanner) (domain.ComparisonRecord, error) {
	var (
		r                        domain.ComparisonRecord
		createdAt                string
		regular, overdraft, kind string
	)
	err := s.Scan(&r.ID, &createdAt, &r.Amount, &r.TenureMonths, &regular, &overdraft,
		&r.RegularRate, &r.OverdraftRate, &r.RegularNetCost, &r.OverdraftNetCost, &r.NetSavings, &kind)
	if err != nil {
		return domain.ComparisonRecord{}, err
	}

	r.CreatedAt, err = time.Parse(time.RFC3339Nano, createdAt)
	if err != nil {
		return domain.ComparisonRecord{}, fmt.Errorf("parse created_at %q: %w", createdAt, err)
	}
	r.RegularBank = domain.BankID(regular)
	r.OverdraftBank = domain.BankID(overdraft)
	r.Cheaper = domain.LoanKind(kind)
	return r, nil
}
