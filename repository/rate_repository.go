package repository

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"go.uber.org/zap"

	"loan-compare/domain"
)

//go:embed default_rates.json
var defaultRatesJSON []byte

// Per-field values used when a bank entry leaves them out.
const (
	DefaultProcessingFeePercent = 0.50
	DefaultMinProcessing        = 3000.0
	DefaultPrepaymentCharge     = 0.0
	DefaultODCharge             = 5000.0
	DefaultMinLoan              = 2_000_000.0

	unknownUpdate = "Unknown"
)

type RateRepository interface {
	Load() (domain.RateTable, error)
}

// rateFile is the on-disk layout. Optional numbers are pointers so a
// missing field can be told apart from an explicit zero.
type rateFile struct {
	LastUpdated string `json:"last_updated"`
	Rates       *struct {
		Regular   map[domain.BankID]regularEntry   `json:"regular_loans"`
		Overdraft map[domain.BankID]overdraftEntry `json:"od_loans"`
	} `json:"rates"`
}

type regularEntry struct {
	BaseRate         float64  `json:"base_rate"`
	Range            string   `json:"range"`
	ProcessingFee    *float64 `json:"processing_fee"`
	MinProcessing    *float64 `json:"min_processing"`
	PrepaymentCharge *float64 `json:"prepayment_charge"`
}

type overdraftEntry struct {
	BaseRate      float64  `json:"base_rate"`
	Range         string   `json:"range"`
	ProcessingFee *float64 `json:"processing_fee"`
	MinProcessing *float64 `json:"min_processing"`
	ODCharge      *float64 `json:"od_charge"`
	MinLoan       *float64 `json:"min_loan"`
}

var errInvalidRateFile = errors.New("rate file needs rates.regular_loans and rates.od_loans")

// ParseRateTable decodes a rate file and fills in missing per-bank fields.
func ParseRateTable(data []byte) (domain.RateTable, error) {
	var f rateFile
	if err := json.Unmarshal(data, &f); err != nil {
		return domain.RateTable{}, fmt.Errorf("decode rate file: %w", err)
	}
	if f.Rates == nil || f.Rates.Regular == nil || f.Rates.Overdraft == nil {
		return domain.RateTable{}, errInvalidRateFile
	}

	table := domain.RateTable{
		LastUpdated: f.LastUpdated,
		Regular:     make(map[domain.BankID]domain.RegularBankRate, len(f.Rates.Regular)),
		Overdraft:   make(map[domain.BankID]domain.OverdraftBankRate, len(f.Rates.Overdraft)),
	}
	if table.LastUpdated == "" {
		table.LastUpdated = unknownUpdate
	}

	for id, e := range f.Rates.Regular {
		table.Regular[id] = domain.RegularBankRate{
			BaseRate:         e.BaseRate,
			Range:            e.Range,
			ProcessingFee:    orDefault(e.ProcessingFee, DefaultProcessingFeePercent),
			MinProcessing:    orDefault(e.MinProcessing, DefaultMinProcessing),
			PrepaymentCharge: orDefault(e.PrepaymentCharge, DefaultPrepaymentCharge),
		}
	}
	for id, e := range f.Rates.Overdraft {
		table.Overdraft[id] = domain.OverdraftBankRate{
			BaseRate:      e.BaseRate,
			Range:         e.Range,
			ProcessingFee: orDefault(e.ProcessingFee, DefaultProcessingFeePercent),
			MinProcessing: orDefault(e.MinProcessing, DefaultMinProcessing),
			ODCharge:      orDefault(e.ODCharge, DefaultODCharge),
			MinLoan:       orDefault(e.MinLoan, DefaultMinLoan),
		}
	}
	return table, nil
}

func orDefault(v *float64, def float64) float64 {
	if v == nil {
		return def
	}
	return *v
}

// DefaultRateTable is the table compiled into the binary.
func DefaultRateTable() domain.RateTable {
	table, err := ParseRateTable(defaultRatesJSON)
	if err != nil {
		panic(fmt.Sprintf("embedded rate table: %v", err))
	}
	return table
}

// FileRateRepository reads the rate table from a JSON file. Any problem
// with the file falls back to DefaultRateTable, so Load does not fail.
type FileRateRepository struct {
	path   string
	logger *zap.Logger
}

func NewFileRateRepository(path string, logger *zap.Logger) *FileRateRepository {
	return &FileRateRepository{path: path, logger: logger}
}

func (r *FileRateRepository) Load() (domain.RateTable, error) {
	if r.path == "" {
		return DefaultRateTable(), nil
	}

	data, err := os.ReadFile(r.path)
	if errors.Is(err, fs.ErrNotExist) {
		r.logger.Info("bank rates file not found, using defaults", zap.String("path", r.path))
		return DefaultRateTable(), nil
	}
	if err != nil {
		r.logger.Warn("cannot read bank rates file, using defaults", zap.String("path", r.path), zap.Error(err))
		return DefaultRateTable(), nil
	}

	table, err := ParseRateTable(data)
	if err != nil {
		r.logger.Warn("invalid bank rates file, using defaults", zap.String("path", r.path), zap.Error(err))
		return DefaultRateTable(), nil
	}
	return table, nil
}
