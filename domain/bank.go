package domain

import (
	"fmt"
	"sort"
	"time"
)

// BankID names a bank product in the rate table, e.g. "HDFC Bank" or
// "SBI MaxGain".
type BankID string

type RegularBankRate struct {
	BaseRate         float64 `json:"base_rate"`
	Range            string  `json:"range,omitempty"`
	ProcessingFee    float64 `json:"processing_fee"`
	MinProcessing    float64 `json:"min_processing"`
	PrepaymentCharge float64 `json:"prepayment_charge"`
}

func (r RegularBankRate) Fees() FeeSchedule {
	return FeeSchedule{ProcessingFeePercent: r.ProcessingFee, MinProcessingFee: r.MinProcessing}
}

type OverdraftBankRate struct {
	BaseRate      float64 `json:"base_rate"`
	Range         string  `json:"range,omitempty"`
	ProcessingFee float64 `json:"processing_fee"`
	MinProcessing float64 `json:"min_processing"`
	ODCharge      float64 `json:"od_charge"`
	MinLoan       float64 `json:"min_loan"`
}

func (r OverdraftBankRate) Fees() FeeSchedule {
	return FeeSchedule{ProcessingFeePercent: r.ProcessingFee, MinProcessingFee: r.MinProcessing}
}

type RateTable struct {
	LastUpdated string                       `json:"last_updated"`
	Regular     map[BankID]RegularBankRate   `json:"regular_loans"`
	Overdraft   map[BankID]OverdraftBankRate `json:"od_loans"`
}

// RegularBanks returns the regular-loan bank IDs in name order.
func (t RateTable) RegularBanks() []BankID {
	ids := make([]BankID, 0, len(t.Regular))
	for id := range t.Regular {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// OverdraftBanks returns the overdraft bank IDs in name order.
func (t RateTable) OverdraftBanks() []BankID {
	ids := make([]BankID, 0, len(t.Overdraft))
	for id := range t.Overdraft {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// DaysSinceUpdate returns whole days between LastUpdated and now, or -1
// when LastUpdated is not a YYYY-MM-DD date.
func (t RateTable) DaysSinceUpdate(now time.Time) int {
	updated, err := time.ParseInLocation("2006-01-02", t.LastUpdated, now.Location())
	if err != nil {
		return -1
	}
	return int(now.Sub(updated).Hours() / 24)
}

type FreshnessLevel string

const (
	FreshnessUnknown FreshnessLevel = "gray"
	FreshnessFresh   FreshnessLevel = "green"
	FreshnessAging   FreshnessLevel = "orange"
	FreshnessStale   FreshnessLevel = "red"
)

// UpdateStatus describes how old the rates are.
func (t RateTable) UpdateStatus(now time.Time) (string, FreshnessLevel) {
	days := t.DaysSinceUpdate(now)
	switch {
	case days < 0:
		return "Rates update status unknown", FreshnessUnknown
	case days == 0:
		return "Rates updated today", FreshnessFresh
	case days == 1:
		return "Rates updated yesterday", FreshnessFresh
	case days <= 7:
		return fmt.Sprintf("Rates updated %d days ago", days), FreshnessFresh
	case days <= 14:
		return fmt.Sprintf("Rates updated %d days ago (consider checking bank websites)", days), FreshnessAging
	default:
		return fmt.Sprintf("Rates updated %d days ago (please verify with banks)", days), FreshnessStale
	}
}

// RateStatus summarises how current a rate table is.
type RateStatus struct {
	LastUpdated     string         `json:"last_updated"`
	DaysSinceUpdate int            `json:"days_since_update"`
	Message         string         `json:"message"`
	Level           FreshnessLevel `json:"level"`
}

func (t RateTable) Status(now time.Time) RateStatus {
	msg, level := t.UpdateStatus(now)
	return RateStatus{
		LastUpdated:     t.LastUpdated,
		DaysSinceUpdate: t.DaysSinceUpdate(now),
		Message:         msg,
		Level:           level,
	}
}
