package service

import (
	"errors"
	"testing"
	"time"

	"go.uber.org/zap"

	"loan-compare/domain"
	"loan-compare/repository"
)

type MockRateRepository struct {
	Table      domain.RateTable
	ForceError bool
}

func (m *MockRateRepository) Load() (domain.RateTable, error) {
	if m.ForceError {
		return domain.RateTable{}, errors.New("load error")
	}
	return m.Table, nil
}

type MockHistoryRepository struct {
	SaveCalled bool
	ForceError bool
	Saved      []domain.ComparisonRecord
}

func (m *MockHistoryRepository) Save(record domain.ComparisonRecord) error {
	m.SaveCalled = true
	if m.ForceError {
		return errors.New("save error")
	}
	m.Saved = append(m.Saved, record)
	return nil
}

func (m *MockHistoryRepository) Get(id string) (domain.ComparisonRecord, error) {
	for _, r := range m.Saved {
		if r.ID == id {
			return r, nil
		}
	}
	return domain.ComparisonRecord{}, repository.ErrNotFound
}

func (m *MockHistoryRepository) ListRecent(limit int) ([]domain.ComparisonRecord, error) {
	out := make([]domain.ComparisonRecord, 0, len(m.Saved))
	for i := len(m.Saved) - 1; i >= 0 && len(out) < limit; i-- {
		out = append(out, m.Saved[i])
	}
	return out, nil
}

var testNow = time.Date(2025, 10, 20, 9, 0, 0, 0, time.UTC)

func newTestRateService() *RateService {
	return NewRateService(&MockRateRepository{Table: repository.DefaultRateTable()}, zap.NewNop())
}

func newTestLoanService(t *testing.T) (*LoanService, *MockHistoryRepository) {
	t.Helper()

	history := &MockHistoryRepository{}
	svc := NewLoanService(
		newTestRateService(),
		history,
		NewAdvisorService(AdvisorConfig{}, zap.NewNop()),
		zap.NewNop(),
	)
	svc.now = func() time.Time { return testNow }
	return svc, history
}

// referenceInput is a ₹50 lakh, 20 year loan at HDFC with ₹5 lakh parked
// up front and ₹20,000 added every month.
func referenceInput() domain.ComparisonInput {
	return domain.ComparisonInput{
		Amount:       5_000_000,
		TenureMonths: 240,
		Tax: domain.TaxProfile{
			SlabPercent: 30,
			Regime:      domain.TaxRegimeOld,
			Property:    domain.PropertySelfOccupied,
		},
		Overdraft: domain.OverdraftPolicy{
			InitialDeposit:  500_000,
			MonthlyAddition: 20_000,
		},
		RegularBank:   "HDFC Bank",
		OverdraftBank: "HDFC Overdraft",
	}
}

func ptr(v float64) *float64 {
	return &v
}
