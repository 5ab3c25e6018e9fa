package service

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	"loan-compare/calculations"
	"loan-compare/domain"
	"loan-compare/repository"
)

type RateService struct {
	repo   repository.RateRepository
	logger *zap.Logger
}

func NewRateService(repo repository.RateRepository, logger *zap.Logger) *RateService {
	return &RateService{repo: repo, logger: logger}
}

// Table returns the current rate table. With a profile every base rate is
// replaced by the personalized rate for that borrower.
func (s *RateService) Table(profile *domain.UserProfile) (domain.RateTable, error) {
	table, err := s.repo.Load()
	if err != nil {
		return domain.RateTable{}, fmt.Errorf("load rates: %w", err)
	}
	if profile == nil {
		return table, nil
	}
	if err := validateProfile(profile); err != nil {
		return domain.RateTable{}, err
	}

	personalized := domain.RateTable{
		LastUpdated: table.LastUpdated,
		Regular:     make(map[domain.BankID]domain.RegularBankRate, len(table.Regular)),
		Overdraft:   make(map[domain.BankID]domain.OverdraftBankRate, len(table.Overdraft)),
	}
	for id, r := range table.Regular {
		r.BaseRate = calculations.PersonalizeRate(r.BaseRate, *profile).FinalRate
		personalized.Regular[id] = r
	}
	for id, r := range table.Overdraft {
		r.BaseRate = calculations.PersonalizeRate(r.BaseRate, *profile).FinalRate
		personalized.Overdraft[id] = r
	}
	return personalized, nil
}

func (s *RateService) Status(now time.Time) (domain.RateStatus, error) {
	table, err := s.repo.Load()
	if err != nil {
		return domain.RateStatus{}, fmt.Errorf("load rates: %w", err)
	}
	return table.Status(now), nil
}

// Personalize shows how a profile moves one bank's rate. The bank may be
// a regular or an overdraft product.
func (s *RateService) Personalize(bank domain.BankID, profile domain.UserProfile) (domain.PersonalizedRate, error) {
	if err := validateProfile(&profile); err != nil {
		return domain.PersonalizedRate{}, err
	}
	table, err := s.repo.Load()
	if err != nil {
		return domain.PersonalizedRate{}, fmt.Errorf("load rates: %w", err)
	}

	if r, ok := table.Regular[bank]; ok {
		return calculations.PersonalizeRate(r.BaseRate, profile), nil
	}
	if r, ok := table.Overdraft[bank]; ok {
		return calculations.PersonalizeRate(r.BaseRate, profile), nil
	}
	return domain.PersonalizedRate{}, fmt.Errorf("%w: %q", ErrUnknownBank, bank)
}

// effectiveRate picks the rate a simulation runs at: a manual override
// first, then the personalized rate, then the bank's base rate.
func effectiveRate(base float64, override *float64, profile *domain.UserProfile, amount float64) float64 {
	if override != nil {
		return *override
	}
	if profile != nil {
		p := *profile
		if p.LoanAmount == nil {
			p.LoanAmount = &amount
		}
		return calculations.PersonalizeRate(base, p).FinalRate
	}
	return base
}

func regularBank(table domain.RateTable, id domain.BankID) (domain.RegularBankRate, error) {
	r, ok := table.Regular[id]
	if !ok {
		return domain.RegularBankRate{}, fmt.Errorf("%w: regular loan bank %q", ErrUnknownBank, id)
	}
	return r, nil
}

func overdraftBank(table domain.RateTable, id domain.BankID) (domain.OverdraftBankRate, error) {
	r, ok := table.Overdraft[id]
	if !ok {
		return domain.OverdraftBankRate{}, fmt.Errorf("%w: overdraft bank %q", ErrUnknownBank, id)
	}
	return r, nil
}
