package service

import (
	"context"
	"math"
	"time"

	"go.uber.org/zap"

	"loan-compare/calculations"
	"loan-compare/domain"
	"loan-compare/id"
	"loan-compare/repository"
)

func roundTo2Decimals(value float64) float64 {
	return math.Round(value*100) / 100
}

type LoanService struct {
	rates   *RateService
	history repository.HistoryRepository
	advisor *AdvisorService
	logger  *zap.Logger
	now     func() time.Time
}

func NewLoanService(
	rates *RateService,
	history repository.HistoryRepository,
	advisor *AdvisorService,
	logger *zap.Logger,
) *LoanService {
	return &LoanService{
		rates:   rates,
		history: history,
		advisor: advisor,
		logger:  logger,
		now:     time.Now,
	}
}

// CalculateLoan is the free EMI quote: no banks, fees or tax, just the
// instalment and what it adds up to.
func (s *LoanService) CalculateLoan(
	input domain.LoanInput,
) (domain.LoanResult, error) {
	if err := validateLoan(input); err != nil {
		return domain.LoanResult{}, err
	}

	emi := calculations.EMI(input.Amount, input.InterestRate, input.TermMonths)
	total := emi * float64(input.TermMonths)

	return domain.LoanResult{
		MonthlyPayment: roundTo2Decimals(emi),
		TotalPayment:   roundTo2Decimals(total),
		TotalInterest:  roundTo2Decimals(total - input.Amount),
	}, nil
}

// loanPair is one regular and one overdraft product with the rates the
// simulations should run at.
type loanPair struct {
	regular       domain.RegularBankRate
	regularRate   float64
	overdraft     domain.OverdraftBankRate
	overdraftRate float64
}

func (s *LoanService) resolve(in domain.ComparisonInput) (domain.RateTable, loanPair, error) {
	table, err := s.rates.Table(nil)
	if err != nil {
		return domain.RateTable{}, loanPair{}, err
	}

	reg, err := regularBank(table, in.RegularBank)
	if err != nil {
		return domain.RateTable{}, loanPair{}, err
	}
	od, err := overdraftBank(table, in.OverdraftBank)
	if err != nil {
		return domain.RateTable{}, loanPair{}, err
	}

	return table, loanPair{
		regular:       reg,
		regularRate:   effectiveRate(reg.BaseRate, in.RegularRateOverride, in.Profile, in.Amount),
		overdraft:     od,
		overdraftRate: effectiveRate(od.BaseRate, in.OverdraftRateOverride, in.Profile, in.Amount),
	}, nil
}

func simulateRegular(in domain.ComparisonInput, bank domain.RegularBankRate, rate float64) domain.RegularLoanResult {
	return calculations.SimulateRegularLoan(domain.RegularLoanInput{
		Principal:    in.Amount,
		AnnualRate:   rate,
		TenureMonths: in.TenureMonths,
		Tax:          in.Tax,
		Prepayment:   in.Prepayment,
		Fees:         bank.Fees(),
	})
}

func simulateOverdraft(in domain.ComparisonInput, bank domain.OverdraftBankRate, rate float64) domain.OverdraftLoanResult {
	return calculations.SimulateOverdraftLoan(domain.OverdraftLoanInput{
		Principal:     in.Amount,
		AnnualRate:    rate,
		TenureMonths:  in.TenureMonths,
		Tax:           in.Tax,
		Overdraft:     in.Overdraft,
		Fees:          bank.Fees(),
		AccountCharge: bank.ODCharge,
	})
}

// Compare runs both loans for the same borrower and works out which one
// costs less after fees and tax.
func (s *LoanService) Compare(ctx context.Context, in domain.ComparisonInput) (domain.ComparisonResult, error) {
	if err := validateComparison(in); err != nil {
		return domain.ComparisonResult{}, err
	}

	_, pair, err := s.resolve(in)
	if err != nil {
		return domain.ComparisonResult{}, err
	}

	regular := simulateRegular(in, pair.regular, pair.regularRate)
	overdraft := simulateOverdraft(in, pair.overdraft, pair.overdraftRate)

	result := domain.ComparisonResult{
		Input:             in,
		Regular:           regular,
		Overdraft:         overdraft,
		NetSavings:        regular.NetCost - overdraft.NetCost,
		OverdraftEligible: in.Amount >= pair.overdraft.MinLoan,
		YearlyComparison:  yearlyComparison(in.TenureMonths, regular.Ledger, overdraft.Ledger),
	}
	if regular.NetCost != 0 {
		result.SavingsPercent = result.NetSavings / regular.NetCost * 100
	}
	result.Cheaper = domain.LoanKindRegular
	if result.NetSavings > 0 {
		result.Cheaper = domain.LoanKindOverdraft
	}
	result.Advice = s.advisor.Advise(ctx, result)

	createdAt := s.now()
	result.ID = id.New(createdAt)

	// Saving history is not critical.
	if err := s.history.Save(historyRecord(result, createdAt)); err != nil {
		s.logger.Warn("failed to save comparison", zap.String("id", result.ID), zap.Error(err))
	}

	s.logger.Info("loan comparison",
		zap.String("id", result.ID),
		zap.Float64("amount", in.Amount),
		zap.Int("tenure_months", in.TenureMonths),
		zap.String("regular_bank", string(in.RegularBank)),
		zap.String("overdraft_bank", string(in.OverdraftBank)),
		zap.Float64("net_savings", result.NetSavings),
		zap.String("cheaper", string(result.Cheaper)),
	)

	return result, nil
}

// yearlyComparison lines up the two ledgers year by year, stopping at
// whichever loan closes first.
func yearlyComparison(tenureMonths int, regular, overdraft domain.YearlyLedger) []domain.YearComparison {
	years := min(tenureMonths/12, len(regular), len(overdraft))

	out := make([]domain.YearComparison, 0, years)
	for i := 0; i < years; i++ {
		out = append(out, domain.YearComparison{
			Year:              i + 1,
			RegularInterest:   regular[i].Interest,
			OverdraftInterest: overdraft[i].Interest,
			InterestSaved:     regular[i].Interest - overdraft[i].Interest,
		})
	}
	return out
}

func historyRecord(r domain.ComparisonResult, createdAt time.Time) domain.ComparisonRecord {
	return domain.ComparisonRecord{
		ID:               r.ID,
		CreatedAt:        createdAt,
		Amount:           r.Input.Amount,
		TenureMonths:     r.Input.TenureMonths,
		RegularBank:      r.Input.RegularBank,
		OverdraftBank:    r.Input.OverdraftBank,
		RegularRate:      r.Regular.InterestRate,
		OverdraftRate:    r.Overdraft.InterestRate,
		RegularNetCost:   r.Regular.NetCost,
		OverdraftNetCost: r.Overdraft.NetCost,
		NetSavings:       r.NetSavings,
		Cheaper:          r.Cheaper,
	}
}

func (s *LoanService) History(limit int) ([]domain.ComparisonRecord, error) {
	if limit <= 0 {
		limit = DefaultHistoryLimit
	}
	return s.history.ListRecent(limit)
}

func (s *LoanService) HistoryRecord(recordID string) (domain.ComparisonRecord, error) {
	return s.history.Get(recordID)
}

// LatePaymentPenalty estimates the charges for paying one EMI late. A zero
// daysLate means a month.
func (s *LoanService) LatePaymentPenalty(emi float64, daysLate int) (domain.LatePaymentPenalty, error) {
	if daysLate == 0 {
		daysLate = DefaultDaysLate
	}
	if err := validatePenalty(emi, daysLate); err != nil {
		return domain.LatePaymentPenalty{}, err
	}
	return calculations.LatePaymentPenalty(emi, daysLate), nil
}
