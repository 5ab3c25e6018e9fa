package service

import (
	"sort"

	"go.uber.org/zap"

	"loan-compare/domain"
)

// ScenarioService reruns a comparison input across every bank, or across
// several surplus deposits, to show where the money is best placed.
type ScenarioService struct {
	loans  *LoanService
	logger *zap.Logger
}

func NewScenarioService(loans *LoanService, logger *zap.Logger) *ScenarioService {
	return &ScenarioService{loans: loans, logger: logger}
}

// CompareBanks prices the same loan at every bank in the table. Each list
// is sorted by net cost, cheapest first. Rate overrides are ignored; a
// profile still personalizes every bank's rate.
func (s *ScenarioService) CompareBanks(in domain.ComparisonInput) (domain.BankComparison, error) {
	if err := validateComparison(in); err != nil {
		return domain.BankComparison{}, err
	}

	table, _, err := s.loans.resolve(in)
	if err != nil {
		return domain.BankComparison{}, err
	}

	var out domain.BankComparison
	for _, bank := range table.RegularBanks() {
		rates := table.Regular[bank]
		rate := effectiveRate(rates.BaseRate, nil, in.Profile, in.Amount)
		res := simulateRegular(in, rates, rate)

		out.Regular = append(out.Regular, domain.RegularBankRow{
			Bank:          bank,
			InterestRate:  rate,
			ProcessingFee: rates.ProcessingFee,
			EMI:           res.EMI,
			TotalInterest: res.TotalInterest,
			TaxBenefit:    res.TaxBenefit.Total(),
			NetCost:       res.NetCost,
		})
	}
	for _, bank := range table.OverdraftBanks() {
		rates := table.Overdraft[bank]
		rate := effectiveRate(rates.BaseRate, nil, in.Profile, in.Amount)
		res := simulateOverdraft(in, rates, rate)

		out.Overdraft = append(out.Overdraft, domain.OverdraftBankRow{
			Bank:          bank,
			InterestRate:  rate,
			MinLoan:       rates.MinLoan,
			ODCharge:      rates.ODCharge,
			TotalInterest: res.TotalInterest,
			InterestSaved: res.InterestSaved,
			NetCost:       res.NetCost,
			Eligible:      in.Amount >= rates.MinLoan,
		})
	}

	sort.SliceStable(out.Regular, func(i, j int) bool { return out.Regular[i].NetCost < out.Regular[j].NetCost })
	sort.SliceStable(out.Overdraft, func(i, j int) bool { return out.Overdraft[i].NetCost < out.Overdraft[j].NetCost })

	s.logger.Debug("bank comparison",
		zap.Int("regular_banks", len(out.Regular)),
		zap.Int("overdraft_banks", len(out.Overdraft)))

	return out, nil
}

// SurplusImpact reruns the selected overdraft loan for a range of initial
// deposits, skipping any larger than the loan.
func (s *ScenarioService) SurplusImpact(in domain.ComparisonInput) (domain.SurplusImpact, error) {
	if err := validateComparison(in); err != nil {
		return domain.SurplusImpact{}, err
	}

	_, pair, err := s.loans.resolve(in)
	if err != nil {
		return domain.SurplusImpact{}, err
	}

	regular := simulateRegular(in, pair.regular, pair.regularRate)
	out := domain.SurplusImpact{RegularNetCost: regular.NetCost}

	for _, deposit := range surplusScenarios(in.Amount) {
		scenario := in
		scenario.Overdraft.InitialDeposit = deposit
		res := simulateOverdraft(scenario, pair.overdraft, pair.overdraftRate)

		out.Scenarios = append(out.Scenarios, domain.SurplusScenario{
			InitialDeposit:    deposit,
			NetCost:           res.NetCost,
			SavingsVsRegular:  regular.NetCost - res.NetCost,
			TotalInterestPaid: res.TotalInterest,
		})
	}
	return out, nil
}

func surplusScenarios(amount float64) []float64 {
	candidates := append([]float64{}, SurplusScenarios...)
	if amount > LargeSurplusScenario {
		candidates = append(candidates, LargeSurplusScenario)
	}

	out := candidates[:0]
	for _, d := range candidates {
		if d <= amount {
			out = append(out, d)
		}
	}
	return out
}
