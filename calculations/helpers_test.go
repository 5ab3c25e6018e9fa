package calculations

import "loan-compare/domain"

type feeCase struct {
	percent float64
	minimum float64
}

func (f feeCase) schedule() domain.FeeSchedule {
	return domain.FeeSchedule{ProcessingFeePercent: f.percent, MinProcessingFee: f.minimum}
}

var (
	oldSelfOccupied = domain.TaxProfile{SlabPercent: 30, Regime: domain.TaxRegimeOld, Property: domain.PropertySelfOccupied}
	oldLetOut       = domain.TaxProfile{SlabPercent: 30, Regime: domain.TaxRegimeOld, Property: domain.PropertyLetOut}
	newSelfOccupied = domain.TaxProfile{SlabPercent: 30, Regime: domain.TaxRegimeNew, Property: domain.PropertySelfOccupied}
	newLetOut       = domain.TaxProfile{SlabPercent: 30, Regime: domain.TaxRegimeNew, Property: domain.PropertyLetOut}

	hdfcFees = domain.FeeSchedule{ProcessingFeePercent: 0.50, MinProcessingFee: 3000}
)

func regularInput(principal, rate float64, months int) domain.RegularLoanInput {
	return domain.RegularLoanInput{
		Principal:    principal,
		AnnualRate:   rate,
		TenureMonths: months,
		Tax:          oldSelfOccupied,
		Fees:         hdfcFees,
	}
}

func overdraftInput(principal, rate float64, months int, initial, monthly float64) domain.OverdraftLoanInput {
	return domain.OverdraftLoanInput{
		Principal:    principal,
		AnnualRate:   rate,
		TenureMonths: months,
		Tax:          oldSelfOccupied,
		Overdraft: domain.OverdraftPolicy{
			InitialDeposit:  initial,
			MonthlyAddition: monthly,
		},
		Fees:          hdfcFees,
		AccountCharge: 5000,
	}
}

func ceilYears(months int) int {
	return (months + 11) / 12
}

func principalBenefit(regime domain.TaxRegime, property domain.PropertyType) float64 {
	in := overdraftInput(5_000_000, 8.85, 240, 500_000, 20_000)
	in.Tax = domain.TaxProfile{SlabPercent: 30, Regime: regime, Property: property}
	return SimulateOverdraftLoan(in).TaxBenefit.Principal
}
