package calculations

import (
	"math"

	"loan-compare/domain"
)

const (
	// Section80CLimit caps the yearly principal deduction.
	Section80CLimit = 150_000.0
	// Section24bSelfOccupiedLimit caps the yearly interest deduction on a
	// self-occupied property. Let-out property has no cap.
	Section24bSelfOccupiedLimit = 200_000.0
)

// RegularTaxBenefit applies the 80C and 24(b) rules year by year. Under the
// new regime only let-out property earns an (uncapped) interest deduction.
func RegularTaxBenefit(ledger domain.YearlyLedger, tax domain.TaxProfile) domain.TaxBenefit {
	var benefit domain.TaxBenefit
	rate := tax.SlabPercent / 100

	for _, year := range ledger {
		if tax.OldRegime() {
			benefit.Principal += math.Min(year.Principal, Section80CLimit) * rate
		}
		benefit.Interest += interestDeduction(year.Interest, tax) * rate
	}
	return benefit
}

// OverdraftTaxBenefit only counts interest. Money parked in the offset
// account is not a principal repayment, so the 80C part is always zero.
func OverdraftTaxBenefit(ledger domain.YearlyLedger, tax domain.TaxProfile) domain.TaxBenefit {
	var benefit domain.TaxBenefit
	rate := tax.SlabPercent / 100

	for _, year := range ledger {
		benefit.Interest += interestDeduction(year.Interest, tax) * rate
	}
	return benefit
}

func interestDeduction(interest float64, tax domain.TaxProfile) float64 {
	if !tax.OldRegime() {
		if tax.SelfOccupied() {
			return 0
		}
		return interest
	}
	if tax.SelfOccupied() {
		return math.Min(interest, Section24bSelfOccupiedLimit)
	}
	return interest
}
